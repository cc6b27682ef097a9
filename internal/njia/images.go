package njia

import (
	"context"
	"fmt"

	"njia-admin/internal/api"
	"njia-admin/internal/model"
)

// ImageService maps evidence-image operations onto /images endpoints.
type ImageService struct {
	client *api.Client
}

func NewImageService(client *api.Client) *ImageService {
	return &ImageService{client: client}
}

// List returns every image.
func (s *ImageService) List(ctx context.Context) ([]model.Image, error) {
	var images []model.Image
	if err := s.client.Get(ctx, "/images", &images); err != nil {
		return nil, err
	}
	return images, nil
}

// Get returns the image with the given id.
func (s *ImageService) Get(ctx context.Context, id int64) (*model.Image, error) {
	var image model.Image
	if err := s.client.Get(ctx, fmt.Sprintf("/images/%d", id), &image); err != nil {
		return nil, err
	}
	return &image, nil
}

// ListByClaim returns the images attached to a claim. A claim with no
// images yields an empty slice, not an error.
func (s *ImageService) ListByClaim(ctx context.Context, claimID int64) ([]model.Image, error) {
	var images []model.Image
	if err := s.client.Get(ctx, fmt.Sprintf("/claims/%d/images", claimID), &images); err != nil {
		return nil, err
	}
	return images, nil
}

// Create attaches a new image to a claim.
func (s *ImageService) Create(ctx context.Context, req model.CreateImageRequest) (*model.Image, error) {
	var image model.Image
	if err := s.client.Post(ctx, "/images", req, &image); err != nil {
		return nil, err
	}
	return &image, nil
}

// Update applies a partial update; nil fields are left unchanged server-side.
func (s *ImageService) Update(ctx context.Context, id int64, req model.UpdateImageRequest) (*model.Image, error) {
	var image model.Image
	if err := s.client.Put(ctx, fmt.Sprintf("/images/%d", id), req, &image); err != nil {
		return nil, err
	}
	return &image, nil
}

// Delete removes the image with the given id.
func (s *ImageService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/images/%d", id))
}

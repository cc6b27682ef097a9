package njia

import (
	"context"
	"fmt"

	"njia-admin/internal/api"
	"njia-admin/internal/model"
)

// ClaimService maps claim operations onto /claims endpoints.
type ClaimService struct {
	client *api.Client
}

func NewClaimService(client *api.Client) *ClaimService {
	return &ClaimService{client: client}
}

// List returns every claim.
func (s *ClaimService) List(ctx context.Context) ([]model.Claim, error) {
	var claims []model.Claim
	if err := s.client.Get(ctx, "/claims", &claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// Get returns the claim with the given id.
func (s *ClaimService) Get(ctx context.Context, id int64) (*model.Claim, error) {
	var claim model.Claim
	if err := s.client.Get(ctx, fmt.Sprintf("/claims/%d", id), &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

// ListByUser returns the claims owned by a user. A user with no claims
// yields an empty slice, not an error.
func (s *ClaimService) ListByUser(ctx context.Context, userID int64) ([]model.Claim, error) {
	var claims []model.Claim
	if err := s.client.Get(ctx, fmt.Sprintf("/users/%d/claims", userID), &claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// Create files a new claim.
func (s *ClaimService) Create(ctx context.Context, req model.CreateClaimRequest) (*model.Claim, error) {
	var claim model.Claim
	if err := s.client.Post(ctx, "/claims", req, &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

// Update applies a partial update; nil fields are left unchanged server-side.
func (s *ClaimService) Update(ctx context.Context, id int64, req model.UpdateClaimRequest) (*model.Claim, error) {
	var claim model.Claim
	if err := s.client.Put(ctx, fmt.Sprintf("/claims/%d", id), req, &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

// Delete removes the claim with the given id.
func (s *ClaimService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/claims/%d", id))
}

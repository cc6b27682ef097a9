package query

import (
	"context"
	"strconv"

	"njia-admin/internal/model"
)

// ImageAPI is the slice of the image service the query layer depends on.
type ImageAPI interface {
	List(ctx context.Context) ([]model.Image, error)
	Get(ctx context.Context, id int64) (*model.Image, error)
	ListByClaim(ctx context.Context, claimID int64) ([]model.Image, error)
	Create(ctx context.Context, req model.CreateImageRequest) (*model.Image, error)
	Update(ctx context.Context, id int64, req model.UpdateImageRequest) (*model.Image, error)
	Delete(ctx context.Context, id int64) error
}

const imagesResource = "images"

// Images is the cache-aware view of the image service.
type Images struct {
	api   ImageAPI
	store *Store
}

func NewImages(api ImageAPI, store *Store) *Images {
	return &Images{api: api, store: store}
}

func (q *Images) List(ctx context.Context) ([]model.Image, error) {
	return lookup(ctx, q.store, NewKey(imagesResource), q.api.List)
}

func (q *Images) Get(ctx context.Context, id int64) (*model.Image, error) {
	if id == 0 {
		return nil, ErrNoID
	}
	key := NewKey(imagesResource, strconv.FormatInt(id, 10))
	return lookup(ctx, q.store, key, func(ctx context.Context) (*model.Image, error) {
		return q.api.Get(ctx, id)
	})
}

// ListByClaim returns a claim's images; an imageless claim yields an
// empty slice. A zero claimID short-circuits with ErrNoID.
func (q *Images) ListByClaim(ctx context.Context, claimID int64) ([]model.Image, error) {
	if claimID == 0 {
		return nil, ErrNoID
	}
	key := NewKey(imagesResource, "claim", strconv.FormatInt(claimID, 10))
	return lookup(ctx, q.store, key, func(ctx context.Context) ([]model.Image, error) {
		return q.api.ListByClaim(ctx, claimID)
	})
}

func (q *Images) Create(ctx context.Context, req model.CreateImageRequest) (*model.Image, error) {
	image, err := q.api.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	q.store.InvalidateResource(imagesResource)
	return image, nil
}

func (q *Images) Update(ctx context.Context, id int64, req model.UpdateImageRequest) (*model.Image, error) {
	image, err := q.api.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	q.store.InvalidateResource(imagesResource)
	q.store.Invalidate(NewKey(imagesResource, strconv.FormatInt(id, 10)))
	return image, nil
}

func (q *Images) Delete(ctx context.Context, id int64) error {
	if err := q.api.Delete(ctx, id); err != nil {
		return err
	}
	q.store.InvalidateResource(imagesResource)
	return nil
}

package query

import (
	"context"
	"strconv"

	"njia-admin/internal/model"
)

// ClaimAPI is the slice of the claim service the query layer depends on.
type ClaimAPI interface {
	List(ctx context.Context) ([]model.Claim, error)
	Get(ctx context.Context, id int64) (*model.Claim, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Claim, error)
	Create(ctx context.Context, req model.CreateClaimRequest) (*model.Claim, error)
	Update(ctx context.Context, id int64, req model.UpdateClaimRequest) (*model.Claim, error)
	Delete(ctx context.Context, id int64) error
}

const claimsResource = "claims"

// Claims is the cache-aware view of the claim service.
type Claims struct {
	api   ClaimAPI
	store *Store
}

func NewClaims(api ClaimAPI, store *Store) *Claims {
	return &Claims{api: api, store: store}
}

// List returns all claims, cached under the collection key.
func (q *Claims) List(ctx context.Context) ([]model.Claim, error) {
	return lookup(ctx, q.store, NewKey(claimsResource), q.api.List)
}

// Get returns one claim. A zero id short-circuits with ErrNoID before any
// network call.
func (q *Claims) Get(ctx context.Context, id int64) (*model.Claim, error) {
	if id == 0 {
		return nil, ErrNoID
	}
	key := NewKey(claimsResource, strconv.FormatInt(id, 10))
	return lookup(ctx, q.store, key, func(ctx context.Context) (*model.Claim, error) {
		return q.api.Get(ctx, id)
	})
}

// ListByUser returns a user's claims. A zero userID short-circuits with
// ErrNoID.
func (q *Claims) ListByUser(ctx context.Context, userID int64) ([]model.Claim, error) {
	if userID == 0 {
		return nil, ErrNoID
	}
	key := NewKey(claimsResource, "user", strconv.FormatInt(userID, 10))
	return lookup(ctx, q.store, key, func(ctx context.Context) ([]model.Claim, error) {
		return q.api.ListByUser(ctx, userID)
	})
}

// Create files a claim and invalidates the claims cache. A failed create
// leaves existing entries untouched.
func (q *Claims) Create(ctx context.Context, req model.CreateClaimRequest) (*model.Claim, error) {
	claim, err := q.api.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	q.store.InvalidateResource(claimsResource)
	return claim, nil
}

// Update applies a partial update and invalidates both the collection and
// the item entry.
func (q *Claims) Update(ctx context.Context, id int64, req model.UpdateClaimRequest) (*model.Claim, error) {
	claim, err := q.api.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	q.store.InvalidateResource(claimsResource)
	q.store.Invalidate(NewKey(claimsResource, strconv.FormatInt(id, 10)))
	return claim, nil
}

// Delete removes a claim and invalidates the claims cache.
func (q *Claims) Delete(ctx context.Context, id int64) error {
	if err := q.api.Delete(ctx, id); err != nil {
		return err
	}
	q.store.InvalidateResource(claimsResource)
	return nil
}

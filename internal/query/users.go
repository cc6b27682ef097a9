package query

import (
	"context"
	"strconv"

	"njia-admin/internal/model"
)

// UserAPI is the slice of the user service the query layer depends on.
type UserAPI interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error)
	Update(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, id int64) error
}

const usersResource = "users"

// Users is the cache-aware view of the user service.
type Users struct {
	api   UserAPI
	store *Store
}

func NewUsers(api UserAPI, store *Store) *Users {
	return &Users{api: api, store: store}
}

func (q *Users) List(ctx context.Context) ([]model.User, error) {
	return lookup(ctx, q.store, NewKey(usersResource), q.api.List)
}

func (q *Users) Get(ctx context.Context, id int64) (*model.User, error) {
	if id == 0 {
		return nil, ErrNoID
	}
	key := NewKey(usersResource, strconv.FormatInt(id, 10))
	return lookup(ctx, q.store, key, func(ctx context.Context) (*model.User, error) {
		return q.api.Get(ctx, id)
	})
}

func (q *Users) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	user, err := q.api.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	q.store.InvalidateResource(usersResource)
	return user, nil
}

func (q *Users) Update(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error) {
	user, err := q.api.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	q.store.InvalidateResource(usersResource)
	q.store.Invalidate(NewKey(usersResource, strconv.FormatInt(id, 10)))
	return user, nil
}

func (q *Users) Delete(ctx context.Context, id int64) error {
	if err := q.api.Delete(ctx, id); err != nil {
		return err
	}
	q.store.InvalidateResource(usersResource)
	return nil
}

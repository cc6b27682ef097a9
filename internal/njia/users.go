package njia

import (
	"context"
	"fmt"

	"njia-admin/internal/api"
	"njia-admin/internal/model"
)

// UserService maps user operations onto /users endpoints.
type UserService struct {
	client *api.Client
}

func NewUserService(client *api.Client) *UserService {
	return &UserService{client: client}
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := s.client.Get(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Get returns the user with the given id. A missing user surfaces as an
// error wrapping api.ErrNotFound.
func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := s.client.Get(ctx, fmt.Sprintf("/users/%d", id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create registers a new user.
func (s *UserService) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	var user model.User
	if err := s.client.Post(ctx, "/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update applies a partial update; nil fields are left unchanged server-side.
func (s *UserService) Update(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error) {
	var user model.User
	if err := s.client.Put(ctx, fmt.Sprintf("/users/%d", id), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes the user with the given id.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/users/%d", id))
}

// Package njia holds the resource services of the claims API: one thin
// module per backend resource, each a pure mapping from a domain
// operation to an HTTP verb, path, and payload shape. Services carry no
// business logic and no validation; the transport client has already
// unwrapped the response envelope by the time results reach them.
package njia

import (
	"njia-admin/internal/api"
)

// Services bundles one service per backend resource, all sharing a single
// transport client.
type Services struct {
	Users  *UserService
	Claims *ClaimService
	Images *ImageService
	Auth   *AuthService
}

// NewServices wires every resource service onto the given client.
func NewServices(client *api.Client) *Services {
	return &Services{
		Users:  NewUserService(client),
		Claims: NewClaimService(client),
		Images: NewImageService(client),
		Auth:   NewAuthService(client),
	}
}

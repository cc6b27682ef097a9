// Package credstore persists the small pieces of client state that
// outlive a single invocation: the bearer token and the session-user
// blob. It is the CLI analogue of the browser's local storage.
package credstore

// Well-known entry keys.
const (
	KeyToken       = "token"
	KeySessionUser = "njiani_user"
)

// Store is a persistent key-value store. Get returns an empty string and
// a nil error for a missing key; Delete of a missing key is a no-op.
// Implementations must be safe for concurrent use.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// TokenSource adapts a Store to the transport client's token lookup.
type TokenSource struct {
	Store Store
}

// Token returns the persisted bearer token, or "" when none is stored.
func (t TokenSource) Token() (string, error) {
	return t.Store.Get(KeyToken)
}

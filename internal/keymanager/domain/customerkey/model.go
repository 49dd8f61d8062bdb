// Package customerkey holds the wrapped Customer Key record Key Manager
// stores per tenant and the repository/error contracts the rest of the
// service programs against.
package customerkey

import (
	"context"
	"errors"
)

// ErrAlreadyExists mirrors the spec's CustomerKeyAlreadyExists error,
// returned by add_key on a duplicate customer_code.
var ErrAlreadyExists = errors.New("customer key already exists")

// ErrNotFound is returned by get_key when no row matches customer_code.
var ErrNotFound = errors.New("customer key not found")

// CustomerKey is one tenant's Customer Key, wrapped (never plaintext) by
// the process CEK.
type CustomerKey struct {
	CustomerCode string
	CipheredKey  string // crypto.SealToString output, base64url-no-pad
}

// Repository persists and queries wrapped Customer Keys.
type Repository interface {
	// Create inserts a new wrapped key. Returns ErrAlreadyExists on a
	// duplicate customer_code.
	Create(ctx context.Context, k *CustomerKey) error
	// Get fetches the wrapped key for customerCode. Returns ErrNotFound if
	// absent.
	Get(ctx context.Context, customerCode string) (*CustomerKey, error)
	// List returns every wrapped key, for the admin-only list_keys
	// operation.
	List(ctx context.Context) ([]*CustomerKey, error)
}

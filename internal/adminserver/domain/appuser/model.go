// Package appuser holds the dokaadmin.appuser record and its repository
// contract. Every appuser belongs to exactly one customer.
package appuser

import "context"

// AppUser is a login on the admin server, either a tenant's admin user or
// (when Admin is false) a regular tenant user.
type AppUser struct {
	ID              int64
	Login           string
	FullName        string
	PasswordHash    string
	DefaultLanguage string
	DefaultTimeZone string
	Admin           bool
	CustomerID      int64
}

// Repository persists and queries dokaadmin.appuser rows.
type Repository interface {
	// Create inserts a new appuser row and returns its generated ID.
	Create(ctx context.Context, u *AppUser) (int64, error)
	// GetByLogin fetches an appuser by its login (email).
	GetByLogin(ctx context.Context, login string) (*AppUser, error)
	// GetByLoginWithCustomerCode fetches an appuser joined with its
	// customer's short code, needed to open a session.
	GetByLoginWithCustomerCode(ctx context.Context, login string) (*AppUser, string, error)
}

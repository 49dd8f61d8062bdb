// github.com/doka-one/doka/internal/adminserver/repo/appuser/postgres.go
package appuser

import (
	"context"

	"go.uber.org/zap"

	dom_appuser "github.com/doka-one/doka/internal/adminserver/domain/appuser"
	"github.com/doka-one/doka/pkg/database/postgres"
)

type repositoryImpl struct {
	logger *zap.Logger
	pool   postgres.Pool
}

// NewRepository builds an appuser.Repository backed by the admin database
// pool.
func NewRepository(logger *zap.Logger, pool postgres.Pool) dom_appuser.Repository {
	return &repositoryImpl{logger: logger, pool: pool}
}

func (r *repositoryImpl) Create(ctx context.Context, u *dom_appuser.AppUser) (int64, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO dokaadmin.appuser
			(login, full_name, password_hash, default_language, default_time_zone, admin, customer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		u.Login, u.FullName, u.PasswordHash, u.DefaultLanguage, u.DefaultTimeZone, u.Admin, u.CustomerID)

	var id int64
	if err := row.Scan(&id); err != nil {
		r.logger.Error("insert appuser failed", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *repositoryImpl) GetByLogin(ctx context.Context, login string) (*dom_appuser.AppUser, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, login, full_name, password_hash, default_language, default_time_zone, admin, customer_id
		FROM dokaadmin.appuser WHERE login = $1`, login)

	var u dom_appuser.AppUser
	if err := row.Scan(&u.ID, &u.Login, &u.FullName, &u.PasswordHash, &u.DefaultLanguage, &u.DefaultTimeZone, &u.Admin, &u.CustomerID); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) GetByLoginWithCustomerCode(ctx context.Context, login string) (*dom_appuser.AppUser, string, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT u.id, u.login, u.full_name, u.password_hash, u.default_language, u.default_time_zone, u.admin, u.customer_id, c.code
		FROM dokaadmin.appuser u
		JOIN dokaadmin.customer c ON c.id = u.customer_id
		WHERE u.login = $1`, login)

	var u dom_appuser.AppUser
	var customerCode string
	if err := row.Scan(&u.ID, &u.Login, &u.FullName, &u.PasswordHash, &u.DefaultLanguage, &u.DefaultTimeZone, &u.Admin, &u.CustomerID, &customerCode); err != nil {
		return nil, "", err
	}
	return &u, customerCode, nil
}

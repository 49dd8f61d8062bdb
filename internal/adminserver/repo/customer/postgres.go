// github.com/doka-one/doka/internal/adminserver/repo/customer/postgres.go
package customer

import (
	"context"

	"go.uber.org/zap"

	dom_customer "github.com/doka-one/doka/internal/adminserver/domain/customer"
	"github.com/doka-one/doka/pkg/database/postgres"
)

type repositoryImpl struct {
	logger *zap.Logger
	pool   postgres.Pool
}

// NewRepository builds a customer.Repository backed by the admin database
// pool.
func NewRepository(logger *zap.Logger, pool postgres.Pool) dom_customer.Repository {
	return &repositoryImpl{logger: logger, pool: pool}
}

func (r *repositoryImpl) CodeTaken(ctx context.Context, code string) (bool, error) {
	row := r.pool.QueryRow(ctx, `SELECT 1 FROM dokaadmin.customer WHERE code = $1`, code)
	var dummy int
	err := row.Scan(&dummy)
	if postgres.IsNoRows(err) {
		return false, nil
	}
	if err != nil {
		r.logger.Error("check customer code taken failed", zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *repositoryImpl) FullNameTaken(ctx context.Context, fullName string) (bool, error) {
	row := r.pool.QueryRow(ctx, `SELECT 1 FROM dokaadmin.customer WHERE full_name = $1`, fullName)
	var dummy int
	err := row.Scan(&dummy)
	if postgres.IsNoRows(err) {
		return false, nil
	}
	if err != nil {
		r.logger.Error("check customer full name taken failed", zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *repositoryImpl) Create(ctx context.Context, c *dom_customer.Customer) (int64, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO dokaadmin.customer (code, full_name, default_language, default_time_zone)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		c.Code, c.FullName, c.DefaultLanguage, c.DefaultTimeZone)

	var id int64
	if err := row.Scan(&id); err != nil {
		if postgres.IsUniqueViolationOnConstraint(err, "customer_full_name_uk") {
			return 0, dom_customer.ErrFullNameTaken
		}
		r.logger.Error("insert customer failed", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *repositoryImpl) GetByCode(ctx context.Context, code string) (*dom_customer.Customer, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, code, full_name, default_language, default_time_zone
		FROM dokaadmin.customer WHERE code = $1`, code)

	var c dom_customer.Customer
	if err := row.Scan(&c.ID, &c.Code, &c.FullName, &c.DefaultLanguage, &c.DefaultTimeZone); err != nil {
		return nil, err
	}
	return &c, nil
}

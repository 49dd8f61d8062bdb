// github.com/doka-one/doka/internal/keymanager/repo/customerkey/postgres.go
package customerkey

import (
	"context"

	"go.uber.org/zap"

	dom "github.com/doka-one/doka/internal/keymanager/domain/customerkey"
	"github.com/doka-one/doka/pkg/database/postgres"
)

type repositoryImpl struct {
	logger *zap.Logger
	pool   postgres.Pool
}

// NewRepository builds a customerkey.Repository backed by keymanager.customer_key.
func NewRepository(logger *zap.Logger, pool postgres.Pool) dom.Repository {
	return &repositoryImpl{logger: logger, pool: pool}
}

func (r *repositoryImpl) Create(ctx context.Context, k *dom.CustomerKey) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO keymanager.customer_key (customer_code, ciphered_key)
		VALUES ($1, $2)`, k.CustomerCode, k.CipheredKey)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return dom.ErrAlreadyExists
		}
		r.logger.Error("insert customer key failed", zap.Error(err))
		return err
	}
	return nil
}

func (r *repositoryImpl) Get(ctx context.Context, customerCode string) (*dom.CustomerKey, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT customer_code, ciphered_key FROM keymanager.customer_key WHERE customer_code = $1`, customerCode)

	var k dom.CustomerKey
	if err := row.Scan(&k.CustomerCode, &k.CipheredKey); err != nil {
		if postgres.IsNoRows(err) {
			return nil, dom.ErrNotFound
		}
		return nil, err
	}
	return &k, nil
}

func (r *repositoryImpl) List(ctx context.Context) ([]*dom.CustomerKey, error) {
	rows, err := r.pool.Query(ctx, `SELECT customer_code, ciphered_key FROM keymanager.customer_key ORDER BY customer_code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*dom.CustomerKey
	for rows.Next() {
		var k dom.CustomerKey
		if err := rows.Scan(&k.CustomerCode, &k.CipheredKey); err != nil {
			return nil, err
		}
		out = append(out, &k)
	}
	return out, rows.Err()
}

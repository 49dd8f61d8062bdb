// Package tenantschema discovers the fs_<code> schemas present on the file
// database, the background processor's entry point into "which tenants
// have work" without File Server needing a dependency on Admin Server's
// dokaadmin.customer table.
package tenantschema

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/doka-one/doka/pkg/database/postgres"
)

type Repository interface {
	// ListCustomerCodes returns the customer_code suffix of every fs_<code>
	// schema currently present on the file database.
	ListCustomerCodes(ctx context.Context) ([]string, error)
}

type repositoryImpl struct {
	logger *zap.Logger
	pool   postgres.Pool
}

func NewRepository(logger *zap.Logger, pool postgres.Pool) Repository {
	return &repositoryImpl{logger: logger, pool: pool}
}

func (r *repositoryImpl) ListCustomerCodes(ctx context.Context) ([]string, error) {
	pattern := `fs\_` + strings.Repeat("_", 8)
	rows, err := r.pool.Query(ctx, `
		SELECT schema_name FROM information_schema.schemata
		WHERE schema_name LIKE $1 ESCAPE '\'
		ORDER BY schema_name`, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var schemaName string
		if err := rows.Scan(&schemaName); err != nil {
			return nil, err
		}
		codes = append(codes, strings.TrimPrefix(schemaName, "fs_"))
	}
	return codes, rows.Err()
}

// github.com/doka-one/doka/internal/documentserver/repo/tagvalue/postgres.go
package tagvalue

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	dom "github.com/doka-one/doka/internal/documentserver/domain/tagvalue"
	"github.com/doka-one/doka/pkg/database/postgres"
)

type repositoryImpl struct {
	logger *zap.Logger
	pool   postgres.Pool
}

// NewRepository builds a tagvalue.Repository backed by
// cs_<tenant>.tag_value.
func NewRepository(logger *zap.Logger, pool postgres.Pool) dom.Repository {
	return &repositoryImpl{logger: logger, pool: pool}
}

func (r *repositoryImpl) Upsert(ctx context.Context, schema string, tv *dom.TagValue) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s.tag_value (tag_id, item_id, value_string, value_integer, value_double, value_date, value_datetime, value_boolean)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (tag_id, item_id) DO UPDATE SET
			value_string = excluded.value_string,
			value_integer = excluded.value_integer,
			value_double = excluded.value_double,
			value_date = excluded.value_date,
			value_datetime = excluded.value_datetime,
			value_boolean = excluded.value_boolean`, schema),
		tv.TagID, tv.ItemID,
		tv.Value.String, tv.Value.Integer, tv.Value.Double, tv.Value.Date, tv.Value.DateTime, tv.Value.Boolean,
	)
	return err
}

func (r *repositoryImpl) ListByItem(ctx context.Context, schema string, itemID int64) ([]*dom.TagValue, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT id, tag_id, item_id, value_string, value_integer, value_double, value_date, value_datetime, value_boolean
		FROM %s.tag_value WHERE item_id = $1`, schema), itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*dom.TagValue
	for rows.Next() {
		var tv dom.TagValue
		if err := rows.Scan(&tv.ID, &tv.TagID, &tv.ItemID,
			&tv.Value.String, &tv.Value.Integer, &tv.Value.Double, &tv.Value.Date, &tv.Value.DateTime, &tv.Value.Boolean); err != nil {
			return nil, err
		}
		out = append(out, &tv)
	}
	return out, rows.Err()
}

func (r *repositoryImpl) DeleteByItemAndTagNames(ctx context.Context, schema string, itemID int64, tagNames []string) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
		DELETE FROM %s.tag_value
		WHERE item_id = $1 AND tag_id IN (SELECT id FROM %s.tag_definition WHERE name = ANY($2))`, schema, schema),
		itemID, tagNames)
	return err
}

// github.com/doka-one/doka/internal/documentserver/repo/item/postgres.go
package item

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	dom "github.com/doka-one/doka/internal/documentserver/domain/item"
	"github.com/doka-one/doka/pkg/database/postgres"
)

type repositoryImpl struct {
	logger *zap.Logger
	pool   postgres.Pool
}

// NewRepository builds an item.Repository backed by cs_<tenant>.item.
func NewRepository(logger *zap.Logger, pool postgres.Pool) dom.Repository {
	return &repositoryImpl{logger: logger, pool: pool}
}

func (r *repositoryImpl) Create(ctx context.Context, schema string, it *dom.Item) (int64, error) {
	var id int64
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO %s.item (name, created_gmt, last_modified_gmt, file_ref)
		VALUES ($1, $2, $3, $4)
		RETURNING id`, schema), it.Name, it.CreatedGMT, it.LastModifiedGMT, it.FileRef)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repositoryImpl) Get(ctx context.Context, schema string, id int64) (*dom.Item, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT id, name, created_gmt, last_modified_gmt, file_ref FROM %s.item WHERE id = $1`, schema), id)
	it, err := scanItem(row)
	if err != nil {
		if postgres.IsNoRows(err) {
			return nil, dom.ErrNotFound
		}
		return nil, err
	}
	return it, nil
}

func (r *repositoryImpl) List(ctx context.Context, schema string, startPage, pageSize int) ([]*dom.Item, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT id, name, created_gmt, last_modified_gmt, file_ref
		FROM %s.item ORDER BY id OFFSET $1 LIMIT $2`, schema), startPage*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *repositoryImpl) Search(ctx context.Context, schema string, joins []string, where string, startPage, pageSize int) ([]*dom.Item, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT DISTINCT item.id, item.name, item.created_gmt, item.last_modified_gmt, item.file_ref FROM %s.item item ", schema)
	for _, j := range joins {
		b.WriteString(j)
		b.WriteString(" ")
	}
	if where != "" {
		b.WriteString("WHERE ")
		b.WriteString(where)
		b.WriteString(" ")
	}
	b.WriteString("ORDER BY item.id OFFSET $1 LIMIT $2")

	rows, err := r.pool.Query(ctx, b.String(), startPage*pageSize, pageSize)
	if err != nil {
		return nil, fmt.Errorf("item: search query: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *repositoryImpl) Touch(ctx context.Context, schema string, id int64, lastModifiedGMT time.Time) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`UPDATE %s.item SET last_modified_gmt = $2 WHERE id = $1`, schema), id, lastModifiedGMT)
	return err
}

type scannable interface {
	Scan(dest ...any) error
}

func scanItem(row scannable) (*dom.Item, error) {
	var it dom.Item
	if err := row.Scan(&it.ID, &it.Name, &it.CreatedGMT, &it.LastModifiedGMT, &it.FileRef); err != nil {
		return nil, err
	}
	return &it, nil
}

type rowsScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanItems(rows rowsScanner) ([]*dom.Item, error) {
	var out []*dom.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

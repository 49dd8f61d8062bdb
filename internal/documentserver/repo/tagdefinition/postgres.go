// github.com/doka-one/doka/internal/documentserver/repo/tagdefinition/postgres.go
package tagdefinition

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	dom "github.com/doka-one/doka/internal/documentserver/domain/tagdefinition"
	"github.com/doka-one/doka/pkg/database/postgres"
	"github.com/doka-one/doka/pkg/filter"
)

type repositoryImpl struct {
	logger *zap.Logger
	pool   postgres.Pool
}

// NewRepository builds a tagdefinition.Repository backed by
// cs_<tenant>.tag_definition.
func NewRepository(logger *zap.Logger, pool postgres.Pool) dom.Repository {
	return &repositoryImpl{logger: logger, pool: pool}
}

func (r *repositoryImpl) Create(ctx context.Context, schema string, td *dom.TagDefinition) (int64, error) {
	var id int64
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO %s.tag_definition (name, type, string_tag_length, default_value)
		VALUES ($1, $2, $3, $4)
		RETURNING id`, schema), td.Name, td.Type.String(), td.StringTagLength, td.DefaultValue)
	if err := row.Scan(&id); err != nil {
		if postgres.IsUniqueViolation(err) {
			return 0, dom.ErrAlreadyExists
		}
		return 0, err
	}
	return id, nil
}

func (r *repositoryImpl) GetByName(ctx context.Context, schema string, name string) (*dom.TagDefinition, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT id, name, type, string_tag_length, default_value FROM %s.tag_definition WHERE name = $1`, schema), name)
	return scanOne(row)
}

func (r *repositoryImpl) GetByID(ctx context.Context, schema string, id int64) (*dom.TagDefinition, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT id, name, type, string_tag_length, default_value FROM %s.tag_definition WHERE id = $1`, schema), id)
	return scanOne(row)
}

func (r *repositoryImpl) List(ctx context.Context, schema string) ([]*dom.TagDefinition, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT id, name, type, string_tag_length, default_value FROM %s.tag_definition ORDER BY name`, schema))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*dom.TagDefinition
	for rows.Next() {
		td, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, td)
	}
	return out, rows.Err()
}

func (r *repositoryImpl) Delete(ctx context.Context, schema string, id int64) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s.tag_definition WHERE id = $1`, schema), id)
	return err
}

type scannable interface {
	Scan(dest ...any) error
}

func scanOne(row scannable) (*dom.TagDefinition, error) {
	td, err := scanRow(row)
	if err != nil {
		if postgres.IsNoRows(err) {
			return nil, dom.ErrNotFound
		}
		return nil, err
	}
	return td, nil
}

func scanRow(row scannable) (*dom.TagDefinition, error) {
	var td dom.TagDefinition
	var typeName string
	if err := row.Scan(&td.ID, &td.Name, &typeName, &td.StringTagLength, &td.DefaultValue); err != nil {
		return nil, err
	}
	tagType, ok := parseTagType(typeName)
	if !ok {
		tagType = filter.TagText
	}
	td.Type = tagType
	return &td, nil
}

func parseTagType(name string) (filter.TagType, bool) {
	for t := filter.TagText; t <= filter.TagDateTime; t++ {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}

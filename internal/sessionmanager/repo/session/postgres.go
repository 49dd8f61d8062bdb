// github.com/doka-one/doka/internal/sessionmanager/repo/session/postgres.go
package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	dom "github.com/doka-one/doka/internal/sessionmanager/domain/session"
	"github.com/doka-one/doka/pkg/database/postgres"
)

type repositoryImpl struct {
	logger *zap.Logger
	pool   postgres.Pool
}

// NewRepository builds a session.Repository backed by
// sessionmanager.session.
func NewRepository(logger *zap.Logger, pool postgres.Pool) dom.Repository {
	return &repositoryImpl{logger: logger, pool: pool}
}

func (r *repositoryImpl) Upsert(ctx context.Context, s *dom.Session) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sessionmanager.session (sid, customer_code, user_name, customer_id, user_id, created, last_active)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (sid) DO UPDATE SET last_active = EXCLUDED.last_active`,
		s.SID, s.CustomerCode, s.UserName, s.CustomerID, s.UserID, s.Created)
	if err != nil {
		r.logger.Error("upsert session failed", zap.Error(err))
		return err
	}
	return nil
}

func (r *repositoryImpl) Get(ctx context.Context, sid string) (*dom.Session, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT sid, customer_code, user_name, customer_id, user_id, created, last_active
		FROM sessionmanager.session WHERE sid = $1`, sid)

	var s dom.Session
	if err := row.Scan(&s.SID, &s.CustomerCode, &s.UserName, &s.CustomerID, &s.UserID, &s.Created, &s.LastActive); err != nil {
		if postgres.IsNoRows(err) {
			return nil, dom.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *repositoryImpl) Touch(ctx context.Context, sid string, now time.Time) error {
	_, err := r.pool.Exec(ctx, `UPDATE sessionmanager.session SET last_active = $2 WHERE sid = $1`, sid, now)
	return err
}

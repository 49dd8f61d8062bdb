// github.com/doka-one/doka/internal/sessionmanager/usecase/session/get_session.go
package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	dom "github.com/doka-one/doka/internal/sessionmanager/domain/session"
)

// GetSessionUseCase resolves a sid to its session record, enforcing both
// the idle and the absolute TTL. Reads never take the per-sid lock: they
// may proceed in parallel with each other.
type GetSessionUseCase interface {
	Execute(ctx context.Context, sid string) (*dom.Session, error)
}

type getSessionUseCaseImpl struct {
	logger          *zap.Logger
	repo            dom.Repository
	idleTimeout     time.Duration
	absoluteTimeout time.Duration
}

func NewGetSessionUseCase(logger *zap.Logger, repo dom.Repository, idleTimeout, absoluteTimeout time.Duration) GetSessionUseCase {
	return &getSessionUseCaseImpl{
		logger:          logger,
		repo:            repo,
		idleTimeout:     idleTimeout,
		absoluteTimeout: absoluteTimeout,
	}
}

func (uc *getSessionUseCaseImpl) Execute(ctx context.Context, sid string) (*dom.Session, error) {
	s, err := uc.repo.Get(ctx, sid)
	if err != nil {
		if err == dom.ErrNotFound {
			return nil, dom.ErrNotFound
		}
		uc.logger.Error("get session failed", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	if now.Sub(s.LastActive) > uc.idleTimeout {
		return nil, dom.ErrTimedOut
	}
	if now.Sub(s.Created) > uc.absoluteTimeout {
		return nil, dom.ErrTimedOut
	}

	if err := uc.repo.Touch(ctx, sid, now); err != nil {
		uc.logger.Warn("touch session failed", zap.Error(err))
	}
	s.LastActive = now

	return s, nil
}

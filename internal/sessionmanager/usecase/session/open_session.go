// github.com/doka-one/doka/internal/sessionmanager/usecase/session/open_session.go
package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	dom "github.com/doka-one/doka/internal/sessionmanager/domain/session"
	"github.com/doka-one/doka/pkg/distributedmutex"
)

// OpenSessionUseCase upserts a session record, renewing last_active if sid
// already exists. Writes for a given sid are serialized through a
// distributed lock so concurrent SM replicas never race on the same
// session row.
type OpenSessionUseCase interface {
	Execute(ctx context.Context, customerCode, userName string, customerID, userID int64, sid string) error
}

type openSessionUseCaseImpl struct {
	logger *zap.Logger
	repo   dom.Repository
	locker distributedmutex.Adapter
}

func NewOpenSessionUseCase(logger *zap.Logger, repo dom.Repository, locker distributedmutex.Adapter) OpenSessionUseCase {
	return &openSessionUseCaseImpl{logger: logger, repo: repo, locker: locker}
}

func (uc *openSessionUseCaseImpl) Execute(ctx context.Context, customerCode, userName string, customerID, userID int64, sid string) error {
	if customerCode == "" || userName == "" || sid == "" {
		return dom.ErrCannotBeCreated
	}

	lockKey := "sessionmanager:sid:" + sid
	uc.locker.Acquire(ctx, lockKey)
	defer uc.locker.Release(ctx, lockKey)

	now := time.Now()
	err := uc.repo.Upsert(ctx, &dom.Session{
		SID:          sid,
		CustomerCode: customerCode,
		UserName:     userName,
		CustomerID:   customerID,
		UserID:       userID,
		Created:      now,
		LastActive:   now,
	})
	if err != nil {
		uc.logger.Error("open_session upsert failed", zap.Error(err))
		return dom.ErrCannotBeCreated
	}
	return nil
}

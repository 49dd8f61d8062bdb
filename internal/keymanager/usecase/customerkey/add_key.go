// github.com/doka-one/doka/internal/keymanager/usecase/customerkey/add_key.go
package customerkey

import (
	"context"
	"time"

	"go.uber.org/zap"

	dom "github.com/doka-one/doka/internal/keymanager/domain/customerkey"
	"github.com/doka-one/doka/pkg/cache"
	"github.com/doka-one/doka/pkg/httperror"
	"github.com/doka-one/doka/pkg/security/crypto"
)

// cacheTTL bounds how long a wrapped key can be served from cache before a
// get_key call falls back to the database.
const cacheTTL = 5 * time.Minute

// AddKeyUseCase generates a fresh Customer Key, wraps it with the CEK, and
// stores it. Fails with a Conflict error (CustomerKeyAlreadyExists) when
// customer_code is already taken.
type AddKeyUseCase interface {
	Execute(ctx context.Context, customerCode string) error
}

type addKeyUseCaseImpl struct {
	logger       *zap.Logger
	repo         dom.Repository
	cekKeyString func() string
	cache        cache.Cache
}

func NewAddKeyUseCase(logger *zap.Logger, repo dom.Repository, cekKeyString func() string, c cache.Cache) AddKeyUseCase {
	return &addKeyUseCaseImpl{logger: logger, repo: repo, cekKeyString: cekKeyString, cache: c}
}

func (uc *addKeyUseCaseImpl) Execute(ctx context.Context, customerCode string) error {
	plainKey, err := crypto.GenerateKeyString()
	if err != nil {
		uc.logger.Error("generate customer key failed", zap.Error(err))
		return httperror.NewForInternalServerErrorWithSingleField("non_field_error", "failed to generate a customer key")
	}

	cipheredKey, err := crypto.SealToString([]byte(plainKey), uc.cekKeyString())
	if err != nil {
		uc.logger.Error("wrap customer key failed", zap.Error(err))
		return httperror.NewForInternalServerErrorWithSingleField("non_field_error", "failed to wrap the customer key")
	}

	err = uc.repo.Create(ctx, &dom.CustomerKey{CustomerCode: customerCode, CipheredKey: cipheredKey})
	if err != nil {
		if err == dom.ErrAlreadyExists {
			return httperror.NewForConflictWithSingleField("customer_code", "a customer key already exists for this customer")
		}
		uc.logger.Error("persist customer key failed", zap.Error(err))
		return httperror.NewForInternalServerErrorWithSingleField("non_field_error", "failed to store the customer key")
	}

	_ = uc.cache.Save(customerCode, cipheredKey, cacheTTL)
	return nil
}

// github.com/doka-one/doka/internal/keymanager/usecase/customerkey/get_key.go
package customerkey

import (
	"context"

	"go.uber.org/zap"

	dom "github.com/doka-one/doka/internal/keymanager/domain/customerkey"
	"github.com/doka-one/doka/pkg/cache"
	"github.com/doka-one/doka/pkg/httperror"
)

// GetKeyUseCase returns the wrapped key for a customer, still CEK-encrypted.
// The cache never holds anything beyond this ciphertext.
type GetKeyUseCase interface {
	Execute(ctx context.Context, customerCode string) (string, error)
}

type getKeyUseCaseImpl struct {
	logger *zap.Logger
	repo   dom.Repository
	cache  cache.Cache
}

func NewGetKeyUseCase(logger *zap.Logger, repo dom.Repository, c cache.Cache) GetKeyUseCase {
	return &getKeyUseCaseImpl{logger: logger, repo: repo, cache: c}
}

func (uc *getKeyUseCaseImpl) Execute(ctx context.Context, customerCode string) (string, error) {
	if cached, err := uc.cache.Fetch(customerCode); err == nil && cached != "" {
		return cached, nil
	}

	k, err := uc.repo.Get(ctx, customerCode)
	if err != nil {
		if err == dom.ErrNotFound {
			return "", httperror.NewForNotFoundWithSingleField("customer_code", "no customer key for this customer")
		}
		uc.logger.Error("fetch customer key failed", zap.Error(err))
		return "", httperror.NewForInternalServerErrorWithSingleField("non_field_error", "failed to fetch the customer key")
	}

	_ = uc.cache.Save(customerCode, k.CipheredKey, cacheTTL)
	return k.CipheredKey, nil
}

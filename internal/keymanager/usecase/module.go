package usecase

import (
	"go.uber.org/fx"

	"github.com/doka-one/doka/internal/keymanager/usecase/customerkey"
	"github.com/doka-one/doka/pkg/cache"
	"github.com/doka-one/doka/pkg/security/cek"
)

func Module() fx.Option {
	return fx.Options(
		fx.Provide(cache.New),
		fx.Provide(cekKeyStringFunc),
		fx.Provide(
			customerkey.NewAddKeyUseCase,
			customerkey.NewGetKeyUseCase,
			customerkey.NewListKeysUseCase,
		),
	)
}

func cekKeyStringFunc(cekKey *cek.CEK) func() string {
	return cekKey.KeyString
}

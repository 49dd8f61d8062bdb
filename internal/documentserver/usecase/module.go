package usecase

import (
	"go.uber.org/fx"

	"github.com/doka-one/doka/config"
	cli_km "github.com/doka-one/doka/internal/documentserver/client/keymanager"
	cli_sm "github.com/doka-one/doka/internal/documentserver/client/sessionmanager"
	cli_tika "github.com/doka-one/doka/internal/documentserver/client/tika"
	uc_fulltext "github.com/doka-one/doka/internal/documentserver/usecase/fulltext"
	uc_item "github.com/doka-one/doka/internal/documentserver/usecase/item"
	uc_search "github.com/doka-one/doka/internal/documentserver/usecase/search"
	"github.com/doka-one/doka/internal/documentserver/usecase/sessionresolver"
	uc_tag "github.com/doka-one/doka/internal/documentserver/usecase/tag"
)

// Module provides every Document Server usecase plus the inter-service
// clients (Session Manager, Key Manager, Tika) they depend on.
func Module() fx.Option {
	return fx.Options(
		fx.Provide(newSessionManagerClient),
		fx.Provide(newKeyManagerClient),
		fx.Provide(newTikaClient),

		fx.Provide(sessionresolver.NewResolver),

		fx.Provide(uc_item.NewCreateUseCase),
		fx.Provide(uc_item.NewGetUseCase),
		fx.Provide(uc_item.NewListUseCase),

		fx.Provide(uc_tag.NewCreateUseCase),
		fx.Provide(uc_tag.NewListUseCase),
		fx.Provide(uc_tag.NewDeleteUseCase),
		fx.Provide(uc_tag.NewWriteUseCase),
		fx.Provide(uc_tag.NewRemoveUseCase),

		fx.Provide(uc_search.NewUseCase),

		fx.Provide(uc_fulltext.NewIndexingUseCase),
		fx.Provide(uc_fulltext.NewDeleteUseCase),
	)
}

func newSessionManagerClient(cfg *config.Configuration) *cli_sm.Client {
	return cli_sm.New(cfg.Peers.SessionManagerBaseURL)
}

func newKeyManagerClient(cfg *config.Configuration) *cli_km.Client {
	return cli_km.New(cfg.Peers.KeyManagerBaseURL)
}

func newTikaClient(cfg *config.Configuration) *cli_tika.Client {
	return cli_tika.New(cfg.Peers.TikaBaseURL)
}

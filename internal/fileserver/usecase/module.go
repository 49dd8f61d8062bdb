package usecase

import (
	"go.uber.org/fx"

	"github.com/doka-one/doka/config"
	cli_doc "github.com/doka-one/doka/internal/fileserver/client/documentserver"
	cli_km "github.com/doka-one/doka/internal/fileserver/client/keymanager"
	cli_sm "github.com/doka-one/doka/internal/fileserver/client/sessionmanager"
	cli_tika "github.com/doka-one/doka/internal/fileserver/client/tika"
	uc_download "github.com/doka-one/doka/internal/fileserver/usecase/download"
	uc_fileinfo "github.com/doka-one/doka/internal/fileserver/usecase/fileinfo"
	uc_filelist "github.com/doka-one/doka/internal/fileserver/usecase/filelist"
	uc_loading "github.com/doka-one/doka/internal/fileserver/usecase/loading"
	"github.com/doka-one/doka/internal/fileserver/usecase/sessionresolver"
	uc_stats "github.com/doka-one/doka/internal/fileserver/usecase/stats"
	uc_upload "github.com/doka-one/doka/internal/fileserver/usecase/upload"
)

// Module provides every File Server usecase plus the inter-service clients
// (Session Manager, Key Manager, Tika, Document Server) they depend on.
func Module() fx.Option {
	return fx.Options(
		fx.Provide(newSessionManagerClient),
		fx.Provide(newKeyManagerClient),
		fx.Provide(newTikaClient),
		fx.Provide(newDocumentServerClient),

		fx.Provide(sessionresolver.NewResolver),

		fx.Provide(uc_upload.NewUseCase),
		fx.Provide(uc_download.NewUseCase),
		fx.Provide(uc_stats.NewUseCase),
		fx.Provide(uc_loading.NewUseCase),
		fx.Provide(uc_fileinfo.NewUseCase),
		fx.Provide(uc_filelist.NewUseCase),
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

func newDocumentServerClient(cfg *config.Configuration) *cli_doc.Client {
	return cli_doc.New(cfg.Peers.DocumentServerBaseURL)
}

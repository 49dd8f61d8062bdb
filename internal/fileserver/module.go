// Package fileserver wires File Server: chunked upload, background
// full-text/preview processing, and download, all scoped per tenant via
// fs_<code> file schemas (pkg/tenant).
package fileserver

import (
	"go.uber.org/fx"

	"github.com/doka-one/doka/internal/fileserver/background"
	iface "github.com/doka-one/doka/internal/fileserver/interface/http"
	"github.com/doka-one/doka/internal/fileserver/partstore"
	"github.com/doka-one/doka/internal/fileserver/repo"
	"github.com/doka-one/doka/internal/fileserver/service"
	"github.com/doka-one/doka/internal/fileserver/usecase"
)

func Module() fx.Option {
	return fx.Options(
		repo.Module(),
		fx.Provide(partstore.New),
		usecase.Module(),
		service.Module(),
		iface.Module(),
		background.Module(),
	)
}

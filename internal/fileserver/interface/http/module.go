package http

import (
	"go.uber.org/fx"

	"github.com/doka-one/doka/internal/fileserver/interface/http/download"
	"github.com/doka-one/doka/internal/fileserver/interface/http/fileinfo"
	"github.com/doka-one/doka/internal/fileserver/interface/http/filelist"
	"github.com/doka-one/doka/internal/fileserver/interface/http/loading"
	"github.com/doka-one/doka/internal/fileserver/interface/http/stats"
	"github.com/doka-one/doka/internal/fileserver/interface/http/upload"
	"github.com/doka-one/doka/internal/transporthttp"
)

func Module() fx.Option {
	return fx.Options(
		fx.Provide(
			transporthttp.AsRoute(upload.NewUploadHTTPHandler),
			transporthttp.AsRoute(download.NewDownloadHTTPHandler),
			transporthttp.AsRoute(stats.NewStatsHTTPHandler),
			transporthttp.AsRoute(loading.NewLoadingHTTPHandler),
			transporthttp.AsRoute(fileinfo.NewFileInfoHTTPHandler),
			transporthttp.AsRoute(filelist.NewFileListHTTPHandler),
		),
	)
}

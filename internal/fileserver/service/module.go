package service

import (
	"go.uber.org/fx"

	svc_download "github.com/doka-one/doka/internal/fileserver/service/download"
	svc_fileinfo "github.com/doka-one/doka/internal/fileserver/service/fileinfo"
	svc_filelist "github.com/doka-one/doka/internal/fileserver/service/filelist"
	svc_loading "github.com/doka-one/doka/internal/fileserver/service/loading"
	svc_stats "github.com/doka-one/doka/internal/fileserver/service/stats"
	svc_upload "github.com/doka-one/doka/internal/fileserver/service/upload"
)

func Module() fx.Option {
	return fx.Options(
		fx.Provide(svc_upload.NewService),
		fx.Provide(svc_download.NewService),
		fx.Provide(svc_stats.NewService),
		fx.Provide(svc_loading.NewService),
		fx.Provide(svc_fileinfo.NewService),
		fx.Provide(svc_filelist.NewService),
	)
}

package service

import (
	"go.uber.org/fx"

	svc_fulltext "github.com/doka-one/doka/internal/documentserver/service/fulltext"
	svc_item "github.com/doka-one/doka/internal/documentserver/service/item"
	svc_search "github.com/doka-one/doka/internal/documentserver/service/search"
	svc_tag "github.com/doka-one/doka/internal/documentserver/service/tag"
)

func Module() fx.Option {
	return fx.Options(
		fx.Provide(svc_item.NewService),
		fx.Provide(svc_tag.NewService),
		fx.Provide(svc_search.NewService),
		fx.Provide(svc_fulltext.NewService),
	)
}

package http

import (
	"go.uber.org/fx"

	"github.com/doka-one/doka/internal/documentserver/interface/http/fulltext"
	"github.com/doka-one/doka/internal/documentserver/interface/http/item"
	"github.com/doka-one/doka/internal/documentserver/interface/http/itemtags"
	"github.com/doka-one/doka/internal/documentserver/interface/http/search"
	"github.com/doka-one/doka/internal/documentserver/interface/http/tag"
	"github.com/doka-one/doka/internal/transporthttp"
)

func Module() fx.Option {
	return fx.Options(
		fx.Provide(
			transporthttp.AsRoute(item.NewListItemHTTPHandler),
			transporthttp.AsRoute(item.NewGetItemHTTPHandler),
			transporthttp.AsRoute(item.NewCreateItemHTTPHandler),

			transporthttp.AsRoute(itemtags.NewWriteTagsHTTPHandler),
			transporthttp.AsRoute(itemtags.NewRemoveTagsHTTPHandler),

			transporthttp.AsRoute(tag.NewCreateTagHTTPHandler),
			transporthttp.AsRoute(tag.NewListTagHTTPHandler),
			transporthttp.AsRoute(tag.NewDeleteTagHTTPHandler),

			transporthttp.AsRoute(search.NewSearchHTTPHandler),

			transporthttp.AsRoute(fulltext.NewIndexingHTTPHandler),
			transporthttp.AsRoute(fulltext.NewDeleteIndexingHTTPHandler),
			transporthttp.AsRoute(fulltext.NewInternalIndexingHTTPHandler),
			transporthttp.AsRoute(fulltext.NewInternalDeleteIndexingHTTPHandler),
		),
	)
}

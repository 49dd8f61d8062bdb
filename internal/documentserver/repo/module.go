package repo

import (
	"go.uber.org/fx"

	"github.com/doka-one/doka/internal/documentserver/repo/document"
	"github.com/doka-one/doka/internal/documentserver/repo/item"
	"github.com/doka-one/doka/internal/documentserver/repo/tagdefinition"
	"github.com/doka-one/doka/internal/documentserver/repo/tagvalue"
)

// Module provides every Document Server repository, wired against the
// content_pool. One Document Server process serves every tenant; each
// repository method takes the caller-resolved cs_<code> schema name
// (pkg/tenant) and schema-qualifies its SQL directly,
// the way original_source/document-server/src/item_query.rs builds
// "cs_{customer_code}.item" rather than relying on a connection-wide
// search_path.
func Module() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(item.NewRepository, fx.ParamTags(``, `name:"content_pool"`)),
			fx.Annotate(tagdefinition.NewRepository, fx.ParamTags(``, `name:"content_pool"`)),
			fx.Annotate(tagvalue.NewRepository, fx.ParamTags(``, `name:"content_pool"`)),
			fx.Annotate(document.NewRepository, fx.ParamTags(``, `name:"content_pool"`)),
		),
	)
}

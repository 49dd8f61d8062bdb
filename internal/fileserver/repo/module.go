package repo

import (
	"go.uber.org/fx"

	"github.com/doka-one/doka/internal/fileserver/repo/filepart"
	"github.com/doka-one/doka/internal/fileserver/repo/filereference"
	"github.com/doka-one/doka/internal/fileserver/repo/tenantschema"
)

// Module provides every File Server repository, wired against the
// file_pool. Each repository method takes the caller-resolved fs_<code>
// schema name (pkg/tenant) and schema-qualifies its SQL directly, the same
// way internal/documentserver/repo does for cs_<code>.
func Module() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(filereference.NewRepository, fx.ParamTags(``, `name:"file_pool"`)),
			fx.Annotate(filepart.NewRepository, fx.ParamTags(``, `name:"file_pool"`)),
			fx.Annotate(tenantschema.NewRepository, fx.ParamTags(``, `name:"file_pool"`)),
		),
	)
}

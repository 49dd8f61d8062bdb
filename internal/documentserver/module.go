// Package documentserver wires Document Server: items, tag definitions and
// values, filtered search, and the full-text indexing pipeline, all scoped
// per tenant via cs_<code> content schemas (pkg/tenant).
package documentserver

import (
	"go.uber.org/fx"

	iface "github.com/doka-one/doka/internal/documentserver/interface/http"
	"github.com/doka-one/doka/internal/documentserver/repo"
	"github.com/doka-one/doka/internal/documentserver/service"
	"github.com/doka-one/doka/internal/documentserver/usecase"
)

func Module() fx.Option {
	return fx.Options(
		repo.Module(),
		usecase.Module(),
		service.Module(),
		iface.Module(),
	)
}

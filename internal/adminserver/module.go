// Package adminserver wires the tenant-provisioning and admin-login
// vertical: dokaadmin.customer / dokaadmin.appuser persistence, the
// create_customer workflow, and their HTTP surface.
package adminserver

import (
	"go.uber.org/fx"

	iface "github.com/doka-one/doka/internal/adminserver/interface/http"
	"github.com/doka-one/doka/internal/adminserver/repo"
	"github.com/doka-one/doka/internal/adminserver/service"
	"github.com/doka-one/doka/internal/adminserver/usecase"
)

func Module() fx.Option {
	return fx.Options(
		repo.Module(),
		usecase.Module(),
		service.Module(),
		iface.Module(),
	)
}

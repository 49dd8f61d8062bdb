// Package sessionmanager wires Session Manager: sid-keyed session storage
// with idle/absolute TTL enforcement and per-sid distributed locking on
// writes.
package sessionmanager

import (
	"go.uber.org/fx"

	iface "github.com/doka-one/doka/internal/sessionmanager/interface/http"
	"github.com/doka-one/doka/internal/sessionmanager/repo"
	"github.com/doka-one/doka/internal/sessionmanager/service"
	"github.com/doka-one/doka/internal/sessionmanager/usecase"
)

func Module() fx.Option {
	return fx.Options(
		repo.Module(),
		usecase.Module(),
		service.Module(),
		iface.Module(),
	)
}

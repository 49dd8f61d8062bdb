// Package keymanager wires Key Manager: wrapped Customer Key storage,
// add_key/get_key/list_keys, and the cachego-backed cache in front of
// get_key.
package keymanager

import (
	"go.uber.org/fx"

	iface "github.com/doka-one/doka/internal/keymanager/interface/http"
	"github.com/doka-one/doka/internal/keymanager/repo"
	"github.com/doka-one/doka/internal/keymanager/service"
	"github.com/doka-one/doka/internal/keymanager/usecase"
)

func Module() fx.Option {
	return fx.Options(
		repo.Module(),
		usecase.Module(),
		service.Module(),
		iface.Module(),
	)
}

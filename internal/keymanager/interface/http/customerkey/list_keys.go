// github.com/doka-one/doka/internal/keymanager/interface/http/customerkey/list_keys.go
package customerkey

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	svc "github.com/doka-one/doka/internal/keymanager/service/customerkey"
	"github.com/doka-one/doka/pkg/httperror"
)

type ListKeysHTTPHandler struct {
	logger  *zap.Logger
	service svc.Service
}

func NewListKeysHTTPHandler(logger *zap.Logger, service svc.Service) *ListKeysHTTPHandler {
	return &ListKeysHTTPHandler{logger: logger, service: service}
}

func (*ListKeysHTTPHandler) Pattern() string {
	return "GET /keys"
}

func (h *ListKeysHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	keys, err := h.service.ListKeys(r.Context(), r.Header.Get("token"))
	if err != nil {
		h.logger.Warn("list_keys failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	json.NewEncoder(w).Encode(keys)
}

// github.com/doka-one/doka/internal/keymanager/interface/http/customerkey/get_key.go
package customerkey

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	svc "github.com/doka-one/doka/internal/keymanager/service/customerkey"
	"github.com/doka-one/doka/pkg/httperror"
)

type GetKeyHTTPHandler struct {
	logger  *zap.Logger
	service svc.Service
}

func NewGetKeyHTTPHandler(logger *zap.Logger, service svc.Service) *GetKeyHTTPHandler {
	return &GetKeyHTTPHandler{logger: logger, service: service}
}

func (*GetKeyHTTPHandler) Pattern() string {
	return "GET /key/{customer_code}"
}

func (h *GetKeyHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	customerCode := r.PathValue("customer_code")

	resp, err := h.service.GetKey(r.Context(), customerCode)
	if err != nil {
		h.logger.Warn("get_key failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	json.NewEncoder(w).Encode(resp)
}

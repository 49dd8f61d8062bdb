// github.com/doka-one/doka/internal/keymanager/interface/http/customerkey/add_key.go
package customerkey

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	svc "github.com/doka-one/doka/internal/keymanager/service/customerkey"
	"github.com/doka-one/doka/pkg/httperror"
)

type AddKeyHTTPHandler struct {
	logger  *zap.Logger
	service svc.Service
}

func NewAddKeyHTTPHandler(logger *zap.Logger, service svc.Service) *AddKeyHTTPHandler {
	return &AddKeyHTTPHandler{logger: logger, service: service}
}

func (*AddKeyHTTPHandler) Pattern() string {
	return "POST /key"
}

func (h *AddKeyHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req svc.AddKeyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperror.ResponseError(w, httperror.NewForBadRequestWithSingleField("non_field_error", "malformed JSON body"))
		return
	}

	if err := h.service.AddKey(r.Context(), &req, r.Header.Get("token")); err != nil {
		h.logger.Warn("add_key failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

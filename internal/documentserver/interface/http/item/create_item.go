// github.com/doka-one/doka/internal/documentserver/interface/http/item/create_item.go
package item

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	svc "github.com/doka-one/doka/internal/documentserver/service/item"
	"github.com/doka-one/doka/pkg/httperror"
)

type CreateItemHTTPHandler struct {
	logger  *zap.Logger
	service svc.Service
}

func NewCreateItemHTTPHandler(logger *zap.Logger, service svc.Service) *CreateItemHTTPHandler {
	return &CreateItemHTTPHandler{logger: logger, service: service}
}

func (*CreateItemHTTPHandler) Pattern() string {
	return "POST /item"
}

func (h *CreateItemHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req svc.CreateItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperror.ResponseError(w, httperror.NewForBadRequestWithSingleField("non_field_error", "malformed JSON body"))
		return
	}

	it, err := h.service.Create(r.Context(), r.Header.Get("sid"), &req)
	if err != nil {
		h.logger.Warn("create item failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	json.NewEncoder(w).Encode(it)
}

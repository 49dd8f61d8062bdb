// github.com/doka-one/doka/internal/documentserver/interface/http/tag/create_tag.go
package tag

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	svc "github.com/doka-one/doka/internal/documentserver/service/tag"
	"github.com/doka-one/doka/pkg/httperror"
)

type CreateTagHTTPHandler struct {
	logger  *zap.Logger
	service svc.Service
}

func NewCreateTagHTTPHandler(logger *zap.Logger, service svc.Service) *CreateTagHTTPHandler {
	return &CreateTagHTTPHandler{logger: logger, service: service}
}

func (*CreateTagHTTPHandler) Pattern() string {
	return "POST /tag"
}

func (h *CreateTagHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req svc.CreateTagRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperror.ResponseError(w, httperror.NewForBadRequestWithSingleField("non_field_error", "malformed JSON body"))
		return
	}

	td, err := h.service.Create(r.Context(), r.Header.Get("sid"), &req)
	if err != nil {
		h.logger.Warn("create tag failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	json.NewEncoder(w).Encode(td)
}

// github.com/doka-one/doka/internal/documentserver/interface/http/fulltext/internal_delete_text_indexing.go
package fulltext

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	svc "github.com/doka-one/doka/internal/documentserver/service/fulltext"
	"github.com/doka-one/doka/pkg/httperror"
)

type InternalDeleteIndexingHTTPHandler struct {
	logger  *zap.Logger
	service svc.Service
}

func NewInternalDeleteIndexingHTTPHandler(logger *zap.Logger, service svc.Service) *InternalDeleteIndexingHTTPHandler {
	return &InternalDeleteIndexingHTTPHandler{logger: logger, service: service}
}

func (*InternalDeleteIndexingHTTPHandler) Pattern() string {
	return "POST /internal/delete_text_indexing"
}

func (h *InternalDeleteIndexingHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req svc.InternalDeleteIndexingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperror.ResponseError(w, httperror.NewForBadRequestWithSingleField("non_field_error", "malformed JSON body"))
		return
	}

	if err := h.service.DeleteIndexByCustomerCode(r.Context(), &req); err != nil {
		h.logger.Warn("internal delete text indexing failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

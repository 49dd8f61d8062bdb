// github.com/doka-one/doka/internal/documentserver/interface/http/fulltext/delete_text_indexing.go
package fulltext

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	svc "github.com/doka-one/doka/internal/documentserver/service/fulltext"
	"github.com/doka-one/doka/pkg/httperror"
)

type DeleteIndexingHTTPHandler struct {
	logger  *zap.Logger
	service svc.Service
}

func NewDeleteIndexingHTTPHandler(logger *zap.Logger, service svc.Service) *DeleteIndexingHTTPHandler {
	return &DeleteIndexingHTTPHandler{logger: logger, service: service}
}

func (*DeleteIndexingHTTPHandler) Pattern() string {
	return "POST /delete_text_indexing"
}

func (h *DeleteIndexingHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req svc.DeleteIndexingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperror.ResponseError(w, httperror.NewForBadRequestWithSingleField("non_field_error", "malformed JSON body"))
		return
	}

	if err := h.service.DeleteIndex(r.Context(), r.Header.Get("sid"), &req); err != nil {
		h.logger.Warn("delete text indexing failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

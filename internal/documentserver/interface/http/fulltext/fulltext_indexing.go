// github.com/doka-one/doka/internal/documentserver/interface/http/fulltext/fulltext_indexing.go
package fulltext

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	svc "github.com/doka-one/doka/internal/documentserver/service/fulltext"
	"github.com/doka-one/doka/pkg/httperror"
)

type IndexingHTTPHandler struct {
	logger  *zap.Logger
	service svc.Service
}

func NewIndexingHTTPHandler(logger *zap.Logger, service svc.Service) *IndexingHTTPHandler {
	return &IndexingHTTPHandler{logger: logger, service: service}
}

func (*IndexingHTTPHandler) Pattern() string {
	return "POST /fulltext_indexing"
}

func (h *IndexingHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req svc.IndexingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperror.ResponseError(w, httperror.NewForBadRequestWithSingleField("non_field_error", "malformed JSON body"))
		return
	}

	reply, err := h.service.Index(r.Context(), r.Header.Get("sid"), &req)
	if err != nil {
		h.logger.Warn("fulltext indexing failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	json.NewEncoder(w).Encode(reply)
}

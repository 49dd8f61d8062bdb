// github.com/doka-one/doka/internal/documentserver/interface/http/fulltext/internal_fulltext_indexing.go
package fulltext

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	svc "github.com/doka-one/doka/internal/documentserver/service/fulltext"
	"github.com/doka-one/doka/pkg/httperror"
)

// InternalIndexingHTTPHandler is the service-to-service counterpart of
// IndexingHTTPHandler: File Server's background processor has no live sid to
// present, only the customer_code of the tenant it is already processing.
type InternalIndexingHTTPHandler struct {
	logger  *zap.Logger
	service svc.Service
}

func NewInternalIndexingHTTPHandler(logger *zap.Logger, service svc.Service) *InternalIndexingHTTPHandler {
	return &InternalIndexingHTTPHandler{logger: logger, service: service}
}

func (*InternalIndexingHTTPHandler) Pattern() string {
	return "POST /internal/fulltext_indexing"
}

func (h *InternalIndexingHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req svc.InternalIndexingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperror.ResponseError(w, httperror.NewForBadRequestWithSingleField("non_field_error", "malformed JSON body"))
		return
	}

	reply, err := h.service.IndexByCustomerCode(r.Context(), &req)
	if err != nil {
		h.logger.Warn("internal fulltext indexing failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	json.NewEncoder(w).Encode(reply)
}

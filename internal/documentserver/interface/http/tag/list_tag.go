// github.com/doka-one/doka/internal/documentserver/interface/http/tag/list_tag.go
package tag

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	svc "github.com/doka-one/doka/internal/documentserver/service/tag"
	"github.com/doka-one/doka/pkg/httperror"
)

type ListTagHTTPHandler struct {
	logger  *zap.Logger
	service svc.Service
}

func NewListTagHTTPHandler(logger *zap.Logger, service svc.Service) *ListTagHTTPHandler {
	return &ListTagHTTPHandler{logger: logger, service: service}
}

func (*ListTagHTTPHandler) Pattern() string {
	return "GET /tag"
}

func (h *ListTagHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	tags, err := h.service.List(r.Context(), r.Header.Get("sid"))
	if err != nil {
		h.logger.Warn("list tags failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	json.NewEncoder(w).Encode(tags)
}

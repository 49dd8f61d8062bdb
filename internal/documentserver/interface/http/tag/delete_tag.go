// github.com/doka-one/doka/internal/documentserver/interface/http/tag/delete_tag.go
package tag

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	svc "github.com/doka-one/doka/internal/documentserver/service/tag"
	"github.com/doka-one/doka/pkg/httperror"
)

type DeleteTagHTTPHandler struct {
	logger  *zap.Logger
	service svc.Service
}

func NewDeleteTagHTTPHandler(logger *zap.Logger, service svc.Service) *DeleteTagHTTPHandler {
	return &DeleteTagHTTPHandler{logger: logger, service: service}
}

func (*DeleteTagHTTPHandler) Pattern() string {
	return "DELETE /tag/{id}"
}

func (h *DeleteTagHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httperror.ResponseError(w, httperror.NewForBadRequestWithSingleField("id", "id must be an integer"))
		return
	}

	if err := h.service.Delete(r.Context(), r.Header.Get("sid"), id); err != nil {
		h.logger.Warn("delete tag failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

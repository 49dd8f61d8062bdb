// github.com/doka-one/doka/internal/documentserver/interface/http/itemtags/remove_tags.go
package itemtags

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	svc "github.com/doka-one/doka/internal/documentserver/service/tag"
	"github.com/doka-one/doka/pkg/httperror"
)

type RemoveTagsHTTPHandler struct {
	logger  *zap.Logger
	service svc.Service
}

func NewRemoveTagsHTTPHandler(logger *zap.Logger, service svc.Service) *RemoveTagsHTTPHandler {
	return &RemoveTagsHTTPHandler{logger: logger, service: service}
}

func (*RemoveTagsHTTPHandler) Pattern() string {
	return "DELETE /item/{id}/tags"
}

func (h *RemoveTagsHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httperror.ResponseError(w, httperror.NewForBadRequestWithSingleField("id", "id must be an integer"))
		return
	}

	names := splitNames(r.URL.Query().Get("names"))

	if err := h.service.RemoveTags(r.Context(), r.Header.Get("sid"), id, names); err != nil {
		h.logger.Warn("remove item tags failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

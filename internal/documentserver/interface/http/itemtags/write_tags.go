// Package itemtags implements the two item-scoped tag endpoints,
// POST /item/<id>/tags and DELETE /item/<id>/tags, kept apart from
// interface/http/item (plain item CRUD) and interface/http/tag (tag
// definition CRUD) since they straddle both resources.
package itemtags

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	svc "github.com/doka-one/doka/internal/documentserver/service/tag"
	"github.com/doka-one/doka/pkg/httperror"
)

type WriteTagsHTTPHandler struct {
	logger  *zap.Logger
	service svc.Service
}

func NewWriteTagsHTTPHandler(logger *zap.Logger, service svc.Service) *WriteTagsHTTPHandler {
	return &WriteTagsHTTPHandler{logger: logger, service: service}
}

func (*WriteTagsHTTPHandler) Pattern() string {
	return "POST /item/{id}/tags"
}

func (h *WriteTagsHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httperror.ResponseError(w, httperror.NewForBadRequestWithSingleField("id", "id must be an integer"))
		return
	}

	var props []svc.PropertyValueDTO
	if err := json.NewDecoder(r.Body).Decode(&props); err != nil {
		httperror.ResponseError(w, httperror.NewForBadRequestWithSingleField("non_field_error", "malformed JSON body"))
		return
	}

	if err := h.service.WriteProperties(r.Context(), r.Header.Get("sid"), id, props); err != nil {
		h.logger.Warn("write item properties failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

func splitNames(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

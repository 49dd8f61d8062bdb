// github.com/doka-one/doka/internal/documentserver/interface/http/item/list_item.go
package item

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	svc "github.com/doka-one/doka/internal/documentserver/service/item"
	"github.com/doka-one/doka/pkg/httperror"
)

type ListItemHTTPHandler struct {
	logger  *zap.Logger
	service svc.Service
}

func NewListItemHTTPHandler(logger *zap.Logger, service svc.Service) *ListItemHTTPHandler {
	return &ListItemHTTPHandler{logger: logger, service: service}
}

func (*ListItemHTTPHandler) Pattern() string {
	return "GET /item"
}

func (h *ListItemHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	startPage, _ := strconv.Atoi(r.URL.Query().Get("start_page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	items, err := h.service.List(r.Context(), r.Header.Get("sid"), startPage, pageSize)
	if err != nil {
		h.logger.Warn("list items failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	json.NewEncoder(w).Encode(items)
}

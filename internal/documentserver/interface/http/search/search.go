// github.com/doka-one/doka/internal/documentserver/interface/http/search/search.go
package search

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	svc "github.com/doka-one/doka/internal/documentserver/service/search"
	"github.com/doka-one/doka/pkg/httperror"
)

type SearchHTTPHandler struct {
	logger  *zap.Logger
	service svc.Service
}

func NewSearchHTTPHandler(logger *zap.Logger, service svc.Service) *SearchHTTPHandler {
	return &SearchHTTPHandler{logger: logger, service: service}
}

func (*SearchHTTPHandler) Pattern() string {
	return "GET /search"
}

func (h *SearchHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	q := r.URL.Query()
	startPage, _ := strconv.Atoi(q.Get("start_page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))

	items, err := h.service.Search(r.Context(), r.Header.Get("sid"), q.Get("filters"), startPage, pageSize)
	if err != nil {
		h.logger.Warn("search failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	json.NewEncoder(w).Encode(items)
}

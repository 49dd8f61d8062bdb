// github.com/doka-one/doka/internal/documentserver/interface/http/item/get_item.go
package item

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	svc "github.com/doka-one/doka/internal/documentserver/service/item"
	"github.com/doka-one/doka/pkg/httperror"
)

type GetItemHTTPHandler struct {
	logger  *zap.Logger
	service svc.Service
}

func NewGetItemHTTPHandler(logger *zap.Logger, service svc.Service) *GetItemHTTPHandler {
	return &GetItemHTTPHandler{logger: logger, service: service}
}

func (*GetItemHTTPHandler) Pattern() string {
	return "GET /item/{id}"
}

func (h *GetItemHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httperror.ResponseError(w, httperror.NewForBadRequestWithSingleField("id", "id must be an integer"))
		return
	}

	it, err := h.service.Get(r.Context(), r.Header.Get("sid"), id)
	if err != nil {
		h.logger.Warn("get item failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	json.NewEncoder(w).Encode(it)
}

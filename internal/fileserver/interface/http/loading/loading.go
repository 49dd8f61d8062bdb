// github.com/doka-one/doka/internal/fileserver/interface/http/loading/loading.go
package loading

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	svc "github.com/doka-one/doka/internal/fileserver/service/loading"
	"github.com/doka-one/doka/pkg/httperror"
)

type LoadingHTTPHandler struct {
	logger  *zap.Logger
	service svc.Service
}

func NewLoadingHTTPHandler(logger *zap.Logger, service svc.Service) *LoadingHTTPHandler {
	return &LoadingHTTPHandler{logger: logger, service: service}
}

func (*LoadingHTTPHandler) Pattern() string {
	return "GET /loading"
}

func (h *LoadingHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	entries, err := h.service.List(r.Context(), r.Header.Get("sid"))
	if err != nil {
		h.logger.Warn("loading list failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	json.NewEncoder(w).Encode(entries)
}

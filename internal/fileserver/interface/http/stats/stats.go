// github.com/doka-one/doka/internal/fileserver/interface/http/stats/stats.go
package stats

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	svc "github.com/doka-one/doka/internal/fileserver/service/stats"
	"github.com/doka-one/doka/pkg/httperror"
)

type StatsHTTPHandler struct {
	logger  *zap.Logger
	service svc.Service
}

func NewStatsHTTPHandler(logger *zap.Logger, service svc.Service) *StatsHTTPHandler {
	return &StatsHTTPHandler{logger: logger, service: service}
}

func (*StatsHTTPHandler) Pattern() string {
	return "GET /stats/{file_ref}"
}

func (h *StatsHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	reply, err := h.service.Stats(r.Context(), r.Header.Get("sid"), r.PathValue("file_ref"))
	if err != nil {
		h.logger.Warn("stats failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	json.NewEncoder(w).Encode(reply)
}

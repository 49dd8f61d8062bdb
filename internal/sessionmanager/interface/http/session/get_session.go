// github.com/doka-one/doka/internal/sessionmanager/interface/http/session/get_session.go
package session

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	svc "github.com/doka-one/doka/internal/sessionmanager/service/session"
	"github.com/doka-one/doka/pkg/httperror"
)

type GetSessionHTTPHandler struct {
	logger  *zap.Logger
	service svc.Service
}

func NewGetSessionHTTPHandler(logger *zap.Logger, service svc.Service) *GetSessionHTTPHandler {
	return &GetSessionHTTPHandler{logger: logger, service: service}
}

func (*GetSessionHTTPHandler) Pattern() string {
	return "GET /session/{sid}"
}

func (h *GetSessionHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	sid := r.PathValue("sid")

	resp, err := h.service.GetSession(r.Context(), sid)
	if err != nil {
		h.logger.Warn("get_session failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	json.NewEncoder(w).Encode(resp)
}

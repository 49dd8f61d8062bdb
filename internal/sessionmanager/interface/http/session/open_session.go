// github.com/doka-one/doka/internal/sessionmanager/interface/http/session/open_session.go
package session

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	svc "github.com/doka-one/doka/internal/sessionmanager/service/session"
	"github.com/doka-one/doka/pkg/httperror"
)

type OpenSessionHTTPHandler struct {
	logger  *zap.Logger
	service svc.Service
}

func NewOpenSessionHTTPHandler(logger *zap.Logger, service svc.Service) *OpenSessionHTTPHandler {
	return &OpenSessionHTTPHandler{logger: logger, service: service}
}

func (*OpenSessionHTTPHandler) Pattern() string {
	return "POST /session"
}

func (h *OpenSessionHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req svc.OpenSessionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperror.ResponseError(w, httperror.NewForBadRequestWithSingleField("non_field_error", "malformed JSON body"))
		return
	}

	if err := h.service.OpenSession(r.Context(), &req); err != nil {
		h.logger.Warn("open_session failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

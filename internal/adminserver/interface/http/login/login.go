// github.com/doka-one/doka/internal/adminserver/interface/http/login/login.go
package login

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	svc_login "github.com/doka-one/doka/internal/adminserver/service/login"
	"github.com/doka-one/doka/pkg/httperror"
)

type LoginHTTPHandler struct {
	logger  *zap.Logger
	service svc_login.LoginService
}

func NewLoginHTTPHandler(logger *zap.Logger, service svc_login.LoginService) *LoginHTTPHandler {
	return &LoginHTTPHandler{logger: logger, service: service}
}

func (*LoginHTTPHandler) Pattern() string {
	return "POST /login"
}

func (h *LoginHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req svc_login.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperror.ResponseError(w, httperror.NewForBadRequestWithSingleField("non_field_error", "malformed JSON body"))
		return
	}

	resp, err := h.service.Execute(r.Context(), &req)
	if err != nil {
		h.logger.Warn("login failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode login response", zap.Error(err))
		httperror.ResponseError(w, err)
	}
}

// github.com/doka-one/doka/internal/adminserver/interface/http/customer/create.go
package customer

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	svc_customer "github.com/doka-one/doka/internal/adminserver/service/customer"
	"github.com/doka-one/doka/pkg/httperror"
)

type CreateCustomerHTTPHandler struct {
	logger  *zap.Logger
	service svc_customer.CreateCustomerService
}

func NewCreateCustomerHTTPHandler(logger *zap.Logger, service svc_customer.CreateCustomerService) *CreateCustomerHTTPHandler {
	return &CreateCustomerHTTPHandler{logger: logger, service: service}
}

func (*CreateCustomerHTTPHandler) Pattern() string {
	return "POST /customer"
}

func (h *CreateCustomerHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req svc_customer.CreateCustomerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperror.ResponseError(w, httperror.NewForBadRequestWithSingleField("non_field_error", "malformed JSON body"))
		return
	}

	securityToken := r.Header.Get("token")

	resp, err := h.service.Execute(r.Context(), &req, securityToken)
	if err != nil {
		h.logger.Warn("create customer failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode create customer response", zap.Error(err))
		httperror.ResponseError(w, err)
	}
}

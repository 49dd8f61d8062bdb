// github.com/doka-one/doka/internal/adminserver/service/customer/create.go
package customer

import (
	"context"

	"go.uber.org/zap"

	"github.com/doka-one/doka/config"
	uc_createcustomer "github.com/doka-one/doka/internal/adminserver/usecase/createcustomer"
	"github.com/doka-one/doka/pkg/httperror"
)

// CreateCustomerRequestDTO is the JSON body of POST /customer.
type CreateCustomerRequestDTO struct {
	CustomerName  string `json:"customer_name"`
	Email         string `json:"email"`
	AdminPassword string `json:"admin_password"`
}

// CreateCustomerResponseDTO mirrors the original implementation's
// CreateCustomerReply.
type CreateCustomerResponseDTO struct {
	CustomerCode string `json:"customer_code"`
	CustomerID   int64  `json:"customer_id"`
	AdminUserID  int64  `json:"admin_user_id"`
}

type CreateCustomerService interface {
	Execute(ctx context.Context, req *CreateCustomerRequestDTO, securityToken string) (*CreateCustomerResponseDTO, error)
}

type createCustomerServiceImpl struct {
	config  *config.Configuration
	logger  *zap.Logger
	useCase uc_createcustomer.UseCase
}

func NewCreateCustomerService(
	config *config.Configuration,
	logger *zap.Logger,
	useCase uc_createcustomer.UseCase,
) CreateCustomerService {
	return &createCustomerServiceImpl{config: config, logger: logger, useCase: useCase}
}

func (svc *createCustomerServiceImpl) Execute(ctx context.Context, req *CreateCustomerRequestDTO, securityToken string) (*CreateCustomerResponseDTO, error) {
	//
	// STEP 1: Validation.
	//

	if req == nil {
		return nil, httperror.NewForBadRequestWithSingleField("non_field_error", "request body is required")
	}

	e := make(map[string]string)
	if req.CustomerName == "" {
		e["customer_name"] = "Customer name is required"
	}
	if req.Email == "" {
		e["email"] = "Email is required"
	}
	if req.AdminPassword == "" {
		e["admin_password"] = "Admin password is required"
	}
	if securityToken == "" {
		e["token"] = "Security token is required"
	}
	if len(e) != 0 {
		svc.logger.Warn("failed validating create customer request", zap.Any("error", e))
		return nil, httperror.NewForBadRequest(&e)
	}

	//
	// STEP 2: Provision the tenant.
	//

	reply, err := svc.useCase.Execute(ctx, &uc_createcustomer.Request{
		CustomerName:  req.CustomerName,
		AdminEmail:    req.Email,
		AdminPassword: req.AdminPassword,
		SecurityToken: securityToken,
	})
	if err != nil {
		return nil, err
	}

	return &CreateCustomerResponseDTO{
		CustomerCode: reply.CustomerCode,
		CustomerID:   reply.CustomerID,
		AdminUserID:  reply.AdminUserID,
	}, nil
}

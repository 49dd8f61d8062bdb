// github.com/doka-one/doka/internal/adminserver/service/login/login.go
package login

import (
	"context"

	"go.uber.org/zap"

	"github.com/doka-one/doka/config"
	uc_login "github.com/doka-one/doka/internal/adminserver/usecase/login"
	"github.com/doka-one/doka/pkg/httperror"
)

// LoginRequestDTO is the JSON body of POST /login.
type LoginRequestDTO struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginResponseDTO mirrors the spec's {session_id, customer_code} login
// reply.
type LoginResponseDTO struct {
	SessionID    string `json:"session_id"`
	CustomerCode string `json:"customer_code"`
}

type LoginService interface {
	Execute(ctx context.Context, req *LoginRequestDTO) (*LoginResponseDTO, error)
}

type loginServiceImpl struct {
	config  *config.Configuration
	logger  *zap.Logger
	useCase uc_login.UseCase
}

func NewLoginService(config *config.Configuration, logger *zap.Logger, useCase uc_login.UseCase) LoginService {
	return &loginServiceImpl{config: config, logger: logger, useCase: useCase}
}

func (svc *loginServiceImpl) Execute(ctx context.Context, req *LoginRequestDTO) (*LoginResponseDTO, error) {
	if req == nil || req.Login == "" || req.Password == "" {
		return nil, httperror.NewForBadRequestWithSingleField("non_field_error", "login and password are required")
	}

	result, err := svc.useCase.Execute(ctx, req.Login, req.Password)
	if err != nil {
		return nil, err
	}

	return &LoginResponseDTO{
		SessionID:    result.SessionID,
		CustomerCode: result.CustomerCode,
	}, nil
}

// github.com/doka-one/doka/internal/keymanager/service/customerkey/service.go
package customerkey

import (
	"context"

	"go.uber.org/zap"

	"github.com/doka-one/doka/config"
	uc "github.com/doka-one/doka/internal/keymanager/usecase/customerkey"
	"github.com/doka-one/doka/pkg/httperror"
	"github.com/doka-one/doka/pkg/security/cek"
	"github.com/doka-one/doka/pkg/security/securitytoken"
)

// AddKeyRequestDTO is the JSON body of POST /key.
type AddKeyRequestDTO struct {
	CustomerCode string `json:"customer_code"`
}

// KeyDTO is one wrapped key as returned by get_key / list_keys.
type KeyDTO struct {
	CustomerCode string `json:"customer_code"`
	CipheredKey  string `json:"ciphered_key"`
}

type Service interface {
	AddKey(ctx context.Context, req *AddKeyRequestDTO, token string) error
	GetKey(ctx context.Context, customerCode string) (*KeyDTO, error)
	ListKeys(ctx context.Context, token string) ([]*KeyDTO, error)
}

type serviceImpl struct {
	config        *config.Configuration
	logger        *zap.Logger
	cek           *cek.CEK
	addKeyUC      uc.AddKeyUseCase
	getKeyUC      uc.GetKeyUseCase
	listKeysUC    uc.ListKeysUseCase
}

func NewService(
	config *config.Configuration,
	logger *zap.Logger,
	cekKey *cek.CEK,
	addKeyUC uc.AddKeyUseCase,
	getKeyUC uc.GetKeyUseCase,
	listKeysUC uc.ListKeysUseCase,
) Service {
	return &serviceImpl{
		config:     config,
		logger:     logger,
		cek:        cekKey,
		addKeyUC:   addKeyUC,
		getKeyUC:   getKeyUC,
		listKeysUC: listKeysUC,
	}
}

func (svc *serviceImpl) requireValidToken(token string) error {
	if token == "" {
		return httperror.NewForUnauthorizedWithSingleField("token", "security token is required")
	}
	if err := securitytoken.Validate(svc.cek.KeyString(), token); err != nil {
		return httperror.NewForUnauthorizedWithSingleField("token", "security token is invalid or expired")
	}
	return nil
}

func (svc *serviceImpl) AddKey(ctx context.Context, req *AddKeyRequestDTO, token string) error {
	if err := svc.requireValidToken(token); err != nil {
		return err
	}
	if req == nil || req.CustomerCode == "" {
		return httperror.NewForBadRequestWithSingleField("customer_code", "customer_code is required")
	}
	return svc.addKeyUC.Execute(ctx, req.CustomerCode)
}

func (svc *serviceImpl) GetKey(ctx context.Context, customerCode string) (*KeyDTO, error) {
	if customerCode == "" {
		return nil, httperror.NewForBadRequestWithSingleField("customer_code", "customer_code is required")
	}
	ciphered, err := svc.getKeyUC.Execute(ctx, customerCode)
	if err != nil {
		return nil, err
	}
	return &KeyDTO{CustomerCode: customerCode, CipheredKey: ciphered}, nil
}

func (svc *serviceImpl) ListKeys(ctx context.Context, token string) ([]*KeyDTO, error) {
	if err := svc.requireValidToken(token); err != nil {
		return nil, err
	}
	keys, err := svc.listKeysUC.Execute(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*KeyDTO, 0, len(keys))
	for _, k := range keys {
		out = append(out, &KeyDTO{CustomerCode: k.CustomerCode, CipheredKey: k.CipheredKey})
	}
	return out, nil
}

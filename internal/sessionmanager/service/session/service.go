// github.com/doka-one/doka/internal/sessionmanager/service/session/service.go
package session

import (
	"context"

	"go.uber.org/zap"

	dom "github.com/doka-one/doka/internal/sessionmanager/domain/session"
	uc "github.com/doka-one/doka/internal/sessionmanager/usecase/session"
	"github.com/doka-one/doka/pkg/httperror"
)

// OpenSessionRequestDTO is the JSON body of POST /session.
type OpenSessionRequestDTO struct {
	CustomerCode string `json:"customer_code"`
	UserName     string `json:"user_name"`
	CustomerID   int64  `json:"customer_id"`
	UserID       int64  `json:"user_id"`
	SessionID    string `json:"session_id"`
}

// SessionDTO is the JSON shape returned by GET /session/{sid}.
type SessionDTO struct {
	SID          string `json:"sid"`
	CustomerCode string `json:"customer_code"`
	UserName     string `json:"user_name"`
	CustomerID   int64  `json:"customer_id"`
	UserID       int64  `json:"user_id"`
}

type Service interface {
	OpenSession(ctx context.Context, req *OpenSessionRequestDTO) error
	GetSession(ctx context.Context, sid string) (*SessionDTO, error)
}

type serviceImpl struct {
	logger      *zap.Logger
	openUC      uc.OpenSessionUseCase
	getUC       uc.GetSessionUseCase
}

func NewService(logger *zap.Logger, openUC uc.OpenSessionUseCase, getUC uc.GetSessionUseCase) Service {
	return &serviceImpl{logger: logger, openUC: openUC, getUC: getUC}
}

func (svc *serviceImpl) OpenSession(ctx context.Context, req *OpenSessionRequestDTO) error {
	if req == nil || req.CustomerCode == "" || req.UserName == "" || req.SessionID == "" {
		return httperror.NewForBadRequestWithSingleField("non_field_error", "customer_code, user_name and session_id are required")
	}
	if err := svc.openUC.Execute(ctx, req.CustomerCode, req.UserName, req.CustomerID, req.UserID, req.SessionID); err != nil {
		if err == dom.ErrCannotBeCreated {
			return httperror.NewForBadRequestWithSingleField("non_field_error", "session cannot be created")
		}
		return httperror.NewForInternalServerErrorWithSingleField("non_field_error", "session open failed")
	}
	return nil
}

func (svc *serviceImpl) GetSession(ctx context.Context, sid string) (*SessionDTO, error) {
	if sid == "" {
		return nil, httperror.NewForBadRequestWithSingleField("sid", "sid is required")
	}
	s, err := svc.getUC.Execute(ctx, sid)
	if err != nil {
		switch err {
		case dom.ErrNotFound:
			return nil, httperror.NewForNotFoundWithSingleField("sid", "session not found")
		case dom.ErrTimedOut:
			return nil, httperror.NewForGoneWithSingleField("sid", "session timed out")
		default:
			return nil, httperror.NewForInternalServerErrorWithSingleField("non_field_error", "session lookup failed")
		}
	}
	return &SessionDTO{
		SID:          s.SID,
		CustomerCode: s.CustomerCode,
		UserName:     s.UserName,
		CustomerID:   s.CustomerID,
		UserID:       s.UserID,
	}, nil
}

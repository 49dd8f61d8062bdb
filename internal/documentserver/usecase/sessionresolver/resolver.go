// Package sessionresolver turns a caller's sid into the tenant content
// schema its request should run against, the single choke point every
// Document Server operation passes through before touching cs_<tenant>.
package sessionresolver

import (
	"context"

	"go.uber.org/zap"

	cli_sm "github.com/doka-one/doka/internal/documentserver/client/sessionmanager"
	"github.com/doka-one/doka/pkg/httperror"
	"github.com/doka-one/doka/pkg/tenant"
)

// Resolved is the caller identity and tenant scope a valid sid resolves to.
type Resolved struct {
	CustomerCode string
	Schema       string
	UserID       int64
	CustomerID   int64
}

// Resolver validates a sid against Session Manager and derives the
// requester's content schema.
type Resolver interface {
	Execute(ctx context.Context, sid string) (*Resolved, error)
}

type resolverImpl struct {
	logger  *zap.Logger
	smClient *cli_sm.Client
}

func NewResolver(logger *zap.Logger, smClient *cli_sm.Client) Resolver {
	return &resolverImpl{logger: logger, smClient: smClient}
}

func (r *resolverImpl) Execute(ctx context.Context, sid string) (*Resolved, error) {
	if sid == "" {
		return nil, httperror.NewForUnauthorizedWithSingleField("sid", "sid is required")
	}

	session, err := r.smClient.GetSession(ctx, sid)
	if err != nil {
		r.logger.Warn("session resolution failed", zap.Error(err))
		return nil, httperror.NewForUnauthorizedWithSingleField("sid", "session is invalid or expired")
	}

	schema, err := tenant.ContentSchemaName(session.CustomerCode)
	if err != nil {
		r.logger.Error("session resolved to an invalid customer_code", zap.Error(err))
		return nil, httperror.NewForInternalServerErrorWithSingleField("non_field_error", "tenant resolution failed")
	}

	return &Resolved{
		CustomerCode: session.CustomerCode,
		Schema:       schema,
		UserID:       session.UserID,
		CustomerID:   session.CustomerID,
	}, nil
}

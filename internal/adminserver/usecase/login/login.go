// github.com/doka-one/doka/internal/adminserver/usecase/login/login.go
//
// Ported from the original implementation's login workflow: a session
// identifier is minted as encrypt_CEK(uuid_v4), the appuser is authenticated
// by bcrypt, and Session Manager is asked to open the session before the
// identifier is handed back to the caller. Wrong login and wrong password
// return the identical SessionLoginDenied error so a caller cannot use the
// response to enumerate valid logins.
package login

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	dom_appuser "github.com/doka-one/doka/internal/adminserver/domain/appuser"
	cli_sm "github.com/doka-one/doka/internal/adminserver/client/sessionmanager"
	"github.com/doka-one/doka/pkg/database/postgres"
	"github.com/doka-one/doka/pkg/httperror"
	"github.com/doka-one/doka/pkg/security/cek"
	"github.com/doka-one/doka/pkg/security/crypto"
)

// ErrSessionLoginDenied mirrors the spec's SessionLoginDenied error, raised
// identically for an unknown login and for a wrong password.
var ErrSessionLoginDenied = httperror.NewForUnauthorizedWithSingleField("non_field_error", "login or password is incorrect")

// Result carries the session identifier and tenant code returned on a
// successful login.
type Result struct {
	SessionID    string
	CustomerCode string
}

// UseCase authenticates a login/password pair and opens a session for it.
type UseCase interface {
	Execute(ctx context.Context, login, password string) (*Result, error)
}

type useCaseImpl struct {
	logger  *zap.Logger
	repo    dom_appuser.Repository
	cek     *cek.CEK
	smClient *cli_sm.Client
}

func NewUseCase(logger *zap.Logger, repo dom_appuser.Repository, cekKey *cek.CEK, smClient *cli_sm.Client) UseCase {
	return &useCaseImpl{logger: logger, repo: repo, cek: cekKey, smClient: smClient}
}

func (uc *useCaseImpl) Execute(ctx context.Context, login, password string) (*Result, error) {
	//
	// STEP 1: generate the session identifier.
	//

	sessionID, err := crypto.SealToString([]byte(uuid.New().String()), uc.cek.KeyString())
	if err != nil {
		uc.logger.Error("failed to mint session identifier", zap.Error(err))
		return nil, httperror.NewForInternalServerErrorWithSingleField("non_field_error", "login failed")
	}

	//
	// STEP 2: look up the appuser, joined with its customer.
	//

	user, customerCode, err := uc.repo.GetByLoginWithCustomerCode(ctx, login)
	if err != nil {
		if postgres.IsNoRows(err) {
			return nil, ErrSessionLoginDenied
		}
		uc.logger.Error("get appuser by login failed", zap.Error(err))
		return nil, httperror.NewForInternalServerErrorWithSingleField("non_field_error", "login failed")
	}

	//
	// STEP 3: bcrypt-verify.
	//

	if err := crypto.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, ErrSessionLoginDenied
	}

	//
	// STEP 4: open the session.
	//

	reply, err := uc.smClient.OpenSession(ctx, cli_sm.OpenSessionRequest{
		CustomerCode: customerCode,
		UserName:     user.Login,
		CustomerID:   user.CustomerID,
		UserID:       user.ID,
		SessionID:    sessionID,
	})
	if err != nil || !reply.Success {
		uc.logger.Error("open_session failed", zap.Error(err))
		return nil, httperror.NewForInternalServerErrorWithSingleField("non_field_error", "login failed")
	}

	//
	// STEP 5: return the session identifier and tenant code.
	//

	return &Result{SessionID: sessionID, CustomerCode: customerCode}, nil
}

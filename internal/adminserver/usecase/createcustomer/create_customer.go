// github.com/doka-one/doka/internal/adminserver/usecase/createcustomer/create_customer.go
//
// Ported from the original implementation's create_customer.rs: generate a
// free customer code, provision the tenant's content and file schemas on
// the content and file database pools, register a master key with Key
// Manager, then record the tenant and its admin user.
package createcustomer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/doka-one/doka/internal/adminserver/client/keymanager"
	dom_appuser "github.com/doka-one/doka/internal/adminserver/domain/appuser"
	dom_customer "github.com/doka-one/doka/internal/adminserver/domain/customer"
	"github.com/doka-one/doka/internal/adminserver/password"
	"github.com/doka-one/doka/internal/adminserver/schema"
	"github.com/doka-one/doka/pkg/database/postgres"
	"github.com/doka-one/doka/pkg/emailer/mailgun"
	"github.com/doka-one/doka/pkg/httperror"
	"github.com/doka-one/doka/pkg/security/crypto"
)

const (
	defaultLanguage = "ENG"
	defaultTimeZone = "Europe/Paris"
)

// Request carries everything needed to provision a new tenant.
type Request struct {
	CustomerName  string
	AdminEmail    string
	AdminPassword string
	SecurityToken string
}

// Reply mirrors the original implementation's CreateCustomerReply shape.
type Reply struct {
	CustomerCode string
	CustomerID   int64
	AdminUserID  int64
}

// UseCase executes the tenant-provisioning workflow.
type UseCase interface {
	Execute(ctx context.Context, req *Request) (*Reply, error)
}

type useCaseImpl struct {
	logger        *zap.Logger
	adminPool     postgres.Pool
	contentPool   postgres.Pool
	filePool      postgres.Pool
	customerRepo  dom_customer.Repository
	appUserRepo   dom_appuser.Repository
	keyManager    *keymanager.Client
	emailer       mailgun.Emailer
	bcryptCost    int
}

// NewUseCase wires the provisioning workflow. adminPool is stored but not
// used by Execute: no admin-database transaction is opened, and the
// customer and appuser rows are written by separate statements through
// customerRepo and appUserRepo, so a failure after the customer insert
// leaves that customer row in place.
func NewUseCase(
	logger *zap.Logger,
	adminPool postgres.Pool,
	contentPool postgres.Pool,
	filePool postgres.Pool,
	customerRepo dom_customer.Repository,
	appUserRepo dom_appuser.Repository,
	keyManager *keymanager.Client,
	emailer mailgun.Emailer,
	bcryptCost int,
) UseCase {
	return &useCaseImpl{
		logger:       logger,
		adminPool:    adminPool,
		contentPool:  contentPool,
		filePool:     filePool,
		customerRepo: customerRepo,
		appUserRepo:  appUserRepo,
		keyManager:   keyManager,
		emailer:      emailer,
		bcryptCost:   bcryptCost,
	}
}

func (uc *useCaseImpl) Execute(ctx context.Context, req *Request) (*Reply, error) {
	if !password.Valid(req.AdminPassword) {
		return nil, httperror.NewForBadRequestWithSingleField("admin_password", "password does not meet the complexity policy")
	}

	nameTaken, err := uc.customerRepo.FullNameTaken(ctx, req.CustomerName)
	if err != nil {
		return nil, httperror.NewForInternalServerErrorWithSingleField("non_field_error", "failed to verify customer name availability")
	}
	if nameTaken {
		return nil, httperror.NewForConflictWithSingleField("customer_name", "a customer with this name already exists")
	}

	customerCode, err := uc.generateFreeCustomerCode(ctx)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("generated free customer code", zap.String("customer_code", customerCode))

	if err := uc.runSchemaScript(ctx, uc.contentPool, schema.GenerateCSSchemaScript(customerCode)); err != nil {
		uc.logger.Error("cs schema batch failed", zap.Error(err))
		return nil, httperror.NewForInternalServerErrorWithSingleField("non_field_error", "failed to provision content schema")
	}

	if err := uc.runSchemaScript(ctx, uc.filePool, schema.GenerateFSSchemaScript(customerCode)); err != nil {
		uc.logger.Error("fs schema batch failed", zap.Error(err))
		uc.warnSchema("cs", customerCode)
		return nil, httperror.NewForInternalServerErrorWithSingleField("non_field_error", "failed to provision file schema")
	}

	reply, err := uc.keyManager.AddKey(ctx, customerCode, req.SecurityToken)
	if err != nil || !reply.Success {
		uc.logger.Error("key manager add_key failed", zap.Error(err))
		uc.warnSchema("cs", customerCode)
		uc.warnSchema("fs", customerCode)
		return nil, httperror.NewForInternalServerErrorWithSingleField("non_field_error", "key manager could not provision a master key")
	}

	customerID, err := uc.customerRepo.Create(ctx, &dom_customer.Customer{
		Code:            customerCode,
		FullName:        req.CustomerName,
		DefaultLanguage: defaultLanguage,
		DefaultTimeZone: defaultTimeZone,
	})
	if err != nil {
		uc.warnSchema("cs", customerCode)
		uc.warnSchema("fs", customerCode)
		if err == dom_customer.ErrFullNameTaken {
			return nil, httperror.NewForConflictWithSingleField("customer_name", "a customer with this name already exists")
		}
		uc.logger.Error("insert customer failed", zap.Error(err))
		return nil, httperror.NewForInternalServerErrorWithSingleField("non_field_error", "failed to record the new customer")
	}

	passwordHash, err := crypto.HashPassword(req.AdminPassword, uc.bcryptCost)
	if err != nil {
		uc.logger.Error("hash admin password failed", zap.Error(err))
		uc.warnSchema("cs", customerCode)
		uc.warnSchema("fs", customerCode)
		return nil, httperror.NewForInternalServerErrorWithSingleField("non_field_error", "failed to set up the admin user")
	}

	userID, err := uc.appUserRepo.Create(ctx, &dom_appuser.AppUser{
		Login:           req.AdminEmail,
		FullName:        req.AdminEmail,
		PasswordHash:    passwordHash,
		DefaultLanguage: defaultLanguage,
		DefaultTimeZone: defaultTimeZone,
		Admin:           true,
		CustomerID:      customerID,
	})
	if err != nil {
		uc.logger.Error("insert admin appuser failed", zap.Error(err))
		uc.warnSchema("cs", customerCode)
		uc.warnSchema("fs", customerCode)
		return nil, httperror.NewForInternalServerErrorWithSingleField("non_field_error", "failed to set up the admin user")
	}

	uc.logger.Info("customer created", zap.String("customer_code", customerCode), zap.Int64("customer_id", customerID))

	uc.notifyAdmin(ctx, customerCode, req.AdminEmail)

	return &Reply{
		CustomerCode: customerCode,
		CustomerID:   customerID,
		AdminUserID:  userID,
	}, nil
}

// generateFreeCustomerCode draws short codes from fresh UUIDs until one is
// not already taken, mirroring the original's uuid_v4().split('-')[0] loop.
func (uc *useCaseImpl) generateFreeCustomerCode(ctx context.Context) (string, error) {
	for {
		candidate := uuid.New().String()
		code := candidate[:8]

		taken, err := uc.customerRepo.CodeTaken(ctx, code)
		if err != nil {
			return "", httperror.NewForInternalServerErrorWithSingleField("non_field_error", "failed to verify customer code availability")
		}
		if !taken {
			return code, nil
		}
	}
}

// runSchemaScript executes a multi-statement DDL batch on pool (the
// content or file database pool). Never drops a failed schema
// automatically: partial tenant schemas are flagged for manual review
// instead of being cleaned up programmatically, since an automatic DROP
// could destroy data from a concurrent, unrelated failure.
func (uc *useCaseImpl) runSchemaScript(ctx context.Context, pool postgres.Pool, script string) error {
	_, err := pool.Exec(ctx, script)
	return err
}

// notifyAdmin tells the new tenant's admin user their account is ready.
// Best-effort: a failed send never rolls back a successful provisioning.
func (uc *useCaseImpl) notifyAdmin(ctx context.Context, customerCode, adminEmail string) {
	if uc.emailer == nil {
		return
	}
	body := fmt.Sprintf("<p>Your Doka tenant <b>%s</b> is ready.</p>", customerCode)
	if err := uc.emailer.Send(ctx, uc.emailer.GetSenderEmail(), "Your Doka tenant is ready", adminEmail, body); err != nil {
		uc.logger.Warn("customer creation notification failed", zap.Error(err), zap.String("customer_code", customerCode))
	}
}

func (uc *useCaseImpl) warnSchema(kind, customerCode string) {
	uc.logger.Warn(fmt.Sprintf("please verify if the schema %s_%s is in the database", kind, customerCode),
		zap.String("customer_code", customerCode))
}

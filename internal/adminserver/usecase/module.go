package usecase

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/doka-one/doka/config"
	"github.com/doka-one/doka/internal/adminserver/client/keymanager"
	cli_sm "github.com/doka-one/doka/internal/adminserver/client/sessionmanager"
	dom_appuser "github.com/doka-one/doka/internal/adminserver/domain/appuser"
	dom_customer "github.com/doka-one/doka/internal/adminserver/domain/customer"
	uc_createcustomer "github.com/doka-one/doka/internal/adminserver/usecase/createcustomer"
	uc_login "github.com/doka-one/doka/internal/adminserver/usecase/login"
	"github.com/doka-one/doka/pkg/database/postgres"
	"github.com/doka-one/doka/pkg/emailer/mailgun"
)

func Module() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				newCreateCustomerUseCase,
				fx.ParamTags(``, `name:"admin_pool"`, `name:"content_pool"`, `name:"file_pool"`),
			),
		),
		fx.Provide(newSessionManagerClient),
		fx.Provide(mailgun.NewNotificationEmailer),
		fx.Provide(uc_login.NewUseCase),
	)
}

func newSessionManagerClient(cfg *config.Configuration) *cli_sm.Client {
	return cli_sm.New(cfg.Peers.SessionManagerBaseURL)
}

func newCreateCustomerUseCase(
	logger *zap.Logger,
	adminPool postgres.Pool,
	contentPool postgres.Pool,
	filePool postgres.Pool,
	customerRepo dom_customer.Repository,
	appUserRepo dom_appuser.Repository,
	emailer mailgun.Emailer,
	cfg *config.Configuration,
) uc_createcustomer.UseCase {
	return uc_createcustomer.NewUseCase(
		logger,
		adminPool,
		contentPool,
		filePool,
		customerRepo,
		appUserRepo,
		keymanager.New(cfg.Peers.KeyManagerBaseURL),
		emailer,
		cfg.Security.BCryptCost,
	)
}

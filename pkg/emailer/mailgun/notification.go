package mailgun

import (
	"github.com/doka-one/doka/config"
)

// NewNotificationEmailer builds the Emailer Admin Server uses to tell a
// freshly provisioned customer's contact address that their tenant is ready.
func NewNotificationEmailer(cfg *config.Configuration) Emailer {
	provider := NewMailgunConfigurationProvider(
		cfg.Mailgun.SenderEmail,
		cfg.Mailgun.Domain,
		cfg.Mailgun.APIBase,
		cfg.Mailgun.MaintenanceEmail,
		cfg.Mailgun.FrontendDomain,
		cfg.Mailgun.BackendDomain,
		cfg.Mailgun.APIKey,
	)
	return NewEmailer(provider)
}

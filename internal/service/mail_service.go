package service

import (
	"errors"
	"net/mail"

	"github.com/pocketbase/pocketbase/tools/mailer"

	"github.com/raihanetx/submonth-z/internal/core"
)

// ErrMailNotConfigured is returned when the SMTP credentials are missing
// from the settings store. Callers treat it like any other send failure.
var ErrMailNotConfigured = errors.New("smtp credentials are not configured")

// ConfigLoader yields the current site configuration. Satisfied by the
// settings repository.
type ConfigLoader interface {
	Load() (*core.SiteConfig, error)
}

// MailService sends mail through the gmail SMTP relay using the app
// password stored in settings.
type MailService struct {
	settings ConfigLoader
}

func NewMailService(settings ConfigLoader) *MailService {
	return &MailService{settings: settings}
}

// Send delivers a single HTML email. It reads credentials fresh on every
// call so an admin SMTP update takes effect immediately.
func (s *MailService) Send(to, subject, htmlBody string) error {
	cfg, err := s.settings.Load()
	if err != nil {
		return err
	}
	if cfg.SMTP.AdminEmail == "" || cfg.SMTP.AppPassword == "" {
		return ErrMailNotConfigured
	}

	client := mailer.SMTPClient{
		Host:     "smtp.gmail.com",
		Port:     465,
		Username: cfg.SMTP.AdminEmail,
		Password: cfg.SMTP.AppPassword,
		TLS:      true,
	}

	return client.Send(&mailer.Message{
		From:    mail.Address{Name: "Submonth", Address: cfg.SMTP.AdminEmail},
		To:      []mail.Address{{Address: to}},
		Subject: subject,
		HTML:    htmlBody,
	})
}

// AdminAddress returns the configured admin notification address, empty
// when unset.
func (s *MailService) AdminAddress() string {
	cfg, err := s.settings.Load()
	if err != nil {
		return ""
	}
	return cfg.SMTP.AdminEmail
}

package notify

import (
	"context"
	"errors"
	"strings"

	"github.com/lsweb-studio/apiserver/config"
	mail "github.com/wneessen/go-mail"
)

// SMTPBackend delivers notifications directly over SMTP.
type SMTPBackend struct {
	client *mail.Client
}

// NewSMTPBackend constructs an SMTP backend from config.
func NewSMTPBackend(cfg config.SMTPConfig) (*SMTPBackend, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return nil, errors.New("smtp host is required")
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, err
	}
	return &SMTPBackend{client: client}, nil
}

// Send delivers the message to the operator address.
func (s *SMTPBackend) Send(ctx context.Context, msg Message) error {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return err
	}
	if err := m.To(msg.To); err != nil {
		return err
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)

	return s.client.DialAndSendWithContext(ctx, m)
}

// Close is a no-op; the client dials per send.
func (s *SMTPBackend) Close() error {
	return nil
}

package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lsweb-studio/apiserver/config"
	"github.com/lsweb-studio/apiserver/types"
)

// Message is a rendered notification ready for delivery.
type Message struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// encodeMessage serializes a Message for queue delivery. The external
// mailer worker decodes the same envelope.
func encodeMessage(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}

func decodeMessage(data []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}

// Backend defines the transport-agnostic delivery operations used by the app.
type Backend interface {
	Send(ctx context.Context, msg Message) error
	Close() error
}

// Mailer renders operator notifications and hands them to a backend.
type Mailer struct {
	backend Backend
	from    string
	to      string
}

// NewMailer constructs a Mailer delivering to the fixed operator address.
func NewMailer(backend Backend, from, to string) *Mailer {
	return &Mailer{backend: backend, from: from, to: to}
}

// NewRequest renders and sends the new-contact-request notification.
func (m *Mailer) NewRequest(ctx context.Context, request types.ContactRequest) error {
	html, err := renderRequest(request)
	if err != nil {
		return fmt.Errorf("render notification: %w", err)
	}
	msg := Message{
		To:      m.to,
		From:    m.from,
		Subject: requestSubject(request),
		HTML:    html,
	}
	return m.backend.Send(ctx, msg)
}

// Close closes the underlying backend.
func (m *Mailer) Close() error {
	return m.backend.Close()
}

// NewBackend constructs the delivery backend selected by config.
func NewBackend(ctx context.Context, cfg config.NotifyConfig) (Backend, error) {
	switch cfg.Backend {
	case "smtp":
		return NewSMTPBackend(cfg.SMTP)
	case "rabbitmq":
		return NewRabbitMQBackend(cfg.RabbitMQ)
	case "pubsub":
		return NewPubSubBackend(ctx, cfg.PubSub)
	case "":
		return nil, errors.New("notify backend is required")
	default:
		return nil, fmt.Errorf("unknown notify backend %q", cfg.Backend)
	}
}

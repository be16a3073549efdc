// Package mailer delivers approved campaign emails and manages sender domains.
//
// Two transports exist: ResendTransport for real delivery and OutboxTransport,
// which writes every message to blob storage for development and staging.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/resend/resend-go/v2"
	"github.com/sendsafe/sendsafe-api/internal/config"
	"github.com/sendsafe/sendsafe-api/internal/storage"
	"go.uber.org/zap"
)

var (
	// ErrInvalidMessage is returned before any network call when a message is incomplete
	ErrInvalidMessage = errors.New("invalid message")
	// ErrSendFailed wraps provider failures
	ErrSendFailed = errors.New("failed to send email")
)

// Message is one outgoing email
type Message struct {
	From     string
	FromName string
	To       string
	Subject  string
	HTML     string
	Text     string
}

// Validate checks the fields every transport needs
func (m Message) Validate() error {
	switch {
	case strings.TrimSpace(m.From) == "":
		return fmt.Errorf("%w: missing sender", ErrInvalidMessage)
	case strings.TrimSpace(m.To) == "":
		return fmt.Errorf("%w: missing recipient", ErrInvalidMessage)
	case strings.TrimSpace(m.Subject) == "":
		return fmt.Errorf("%w: missing subject", ErrInvalidMessage)
	case strings.TrimSpace(m.HTML) == "" && strings.TrimSpace(m.Text) == "":
		return fmt.Errorf("%w: missing body", ErrInvalidMessage)
	}
	return nil
}

// FromHeader formats the sender as `Name <addr>`, encoding non-ASCII names
func (m Message) FromHeader() string {
	if strings.TrimSpace(m.FromName) == "" {
		return m.From
	}
	return (&mail.Address{Name: m.FromName, Address: m.From}).String()
}

// Transport delivers one message and returns the provider message id
type Transport interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// New builds the transport and domain manager selected by cfg.Mode
func New(cfg *config.MailConfig, store storage.Storage, logger *zap.Logger) (Transport, DomainManager, error) {
	switch cfg.Mode {
	case "resend":
		if cfg.APIKey == "" {
			return nil, nil, errors.New("mail api key is required in resend mode")
		}
		client := resend.NewClient(cfg.APIKey)
		return NewResendTransport(client, logger), NewResendDomains(client, logger), nil
	case "outbox", "":
		if store == nil {
			return nil, nil, errors.New("outbox mode requires storage")
		}
		return NewOutboxTransport(store, cfg.OutboxPrefix, logger), NewOutboxDomains(), nil
	default:
		return nil, nil, fmt.Errorf("unsupported mail mode: %s", cfg.Mode)
	}
}

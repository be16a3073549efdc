package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// ResendTransport sends through the Resend API
type ResendTransport struct {
	client *resend.Client
	logger *zap.Logger
}

func NewResendTransport(client *resend.Client, logger *zap.Logger) *ResendTransport {
	return &ResendTransport{client: client, logger: logger}
}

func (t *ResendTransport) Send(ctx context.Context, msg Message) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}

	sent, err := t.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.FromHeader(),
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		t.logger.Warn("Resend rejected message", zap.String("to", msg.To), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	t.logger.Debug("Message sent", zap.String("provider_id", sent.Id))
	return sent.Id, nil
}

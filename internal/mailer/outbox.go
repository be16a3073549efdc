package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/storage"
	"go.uber.org/zap"
)

// OutboxRecord is the stored form of a message in outbox mode
type OutboxRecord struct {
	ID      string    `json:"id"`
	From    string    `json:"from"`
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	HTML    string    `json:"html"`
	Text    string    `json:"text"`
	SentAt  time.Time `json:"sentAt"`
}

// OutboxTransport stores messages instead of delivering them
type OutboxTransport struct {
	store  storage.Storage
	prefix string
	logger *zap.Logger
	now    func() time.Time
}

func NewOutboxTransport(store storage.Storage, prefix string, logger *zap.Logger) *OutboxTransport {
	if prefix == "" {
		prefix = "outbox"
	}
	return &OutboxTransport{store: store, prefix: prefix, logger: logger, now: time.Now}
}

// Key returns the storage key for a message id sent at the given time
func (t *OutboxTransport) Key(id string, at time.Time) string {
	return path.Join(t.prefix, at.UTC().Format("2006/01/02"), id+".json")
}

func (t *OutboxTransport) Send(ctx context.Context, msg Message) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}

	rec := OutboxRecord{
		ID:      "outbox-" + uuid.NewString(),
		From:    msg.FromHeader(),
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
		SentAt:  t.now().UTC(),
	}
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	key := t.Key(rec.ID, rec.SentAt)
	if _, err := t.store.Put(ctx, key, "application/json", bytes.NewReader(b)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	t.logger.Info("Message written to outbox", zap.String("key", key), zap.String("to", msg.To))
	return rec.ID, nil
}

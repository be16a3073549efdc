package service_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/mailer"
	"github.com/sendsafe/sendsafe-api/internal/service"
	"github.com/sendsafe/sendsafe-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSendService_Send(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createServices(t, db)
	ctx, userID := testutil.UserContext(t)
	testutil.CreateTestProfile(t, db, userID, domain.PlanFree, "ola@sender.no")
	_, err := svc.profiles.Update(ctx, &domain.UpdateProfileRequest{SignatureHTML: strPtr("<p>Ola</p>")})
	require.NoError(t, err)

	t.Run("a real send delivers and marks the email sent", func(t *testing.T) {
		email := testutil.CreateTestEmail(t, db, userID, domain.EmailStatusApproved, nil)
		svc.transport.On("Send", mock.Anything, mock.MatchedBy(func(m mailer.Message) bool {
			return m.To == "kari@acme.no" && m.From == "ola@sender.no" && m.FromName == "Ola Sender" &&
				m.Subject == "Hello Acme" && m.HTML == "<p>Hi Kari</p>\n<br>\n<p>Ola</p>" &&
				strings.Contains(m.Text, "Hi Kari") && strings.Contains(m.Text, "Ola") && !strings.Contains(m.Text, "<")
		})).Return("msg-1", nil).Once()

		dto, err := svc.send.Send(ctx, email.ID, "")
		require.NoError(t, err)
		assert.Equal(t, domain.EmailStatusSent, dto.Status)
		assert.Equal(t, "msg-1", dto.ProviderMessageID)
		assert.NotEmpty(t, dto.SentAt)

		stored, err := svc.review.Get(ctx, email.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.EmailStatusSent, stored.Status)
		svc.transport.AssertExpectations(t)
	})

	t.Run("a second real send never reaches the transport", func(t *testing.T) {
		email := testutil.CreateTestEmail(t, db, userID, domain.EmailStatusApproved, nil)
		svc.transport.On("Send", mock.Anything, mock.Anything).Return("msg-2", nil).Once()

		_, err := svc.send.Send(ctx, email.ID, "")
		require.NoError(t, err)
		_, err = svc.send.Send(ctx, email.ID, "")
		assert.ErrorIs(t, err, service.ErrAlreadySent)
		svc.transport.AssertNumberOfCalls(t, "Send", 2)
	})

	t.Run("an unapproved email cannot be sent for real", func(t *testing.T) {
		email := testutil.CreateTestEmail(t, db, userID, domain.EmailStatusDraft, nil)
		_, err := svc.send.Send(ctx, email.ID, "")
		assert.ErrorIs(t, err, service.ErrNotApproved)
		assert.ErrorIs(t, err, service.ErrConflict)
	})

	t.Run("a test send goes to the test address and changes nothing", func(t *testing.T) {
		email := testutil.CreateTestEmail(t, db, userID, domain.EmailStatusDraft, nil)
		svc.transport.On("Send", mock.Anything, mock.MatchedBy(func(m mailer.Message) bool {
			return m.To == "me@sender.no" && m.Subject == "Hello Acme"
		})).Return("msg-test", nil).Once()

		dto, err := svc.send.Send(ctx, email.ID, " me@sender.no ")
		require.NoError(t, err)
		assert.Equal(t, domain.EmailStatusDraft, dto.Status)
		assert.Empty(t, dto.SentAt)

		stored, err := svc.review.Get(ctx, email.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.EmailStatusDraft, stored.Status)
		assert.Empty(t, stored.ProviderMessageID)
	})

	t.Run("a transport failure leaves the email approved and retryable", func(t *testing.T) {
		email := testutil.CreateTestEmail(t, db, userID, domain.EmailStatusApproved, nil)
		svc.transport.On("Send", mock.Anything, mock.MatchedBy(func(m mailer.Message) bool {
			return m.To == "kari@acme.no"
		})).Return("", errors.New("domain not verified")).Once()

		_, err := svc.send.Send(ctx, email.ID, "")
		var transportErr *service.TransportError
		require.True(t, errors.As(err, &transportErr))
		assert.Contains(t, err.Error(), "domain not verified")

		stored, err := svc.review.Get(ctx, email.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.EmailStatusApproved, stored.Status)

		svc.transport.On("Send", mock.Anything, mock.Anything).Return("msg-retry", nil).Once()
		dto, err := svc.send.Send(ctx, email.ID, "")
		require.NoError(t, err)
		assert.Equal(t, "msg-retry", dto.ProviderMessageID)
	})

	t.Run("real sends stop at the monthly allotment", func(t *testing.T) {
		email := testutil.CreateTestEmail(t, db, userID, domain.EmailStatusApproved, nil)
		_, err := svc.send.Send(ctx, email.ID, "")
		var quotaErr *service.QuotaExceededError
		require.True(t, errors.As(err, &quotaErr))
		assert.Equal(t, service.QuotaSends, quotaErr.Kind)
		assert.Equal(t, 0, quotaErr.Remaining)
	})
}

func TestSendService_RequiresSender(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createServices(t, db)
	ctx, userID := testutil.UserContext(t)

	email := testutil.CreateTestEmail(t, db, userID, domain.EmailStatusApproved, nil)
	_, err := svc.send.Send(ctx, email.ID, "")
	assert.ErrorIs(t, err, service.ErrSenderNotConfigured)
	svc.transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSendService_SendAllApproved(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createServices(t, db)
	ctx, userID := testutil.UserContext(t)
	testutil.CreateTestProfile(t, db, userID, domain.PlanStarter, "ola@sender.no")

	first := testutil.CreateTestEmail(t, db, userID, domain.EmailStatusApproved, nil)
	second := testutil.CreateTestEmail(t, db, userID, domain.EmailStatusApproved, nil)
	require.NoError(t, db.Model(second).Update("contact_email", "bounce@beta.no").Error)
	testutil.CreateTestEmail(t, db, userID, domain.EmailStatusDraft, nil)

	svc.transport.On("Send", mock.Anything, mock.MatchedBy(func(m mailer.Message) bool {
		return m.To == "bounce@beta.no"
	})).Return("", errors.New("rejected")).Once()
	svc.transport.On("Send", mock.Anything, mock.Anything).Return("msg-ok", nil)

	result, err := svc.send.SendAllApproved(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Attempted)
	assert.Equal(t, 1, result.Succeeded)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, second.ID, result.Failed[0].ID)

	stored, err := svc.review.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EmailStatusSent, stored.Status)
}

func TestIdempotencyKey(t *testing.T) {
	db := testutil.SetupTestDB(t)
	_, userID := testutil.UserContext(t)
	email := testutil.CreateTestEmail(t, db, userID, domain.EmailStatusApproved, nil)

	key := service.IdempotencyKey(email)
	assert.Len(t, key, 64)
	assert.Equal(t, key, service.IdempotencyKey(email))

	later := *email.ApprovedAt
	later = later.Add(1)
	other := *email
	other.ApprovedAt = &later
	assert.NotEqual(t, key, service.IdempotencyKey(&other))
}

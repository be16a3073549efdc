package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/service"
	"github.com/sendsafe/sendsafe-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateRequest(ids ...uuid.UUID) *domain.GenerateEmailsRequest {
	return &domain.GenerateEmailsRequest{
		ContactIDs:   ids,
		CampaignName: "Spring",
		Subject:      "Hello [Company]",
		Body:         "<p>Hi [Name], [opener]</p>",
	}
}

func TestGenerationService_Generate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createServices(t, db)
	ctx, userID := testutil.UserContext(t)

	a := testutil.CreateTestContact(t, db, userID, "Acme AS", "kari@acme.no", "Kari Nordmann")
	b := testutil.CreateTestContact(t, db, userID, "Beta AS", "per@beta.no", "Per Hansen")
	c := testutil.CreateTestContact(t, db, userID, "Gamma AS", "ola@gamma.no", "")

	svc.personalizer.failFor["Beta AS"] = true

	emails, err := svc.generation.Generate(ctx, generateRequest(a.ID, b.ID, c.ID))
	require.NoError(t, err)
	require.Len(t, emails, 3)

	t.Run("every email is a draft in one campaign", func(t *testing.T) {
		for _, e := range emails {
			assert.Equal(t, domain.EmailStatusDraft, e.Status)
			assert.Equal(t, 0, e.Confidence)
			assert.Empty(t, e.Issues)
			assert.Equal(t, domain.GenerationModeHybrid, e.GenerationMode)
			assert.Equal(t, "Spring", e.CampaignName)
			require.NotNil(t, e.CampaignID)
			assert.Equal(t, *emails[0].CampaignID, *e.CampaignID)
		}
	})

	t.Run("successful recipients carry generated content", func(t *testing.T) {
		assert.Equal(t, "AI: Hello Acme AS", emails[0].Subject)
		assert.Equal(t, "<p>Hi Kari Nordmann, Loved your latest launch.</p>", emails[0].Body)
		assert.Equal(t, "kari@acme.no", emails[0].ContactEmail)
		assert.Equal(t, a.ID, *emails[0].LeadID)
	})

	t.Run("a failed recipient gets the template as written", func(t *testing.T) {
		assert.Equal(t, "Hello [Company]", emails[1].Subject)
		assert.Equal(t, "<p>Hi [Name], [opener]</p>", emails[1].Body)
	})

	t.Run("empty fields stay as tokens for the generator", func(t *testing.T) {
		req := svc.personalizer.requests[2]
		assert.Equal(t, "<p>Hi [Name], [opener]</p>", req.Body)
		assert.Equal(t, []string{"[opener]"}, req.Spans)
		assert.Equal(t, domain.ToneProfessional, req.Tone)
		assert.Equal(t, "English", req.Language)
	})

	t.Run("generated emails consume credits", func(t *testing.T) {
		summary, err := svc.usage.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, summary.CreditsUsed)
		assert.Equal(t, 2, summary.CreditsRemaining)
	})
}

func TestGenerationService_Quota(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createServices(t, db)
	ctx, userID := testutil.UserContext(t)

	var ids []uuid.UUID
	for i := 0; i < 6; i++ {
		ids = append(ids, testutil.CreateTestContact(t, db, userID, "Acme AS", "kari@acme.no", "Kari").ID)
	}

	t.Run("more recipients than credits is rejected before generation", func(t *testing.T) {
		_, err := svc.generation.Generate(ctx, generateRequest(ids...))
		var quotaErr *service.QuotaExceededError
		require.True(t, errors.As(err, &quotaErr))
		assert.Equal(t, 5, quotaErr.Remaining)
		assert.Equal(t, 6, quotaErr.Requested)
		assert.Equal(t, 0, svc.personalizer.calls())
	})

	t.Run("exactly the remaining credits succeeds", func(t *testing.T) {
		emails, err := svc.generation.Generate(ctx, generateRequest(ids[:5]...))
		require.NoError(t, err)
		assert.Len(t, emails, 5)
	})

	t.Run("an exhausted allotment rejects a single recipient", func(t *testing.T) {
		_, err := svc.generation.Generate(ctx, generateRequest(ids[5]))
		var quotaErr *service.QuotaExceededError
		require.True(t, errors.As(err, &quotaErr))
		assert.Equal(t, 0, quotaErr.Remaining)
	})
}

func TestGenerationService_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createServices(t, db)
	ctx, userID := testutil.UserContext(t)
	contact := testutil.CreateTestContact(t, db, userID, "Acme AS", "kari@acme.no", "Kari")

	tests := []struct {
		name   string
		mutate func(r *domain.GenerateEmailsRequest)
	}{
		{"missing campaign name", func(r *domain.GenerateEmailsRequest) { r.CampaignName = " " }},
		{"missing subject", func(r *domain.GenerateEmailsRequest) { r.Subject = "" }},
		{"body without text", func(r *domain.GenerateEmailsRequest) { r.Body = "<p> </p><br>" }},
		{"no recipients", func(r *domain.GenerateEmailsRequest) { r.ContactIDs = nil }},
		{"unsupported mode", func(r *domain.GenerateEmailsRequest) { r.Mode = "ai" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := generateRequest(contact.ID)
			tt.mutate(req)
			_, err := svc.generation.Generate(ctx, req)
			assert.ErrorIs(t, err, service.ErrInvalidInput)
		})
	}

	t.Run("unauthenticated is rejected first", func(t *testing.T) {
		req := generateRequest()
		req.CampaignName = ""
		_, err := svc.generation.Generate(context.Background(), req)
		assert.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("recipients of another user are not found", func(t *testing.T) {
		otherCtx, _ := testutil.UserContext(t)
		_, err := svc.generation.Generate(otherCtx, generateRequest(contact.ID))
		assert.ErrorIs(t, err, service.ErrContactNotFound)
	})

	assert.Equal(t, 0, svc.personalizer.calls())
}

func TestGenerationService_DeletesSourceDraft(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createServices(t, db)
	ctx, userID := testutil.UserContext(t)
	contact := testutil.CreateTestContact(t, db, userID, "Acme AS", "kari@acme.no", "Kari")

	d, err := svc.drafts.Create(ctx, &domain.CreateDraftRequest{Name: "Spring", ContactIDs: []uuid.UUID{contact.ID}})
	require.NoError(t, err)

	req := generateRequest(contact.ID)
	req.DraftID = &d.ID
	_, err = svc.generation.Generate(ctx, req)
	require.NoError(t, err)

	_, err = svc.drafts.Get(ctx, d.ID)
	assert.ErrorIs(t, err, service.ErrDraftNotFound)
}

func TestGenerationService_UsesProfileDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createServices(t, db)
	ctx, userID := testutil.UserContext(t)
	contact := testutil.CreateTestContact(t, db, userID, "Acme AS", "kari@acme.no", "Kari")

	friendly := domain.ToneFriendly
	_, err := svc.profiles.Update(ctx, &domain.UpdateProfileRequest{DefaultTone: &friendly, DefaultLanguage: strPtr("Norwegian")})
	require.NoError(t, err)

	_, err = svc.generation.Generate(ctx, generateRequest(contact.ID))
	require.NoError(t, err)
	require.Len(t, svc.personalizer.requests, 1)
	assert.Equal(t, domain.ToneFriendly, svc.personalizer.requests[0].Tone)
	assert.Equal(t, domain.GoalSales, svc.personalizer.requests[0].Goal)
	assert.Equal(t, "Norwegian", svc.personalizer.requests[0].Language)
}

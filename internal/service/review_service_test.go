package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/service"
	"github.com/sendsafe/sendsafe-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewService_Approve(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createServices(t, db)
	ctx, userID := testutil.UserContext(t)

	t.Run("draft moves to approved", func(t *testing.T) {
		email := testutil.CreateTestEmail(t, db, userID, domain.EmailStatusDraft, nil)
		dto, err := svc.review.Approve(ctx, email.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.EmailStatusApproved, dto.Status)
		assert.True(t, dto.Approved)
		assert.NotEmpty(t, dto.ApprovedAt)
	})

	t.Run("needs_review moves to approved", func(t *testing.T) {
		email := testutil.CreateTestEmail(t, db, userID, domain.EmailStatusNeedsReview, nil)
		dto, err := svc.review.Approve(ctx, email.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.EmailStatusApproved, dto.Status)
	})

	t.Run("approving twice keeps the first approval time", func(t *testing.T) {
		email := testutil.CreateTestEmail(t, db, userID, domain.EmailStatusDraft, nil)
		first, err := svc.review.Approve(ctx, email.ID)
		require.NoError(t, err)
		second, err := svc.review.Approve(ctx, email.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ApprovedAt, second.ApprovedAt)
	})

	t.Run("a sent email cannot be approved", func(t *testing.T) {
		email := testutil.CreateTestEmail(t, db, userID, domain.EmailStatusSent, nil)
		_, err := svc.review.Approve(ctx, email.ID)
		assert.ErrorIs(t, err, service.ErrInvalidTransition)
	})

	t.Run("another user's email is not found", func(t *testing.T) {
		email := testutil.CreateTestEmail(t, db, userID, domain.EmailStatusDraft, nil)
		otherCtx, _ := testutil.UserContext(t)
		_, err := svc.review.Approve(otherCtx, email.ID)
		assert.ErrorIs(t, err, service.ErrEmailNotFound)
	})
}

func TestReviewService_ApproveAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createServices(t, db)
	ctx, userID := testutil.UserContext(t)
	_, otherID := testutil.UserContext(t)

	testutil.CreateTestEmail(t, db, userID, domain.EmailStatusDraft, nil)
	testutil.CreateTestEmail(t, db, userID, domain.EmailStatusNeedsReview, nil)
	testutil.CreateTestEmail(t, db, userID, domain.EmailStatusApproved, nil)
	sent := testutil.CreateTestEmail(t, db, userID, domain.EmailStatusSent, nil)
	foreign := testutil.CreateTestEmail(t, db, otherID, domain.EmailStatusDraft, nil)

	result, err := svc.review.ApproveAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Approved)

	dto, err := svc.review.Get(ctx, sent.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EmailStatusSent, dto.Status)

	var stored domain.OutboundEmail
	require.NoError(t, db.First(&stored, "id = ?", foreign.ID).Error)
	assert.Equal(t, domain.EmailStatusDraft, stored.Status)
}

func TestReviewService_RequestReview(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createServices(t, db)
	ctx, userID := testutil.UserContext(t)

	draftEmail := testutil.CreateTestEmail(t, db, userID, domain.EmailStatusDraft, nil)
	dto, err := svc.review.RequestReview(ctx, draftEmail.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EmailStatusNeedsReview, dto.Status)

	approved := testutil.CreateTestEmail(t, db, userID, domain.EmailStatusApproved, nil)
	_, err = svc.review.RequestReview(ctx, approved.ID)
	assert.ErrorIs(t, err, service.ErrInvalidTransition)
}

func TestReviewService_Edit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createServices(t, db)
	ctx, userID := testutil.UserContext(t)

	t.Run("keeps the status", func(t *testing.T) {
		email := testutil.CreateTestEmail(t, db, userID, domain.EmailStatusApproved, nil)
		dto, err := svc.review.Edit(ctx, email.ID, &domain.UpdateEmailRequest{Subject: strPtr("Better subject")})
		require.NoError(t, err)
		assert.Equal(t, "Better subject", dto.Subject)
		assert.Equal(t, "<p>Hi Kari</p>", dto.Body)
		assert.Equal(t, domain.EmailStatusApproved, dto.Status)
	})

	t.Run("a sent email is final", func(t *testing.T) {
		email := testutil.CreateTestEmail(t, db, userID, domain.EmailStatusSent, nil)
		_, err := svc.review.Edit(ctx, email.ID, &domain.UpdateEmailRequest{Body: strPtr("<p>late</p>")})
		assert.ErrorIs(t, err, service.ErrInvalidTransition)
	})
}

func TestReviewService_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createServices(t, db)
	ctx, userID := testutil.UserContext(t)

	email := testutil.CreateTestEmail(t, db, userID, domain.EmailStatusSent, nil)
	require.NoError(t, svc.review.Delete(ctx, email.ID))
	assert.ErrorIs(t, svc.review.Delete(ctx, email.ID), service.ErrEmailNotFound)
}

func TestReviewService_ListGrouped(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createServices(t, db)
	ctx, userID := testutil.UserContext(t)

	campaign := uuid.New()
	testutil.CreateTestEmail(t, db, userID, domain.EmailStatusDraft, &campaign)
	testutil.CreateTestEmail(t, db, userID, domain.EmailStatusApproved, &campaign)
	testutil.CreateTestEmail(t, db, userID, domain.EmailStatusDraft, nil)

	groups, err := svc.review.ListGrouped(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	byKey := map[string]domain.CampaignGroupDTO{}
	for _, g := range groups {
		byKey[g.CampaignID] = g
	}
	assert.Len(t, byKey[campaign.String()].Emails, 2)
	assert.Len(t, byKey[domain.NoCampaignKey].Emails, 1)
}

package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/auth"
	"github.com/sendsafe/sendsafe-api/internal/database"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB opens an in-memory sqlite database with every table migrated.
// A single connection keeps the in-memory database alive for the whole test.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), database.GormConfig())
	require.NoError(t, err, "failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

// UserContext returns a context authenticated as a fresh user
func UserContext(t *testing.T) (context.Context, uuid.UUID) {
	t.Helper()
	userID := uuid.New()
	ctx := auth.WithUserContext(context.Background(), &auth.UserContext{
		UserID: userID,
		Email:  "owner-" + userID.String()[:8] + "@example.com",
		Role:   "authenticated",
	})
	return ctx, userID
}

// CreateTestContact inserts a contact owned by userID
func CreateTestContact(t *testing.T, db *gorm.DB, userID uuid.UUID, company, email, name string) *domain.Contact {
	t.Helper()
	contact := &domain.Contact{
		Company:      company,
		ContactEmail: email,
		ContactName:  name,
		Status:       domain.ContactStatusImported,
	}
	contact.UserID = userID
	require.NoError(t, db.Create(contact).Error)
	return contact
}

// CreateTestEmail inserts an outbound email owned by userID in the given status
func CreateTestEmail(t *testing.T, db *gorm.DB, userID uuid.UUID, status domain.EmailStatus, campaignID *uuid.UUID) *domain.OutboundEmail {
	t.Helper()
	email := &domain.OutboundEmail{
		Company:        "Acme AS",
		ContactName:    "Kari Nordmann",
		ContactEmail:   "kari@acme.no",
		Subject:        "Hello Acme",
		Body:           "<p>Hi Kari</p>",
		Status:         status,
		Approved:       status == domain.EmailStatusApproved || status == domain.EmailStatusSent,
		Issues:         []string{},
		CampaignID:     campaignID,
		CampaignName:   "Spring",
		GenerationMode: domain.GenerationModeHybrid,
	}
	if email.Approved {
		now := time.Now().UTC()
		email.ApprovedAt = &now
	}
	if status == domain.EmailStatusSent {
		now := time.Now().UTC()
		email.SentAt = &now
	}
	email.UserID = userID
	require.NoError(t, db.Create(email).Error)
	return email
}

// CreateTestProfile inserts a profile for userID
func CreateTestProfile(t *testing.T, db *gorm.DB, userID uuid.UUID, plan domain.Plan, senderEmail string) *domain.Profile {
	t.Helper()
	profile := &domain.Profile{
		UserID:                userID,
		Plan:                  plan,
		SenderEmail:           senderEmail,
		SenderName:            "Ola Sender",
		UsageWarningThreshold: 80,
	}
	require.NoError(t, db.Create(profile).Error)
	return profile
}

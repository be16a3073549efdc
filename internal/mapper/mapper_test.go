package mapper

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestToOutboundEmailDTO_EmptyCollections(t *testing.T) {
	email := &domain.OutboundEmail{
		Subject:        "Hi",
		Status:         domain.EmailStatusDraft,
		GenerationMode: domain.GenerationModeHybrid,
	}

	dto := ToOutboundEmailDTO(email)

	assert.NotNil(t, dto.Issues)
	assert.Empty(t, dto.Issues)
	assert.Empty(t, dto.ApprovedAt)
	assert.Empty(t, dto.SentAt)
}

func TestToOutboundEmailDTO_Timestamps(t *testing.T) {
	approved := time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)
	email := &domain.OutboundEmail{ApprovedAt: &approved, Status: domain.EmailStatusApproved}

	dto := ToOutboundEmailDTO(email)

	assert.Equal(t, "2026-03-04T10:30:00Z", dto.ApprovedAt)
}

func TestToContactDTOs_AttachesGroups(t *testing.T) {
	a := domain.Contact{Company: "Acme"}
	a.ID = uuid.New()
	b := domain.Contact{Company: "Beta"}
	b.ID = uuid.New()
	groupID := uuid.New()

	dtos := ToContactDTOs([]domain.Contact{a, b}, map[uuid.UUID][]uuid.UUID{a.ID: {groupID}})

	assert.Equal(t, []uuid.UUID{groupID}, dtos[0].GroupIDs)
	assert.Equal(t, []uuid.UUID{}, dtos[1].GroupIDs)
}

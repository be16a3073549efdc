package repository_test

import (
	"testing"

	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/repository"
	"github.com/sendsafe/sendsafe-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGroupRepository_AddMembershipsIsIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewGroupRepository(db)
	ctx, userID := testutil.UserContext(t)

	contact := testutil.CreateTestContact(t, db, userID, "Acme", "kari@acme.no", "")
	group := &domain.ContactGroup{Name: "Oslo"}
	group.UserID = userID
	require.NoError(t, repo.Create(ctx, group))

	m := []domain.ContactGroupMembership{{UserID: userID, ContactID: contact.ID, GroupID: group.ID}}
	require.NoError(t, repo.AddMemberships(ctx, m))
	require.NoError(t, repo.AddMemberships(ctx, []domain.ContactGroupMembership{{UserID: userID, ContactID: contact.ID, GroupID: group.ID}}))

	memberships, err := repo.ListMemberships(ctx, &group.ID)
	require.NoError(t, err)
	assert.Len(t, memberships, 1)
}

func TestGroupRepository_FindByNameAndDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewGroupRepository(db)
	ctx, userID := testutil.UserContext(t)
	otherCtx, _ := testutil.UserContext(t)

	group := &domain.ContactGroup{Name: "Nordic Retail"}
	group.UserID = userID
	require.NoError(t, repo.Create(ctx, group))

	found, err := repo.FindByName(ctx, "  nordic retail ")
	require.NoError(t, err)
	assert.Equal(t, group.ID, found.ID)

	_, err = repo.FindByName(otherCtx, "Nordic Retail")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, repo.Delete(otherCtx, group.ID), gorm.ErrRecordNotFound)
	require.NoError(t, repo.Delete(ctx, group.ID))
	_, err = repo.GetByID(ctx, group.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

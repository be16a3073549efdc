package repository_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/repository"
	"github.com/sendsafe/sendsafe-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestContactRepository_OwnerIsolation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewContactRepository(db)
	ctxA, userA := testutil.UserContext(t)
	ctxB, _ := testutil.UserContext(t)

	contact := testutil.CreateTestContact(t, db, userA, "Acme AS", "kari@acme.no", "Kari Nordmann")

	got, err := repo.GetByID(ctxA, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme AS", got.Company)

	_, err = repo.GetByID(ctxB, contact.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	listB, err := repo.List(ctxB, domain.ContactFilter{})
	require.NoError(t, err)
	assert.Empty(t, listB)

	deleted, err := repo.Delete(ctxB, []uuid.UUID{contact.ID})
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestContactRepository_ListFiltersAndSort(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewContactRepository(db)
	groups := repository.NewGroupRepository(db)
	ctx, userID := testutil.UserContext(t)

	beta := testutil.CreateTestContact(t, db, userID, "Beta", "ola@beta.no", "Ola")
	time.Sleep(5 * time.Millisecond)
	acme := testutil.CreateTestContact(t, db, userID, "acme", "kari@acme.no", "Kari")
	time.Sleep(5 * time.Millisecond)
	gamma := testutil.CreateTestContact(t, db, userID, "Gamma", "per@gamma.no", "Per 50%")

	t.Run("newest first by default", func(t *testing.T) {
		list, err := repo.List(ctx, domain.ContactFilter{})
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, gamma.ID, list[0].ID)
		assert.Equal(t, beta.ID, list[2].ID)
	})

	t.Run("company ascending ignores case", func(t *testing.T) {
		list, err := repo.List(ctx, domain.ContactFilter{SortBy: domain.ContactSortCompanyAsc})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{acme.ID, beta.ID, gamma.ID}, []uuid.UUID{list[0].ID, list[1].ID, list[2].ID})
	})

	t.Run("search", func(t *testing.T) {
		list, err := repo.List(ctx, domain.ContactFilter{Search: "ACME"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, acme.ID, list[0].ID)
	})

	t.Run("search escapes wildcards", func(t *testing.T) {
		list, err := repo.List(ctx, domain.ContactFilter{Search: "50%"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, gamma.ID, list[0].ID)
	})

	t.Run("group filter", func(t *testing.T) {
		group := &domain.ContactGroup{Name: "Oslo"}
		group.UserID = userID
		require.NoError(t, groups.Create(ctx, group))
		require.NoError(t, groups.AddMemberships(ctx, []domain.ContactGroupMembership{
			{UserID: userID, ContactID: beta.ID, GroupID: group.ID},
		}))

		list, err := repo.List(ctx, domain.ContactFilter{GroupID: &group.ID})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, beta.ID, list[0].ID)
	})
}

func TestContactRepository_DeleteCascadesMemberships(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewContactRepository(db)
	groups := repository.NewGroupRepository(db)
	ctx, userID := testutil.UserContext(t)

	contact := testutil.CreateTestContact(t, db, userID, "Acme", "kari@acme.no", "")
	group := &domain.ContactGroup{Name: "Leads"}
	group.UserID = userID
	require.NoError(t, groups.Create(ctx, group))
	require.NoError(t, groups.AddMemberships(ctx, []domain.ContactGroupMembership{{UserID: userID, ContactID: contact.ID, GroupID: group.ID}}))

	deleted, err := repo.Delete(ctx, []uuid.UUID{contact.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	memberships, err := groups.ListMemberships(ctx, &group.ID)
	require.NoError(t, err)
	assert.Empty(t, memberships)
}

func TestContactRepository_UpdateNeverInserts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewContactRepository(db)
	ctx, userID := testutil.UserContext(t)

	ghost := &domain.Contact{Company: "Ghost", ContactEmail: "x@y.z"}
	ghost.ID = uuid.New()
	ghost.UserID = userID

	err := repo.Update(ctx, ghost)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	db.Model(&domain.Contact{}).Count(&count)
	assert.Zero(t, count)
}

func TestContactRepository_GetByIDsKeepsInputOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewContactRepository(db)
	ctx, userID := testutil.UserContext(t)

	a := testutil.CreateTestContact(t, db, userID, "A", "a@a.no", "")
	b := testutil.CreateTestContact(t, db, userID, "B", "b@b.no", "")

	got, err := repo.GetByIDs(ctx, []uuid.UUID{b.ID, uuid.New(), a.ID, b.ID})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, b.ID, got[0].ID)
	assert.Equal(t, a.ID, got[1].ID)
}

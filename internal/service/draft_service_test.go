package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/auth"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/draft"
	"github.com/sendsafe/sendsafe-api/internal/repository"
	"github.com/sendsafe/sendsafe-api/internal/service"
	"github.com/sendsafe/sendsafe-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

func TestDraftService_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createServices(t, db)
	ctx, userID := testutil.UserContext(t)
	contact := testutil.CreateTestContact(t, db, userID, "Acme AS", "kari@acme.no", "Kari")

	t.Run("creates a draft with recipients", func(t *testing.T) {
		dto, err := svc.drafts.Create(ctx, &domain.CreateDraftRequest{
			Name:       " Spring outreach ",
			ContactIDs: []uuid.UUID{contact.ID, contact.ID},
			Tone:       domain.ToneFriendly,
		})
		require.NoError(t, err)
		assert.Equal(t, "Spring outreach", dto.Name)
		assert.Equal(t, []uuid.UUID{contact.ID}, dto.ContactIDs)
		assert.Equal(t, domain.ToneFriendly, dto.Tone)
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := svc.drafts.Create(ctx, &domain.CreateDraftRequest{Name: "  ", ContactIDs: []uuid.UUID{contact.ID}})
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("requires a recipient", func(t *testing.T) {
		_, err := svc.drafts.Create(ctx, &domain.CreateDraftRequest{Name: "Empty"})
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("requires a caller", func(t *testing.T) {
		_, err := svc.drafts.Create(context.Background(), &domain.CreateDraftRequest{Name: "x", ContactIDs: []uuid.UUID{contact.ID}})
		assert.ErrorIs(t, err, service.ErrUnauthorized)
	})
}

func TestDraftService_AutosaveCoalesces(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createServices(t, db)
	ctx, _ := testutil.UserContext(t)

	created, err := svc.drafts.Create(ctx, &domain.CreateDraftRequest{Name: "Draft", ContactIDs: []uuid.UUID{uuid.New()}})
	require.NoError(t, err)

	require.NoError(t, svc.drafts.Autosave(ctx, created.ID, &domain.UpdateDraftRequest{TemplateSubject: strPtr("Hi")}))
	require.NoError(t, svc.drafts.Autosave(ctx, created.ID, &domain.UpdateDraftRequest{TemplateBody: strPtr("<p>One</p>")}))
	require.NoError(t, svc.drafts.Autosave(ctx, created.ID, &domain.UpdateDraftRequest{TemplateBody: strPtr("<p>Two</p>")}))

	stored, err := repository.NewDraftRepository(db).GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.TemplateBody, "nothing is written inside the quiet period")

	got, err := svc.drafts.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hi", got.TemplateSubject)
	assert.Equal(t, "<p>Two</p>", got.TemplateBody)
}

func TestDraftService_AutosaveFlushesAfterQuietPeriod(t *testing.T) {
	db := testutil.SetupTestDB(t)
	drafts := service.NewDraftService(repository.NewDraftRepository(db), 20*time.Millisecond, zap.NewNop())
	t.Cleanup(drafts.FlushAll)
	ctx, _ := testutil.UserContext(t)

	created, err := drafts.Create(ctx, &domain.CreateDraftRequest{Name: "Draft", ContactIDs: []uuid.UUID{uuid.New()}})
	require.NoError(t, err)
	require.NoError(t, drafts.Autosave(ctx, created.ID, &domain.UpdateDraftRequest{Language: strPtr("Norwegian")}))

	repo := repository.NewDraftRepository(db)
	assert.Eventually(t, func() bool {
		d, err := repo.GetByID(ctx, created.ID)
		return err == nil && d.Language == "Norwegian"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDraftService_AutosaveValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createServices(t, db)
	ctx, _ := testutil.UserContext(t)
	otherCtx, _ := testutil.UserContext(t)

	created, err := svc.drafts.Create(ctx, &domain.CreateDraftRequest{Name: "Draft", ContactIDs: []uuid.UUID{uuid.New()}})
	require.NoError(t, err)

	err = svc.drafts.Autosave(ctx, created.ID, &domain.UpdateDraftRequest{Name: strPtr(" ")})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	bad := domain.Tone("shouty")
	err = svc.drafts.Autosave(ctx, created.ID, &domain.UpdateDraftRequest{Tone: &bad})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	err = svc.drafts.Autosave(otherCtx, created.ID, &domain.UpdateDraftRequest{Name: strPtr("Mine")})
	assert.ErrorIs(t, err, service.ErrDraftNotFound)
}

func TestDraftService_DeleteDropsPendingAutosave(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createServices(t, db)
	ctx, _ := testutil.UserContext(t)

	created, err := svc.drafts.Create(ctx, &domain.CreateDraftRequest{Name: "Draft", ContactIDs: []uuid.UUID{uuid.New()}})
	require.NoError(t, err)
	require.NoError(t, svc.drafts.Autosave(ctx, created.ID, &domain.UpdateDraftRequest{Name: strPtr("Renamed")}))

	require.NoError(t, svc.drafts.Delete(ctx, created.ID))
	_, err = svc.drafts.Get(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrDraftNotFound)

	list, err := svc.drafts.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDraftService_ListFlushesCallerDrafts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createServices(t, db)
	ctx, _ := testutil.UserContext(t)

	created, err := svc.drafts.Create(ctx, &domain.CreateDraftRequest{Name: "Draft", ContactIDs: []uuid.UUID{uuid.New()}})
	require.NoError(t, err)
	require.NoError(t, svc.drafts.Autosave(ctx, created.ID, &domain.UpdateDraftRequest{Name: strPtr("Renamed")}))

	list, err := svc.drafts.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Renamed", list[0].Name)
}

func TestDraftStore_BacksEditor(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createServices(t, db)
	ctx, userID := testutil.UserContext(t)
	user, _ := auth.FromContext(ctx)
	contact := testutil.CreateTestContact(t, db, userID, "Acme AS", "kari@acme.no", "Kari")

	var navigatedTo string
	nav := draft.NewNavigator(func(to string) { navigatedTo = to })
	editor, err := draft.NewEditor(service.NewDraftStore(svc.drafts, *user), nav, time.Hour, zap.NewNop())
	require.NoError(t, err)
	defer editor.Close()

	require.NoError(t, editor.Edit(ctx, func(f *draft.Fields) {
		f.ContactIDs = []uuid.UUID{contact.ID}
		f.Subject = "Hello [Name]"
	}))
	require.NoError(t, editor.ConfirmRecipients(ctx))
	assert.Equal(t, draft.StateInMemory, editor.State())

	assert.False(t, nav.Navigate("/emails"))
	require.NoError(t, editor.Leave(ctx, draft.LeaveSave, "From the editor"))
	assert.Equal(t, "/emails", navigatedTo)
	assert.Equal(t, draft.StatePersisted, editor.State())

	list, err := svc.drafts.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "From the editor", list[0].Name)
	assert.Equal(t, "Hello [Name]", list[0].TemplateSubject)
}

package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/auth"
	"github.com/sendsafe/sendsafe-api/internal/config"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/generator"
	"github.com/sendsafe/sendsafe-api/internal/http/handler"
	"github.com/sendsafe/sendsafe-api/internal/mailer"
	"github.com/sendsafe/sendsafe-api/internal/repository"
	"github.com/sendsafe/sendsafe-api/internal/service"
	"github.com/sendsafe/sendsafe-api/internal/storage"
	"github.com/sendsafe/sendsafe-api/internal/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// offlineModel fails every call, so generation falls back to the template
// and enrichment reports per-contact failures
type offlineModel struct{}

func (offlineModel) Generate(context.Context, string, json.RawMessage) (string, error) {
	return "", errors.New("model offline")
}

type testEnv struct {
	db     *gorm.DB
	router chi.Router
	user   *auth.UserContext
	// outboxDir holds the messages written by the outbox transport
	outboxDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := zap.NewNop()
	db := testutil.SetupTestDB(t)

	plans := &config.PlansConfig{
		Free:                    config.PlanLimits{AICredits: 5, Sends: 3},
		Starter:                 config.PlanLimits{AICredits: 500, Sends: 2000},
		Pro:                     config.PlanLimits{AICredits: 2000, Sends: 10000},
		DefaultWarningThreshold: 80,
	}

	gen, err := generator.NewService(offlineModel{}, logger)
	require.NoError(t, err)

	outboxDir := t.TempDir()
	outbox, err := storage.NewLocalStorage(outboxDir)
	require.NoError(t, err)
	transport := mailer.NewOutboxTransport(outbox, "outbox", logger)

	contactRepo := repository.NewContactRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	draftRepo := repository.NewDraftRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	emailRepo := repository.NewEmailRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	attemptRepo := repository.NewSendAttemptRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	profiles := service.NewProfileService(profileRepo, plans, logger)
	usage := service.NewUsageService(profiles, emailRepo, contactRepo, plans, logger)
	drafts := service.NewDraftService(draftRepo, time.Hour, logger)
	t.Cleanup(drafts.FlushAll)

	contactHandler := handler.NewContactHandler(service.NewContactService(contactRepo, groupRepo, usage, gen, logger), 5, logger)
	groupHandler := handler.NewGroupHandler(service.NewGroupService(groupRepo, contactRepo, logger), logger)
	draftHandler := handler.NewDraftHandler(drafts, logger)
	templateHandler := handler.NewTemplateHandler(service.NewTemplateService(templateRepo, contactRepo, logger), logger)
	emailHandler := handler.NewEmailHandler(
		service.NewGenerationService(contactRepo, emailRepo, draftRepo, profiles, usage, gen, logger),
		service.NewReviewService(emailRepo, logger),
		service.NewSendService(emailRepo, attemptRepo, profiles, usage, transport, logger),
		logger,
	)
	profileHandler := handler.NewProfileHandler(profiles, usage, service.NewInvoiceService(invoiceRepo, logger), logger)
	senderDomainHandler := handler.NewSenderDomainHandler(
		service.NewSenderDomainService(profileRepo, profiles, mailer.NewOutboxDomains(), logger), logger)
	authHandler := handler.NewAuthHandler(profiles, usage, logger)

	env := &testEnv{db: db, outboxDir: outboxDir}
	env.user = newUser()

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if env.user != nil {
				req = req.WithContext(auth.WithUserContext(req.Context(), env.user))
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Get("/auth/me", authHandler.Me)
	r.Get("/contacts", contactHandler.List)
	r.Post("/contacts", contactHandler.Create)
	r.Post("/contacts/import", contactHandler.Import)
	r.Get("/contacts/export", contactHandler.Export)
	r.Post("/contacts/fix-columns", contactHandler.FixColumns)
	r.Post("/contacts/enrich", contactHandler.Enrich)
	r.Post("/contacts/delete", contactHandler.DeleteMany)
	r.Patch("/contacts/{id}", contactHandler.Update)
	r.Delete("/contacts/{id}", contactHandler.Delete)
	r.Get("/groups", groupHandler.List)
	r.Post("/groups", groupHandler.Create)
	r.Get("/groups/memberships", groupHandler.ListMemberships)
	r.Delete("/groups/{id}", groupHandler.Delete)
	r.Post("/groups/{id}/contacts", groupHandler.AddContacts)
	r.Delete("/groups/{id}/contacts/{contactId}", groupHandler.RemoveContact)
	r.Get("/drafts", draftHandler.List)
	r.Post("/drafts", draftHandler.Create)
	r.Get("/drafts/{id}", draftHandler.Get)
	r.Patch("/drafts/{id}", draftHandler.Update)
	r.Delete("/drafts/{id}", draftHandler.Delete)
	r.Get("/templates", templateHandler.List)
	r.Post("/templates", templateHandler.Create)
	r.Post("/templates/analyze", templateHandler.Analyze)
	r.Put("/templates/{id}", templateHandler.Update)
	r.Delete("/templates/{id}", templateHandler.Delete)
	r.Get("/emails", emailHandler.List)
	r.Post("/emails/generate", emailHandler.Generate)
	r.Post("/emails/approve-all", emailHandler.ApproveAll)
	r.Post("/emails/send-approved", emailHandler.SendApproved)
	r.Get("/emails/{id}", emailHandler.Get)
	r.Patch("/emails/{id}", emailHandler.Update)
	r.Delete("/emails/{id}", emailHandler.Delete)
	r.Post("/emails/{id}/approve", emailHandler.Approve)
	r.Post("/emails/{id}/request-review", emailHandler.RequestReview)
	r.Post("/emails/{id}/send", emailHandler.Send)
	r.Get("/profile", profileHandler.GetProfile)
	r.Put("/profile", profileHandler.UpdateProfile)
	r.Get("/usage", profileHandler.GetUsage)
	r.Get("/invoices", profileHandler.ListInvoices)
	r.Get("/sender-domain", senderDomainHandler.Get)
	r.Post("/sender-domain", senderDomainHandler.Add)
	r.Post("/sender-domain/verify", senderDomainHandler.Verify)
	r.Delete("/sender-domain", senderDomainHandler.Remove)
	env.router = r

	return env
}

func newUser() *auth.UserContext {
	id := uuid.New()
	return &auth.UserContext{
		UserID: id,
		Email:  "owner-" + id.String()[:8] + "@example.com",
		Role:   "authenticated",
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func (e *testEnv) createContact(t *testing.T, company, email string) *domain.Contact {
	t.Helper()
	return testutil.CreateTestContact(t, e.db, e.user.UserID, company, email, "")
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

package service_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sendsafe/sendsafe-api/internal/config"
	"github.com/sendsafe/sendsafe-api/internal/generator"
	"github.com/sendsafe/sendsafe-api/internal/mailer"
	"github.com/sendsafe/sendsafe-api/internal/repository"
	"github.com/sendsafe/sendsafe-api/internal/service"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func testPlans() *config.PlansConfig {
	return &config.PlansConfig{
		Free:                    config.PlanLimits{AICredits: 5, Sends: 3},
		Starter:                 config.PlanLimits{AICredits: 500, Sends: 2000},
		Pro:                     config.PlanLimits{AICredits: 2000, Sends: 10000},
		DefaultWarningThreshold: 80,
	}
}

// stubPersonalizer fails for the recipients whose company is listed in failFor
type stubPersonalizer struct {
	mu       sync.Mutex
	failFor  map[string]bool
	requests []generator.PersonalizeRequest
}

func (p *stubPersonalizer) Personalize(_ context.Context, req generator.PersonalizeRequest) (*generator.Personalized, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.requests = append(p.requests, req)
	if p.failFor[req.Recipient.Company] {
		return nil, errors.New("model unavailable")
	}
	return &generator.Personalized{
		Subject: "AI: " + req.Subject,
		Body:    strings.ReplaceAll(req.Body, "[opener]", "Loved your latest launch."),
	}, nil
}

func (p *stubPersonalizer) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}

type stubEnricher struct {
	facts *generator.Enrichment
	err   error
	calls int
}

func (e *stubEnricher) Enrich(_ context.Context, _ generator.EnrichRequest) (*generator.Enrichment, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	return e.facts, nil
}

type mockTransport struct {
	mock.Mock
}

func (m *mockTransport) Send(ctx context.Context, msg mailer.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

// services wires every service on one database the way main does
type services struct {
	profiles   *service.ProfileService
	usage      *service.UsageService
	contacts   *service.ContactService
	groups     *service.GroupService
	templates  *service.TemplateService
	drafts     *service.DraftService
	generation *service.GenerationService
	review     *service.ReviewService
	send       *service.SendService
	domains    *service.SenderDomainService

	personalizer *stubPersonalizer
	enricher     *stubEnricher
	transport    *mockTransport
	domainMgr    *mailer.OutboxDomains
}

func createServices(t *testing.T, db *gorm.DB) *services {
	t.Helper()
	logger := zap.NewNop()
	plans := testPlans()

	contactRepo := repository.NewContactRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	draftRepo := repository.NewDraftRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	emailRepo := repository.NewEmailRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	attemptRepo := repository.NewSendAttemptRepository(db)

	s := &services{
		personalizer: &stubPersonalizer{failFor: map[string]bool{}},
		enricher:     &stubEnricher{facts: &generator.Enrichment{}},
		transport:    &mockTransport{},
		domainMgr:    mailer.NewOutboxDomains(),
	}
	s.profiles = service.NewProfileService(profileRepo, plans, logger)
	s.usage = service.NewUsageService(s.profiles, emailRepo, contactRepo, plans, logger)
	s.contacts = service.NewContactService(contactRepo, groupRepo, s.usage, s.enricher, logger)
	s.groups = service.NewGroupService(groupRepo, contactRepo, logger)
	s.templates = service.NewTemplateService(templateRepo, contactRepo, logger)
	s.drafts = service.NewDraftService(draftRepo, time.Hour, logger)
	s.generation = service.NewGenerationService(contactRepo, emailRepo, draftRepo, s.profiles, s.usage, s.personalizer, logger)
	s.review = service.NewReviewService(emailRepo, logger)
	s.send = service.NewSendService(emailRepo, attemptRepo, s.profiles, s.usage, s.transport, logger)
	s.domains = service.NewSenderDomainService(profileRepo, s.profiles, s.domainMgr, logger)
	t.Cleanup(s.drafts.FlushAll)
	return s
}

package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// ErrDomainNotFound is returned when the provider does not know a domain id
var ErrDomainNotFound = errors.New("sender domain not found")

// Domain status values reported by the provider
const (
	DomainPending  = "pending"
	DomainVerified = "verified"
	DomainFailed   = "failed"
)

// DNSRecord is one record the customer must publish for their domain
type DNSRecord struct {
	Record string
	Name   string
	Type   string
	Value  string
	TTL    string
	Status string
}

// DomainInfo is the provider's view of a sender domain. Records are only
// returned when the domain is created.
type DomainInfo struct {
	ID      string
	Name    string
	Status  string
	Records []DNSRecord
}

// DomainManager registers and verifies custom sender domains
type DomainManager interface {
	Create(ctx context.Context, name string) (*DomainInfo, error)
	Verify(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*DomainInfo, error)
	Remove(ctx context.Context, id string) error
}

// NormalizeDomainStatus folds provider states into pending, verified or failed
func NormalizeDomainStatus(s string) string {
	switch strings.ToLower(s) {
	case "verified":
		return DomainVerified
	case "failed", "temporary_failure":
		return DomainFailed
	default:
		return DomainPending
	}
}

// ResendDomains uses the Resend Domains API
type ResendDomains struct {
	client *resend.Client
	logger *zap.Logger
}

func NewResendDomains(client *resend.Client, logger *zap.Logger) *ResendDomains {
	return &ResendDomains{client: client, logger: logger}
}

func convertRecords(in []resend.Record) []DNSRecord {
	out := make([]DNSRecord, 0, len(in))
	for _, r := range in {
		out = append(out, DNSRecord{
			Record: r.Record,
			Name:   r.Name,
			Type:   r.Type,
			Value:  r.Value,
			TTL:    r.Ttl,
			Status: r.Status,
		})
	}
	return out
}

func (d *ResendDomains) Create(ctx context.Context, name string) (*DomainInfo, error) {
	created, err := d.client.Domains.CreateWithContext(ctx, &resend.CreateDomainRequest{Name: name})
	if err != nil {
		return nil, fmt.Errorf("create domain: %w", err)
	}
	d.logger.Info("Sender domain registered", zap.String("domain", name), zap.String("domain_id", created.Id))
	return &DomainInfo{
		ID:      created.Id,
		Name:    created.Name,
		Status:  NormalizeDomainStatus(created.Status),
		Records: convertRecords(created.Records),
	}, nil
}

func (d *ResendDomains) Verify(ctx context.Context, id string) error {
	if _, err := d.client.Domains.VerifyWithContext(ctx, id); err != nil {
		return fmt.Errorf("verify domain: %w", err)
	}
	return nil
}

func (d *ResendDomains) Get(ctx context.Context, id string) (*DomainInfo, error) {
	got, err := d.client.Domains.GetWithContext(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get domain: %w", err)
	}
	return &DomainInfo{
		ID:     got.Id,
		Name:   got.Name,
		Status: NormalizeDomainStatus(got.Status),
	}, nil
}

func (d *ResendDomains) Remove(ctx context.Context, id string) error {
	if _, err := d.client.Domains.RemoveWithContext(ctx, id); err != nil {
		return fmt.Errorf("remove domain: %w", err)
	}
	return nil
}

// OutboxDomains keeps domains in memory and verifies them on request.
// It pairs with OutboxTransport when no provider is configured.
type OutboxDomains struct {
	mu      sync.Mutex
	domains map[string]*DomainInfo
}

func NewOutboxDomains() *OutboxDomains {
	return &OutboxDomains{domains: make(map[string]*DomainInfo)}
}

func (d *OutboxDomains) Create(ctx context.Context, name string) (*DomainInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	info := &DomainInfo{
		ID:     uuid.NewString(),
		Name:   name,
		Status: DomainPending,
		Records: []DNSRecord{
			{Record: "SPF", Name: "send." + name, Type: "TXT", Value: "v=spf1 include:outbox.local ~all", TTL: "Auto", Status: "not_started"},
			{Record: "DKIM", Name: "outbox._domainkey." + name, Type: "TXT", Value: "p=outbox", TTL: "Auto", Status: "not_started"},
		},
	}
	d.domains[info.ID] = info
	cp := *info
	cp.Records = append([]DNSRecord(nil), info.Records...)
	return &cp, nil
}

func (d *OutboxDomains) Verify(ctx context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	info, ok := d.domains[id]
	if !ok {
		return ErrDomainNotFound
	}
	info.Status = DomainVerified
	return nil
}

func (d *OutboxDomains) Get(ctx context.Context, id string) (*DomainInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	info, ok := d.domains[id]
	if !ok {
		return nil, ErrDomainNotFound
	}
	return &DomainInfo{ID: info.ID, Name: info.Name, Status: info.Status}, nil
}

func (d *OutboxDomains) Remove(ctx context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.domains, id)
	return nil
}

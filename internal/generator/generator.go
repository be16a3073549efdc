package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/qri-io/jsonschema"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/render"
	"go.uber.org/zap"
)

// ErrMalformedOutput is returned when the model answer is not the expected JSON object
var ErrMalformedOutput = errors.New("malformed generator output")

// TextGenerator produces text for a prompt
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, format json.RawMessage) (string, error)
}

// PersonalizeRequest is the per-recipient input of a hybrid generation.
// Subject and Body already have field tokens substituted.
type PersonalizeRequest struct {
	Recipient render.Recipient
	Subject   string
	Body      string
	Spans     []string
	Tone      domain.Tone
	Goal      domain.Goal
	Language  string
}

// Personalized is the generated subject and body for one recipient
type Personalized struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Personalizer writes the generated spans of a template for one recipient
type Personalizer interface {
	Personalize(ctx context.Context, req PersonalizeRequest) (*Personalized, error)
}

// EnrichRequest identifies the company to look up
type EnrichRequest struct {
	Company      string
	Domain       string
	ContactEmail string
}

// Enrichment holds discovered company facts; empty values mean unknown
type Enrichment struct {
	Domain        string `json:"domain"`
	Industry      string `json:"industry"`
	EmployeeCount *int   `json:"employee_count"`
}

// Enricher discovers missing company facts
type Enricher interface {
	Enrich(ctx context.Context, req EnrichRequest) (*Enrichment, error)
}

// Service implements Personalizer and Enricher on top of a TextGenerator
type Service struct {
	client      TextGenerator
	personalize *jsonschema.Schema
	enrich      *jsonschema.Schema
	logger      *zap.Logger
}

// NewService creates a generator service
func NewService(client TextGenerator, logger *zap.Logger) (*Service, error) {
	p, err := compileSchema(personalizedSchemaJSON)
	if err != nil {
		return nil, err
	}
	e, err := compileSchema(enrichmentSchemaJSON)
	if err != nil {
		return nil, err
	}
	return &Service{client: client, personalize: p, enrich: e, logger: logger}, nil
}

// Personalize asks the model to fill the generated spans for one recipient
func (s *Service) Personalize(ctx context.Context, req PersonalizeRequest) (*Personalized, error) {
	if req.Tone == "" {
		req.Tone = domain.ToneProfessional
	}
	if req.Goal == "" {
		req.Goal = domain.GoalSales
	}
	if req.Language == "" {
		req.Language = "English"
	}

	prompt, err := renderPrompt(personalizeTemplate, req)
	if err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	out, err := s.client.Generate(ctx, prompt, personalizedSchemaJSON)
	if err != nil {
		return nil, err
	}

	var result Personalized
	if err := decodeValidated(ctx, s.personalize, out, &result); err != nil {
		s.logger.Debug("Unusable personalization output", zap.Error(err), zap.Int("output_len", len(out)))
		return nil, err
	}
	if strings.TrimSpace(result.Subject) == "" || !render.HasText(result.Body) {
		return nil, fmt.Errorf("%w: empty subject or body", ErrMalformedOutput)
	}
	// only the bracketed spans are the model's to write
	if !render.KeepsFixedText(req.Subject, result.Subject) || !render.KeepsFixedText(req.Body, result.Body) {
		return nil, fmt.Errorf("%w: template text was changed", ErrMalformedOutput)
	}
	return &result, nil
}

// Enrich asks the model for the company's domain, industry and size
func (s *Service) Enrich(ctx context.Context, req EnrichRequest) (*Enrichment, error) {
	prompt, err := renderPrompt(enrichTemplate, req)
	if err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	out, err := s.client.Generate(ctx, prompt, enrichmentSchemaJSON)
	if err != nil {
		return nil, err
	}

	var raw struct {
		Domain        *string `json:"domain"`
		Industry      *string `json:"industry"`
		EmployeeCount *int    `json:"employee_count"`
	}
	if err := decodeValidated(ctx, s.enrich, out, &raw); err != nil {
		return nil, err
	}

	result := &Enrichment{EmployeeCount: raw.EmployeeCount}
	if raw.Domain != nil {
		result.Domain = strings.TrimSpace(*raw.Domain)
	}
	if raw.Industry != nil {
		result.Industry = strings.TrimSpace(*raw.Industry)
	}
	return result, nil
}

package domain

import (
	"github.com/google/uuid"
)

// ContactDTO is the API representation of a contact
type ContactDTO struct {
	ID            uuid.UUID     `json:"id"`
	Company       string        `json:"company"`
	ContactEmail  string        `json:"contactEmail"`
	ContactName   string        `json:"contactName,omitempty"`
	Domain        string        `json:"domain,omitempty"`
	Industry      string        `json:"industry,omitempty"`
	EmployeeCount *int          `json:"employeeCount,omitempty"`
	Comment       string        `json:"comment,omitempty"`
	Status        ContactStatus `json:"status"`
	GroupIDs      []uuid.UUID   `json:"groupIds"`
	EnrichedAt    string        `json:"enrichedAt,omitempty"` // ISO 8601
	CreatedAt     string        `json:"createdAt"`            // ISO 8601
	UpdatedAt     string        `json:"updatedAt"`            // ISO 8601
}

// ContactRow is one normalized input row of an import
type ContactRow struct {
	Company       string `json:"company" validate:"max=255"`
	ContactEmail  string `json:"contactEmail" validate:"max=320"`
	ContactName   string `json:"contactName,omitempty" validate:"max=255"`
	Domain        string `json:"domain,omitempty" validate:"max=255"`
	Industry      string `json:"industry,omitempty" validate:"max=255"`
	EmployeeCount *int   `json:"employeeCount,omitempty" validate:"omitempty,gte=0"`
	Comment       string `json:"comment,omitempty"`
	Group         string `json:"group,omitempty" validate:"max=200"`
}

// CreateContactsRequest is a manual import of JSON rows
type CreateContactsRequest struct {
	Rows []ContactRow `json:"rows" validate:"required,min=1,dive"`
}

// UpdateContactRequest is a partial patch; nil fields are left untouched
type UpdateContactRequest struct {
	Company       *string `json:"company,omitempty" validate:"omitempty,max=255"`
	ContactEmail  *string `json:"contactEmail,omitempty" validate:"omitempty,max=320"`
	ContactName   *string `json:"contactName,omitempty" validate:"omitempty,max=255"`
	Domain        *string `json:"domain,omitempty" validate:"omitempty,max=255"`
	Industry      *string `json:"industry,omitempty" validate:"omitempty,max=255"`
	EmployeeCount *int    `json:"employeeCount,omitempty" validate:"omitempty,gte=0"`
	Comment       *string `json:"comment,omitempty"`
	// Status lets the user park a contact as skipped or bring it back
	Status *ContactStatus `json:"status,omitempty" validate:"omitempty,oneof=imported skipped"`
}

// ContactSort names the supported contact orderings
type ContactSort string

const (
	ContactSortCreatedDesc ContactSort = "created_desc"
	ContactSortCreatedAsc  ContactSort = "created_asc"
	ContactSortCompanyAsc  ContactSort = "company_asc"
	ContactSortCompanyDesc ContactSort = "company_desc"
	ContactSortEmailAsc    ContactSort = "email_asc"
)

// ContactFilter narrows and orders a contact listing
type ContactFilter struct {
	Search  string
	GroupID *uuid.UUID
	Status  ContactStatus
	SortBy  ContactSort
}

// ContactIDsRequest carries a set of contact ids
type ContactIDsRequest struct {
	ContactIDs []uuid.UUID `json:"contactIds" validate:"required,min=1"`
}

// ImportResult reports an import. Accepted + Skipped equals the number of input rows.
type ImportResult struct {
	Accepted int          `json:"accepted"`
	Skipped  int          `json:"skipped"`
	Contacts []ContactDTO `json:"contacts"`
}

// FixColumnsResult reports a column repair pass
type FixColumnsResult struct {
	Scanned int `json:"scanned"`
	Fixed   int `json:"fixed"`
}

// BatchFailure describes one failed item of a batch
type BatchFailure struct {
	ID    uuid.UUID `json:"id"`
	Error string    `json:"error"`
}

// BatchResult reports a batch where items succeed or fail independently
type BatchResult struct {
	Attempted int            `json:"attempted"`
	Succeeded int            `json:"succeeded"`
	Failed    []BatchFailure `json:"failed"`
}

// ContactGroupDTO is the API representation of a group
type ContactGroupDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt string    `json:"createdAt"`
}

// CreateGroupRequest creates a group
type CreateGroupRequest struct {
	Name string `json:"name" validate:"required,notblank,max=200"`
}

// MembershipDTO links a contact to a group
type MembershipDTO struct {
	ContactID uuid.UUID `json:"contactId"`
	GroupID   uuid.UUID `json:"groupId"`
}

// CampaignDraftDTO is the API representation of a draft
type CampaignDraftDTO struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	ContactIDs      []uuid.UUID `json:"contactIds"`
	Tone            Tone        `json:"tone,omitempty"`
	Goal            Goal        `json:"goal,omitempty"`
	Language        string      `json:"language,omitempty"`
	TemplateSubject string      `json:"templateSubject"`
	TemplateBody    string      `json:"templateBody"`
	CreatedAt       string      `json:"createdAt"`
	UpdatedAt       string      `json:"updatedAt"`
}

// CreateDraftRequest creates the durable draft record
type CreateDraftRequest struct {
	Name            string      `json:"name" validate:"required,notblank,max=200"`
	ContactIDs      []uuid.UUID `json:"contactIds" validate:"required,min=1"`
	Tone            Tone        `json:"tone,omitempty" validate:"omitempty,oneof=professional friendly direct"`
	Goal            Goal        `json:"goal,omitempty" validate:"omitempty,oneof=sales partnerships recruiting other"`
	Language        string      `json:"language,omitempty" validate:"max=50"`
	TemplateSubject string      `json:"templateSubject" validate:"max=500"`
	TemplateBody    string      `json:"templateBody"`
}

// UpdateDraftRequest is an autosave patch; nil fields are left untouched
type UpdateDraftRequest struct {
	Name            *string     `json:"name,omitempty" validate:"omitempty,max=200"`
	ContactIDs      []uuid.UUID `json:"contactIds,omitempty"`
	Tone            *Tone       `json:"tone,omitempty" validate:"omitempty,oneof=professional friendly direct"`
	Goal            *Goal       `json:"goal,omitempty" validate:"omitempty,oneof=sales partnerships recruiting other"`
	Language        *string     `json:"language,omitempty" validate:"omitempty,max=50"`
	TemplateSubject *string     `json:"templateSubject,omitempty" validate:"omitempty,max=500"`
	TemplateBody    *string     `json:"templateBody,omitempty"`
}

// Merge folds a later patch into this one; later values win
func (p *UpdateDraftRequest) Merge(later *UpdateDraftRequest) {
	if later.Name != nil {
		p.Name = later.Name
	}
	if later.ContactIDs != nil {
		p.ContactIDs = later.ContactIDs
	}
	if later.Tone != nil {
		p.Tone = later.Tone
	}
	if later.Goal != nil {
		p.Goal = later.Goal
	}
	if later.Language != nil {
		p.Language = later.Language
	}
	if later.TemplateSubject != nil {
		p.TemplateSubject = later.TemplateSubject
	}
	if later.TemplateBody != nil {
		p.TemplateBody = later.TemplateBody
	}
}

// EmailTemplateDTO is the API representation of a saved template
type EmailTemplateDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

// SaveTemplateRequest creates or replaces a saved template
type SaveTemplateRequest struct {
	Name    string `json:"name" validate:"required,notblank,max=200"`
	Subject string `json:"subject" validate:"max=500"`
	Body    string `json:"body"`
}

// AnalyzeTemplateRequest asks which tokens cannot be filled for the given recipients
type AnalyzeTemplateRequest struct {
	Subject    string      `json:"subject"`
	Body       string      `json:"body"`
	ContactIDs []uuid.UUID `json:"contactIds" validate:"required,min=1"`
}

// MissingFieldWarning reports a token that resolves to an empty field for some recipients
type MissingFieldWarning struct {
	Token         string `json:"token"`
	Field         string `json:"field"`
	AffectedCount int    `json:"affectedCount"`
}

// GenerateEmailsRequest asks for one personalized email per contact
type GenerateEmailsRequest struct {
	ContactIDs   []uuid.UUID `json:"contactIds" validate:"required,min=1"`
	CampaignName string      `json:"campaignName" validate:"required,notblank,max=200"`
	Subject      string      `json:"subject" validate:"required,notblank,max=500"`
	Body         string      `json:"body" validate:"required"`
	Tone         Tone        `json:"tone,omitempty" validate:"omitempty,oneof=professional friendly direct"`
	Goal         Goal        `json:"goal,omitempty" validate:"omitempty,oneof=sales partnerships recruiting other"`
	Language     string      `json:"language,omitempty" validate:"max=50"`
	Mode         string      `json:"mode,omitempty" validate:"omitempty,oneof=hybrid"`
	DraftID      *uuid.UUID  `json:"draftId,omitempty"`
}

// OutboundEmailDTO is the API representation of a generated email
type OutboundEmailDTO struct {
	ID                uuid.UUID      `json:"id"`
	LeadID            *uuid.UUID     `json:"leadId,omitempty"`
	Company           string         `json:"company"`
	ContactName       string         `json:"contactName,omitempty"`
	ContactEmail      string         `json:"contactEmail"`
	Subject           string         `json:"subject"`
	Body              string         `json:"body"`
	Confidence        int            `json:"confidence"`
	Status            EmailStatus    `json:"status"`
	Approved          bool           `json:"approved"`
	Issues            []string       `json:"issues"`
	Suggestions       string         `json:"suggestions,omitempty"`
	CampaignID        *uuid.UUID     `json:"campaignId,omitempty"`
	CampaignName      string         `json:"campaignName,omitempty"`
	GenerationMode    GenerationMode `json:"generationMode"`
	ApprovedAt        string         `json:"approvedAt,omitempty"`
	SentAt            string         `json:"sentAt,omitempty"`
	ProviderMessageID string         `json:"providerMessageId,omitempty"`
	CreatedAt         string         `json:"createdAt"`
	UpdatedAt         string         `json:"updatedAt"`
}

// CampaignGroupDTO holds the emails of one campaign
type CampaignGroupDTO struct {
	CampaignID   string             `json:"campaignId"`
	CampaignName string             `json:"campaignName"`
	Emails       []OutboundEmailDTO `json:"emails"`
}

// UpdateEmailRequest edits the copy of an email
type UpdateEmailRequest struct {
	Subject *string `json:"subject,omitempty" validate:"omitempty,max=500"`
	Body    *string `json:"body,omitempty"`
}

// SendEmailRequest sends an email, optionally to a test address only
type SendEmailRequest struct {
	TestRecipient string `json:"testRecipient,omitempty" validate:"omitempty,email"`
}

// ApproveAllResult reports how many emails moved to approved
type ApproveAllResult struct {
	Approved int `json:"approved"`
}

// ProfileDTO is the API representation of the caller's profile
type ProfileDTO struct {
	DefaultTone           Tone               `json:"defaultTone,omitempty"`
	DefaultGoal           Goal               `json:"defaultGoal,omitempty"`
	DefaultLanguage       string             `json:"defaultLanguage,omitempty"`
	Plan                  Plan               `json:"plan"`
	SenderEmail           string             `json:"senderEmail,omitempty"`
	SenderName            string             `json:"senderName,omitempty"`
	SignatureHTML         string             `json:"signatureHtml,omitempty"`
	Font                  string             `json:"font,omitempty"`
	Onboarded             bool               `json:"onboarded"`
	UsageWarningThreshold int                `json:"usageWarningThreshold"`
	SenderDomain          string             `json:"senderDomain,omitempty"`
	SenderDomainStatus    SenderDomainStatus `json:"senderDomainStatus,omitempty"`
}

// UpdateProfileRequest is a partial profile patch
type UpdateProfileRequest struct {
	DefaultTone           *Tone   `json:"defaultTone,omitempty" validate:"omitempty,oneof=professional friendly direct"`
	DefaultGoal           *Goal   `json:"defaultGoal,omitempty" validate:"omitempty,oneof=sales partnerships recruiting other"`
	DefaultLanguage       *string `json:"defaultLanguage,omitempty" validate:"omitempty,max=50"`
	SenderEmail           *string `json:"senderEmail,omitempty" validate:"omitempty,email,max=320"`
	SenderName            *string `json:"senderName,omitempty" validate:"omitempty,max=200"`
	SignatureHTML         *string `json:"signatureHtml,omitempty"`
	Font                  *string `json:"font,omitempty" validate:"omitempty,max=100"`
	Onboarded             *bool   `json:"onboarded,omitempty"`
	UsageWarningThreshold *int    `json:"usageWarningThreshold,omitempty" validate:"omitempty,gte=1,lte=100"`
}

// UsageSummaryDTO reports the monthly consumption of the caller's plan
type UsageSummaryDTO struct {
	Plan             Plan   `json:"plan"`
	PeriodStart      string `json:"periodStart"`
	CreditsAllotted  int    `json:"creditsAllotted"`
	CreditsUsed      int    `json:"creditsUsed"`
	CreditsRemaining int    `json:"creditsRemaining"`
	SendsAllotted    int    `json:"sendsAllotted"`
	SendsUsed        int    `json:"sendsUsed"`
	Warning          bool   `json:"warning"`
}

// InvoiceDTO is the API representation of an invoice
type InvoiceDTO struct {
	ID          uuid.UUID `json:"id"`
	Number      string    `json:"number"`
	AmountCents int64     `json:"amountCents"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	PeriodStart string    `json:"periodStart"`
	PeriodEnd   string    `json:"periodEnd"`
	HostedURL   string    `json:"hostedUrl,omitempty"`
}

// AddSenderDomainRequest registers a sending domain with the mail provider
type AddSenderDomainRequest struct {
	Domain string `json:"domain" validate:"required,fqdn"`
}

// DNSRecordDTO is one DNS record the user must publish for domain verification
type DNSRecordDTO struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Value  string `json:"value"`
	Status string `json:"status,omitempty"`
}

// SenderDomainDTO is the sending domain state of the caller
type SenderDomainDTO struct {
	Domain  string             `json:"domain,omitempty"`
	Status  SenderDomainStatus `json:"status"`
	Records []DNSRecordDTO     `json:"records,omitempty"`
}

// AuthUserDTO describes the authenticated caller together with their profile and usage
type AuthUserDTO struct {
	ID      string          `json:"id"`
	Email   string          `json:"email"`
	Role    string          `json:"role,omitempty"`
	Profile ProfileDTO      `json:"profile"`
	Usage   UsageSummaryDTO `json:"usage"`
}

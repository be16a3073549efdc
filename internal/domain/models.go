package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BaseModel carries the common columns of every owned record
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;column:user_id"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// BeforeCreate assigns a UUID when the caller did not
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// ContactStatus records the provenance of an imported row
type ContactStatus string

const (
	ContactStatusImported ContactStatus = "imported"
	ContactStatusSkipped  ContactStatus = "skipped"
)

// Contact is a prospect an email can be addressed to
type Contact struct {
	BaseModel
	Company       string        `gorm:"type:varchar(255);not null"`
	ContactEmail  string        `gorm:"type:varchar(320);not null;index;column:contact_email"`
	ContactName   string        `gorm:"type:varchar(255);column:contact_name"`
	Domain        string        `gorm:"type:varchar(255)"`
	Industry      string        `gorm:"type:varchar(255)"`
	EmployeeCount *int          `gorm:"column:employee_count"`
	Comment       string        `gorm:"type:text"`
	Status        ContactStatus `gorm:"type:varchar(20);not null;default:'imported'"`
	EnrichedAt    *time.Time    `gorm:"column:enriched_at"`
}

func (Contact) TableName() string {
	return "leads"
}

// ContactGroup is a named set of contacts. Names are not unique.
type ContactGroup struct {
	BaseModel
	Name string `gorm:"type:varchar(200);not null"`
}

func (ContactGroup) TableName() string {
	return "contact_groups"
}

// ContactGroupMembership links a contact to a group; the pair is unique
type ContactGroupMembership struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;column:user_id"`
	ContactID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_membership_pair;column:contact_id"`
	GroupID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_membership_pair;index;column:group_id"`
	CreatedAt time.Time `gorm:"not null"`
}

func (ContactGroupMembership) TableName() string {
	return "contact_group_memberships"
}

// BeforeCreate assigns a UUID when the caller did not
func (m *ContactGroupMembership) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Tone of the generated copy
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneDirect       Tone = "direct"
)

// IsValid reports whether the tone is a known value
func (t Tone) IsValid() bool {
	switch t {
	case ToneProfessional, ToneFriendly, ToneDirect:
		return true
	}
	return false
}

// Goal of a campaign
type Goal string

const (
	GoalSales        Goal = "sales"
	GoalPartnerships Goal = "partnerships"
	GoalRecruiting   Goal = "recruiting"
	GoalOther        Goal = "other"
)

// IsValid reports whether the goal is a known value
func (g Goal) IsValid() bool {
	switch g {
	case GoalSales, GoalPartnerships, GoalRecruiting, GoalOther:
		return true
	}
	return false
}

// CampaignDraft is the saved state of a campaign that has not been generated yet
type CampaignDraft struct {
	BaseModel
	Name            string                         `gorm:"type:varchar(200);not null"`
	ContactIDs      datatypes.JSONSlice[uuid.UUID] `gorm:"column:contact_ids"`
	Tone            Tone                           `gorm:"type:varchar(20)"`
	Goal            Goal                           `gorm:"type:varchar(20)"`
	Language        string                         `gorm:"type:varchar(50)"`
	TemplateSubject string                         `gorm:"type:varchar(500);column:template_subject"`
	TemplateBody    string                         `gorm:"type:text;column:template_body"`
}

func (CampaignDraft) TableName() string {
	return "campaign_drafts"
}

// EmailStatus is the review state of an outbound email
type EmailStatus string

const (
	EmailStatusDraft       EmailStatus = "draft"
	EmailStatusNeedsReview EmailStatus = "needs_review"
	EmailStatusApproved    EmailStatus = "approved"
	EmailStatusSent        EmailStatus = "sent"
)

// GenerationMode records how the body of an email was produced
type GenerationMode string

const (
	GenerationModeHybrid GenerationMode = "hybrid"
	GenerationModeAI     GenerationMode = "ai"
	GenerationModeManual GenerationMode = "manual"
)

// NoCampaignKey is the grouping bucket for emails without a campaign
const NoCampaignKey = "no-campaign"

// OutboundEmail is one personalized message addressed to one contact.
// Company, ContactName and ContactEmail are snapshots taken at generation time.
type OutboundEmail struct {
	BaseModel
	LeadID            *uuid.UUID                  `gorm:"type:uuid;index;column:lead_id"`
	Company           string                      `gorm:"type:varchar(255)"`
	ContactName       string                      `gorm:"type:varchar(255);column:contact_name"`
	ContactEmail      string                      `gorm:"type:varchar(320);not null;column:contact_email"`
	Subject           string                      `gorm:"type:varchar(500);not null"`
	Body              string                      `gorm:"type:text;not null"`
	Confidence        int                         `gorm:"not null;default:0"`
	Status            EmailStatus                 `gorm:"type:varchar(20);not null;default:'draft';index"`
	Approved          bool                        `gorm:"not null;default:false"`
	Issues            datatypes.JSONSlice[string] `gorm:"column:issues"`
	Suggestions       string                      `gorm:"type:text"`
	CampaignID        *uuid.UUID                  `gorm:"type:uuid;index;column:campaign_id"`
	CampaignName      string                      `gorm:"type:varchar(200);column:campaign_name"`
	GenerationMode    GenerationMode              `gorm:"type:varchar(20);not null;column:generation_mode"`
	ApprovedAt        *time.Time                  `gorm:"column:approved_at"`
	SentAt            *time.Time                  `gorm:"column:sent_at"`
	ProviderMessageID string                      `gorm:"type:varchar(255);column:provider_message_id"`
}

func (OutboundEmail) TableName() string {
	return "emails"
}

// IsTerminal reports whether the email can no longer change
func (e *OutboundEmail) IsTerminal() bool {
	return e.Status == EmailStatusSent
}

// CampaignKey returns the grouping key of the email
func (e *OutboundEmail) CampaignKey() string {
	if e.CampaignID == nil {
		return NoCampaignKey
	}
	return e.CampaignID.String()
}

// EmailTemplate is a saved reusable subject/body pair
type EmailTemplate struct {
	BaseModel
	Name    string `gorm:"type:varchar(200);not null"`
	Subject string `gorm:"type:varchar(500)"`
	Body    string `gorm:"type:text"`
}

func (EmailTemplate) TableName() string {
	return "email_templates"
}

// Plan is the subscription tier of a user
type Plan string

const (
	PlanFree    Plan = "free"
	PlanStarter Plan = "starter"
	PlanPro     Plan = "pro"
)

// SenderDomainStatus mirrors the verification state reported by the mail provider
type SenderDomainStatus string

const (
	SenderDomainNone     SenderDomainStatus = ""
	SenderDomainPending  SenderDomainStatus = "pending"
	SenderDomainVerified SenderDomainStatus = "verified"
	SenderDomainFailed   SenderDomainStatus = "failed"
)

// DNSRecord is one record the user publishes to verify their sender domain
type DNSRecord struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Value  string `json:"value"`
	Status string `json:"status,omitempty"`
}

// Profile holds per-user defaults, plan and sender identity
type Profile struct {
	UserID                uuid.UUID          `gorm:"type:uuid;primaryKey;column:user_id"`
	DefaultTone           Tone               `gorm:"type:varchar(20);column:default_tone"`
	DefaultGoal           Goal               `gorm:"type:varchar(20);column:default_goal"`
	DefaultLanguage       string             `gorm:"type:varchar(50);column:default_language"`
	Plan                  Plan               `gorm:"type:varchar(20);not null;default:'free'"`
	SenderEmail           string             `gorm:"type:varchar(320);column:sender_email"`
	SenderName            string             `gorm:"type:varchar(200);column:sender_name"`
	SignatureHTML         string             `gorm:"type:text;column:signature_html"`
	Font                  string             `gorm:"type:varchar(100)"`
	Onboarded             bool               `gorm:"not null;default:false"`
	UsageWarningThreshold int                `gorm:"not null;default:80;column:usage_warning_threshold"`
	SenderDomain          string             `gorm:"type:varchar(255);column:sender_domain"`
	SenderDomainID        string             `gorm:"type:varchar(255);column:sender_domain_id"`
	SenderDomainStatus    SenderDomainStatus `gorm:"type:varchar(20);column:sender_domain_status"`
	// SenderDomainRecords are the DNS records handed out when the domain was registered
	SenderDomainRecords datatypes.JSONSlice[DNSRecord] `gorm:"column:sender_domain_records"`
	CreatedAt             time.Time          `gorm:"not null"`
	UpdatedAt             time.Time          `gorm:"not null"`
}

func (Profile) TableName() string {
	return "profiles"
}

// Invoice is a read-only billing record
type Invoice struct {
	BaseModel
	Number      string    `gorm:"type:varchar(50);not null"`
	AmountCents int64     `gorm:"not null;column:amount_cents"`
	Currency    string    `gorm:"type:varchar(3);not null"`
	Status      string    `gorm:"type:varchar(20);not null"`
	PeriodStart time.Time `gorm:"column:period_start"`
	PeriodEnd   time.Time `gorm:"column:period_end"`
	HostedURL   string    `gorm:"type:varchar(500);column:hosted_url"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// SendAttempt reserves an idempotency key for one real send
type SendAttempt struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;column:user_id"`
	IdempotencyKey string    `gorm:"type:varchar(64);not null;uniqueIndex;column:idempotency_key"`
	EmailID        uuid.UUID `gorm:"type:uuid;not null;index;column:email_id"`
	CreatedAt      time.Time `gorm:"not null;index"`
}

func (SendAttempt) TableName() string {
	return "send_attempts"
}

// BeforeCreate assigns a UUID when the caller did not
func (s *SendAttempt) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

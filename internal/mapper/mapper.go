package mapper

import (
	"time"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/domain"
)

const timeLayout = "2006-01-02T15:04:05Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

// ToContactDTO converts Contact to ContactDTO
func ToContactDTO(contact *domain.Contact, groupIDs []uuid.UUID) domain.ContactDTO {
	if groupIDs == nil {
		groupIDs = []uuid.UUID{}
	}
	return domain.ContactDTO{
		ID:            contact.ID,
		Company:       contact.Company,
		ContactEmail:  contact.ContactEmail,
		ContactName:   contact.ContactName,
		Domain:        contact.Domain,
		Industry:      contact.Industry,
		EmployeeCount: contact.EmployeeCount,
		Comment:       contact.Comment,
		Status:        contact.Status,
		GroupIDs:      groupIDs,
		EnrichedAt:    formatOptionalTime(contact.EnrichedAt),
		CreatedAt:     formatTime(contact.CreatedAt),
		UpdatedAt:     formatTime(contact.UpdatedAt),
	}
}

// ToContactDTOs converts contacts using a contact id → group ids index
func ToContactDTOs(contacts []domain.Contact, groups map[uuid.UUID][]uuid.UUID) []domain.ContactDTO {
	dtos := make([]domain.ContactDTO, len(contacts))
	for i := range contacts {
		dtos[i] = ToContactDTO(&contacts[i], groups[contacts[i].ID])
	}
	return dtos
}

// ToContactGroupDTO converts ContactGroup to ContactGroupDTO
func ToContactGroupDTO(group *domain.ContactGroup) domain.ContactGroupDTO {
	return domain.ContactGroupDTO{
		ID:        group.ID,
		Name:      group.Name,
		CreatedAt: formatTime(group.CreatedAt),
	}
}

// ToMembershipDTO converts ContactGroupMembership to MembershipDTO
func ToMembershipDTO(m *domain.ContactGroupMembership) domain.MembershipDTO {
	return domain.MembershipDTO{ContactID: m.ContactID, GroupID: m.GroupID}
}

// ToCampaignDraftDTO converts CampaignDraft to CampaignDraftDTO
func ToCampaignDraftDTO(draft *domain.CampaignDraft) domain.CampaignDraftDTO {
	ids := []uuid.UUID(draft.ContactIDs)
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return domain.CampaignDraftDTO{
		ID:              draft.ID,
		Name:            draft.Name,
		ContactIDs:      ids,
		Tone:            draft.Tone,
		Goal:            draft.Goal,
		Language:        draft.Language,
		TemplateSubject: draft.TemplateSubject,
		TemplateBody:    draft.TemplateBody,
		CreatedAt:       formatTime(draft.CreatedAt),
		UpdatedAt:       formatTime(draft.UpdatedAt),
	}
}

// ToOutboundEmailDTO converts OutboundEmail to OutboundEmailDTO
func ToOutboundEmailDTO(email *domain.OutboundEmail) domain.OutboundEmailDTO {
	issues := []string(email.Issues)
	if issues == nil {
		issues = []string{}
	}
	return domain.OutboundEmailDTO{
		ID:                email.ID,
		LeadID:            email.LeadID,
		Company:           email.Company,
		ContactName:       email.ContactName,
		ContactEmail:      email.ContactEmail,
		Subject:           email.Subject,
		Body:              email.Body,
		Confidence:        email.Confidence,
		Status:            email.Status,
		Approved:          email.Approved,
		Issues:            issues,
		Suggestions:       email.Suggestions,
		CampaignID:        email.CampaignID,
		CampaignName:      email.CampaignName,
		GenerationMode:    email.GenerationMode,
		ApprovedAt:        formatOptionalTime(email.ApprovedAt),
		SentAt:            formatOptionalTime(email.SentAt),
		ProviderMessageID: email.ProviderMessageID,
		CreatedAt:         formatTime(email.CreatedAt),
		UpdatedAt:         formatTime(email.UpdatedAt),
	}
}

// ToOutboundEmailDTOs converts a slice of emails
func ToOutboundEmailDTOs(emails []domain.OutboundEmail) []domain.OutboundEmailDTO {
	dtos := make([]domain.OutboundEmailDTO, len(emails))
	for i := range emails {
		dtos[i] = ToOutboundEmailDTO(&emails[i])
	}
	return dtos
}

// ToEmailTemplateDTO converts EmailTemplate to EmailTemplateDTO
func ToEmailTemplateDTO(tpl *domain.EmailTemplate) domain.EmailTemplateDTO {
	return domain.EmailTemplateDTO{
		ID:        tpl.ID,
		Name:      tpl.Name,
		Subject:   tpl.Subject,
		Body:      tpl.Body,
		CreatedAt: formatTime(tpl.CreatedAt),
		UpdatedAt: formatTime(tpl.UpdatedAt),
	}
}

// ToProfileDTO converts Profile to ProfileDTO
func ToProfileDTO(p *domain.Profile) domain.ProfileDTO {
	return domain.ProfileDTO{
		DefaultTone:           p.DefaultTone,
		DefaultGoal:           p.DefaultGoal,
		DefaultLanguage:       p.DefaultLanguage,
		Plan:                  p.Plan,
		SenderEmail:           p.SenderEmail,
		SenderName:            p.SenderName,
		SignatureHTML:         p.SignatureHTML,
		Font:                  p.Font,
		Onboarded:             p.Onboarded,
		UsageWarningThreshold: p.UsageWarningThreshold,
		SenderDomain:          p.SenderDomain,
		SenderDomainStatus:    p.SenderDomainStatus,
	}
}

// ToInvoiceDTO converts Invoice to InvoiceDTO
func ToInvoiceDTO(inv *domain.Invoice) domain.InvoiceDTO {
	return domain.InvoiceDTO{
		ID:          inv.ID,
		Number:      inv.Number,
		AmountCents: inv.AmountCents,
		Currency:    inv.Currency,
		Status:      inv.Status,
		PeriodStart: formatTime(inv.PeriodStart),
		PeriodEnd:   formatTime(inv.PeriodEnd),
		HostedURL:   inv.HostedURL,
	}
}

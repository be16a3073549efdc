// Package render resolves bracketed field tokens in campaign templates and
// produces the final HTML and plain-text bodies of outgoing email.
package render

import (
	"regexp"
	"strings"

	"github.com/sendsafe/sendsafe-api/internal/domain"
)

// Field is a contact attribute a token can resolve to
type Field string

const (
	FieldContactName  Field = "contact_name"
	FieldFirstName    Field = "first_name"
	FieldCompany      Field = "company"
	FieldDomain       Field = "domain"
	FieldIndustry     Field = "industry"
	FieldContactEmail Field = "contact_email"
)

// tokenFields maps lowercased token names (without brackets) to fields
var tokenFields = map[string]Field{
	"name":          FieldContactName,
	"navn":          FieldContactName,
	"kontaktperson": FieldContactName,
	"firstname":     FieldFirstName,
	"fornavn":       FieldFirstName,
	"company":       FieldCompany,
	"firma":         FieldCompany,
	"bedrift":       FieldCompany,
	"selskap":       FieldCompany,
	"domain":        FieldDomain,
	"domene":        FieldDomain,
	"industry":      FieldIndustry,
	"bransje":       FieldIndustry,
	"email":         FieldContactEmail,
	"e-post":        FieldContactEmail,
}

var tokenRe = regexp.MustCompile(`\[([^\[\]]+)\]`)

// Recipient is the set of values a template can be filled with
type Recipient struct {
	ContactName  string
	Company      string
	Domain       string
	Industry     string
	ContactEmail string
}

// RecipientFromContact snapshots the fillable fields of a contact
func RecipientFromContact(c *domain.Contact) Recipient {
	return Recipient{
		ContactName:  strings.TrimSpace(c.ContactName),
		Company:      strings.TrimSpace(c.Company),
		Domain:       strings.TrimSpace(c.Domain),
		Industry:     strings.TrimSpace(c.Industry),
		ContactEmail: strings.TrimSpace(c.ContactEmail),
	}
}

// Value returns the recipient's value for a field
func (r Recipient) Value(f Field) string {
	switch f {
	case FieldContactName:
		return r.ContactName
	case FieldFirstName:
		if parts := strings.Fields(r.ContactName); len(parts) > 0 {
			return parts[0]
		}
		return ""
	case FieldCompany:
		return r.Company
	case FieldDomain:
		return r.Domain
	case FieldIndustry:
		return r.Industry
	case FieldContactEmail:
		return r.ContactEmail
	}
	return ""
}

// Lookup resolves a token name, with or without brackets, to its field
func Lookup(token string) (Field, bool) {
	name := strings.ToLower(strings.TrimSpace(strings.Trim(token, "[]")))
	f, ok := tokenFields[name]
	return f, ok
}

// Tokens returns the distinct bracketed spans of a template in order of first appearance
func Tokens(template string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range tokenRe.FindAllString(template, -1) {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}

// Substitute replaces every known token with the recipient's value. Tokens whose
// field is empty for this recipient and unknown spans are left for generation.
func Substitute(template string, r Recipient) string {
	return tokenRe.ReplaceAllStringFunc(template, func(span string) string {
		f, ok := Lookup(span)
		if !ok {
			return span
		}
		if v := r.Value(f); v != "" {
			return v
		}
		return span
	})
}

// AISpans lists the distinct bracketed spans that are not field tokens
func AISpans(template string) []string {
	var spans []string
	for _, t := range Tokens(template) {
		if _, ok := Lookup(t); !ok {
			spans = append(spans, t)
		}
	}
	return spans
}

// KeepsFixedText reports whether output still contains, in order, every piece
// of template outside its bracketed spans. Whitespace is ignored.
func KeepsFixedText(template, output string) bool {
	out := strings.Join(strings.Fields(output), "")
	pos := 0
	for _, piece := range tokenRe.Split(template, -1) {
		p := strings.Join(strings.Fields(piece), "")
		if p == "" {
			continue
		}
		i := strings.Index(out[pos:], p)
		if i < 0 {
			return false
		}
		pos += i + len(p)
	}
	return true
}

package importer

import (
	"regexp"
	"strings"

	"github.com/sendsafe/sendsafe-api/internal/domain"
)

var (
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	domainRe = regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?((?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,})/?$`)
)

// LooksLikeEmail reports whether s has the shape of an email address
func LooksLikeEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// BareDomain returns the host of s when s is nothing but a domain or a site URL
func BareDomain(s string) (string, bool) {
	m := domainRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", false
	}
	return strings.ToLower(m[1]), true
}

// FixColumns moves values that were imported into the wrong column. An email-like value
// in another field is swapped into contact_email when that field does not hold an email,
// and a bare domain in name, industry, comment or email is moved into an empty domain.
// It reports whether the contact changed; running it again on the result changes nothing.
func FixColumns(c *domain.Contact) bool {
	changed := false

	if !LooksLikeEmail(c.ContactEmail) {
		for _, field := range []*string{&c.ContactName, &c.Company, &c.Domain, &c.Industry, &c.Comment} {
			if LooksLikeEmail(*field) {
				*field, c.ContactEmail = c.ContactEmail, strings.TrimSpace(*field)
				changed = true
				break
			}
		}
	}

	if strings.TrimSpace(c.Domain) == "" {
		for _, field := range []*string{&c.ContactName, &c.Industry, &c.Comment, &c.ContactEmail} {
			if d, ok := BareDomain(*field); ok {
				c.Domain = d
				*field = ""
				changed = true
				break
			}
		}
	}

	return changed
}

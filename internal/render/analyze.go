package render

import (
	"strings"

	"github.com/sendsafe/sendsafe-api/internal/domain"
)

// Analyze reports, per distinct field token in subject or body, how many recipients
// have no value for it. Tokens every recipient can fill are omitted.
func Analyze(subject, body string, recipients []Recipient) []domain.MissingFieldWarning {
	warnings := []domain.MissingFieldWarning{}
	seen := make(map[string]bool)

	for _, token := range Tokens(subject + "\n" + body) {
		key := strings.ToLower(token)
		if seen[key] {
			continue
		}
		seen[key] = true

		field, ok := Lookup(token)
		if !ok {
			continue
		}
		missing := 0
		for _, r := range recipients {
			if r.Value(field) == "" {
				missing++
			}
		}
		if missing > 0 {
			warnings = append(warnings, domain.MissingFieldWarning{
				Token:         token,
				Field:         string(field),
				AffectedCount: missing,
			})
		}
	}
	return warnings
}

package importer

import (
	"testing"

	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFixColumns(t *testing.T) {
	tests := []struct {
		name    string
		in      domain.Contact
		want    domain.Contact
		changed bool
	}{
		{
			name:    "email in name column is swapped",
			in:      domain.Contact{Company: "Acme", ContactEmail: "Kari Nordmann", ContactName: "kari@acme.no"},
			want:    domain.Contact{Company: "Acme", ContactEmail: "kari@acme.no", ContactName: "Kari Nordmann"},
			changed: true,
		},
		{
			name:    "domain in comment moves to empty domain",
			in:      domain.Contact{Company: "Acme", ContactEmail: "kari@acme.no", Comment: "https://www.Acme.no/"},
			want:    domain.Contact{Company: "Acme", ContactEmail: "kari@acme.no", Domain: "acme.no"},
			changed: true,
		},
		{
			name:    "domain in email column moves out",
			in:      domain.Contact{Company: "Acme", ContactEmail: "acme.no"},
			want:    domain.Contact{Company: "Acme", Domain: "acme.no"},
			changed: true,
		},
		{
			name:    "existing domain is kept",
			in:      domain.Contact{Company: "Acme", ContactEmail: "kari@acme.no", Domain: "acme.com", Industry: "acme.no"},
			want:    domain.Contact{Company: "Acme", ContactEmail: "kari@acme.no", Domain: "acme.com", Industry: "acme.no"},
			changed: false,
		},
		{
			name:    "text with spaces is not a domain",
			in:      domain.Contact{Company: "Acme", ContactEmail: "kari@acme.no", Comment: "see acme.no"},
			want:    domain.Contact{Company: "Acme", ContactEmail: "kari@acme.no", Comment: "see acme.no"},
			changed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.in
			assert.Equal(t, tt.changed, FixColumns(&c))
			assert.Equal(t, tt.want, c)

			assert.False(t, FixColumns(&c), "second pass finds nothing to move")
		})
	}
}

func TestLooksLikeEmail(t *testing.T) {
	assert.True(t, LooksLikeEmail("ola@acme.no"))
	assert.True(t, LooksLikeEmail(" ola@acme.no "))
	assert.False(t, LooksLikeEmail("ola@acme"))
	assert.False(t, LooksLikeEmail("ola acme@x.no"))
}

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(emailsGenerated.WithLabelValues(OutcomeFallback))
	EmailGenerated(OutcomeFallback)
	assert.Equal(t, before+1, testutil.ToFloat64(emailsGenerated.WithLabelValues(OutcomeFallback)))

	acc := testutil.ToFloat64(contactsImported.WithLabelValues(ImportAccepted))
	skp := testutil.ToFloat64(contactsImported.WithLabelValues(ImportSkipped))
	ContactsImported(3, 1)
	assert.Equal(t, acc+3, testutil.ToFloat64(contactsImported.WithLabelValues(ImportAccepted)))
	assert.Equal(t, skp+1, testutil.ToFloat64(contactsImported.WithLabelValues(ImportSkipped)))

	sent := testutil.ToFloat64(emailsSent.WithLabelValues(SendKindTest, ResultSuccess))
	EmailSent(SendKindTest, ResultSuccess)
	assert.Equal(t, sent+1, testutil.ToFloat64(emailsSent.WithLabelValues(SendKindTest, ResultSuccess)))
}

// Package metrics declares the Prometheus collectors of the API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sendsafe"

// Label values
const (
	OutcomeAI       = "ai"
	OutcomeFallback = "fallback"

	SendKindReal = "real"
	SendKindTest = "test"

	ResultSuccess = "success"
	ResultError   = "error"
	ResultSkipped = "skipped"

	ImportAccepted = "accepted"
	ImportSkipped  = "skipped"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	emailsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_generated_total",
			Help:      "Emails created by generation, by whether the model output was used.",
		},
		[]string{"outcome"},
	)

	generationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_call_duration_seconds",
			Help:      "Duration of per-recipient generation calls.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 80},
		},
	)

	emailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_sent_total",
			Help:      "Send attempts by kind (real|test) and result.",
		},
		[]string{"kind", "result"},
	)

	contactsImported = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contacts_imported_total",
			Help:      "Imported contact rows by result.",
		},
		[]string{"result"},
	)

	contactsEnriched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contacts_enriched_total",
			Help:      "Contact enrichment attempts by result.",
		},
		[]string{"result"},
	)

	jobRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "job_runs_total",
			Help:      "Scheduled job runs by job name and result.",
		},
		[]string{"job", "result"},
	)
)

func EmailGenerated(outcome string) { emailsGenerated.WithLabelValues(outcome).Inc() }

func ObserveGeneration(seconds float64) { generationDuration.Observe(seconds) }

func EmailSent(kind, result string) { emailsSent.WithLabelValues(kind, result).Inc() }

// ContactsImported adds accepted and skipped row counts
func ContactsImported(accepted, skipped int) {
	contactsImported.WithLabelValues(ImportAccepted).Add(float64(accepted))
	contactsImported.WithLabelValues(ImportSkipped).Add(float64(skipped))
}

func ContactEnriched(result string) { contactsEnriched.WithLabelValues(result).Inc() }

func JobRun(job, result string) { jobRuns.WithLabelValues(job, result).Inc() }

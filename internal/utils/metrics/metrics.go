// File: internal/utils/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts all inbound HTTP requests.
	RequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auth_service_requests_total",
		Help: "The total number of requests",
	})

	// ResponsesTotal counts responses by status code.
	ResponsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_service_responses_total",
		Help: "The total number of responses by status code",
	}, []string{"status"})

	// RequestDuration observes request handling time.
	RequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "auth_service_request_duration_seconds",
		Help:    "The request duration in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// RequestDurationByPath observes request handling time per route.
	RequestDurationByPath = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "auth_service_request_duration_by_path_seconds",
		Help:    "The request duration in seconds by method and path",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// RegistrationAttemptsTotal counts registration attempts by outcome.
	RegistrationAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_service_registration_attempts_total",
		Help: "The total number of registration attempts",
	}, []string{"status"})

	// LoginAttemptsTotal counts login attempts by outcome.
	LoginAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_service_login_attempts_total",
		Help: "The total number of login attempts",
	}, []string{"status"})

	// TwoFAVerificationsTotal counts 2FA code verifications by outcome.
	TwoFAVerificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_service_two_fa_verifications_total",
		Help: "The total number of 2FA code verifications",
	}, []string{"status"})

	// CatalogCacheTotal counts catalog cache lookups by outcome (hit/miss).
	CatalogCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_service_catalog_cache_total",
		Help: "The total number of catalog cache lookups",
	}, []string{"status"})
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registerAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snapgram_register_attempts_total",
		Help: "Number of registration attempts grouped by status.",
	}, []string{"status"})

	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snapgram_login_attempts_total",
		Help: "Number of login attempts grouped by status.",
	}, []string{"status"})

	followToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snapgram_follow_toggles_total",
		Help: "Number of follow/unfollow toggles grouped by action.",
	}, []string{"action"})

	profileUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snapgram_profile_uploads_total",
		Help: "Number of profile picture uploads grouped by status.",
	}, []string{"status"})

	rateLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snapgram_rate_limit_hits_total",
		Help: "Rate limiter activations grouped by limiter name.",
	}, []string{"limiter"})
)

// IncRegister increments the registration counter.
func IncRegister(status string) {
	registerAttempts.WithLabelValues(status).Inc()
}

// IncLogin increments the login counter.
func IncLogin(status string) {
	loginAttempts.WithLabelValues(status).Inc()
}

// IncFollow increments the follow toggle counter.
func IncFollow(action string) {
	followToggles.WithLabelValues(action).Inc()
}

// IncUpload increments the profile upload counter.
func IncUpload(status string) {
	profileUploads.WithLabelValues(status).Inc()
}

// IncRateLimit increments the rate-limit hit counter.
func IncRateLimit(name string) {
	rateLimitHits.WithLabelValues(name).Inc()
}

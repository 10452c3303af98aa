// Package metrics exposes Prometheus counters for the account workflows.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Notification kinds.
const (
	KindInvite = "invite"
	KindReset  = "reset"
)

// Recorder is what the service and HTTP layers report to.
type Recorder interface {
	InviteCreated()
	AccountRegistered()
	Login(outcome string)
	PasswordResetRequested()
	PasswordReset()
	NotificationFailed(kind string)
	ObserveRequest(route string, status int, d time.Duration)
}

// Nop discards everything.
type Nop struct{}

func (Nop) InviteCreated()                            {}
func (Nop) AccountRegistered()                        {}
func (Nop) Login(string)                              {}
func (Nop) PasswordResetRequested()                   {}
func (Nop) PasswordReset()                            {}
func (Nop) NotificationFailed(string)                 {}
func (Nop) ObserveRequest(string, int, time.Duration) {}

// Collector is the Prometheus backed Recorder.
type Collector struct {
	invitesCreated      prometheus.Counter
	registrations       prometheus.Counter
	logins              *prometheus.CounterVec
	resetRequests       prometheus.Counter
	resets              prometheus.Counter
	notificationFailure *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
}

// NewCollector creates the metrics and registers them on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		invitesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "accounts_invites_created_total",
			Help: "Invites persisted and delivered.",
		}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "accounts_registrations_total",
			Help: "Accounts created by consuming an invite.",
		}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "accounts_logins_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}),
		resetRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "accounts_password_reset_requests_total",
			Help: "Reset tokens stored for forgot-password requests.",
		}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "accounts_password_resets_total",
			Help: "Passwords changed with a reset token.",
		}),
		notificationFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "accounts_notification_failures_total",
			Help: "Notifications the sink refused, by kind.",
		}, []string{"kind"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "accounts_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status code.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status_code"}),
	}

	reg.MustRegister(
		c.invitesCreated,
		c.registrations,
		c.logins,
		c.resetRequests,
		c.resets,
		c.notificationFailure,
		c.requestDuration,
	)

	return c
}

func (c *Collector) InviteCreated()          { c.invitesCreated.Inc() }
func (c *Collector) AccountRegistered()      { c.registrations.Inc() }
func (c *Collector) Login(outcome string)    { c.logins.WithLabelValues(outcome).Inc() }
func (c *Collector) PasswordResetRequested() { c.resetRequests.Inc() }
func (c *Collector) PasswordReset()          { c.resets.Inc() }

func (c *Collector) NotificationFailed(kind string) {
	c.notificationFailure.WithLabelValues(kind).Inc()
}

func (c *Collector) ObserveRequest(route string, status int, d time.Duration) {
	c.requestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(d.Seconds())
}

// Handler returns the Prometheus scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

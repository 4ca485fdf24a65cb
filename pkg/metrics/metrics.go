package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Auth operations recorded by RecordAuth.
const (
	OpSignup       = "signup"
	OpLogin        = "login"
	OpSessionCheck = "session_check"
	OpLogout       = "logout"
)

// Outcomes recorded alongside an operation.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeRejected = "rejected"
)

// Recorder is what the session client and the reminder banner report to.
type Recorder interface {
	RecordAuth(op, outcome string)
	RecordAcknowledge(outcome string)
	RecordDismissAll(outcome string)
}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	auth        *prometheus.CounterVec
	acknowledge *prometheus.CounterVec
	dismissAll  *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		auth: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "remindkit_auth_operations_total",
			Help: "Session client operations by operation and outcome.",
		}, []string{"op", "outcome"}),
		acknowledge: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "remindkit_reminder_acknowledgements_total",
			Help: "Reminder acknowledgement calls by outcome.",
		}, []string{"outcome"}),
		dismissAll: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "remindkit_reminder_dismiss_all_total",
			Help: "Dismiss-all attempts by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(c.auth, c.acknowledge, c.dismissAll)

	return c
}

func (c *Collector) RecordAuth(op, outcome string) {
	c.auth.WithLabelValues(op, outcome).Inc()
}

func (c *Collector) RecordAcknowledge(outcome string) {
	c.acknowledge.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordDismissAll(outcome string) {
	c.dismissAll.WithLabelValues(outcome).Inc()
}

// Nop discards everything. It is the default Recorder.
type Nop struct{}

func (Nop) RecordAuth(string, string) {}
func (Nop) RecordAcknowledge(string)  {}
func (Nop) RecordDismissAll(string)   {}

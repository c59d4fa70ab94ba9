// Package metrics exposes the Prometheus instruments of the server.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrijs2005/freshify/internal/common"
	"github.com/dmitrijs2005/freshify/internal/inventory"
)

const (
	ResultOK                   = "ok"
	ResultValidation           = "validation"
	ResultForbidden            = "forbidden"
	ResultNotFound             = "not_found"
	ResultIllegalTransition    = "illegal_transition"
	ResultRemote               = "remote"
	ResultUniqueViolation      = "unique_violation"
	ResultSerializationFailure = "serialization_failure"
	ResultDeadlineExceeded     = "deadline_exceeded"
	ResultDB                   = "db"
	ResultUnknown              = "unknown"
)

// Metrics is safe to use as a nil pointer; every method is then a no-op.
type Metrics struct {
	transitions      *prometheus.CounterVec
	remoteRequests   *prometheus.CounterVec
	remoteDuration   *prometheus.HistogramVec
	impactIncrements *prometheus.CounterVec
}

// New registers the instruments with registerer, or with the default
// registerer when nil.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "freshify_lifecycle_transitions_total",
			Help: "Inventory item lifecycle transitions by outcome.",
		}, []string{"transition", "result"}),
		remoteRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "freshify_remote_requests_total",
			Help: "Requests to the analysis and recipe services by outcome.",
		}, []string{"service", "result"}),
		remoteDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "freshify_remote_request_duration_seconds",
			Help:    "Latency of requests to the analysis and recipe services.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"service"}),
		impactIncrements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "freshify_impact_increments_total",
			Help: "Non-zero impact counter increments applied.",
		}, []string{"counter"}),
	}

	registerer.MustRegister(m.transitions, m.remoteRequests, m.remoteDuration, m.impactIncrements)
	return m
}

func (m *Metrics) ObserveTransition(transition inventory.Transition, err error) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(string(transition), Classify(err)).Inc()
}

func (m *Metrics) ObserveRemote(service string, took time.Duration, err error) {
	if m == nil {
		return
	}
	m.remoteRequests.WithLabelValues(service, Classify(err)).Inc()
	m.remoteDuration.WithLabelValues(service).Observe(took.Seconds())
}

func (m *Metrics) ObserveImpact(d inventory.Deltas) {
	if m == nil {
		return
	}
	if !d.Money.IsZero() {
		m.impactIncrements.WithLabelValues("money_saved").Inc()
	}
	if d.Meals != 0 {
		m.impactIncrements.WithLabelValues("meals_saved").Inc()
	}
	if d.Waste != 0 {
		m.impactIncrements.WithLabelValues("waste_incidents").Inc()
	}
}

// Classify reduces err to a low-cardinality result label.
func Classify(err error) string {
	if err == nil {
		return ResultOK
	}

	var illegal *inventory.ErrIllegalTransition
	if errors.As(err, &illegal) {
		return ResultIllegalTransition
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return ResultUniqueViolation
		case "40001", "40P01":
			return ResultSerializationFailure
		default:
			return ResultDB
		}
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ResultDeadlineExceeded
	case errors.Is(err, common.ErrValidation):
		return ResultValidation
	case errors.Is(err, common.ErrAuthorization):
		return ResultForbidden
	case errors.Is(err, common.ErrNotFoundOrForbidden), errors.Is(err, common.ErrNotFound):
		return ResultNotFound
	case errors.Is(err, common.ErrRemoteService):
		return ResultRemote
	case errors.Is(err, common.ErrAlreadyExists):
		return ResultUniqueViolation
	case errors.Is(err, common.ErrStorage):
		return ResultDB
	default:
		return ResultUnknown
	}
}

// Handler serves the given gatherer in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics содержит все коллекторы сервиса.
// Методы безопасны для nil-получателя: при выключенных метриках в зависимости передается nil.
type Metrics struct {
	service string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbConnections   *prometheus.GaugeVec

	reservationsCreated *prometheus.CounterVec
	validationFailures  *prometheus.CounterVec
}

// New регистрирует коллекторы в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry регистрирует коллекторы в переданном реестре
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	m := &Metrics{
		service: serviceName,

		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),

		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),

		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),

		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),

		dbConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connection pool state",
		}, []string{"service", "state"}),

		reservationsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reservations_created_total",
			Help: "Total number of persisted reservations",
		}, []string{"service", "source"}),

		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reservation_validation_failures_total",
			Help: "Rejected selections and candidates by reason",
		}, []string{"service", "reason"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbConnections,
		m.reservationsCreated,
		m.validationFailures,
	)

	return m
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.service, method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.service, method, route).Observe(duration.Seconds())
}

func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(m.service, operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(m.service, operation).Inc()
	}
}

// SetDBConnections выставляет состояние пула (open, in_use, idle, wait_count)
func (m *Metrics) SetDBConnections(state string, value float64) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues(m.service, state).Set(value)
}

// AddReservationsCreated учитывает созданные брони; source = single | bulk
func (m *Metrics) AddReservationsCreated(source string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.reservationsCreated.WithLabelValues(m.service, source).Add(float64(n))
}

// IncValidationFailure учитывает отклоненный запрос; reason = overlap | conflict | invalid_range | inactive_room
func (m *Metrics) IncValidationFailure(reason string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(m.service, reason).Inc()
}

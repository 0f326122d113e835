package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	service string

	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration *prometheus.HistogramVec
	DBConnsOpen     *prometheus.GaugeVec
	DBConnsInUse    *prometheus.GaugeVec
	DBConnsIdle     *prometheus.GaugeVec

	// Бизнес-метрики
	ReservationsCreated *prometheus.CounterVec
	DraftsSubmitted     *prometheus.CounterVec
	CacheHits           *prometheus.CounterVec
	CacheMisses         *prometheus.CounterVec
}

// New создает и регистрирует метрики в default-регистре Prometheus
func New(serviceName string) *Metrics {
	m := &Metrics{
		service: serviceName,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"service", "method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),
		DBQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query latency in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "operation"},
		),
		DBConnsOpen: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_connections_open",
				Help: "Number of open database connections.",
			},
			[]string{"service"},
		),
		DBConnsInUse: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_connections_in_use",
				Help: "Number of database connections currently in use.",
			},
			[]string{"service"},
		),
		DBConnsIdle: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_connections_idle",
				Help: "Number of idle database connections.",
			},
			[]string{"service"},
		),
		ReservationsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reservations_created_total",
				Help: "Total number of reservations created.",
			},
			[]string{"service"},
		),
		DraftsSubmitted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "booking_drafts_submitted_total",
				Help: "Total number of booking drafts submitted.",
			},
			[]string{"service", "result"},
		),
		CacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "availability_cache_hits_total",
				Help: "Availability cache hits.",
			},
			[]string{"service"},
		),
		CacheMisses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "availability_cache_misses_total",
				Help: "Availability cache misses.",
			},
			[]string{"service"},
		),
	}

	prometheus.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBConnsOpen,
		m.DBConnsInUse,
		m.DBConnsIdle,
		m.ReservationsCreated,
		m.DraftsSubmitted,
		m.CacheHits,
		m.CacheMisses,
	)

	return m
}

// IncReservationCreated инкрементирует счетчик созданных бронирований
func (m *Metrics) IncReservationCreated() {
	if m == nil {
		return
	}
	m.ReservationsCreated.WithLabelValues(m.service).Inc()
}

// IncDraftSubmitted инкрементирует счетчик отправленных черновиков
// result - "success" или "failure"
func (m *Metrics) IncDraftSubmitted(result string) {
	if m == nil {
		return
	}
	m.DraftsSubmitted.WithLabelValues(m.service, result).Inc()
}

// IncCacheHit инкрементирует счетчик попаданий в кэш доступности
func (m *Metrics) IncCacheHit() {
	if m == nil {
		return
	}
	m.CacheHits.WithLabelValues(m.service).Inc()
}

// IncCacheMiss инкрементирует счетчик промахов кэша доступности
func (m *Metrics) IncCacheMiss() {
	if m == nil {
		return
	}
	m.CacheMisses.WithLabelValues(m.service).Inc()
}

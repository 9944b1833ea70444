package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Journal metrics
	EntriesPosted  prometheus.Counter
	EntriesDeleted prometheus.Counter
	EntryDuration  prometheus.Histogram
	EntryMovements prometheus.Histogram
	EntryErrors    *prometheus.CounterVec

	// Account metrics
	AccountsCreated   prometheus.Counter
	AccountOperations *prometheus.CounterVec

	// Receivable metrics
	ReceivablesRegistered *prometheus.CounterVec
	ReceivablesEdited     prometheus.Counter
	ReceivablesDeleted    prometheus.Counter

	// Exchange rate metrics
	RateFetches     *prometheus.CounterVec
	RateValue       prometheus.Gauge
	RateCacheHits   prometheus.Counter
	RateCacheMisses prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Journal metrics
		EntriesPosted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_entries_posted_total",
			Help: "Total number of journal entries posted",
		}),
		EntriesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_entries_deleted_total",
			Help: "Total number of journal entries deleted",
		}),
		EntryDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_entry_duration_seconds",
			Help:    "Duration of journal entry posting",
			Buckets: prometheus.DefBuckets,
		}),
		EntryMovements: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_entry_movements",
			Help:    "Number of movements per posted entry",
			Buckets: []float64{2, 3, 4, 5, 8, 12, 20},
		}),
		EntryErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_entry_errors_total",
				Help: "Total number of posting errors by type",
			},
			[]string{"error_type"},
		),

		// Account metrics
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		AccountOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_account_operations_total",
				Help: "Total number of account operations by type",
			},
			[]string{"operation"},
		),

		// Receivable metrics
		ReceivablesRegistered: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_receivables_registered_total",
				Help: "Total number of receivable movements by operation",
			},
			[]string{"operation"},
		),
		ReceivablesEdited: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_receivables_edited_total",
			Help: "Total number of receivable movements edited",
		}),
		ReceivablesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_receivables_deleted_total",
			Help: "Total number of receivable movements deleted",
		}),

		// Exchange rate metrics
		RateFetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_rate_fetches_total",
				Help: "Total number of exchange rate fetches by source and status",
			},
			[]string{"source", "status"},
		),
		RateValue: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_rate_value",
			Help: "Last known exchange rate",
		}),
		RateCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_rate_cache_hits_total",
			Help: "Total number of rate cache hits",
		}),
		RateCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_rate_cache_misses_total",
			Help: "Total number of rate cache misses",
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_db_queries_total",
				Help: "Total number of database queries",
			},
			[]string{"operation"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_db_query_duration_seconds",
				Help:    "Duration of database queries",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_db_errors_total",
				Help: "Total number of database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_redis_operations_total",
				Help: "Total number of Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_redis_errors_total",
				Help: "Total number of Redis errors",
			},
			[]string{"operation"},
		),

		// Rate limiting metrics
		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_rate_limit_hits_total",
				Help: "Total number of rate limit hits",
			},
			[]string{"path"},
		),
	}
}

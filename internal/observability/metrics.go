package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce             sync.Once
	httpDurationHistogram    *prometheus.HistogramVec
	transactionCounter       *prometheus.CounterVec
	insufficientFundsCounter *prometheus.CounterVec
	rateLimitedCounter       *prometheus.CounterVec
	limiterKeysGauge         prometheus.Gauge
	workerRunCounter         *prometheus.CounterVec
)

// Init registers all Prometheus collectors.
func Init() {
	registerOnce.Do(func() {
		httpDurationHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"})

		transactionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_transactions_total",
			Help: "Ledger transactions grouped by type and outcome",
		}, []string{"type", "result"})

		insufficientFundsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_insufficient_funds_total",
			Help: "Debits rejected because the source balance was too low",
		}, []string{"type"})

		rateLimitedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rate_limited_requests_total",
			Help: "Requests rejected by admission control",
		}, []string{"scope"})

		limiterKeysGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rate_limiter_tracked_keys",
			Help: "Caller keys currently tracked by the sliding-window limiter",
		})

		workerRunCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_runs_total",
			Help: "Background worker run outcomes",
		}, []string{"worker", "result"})

		prometheus.MustRegister(
			httpDurationHistogram,
			transactionCounter,
			insufficientFundsCounter,
			rateLimitedCounter,
			limiterKeysGauge,
			workerRunCounter,
		)
	})
}

func ObserveHTTP(method, path string, status int, duration time.Duration) {
	if httpDurationHistogram == nil {
		return
	}
	httpDurationHistogram.WithLabelValues(method, path, strconv.Itoa(status)).Observe(duration.Seconds())
}

func IncrementTransaction(txType, result string) {
	if transactionCounter == nil {
		return
	}
	transactionCounter.WithLabelValues(txType, result).Inc()
}

func IncrementInsufficientFunds(txType string) {
	if insufficientFundsCounter == nil {
		return
	}
	insufficientFundsCounter.WithLabelValues(txType).Inc()
}

func IncrementRateLimited(scope string) {
	if rateLimitedCounter == nil {
		return
	}
	rateLimitedCounter.WithLabelValues(scope).Inc()
}

func SetLimiterKeys(n int) {
	if limiterKeysGauge == nil {
		return
	}
	limiterKeysGauge.Set(float64(n))
}

func IncrementWorkerRun(worker, result string) {
	if workerRunCounter == nil {
		return
	}
	workerRunCounter.WithLabelValues(worker, result).Inc()
}

package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the service collectors exposed on /metrics.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	bidsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pawction_bids_total",
			Help: "Bid placement attempts by result",
		},
		[]string{"result"},
	)

	auctionsClosed = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pawction_auctions_closed_total",
			Help: "Auctions moved out of LIVE by outcome",
		},
		[]string{"outcome"},
	)

	settlements = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pawction_settlements_total",
			Help: "Settlement transitions by outcome",
		},
		[]string{"outcome"},
	)

	sweepDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pawction_sweep_duration_seconds",
			Help:    "Duration of scheduled sweeps",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		},
		[]string{"job"},
	)

	sweepItems = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pawction_sweep_items_total",
			Help: "Items processed by scheduled sweeps",
		},
		[]string{"job"},
	)

	httpRequests = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pawction_http_requests_total",
			Help: "HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pawction_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)
)

const (
	BidAccepted = "accepted"
	BidRejected = "rejected"

	ClosedWithWinner = "winner"
	ClosedNoWinner   = "no_winner"
	Canceled         = "canceled"

	SettlementPaid     = "paid"
	SettlementPromoted = "promoted"
	SettlementExpired  = "expired"
	SettlementCanceled = "canceled"
)

func init() {
	Registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
}

func RecordBid(result string) {
	bidsTotal.WithLabelValues(result).Inc()
}

func RecordAuctionClosed(outcome string) {
	auctionsClosed.WithLabelValues(outcome).Inc()
}

func RecordSettlement(outcome string) {
	settlements.WithLabelValues(outcome).Inc()
}

// ObserveSweep records one run of a scheduled job.
func ObserveSweep(job string, started time.Time, items int) {
	sweepDuration.WithLabelValues(job).Observe(time.Since(started).Seconds())
	sweepItems.WithLabelValues(job).Add(float64(items))
}

// Handler returns an HTTP handler exposing the registered metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Instrument records request counts and latency per chi route pattern.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

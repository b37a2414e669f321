package metrics

import (
	"net/http"

	"github.com/ouissal-yahyouni/VeggieMarket/internal/platform/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager holds the storefront's custom Prometheus metrics.
type Manager struct {
	Registry *prometheus.Registry

	CartItemAddsTotal        prometheus.Counter
	CartItemRemovesTotal     prometheus.Counter
	CartQuantityUpdatesTotal prometheus.Counter
	CartClearsTotal          prometheus.Counter

	APIErrorsTotal *prometheus.CounterVec
	APILatency     *prometheus.HistogramVec
}

// NewManager initializes and registers the metrics in a dedicated registry.
func NewManager(serviceName string) *Manager {
	registry := prometheus.NewRegistry()

	cartItemAddsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "cart_item_adds_total",
		Help:      "Total number of items added to carts.",
	})
	cartItemRemovesTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "cart_item_removes_total",
		Help:      "Total number of items removed from carts.",
	})
	cartQuantityUpdatesTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "cart_quantity_updates_total",
		Help:      "Total number of cart quantity updates.",
	})
	cartClearsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "cart_clears_total",
		Help:      "Total number of carts cleared.",
	})
	apiErrorsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "api_errors_total",
		Help:      "Total number of API errors by route and status.",
	}, []string{"route", "status"})
	apiLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: serviceName,
		Name:      "api_request_latency_seconds",
		Help:      "Latency of API requests by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	registry.MustRegister(
		cartItemAddsTotal,
		cartItemRemovesTotal,
		cartQuantityUpdatesTotal,
		cartClearsTotal,
		apiErrorsTotal,
		apiLatency,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	return &Manager{
		Registry:                 registry,
		CartItemAddsTotal:        cartItemAddsTotal,
		CartItemRemovesTotal:     cartItemRemovesTotal,
		CartQuantityUpdatesTotal: cartQuantityUpdatesTotal,
		CartClearsTotal:          cartClearsTotal,
		APIErrorsTotal:           apiErrorsTotal,
		APILatency:               apiLatency,
	}
}

// NewServer builds the HTTP server exposing /metrics for the registry. The
// caller owns starting and shutting it down.
func NewServer(port string, log logger.Logger, registry *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	log.Infof("Prometheus metrics exposed on port %s at /metrics", port)

	return &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}
}

// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// RequestsTotal counts HTTP requests by method, route template and status code.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "product_api_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ProductsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "product_api_products_created_total",
			Help: "Products stored",
		},
	)

	// ProductLookupsTotal counts lookups by result: found or not_found.
	ProductLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_api_product_lookups_total",
			Help: "Product lookups",
		},
		[]string{"result"},
	)

	ValidationFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_api_validation_failures_total",
			Help: "Rejected input fields",
		},
		[]string{"field"},
	)

	// CatalogSize is refreshed by the stats reporter.
	CatalogSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "product_api_catalog_size",
			Help: "Products currently held in memory",
		},
	)

	RateLimitRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "product_api_ratelimit_rejected_total",
			Help: "Requests rejected by the rate limiter",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		ProductsCreatedTotal,
		ProductLookupsTotal,
		ValidationFailuresTotal,
		CatalogSize,
		RateLimitRejectedTotal,
	)
}

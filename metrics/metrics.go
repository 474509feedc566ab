// Package metrics exposes Prometheus counters for the POS processes.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	OrdersCommitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_orders_committed_total",
		Help: "Orders committed to the store.",
	})
	OrdersAnnulled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_orders_annulled_total",
		Help: "Orders annulled by the operator.",
	})
	ReportsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_reports_generated_total",
		Help: "Daily reconciliation reports generated.",
	})
	CashUpdates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_cash_updates_total",
		Help: "Cash register writes (add or overwrite).",
	})
)

// Serve blocks, serving /metrics on addr.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}

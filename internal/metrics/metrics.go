package metrics

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"microcat/internal/models"
)

var storedClassificationsDesc = prometheus.NewDesc(
	"microcat_stored_classifications",
	"Number of persisted classification records by category",
	[]string{"category"},
	nil,
)

// CategoryCounter reads persisted record counts.
type CategoryCounter interface {
	CountClassificationsByCategory(ctx context.Context) ([]models.CategoryCount, error)
}

// CategoryCollector is a custom Prometheus collector that reads persisted
// category counts from the database on each scrape.
type CategoryCollector struct {
	source  CategoryCounter
	timeout time.Duration
}

// Describe sends the metric descriptor to the channel.
func (c *CategoryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- storedClassificationsDesc
}

// Collect queries the database and emits one gauge per category. Every
// category is reported, with zero for those that have no records yet.
func (c *CategoryCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	counts, err := c.source.CountClassificationsByCategory(ctx)
	if err != nil {
		slog.Error("failed to collect classification metrics", "error", err)
		return
	}

	byName := make(map[string]int64, len(counts))
	for _, cc := range counts {
		byName[cc.Category] = cc.Count
	}
	for _, cat := range models.Categories() {
		ch <- prometheus.MustNewConstMetric(
			storedClassificationsDesc,
			prometheus.GaugeValue,
			float64(byName[cat.String()]),
			cat.String(),
		)
	}
}

// Metrics holds the in-process counters for the categorize endpoint.
type Metrics struct {
	requests *prometheus.CounterVec
	storeUp  prometheus.Gauge
}

// New registers the collectors on reg. source may be nil, in which case
// persisted counts are not exported.
func New(reg prometheus.Registerer, source CategoryCounter) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "microcat_categorize_requests_total",
			Help: "Categorize requests by outcome and category",
		}, []string{"outcome", "category"}),
		storeUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "microcat_store_up",
			Help: "1 if the last store ping succeeded, 0 otherwise",
		}),
	}

	reg.MustRegister(m.requests, m.storeUp)
	if source != nil {
		reg.MustRegister(&CategoryCollector{source: source, timeout: 5 * time.Second})
	}
	return m
}

// RecordOutcome counts one categorize request.
func (m *Metrics) RecordOutcome(outcome, category string) {
	m.requests.WithLabelValues(outcome, category).Inc()
}

// SetStoreUp records the result of a store health probe.
func (m *Metrics) SetStoreUp(up bool) {
	if up {
		m.storeUp.Set(1)
		return
	}
	m.storeUp.Set(0)
}

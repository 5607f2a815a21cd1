package facility

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics instruments the facility's issue/settle paths. Occupancy is an
// up/down gauge per spot category so upgraded fallbacks count against the
// category of the spot actually taken.
type Metrics struct {
	issueOperations  *prometheus.CounterVec
	settleOperations *prometheus.CounterVec
	occupancy        *prometheus.GaugeVec
	feeCents         prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		issueOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "facility_issue_operations_total",
			Help: "Ticket issuance attempts by outcome.",
		}, []string{"outcome"}),
		settleOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "facility_settle_operations_total",
			Help: "Ticket settlement attempts by outcome.",
		}, []string{"outcome"}),
		occupancy: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "facility_occupied_spots",
			Help: "Currently occupied spots per category.",
		}, []string{"category"}),
		feeCents: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "facility_settlement_fee_cents",
			Help:    "Fees charged at settlement.",
			Buckets: prometheus.ExponentialBuckets(100, 4, 8),
		}),
	}
}

func (m *Metrics) issued(category string) {
	m.issueOperations.WithLabelValues("issued").Inc()
	m.occupancy.WithLabelValues(category).Inc()
}

func (m *Metrics) issueRejected() {
	m.issueOperations.WithLabelValues("rejected").Inc()
}

func (m *Metrics) settled(category string, feeCents int64) {
	m.settleOperations.WithLabelValues("completed").Inc()
	m.occupancy.WithLabelValues(category).Dec()
	m.feeCents.Observe(float64(feeCents))
}

func (m *Metrics) settleFailed(outcome string) {
	m.settleOperations.WithLabelValues(outcome).Inc()
}

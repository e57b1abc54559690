package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	automationPlanner = "automation_planner"

	analysesTotal = "analyses_total"

	analysisOutcomeLabel = "outcome"
)

var analysesTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: automationPlanner,
		Name:      analysesTotal,
		Help:      "number of analysis runs by outcome",
	},
	[]string{analysisOutcomeLabel},
)

// IncreaseAnalysesTotalMetric records one finished analysis run.
func IncreaseAnalysesTotalMetric(outcome string) {
	analysesTotalMetric.With(prometheus.Labels{analysisOutcomeLabel: outcome}).Inc()
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(analysesTotalMetric)
}

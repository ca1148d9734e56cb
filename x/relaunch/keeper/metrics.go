package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RelaunchMetrics holds all Prometheus metrics for the relaunch module
type RelaunchMetrics struct {
	Attempts        prometheus.Counter
	Completed       prometheus.Gauge
	SuccessorSupply prometheus.Gauge
}

var (
	relaunchMetricsOnce sync.Once
	relaunchMetrics     *RelaunchMetrics
)

// GetRelaunchMetrics returns the singleton metrics instance
func GetRelaunchMetrics() *RelaunchMetrics {
	relaunchMetricsOnce.Do(func() {
		relaunchMetrics = &RelaunchMetrics{
			Attempts: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "phoenix",
				Subsystem: "relaunch",
				Name:      "attempts_total",
				Help:      "Number of relaunch executions attempted",
			}),
			Completed: promauto.NewGauge(prometheus.GaugeOpts{
				Namespace: "phoenix",
				Subsystem: "relaunch",
				Name:      "completed",
				Help:      "1 once the relaunch has executed successfully",
			}),
			SuccessorSupply: promauto.NewGauge(prometheus.GaugeOpts{
				Namespace: "phoenix",
				Subsystem: "relaunch",
				Name:      "successor_supply",
				Help:      "Total minted supply of the successor asset",
			}),
		}
	})
	return relaunchMetrics
}

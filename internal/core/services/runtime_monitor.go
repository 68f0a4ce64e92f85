package services

import (
	"context"
	"os"
	"time"

	"github.com/AshkanSharifii/blog/internal/utils/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	processutil "github.com/shirou/gopsutil/process"
	"go.uber.org/zap"
)

// RuntimeMonitor samples the daemon's own process and exports the readings
// as prometheus gauges.
type RuntimeMonitor struct {
	exportedMetrics *RuntimeMonitorMetricsExported
	process         *processutil.Process
}

type RuntimeMonitorMetricsExported struct {
	prometheusCpuUsage    *prometheus.GaugeVec
	prometheusMemoryUsage *prometheus.GaugeVec
	prometheusConnections *prometheus.GaugeVec
}

func NewRuntimeMonitor(enableMetrics bool) (*RuntimeMonitor, error) {
	process, err := processutil.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}

	rm := &RuntimeMonitor{
		process: process,
	}

	if enableMetrics {
		rm.exportedMetrics = NewRuntimeMonitorMetricsExported()
	}

	return rm, nil
}

func NewRuntimeMonitorMetricsExported() *RuntimeMonitorMetricsExported {
	return &RuntimeMonitorMetricsExported{
		prometheusCpuUsage: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "postinod",
			Name:      "cpu",
			Help:      "CPU usage",
		}, []string{"process"}),
		prometheusMemoryUsage: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "postinod",
			Name:      "memory",
			Help:      "Memory usage (RSS)",
		}, []string{"process"}),
		prometheusConnections: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "postinod",
			Name:      "connections",
			Help:      "Open connections",
		}, []string{"process"}),
	}
}

func (rm *RuntimeMonitor) ShutdownPromMetrics() {
	if rm.exportedMetrics == nil {
		logger.Log().Warn("No metrics registered, skipping")
		return
	}
	logger.Log().Info("Shutting down prometheus metrics")
	prometheus.DefaultRegisterer.Unregister(rm.exportedMetrics.prometheusCpuUsage)
	prometheus.DefaultRegisterer.Unregister(rm.exportedMetrics.prometheusMemoryUsage)
	prometheus.DefaultRegisterer.Unregister(rm.exportedMetrics.prometheusConnections)
}

func (rm *RuntimeMonitor) StartMonitoring(ctx context.Context) {
	ticker := time.NewTicker(10 * time.Second)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := rm.RefreshMetrics(); err != nil {
					logger.Log().Error("Error when retrieving process metrics",
						zap.String(logger.LogKeyContext, logger.LogContextMonitor),
						zap.Error(err),
					)
				}
			}
		}
	}()
}

func (rm *RuntimeMonitor) RefreshMetrics() error {
	running, err := rm.process.IsRunning()
	if err != nil {
		return err
	}
	if !running {
		return nil
	}

	cpu, _ := rm.process.CPUPercent()
	connections, _ := rm.process.Connections()

	var rss uint64
	if memory, err := rm.process.MemoryInfo(); err == nil && memory != nil {
		rss = memory.RSS
	}

	if rm.exportedMetrics != nil {
		labels := prometheus.Labels{"process": "postinod"}
		rm.exportedMetrics.prometheusCpuUsage.With(labels).Set(cpu)
		rm.exportedMetrics.prometheusMemoryUsage.With(labels).Set(float64(rss))
		rm.exportedMetrics.prometheusConnections.With(labels).Set(float64(len(connections)))
	}

	return nil
}

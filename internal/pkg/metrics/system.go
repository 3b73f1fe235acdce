package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const cpuSampleWindow = time.Second

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_memory_usage_bytes",
			Help: "System memory usage in bytes",
		},
	)

	PortalHeapUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "portal_heap_alloc_bytes",
			Help: "Go heap allocation of the portal process",
		},
	)

	PortalGoroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "portal_goroutines",
			Help: "Number of goroutines in the portal process",
		},
	)
)

// StartSystemMetricsCollector samples host and process gauges every interval
// until ctx is done.
func StartSystemMetricsCollector(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				Collect(ctx)
			}
		}
	}()
}

func Collect(ctx context.Context) {
	cpuPercent, err := cpu.PercentWithContext(ctx, cpuSampleWindow, false)
	if err == nil && len(cpuPercent) > 0 {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	vmStat, err := mem.VirtualMemoryWithContext(ctx)
	if err == nil {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	PortalHeapUsage.Set(float64(m.HeapAlloc))
	PortalGoroutines.Set(float64(runtime.NumGoroutine()))
}

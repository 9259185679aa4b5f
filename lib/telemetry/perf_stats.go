package telemetry

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/process"
	"go.opentelemetry.io/otel"
)

var meter = otel.Meter("scrapingbee.process")
var cpuGauge = Float64Gauge(meter, "process.cpu_percent")
var rssGauge = Int64Gauge(meter, "process.rss_mb")
var goroutineGauge = Int64Gauge(meter, "process.goroutines")

// InstrumentProcessStats records cpu, memory and goroutine gauges for this
// process every interval until ctx is done.
func InstrumentProcessStats(ctx context.Context, tel API, interval time.Duration) {
	proc, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		tel.ReportWarning("process-stats", err)
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				recordProcessStats(ctx, tel, proc)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func recordProcessStats(ctx context.Context, tel API, proc *process.Process) {
	cpu, err := proc.CPUPercentWithContext(ctx)
	if err == nil {
		cpuGauge.Record(ctx, cpu)
	} else {
		tel.ReportWarning("process-stats.cpu", err)
	}

	mem, err := proc.MemoryInfoWithContext(ctx)
	if err == nil {
		rssGauge.Record(ctx, int64(mem.RSS/1_000_000))
	} else {
		tel.ReportWarning("process-stats.memory", err)
	}

	goroutineGauge.Record(ctx, int64(runtime.NumGoroutine()))
}

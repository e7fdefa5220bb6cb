package hub

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"liyu1981.xyz/seismic-telemetry-service/pkg/models"
)

// StartThroughputMeter rolls the per-second accepted-sample counter once a
// second until the context ends.
func (h *Hub) StartThroughputMeter(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				h.rollThroughput()
			}
		}
	}()
}

func (h *Hub) markAccepted() {
	h.accepted.Add(1)
	if h.Metrics != nil {
		h.Metrics.SamplesAccepted.Inc()
	}
}

func (h *Hub) rollThroughput() {
	h.lastRate.Store(h.accepted.Swap(0))
}

// CurrentThroughput reports samples accepted during the last full second.
func (h *Hub) CurrentThroughput() int64 {
	return h.lastRate.Load()
}

// HealthSnapshot assembles the hub self-report served over REST and pushed
// to dashboards. Host probes are best effort; a probe error leaves its
// field zero.
func (h *Hub) HealthSnapshot() models.HealthSnapshot {
	snap := models.HealthSnapshot{
		Connections:      h.connCount(),
		Devices:          h.deviceCount(),
		UptimeSeconds:    time.Since(h.startedAt).Seconds(),
		ThroughputPerSec: h.CurrentThroughput(),
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		snap.MemoryUsedPercent = vm.UsedPercent
	}
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		snap.CPUPercent = pcts[0]
	}
	return snap
}

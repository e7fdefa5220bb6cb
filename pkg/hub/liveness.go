package hub

import (
	"context"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/seismic-telemetry-service/pkg/common"
	"liyu1981.xyz/seismic-telemetry-service/pkg/models"
)

// DefaultLivenessPeriod is the sweep interval. Connections idle for more
// than twice the period are evicted.
const DefaultLivenessPeriod = 30 * time.Second

func (h *Hub) StartLivenessMonitor(ctx context.Context, period time.Duration) {
	if period <= 0 {
		period = DefaultLivenessPeriod
	}
	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				h.sweepStale(now, 2*period)
			}
		}
	}()
}

// sweepStale evicts connections idle past maxIdle, then pings the survivors.
// The ping is a probe only; eviction is driven solely by lastSeenAt ageing,
// so a slow pong never kills a connection by itself.
func (h *Hub) sweepStale(now time.Time, maxIdle time.Duration) {
	logger := common.GetLoggerWith(
		common.LoggerNameHubCore,
		zap.String(common.LoggerFieldHubCategory, common.LoggerCategoryLiveness),
	)

	h.mu.Lock()
	var stale []trackedConn
	live := make([]Conn, 0, len(h.conns))
	for id, entry := range h.conns {
		if now.Sub(entry.meta.LastSeenAt) > maxIdle {
			stale = append(stale, *entry)
			delete(h.conns, id)
		} else {
			live = append(live, entry.transport)
		}
	}
	count := len(h.conns)
	h.mu.Unlock()

	if len(stale) > 0 && h.Metrics != nil {
		h.Metrics.ConnectionsActive.Set(float64(count))
	}

	for _, entry := range stale {
		_ = entry.transport.Close()
		logger.Info("Evicted stale connection",
			zap.String("connection_id", entry.meta.ID),
			zap.Time("last_seen_at", entry.meta.LastSeenAt),
		)
		if h.Metrics != nil {
			h.Metrics.Evictions.Inc()
		}
		if entry.meta.BoundDeviceID != "" {
			h.Directory.MarkDisconnected(entry.meta.BoundDeviceID)
			h.Broadcast.ToDashboards(models.DeviceStatusEvent{
				Type:      models.MsgDeviceStatus,
				DeviceID:  entry.meta.BoundDeviceID,
				Status:    models.DeviceDisconnected,
				Timestamp: now,
			})
		}
	}

	for _, transport := range live {
		if !transport.IsOpen() {
			continue
		}
		_ = transport.Ping()
	}
}

package hub

import (
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/seismic-telemetry-service/pkg/common"
	"liyu1981.xyz/seismic-telemetry-service/pkg/models"
)

// isDashboard classifies a connection for fan-out. Connections bound to the
// dashboard sentinel count as dashboards no matter what role they carry.
func isDashboard(meta models.Connection) bool {
	return meta.Role == models.RoleDashboard || meta.BoundDeviceID == models.SentinelDashboardID
}

func (h *Hub) broadcastToDashboards(payload any) {
	h.fanOut(payload, "dashboard", isDashboard)
}

func (h *Hub) broadcastToAll(payload any) {
	h.fanOut(payload, "all", func(models.Connection) bool { return true })
}

// fanOut delivers payload to every open connection the predicate admits, at
// most once each. Sends happen outside the hub lock; a failed or closed
// transport is skipped, never retried, and nothing is queued for it.
func (h *Hub) fanOut(payload any, audience string, include func(models.Connection) bool) {
	logger := common.GetLoggerWith(
		common.LoggerNameHubCore,
		zap.String(common.LoggerFieldHubCategory, common.LoggerCategoryBroadcast),
	)
	start := time.Now()

	h.forEachConn(func(meta models.Connection, transport Conn) {
		if !include(meta) {
			return
		}
		if !transport.IsOpen() {
			return
		}
		if err := transport.SendJSON(payload); err != nil {
			logger.Debug("Broadcast send failed",
				zap.String("connection_id", meta.ID),
				zap.Error(err),
			)
		}
	})

	if h.Metrics != nil {
		h.Metrics.BroadcastsSent.WithLabelValues(audience).Inc()
		h.Metrics.BroadcastDuration.Observe(time.Since(start).Seconds())
	}
}

type IBroadcastImpl struct {
	hub *Hub
}

func (ib *IBroadcastImpl) ToDashboards(payload any) {
	ib.hub.broadcastToDashboards(payload)
}

func (ib *IBroadcastImpl) ToAll(payload any) {
	ib.hub.broadcastToAll(payload)
}

func (h *Hub) GetIBroadcast() IBroadcast {
	return &IBroadcastImpl{hub: h}
}

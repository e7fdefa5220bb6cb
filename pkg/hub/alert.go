package hub

import (
	"fmt"

	"go.uber.org/zap"
	"liyu1981.xyz/seismic-telemetry-service/pkg/common"
	"liyu1981.xyz/seismic-telemetry-service/pkg/models"
)

// triggerAlert raises exactly one alert for an earthquake-flagged record and
// pushes it to every tracked connection, devices included. The level is
// always "warning"; downstream consumers key off it.
func (h *Hub) triggerAlert(record models.EnrichedRecord) {
	logger := common.GetLoggerWith(
		common.LoggerNameHubCore,
		zap.String(common.LoggerFieldHubCategory, common.LoggerCategoryAlert),
	)

	location := record.Location
	if location == "" {
		location = "unknown location"
	}
	alert := models.Alert{
		DeviceID:  record.DeviceID,
		Location:  record.Location,
		Magnitude: record.Magnitude,
		Level:     models.AlertLevelWarning,
		Message: fmt.Sprintf("Earthquake detected by %s at %s: magnitude %.2f",
			record.DeviceID, location, record.Magnitude),
		Timestamp: record.ServerTimestamp,
	}

	h.mu.Lock()
	h.alertLog.Push(alert)
	h.mu.Unlock()

	logger.Info("Alert triggered", zap.Reflect("alert", alert))

	h.Broadcast.ToAll(models.EarthquakeAlertEvent{Type: models.MsgEarthquakeAlert, Alert: alert})

	if h.Metrics != nil {
		h.Metrics.AlertsTriggered.Inc()
	}
}

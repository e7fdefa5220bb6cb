package hub

import (
	"sort"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/seismic-telemetry-service/pkg/common"
	"liyu1981.xyz/seismic-telemetry-service/pkg/models"
)

func (h *Hub) directoryLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameHubCore,
		zap.String(common.LoggerFieldHubCategory, common.LoggerCategoryDirectory),
	)
}

// upsertDevice registers a device or refreshes a known one. History is never
// reset here; a device that reconnects keeps everything it reported before.
func (h *Hub) upsertDevice(deviceID string, location string) models.Device {
	now := time.Now()

	h.mu.Lock()
	entry, ok := h.devices[deviceID]
	if !ok {
		entry = &deviceEntry{
			device: models.Device{
				ID:          deviceID,
				Location:    location,
				Status:      models.DeviceConnected,
				ConnectedAt: now,
				LastSeenAt:  now,
			},
			history: common.NewRing[models.EnrichedRecord](HistoryCapacity),
		}
		h.devices[deviceID] = entry
	} else {
		if entry.device.Status == models.DeviceDisconnected {
			entry.device.ConnectedAt = now
		}
		entry.device.Status = models.DeviceConnected
		entry.device.Location = location
		entry.device.LastSeenAt = now
	}
	view := entry.device
	connected := h.connectedDeviceCountLocked()
	h.mu.Unlock()

	if h.Metrics != nil {
		h.Metrics.DevicesConnected.Set(float64(connected))
	}
	h.directoryLogger().Info("Device registered",
		zap.String("device_id", deviceID),
		zap.String("location", location),
	)
	return view
}

// appendDeviceHistory records one enriched sample. Unknown devices are a
// silent no-op; registration is the only way into the directory.
func (h *Hub) appendDeviceHistory(deviceID string, record models.EnrichedRecord) {
	h.mu.Lock()
	if entry, ok := h.devices[deviceID]; ok {
		entry.history.Push(record)
		entry.device.LastSeenAt = record.ServerTimestamp
	}
	h.mu.Unlock()
}

func (h *Hub) markDeviceDisconnected(deviceID string) {
	h.mu.Lock()
	entry, ok := h.devices[deviceID]
	if ok {
		entry.device.Status = models.DeviceDisconnected
	}
	connected := h.connectedDeviceCountLocked()
	h.mu.Unlock()

	if !ok {
		return
	}
	if h.Metrics != nil {
		h.Metrics.DevicesConnected.Set(float64(connected))
	}
	h.directoryLogger().Info("Device disconnected", zap.String("device_id", deviceID))
}

// updateDeviceTelemetry replaces the stored telemetry wholesale, so fields a
// device stopped reporting go back to nil. Reports false for unknown devices.
func (h *Hub) updateDeviceTelemetry(deviceID string, telemetry *models.DeviceTelemetry) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	entry, ok := h.devices[deviceID]
	if !ok {
		return false
	}
	entry.device.Telemetry = telemetry
	entry.device.LastSeenAt = time.Now()
	return true
}

func (h *Hub) touchDevice(deviceID string) {
	h.mu.Lock()
	if entry, ok := h.devices[deviceID]; ok {
		entry.device.LastSeenAt = time.Now()
	}
	h.mu.Unlock()
}

func (h *Hub) getDevice(deviceID string) (models.Device, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	entry, ok := h.devices[deviceID]
	if !ok {
		return models.Device{}, false
	}
	return entry.device, true
}

// deviceHistory returns up to limit newest records, oldest first. limit <= 0
// means the whole ring.
func (h *Hub) deviceHistory(deviceID string, limit int) []models.EnrichedRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	entry, ok := h.devices[deviceID]
	if !ok {
		return nil
	}
	items := entry.history.Items()
	if limit > 0 && len(items) > limit {
		items = items[len(items)-limit:]
	}
	return items
}

func (h *Hub) deviceSummaries() []models.DeviceSummary {
	h.mu.Lock()
	summaries := make([]models.DeviceSummary, 0, len(h.devices))
	for _, entry := range h.devices {
		summary := models.DeviceSummary{Device: entry.device}
		if last, ok := entry.history.Last(); ok {
			record := last
			summary.Latest = &record
		}
		summaries = append(summaries, summary)
	}
	h.mu.Unlock()

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ID < summaries[j].ID
	})
	return summaries
}

func (h *Hub) deviceCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.devices)
}

func (h *Hub) connectedDeviceCountLocked() int {
	connected := 0
	for _, entry := range h.devices {
		if entry.device.Status == models.DeviceConnected {
			connected++
		}
	}
	return connected
}

type IDirectoryImpl struct {
	hub *Hub
}

func (id *IDirectoryImpl) Upsert(deviceID string, location string) models.Device {
	return id.hub.upsertDevice(deviceID, location)
}

func (id *IDirectoryImpl) AppendHistory(deviceID string, record models.EnrichedRecord) {
	id.hub.appendDeviceHistory(deviceID, record)
}

func (id *IDirectoryImpl) MarkDisconnected(deviceID string) {
	id.hub.markDeviceDisconnected(deviceID)
}

func (id *IDirectoryImpl) UpdateTelemetry(deviceID string, telemetry *models.DeviceTelemetry) bool {
	return id.hub.updateDeviceTelemetry(deviceID, telemetry)
}

func (id *IDirectoryImpl) Get(deviceID string) (models.Device, bool) {
	return id.hub.getDevice(deviceID)
}

func (id *IDirectoryImpl) History(deviceID string, limit int) []models.EnrichedRecord {
	return id.hub.deviceHistory(deviceID, limit)
}

func (id *IDirectoryImpl) Summaries() []models.DeviceSummary {
	return id.hub.deviceSummaries()
}

func (id *IDirectoryImpl) Count() int {
	return id.hub.deviceCount()
}

func (h *Hub) GetIDirectory() IDirectory {
	return &IDirectoryImpl{hub: h}
}

package hub

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"liyu1981.xyz/seismic-telemetry-service/pkg/common"
	"liyu1981.xyz/seismic-telemetry-service/pkg/models"
)

var (
	// ErrUnknownDevice rejects samples for devices that never registered.
	ErrUnknownDevice = errors.New("device not registered")
	// ErrInvalidSample rejects samples whose fields are missing or do not
	// parse as finite numbers.
	ErrInvalidSample = errors.New("invalid sensor sample")
)

func validateDeviceID(deviceID *string) z.ZogIssueList {
	var deviceIdValidator = z.String().Min(1).Required()
	return deviceIdValidator.Validate(deviceID)
}

var clientTypeValidator = z.String().OneOf([]string{
	string(models.RoleDashboard),
	string(models.RoleDevice),
}).Required()

func (h *Hub) ingestLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameHubCore,
		zap.String(common.LoggerFieldHubCategory, common.LoggerCategoryIngest),
	)
}

// handleFrame is the single entry point for every frame read off a
// connection. A frame that is not JSON earns an error reply and nothing
// else; the connection stays open either way.
func (h *Hub) handleFrame(transport Conn, frame []byte) {
	logger := h.ingestLogger()

	var msg models.InboundMessage
	if err := json.Unmarshal(frame, &msg); err != nil {
		logger.Warn("Malformed frame",
			zap.String("connection_id", transport.ID()),
			zap.Error(err),
		)
		h.countMessage("malformed")
		h.sendEvent(transport, models.ErrorEvent{Type: models.MsgError, Message: "invalid JSON payload"})
		return
	}

	h.Registry.Touch(transport.ID())
	h.countMessage(msg.Type)

	switch msg.Type {
	case models.MsgDeviceRegister:
		h.handleDeviceRegister(transport, &msg)
	case models.MsgSensorData:
		// validation failures are logged and dropped, the sender gets nothing
		_, _ = h.processSensorData(transport, &msg)
	case models.MsgHeartbeat:
		h.handleHeartbeat(transport)
	case models.MsgStatusUpdate:
		h.handleStatusUpdate(&msg)
	case models.MsgClientRegister:
		h.handleClientRegister(transport, &msg)
	default:
		logger.Warn("Unrecognized message type",
			zap.String("connection_id", transport.ID()),
			zap.String("type", msg.Type),
		)
	}
}

func (h *Hub) handleDeviceRegister(transport Conn, msg *models.InboundMessage) {
	if err := validateDeviceID(&msg.DeviceID); err != nil {
		h.ingestLogger().Warn("Device registration rejected",
			zap.String("connection_id", transport.ID()),
			zap.Any("issues", err),
		)
		h.sendEvent(transport, models.ErrorEvent{Type: models.MsgError, Message: "device_id is required"})
		return
	}

	now := time.Now()
	device := h.Directory.Upsert(msg.DeviceID, msg.Location)
	h.Registry.SetRole(transport.ID(), models.RoleDevice)
	h.Registry.BindDevice(transport.ID(), msg.DeviceID)

	h.sendEvent(transport, models.DeviceRegisteredEvent{
		Type:       models.MsgDeviceRegistered,
		DeviceID:   device.ID,
		Location:   device.Location,
		ServerTime: now,
	})
	h.Broadcast.ToDashboards(models.DeviceStatusEvent{
		Type:      models.MsgDeviceStatus,
		DeviceID:  device.ID,
		Status:    models.DeviceConnected,
		Location:  device.Location,
		Timestamp: now,
	})
}

// processSensorData validates, enriches and distributes one sample. The
// transport may be nil for synthetic samples injected over REST.
func (h *Hub) processSensorData(transport Conn, msg *models.InboundMessage) (models.EnrichedRecord, error) {
	logger := h.ingestLogger()

	if err := validateDeviceID(&msg.DeviceID); err != nil {
		logger.Warn("Sensor sample rejected", zap.Any("issues", err))
		h.rejectSample("validation")
		return models.EnrichedRecord{}, ErrInvalidSample
	}
	if len(msg.Timestamp) == 0 || string(msg.Timestamp) == "null" {
		logger.Warn("Sensor sample rejected",
			zap.String("device_id", msg.DeviceID),
			zap.String("reason", "missing timestamp"),
		)
		h.rejectSample("validation")
		return models.EnrichedRecord{}, ErrInvalidSample
	}

	axes, err := parseAxes(msg)
	if err != nil {
		logger.Warn("Sensor sample rejected",
			zap.String("device_id", msg.DeviceID),
			zap.Error(err),
		)
		h.rejectSample("validation")
		return models.EnrichedRecord{}, ErrInvalidSample
	}

	device, ok := h.Directory.Get(msg.DeviceID)
	if !ok {
		logger.Warn("Sensor sample from unregistered device", zap.String("device_id", msg.DeviceID))
		h.rejectSample("unknown_device")
		return models.EnrichedRecord{}, ErrUnknownDevice
	}

	now := time.Now()
	enrichment := h.Scorer.Enrich(axes.ax, axes.ay, axes.az)
	assessment := h.Scorer.AssessAlert(enrichment.Magnitude, enrichment.Intensity)
	record := models.EnrichedRecord{
		DeviceID:        msg.DeviceID,
		Location:        device.Location,
		Ax:              axes.ax,
		Ay:              axes.ay,
		Az:              axes.az,
		Gx:              axes.gx,
		Gy:              axes.gy,
		Gz:              axes.gz,
		ClientTimestamp: msg.Timestamp,
		ServerTimestamp: now,
		Magnitude:       enrichment.Magnitude,
		Intensity:       enrichment.Intensity,
		JmaIntensity:    enrichment.JmaIntensity,
		Pga:             enrichment.Pga,
		PgaCorrected:    enrichment.PgaCorrected,
		Classification:  h.Scorer.Classify(enrichment.Magnitude),
		AlertLevel:      assessment.Level,
		AlertMessage:    assessment.Message,
		AlertColor:      assessment.Color,
		Energy:          h.Scorer.Energy(enrichment.Magnitude),
		ImpactRadius:    h.Scorer.EstimateImpactRadius(enrichment.Magnitude),
		IsEarthquake:    h.Scorer.IsEarthquake(enrichment.Magnitude),
	}

	h.Directory.AppendHistory(record.DeviceID, record)
	h.appendRecent(record)
	h.Snapshot.Append(record)
	h.markAccepted()

	h.sendEvent(transport, models.DataReceivedEvent{
		Type:         models.MsgDataReceived,
		DeviceID:     record.DeviceID,
		Magnitude:    record.Magnitude,
		IsEarthquake: record.IsEarthquake,
		ServerTime:   now,
	})
	h.Broadcast.ToDashboards(models.SensorDataEvent{Type: models.MsgSensorData, Data: record})

	if record.IsEarthquake {
		h.triggerAlert(record)
	}
	return record, nil
}

func (h *Hub) handleHeartbeat(transport Conn) {
	if meta, ok := h.Registry.Get(transport.ID()); ok && meta.BoundDeviceID != "" {
		h.touchDevice(meta.BoundDeviceID)
	}
	h.sendEvent(transport, models.HeartbeatAckEvent{
		Type:            models.MsgHeartbeatAck,
		ServerTimestamp: time.Now(),
	})
}

func (h *Hub) handleStatusUpdate(msg *models.InboundMessage) {
	telemetry := &models.DeviceTelemetry{
		Battery:           msg.Battery,
		SignalStrengthDbm: msg.SignalStrengthDbm,
		FreeHeapBytes:     msg.FreeHeapBytes,
	}
	if !h.Directory.UpdateTelemetry(msg.DeviceID, telemetry) {
		h.ingestLogger().Warn("Status update for unknown device", zap.String("device_id", msg.DeviceID))
		return
	}
	h.Broadcast.ToDashboards(models.DeviceStatusUpdateEvent{
		Type:      models.MsgDeviceStatusUpdate,
		DeviceID:  msg.DeviceID,
		Telemetry: telemetry,
		Timestamp: time.Now(),
	})
}

func (h *Hub) handleClientRegister(transport Conn, msg *models.InboundMessage) {
	if err := clientTypeValidator.Validate(&msg.ClientType); err != nil {
		h.ingestLogger().Warn("Client registration rejected",
			zap.String("connection_id", transport.ID()),
			zap.Any("issues", err),
		)
		return
	}

	role := models.ConnectionRole(msg.ClientType)
	h.Registry.SetRole(transport.ID(), role)
	h.sendEvent(transport, models.ClientRegisteredEvent{
		Type:       models.MsgClientRegistered,
		Role:       role,
		ServerTime: time.Now(),
	})

	if role != models.RoleDashboard {
		return
	}

	// catch-up payloads so a fresh dashboard renders without waiting
	h.sendEvent(transport, models.ServerHealthEvent{Type: models.MsgServerHealth, Data: h.HealthSnapshot()})
	h.sendEvent(transport, models.DevicesDataEvent{Type: models.MsgDevicesData, Devices: h.Directory.Summaries()})
	h.sendEvent(transport, models.RecentDataEvent{Type: models.MsgRecentData, Data: h.RecentData()})
}

// SyntheticSample carries the axis readings for a sample injected over REST.
type SyntheticSample struct {
	Ax float64
	Ay float64
	Az float64
	Gx float64
	Gy float64
	Gz float64
}

func (h *Hub) injectSample(deviceID string, sample SyntheticSample) (models.EnrichedRecord, error) {
	msg := &models.InboundMessage{
		Type:      models.MsgSensorData,
		DeviceID:  deviceID,
		Timestamp: json.RawMessage(strconv.FormatInt(time.Now().UnixMilli(), 10)),
		Ax:        sample.Ax,
		Ay:        sample.Ay,
		Az:        sample.Az,
		Gx:        sample.Gx,
		Gy:        sample.Gy,
		Gz:        sample.Gz,
	}
	return h.processSensorData(nil, msg)
}

type axisValues struct {
	ax, ay, az float64
	gx, gy, gz float64
}

func parseAxes(msg *models.InboundMessage) (axisValues, error) {
	var out axisValues
	fields := []struct {
		name string
		raw  any
		dst  *float64
	}{
		{"ax", msg.Ax, &out.ax},
		{"ay", msg.Ay, &out.ay},
		{"az", msg.Az, &out.az},
		{"gx", msg.Gx, &out.gx},
		{"gy", msg.Gy, &out.gy},
		{"gz", msg.Gz, &out.gz},
	}
	for _, f := range fields {
		v, err := parseAxis(f.raw)
		if err != nil {
			return out, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = v
	}
	return out, nil
}

// parseAxis accepts the two encodings devices actually send, JSON numbers
// and numeric strings. Anything else, including an absent field, fails.
func parseAxis(v any) (float64, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("value %q is not numeric", n)
		}
		f = parsed
	default:
		return 0, fmt.Errorf("value %v is not numeric", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("value %v is not finite", f)
	}
	return f, nil
}

// sendEvent is fire and forget: closed transports are skipped, send errors
// are logged and swallowed.
func (h *Hub) sendEvent(transport Conn, payload any) {
	if transport == nil || !transport.IsOpen() {
		return
	}
	if err := transport.SendJSON(payload); err != nil {
		h.ingestLogger().Debug("Send failed",
			zap.String("connection_id", transport.ID()),
			zap.Error(err),
		)
	}
}

func (h *Hub) countMessage(msgType string) {
	if h.Metrics == nil {
		return
	}
	// client strings must not become label values, cardinality is bounded
	// to the known types plus two buckets
	switch msgType {
	case models.MsgDeviceRegister, models.MsgSensorData, models.MsgHeartbeat,
		models.MsgStatusUpdate, models.MsgClientRegister, "malformed":
	default:
		msgType = "unknown"
	}
	h.Metrics.MessagesReceived.WithLabelValues(msgType).Inc()
}

func (h *Hub) rejectSample(reason string) {
	if h.Metrics != nil {
		h.Metrics.SamplesRejected.WithLabelValues(reason).Inc()
	}
}

type IIngestImpl struct {
	hub *Hub
}

func (ii *IIngestImpl) HandleFrame(transport Conn, frame []byte) {
	ii.hub.handleFrame(transport, frame)
}

func (ii *IIngestImpl) InjectSample(deviceID string, sample SyntheticSample) (models.EnrichedRecord, error) {
	return ii.hub.injectSample(deviceID, sample)
}

func (h *Hub) GetIIngest() IIngest {
	return &IIngestImpl{hub: h}
}

package models

import (
	"encoding/json"
	"time"
)

// Inbound message types accepted over the WebSocket.
const (
	MsgDeviceRegister = "device_register"
	MsgSensorData     = "sensor_data"
	MsgHeartbeat      = "heartbeat"
	MsgStatusUpdate   = "status_update"
	MsgClientRegister = "client_register"
)

// Outbound message types. MsgSensorData is reused for the enriched fan-out.
const (
	MsgConnectionEstablished = "connection_established"
	MsgDeviceRegistered      = "device_registered"
	MsgClientRegistered      = "client_registered"
	MsgDataReceived          = "data_received"
	MsgDeviceStatus          = "device_status"
	MsgDeviceStatusUpdate    = "device_status_update"
	MsgEarthquakeAlert       = "earthquake_alert"
	MsgServerHealth          = "server_health"
	MsgDevicesData           = "devices_data"
	MsgRecentData            = "recent_data"
	MsgHeartbeatAck          = "heartbeat_ack"
	MsgError                 = "error"
	MsgServerShutdown        = "server_shutdown"
)

// InboundMessage is the envelope for every frame a client sends. Axis fields
// are decoded as any because devices send them either as JSON numbers or as
// numeric strings. The client timestamp is kept raw and echoed verbatim.
type InboundMessage struct {
	Type       string          `json:"type"`
	DeviceID   string          `json:"device_id"`
	Location   string          `json:"location"`
	ClientType string          `json:"client_type"`
	Timestamp  json.RawMessage `json:"timestamp"`

	Ax any `json:"ax"`
	Ay any `json:"ay"`
	Az any `json:"az"`
	Gx any `json:"gx"`
	Gy any `json:"gy"`
	Gz any `json:"gz"`

	Battery           *float64 `json:"battery"`
	SignalStrengthDbm *float64 `json:"signal_strength"`
	FreeHeapBytes     *int64   `json:"free_heap"`
}

type ConnectionEstablishedEvent struct {
	Type         string    `json:"type"`
	ConnectionID string    `json:"connection_id"`
	Message      string    `json:"message"`
	ServerTime   time.Time `json:"server_time"`
}

type DeviceRegisteredEvent struct {
	Type       string    `json:"type"`
	DeviceID   string    `json:"device_id"`
	Location   string    `json:"location,omitempty"`
	ServerTime time.Time `json:"server_time"`
}

type ClientRegisteredEvent struct {
	Type       string         `json:"type"`
	Role       ConnectionRole `json:"role"`
	ServerTime time.Time      `json:"server_time"`
}

type DataReceivedEvent struct {
	Type         string    `json:"type"`
	DeviceID     string    `json:"device_id"`
	Magnitude    float64   `json:"magnitude"`
	IsEarthquake bool      `json:"is_earthquake"`
	ServerTime   time.Time `json:"server_time"`
}

type SensorDataEvent struct {
	Type string         `json:"type"`
	Data EnrichedRecord `json:"data"`
}

type DeviceStatusEvent struct {
	Type      string       `json:"type"`
	DeviceID  string       `json:"device_id"`
	Status    DeviceStatus `json:"status"`
	Location  string       `json:"location,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

type DeviceStatusUpdateEvent struct {
	Type      string           `json:"type"`
	DeviceID  string           `json:"device_id"`
	Telemetry *DeviceTelemetry `json:"telemetry"`
	Timestamp time.Time        `json:"timestamp"`
}

type EarthquakeAlertEvent struct {
	Type  string `json:"type"`
	Alert Alert  `json:"alert"`
}

type ServerHealthEvent struct {
	Type string         `json:"type"`
	Data HealthSnapshot `json:"data"`
}

type DevicesDataEvent struct {
	Type    string          `json:"type"`
	Devices []DeviceSummary `json:"devices"`
}

type RecentDataEvent struct {
	Type string           `json:"type"`
	Data []EnrichedRecord `json:"data"`
}

type HeartbeatAckEvent struct {
	Type            string    `json:"type"`
	ServerTimestamp time.Time `json:"server_timestamp"`
}

type ErrorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type ServerShutdownEvent struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

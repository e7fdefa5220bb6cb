package models

import (
	"encoding/json"
	"time"
)

type ConnectionRole string

const (
	RoleUnclassified ConnectionRole = "unclassified"
	RoleDevice       ConnectionRole = "device"
	RoleDashboard    ConnectionRole = "dashboard"
)

// SentinelDashboardID is the reserved device identity bound by legacy
// dashboard clients that register themselves through device_register.
// Connections bound to it are treated as dashboards, never as devices.
const SentinelDashboardID = "web_dashboard"

type DeviceStatus string

const (
	DeviceConnected    DeviceStatus = "connected"
	DeviceDisconnected DeviceStatus = "disconnected"
)

const AlertLevelWarning = "warning"

// Connection is the registry's view of one WebSocket session.
type Connection struct {
	ID            string         `json:"id"`
	Role          ConnectionRole `json:"role"`
	BoundDeviceID string         `json:"bound_device_id,omitempty"`
	ConnectedAt   time.Time      `json:"connected_at"`
	LastSeenAt    time.Time      `json:"last_seen_at"`
}

// DeviceTelemetry holds self-reported device health. Fields a device did not
// report stay nil and are omitted on the wire.
type DeviceTelemetry struct {
	Battery           *float64 `json:"battery,omitempty"`
	SignalStrengthDbm *float64 `json:"signal_strength,omitempty"`
	FreeHeapBytes     *int64   `json:"free_heap,omitempty"`
}

type Device struct {
	ID          string           `json:"id"`
	Location    string           `json:"location,omitempty"`
	Status      DeviceStatus     `json:"status"`
	ConnectedAt time.Time        `json:"connected_at"`
	LastSeenAt  time.Time        `json:"last_seen_at"`
	Telemetry   *DeviceTelemetry `json:"telemetry,omitempty"`
}

// DeviceSummary is a device plus its most recent record, as sent to
// dashboards and returned by the device list endpoint.
type DeviceSummary struct {
	Device
	Latest *EnrichedRecord `json:"latest,omitempty"`
}

// Enrichment carries the values derived from one accelerometer sample.
type Enrichment struct {
	Magnitude    float64 `json:"magnitude"`
	Intensity    int     `json:"intensity"`
	JmaIntensity float64 `json:"jma_intensity"`
	Pga          float64 `json:"pga"`
	PgaCorrected float64 `json:"pga_corrected"`
}

type AlertAssessment struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Color   string `json:"color"`
}

// ImpactRadius estimates how far shaking of each band reaches, in km.
type ImpactRadius struct {
	Extreme  float64 `json:"extreme"`
	Strong   float64 `json:"strong"`
	Moderate float64 `json:"moderate"`
	Felt     float64 `json:"felt"`
}

// EnrichedRecord is one accepted sensor sample with every derived field
// attached. The client timestamp is kept verbatim, whatever JSON value the
// device sent.
type EnrichedRecord struct {
	DeviceID        string          `json:"device_id"`
	Location        string          `json:"location,omitempty"`
	Ax              float64         `json:"ax"`
	Ay              float64         `json:"ay"`
	Az              float64         `json:"az"`
	Gx              float64         `json:"gx"`
	Gy              float64         `json:"gy"`
	Gz              float64         `json:"gz"`
	ClientTimestamp json.RawMessage `json:"client_timestamp,omitempty"`
	ServerTimestamp time.Time       `json:"server_timestamp"`
	Magnitude       float64         `json:"magnitude"`
	Intensity       int             `json:"intensity"`
	JmaIntensity    float64         `json:"jma_intensity"`
	Pga             float64         `json:"pga"`
	PgaCorrected    float64         `json:"pga_corrected"`
	Classification  string          `json:"classification"`
	AlertLevel      string          `json:"alert_level"`
	AlertMessage    string          `json:"alert_message"`
	AlertColor      string          `json:"alert_color"`
	Energy          float64         `json:"energy"`
	ImpactRadius    ImpactRadius    `json:"impact_radius"`
	IsEarthquake    bool            `json:"is_earthquake"`
}

type Alert struct {
	DeviceID  string    `json:"device_id"`
	Location  string    `json:"location,omitempty"`
	Magnitude float64   `json:"magnitude"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthSnapshot is the hub's self-report, served over REST and pushed to
// dashboards.
type HealthSnapshot struct {
	Connections       int     `json:"connections"`
	Devices           int     `json:"devices"`
	UptimeSeconds     float64 `json:"uptime_seconds"`
	ThroughputPerSec  int64   `json:"throughput_per_second"`
	MemoryUsedPercent float64 `json:"memory_used_percent"`
	CPUPercent        float64 `json:"cpu_percent"`
}

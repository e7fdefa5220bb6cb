package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// HubMetrics aggregates the hub's Prometheus instruments. A nil registry
// disables collection and yields a nil *HubMetrics, which callers must
// nil-check before touching any instrument.
type HubMetrics struct {
	MessagesReceived  *prometheus.CounterVec
	SamplesAccepted   prometheus.Counter
	SamplesRejected   *prometheus.CounterVec
	AlertsTriggered   prometheus.Counter
	BroadcastsSent    *prometheus.CounterVec
	BroadcastDuration prometheus.Histogram
	SnapshotPersists  prometheus.Counter
	Evictions         prometheus.Counter
	ConnectionsActive prometheus.Gauge
	DevicesConnected  prometheus.Gauge
}

func NewHubMetrics(registry *prometheus.Registry) *HubMetrics {
	if registry == nil {
		return nil
	}

	m := &HubMetrics{
		MessagesReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seismic",
			Subsystem: "hub",
			Name:      "messages_received_total",
			Help:      "Inbound WebSocket messages by type.",
		}, []string{"type"}),
		SamplesAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "seismic",
			Subsystem: "hub",
			Name:      "samples_accepted_total",
			Help:      "Sensor samples accepted into the pipeline.",
		}),
		SamplesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seismic",
			Subsystem: "hub",
			Name:      "samples_rejected_total",
			Help:      "Sensor samples dropped before enrichment, by reason.",
		}, []string{"reason"}),
		AlertsTriggered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "seismic",
			Subsystem: "hub",
			Name:      "alerts_triggered_total",
			Help:      "Earthquake alerts raised.",
		}),
		BroadcastsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seismic",
			Subsystem: "hub",
			Name:      "broadcasts_sent_total",
			Help:      "Fan-out rounds by audience.",
		}, []string{"audience"}),
		BroadcastDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "seismic",
			Subsystem: "hub",
			Name:      "broadcast_duration_seconds",
			Help:      "Time spent delivering one fan-out round.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		SnapshotPersists: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "seismic",
			Subsystem: "hub",
			Name:      "snapshot_persists_total",
			Help:      "Snapshot cache writes to the durable store.",
		}),
		Evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "seismic",
			Subsystem: "hub",
			Name:      "evictions_total",
			Help:      "Connections evicted by the liveness monitor.",
		}),
		ConnectionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "seismic",
			Subsystem: "hub",
			Name:      "connections_active",
			Help:      "Currently tracked WebSocket connections.",
		}),
		DevicesConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "seismic",
			Subsystem: "hub",
			Name:      "devices_connected",
			Help:      "Devices currently marked connected.",
		}),
	}

	registry.MustRegister(
		m.MessagesReceived,
		m.SamplesAccepted,
		m.SamplesRejected,
		m.AlertsTriggered,
		m.BroadcastsSent,
		m.BroadcastDuration,
		m.SnapshotPersists,
		m.Evictions,
		m.ConnectionsActive,
		m.DevicesConnected,
	)

	return m
}

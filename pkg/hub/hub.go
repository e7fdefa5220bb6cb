package hub

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/seismic-telemetry-service/pkg/cache"
	"liyu1981.xyz/seismic-telemetry-service/pkg/common"
	"liyu1981.xyz/seismic-telemetry-service/pkg/metric"
	"liyu1981.xyz/seismic-telemetry-service/pkg/models"
	"liyu1981.xyz/seismic-telemetry-service/pkg/seismic"
)

const (
	// HistoryCapacity bounds each device's in-memory history ring.
	HistoryCapacity = 100
	// RecentDataCapacity bounds the global recent-record ring.
	RecentDataCapacity = 100
	// AlertLogCapacity bounds the retained alert log.
	AlertLogCapacity = 10
	// SnapshotCapacity bounds the snapshot cache ring.
	SnapshotCapacity = 1000
	// SnapshotPersistEvery is the accepted-sample cadence between durable
	// snapshot writes.
	SnapshotPersistEvery = 100
)

// Conn is the transport side of one tracked connection. Implementations must
// be safe for concurrent use; the hub sends from multiple goroutines.
type Conn interface {
	ID() string
	SendJSON(v any) error
	Ping() error
	Close() error
	IsOpen() bool
}

type IRegistry interface {
	Register(transport Conn) models.Connection
	SetRole(connID string, role models.ConnectionRole)
	BindDevice(connID string, deviceID string)
	Touch(connID string)
	Remove(connID string)
	Get(connID string) (models.Connection, bool)
	Count() int
	ForEach(fn func(meta models.Connection, transport Conn))
}

type IDirectory interface {
	Upsert(deviceID string, location string) models.Device
	AppendHistory(deviceID string, record models.EnrichedRecord)
	MarkDisconnected(deviceID string)
	UpdateTelemetry(deviceID string, telemetry *models.DeviceTelemetry) bool
	Get(deviceID string) (models.Device, bool)
	History(deviceID string, limit int) []models.EnrichedRecord
	Summaries() []models.DeviceSummary
	Count() int
}

type IIngest interface {
	HandleFrame(transport Conn, frame []byte)
	InjectSample(deviceID string, sample SyntheticSample) (models.EnrichedRecord, error)
}

type IBroadcast interface {
	ToDashboards(payload any)
	ToAll(payload any)
}

type ISnapshot interface {
	Append(record models.EnrichedRecord)
	LoadInitial()
	PersistNow() error
	Query(from, to time.Time) []models.EnrichedRecord
	Clear() (backupRef string, err error)
	Len() int
}

type IScorer interface {
	Enrich(ax, ay, az float64) models.Enrichment
	Classify(magnitude float64) string
	AssessAlert(magnitude float64, intensity int) models.AlertAssessment
	IsEarthquake(magnitude float64) bool
	Energy(magnitude float64) float64
	EstimateImpactRadius(magnitude float64) models.ImpactRadius
}

type trackedConn struct {
	meta      models.Connection
	transport Conn
}

type deviceEntry struct {
	device  models.Device
	history *common.Ring[models.EnrichedRecord]
}

// Hub owns every piece of in-memory state and fans work out to its services.
// One mutex guards the maps and rings; critical sections stay short and all
// transport sends happen outside of it.
type Hub struct {
	Store   *cache.Store
	Metrics *metric.HubMetrics

	Registry  IRegistry
	Directory IDirectory
	Ingest    IIngest
	Broadcast IBroadcast
	Snapshot  ISnapshot
	Scorer    IScorer

	mu      sync.Mutex
	conns   map[string]*trackedConn
	devices map[string]*deviceEntry

	recent    *common.Ring[models.EnrichedRecord]
	alertLog  *common.Ring[models.Alert]
	snapRing  *common.Ring[models.EnrichedRecord]
	snapCount int

	startedAt time.Time
	accepted  atomic.Int64
	lastRate  atomic.Int64
}

type Config struct {
	Store          *cache.Store
	Metrics        *metric.HubMetrics
	QuakeThreshold float64
}

func New(cfg Config) *Hub {
	store := cfg.Store
	if store == nil {
		store = cache.GetStore(cache.UseMemorySnapshot())
	}

	h := &Hub{
		Store:     store,
		Metrics:   cfg.Metrics,
		conns:     make(map[string]*trackedConn),
		devices:   make(map[string]*deviceEntry),
		recent:    common.NewRing[models.EnrichedRecord](RecentDataCapacity),
		alertLog:  common.NewRing[models.Alert](AlertLogCapacity),
		snapRing:  common.NewRing[models.EnrichedRecord](SnapshotCapacity),
		startedAt: time.Now(),
	}

	return h.WithServices(ServiceOpts{
		Registry:  h.GetIRegistry(),
		Directory: h.GetIDirectory(),
		Ingest:    h.GetIIngest(),
		Broadcast: h.GetIBroadcast(),
		Snapshot:  h.GetISnapshot(),
		Scorer:    seismic.NewScorer(cfg.QuakeThreshold),
	})
}

type ServiceOpts struct {
	Registry  IRegistry
	Directory IDirectory
	Ingest    IIngest
	Broadcast IBroadcast
	Snapshot  ISnapshot
	Scorer    IScorer
}

func (h *Hub) WithServices(opts ServiceOpts) *Hub {
	if opts.Registry != nil {
		h.Registry = opts.Registry
	}
	if opts.Directory != nil {
		h.Directory = opts.Directory
	}
	if opts.Ingest != nil {
		h.Ingest = opts.Ingest
	}
	if opts.Broadcast != nil {
		h.Broadcast = opts.Broadcast
	}
	if opts.Snapshot != nil {
		h.Snapshot = opts.Snapshot
	}
	if opts.Scorer != nil {
		h.Scorer = opts.Scorer
	}
	return h
}

// RecentData returns the newest accepted records, oldest first.
func (h *Hub) RecentData() []models.EnrichedRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.recent.Items()
}

func (h *Hub) appendRecent(record models.EnrichedRecord) {
	h.mu.Lock()
	h.recent.Push(record)
	h.mu.Unlock()
}

// RecentAlerts returns the retained alert log, oldest first.
func (h *Hub) RecentAlerts() []models.Alert {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.alertLog.Items()
}

// HandleDisconnect tears down registry and directory state for a connection
// whose transport is gone. Safe to call more than once.
func (h *Hub) HandleDisconnect(connID string) {
	meta, ok := h.Registry.Get(connID)
	if !ok {
		return
	}
	h.Registry.Remove(connID)
	if meta.BoundDeviceID != "" {
		h.Directory.MarkDisconnected(meta.BoundDeviceID)
		h.Broadcast.ToDashboards(models.DeviceStatusEvent{
			Type:      models.MsgDeviceStatus,
			DeviceID:  meta.BoundDeviceID,
			Status:    models.DeviceDisconnected,
			Timestamp: time.Now(),
		})
	}
}

// Shutdown announces the stop to every client, persists the snapshot buffer
// and closes all transports.
func (h *Hub) Shutdown() {
	logger := common.GetLogger()

	h.Broadcast.ToAll(models.ServerShutdownEvent{
		Type:      models.MsgServerShutdown,
		Message:   "server is shutting down",
		Timestamp: time.Now(),
	})

	if err := h.Snapshot.PersistNow(); err != nil {
		logger.Error("Final snapshot persist failed", zap.Error(err))
	}

	h.Registry.ForEach(func(meta models.Connection, transport Conn) {
		_ = transport.Close()
	})
}

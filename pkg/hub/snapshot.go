package hub

import (
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/seismic-telemetry-service/pkg/common"
	"liyu1981.xyz/seismic-telemetry-service/pkg/models"
)

func (h *Hub) snapshotLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameHubCore,
		zap.String(common.LoggerFieldHubCategory, common.LoggerCategorySnapshot),
	)
}

// snapshotAppend buffers one record and persists the whole buffer on the
// fixed cadence, or immediately when the record is earthquake flagged. The
// write runs outside the hub lock against a copy; when two persists race,
// the later whole-file write wins, which a best-effort cache can live with.
func (h *Hub) snapshotAppend(record models.EnrichedRecord) {
	h.mu.Lock()
	h.snapRing.Push(record)
	h.snapCount++
	persist := record.IsEarthquake || h.snapCount%SnapshotPersistEvery == 0
	var items []models.EnrichedRecord
	if persist {
		items = h.snapRing.Items()
	}
	h.mu.Unlock()

	if persist {
		_ = h.persistRecords(items)
	}
}

// persistRecords writes the given buffer copy. Failures are logged and
// reported, never escalated; the pipeline keeps running without the cache.
func (h *Hub) persistRecords(items []models.EnrichedRecord) error {
	logger := h.snapshotLogger()
	if err := h.Store.Persist(items); err != nil {
		logger.Error("Snapshot persist failed", zap.Error(err))
		return err
	}
	logger.Info("Snapshot persisted", zap.Int("records", len(items)))
	if h.Metrics != nil {
		h.Metrics.SnapshotPersists.Inc()
	}
	return nil
}

// snapshotLoadInitial seeds the ring from the durable store at startup. A
// missing or unparseable artifact just means starting empty.
func (h *Hub) snapshotLoadInitial() {
	logger := h.snapshotLogger()

	records, err := h.Store.Load()
	if err != nil {
		logger.Warn("Snapshot load failed, starting empty", zap.Error(err))
		return
	}
	if len(records) == 0 {
		return
	}

	h.mu.Lock()
	for _, record := range records {
		h.snapRing.Push(record)
	}
	h.mu.Unlock()

	logger.Info("Snapshot loaded", zap.Int("records", len(records)))
}

func (h *Hub) snapshotPersistNow() error {
	h.mu.Lock()
	items := h.snapRing.Items()
	h.mu.Unlock()
	return h.persistRecords(items)
}

// snapshotQuery filters the buffer by server timestamp. Zero bounds are
// open ends.
func (h *Hub) snapshotQuery(from, to time.Time) []models.EnrichedRecord {
	h.mu.Lock()
	items := h.snapRing.Items()
	h.mu.Unlock()

	filtered := make([]models.EnrichedRecord, 0, len(items))
	for _, record := range items {
		if !from.IsZero() && record.ServerTimestamp.Before(from) {
			continue
		}
		if !to.IsZero() && record.ServerTimestamp.After(to) {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

// snapshotClear empties the ring, backs the pre-clear contents up under a
// timestamped reference and removes the primary artifact.
func (h *Hub) snapshotClear() (string, error) {
	h.mu.Lock()
	items := h.snapRing.Items()
	h.snapRing.Reset()
	h.snapCount = 0
	h.mu.Unlock()

	ref, err := h.Store.Clear(items)
	if err != nil {
		h.snapshotLogger().Error("Snapshot clear failed", zap.Error(err))
		return "", err
	}
	h.snapshotLogger().Info("Snapshot cache cleared",
		zap.Int("records", len(items)),
		zap.String("backup", ref),
	)
	return ref, nil
}

func (h *Hub) snapshotLen() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapRing.Len()
}

type ISnapshotImpl struct {
	hub *Hub
}

func (is *ISnapshotImpl) Append(record models.EnrichedRecord) {
	is.hub.snapshotAppend(record)
}

func (is *ISnapshotImpl) LoadInitial() {
	is.hub.snapshotLoadInitial()
}

func (is *ISnapshotImpl) PersistNow() error {
	return is.hub.snapshotPersistNow()
}

func (is *ISnapshotImpl) Query(from, to time.Time) []models.EnrichedRecord {
	return is.hub.snapshotQuery(from, to)
}

func (is *ISnapshotImpl) Clear() (string, error) {
	return is.hub.snapshotClear()
}

func (is *ISnapshotImpl) Len() int {
	return is.hub.snapshotLen()
}

func (h *Hub) GetISnapshot() ISnapshot {
	return &ISnapshotImpl{hub: h}
}

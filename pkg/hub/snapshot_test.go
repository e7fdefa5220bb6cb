package hub

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/seismic-telemetry-service/pkg/cache"
	"liyu1981.xyz/seismic-telemetry-service/pkg/common"
	"liyu1981.xyz/seismic-telemetry-service/pkg/models"
	_ "liyu1981.xyz/seismic-telemetry-service/pkg/testing"
)

func TestSnapshotPersistCadence(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, hubObj, _, _, _ := GetMockHubWithMemoryStore(t, false, false, false)
	defer ctrl.Finish()

	deviceID := uuid.NewString()
	for i := 0; i < SnapshotPersistEvery-1; i++ {
		hubObj.Snapshot.Append(makeRecord(deviceID, time.Now(), float64(i)))
	}

	stored, err := hubObj.Store.Load()
	require.NoError(t, err)
	assert.Empty(t, stored, "nothing should be persisted before the cadence point")

	hubObj.Snapshot.Append(makeRecord(deviceID, time.Now(), 99))

	stored, err = hubObj.Store.Load()
	require.NoError(t, err)
	assert.Len(t, stored, SnapshotPersistEvery)
}

func TestEarthquakeRecordPersistsImmediately(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, hubObj, _, _, _ := GetMockHubWithMemoryStore(t, false, false, false)
	defer ctrl.Finish()

	record := makeRecord(uuid.NewString(), time.Now(), 4.5)
	record.IsEarthquake = true
	hubObj.Snapshot.Append(record)

	stored, err := hubObj.Store.Load()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, record.DeviceID, stored[0].DeviceID)
	assert.True(t, stored[0].IsEarthquake)
}

func TestSnapshotRingIsBounded(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, hubObj, _, _, _ := GetMockHubWithMemoryStore(t, false, false, false)
	defer ctrl.Finish()

	deviceID := uuid.NewString()
	for i := 0; i < SnapshotCapacity+50; i++ {
		hubObj.Snapshot.Append(makeRecord(deviceID, time.Now(), float64(i)))
	}

	assert.Equal(t, SnapshotCapacity, hubObj.Snapshot.Len())

	// oldest records were evicted, so the first survivor is number 50
	items := hubObj.Snapshot.Query(time.Time{}, time.Time{})
	require.Len(t, items, SnapshotCapacity)
	assert.Equal(t, float64(50), items[0].Magnitude)
}

func TestLoadInitialSeedsRing(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, hubObj, _, _, _ := GetMockHubWithMemoryStore(t, false, false, false)
	defer ctrl.Finish()

	deviceID := uuid.NewString()
	seeded := []models.EnrichedRecord{
		makeRecord(deviceID, time.Unix(1724580000, 0).UTC(), 1.0),
		makeRecord(deviceID, time.Unix(1724580060, 0).UTC(), 2.0),
		makeRecord(deviceID, time.Unix(1724580120, 0).UTC(), 3.0),
	}
	require.NoError(t, hubObj.Store.Persist(seeded))

	hubObj.Snapshot.LoadInitial()

	assert.Equal(t, 3, hubObj.Snapshot.Len())
	items := hubObj.Snapshot.Query(time.Time{}, time.Time{})
	require.Len(t, items, 3)
	assert.Equal(t, 1.0, items[0].Magnitude)
	assert.Equal(t, 3.0, items[2].Magnitude)
}

func TestLoadInitialWithCorruptArtifactStartsEmpty(t *testing.T) {
	common.SetTestLoggerNop()

	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte("{ not json"), 0o644))

	hubObj := New(Config{Store: cache.GetStore(cache.UseSnapshotFileAt(path))})
	hubObj.Snapshot.LoadInitial()

	assert.Equal(t, 0, hubObj.Snapshot.Len())
}

func TestSnapshotQueryByTimeRange(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, hubObj, _, _, _ := GetMockHubWithMemoryStore(t, false, false, false)
	defer ctrl.Finish()

	deviceID := uuid.NewString()
	t1 := time.Unix(1724580000, 0).UTC()
	t2 := t1.Add(time.Minute)
	t3 := t2.Add(time.Minute)
	hubObj.Snapshot.Append(makeRecord(deviceID, t1, 1.0))
	hubObj.Snapshot.Append(makeRecord(deviceID, t2, 2.0))
	hubObj.Snapshot.Append(makeRecord(deviceID, t3, 3.0))

	{
		// zero bounds are open ends
		items := hubObj.Snapshot.Query(time.Time{}, time.Time{})
		assert.Len(t, items, 3)
	}

	{
		items := hubObj.Snapshot.Query(t2, time.Time{})
		require.Len(t, items, 2)
		assert.Equal(t, 2.0, items[0].Magnitude)
	}

	{
		items := hubObj.Snapshot.Query(time.Time{}, t2)
		require.Len(t, items, 2)
		assert.Equal(t, 1.0, items[0].Magnitude)
	}

	{
		items := hubObj.Snapshot.Query(t1.Add(time.Second), t3.Add(-time.Second))
		require.Len(t, items, 1)
		assert.Equal(t, 2.0, items[0].Magnitude)
	}
}

func TestSnapshotClearBacksUpAndEmpties(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, hubObj, _, _, _ := GetMockHubWithMemoryStore(t, false, false, false)
	defer ctrl.Finish()

	deviceID := uuid.NewString()
	for i := range 5 {
		hubObj.Snapshot.Append(makeRecord(deviceID, time.Now(), float64(i)))
	}
	require.NoError(t, hubObj.Snapshot.PersistNow())

	ref, err := hubObj.Snapshot.Clear()
	require.NoError(t, err)
	assert.NotEmpty(t, ref)
	assert.Equal(t, 0, hubObj.Snapshot.Len())

	stored, err := hubObj.Store.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)

	// the persist cadence counter restarts after a clear
	for i := 0; i < SnapshotPersistEvery-1; i++ {
		hubObj.Snapshot.Append(makeRecord(deviceID, time.Now(), float64(i)))
	}
	stored, err = hubObj.Store.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)

	hubObj.Snapshot.Append(makeRecord(deviceID, time.Now(), 99))
	stored, err = hubObj.Store.Load()
	require.NoError(t, err)
	assert.Len(t, stored, SnapshotPersistEvery)
}

package hub

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/seismic-telemetry-service/pkg/common"
	"liyu1981.xyz/seismic-telemetry-service/pkg/models"
	_ "liyu1981.xyz/seismic-telemetry-service/pkg/testing"
)

func TestUpsertCreatesAndRefreshes(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, hubObj, _, _, _ := GetMockHubWithMemoryStore(t, false, false, false)
	defer ctrl.Finish()

	deviceID := uuid.NewString()

	created := hubObj.Directory.Upsert(deviceID, "Lab")
	assert.Equal(t, deviceID, created.ID)
	assert.Equal(t, "Lab", created.Location)
	assert.Equal(t, models.DeviceConnected, created.Status)
	assert.Equal(t, 1, hubObj.Directory.Count())

	// re-registering moves the device, does not duplicate it
	moved := hubObj.Directory.Upsert(deviceID, "Roof")
	assert.Equal(t, "Roof", moved.Location)
	assert.Equal(t, 1, hubObj.Directory.Count())
}

func TestUpsertPreservesHistory(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, hubObj, _, _, _ := GetMockHubWithMemoryStore(t, false, false, false)
	defer ctrl.Finish()

	deviceID := uuid.NewString()
	hubObj.Directory.Upsert(deviceID, "Lab")

	for i := range 5 {
		hubObj.Directory.AppendHistory(deviceID, makeRecord(deviceID, time.Now(), float64(i)))
	}
	require.Len(t, hubObj.Directory.History(deviceID, 0), 5)

	hubObj.Directory.Upsert(deviceID, "Lab")
	assert.Len(t, hubObj.Directory.History(deviceID, 0), 5)
}

func TestUpsertAfterDisconnectRefreshesConnectedAt(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, hubObj, _, _, _ := GetMockHubWithMemoryStore(t, false, false, false)
	defer ctrl.Finish()

	deviceID := uuid.NewString()
	first := hubObj.Directory.Upsert(deviceID, "Lab")

	// a reconnect while still connected keeps the original ConnectedAt
	time.Sleep(5 * time.Millisecond)
	still := hubObj.Directory.Upsert(deviceID, "Lab")
	assert.Equal(t, first.ConnectedAt, still.ConnectedAt)

	hubObj.Directory.MarkDisconnected(deviceID)
	device, ok := hubObj.Directory.Get(deviceID)
	require.True(t, ok)
	assert.Equal(t, models.DeviceDisconnected, device.Status)

	time.Sleep(5 * time.Millisecond)
	back := hubObj.Directory.Upsert(deviceID, "Lab")
	assert.Equal(t, models.DeviceConnected, back.Status)
	assert.True(t, back.ConnectedAt.After(first.ConnectedAt))
}

func TestAppendHistoryUnknownDeviceIsNoop(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, hubObj, _, _, _ := GetMockHubWithMemoryStore(t, false, false, false)
	defer ctrl.Finish()

	deviceID := uuid.NewString()
	hubObj.Directory.AppendHistory(deviceID, makeRecord(deviceID, time.Now(), 1.0))

	assert.Equal(t, 0, hubObj.Directory.Count())
	assert.Nil(t, hubObj.Directory.History(deviceID, 0))
}

func TestHistoryBoundedAndLimited(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, hubObj, _, _, _ := GetMockHubWithMemoryStore(t, false, false, false)
	defer ctrl.Finish()

	deviceID := uuid.NewString()
	hubObj.Directory.Upsert(deviceID, "Lab")

	total := HistoryCapacity + rand.Intn(50) + 1
	for i := range total {
		hubObj.Directory.AppendHistory(deviceID, makeRecord(deviceID, time.Now(), float64(i)))
	}

	full := hubObj.Directory.History(deviceID, 0)
	require.Len(t, full, HistoryCapacity)

	// oldest entries were evicted, order is oldest first
	assert.Equal(t, float64(total-HistoryCapacity), full[0].Magnitude)
	assert.Equal(t, float64(total-1), full[len(full)-1].Magnitude)

	limited := hubObj.Directory.History(deviceID, 10)
	require.Len(t, limited, 10)
	assert.Equal(t, float64(total-10), limited[0].Magnitude)
	assert.Equal(t, float64(total-1), limited[9].Magnitude)

	// a limit larger than the ring returns everything
	assert.Len(t, hubObj.Directory.History(deviceID, HistoryCapacity*2), HistoryCapacity)
}

func TestUpdateTelemetryReplacesWholesale(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, hubObj, _, _, _ := GetMockHubWithMemoryStore(t, false, false, false)
	defer ctrl.Finish()

	deviceID := uuid.NewString()
	hubObj.Directory.Upsert(deviceID, "Lab")

	battery := 87.5
	signal := -60.0
	ok := hubObj.Directory.UpdateTelemetry(deviceID, &models.DeviceTelemetry{
		Battery:           &battery,
		SignalStrengthDbm: &signal,
	})
	require.True(t, ok)

	device, found := hubObj.Directory.Get(deviceID)
	require.True(t, found)
	require.NotNil(t, device.Telemetry)
	assert.Equal(t, 87.5, *device.Telemetry.Battery)
	assert.Equal(t, -60.0, *device.Telemetry.SignalStrengthDbm)

	// a later report without signal strength drops the field
	lower := 80.0
	ok = hubObj.Directory.UpdateTelemetry(deviceID, &models.DeviceTelemetry{Battery: &lower})
	require.True(t, ok)

	device, found = hubObj.Directory.Get(deviceID)
	require.True(t, found)
	require.NotNil(t, device.Telemetry)
	assert.Equal(t, 80.0, *device.Telemetry.Battery)
	assert.Nil(t, device.Telemetry.SignalStrengthDbm)

	assert.False(t, hubObj.Directory.UpdateTelemetry(uuid.NewString(), &models.DeviceTelemetry{}))
}

func TestSummariesSortedWithLatest(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, hubObj, _, _, _ := GetMockHubWithMemoryStore(t, false, false, false)
	defer ctrl.Finish()

	hubObj.Directory.Upsert("seismo-b", "Roof")
	hubObj.Directory.Upsert("seismo-a", "Lab")
	hubObj.Directory.Upsert("seismo-c", "Basement")

	hubObj.Directory.AppendHistory("seismo-a", makeRecord("seismo-a", time.Now(), 1.0))
	hubObj.Directory.AppendHistory("seismo-a", makeRecord("seismo-a", time.Now(), 2.0))

	summaries := hubObj.Directory.Summaries()
	require.Len(t, summaries, 3)
	assert.Equal(t, "seismo-a", summaries[0].ID)
	assert.Equal(t, "seismo-b", summaries[1].ID)
	assert.Equal(t, "seismo-c", summaries[2].ID)

	require.NotNil(t, summaries[0].Latest)
	assert.Equal(t, 2.0, summaries[0].Latest.Magnitude)
	assert.Nil(t, summaries[1].Latest)
	assert.Nil(t, summaries[2].Latest)
}

func TestMarkDisconnectedUnknownDeviceIsNoop(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, hubObj, _, _, _ := GetMockHubWithMemoryStore(t, false, false, false)
	defer ctrl.Finish()

	hubObj.Directory.MarkDisconnected(uuid.NewString())
	assert.Equal(t, 0, hubObj.Directory.Count())
}

package hub

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/seismic-telemetry-service/pkg/common"
	"liyu1981.xyz/seismic-telemetry-service/pkg/models"
	_ "liyu1981.xyz/seismic-telemetry-service/pkg/testing"
)

// ages a tracked connection so the next sweep sees it as idle
func backdateConn(h *Hub, connID string, to time.Time) {
	h.mu.Lock()
	if entry, ok := h.conns[connID]; ok {
		entry.meta.LastSeenAt = to
	}
	h.mu.Unlock()
}

func TestSweepStaleEvictsIdleConnections(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, hubObj, _, _, _ := GetMockHubWithMemoryStore(t, false, false, false)
	defer ctrl.Finish()

	stale := newFakeConn(uuid.NewString())
	fresh := newFakeConn(uuid.NewString())
	hubObj.Registry.Register(stale)
	hubObj.Registry.Register(fresh)

	now := time.Now()
	maxIdle := 2 * DefaultLivenessPeriod
	backdateConn(hubObj, stale.ID(), now.Add(-maxIdle-time.Second))

	hubObj.sweepStale(now, maxIdle)

	assert.True(t, stale.wasClosed())
	_, ok := hubObj.Registry.Get(stale.ID())
	assert.False(t, ok)

	assert.False(t, fresh.wasClosed())
	_, ok = hubObj.Registry.Get(fresh.ID())
	assert.True(t, ok)
	assert.Equal(t, 1, fresh.pingCount())
	assert.Equal(t, 0, stale.pingCount())
}

func TestSweepStaleBroadcastsDisconnectForBoundDevice(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, hubObj, _, _, _ := GetMockHubWithMemoryStore(t, false, false, false)
	defer ctrl.Finish()

	dashboard := newFakeConn(uuid.NewString())
	hubObj.Registry.Register(dashboard)
	hubObj.Registry.SetRole(dashboard.ID(), models.RoleDashboard)

	deviceID := uuid.NewString()
	hubObj.Directory.Upsert(deviceID, "Lab")

	stale := newFakeConn(uuid.NewString())
	hubObj.Registry.Register(stale)
	hubObj.Registry.SetRole(stale.ID(), models.RoleDevice)
	hubObj.Registry.BindDevice(stale.ID(), deviceID)

	now := time.Now()
	maxIdle := time.Minute
	backdateConn(hubObj, stale.ID(), now.Add(-2*maxIdle))

	hubObj.sweepStale(now, maxIdle)

	device, ok := hubObj.Directory.Get(deviceID)
	require.True(t, ok)
	assert.Equal(t, models.DeviceDisconnected, device.Status)

	observed := dashboard.sentMessages()
	require.Len(t, observed, 1)
	status, ok := observed[0].(models.DeviceStatusEvent)
	require.True(t, ok)
	assert.Equal(t, models.MsgDeviceStatus, status.Type)
	assert.Equal(t, deviceID, status.DeviceID)
	assert.Equal(t, models.DeviceDisconnected, status.Status)

	// a second sweep finds nothing left to evict
	hubObj.sweepStale(now, maxIdle)
	assert.Len(t, dashboard.sentMessages(), 1)
}

func TestSweepStaleSkipsPingForClosedConnections(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, hubObj, _, _, _ := GetMockHubWithMemoryStore(t, false, false, false)
	defer ctrl.Finish()

	conn := newFakeConn(uuid.NewString())
	hubObj.Registry.Register(conn)
	require.NoError(t, conn.Close())

	// fresh but already closed: not evicted by age, not pinged either
	hubObj.sweepStale(time.Now(), time.Minute)

	assert.Equal(t, 0, conn.pingCount())
	_, ok := hubObj.Registry.Get(conn.ID())
	assert.True(t, ok)
}

func TestStartLivenessMonitorStopsWithContext(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, hubObj, _, _, _ := GetMockHubWithMemoryStore(t, false, false, false)
	defer ctrl.Finish()

	conn := newFakeConn(uuid.NewString())
	hubObj.Registry.Register(conn)

	ctx, cancel := context.WithCancel(context.Background())
	hubObj.StartLivenessMonitor(ctx, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		return conn.pingCount() >= 1
	}, time.Second, 5*time.Millisecond)

	cancel()
}

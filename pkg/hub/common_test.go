package hub

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"liyu1981.xyz/seismic-telemetry-service/pkg/cache"
	"liyu1981.xyz/seismic-telemetry-service/pkg/models"
)

func GetMockHubWithMemoryStore(t *testing.T, useMockIBroadcast, useMockISnapshot, useMockIScorer bool) (
	*gomock.Controller,
	*Hub,
	*MockIBroadcast,
	*MockISnapshot,
	*MockIScorer,
) {
	ctrl := gomock.NewController(t)

	mockIBroadcast := NewMockIBroadcast(ctrl)
	mockISnapshot := NewMockISnapshot(ctrl)
	mockIScorer := NewMockIScorer(ctrl)
	store := cache.GetStore(cache.UseMemorySnapshot())
	hubInstance := New(Config{Store: store})

	broadcastService := hubInstance.GetIBroadcast()
	if useMockIBroadcast {
		broadcastService = mockIBroadcast
	}

	snapshotService := hubInstance.GetISnapshot()
	if useMockISnapshot {
		snapshotService = mockISnapshot
	}

	scorerService := hubInstance.Scorer
	if useMockIScorer {
		scorerService = mockIScorer
	}

	hubInstance.WithServices(ServiceOpts{
		Broadcast: broadcastService,
		Snapshot:  snapshotService,
		Scorer:    scorerService,
	})

	return ctrl, hubInstance, mockIBroadcast, mockISnapshot, mockIScorer
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

// fakeConn is an in-memory transport standing in for a websocket peer. It
// records everything sent through it.
type fakeConn struct {
	id      string
	sendErr error

	mu     sync.Mutex
	sent   []any
	pings  int
	open   bool
	closed bool
}

func newFakeConn(id string) *fakeConn {
	return &fakeConn{id: id, open: true}
}

func (c *fakeConn) ID() string { return c.id }

func (c *fakeConn) SendJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open {
		return errors.New("connection closed")
	}
	if c.sendErr != nil {
		return c.sendErr
	}
	c.sent = append(c.sent, v)
	return nil
}

func (c *fakeConn) Ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pings++
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = false
	c.closed = true
	return nil
}

func (c *fakeConn) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

func (c *fakeConn) sentMessages() []any {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]any, len(c.sent))
	copy(out, c.sent)
	return out
}

func (c *fakeConn) pingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pings
}

func (c *fakeConn) wasClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// frame marshals an arbitrary payload the way a client would put it on the
// wire.
func frame(t *testing.T, payload any) []byte {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal frame: %v", err)
	}
	return data
}

func makeRecord(deviceID string, at time.Time, magnitude float64) models.EnrichedRecord {
	return models.EnrichedRecord{
		DeviceID:        deviceID,
		Ax:              0.1,
		Ay:              0.2,
		Az:              0.3,
		ServerTimestamp: at,
		Magnitude:       magnitude,
	}
}

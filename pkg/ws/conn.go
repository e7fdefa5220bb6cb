package ws

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// Conn adapts one gorilla connection to the hub's transport interface.
// gorilla/websocket panics on concurrent writes, so every outbound frame
// goes through the write mutex.
type Conn struct {
	id   string
	sock *websocket.Conn

	writeMu   sync.Mutex
	closed    atomic.Bool
	closeOnce sync.Once
}

func newConn(sock *websocket.Conn) *Conn {
	return &Conn{
		id:   fmt.Sprintf("%s-%d", sock.RemoteAddr().String(), time.Now().UnixMilli()),
		sock: sock,
	}
}

func (c *Conn) ID() string {
	return c.id
}

func (c *Conn) SendJSON(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.sock.SetWriteDeadline(time.Now().Add(writeWait))
	return c.sock.WriteJSON(v)
}

func (c *Conn) Ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.sock.SetWriteDeadline(time.Now().Add(writeWait))
	return c.sock.WriteMessage(websocket.PingMessage, nil)
}

// Close is safe to call from the read pump and the hub at the same time.
func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		err = c.sock.Close()
	})
	return err
}

func (c *Conn) IsOpen() bool {
	return !c.closed.Load()
}

// Package ws upgrades HTTP requests into hub connections and pumps inbound
// frames into the ingestion pipeline.
package ws

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"liyu1981.xyz/seismic-telemetry-service/pkg/common"
	"liyu1981.xyz/seismic-telemetry-service/pkg/hub"
	"liyu1981.xyz/seismic-telemetry-service/pkg/models"
)

type Gateway struct {
	Hub *hub.Hub

	upgrader websocket.Upgrader
	readWait time.Duration
}

// NewGateway wires the upgrade endpoint to a hub. The read deadline is
// derived from the liveness period so the transport outlives at least one
// missed sweep; eviction stays the liveness monitor's call.
func NewGateway(h *hub.Hub, livenessPeriod time.Duration) *Gateway {
	if livenessPeriod <= 0 {
		livenessPeriod = hub.DefaultLivenessPeriod
	}
	return &Gateway{
		Hub: h,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(_ *http.Request) bool { return true },
		},
		readWait: 3 * livenessPeriod,
	}
}

func (g *Gateway) logger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameWsGateway)
}

// Handle upgrades one request, registers the connection and starts its read
// pump. The welcome frame carries the connection id clients echo nowhere;
// it only helps correlating logs.
func (g *Gateway) Handle(c *gin.Context) {
	sock, err := g.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		g.logger().Warn("WebSocket upgrade failed",
			zap.String("remote", c.Request.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	conn := newConn(sock)
	meta := g.Hub.Registry.Register(conn)

	sock.SetPongHandler(func(string) error {
		g.Hub.Registry.Touch(conn.ID())
		return sock.SetReadDeadline(time.Now().Add(g.readWait))
	})

	_ = conn.SendJSON(models.ConnectionEstablishedEvent{
		Type:         models.MsgConnectionEstablished,
		ConnectionID: meta.ID,
		Message:      "connected to seismic telemetry hub",
		ServerTime:   time.Now(),
	})

	go g.readPump(conn, sock)
}

func (g *Gateway) readPump(conn *Conn, sock *websocket.Conn) {
	defer func() {
		_ = conn.Close()
		g.Hub.HandleDisconnect(conn.ID())
	}()

	for {
		_ = sock.SetReadDeadline(time.Now().Add(g.readWait))
		msgType, data, err := sock.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				g.logger().Debug("Connection closed unexpectedly",
					zap.String("connection_id", conn.ID()),
					zap.Error(err),
				)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}
		g.Hub.Ingest.HandleFrame(conn, data)
	}
}

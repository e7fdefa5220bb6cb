package hub

import (
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/seismic-telemetry-service/pkg/common"
	"liyu1981.xyz/seismic-telemetry-service/pkg/models"
)

func (h *Hub) registryLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameHubCore,
		zap.String(common.LoggerFieldHubCategory, common.LoggerCategoryRegistry),
	)
}

func (h *Hub) registerConn(transport Conn) models.Connection {
	now := time.Now()
	entry := &trackedConn{
		meta: models.Connection{
			ID:          transport.ID(),
			Role:        models.RoleUnclassified,
			ConnectedAt: now,
			LastSeenAt:  now,
		},
		transport: transport,
	}

	h.mu.Lock()
	h.conns[entry.meta.ID] = entry
	count := len(h.conns)
	meta := entry.meta
	h.mu.Unlock()

	if h.Metrics != nil {
		h.Metrics.ConnectionsActive.Set(float64(count))
	}
	h.registryLogger().Info("Connection registered",
		zap.String("connection_id", meta.ID),
		zap.Int("connections", count),
	)
	return meta
}

func (h *Hub) setConnRole(connID string, role models.ConnectionRole) {
	h.mu.Lock()
	if entry, ok := h.conns[connID]; ok {
		entry.meta.Role = role
	}
	h.mu.Unlock()
}

func (h *Hub) bindConnDevice(connID string, deviceID string) {
	h.mu.Lock()
	if entry, ok := h.conns[connID]; ok {
		entry.meta.BoundDeviceID = deviceID
	}
	h.mu.Unlock()
}

func (h *Hub) touchConn(connID string) {
	h.mu.Lock()
	if entry, ok := h.conns[connID]; ok {
		entry.meta.LastSeenAt = time.Now()
	}
	h.mu.Unlock()
}

func (h *Hub) removeConn(connID string) {
	h.mu.Lock()
	_, ok := h.conns[connID]
	if !ok {
		h.mu.Unlock()
		return
	}
	delete(h.conns, connID)
	count := len(h.conns)
	h.mu.Unlock()

	if h.Metrics != nil {
		h.Metrics.ConnectionsActive.Set(float64(count))
	}
	h.registryLogger().Info("Connection removed",
		zap.String("connection_id", connID),
		zap.Int("connections", count),
	)
}

func (h *Hub) getConn(connID string) (models.Connection, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	entry, ok := h.conns[connID]
	if !ok {
		return models.Connection{}, false
	}
	return entry.meta, true
}

func (h *Hub) connCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// forEachConn snapshots the registry under the lock, then invokes fn without
// holding it, so callbacks may send on transports or call back into the hub.
func (h *Hub) forEachConn(fn func(meta models.Connection, transport Conn)) {
	h.mu.Lock()
	entries := make([]trackedConn, 0, len(h.conns))
	for _, entry := range h.conns {
		entries = append(entries, *entry)
	}
	h.mu.Unlock()

	for _, entry := range entries {
		fn(entry.meta, entry.transport)
	}
}

type IRegistryImpl struct {
	hub *Hub
}

func (ir *IRegistryImpl) Register(transport Conn) models.Connection {
	return ir.hub.registerConn(transport)
}

func (ir *IRegistryImpl) SetRole(connID string, role models.ConnectionRole) {
	ir.hub.setConnRole(connID, role)
}

func (ir *IRegistryImpl) BindDevice(connID string, deviceID string) {
	ir.hub.bindConnDevice(connID, deviceID)
}

func (ir *IRegistryImpl) Touch(connID string) {
	ir.hub.touchConn(connID)
}

func (ir *IRegistryImpl) Remove(connID string) {
	ir.hub.removeConn(connID)
}

func (ir *IRegistryImpl) Get(connID string) (models.Connection, bool) {
	return ir.hub.getConn(connID)
}

func (ir *IRegistryImpl) Count() int {
	return ir.hub.connCount()
}

func (ir *IRegistryImpl) ForEach(fn func(meta models.Connection, transport Conn)) {
	ir.hub.forEachConn(fn)
}

func (h *Hub) GetIRegistry() IRegistry {
	return &IRegistryImpl{hub: h}
}

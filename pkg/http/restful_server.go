package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"liyu1981.xyz/seismic-telemetry-service/pkg/hub"
	"liyu1981.xyz/seismic-telemetry-service/pkg/ws"
)

type RestfulServer struct {
	Server           *gin.Engine
	Hub              *hub.Hub
	Gateway          *ws.Gateway
	RateLimiterStore *hub.RateLimiterStore
	MetricsRegistry  *prometheus.Registry
}

func (rs *RestfulServer) GetLimiter(deviceID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(deviceID)
	}
}

func (rs *RestfulServer) CheckDeviceLimiter(deviceID string) bool {
	limiter := rs.GetLimiter(deviceID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(deviceID string, deviceRate float64, deviceBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(deviceID, rate.Limit(deviceRate), deviceBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	if rs.Gateway != nil {
		rs.Server.GET("/ws", rs.Gateway.Handle)
	}
	if rs.MetricsRegistry != nil {
		rs.Server.GET("/metrics", gin.WrapH(
			promhttp.HandlerFor(rs.MetricsRegistry, promhttp.HandlerOpts{}),
		))
	}

	api := rs.Server.Group("/api")
	{
		api.GET("/health", rs.GetHealth)
		api.GET("/devices", rs.GetDevices)
		api.GET("/alerts", rs.GetAlerts)
		api.GET("/recent", rs.GetRecent)
		api.GET("/cache", rs.GetCache)
		api.POST("/cache/clear", rs.PostCacheClear)

		device := api.Group("/devices/:device_id")
		{
			device.GET("/history", rs.GetDeviceHistory)
			device.POST("/inject", rs.PostInject)
			device.POST("/limiter", rs.PostLimiter)
		}
	}
}

package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"liyu1981.xyz/seismic-telemetry-service/pkg/hub"
)

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, rs.Hub.HealthSnapshot())
}

func (rs *RestfulServer) GetDevices(c *gin.Context) {
	c.JSON(http.StatusOK, rs.Hub.Directory.Summaries())
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, rs.Hub.RecentAlerts())
}

func (rs *RestfulServer) GetRecent(c *gin.Context) {
	c.JSON(http.StatusOK, rs.Hub.RecentData())
}

func (rs *RestfulServer) GetDeviceHistory(c *gin.Context) {
	deviceID := c.Param("device_id")

	if _, ok := rs.Hub.Directory.Get(deviceID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown device"})
		return
	}

	limit := hub.HistoryCapacity
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		if parsed < limit {
			limit = parsed
		}
	}

	c.JSON(http.StatusOK, rs.Hub.Directory.History(deviceID, limit))
}

func (rs *RestfulServer) GetCache(c *gin.Context) {
	var from, to time.Time

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be RFC3339"})
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be RFC3339"})
			return
		}
		to = parsed
	}

	c.JSON(http.StatusOK, rs.Hub.Snapshot.Query(from, to))
}

func (rs *RestfulServer) PostCacheClear(c *gin.Context) {
	backup, err := rs.Hub.Snapshot.Clear()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"backup": backup})
}

type InjectRequest struct {
	Ax float64 `json:"ax"`
	Ay float64 `json:"ay"`
	Az float64 `json:"az"`
	Gx float64 `json:"gx"`
	Gy float64 `json:"gy"`
	Gz float64 `json:"gz"`
}

var injectRequestSchema = z.Struct(z.Shape{
	"Ax": z.Float64().Required(),
	"Ay": z.Float64().Required(),
	"Az": z.Float64().Required(),
	"Gx": z.Float64(),
	"Gy": z.Float64(),
	"Gz": z.Float64(),
})

func (rs *RestfulServer) PostInject(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req InjectRequest
	if err := injectRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	record, err := rs.Hub.Ingest.InjectSample(deviceID, hub.SyntheticSample{
		Ax: req.Ax,
		Ay: req.Ay,
		Az: req.Az,
		Gx: req.Gx,
		Gy: req.Gy,
		Gz: req.Gz,
	})
	if err != nil {
		switch {
		case errors.Is(err, hub.ErrUnknownDevice):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, hub.ErrInvalidSample):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, record)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(deviceID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

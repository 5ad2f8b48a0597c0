package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/talenttrek/backend/internal/interfaces/http/dto"
)

// SystemHandler handles health and system information endpoints
type SystemHandler struct {
	BaseHandler
	db          *gorm.DB
	redisClient *redis.Client
	startTime   time.Time
}

// NewSystemHandler creates a new SystemHandler. Both dependencies are
// optional; nil components are skipped in health checks.
func NewSystemHandler(db *gorm.DB, redisClient *redis.Client) *SystemHandler {
	return &SystemHandler{
		db:          db,
		redisClient: redisClient,
		startTime:   time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status     string            `json:"status"`
	Uptime     string            `json:"uptime"`
	Components map[string]string `json:"components,omitempty"`
}

// Health reports service and dependency health. A degraded dependency
// turns the overall status to "degraded" but still returns 200 so load
// balancers keep the instance while it recovers.
func (h *SystemHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:     "ok",
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
		Components: map[string]string{},
	}

	if h.db != nil {
		status := "ok"
		sqlDB, err := h.db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status = "unavailable"
			resp.Status = "degraded"
		}
		resp.Components["database"] = status
	}

	if h.redisClient != nil {
		status := "ok"
		if err := h.redisClient.Ping(c.Request.Context()).Err(); err != nil {
			status = "unavailable"
			resp.Status = "degraded"
		}
		resp.Components["redis"] = status
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// GetSystemInfo returns basic system information including version and uptime
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	info := SystemInfoResponse{
		Name:      "TalentTrek API",
		Version:   "1.0.0",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(info))
}

// PingResponse represents the ping response
type PingResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Ping is a simple liveness endpoint
func (h *SystemHandler) Ping(c *gin.Context) {
	response := PingResponse{
		Message:   "pong",
		Timestamp: time.Now().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

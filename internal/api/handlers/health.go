package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/jroosing/bindman/internal/api/models"
)

// Health godoc
// @Summary Health check
// @Description Returns server health status
// @Tags system
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	if h.auditLog != nil {
		if err := h.auditLog.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "audit store unavailable: " + err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// Stats godoc
// @Summary Server statistics
// @Description Returns runtime statistics including memory, goroutines and host metrics
// @Tags system
// @Produce json
// @Success 200 {object} models.ServerStatsResponse
// @Security ApiKeyAuth
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)

	resp := models.ServerStatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		MemoryAllocMB: float64(m.Alloc) / 1024 / 1024,
		NumCPU:        runtime.NumCPU(),
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		resp.HostMemoryUsedPct = vm.UsedPercent
	}
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		resp.HostCPUPct = pcts[0]
	}
	if zones, err := h.mgr.ListZones(c.Request.Context()); err == nil {
		resp.ManagedZones = len(zones)
	}

	c.JSON(http.StatusOK, resp)
}

// ListAudit godoc
// @Summary List recent configuration operations
// @Description Returns the newest audit journal entries, most recent first
// @Tags system
// @Produce json
// @Param limit query int false "Maximum entries to return" default(100)
// @Success 200 {object} models.AuditListResponse
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /audit [get]
func (h *Handler) ListAudit(c *gin.Context) {
	if h.auditLog == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "audit journal not configured"})
		return
	}

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		if n, err := parsePositiveInt(raw); err == nil {
			limit = n
		}
	}

	entries, err := h.auditLog.List(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.AuditListResponse{Entries: entries, Count: len(entries)})
}

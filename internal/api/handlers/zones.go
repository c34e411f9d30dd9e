package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jroosing/bindman/internal/api/models"
	"github.com/jroosing/bindman/internal/manager"
)

// ListZones godoc
// @Summary List all managed zones
// @Description Returns every zone registered in the managed include document, sorted by name
// @Tags zones
// @Produce json
// @Success 200 {object} models.ZoneListResponse
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zones [get]
func (h *Handler) ListZones(c *gin.Context) {
	zones, err := h.mgr.ListZones(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ZoneListResponse{Zones: zones, Count: len(zones)})
}

// CreateZone godoc
// @Summary Create a zone
// @Description Writes a fresh record file, registers the stanza, validates and reconfigures the nameserver
// @Tags zones
// @Accept json
// @Produce json
// @Param zone body manager.ZoneCreate true "Zone to create"
// @Success 201 {object} manager.Zone
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zones [post]
func (h *Handler) CreateZone(c *gin.Context) {
	var req manager.ZoneCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "name is required"})
		return
	}

	zone, err := h.mgr.CreateZone(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, zone)
}

// GetZone godoc
// @Summary Get zone details
// @Description Returns a zone's stanza settings, default TTL and parsed SOA
// @Tags zones
// @Produce json
// @Param name path string true "Zone name"
// @Success 200 {object} manager.ZoneDetail
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zones/{name} [get]
func (h *Handler) GetZone(c *gin.Context) {
	detail, err := h.mgr.GetZone(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// UpdateZone godoc
// @Summary Update a zone's stanza
// @Description Replaces the zone's allow-transfer and also-notify lists
// @Tags zones
// @Accept json
// @Produce json
// @Param name path string true "Zone name"
// @Param zone body manager.ZoneUpdate true "New stanza lists"
// @Success 200 {object} manager.Zone
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zones/{name} [put]
func (h *Handler) UpdateZone(c *gin.Context) {
	var req manager.ZoneUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	zone, err := h.mgr.UpdateZone(c.Request.Context(), c.Param("name"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, zone)
}

// DeleteZone godoc
// @Summary Delete a zone
// @Description Removes the zone's stanza and record file after validating and reconfiguring
// @Tags zones
// @Produce json
// @Param name path string true "Zone name"
// @Success 200 {object} models.StatusResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zones/{name} [delete]
func (h *Handler) DeleteZone(c *gin.Context) {
	if err := h.mgr.DeleteZone(c.Request.Context(), c.Param("name")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

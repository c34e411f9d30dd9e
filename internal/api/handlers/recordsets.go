package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jroosing/bindman/internal/api/models"
	"github.com/jroosing/bindman/internal/zonefile"
)

// ListRecordSets godoc
// @Summary List a zone's recordsets
// @Description Parses the zone's record file into recordsets; secondary zones yield an empty list
// @Tags recordsets
// @Produce json
// @Param name path string true "Zone name"
// @Success 200 {object} models.RecordSetsResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zones/{name}/recordsets [get]
func (h *Handler) ListRecordSets(c *gin.Context) {
	name := c.Param("name")
	recordsets, err := h.mgr.ListRecordSets(c.Request.Context(), name)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.RecordSetsResponse{
		Zone:       zonefile.NormalizeFQDN(name),
		RecordSets: recordsets,
		Count:      len(recordsets),
	})
}

// ReplaceRecordSets godoc
// @Summary Replace all recordsets of a zone
// @Description Rewrites the zone's data records preserving its header, then validates and reloads the zone
// @Tags recordsets
// @Accept json
// @Produce json
// @Param name path string true "Zone name"
// @Param recordsets body []zonefile.RecordSet true "Full replacement recordsets"
// @Success 200 {object} models.ReplaceRecordSetsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zones/{name}/recordsets [put]
func (h *Handler) ReplaceRecordSets(c *gin.Context) {
	var recordsets []zonefile.RecordSet
	if err := c.ShouldBindJSON(&recordsets); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	for _, rs := range recordsets {
		if !zonefile.SupportedType(strings.ToUpper(rs.Type)) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unsupported record type: " + rs.Type})
			return
		}
	}

	if err := h.mgr.ReplaceRecordSets(c.Request.Context(), c.Param("name"), recordsets); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ReplaceRecordSetsResponse{OK: true, Count: len(recordsets)})
}

// ExportZone godoc
// @Summary Export a zone's record file
// @Description Returns the raw zone file text as stored on disk
// @Tags recordsets
// @Produce json
// @Param name path string true "Zone name"
// @Success 200 {object} models.ZoneExportResponse
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zones/{name}/export [get]
func (h *Handler) ExportZone(c *gin.Context) {
	name := c.Param("name")
	text, err := h.mgr.ExportZone(c.Request.Context(), name)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ZoneExportResponse{
		Zone: zonefile.NormalizeFQDN(name),
		Text: text,
	})
}

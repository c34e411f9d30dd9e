package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jroosing/bindman/internal/api/models"
	"github.com/jroosing/bindman/internal/bindcfg"
)

// GetConfig godoc
// @Summary Get nameserver options
// @Description Returns the parsed options document: ACLs plus the modeled option fields
// @Tags config
// @Produce json
// @Success 200 {object} bindcfg.Options
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /config [get]
func (h *Handler) GetConfig(c *gin.Context) {
	opts, err := h.mgr.GetOptions(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, opts)
}

// PutConfig godoc
// @Summary Replace nameserver options
// @Description Regenerates the options document, validates the configuration and reconfigures the nameserver
// @Tags config
// @Accept json
// @Produce json
// @Param config body bindcfg.Options true "New options"
// @Success 200 {object} bindcfg.Options
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /config [put]
func (h *Handler) PutConfig(c *gin.Context) {
	var opts bindcfg.Options
	if err := c.ShouldBindJSON(&opts); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	if err := h.mgr.PutOptions(c.Request.Context(), opts); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, opts)
}

// ReloadConfig godoc
// @Summary Reload nameserver configuration
// @Description Runs rndc reconfig without changing anything on disk
// @Tags config
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Failure 502 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /config/reload [post]
func (h *Handler) ReloadConfig(c *gin.Context) {
	if err := h.mgr.Reload(c.Request.Context()); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "reloaded"})
}

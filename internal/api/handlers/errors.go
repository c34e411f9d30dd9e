package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jroosing/bindman/internal/api/models"
	"github.com/jroosing/bindman/internal/bindexec"
	"github.com/jroosing/bindman/internal/manager"
	"github.com/jroosing/bindman/internal/zonefile"
	"github.com/jroosing/bindman/internal/zonereg"
)

// respondError maps operation errors onto HTTP statuses: missing
// artifacts are 404, validation failures 422 with the tool's output,
// reload failures 502, secondary-zone writes 400, parse failures 422.
func (h *Handler) respondError(c *gin.Context, err error) {
	var ve *bindexec.ValidationError
	var re *bindexec.ReloadError
	var pe *zonefile.ParseError

	switch {
	case errors.Is(err, zonereg.ErrZoneNotFound),
		errors.Is(err, zonefile.ErrNotFound),
		errors.Is(err, zonereg.ErrIncludeMissing),
		errors.Is(err, zonereg.ErrZoneDirMissing):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: err.Error()})
	case errors.As(err, &ve):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:  ve.Tool + " failed",
			Detail: ve.Result.Output(),
		})
	case errors.As(err, &re):
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:  "rndc " + re.Command + " failed",
			Detail: re.Result.Output(),
		})
	case errors.Is(err, manager.ErrSecondaryZone):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	case errors.As(err, &pe):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: err.Error()})
	default:
		if h.logger != nil {
			h.logger.Error("api operation failed", "error", err)
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
	}
}

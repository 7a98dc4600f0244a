package controllers

import (
	"errors"
	"net/http"

	"github.com/xiao1992/WellnessTracker/config"
	"github.com/xiao1992/WellnessTracker/services"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the service error taxonomy onto HTTP
// statuses. Store failures never leak driver detail to the client.
func respondServiceError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrDuplicateEntry):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, services.ErrStoreUnavailable):
		if config.Logger != nil {
			config.Logger.Errorw("store unavailable", "error", err)
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
	default:
		if config.Logger != nil {
			config.Logger.Errorw("unhandled error", "error", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func currentUserID(c *gin.Context) uint {
	return c.MustGet("userID").(uint)
}

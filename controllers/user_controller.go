package controllers

import (
	"net/http"

	"github.com/xiao1992/WellnessTracker/config"
	"github.com/xiao1992/WellnessTracker/services"

	"github.com/gin-gonic/gin"
)

// GetProfile handles GET /api/user/profile.
func GetProfile(c *gin.Context) {
	userID := currentUserID(c)

	svc := services.NewAuthService(config.DB)
	user, err := svc.GetUser(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

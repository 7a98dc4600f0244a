package controllers

import (
	"errors"
	"net/http"

	"github.com/xiao1992/WellnessTracker/config"
	"github.com/xiao1992/WellnessTracker/services"

	"github.com/gin-gonic/gin"
)

type RegisterInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewAuthService(config.DB)
	user, err := svc.Register(input.Email, input.Password, input.FirstName, input.LastName)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registration successful", "user": user})
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewAuthService(config.DB)
	token, user, err := svc.Authenticate(input.Email, input.Password)
	if err != nil {
		// A store outage is not a credential failure.
		if errors.Is(err, services.ErrStoreUnavailable) {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

package controllers

import (
	"net/http"

	"github.com/xiao1992/WellnessTracker/config"
	"github.com/xiao1992/WellnessTracker/services"

	"github.com/gin-gonic/gin"
)

type HealthEntryInput struct {
	Date           string `json:"date" binding:"required"`
	SleepScore     *int   `json:"sleepScore" binding:"required,gte=0,lte=100"`
	NutritionScore *int   `json:"nutritionScore" binding:"required,gte=0,lte=100"`
	ExerciseScore  *int   `json:"exerciseScore" binding:"required,gte=0,lte=100"`
	HydrationScore *int   `json:"hydrationScore" binding:"required,gte=0,lte=100"`
	MoodScore      *int   `json:"moodScore" binding:"required,gte=0,lte=100"`
}

type HealthEntryUpdateInput struct {
	SleepScore     *int `json:"sleepScore" binding:"omitempty,gte=0,lte=100"`
	NutritionScore *int `json:"nutritionScore" binding:"omitempty,gte=0,lte=100"`
	ExerciseScore  *int `json:"exerciseScore" binding:"omitempty,gte=0,lte=100"`
	HydrationScore *int `json:"hydrationScore" binding:"omitempty,gte=0,lte=100"`
	MoodScore      *int `json:"moodScore" binding:"omitempty,gte=0,lte=100"`
}

// SaveHealthEntry handles POST /api/health-entries. Saving is an
// upsert: the first save of a day creates the row, any later save
// replaces all five scores for that day.
func SaveHealthEntry(c *gin.Context) {
	userID := currentUserID(c)

	var input HealthEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewHealthEntryService(config.DB)
	entry, err := svc.Save(userID, input.Date, services.MetricScores{
		Sleep:     *input.SleepScore,
		Nutrition: *input.NutritionScore,
		Exercise:  *input.ExerciseScore,
		Hydration: *input.HydrationScore,
		Mood:      *input.MoodScore,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// UpdateHealthEntry handles PUT /api/health-entries/:date with a
// partial payload; unset fields keep their stored values.
func UpdateHealthEntry(c *gin.Context) {
	userID := currentUserID(c)
	date := c.Param("date")

	var input HealthEntryUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewHealthEntryService(config.DB)
	entry, err := svc.Update(userID, date, services.MetricUpdate{
		Sleep:     input.SleepScore,
		Nutrition: input.NutritionScore,
		Exercise:  input.ExerciseScore,
		Hydration: input.HydrationScore,
		Mood:      input.MoodScore,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// GetHealthEntry handles GET /api/health-entries/:date.
func GetHealthEntry(c *gin.Context) {
	userID := currentUserID(c)
	date := c.Param("date")

	svc := services.NewHealthEntryService(config.DB)
	entry, err := svc.Get(userID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// ListHealthEntries handles GET /api/health-entries with optional
// startDate/endDate query bounds (inclusive on both ends).
func ListHealthEntries(c *gin.Context) {
	userID := currentUserID(c)

	svc := services.NewHealthEntryService(config.DB)
	entries, err := svc.List(userID, c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// DeleteHealthEntry handles DELETE /api/health-entries/:date.
func DeleteHealthEntry(c *gin.Context) {
	userID := currentUserID(c)
	date := c.Param("date")

	svc := services.NewHealthEntryService(config.DB)
	deleted, err := svc.Delete(userID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "health entry not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "health entry deleted"})
}

// GetHealthStats handles GET /api/health-entries/stats/summary.
func GetHealthStats(c *gin.Context) {
	userID := currentUserID(c)

	svc := services.NewHealthEntryService(config.DB)
	stats, err := svc.Stats(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/xiao1992/WellnessTracker/config"
	"github.com/xiao1992/WellnessTracker/services"

	"github.com/gin-gonic/gin"
)

type DiaryEntryInput struct {
	Date    string `json:"date" binding:"required"`
	Title   string `json:"title"`
	Content string `json:"content" binding:"required"`
	Mood    string `json:"mood" binding:"omitempty,oneof=happy sad excited calm stressed grateful"`
}

type DiaryEntryUpdateInput struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Mood    *string `json:"mood" binding:"omitempty,oneof=happy sad excited calm stressed grateful"`
}

func diaryEntryID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return 0, false
	}
	return uint(id), true
}

// CreateDiaryEntry handles POST /api/diary-entries.
func CreateDiaryEntry(c *gin.Context) {
	userID := currentUserID(c)

	var input DiaryEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewDiaryService(config.DB)
	entry, err := svc.Create(userID, services.DiaryEntryInput{
		Date:    input.Date,
		Title:   input.Title,
		Content: input.Content,
		Mood:    input.Mood,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// UpdateDiaryEntry handles PUT /api/diary-entries/:id.
func UpdateDiaryEntry(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := diaryEntryID(c)
	if !ok {
		return
	}

	var input DiaryEntryUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewDiaryService(config.DB)
	entry, err := svc.Update(userID, id, services.DiaryEntryUpdate{
		Title:   input.Title,
		Content: input.Content,
		Mood:    input.Mood,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// GetDiaryEntry handles GET /api/diary-entries/:id.
func GetDiaryEntry(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := diaryEntryID(c)
	if !ok {
		return
	}

	svc := services.NewDiaryService(config.DB)
	entry, err := svc.Get(userID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// ListDiaryEntries handles GET /api/diary-entries.
func ListDiaryEntries(c *gin.Context) {
	userID := currentUserID(c)

	svc := services.NewDiaryService(config.DB)
	entries, err := svc.List(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// DeleteDiaryEntry handles DELETE /api/diary-entries/:id.
func DeleteDiaryEntry(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := diaryEntryID(c)
	if !ok {
		return
	}

	svc := services.NewDiaryService(config.DB)
	deleted, err := svc.Delete(userID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "diary entry not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "diary entry deleted"})
}

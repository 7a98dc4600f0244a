package services

import (
	"strings"

	"github.com/xiao1992/WellnessTracker/models"

	"gorm.io/gorm"
)

// moodLabels is the closed set of diary mood tags. Empty means no tag.
var moodLabels = map[string]bool{
	"happy":    true,
	"sad":      true,
	"excited":  true,
	"calm":     true,
	"stressed": true,
	"grateful": true,
}

type DiaryService struct {
	db *gorm.DB
}

func NewDiaryService(db *gorm.DB) *DiaryService {
	return &DiaryService{db: db}
}

type DiaryEntryInput struct {
	Date    string
	Title   string
	Content string
	Mood    string
}

type DiaryEntryUpdate struct {
	Title   *string
	Content *string
	Mood    *string
}

func validMood(mood string) *ValidationError {
	if mood != "" && !moodLabels[mood] {
		return invalidField("mood", "must be one of: happy, sad, excited, calm, stressed, grateful")
	}
	return nil
}

func validContent(content string) *ValidationError {
	if strings.TrimSpace(content) == "" {
		return invalidField("content", "cannot be empty")
	}
	return nil
}

func (s *DiaryService) Create(userID uint, input DiaryEntryInput) (*models.DiaryEntry, error) {
	if verr := validDate("date", input.Date); verr != nil {
		return nil, verr
	}
	if verr := validContent(input.Content); verr != nil {
		return nil, verr
	}
	if verr := validMood(input.Mood); verr != nil {
		return nil, verr
	}

	entry := models.DiaryEntry{
		UserID:  userID,
		Date:    input.Date,
		Title:   input.Title,
		Content: input.Content,
		Mood:    input.Mood,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, storeErr(err)
	}
	return &entry, nil
}

// Update edits only the supplied fields. The lookup is scoped by
// userID, so another user's entry id reads as not found.
func (s *DiaryService) Update(userID, id uint, update DiaryEntryUpdate) (*models.DiaryEntry, error) {
	var entry models.DiaryEntry
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error
	if err != nil {
		return nil, storeErr(err)
	}

	if update.Title != nil {
		entry.Title = *update.Title
	}
	if update.Content != nil {
		if verr := validContent(*update.Content); verr != nil {
			return nil, verr
		}
		entry.Content = *update.Content
	}
	if update.Mood != nil {
		if verr := validMood(*update.Mood); verr != nil {
			return nil, verr
		}
		entry.Mood = *update.Mood
	}

	if err := s.db.Save(&entry).Error; err != nil {
		return nil, storeErr(err)
	}
	return &entry, nil
}

func (s *DiaryService) Get(userID, id uint) (*models.DiaryEntry, error) {
	var entry models.DiaryEntry
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return &entry, nil
}

// List returns the user's diary ordered newest first.
func (s *DiaryService) List(userID uint) ([]models.DiaryEntry, error) {
	var entries []models.DiaryEntry
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&entries).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return entries, nil
}

// Delete is idempotent and reports whether a row was removed.
func (s *DiaryService) Delete(userID, id uint) (bool, error) {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.DiaryEntry{})
	if res.Error != nil {
		return false, storeErr(res.Error)
	}
	return res.RowsAffected > 0, nil
}

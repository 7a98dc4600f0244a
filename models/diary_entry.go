package models

import (
	"time"
)

// DiaryEntry is a free-text journal record. Unlike HealthEntry there is
// no per-date uniqueness; a user may write any number of entries per day.
type DiaryEntry struct {
	ID     uint   `gorm:"primarykey" json:"id"`
	UserID uint   `gorm:"index;not null" json:"userId"`
	// Plain text like HealthEntry.Date so the string round-trips as-is.
	Date string `gorm:"not null" json:"date"` // YYYY-MM-DD

	Title   string `json:"title,omitempty"`
	Content string `gorm:"not null" json:"content"`
	Mood    string `json:"mood,omitempty"` // happy, sad, excited, calm, stressed, grateful

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

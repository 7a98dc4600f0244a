package models

import (
	"time"
)

// HealthEntry holds one day's metric scores for a user. The composite
// unique index makes (user_id, date) the natural key, so a second save
// for the same day must go through the upsert path.
type HealthEntry struct {
	ID     uint   `gorm:"primarykey" json:"id"`
	UserID uint   `gorm:"uniqueIndex:idx_health_entries_user_date;not null" json:"userId"`
	// Stored as plain text so the YYYY-MM-DD string round-trips
	// unchanged; a date-typed column would scan back as a timestamp.
	// ISO dates compare lexicographically, so range queries still work.
	Date string `gorm:"uniqueIndex:idx_health_entries_user_date;not null" json:"date"` // YYYY-MM-DD

	SleepScore     int `gorm:"not null" json:"sleepScore"`     // 0-100
	NutritionScore int `gorm:"not null" json:"nutritionScore"` // 0-100
	ExerciseScore  int `gorm:"not null" json:"exerciseScore"`  // 0-100
	HydrationScore int `gorm:"not null" json:"hydrationScore"` // 0-100
	MoodScore      int `gorm:"not null" json:"moodScore"`      // 0-100

	// Derived, rounded mean of the five scores above. Written together
	// with them on every save, never set by callers.
	OverallScore int `gorm:"not null" json:"overallScore"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

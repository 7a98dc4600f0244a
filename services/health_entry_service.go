package services

import (
	"math"
	"time"

	"github.com/xiao1992/WellnessTracker/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

type HealthEntryService struct {
	db *gorm.DB
}

func NewHealthEntryService(db *gorm.DB) *HealthEntryService {
	return &HealthEntryService{db: db}
}

// MetricScores carries the five daily inputs for a save.
type MetricScores struct {
	Sleep     int
	Nutrition int
	Exercise  int
	Hydration int
	Mood      int
}

// MetricUpdate carries a partial edit; nil fields keep their stored value.
type MetricUpdate struct {
	Sleep     *int
	Nutrition *int
	Exercise  *int
	Hydration *int
	Mood      *int
}

func validDate(field, value string) *ValidationError {
	if _, err := time.Parse(dateLayout, value); err != nil {
		return invalidField(field, "must be a calendar date in YYYY-MM-DD format")
	}
	return nil
}

func validScore(field string, value int) *ValidationError {
	if value < 0 || value > 100 {
		return invalidField(field, "must be between 0 and 100")
	}
	return nil
}

func (s MetricScores) validate() error {
	checks := []struct {
		field string
		value int
	}{
		{"sleepScore", s.Sleep},
		{"nutritionScore", s.Nutrition},
		{"exerciseScore", s.Exercise},
		{"hydrationScore", s.Hydration},
		{"moodScore", s.Mood},
	}
	for _, c := range checks {
		if verr := validScore(c.field, c.value); verr != nil {
			return verr
		}
	}
	return nil
}

// Save writes the day's scores for the user, creating the row on first
// save and overwriting all five metrics (plus the recomputed overall
// score) on any later save for the same date. The conflict target is
// the (user_id, date) unique index, so two racing first saves cannot
// both insert; the last write wins with a self-consistent overall score.
func (s *HealthEntryService) Save(userID uint, date string, scores MetricScores) (*models.HealthEntry, error) {
	if verr := validDate("date", date); verr != nil {
		return nil, verr
	}
	if err := scores.validate(); err != nil {
		return nil, err
	}

	entry := models.HealthEntry{
		UserID:         userID,
		Date:           date,
		SleepScore:     scores.Sleep,
		NutritionScore: scores.Nutrition,
		ExerciseScore:  scores.Exercise,
		HydrationScore: scores.Hydration,
		MoodScore:      scores.Mood,
		OverallScore:   OverallScore(scores.Sleep, scores.Nutrition, scores.Exercise, scores.Hydration, scores.Mood),
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"sleep_score", "nutrition_score", "exercise_score",
			"hydration_score", "mood_score", "overall_score", "updated_at",
		}),
	}).Create(&entry).Error
	if err != nil {
		return nil, storeErr(err)
	}

	// Re-read so the caller sees the stored row (id and timestamps
	// included) regardless of which branch the upsert took.
	return s.Get(userID, date)
}

// Update applies a partial edit to an existing day. The overall score
// is recomputed from all five values after the merge, not from the
// fields that changed.
func (s *HealthEntryService) Update(userID uint, date string, update MetricUpdate) (*models.HealthEntry, error) {
	if verr := validDate("date", date); verr != nil {
		return nil, verr
	}

	var entry models.HealthEntry
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&entry).Error
	if err != nil {
		return nil, storeErr(err)
	}

	if update.Sleep != nil {
		entry.SleepScore = *update.Sleep
	}
	if update.Nutrition != nil {
		entry.NutritionScore = *update.Nutrition
	}
	if update.Exercise != nil {
		entry.ExerciseScore = *update.Exercise
	}
	if update.Hydration != nil {
		entry.HydrationScore = *update.Hydration
	}
	if update.Mood != nil {
		entry.MoodScore = *update.Mood
	}

	merged := MetricScores{
		Sleep:     entry.SleepScore,
		Nutrition: entry.NutritionScore,
		Exercise:  entry.ExerciseScore,
		Hydration: entry.HydrationScore,
		Mood:      entry.MoodScore,
	}
	if err := merged.validate(); err != nil {
		return nil, err
	}
	entry.OverallScore = OverallScore(merged.Sleep, merged.Nutrition, merged.Exercise, merged.Hydration, merged.Mood)

	if err := s.db.Save(&entry).Error; err != nil {
		return nil, storeErr(err)
	}
	return &entry, nil
}

// Get returns the user's entry for the exact date, or ErrNotFound for
// a normal miss.
func (s *HealthEntryService) Get(userID uint, date string) (*models.HealthEntry, error) {
	if verr := validDate("date", date); verr != nil {
		return nil, verr
	}

	var entry models.HealthEntry
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&entry).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return &entry, nil
}

// List returns the user's entries ordered by date descending,
// optionally bounded to a closed interval. Either bound may be given
// alone; empty strings mean unbounded.
func (s *HealthEntryService) List(userID uint, startDate, endDate string) ([]models.HealthEntry, error) {
	q := s.db.Where("user_id = ?", userID)
	if startDate != "" {
		if verr := validDate("startDate", startDate); verr != nil {
			return nil, verr
		}
		q = q.Where("date >= ?", startDate)
	}
	if endDate != "" {
		if verr := validDate("endDate", endDate); verr != nil {
			return nil, verr
		}
		q = q.Where("date <= ?", endDate)
	}

	var entries []models.HealthEntry
	if err := q.Order("date desc").Find(&entries).Error; err != nil {
		return nil, storeErr(err)
	}
	return entries, nil
}

// Delete removes the user's entry for the date if present. It is
// idempotent: deleting a missing entry reports false, not an error.
func (s *HealthEntryService) Delete(userID uint, date string) (bool, error) {
	if verr := validDate("date", date); verr != nil {
		return false, verr
	}

	res := s.db.Where("user_id = ? AND date = ?", userID, date).Delete(&models.HealthEntry{})
	if res.Error != nil {
		return false, storeErr(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// HealthStats summarizes a user's logged history for the trends view.
// Averages are rounded the same way OverallScore rounds its mean.
type HealthStats struct {
	EntryCount       int    `json:"entryCount"`
	AverageOverall   int    `json:"averageOverall"`
	AverageSleep     int    `json:"averageSleep"`
	AverageNutrition int    `json:"averageNutrition"`
	AverageExercise  int    `json:"averageExercise"`
	AverageHydration int    `json:"averageHydration"`
	AverageMood      int    `json:"averageMood"`
	BestDate         string `json:"bestDate,omitempty"`
	BestOverall      int    `json:"bestOverall"`
}

// Stats aggregates over the user's full history. An empty history is a
// valid zero-count result, not an error.
func (s *HealthEntryService) Stats(userID uint) (*HealthStats, error) {
	entries, err := s.List(userID, "", "")
	if err != nil {
		return nil, err
	}

	stats := &HealthStats{EntryCount: len(entries)}
	if len(entries) == 0 {
		return stats, nil
	}

	stats.BestDate = entries[0].Date
	stats.BestOverall = entries[0].OverallScore

	var sleep, nutrition, exercise, hydration, mood, overall int
	for _, e := range entries {
		sleep += e.SleepScore
		nutrition += e.NutritionScore
		exercise += e.ExerciseScore
		hydration += e.HydrationScore
		mood += e.MoodScore
		overall += e.OverallScore

		if e.OverallScore > stats.BestOverall {
			stats.BestOverall = e.OverallScore
			stats.BestDate = e.Date
		}
	}

	// Half-away-from-zero, matching OverallScore.
	n := float64(len(entries))
	avg := func(sum int) int { return int(math.Round(float64(sum) / n)) }
	stats.AverageSleep = avg(sleep)
	stats.AverageNutrition = avg(nutrition)
	stats.AverageExercise = avg(exercise)
	stats.AverageHydration = avg(hydration)
	stats.AverageMood = avg(mood)
	stats.AverageOverall = avg(overall)
	return stats, nil
}

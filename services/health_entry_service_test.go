package services

import (
	"strings"
	"testing"

	"github.com/xiao1992/WellnessTracker/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Named shared-cache memory database so the pool's connections all
	// see the same schema; the name isolates tests from each other.
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.HealthEntry{}, &models.DiaryEntry{}))
	return db
}

func scores(sleep, nutrition, exercise, hydration, mood int) MetricScores {
	return MetricScores{
		Sleep:     sleep,
		Nutrition: nutrition,
		Exercise:  exercise,
		Hydration: hydration,
		Mood:      mood,
	}
}

func TestSaveComputesOverallScore(t *testing.T) {
	svc := NewHealthEntryService(newTestDB(t))

	entry, err := svc.Save(1, "2024-01-15", scores(80, 70, 60, 90, 75))
	require.NoError(t, err)
	require.Equal(t, 75, entry.OverallScore) // 375 / 5
	require.Equal(t, "2024-01-15", entry.Date)
}

func TestSaveTwiceKeepsOneRowWithSecondValues(t *testing.T) {
	db := newTestDB(t)
	svc := NewHealthEntryService(db)

	_, err := svc.Save(1, "2024-01-15", scores(10, 10, 10, 10, 10))
	require.NoError(t, err)

	entry, err := svc.Save(1, "2024-01-15", scores(80, 80, 80, 80, 80))
	require.NoError(t, err)
	require.Equal(t, 80, entry.OverallScore)
	require.Equal(t, 80, entry.SleepScore)

	var count int64
	require.NoError(t, db.Model(&models.HealthEntry{}).
		Where("user_id = ? AND date = ?", 1, "2024-01-15").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestSaveRejectsOutOfRangeScores(t *testing.T) {
	db := newTestDB(t)
	svc := NewHealthEntryService(db)

	_, err := svc.Save(1, "2024-01-15", scores(-1, 50, 50, 50, 50))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "sleepScore", verr.Field)

	_, err = svc.Save(1, "2024-01-15", scores(50, 50, 101, 50, 50))
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "exerciseScore", verr.Field)

	// Nothing was written.
	var count int64
	require.NoError(t, db.Model(&models.HealthEntry{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestSaveRejectsBadDate(t *testing.T) {
	svc := NewHealthEntryService(newTestDB(t))

	for _, date := range []string{"", "15-01-2024", "2024-13-40", "yesterday"} {
		_, err := svc.Save(1, date, scores(50, 50, 50, 50, 50))
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "date %q should be rejected", date)
		require.Equal(t, "date", verr.Field)
	}
}

func TestUpdateRecomputesFromMergedValues(t *testing.T) {
	svc := NewHealthEntryService(newTestDB(t))

	_, err := svc.Save(1, "2024-01-15", scores(80, 70, 60, 90, 75))
	require.NoError(t, err)

	// Only sleep changes; the overall score must reflect all five
	// current values, not just the delta.
	newSleep := 30
	entry, err := svc.Update(1, "2024-01-15", MetricUpdate{Sleep: &newSleep})
	require.NoError(t, err)
	require.Equal(t, 30, entry.SleepScore)
	require.Equal(t, 70, entry.NutritionScore)
	require.Equal(t, 65, entry.OverallScore) // (30+70+60+90+75)/5
}

// The date must come back from the store exactly as written; a
// timestamp-shaped value would detach the row from its calendar date
// and let a later save create a second row for the same day.
func TestDateRoundTripsThroughUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewHealthEntryService(db)

	entry, err := svc.Save(1, "2024-01-15", scores(80, 70, 60, 90, 75))
	require.NoError(t, err)
	require.Equal(t, "2024-01-15", entry.Date)

	newSleep := 30
	updated, err := svc.Update(1, "2024-01-15", MetricUpdate{Sleep: &newSleep})
	require.NoError(t, err)
	require.Equal(t, "2024-01-15", updated.Date)

	// The row is still addressable by its calendar date.
	got, err := svc.Get(1, "2024-01-15")
	require.NoError(t, err)
	require.Equal(t, "2024-01-15", got.Date)
	require.Equal(t, 30, got.SleepScore)

	// And a further save updates that same row instead of inserting.
	_, err = svc.Save(1, "2024-01-15", scores(50, 50, 50, 50, 50))
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.HealthEntry{}).
		Where("user_id = ?", 1).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestUpdateMissingEntryFails(t *testing.T) {
	svc := NewHealthEntryService(newTestDB(t))

	v := 50
	_, err := svc.Update(1, "2024-01-15", MetricUpdate{Sleep: &v})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRejectsOutOfRangeMerge(t *testing.T) {
	svc := NewHealthEntryService(newTestDB(t))

	_, err := svc.Save(1, "2024-01-15", scores(80, 70, 60, 90, 75))
	require.NoError(t, err)

	bad := 101
	_, err = svc.Update(1, "2024-01-15", MetricUpdate{Mood: &bad})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "moodScore", verr.Field)

	// Stored row is untouched.
	entry, err := svc.Get(1, "2024-01-15")
	require.NoError(t, err)
	require.Equal(t, 75, entry.MoodScore)
}

func TestGetMissReturnsNotFound(t *testing.T) {
	svc := NewHealthEntryService(newTestDB(t))

	_, err := svc.Get(1, "2024-01-15")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListDateRangeFiltering(t *testing.T) {
	svc := NewHealthEntryService(newTestDB(t))

	for _, date := range []string{"2024-01-01", "2024-01-05", "2024-01-10"} {
		_, err := svc.Save(1, date, scores(50, 50, 50, 50, 50))
		require.NoError(t, err)
	}

	entries, err := svc.List(1, "2024-01-02", "2024-01-09")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "2024-01-05", entries[0].Date)

	// No bounds: all three, date descending.
	entries, err = svc.List(1, "", "")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "2024-01-10", entries[0].Date)
	require.Equal(t, "2024-01-05", entries[1].Date)
	require.Equal(t, "2024-01-01", entries[2].Date)

	// One-sided bounds.
	entries, err = svc.List(1, "2024-01-05", "")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	entries, err = svc.List(1, "", "2024-01-05")
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc := NewHealthEntryService(newTestDB(t))

	_, err := svc.Save(1, "2024-01-15", scores(50, 50, 50, 50, 50))
	require.NoError(t, err)

	deleted, err := svc.Delete(1, "2024-01-15")
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = svc.Delete(1, "2024-01-15")
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestSaveAfterDeleteCreatesFresh(t *testing.T) {
	svc := NewHealthEntryService(newTestDB(t))

	_, err := svc.Save(1, "2024-01-15", scores(10, 10, 10, 10, 10))
	require.NoError(t, err)

	_, err = svc.Delete(1, "2024-01-15")
	require.NoError(t, err)

	entry, err := svc.Save(1, "2024-01-15", scores(90, 90, 90, 90, 90))
	require.NoError(t, err)
	require.Equal(t, 90, entry.OverallScore)
}

func TestCrossUserIsolation(t *testing.T) {
	svc := NewHealthEntryService(newTestDB(t))

	_, err := svc.Save(1, "2024-01-15", scores(50, 50, 50, 50, 50))
	require.NoError(t, err)

	_, err = svc.Get(2, "2024-01-15")
	require.ErrorIs(t, err, ErrNotFound)

	entries, err := svc.List(2, "", "")
	require.NoError(t, err)
	require.Empty(t, entries)

	// Users can hold the same date independently.
	_, err = svc.Save(2, "2024-01-15", scores(90, 90, 90, 90, 90))
	require.NoError(t, err)

	mine, err := svc.Get(1, "2024-01-15")
	require.NoError(t, err)
	require.Equal(t, 50, mine.OverallScore)
}

func TestStats(t *testing.T) {
	svc := NewHealthEntryService(newTestDB(t))

	stats, err := svc.Stats(1)
	require.NoError(t, err)
	require.Equal(t, 0, stats.EntryCount)

	_, err = svc.Save(1, "2024-01-01", scores(40, 40, 40, 40, 40))
	require.NoError(t, err)
	_, err = svc.Save(1, "2024-01-02", scores(80, 80, 80, 80, 80))
	require.NoError(t, err)

	stats, err = svc.Stats(1)
	require.NoError(t, err)
	require.Equal(t, 2, stats.EntryCount)
	require.Equal(t, 60, stats.AverageOverall)
	require.Equal(t, 60, stats.AverageSleep)
	require.Equal(t, "2024-01-02", stats.BestDate)
	require.Equal(t, 80, stats.BestOverall)
}

// Unlike the five-value daily mean, a history average can land on an
// exact .5, so the tie direction is observable here: half rounds away
// from zero, the same rule OverallScore uses.
func TestStatsAveragesRoundLikeCalculator(t *testing.T) {
	svc := NewHealthEntryService(newTestDB(t))

	_, err := svc.Save(1, "2024-01-01", scores(50, 50, 50, 50, 50))
	require.NoError(t, err)
	_, err = svc.Save(1, "2024-01-02", scores(51, 51, 51, 51, 51))
	require.NoError(t, err)

	stats, err := svc.Stats(1)
	require.NoError(t, err)
	require.Equal(t, 51, stats.AverageOverall) // 50.5 rounds up
	require.Equal(t, 51, stats.AverageSleep)
	require.Equal(t, 51, stats.AverageMood)
}

package course

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	courseModels "praxis/models/course"
)

// setupTestDB opens a fresh in-memory database per test. Single connection so
// every session sees the same memory store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&courseModels.Course{},
		&courseModels.Lesson{},
		&courseModels.LessonSnapshot{},
		&courseModels.Enrollment{},
		&courseModels.Completion{},
	))

	return db
}

func createDraftCourse(t *testing.T, db *gorm.DB, lessonCount int, unlockMode string) courseModels.Course {
	t.Helper()

	crs := courseModels.Course{
		TherapistID: 1,
		Title:       "Knee Rehabilitation",
		UnlockMode:  unlockMode,
		Status:      courseModels.StatusDraft,
	}
	require.NoError(t, db.Create(&crs).Error)

	if lessonCount > 0 {
		inputs := make([]LessonInput, lessonCount)
		for i := range inputs {
			inputs[i] = LessonInput{Title: fmt.Sprintf("Week %d", i+1)}
		}
		_, svcErr := ReplaceLessons(db, crs.ID, inputs)
		require.Nil(t, svcErr)
	}

	return crs
}

func publishCourse(t *testing.T, db *gorm.DB, lessonCount int, unlockMode string) courseModels.Course {
	t.Helper()

	crs := createDraftCourse(t, db, lessonCount, unlockMode)
	published, svcErr := Publish(db, crs.ID)
	require.Nil(t, svcErr)
	return *published
}

// orderedLessonIDs returns the generation's lesson ids in position order.
func orderedLessonIDs(t *testing.T, db *gorm.DB, courseID uint, version int) []uint {
	t.Helper()

	snapshots, svcErr := Snapshots(db, courseID, version)
	require.Nil(t, svcErr)

	ids := make([]uint, len(snapshots))
	for i, snapshot := range snapshots {
		ids[i] = snapshot.LessonID
	}
	return ids
}

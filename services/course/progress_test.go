package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	courseModels "praxis/models/course"
)

func TestSequentialCompletionFlow(t *testing.T) {
	db := setupTestDB(t)
	crs := publishCourse(t, db, 3, courseModels.UnlockSequential)
	lessonIDs := orderedLessonIDs(t, db, crs.ID, 1)

	enrollment, svcErr := Enroll(db, crs.ID, 42)
	require.Nil(t, svcErr)

	// Only the first lesson is unlocked at the start
	_, states, svcErr := LessonStates(db, enrollment.ID, 42)
	require.Nil(t, svcErr)
	require.Len(t, states, 3)
	assert.True(t, states[0].IsUnlocked)
	assert.False(t, states[1].IsUnlocked)
	assert.False(t, states[2].IsUnlocked)

	// Jumping ahead is rejected
	_, svcErr = CompleteLesson(db, enrollment.ID, lessonIDs[1], 42)
	require.NotNil(t, svcErr)
	assert.Equal(t, 422, svcErr.Status)

	// Completing in order unlocks the next lesson
	result, svcErr := CompleteLesson(db, enrollment.ID, lessonIDs[0], 42)
	require.Nil(t, svcErr)
	assert.False(t, result.CourseCompleted)
	assert.EqualValues(t, 1, result.CompletedLessons)
	assert.EqualValues(t, 3, result.TotalLessons)

	_, states, svcErr = LessonStates(db, enrollment.ID, 42)
	require.Nil(t, svcErr)
	assert.True(t, states[0].IsCompleted)
	assert.True(t, states[1].IsUnlocked)
	assert.False(t, states[2].IsUnlocked)

	// Finishing every lesson auto-completes the enrollment
	_, svcErr = CompleteLesson(db, enrollment.ID, lessonIDs[1], 42)
	require.Nil(t, svcErr)
	result, svcErr = CompleteLesson(db, enrollment.ID, lessonIDs[2], 42)
	require.Nil(t, svcErr)
	assert.True(t, result.CourseCompleted)

	var reloaded courseModels.Enrollment
	require.NoError(t, db.First(&reloaded, enrollment.ID).Error)
	assert.Equal(t, courseModels.EnrollmentCompleted, reloaded.Status)
	assert.NotNil(t, reloaded.CompletedAt)
}

func TestSequentialUnlockRejectsSkippedLesson(t *testing.T) {
	db := setupTestDB(t)
	crs := publishCourse(t, db, 4, courseModels.UnlockSequential)
	lessonIDs := orderedLessonIDs(t, db, crs.ID, 1)

	enrollment, svcErr := Enroll(db, crs.ID, 42)
	require.Nil(t, svcErr)

	_, svcErr = CompleteLesson(db, enrollment.ID, lessonIDs[0], 42)
	require.Nil(t, svcErr)
	_, svcErr = CompleteLesson(db, enrollment.ID, lessonIDs[1], 42)
	require.Nil(t, svcErr)

	_, states, svcErr := LessonStates(db, enrollment.ID, 42)
	require.Nil(t, svcErr)

	assert.True(t, states[0].IsUnlocked, "first lesson is always unlocked")
	for i := 1; i < len(states); i++ {
		if states[i].IsUnlocked {
			assert.True(t, states[i-1].IsCompleted,
				"an unlocked lesson implies its predecessor is completed")
		}
	}
}

func TestAllAtOnceModeSkipsTheGate(t *testing.T) {
	db := setupTestDB(t)
	crs := publishCourse(t, db, 3, courseModels.UnlockAllAtOnce)
	lessonIDs := orderedLessonIDs(t, db, crs.ID, 1)

	enrollment, svcErr := Enroll(db, crs.ID, 42)
	require.Nil(t, svcErr)

	_, states, svcErr := LessonStates(db, enrollment.ID, 42)
	require.Nil(t, svcErr)
	for _, state := range states {
		assert.True(t, state.IsUnlocked)
	}

	// Any order is fine
	_, svcErr = CompleteLesson(db, enrollment.ID, lessonIDs[2], 42)
	require.Nil(t, svcErr)
	_, svcErr = CompleteLesson(db, enrollment.ID, lessonIDs[0], 42)
	require.Nil(t, svcErr)
}

func TestDuplicateCompletionConflicts(t *testing.T) {
	db := setupTestDB(t)
	crs := publishCourse(t, db, 2, courseModels.UnlockSequential)
	lessonIDs := orderedLessonIDs(t, db, crs.ID, 1)

	enrollment, svcErr := Enroll(db, crs.ID, 42)
	require.Nil(t, svcErr)

	_, svcErr = CompleteLesson(db, enrollment.ID, lessonIDs[0], 42)
	require.Nil(t, svcErr)

	_, svcErr = CompleteLesson(db, enrollment.ID, lessonIDs[0], 42)
	require.NotNil(t, svcErr)
	assert.Equal(t, 409, svcErr.Status)

	// The rejected duplicate neither added a row nor completed the enrollment
	var completions int64
	db.Model(&courseModels.Completion{}).Where("enrollment_id = ?", enrollment.ID).Count(&completions)
	assert.EqualValues(t, 1, completions)

	var reloaded courseModels.Enrollment
	require.NoError(t, db.First(&reloaded, enrollment.ID).Error)
	assert.Equal(t, courseModels.EnrollmentActive, reloaded.Status)
}

func TestCompleteLessonOutsidePinnedGeneration(t *testing.T) {
	db := setupTestDB(t)
	crs := publishCourse(t, db, 2, courseModels.UnlockAllAtOnce)

	enrollment, svcErr := Enroll(db, crs.ID, 42)
	require.Nil(t, svcErr)

	// Republish with an extra lesson; its id exists only in generation 2
	_, svcErr = ReplaceLessons(db, crs.ID, []LessonInput{
		{Title: "Week 1"}, {Title: "Week 2"}, {Title: "Week 3"},
	})
	require.Nil(t, svcErr)
	_, svcErr = Publish(db, crs.ID)
	require.Nil(t, svcErr)

	newIDs := orderedLessonIDs(t, db, crs.ID, 2)
	_, svcErr = CompleteLesson(db, enrollment.ID, newIDs[2], 42)
	require.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.Status)
}

func TestCompleteLessonOwnershipFoldsToNotFound(t *testing.T) {
	db := setupTestDB(t)
	crs := publishCourse(t, db, 1, courseModels.UnlockSequential)
	lessonIDs := orderedLessonIDs(t, db, crs.ID, 1)

	enrollment, svcErr := Enroll(db, crs.ID, 42)
	require.Nil(t, svcErr)

	_, svcErr = CompleteLesson(db, enrollment.ID, lessonIDs[0], 77)
	require.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.Status)

	_, _, svcErr = LessonStates(db, enrollment.ID, 77)
	require.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.Status)
}

func TestCompleteLessonOnInactiveEnrollment(t *testing.T) {
	db := setupTestDB(t)
	crs := publishCourse(t, db, 2, courseModels.UnlockSequential)
	lessonIDs := orderedLessonIDs(t, db, crs.ID, 1)

	enrollment, svcErr := Enroll(db, crs.ID, 42)
	require.Nil(t, svcErr)

	_, svcErr = Cancel(db, enrollment.ID)
	require.Nil(t, svcErr)

	_, svcErr = CompleteLesson(db, enrollment.ID, lessonIDs[0], 42)
	require.NotNil(t, svcErr)
	assert.Equal(t, 409, svcErr.Status)
}

func TestAutoCompletionFiresExactlyOnce(t *testing.T) {
	db := setupTestDB(t)
	crs := publishCourse(t, db, 1, courseModels.UnlockSequential)
	lessonIDs := orderedLessonIDs(t, db, crs.ID, 1)

	enrollment, svcErr := Enroll(db, crs.ID, 42)
	require.Nil(t, svcErr)

	result, svcErr := CompleteLesson(db, enrollment.ID, lessonIDs[0], 42)
	require.Nil(t, svcErr)
	assert.True(t, result.CourseCompleted)

	var reloaded courseModels.Enrollment
	require.NoError(t, db.First(&reloaded, enrollment.ID).Error)
	firstCompletedAt := reloaded.CompletedAt
	require.NotNil(t, firstCompletedAt)

	// A repeat attempt cannot re-trigger the transition: the enrollment is no
	// longer active
	_, svcErr = CompleteLesson(db, enrollment.ID, lessonIDs[0], 42)
	require.NotNil(t, svcErr)
	assert.Equal(t, 409, svcErr.Status)

	require.NoError(t, db.First(&reloaded, enrollment.ID).Error)
	assert.Equal(t, firstCompletedAt, reloaded.CompletedAt)
}

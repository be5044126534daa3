package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	courseModels "praxis/models/course"
)

func TestEnrollPinsCurrentVersion(t *testing.T) {
	db := setupTestDB(t)
	crs := publishCourse(t, db, 3, courseModels.UnlockSequential)

	enrollment, svcErr := Enroll(db, crs.ID, 42)
	require.Nil(t, svcErr)

	assert.Equal(t, courseModels.EnrollmentActive, enrollment.Status)
	assert.Equal(t, 1, enrollment.EnrolledVersion)
	assert.False(t, enrollment.EnrolledAt.IsZero())
	assert.Nil(t, enrollment.CompletedAt)
}

func TestEnrollUnpublishedCourseRejected(t *testing.T) {
	db := setupTestDB(t)
	crs := createDraftCourse(t, db, 3, courseModels.UnlockSequential)

	_, svcErr := Enroll(db, crs.ID, 42)
	require.NotNil(t, svcErr)
	assert.Equal(t, 422, svcErr.Status)
}

func TestEnrollArchivedCourseRejected(t *testing.T) {
	db := setupTestDB(t)
	crs := publishCourse(t, db, 1, courseModels.UnlockSequential)

	_, svcErr := Archive(db, crs.ID)
	require.Nil(t, svcErr)

	_, svcErr = Enroll(db, crs.ID, 42)
	require.NotNil(t, svcErr)
	assert.Equal(t, 422, svcErr.Status)
}

func TestEnrollTwiceConflicts(t *testing.T) {
	db := setupTestDB(t)
	crs := publishCourse(t, db, 1, courseModels.UnlockSequential)

	_, svcErr := Enroll(db, crs.ID, 42)
	require.Nil(t, svcErr)

	_, svcErr = Enroll(db, crs.ID, 42)
	require.NotNil(t, svcErr)
	assert.Equal(t, 409, svcErr.Status)

	// Still a single row for the (course, patient) pair
	var count int64
	db.Model(&courseModels.Enrollment{}).Where("course_id = ? AND patient_id = ?", crs.ID, 42).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestReEnrollResetsCompletionsAndRepins(t *testing.T) {
	db := setupTestDB(t)
	crs := publishCourse(t, db, 2, courseModels.UnlockSequential)
	lessonIDs := orderedLessonIDs(t, db, crs.ID, 1)

	enrollment, svcErr := Enroll(db, crs.ID, 42)
	require.Nil(t, svcErr)

	_, svcErr = CompleteLesson(db, enrollment.ID, lessonIDs[0], 42)
	require.Nil(t, svcErr)

	_, svcErr = Cancel(db, enrollment.ID)
	require.Nil(t, svcErr)

	// The course moves on: a third lesson and a new generation
	_, svcErr = ReplaceLessons(db, crs.ID, []LessonInput{
		{Title: "Week 1"}, {Title: "Week 2"}, {Title: "Week 3"},
	})
	require.Nil(t, svcErr)
	_, svcErr = Publish(db, crs.ID)
	require.Nil(t, svcErr)

	reEnrolled, svcErr := Enroll(db, crs.ID, 42)
	require.Nil(t, svcErr)

	assert.Equal(t, enrollment.ID, reEnrolled.ID, "re-enroll updates in place, no second row")
	assert.Equal(t, courseModels.EnrollmentActive, reEnrolled.Status)
	assert.Equal(t, 2, reEnrolled.EnrolledVersion)
	assert.Nil(t, reEnrolled.CompletedAt)
	assert.Nil(t, reEnrolled.CancelledAt)

	// Old completions are gone, not carried into the new generation
	var completions int64
	db.Model(&courseModels.Completion{}).Where("enrollment_id = ?", enrollment.ID).Count(&completions)
	assert.Zero(t, completions)
}

func TestReEnrollAfterCompletion(t *testing.T) {
	db := setupTestDB(t)
	crs := publishCourse(t, db, 1, courseModels.UnlockSequential)
	lessonIDs := orderedLessonIDs(t, db, crs.ID, 1)

	enrollment, svcErr := Enroll(db, crs.ID, 42)
	require.Nil(t, svcErr)

	result, svcErr := CompleteLesson(db, enrollment.ID, lessonIDs[0], 42)
	require.Nil(t, svcErr)
	require.True(t, result.CourseCompleted)

	reEnrolled, svcErr := Enroll(db, crs.ID, 42)
	require.Nil(t, svcErr)
	assert.Equal(t, courseModels.EnrollmentActive, reEnrolled.Status)
	assert.Nil(t, reEnrolled.CompletedAt)
}

func TestCancelOnlyFromActive(t *testing.T) {
	db := setupTestDB(t)
	crs := publishCourse(t, db, 1, courseModels.UnlockSequential)

	enrollment, svcErr := Enroll(db, crs.ID, 42)
	require.Nil(t, svcErr)

	cancelled, svcErr := Cancel(db, enrollment.ID)
	require.Nil(t, svcErr)
	assert.Equal(t, courseModels.EnrollmentCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)

	_, svcErr = Cancel(db, enrollment.ID)
	require.NotNil(t, svcErr)
	assert.Equal(t, 409, svcErr.Status)
}

func TestCancelUnknownEnrollment(t *testing.T) {
	db := setupTestDB(t)

	_, svcErr := Cancel(db, 9999)
	require.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.Status)
}

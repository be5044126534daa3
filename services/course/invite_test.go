package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	courseModels "praxis/models/course"
)

func TestGenerateInviteIsIdempotentWhileEnabled(t *testing.T) {
	db := setupTestDB(t)
	crs := publishCourse(t, db, 1, courseModels.UnlockSequential)

	first, svcErr := GenerateOrGetInvite(db, crs.ID)
	require.Nil(t, svcErr)
	require.NotNil(t, first.InviteToken)
	assert.True(t, first.InviteEnabled)
	assert.GreaterOrEqual(t, len(*first.InviteToken), 10)

	second, svcErr := GenerateOrGetInvite(db, crs.ID)
	require.Nil(t, svcErr)
	assert.Equal(t, *first.InviteToken, *second.InviteToken)
}

func TestGenerateInviteRequiresPublishedCourse(t *testing.T) {
	db := setupTestDB(t)
	crs := createDraftCourse(t, db, 1, courseModels.UnlockSequential)

	_, svcErr := GenerateOrGetInvite(db, crs.ID)
	require.NotNil(t, svcErr)
	assert.Equal(t, 422, svcErr.Status)
}

func TestDisablePreservesTokenForReEnable(t *testing.T) {
	db := setupTestDB(t)
	crs := publishCourse(t, db, 1, courseModels.UnlockSequential)

	generated, svcErr := GenerateOrGetInvite(db, crs.ID)
	require.Nil(t, svcErr)
	token := *generated.InviteToken

	disabled, svcErr := DisableInvite(db, crs.ID)
	require.Nil(t, svcErr)
	assert.False(t, disabled.InviteEnabled)

	// The revoked link answers gone, not forbidden or unknown
	_, svcErr = ResolveSelfEnroll(db, token, 42)
	require.NotNil(t, svcErr)
	assert.Equal(t, 410, svcErr.Status)

	// Re-enabling hands out the exact same link
	reEnabled, svcErr := GenerateOrGetInvite(db, crs.ID)
	require.Nil(t, svcErr)
	assert.Equal(t, token, *reEnabled.InviteToken)

	enrollment, svcErr := ResolveSelfEnroll(db, token, 42)
	require.Nil(t, svcErr)
	assert.Equal(t, courseModels.EnrollmentActive, enrollment.Status)
}

func TestDisableWithoutTokenIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	crs := publishCourse(t, db, 1, courseModels.UnlockSequential)

	_, svcErr := DisableInvite(db, crs.ID)
	require.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.Status)
}

func TestResolveUnknownToken(t *testing.T) {
	db := setupTestDB(t)

	_, svcErr := ResolveSelfEnroll(db, "nosuchtoken123", 42)
	require.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.Status)
}

func TestResolveArchivedCourseIsGone(t *testing.T) {
	db := setupTestDB(t)
	crs := publishCourse(t, db, 1, courseModels.UnlockSequential)

	generated, svcErr := GenerateOrGetInvite(db, crs.ID)
	require.Nil(t, svcErr)
	token := *generated.InviteToken

	_, svcErr = Archive(db, crs.ID)
	require.Nil(t, svcErr)

	_, svcErr = ResolveSelfEnroll(db, token, 42)
	require.NotNil(t, svcErr)
	assert.Equal(t, 410, svcErr.Status)
}

func TestSelfEnrollViaTokenPinsCurrentVersion(t *testing.T) {
	db := setupTestDB(t)
	crs := publishCourse(t, db, 2, courseModels.UnlockSequential)

	generated, svcErr := GenerateOrGetInvite(db, crs.ID)
	require.Nil(t, svcErr)

	enrollment, svcErr := ResolveSelfEnroll(db, *generated.InviteToken, 42)
	require.Nil(t, svcErr)
	assert.Equal(t, crs.ID, enrollment.CourseID)
	assert.EqualValues(t, 42, enrollment.PatientID)
	assert.Equal(t, 1, enrollment.EnrolledVersion)
}

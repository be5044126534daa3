package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrollmentTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"active completes", EnrollmentActive, EnrollmentCompleted, true},
		{"active cancels", EnrollmentActive, EnrollmentCancelled, true},
		{"completed re-activates", EnrollmentCompleted, EnrollmentActive, true},
		{"cancelled re-activates", EnrollmentCancelled, EnrollmentActive, true},
		{"completed cannot cancel", EnrollmentCompleted, EnrollmentCancelled, false},
		{"cancelled cannot complete", EnrollmentCancelled, EnrollmentCompleted, false},
		{"active cannot re-activate", EnrollmentActive, EnrollmentActive, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			enrollment := Enrollment{Status: tc.from}
			err := enrollment.TransitionTo(tc.to)
			if tc.allowed {
				assert.NoError(t, err)
				assert.Equal(t, tc.to, enrollment.Status)
			} else {
				assert.Error(t, err)
				assert.Equal(t, tc.from, enrollment.Status, "status unchanged on rejected edge")
			}
		})
	}
}

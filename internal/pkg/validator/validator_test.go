package validator

import (
	"errors"
	"testing"

	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubject() domain.BirthSubject {
	return domain.BirthSubject{
		Name:         "Asha",
		Gender:       domain.GenderFemale,
		DateOfBirth:  "15-08-1990",
		TimeOfBirth:  "06:45",
		PlaceOfBirth: "Mumbai",
	}
}

func TestValidSubjectPasses(t *testing.T) {
	assert.NoError(t, NewValidator().Validate(validSubject()))
}

func TestInvalidSubjectFields(t *testing.T) {
	v := NewValidator()
	s := validSubject()
	s.Name = "   "
	s.Gender = "Unknown"
	s.DateOfBirth = "1990-08-15"
	s.TimeOfBirth = "6:45"

	err := v.Validate(s)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	fields := v.FormatValidationErrors(err)
	assert.Equal(t, "name is required", fields["name"])
	assert.Contains(t, fields["gender"], "must be one of")
	assert.Equal(t, "date_of_birth must be a date in DD-MM-YYYY format", fields["date_of_birth"])
	assert.Equal(t, "time_of_birth must be a time in HH:MM format", fields["time_of_birth"])
	assert.NotContains(t, fields, "place_of_birth")
}

func TestImpossibleDateRejected(t *testing.T) {
	s := validSubject()
	s.DateOfBirth = "31-02-1990"
	assert.Error(t, NewValidator().Validate(s))
}

func TestNestedMatchingRequestPaths(t *testing.T) {
	v := NewValidator()
	p2 := validSubject()
	p2.PlaceOfBirth = ""

	err := v.Validate(domain.MatchingRequest{Person1: validSubject(), Person2: p2})
	require.Error(t, err)
	assert.Equal(t, "person2.place_of_birth is required", v.FormatValidationErrors(err)["person2.place_of_birth"])
}

func TestFormatNonValidationError(t *testing.T) {
	v := NewValidator()
	assert.False(t, IsValidationError(errors.New("boom")))
	assert.Empty(t, v.FormatValidationErrors(errors.New("boom")))
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "carevo/internal/errors"
	"carevo/internal/model"
)

func schoolProfile() ProfileInput {
	return ProfileInput{
		Email:       "a@b.com",
		Name:        "Ann",
		Institute:   "X",
		DOB:         "2000-01-01",
		StudentType: model.StudentTypeSchool,
		Class:       "10",
	}
}

func collegeProfile() ProfileInput {
	return ProfileInput{
		Email:       "c@d.com",
		Name:        "Ben",
		Institute:   "Y",
		DOB:         "2001-02-02",
		StudentType: model.StudentTypeCollege,
		Degree:      "B.Sc",
		Major:       "Physics",
		Year:        "2",
	}
}

func TestProfileValidator_ValidProfiles(t *testing.T) {
	v := NewProfileValidator()

	for _, in := range []ProfileInput{schoolProfile(), collegeProfile()} {
		out, err := v.Validate(in)
		assert.NoError(t, err)
		assert.Equal(t, in, out)
	}
}

func TestProfileValidator_NormalizesEmail(t *testing.T) {
	v := NewProfileValidator()

	in := schoolProfile()
	in.Email = "  Ann@Example.COM "

	out, err := v.Validate(in)
	assert.NoError(t, err)
	assert.Equal(t, "ann@example.com", out.Email)
}

func TestProfileValidator_MissingFields(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*ProfileInput)
		expected []string
	}{
		{
			name:     "school missing class",
			mutate:   func(p *ProfileInput) { p.Class = "" },
			expected: []string{"class"},
		},
		{
			name: "college missing degree",
			mutate: func(p *ProfileInput) {
				*p = collegeProfile()
				p.Degree = ""
			},
			expected: []string{"degree"},
		},
		{
			name: "college missing major and year",
			mutate: func(p *ProfileInput) {
				*p = collegeProfile()
				p.Major = ""
				p.Year = ""
			},
			expected: []string{"major", "year"},
		},
		{
			name: "missing base fields",
			mutate: func(p *ProfileInput) {
				p.Name = ""
				p.Institute = ""
			},
			expected: []string{"name", "institute"},
		},
		{
			name:     "unknown student type",
			mutate:   func(p *ProfileInput) { p.StudentType = "postgrad" },
			expected: []string{"studentType"},
		},
		{
			name:     "whitespace only name",
			mutate:   func(p *ProfileInput) { p.Name = "   " },
			expected: []string{"name"},
		},
	}

	v := NewProfileValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := schoolProfile()
			tt.mutate(&in)

			_, err := v.Validate(in)
			var vErr *apperrors.ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.expected, vErr.Fields)
		})
	}
}

func TestProfileValidator_RejectsMismatchedTypeFields(t *testing.T) {
	v := NewProfileValidator()

	school := schoolProfile()
	school.Degree = "B.Sc"
	school.Year = "2"

	_, err := v.Validate(school)
	var vErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"degree", "year"}, vErr.Fields)

	college := collegeProfile()
	college.Class = "10"

	_, err = v.Validate(college)
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"class"}, vErr.Fields)
}

func TestProfileValidator_EmailFormat(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{name: "plain address", email: "a@b.com", valid: true},
		{name: "no at sign", email: "ab.com", valid: false},
		{name: "two at signs", email: "a@@b.com", valid: false},
		{name: "empty local part", email: "@b.com", valid: false},
		{name: "empty domain", email: "a@", valid: false},
	}

	v := NewProfileValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := schoolProfile()
			in.Email = tt.email

			_, err := v.Validate(in)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				var vErr *apperrors.ValidationError
				assert.ErrorAs(t, err, &vErr)
				assert.Contains(t, vErr.Fields, "email")
			}
		})
	}
}

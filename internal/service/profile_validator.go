package service

import (
	"strings"

	apperrors "carevo/internal/errors"
	"carevo/internal/model"
)

// ProfileInput carries the profile fields of a signup or merged update
// payload. Password handling lives with the account service, not here.
type ProfileInput struct {
	Email       string
	Name        string
	Institute   string
	DOB         string
	StudentType model.StudentType
	Class       string
	Degree      string
	Major       string
	Year        string
}

// ProfileValidator enforces the per-student-type field sets. The required
// set is fully determined by StudentType: school adds class, college adds
// degree, major, and year. Fields belonging to the other type are rejected
// rather than silently ignored.
type ProfileValidator struct{}

// NewProfileValidator creates a new profile validator.
func NewProfileValidator() *ProfileValidator {
	return &ProfileValidator{}
}

// Validate checks in and returns a normalized copy (trimmed fields,
// lowercased email) or a ValidationError naming every missing, malformed,
// or type-mismatched field.
func (v *ProfileValidator) Validate(in ProfileInput) (ProfileInput, error) {
	out := ProfileInput{
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		Name:        strings.TrimSpace(in.Name),
		Institute:   strings.TrimSpace(in.Institute),
		DOB:         strings.TrimSpace(in.DOB),
		StudentType: in.StudentType,
		Class:       strings.TrimSpace(in.Class),
		Degree:      strings.TrimSpace(in.Degree),
		Major:       strings.TrimSpace(in.Major),
		Year:        strings.TrimSpace(in.Year),
	}

	var fields []string

	switch {
	case out.Email == "":
		fields = append(fields, "email")
	case !validEmail(out.Email):
		fields = append(fields, "email")
	}
	if out.Name == "" {
		fields = append(fields, "name")
	}
	if out.Institute == "" {
		fields = append(fields, "institute")
	}
	if out.DOB == "" {
		fields = append(fields, "dob")
	}

	switch out.StudentType {
	case model.StudentTypeSchool:
		if out.Class == "" {
			fields = append(fields, "class")
		}
		if out.Degree != "" {
			fields = append(fields, "degree")
		}
		if out.Major != "" {
			fields = append(fields, "major")
		}
		if out.Year != "" {
			fields = append(fields, "year")
		}
	case model.StudentTypeCollege:
		if out.Degree == "" {
			fields = append(fields, "degree")
		}
		if out.Major == "" {
			fields = append(fields, "major")
		}
		if out.Year == "" {
			fields = append(fields, "year")
		}
		if out.Class != "" {
			fields = append(fields, "class")
		}
	default:
		fields = append(fields, "studentType")
	}

	if len(fields) > 0 {
		return ProfileInput{}, &apperrors.ValidationError{Fields: fields}
	}
	return out, nil
}

// validEmail requires exactly one "@" with non-empty local and domain parts.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	return at < len(email)-1
}

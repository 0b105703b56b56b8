package model

import "time"

// StudentType classifies a profile and determines which fields are required.
type StudentType string

const (
	// StudentTypeSchool requires a class (grade) field.
	StudentTypeSchool StudentType = "school"
	// StudentTypeCollege requires degree, major, and year fields.
	StudentTypeCollege StudentType = "college"
)

// Valid reports whether the student type is one of the known variants.
func (t StudentType) Valid() bool {
	return t == StudentTypeSchool || t == StudentTypeCollege
}

// User represents a registered student account. Email is the natural key;
// which of the optional profile fields must be set is determined by
// StudentType and enforced by the profile validator before any persist.
type User struct {
	ID           string      `json:"id" gorm:"type:char(36);primaryKey"`
	Email        string      `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string      `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Name         string      `json:"name" gorm:"size:255;not null"`
	Institute    string      `json:"institute" gorm:"size:255;not null"`
	DOB          string      `json:"dob" gorm:"size:32;not null"`
	StudentType  StudentType `json:"studentType" gorm:"size:16;not null"`

	// School-only field.
	Class string `json:"class,omitempty" gorm:"size:32"`

	// College-only fields.
	Degree string `json:"degree,omitempty" gorm:"size:128"`
	Major  string `json:"major,omitempty" gorm:"size:128"`
	Year   string `json:"year,omitempty" gorm:"size:16"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

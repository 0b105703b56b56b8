package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"carevo/internal/auth"
	"carevo/internal/cache"
	apperrors "carevo/internal/errors"
	"carevo/internal/model"
	"carevo/internal/repository"
)

const profileCacheTTL = 5 * time.Minute

// SignupInput is a full registration payload.
type SignupInput struct {
	Profile  ProfileInput
	Password string
}

// ProfileUpdate is a partial profile change. Nil pointers mean "leave
// unchanged". Email, password hash, and creation time are not updatable
// through this path.
type ProfileUpdate struct {
	Name        *string
	Institute   *string
	DOB         *string
	StudentType *model.StudentType
	Class       *string
	Degree      *string
	Major       *string
	Year        *string
}

// AccountService covers the account lifecycle: signup, login, profile
// fetch, and idempotent profile update.
type AccountService interface {
	Signup(ctx context.Context, in SignupInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	GetProfile(ctx context.Context, email string) (*model.User, error)
	UpdateProfile(ctx context.Context, email string, patch ProfileUpdate) (*model.User, error)
}

type accountService struct {
	users     repository.UserRepository
	creds     *auth.CredentialManager
	validator *ProfileValidator
	cache     *cache.Client
}

// NewAccountService builds an AccountService with its collaborators.
func NewAccountService(users repository.UserRepository, creds *auth.CredentialManager, validator *ProfileValidator, cacheClient *cache.Client) AccountService {
	return &accountService{
		users:     users,
		creds:     creds,
		validator: validator,
		cache:     cacheClient,
	}
}

func (s *accountService) cacheKey(email string) string {
	return fmt.Sprintf("user:%s", email)
}

// Signup validates the payload, rejects duplicate emails, and persists a
// new account with a freshly salted password hash.
func (s *accountService) Signup(ctx context.Context, in SignupInput) (*model.User, error) {
	profile, err := s.validator.Validate(in.Profile)
	if err != nil {
		var vErr *apperrors.ValidationError
		if in.Password == "" && errors.As(err, &vErr) {
			vErr.Fields = append(vErr.Fields, "password")
		}
		return nil, err
	}
	if in.Password == "" {
		return nil, apperrors.NewValidationError("password")
	}

	existing, err := s.users.FindByEmail(ctx, profile.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateAccount
	}
	if err != nil && !errors.Is(err, apperrors.ErrAccountNotFound) {
		return nil, fmt.Errorf("check account existence: %w", err)
	}

	hash, err := s.creds.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        profile.Email,
		PasswordHash: hash,
		Name:         profile.Name,
		Institute:    profile.Institute,
		DOB:          profile.DOB,
		StudentType:  profile.StudentType,
		Class:        profile.Class,
		Degree:       profile.Degree,
		Major:        profile.Major,
		Year:         profile.Year,
	}

	// The repository reports a duplicate for the race where two signups
	// pass the existence check concurrently.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, s.cacheKey(user.Email))
	return user, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password return the same error so accounts cannot be enumerated.
func (s *accountService) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = normalizeEmail(email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.creds.Verify(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// GetProfile returns the account for email, read through the cache.
func (s *accountService) GetProfile(ctx context.Context, email string) (*model.User, error) {
	email = normalizeEmail(email)

	if data, _ := s.cache.Get(ctx, s.cacheKey(email)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(email), payload, profileCacheTTL)
	}
	return user, nil
}

// UpdateProfile merges patch into the stored record, re-validates the
// result for its (possibly changed) student type, and persists the merge.
func (s *accountService) UpdateProfile(ctx context.Context, email string, patch ProfileUpdate) (*model.User, error) {
	email = normalizeEmail(email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	merged := mergeProfile(user, patch)
	validated, err := s.validator.Validate(merged)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"name":         validated.Name,
		"institute":    validated.Institute,
		"dob":          validated.DOB,
		"student_type": validated.StudentType,
		"class":        validated.Class,
		"degree":       validated.Degree,
		"major":        validated.Major,
		"year":         validated.Year,
	}
	if err := s.users.UpdateFields(ctx, email, fields); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(email))

	return s.users.FindByEmail(ctx, email)
}

// mergeProfile applies patch on top of the stored record. A student-type
// change clears the other variant's stale fields unless the patch sets
// them explicitly, in which case validation rejects the mismatch.
func mergeProfile(user *model.User, patch ProfileUpdate) ProfileInput {
	merged := ProfileInput{
		Email:       user.Email,
		Name:        user.Name,
		Institute:   user.Institute,
		DOB:         user.DOB,
		StudentType: user.StudentType,
		Class:       user.Class,
		Degree:      user.Degree,
		Major:       user.Major,
		Year:        user.Year,
	}

	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Institute != nil {
		merged.Institute = *patch.Institute
	}
	if patch.DOB != nil {
		merged.DOB = *patch.DOB
	}
	if patch.StudentType != nil {
		merged.StudentType = *patch.StudentType
	}
	if patch.Class != nil {
		merged.Class = *patch.Class
	}
	if patch.Degree != nil {
		merged.Degree = *patch.Degree
	}
	if patch.Major != nil {
		merged.Major = *patch.Major
	}
	if patch.Year != nil {
		merged.Year = *patch.Year
	}

	if patch.StudentType != nil && *patch.StudentType != user.StudentType {
		switch *patch.StudentType {
		case model.StudentTypeSchool:
			if patch.Degree == nil {
				merged.Degree = ""
			}
			if patch.Major == nil {
				merged.Major = ""
			}
			if patch.Year == nil {
				merged.Year = ""
			}
		case model.StudentTypeCollege:
			if patch.Class == nil {
				merged.Class = ""
			}
		}
	}

	return merged
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

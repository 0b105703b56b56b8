package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"carevo/internal/model"
	"carevo/internal/service"
)

// requestValidator mirrors the router's CustomValidator wiring.
type requestValidator struct {
	validator *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

// MockAccountService is a mock implementation of service.AccountService.
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Signup(ctx context.Context, in service.SignupInput) (*model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAccountService) Login(ctx context.Context, email, password string) (*model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAccountService) GetProfile(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAccountService) UpdateProfile(ctx context.Context, email string, patch service.ProfileUpdate) (*model.User, error) {
	args := m.Called(ctx, email, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func newSignupContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &requestValidator{validator: validator.New()}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_SignupShortPasswordReachesService(t *testing.T) {
	// Password length is not a transport concern; a five-character
	// password must go through to the account service unchanged.
	body := `{"email":"a@b.com","password":"pw123","name":"Ann","institute":"X","dob":"2000-01-01","studentType":"school","class":"10"}`

	accounts := new(MockAccountService)
	accounts.On("Signup", mock.Anything, service.SignupInput{
		Profile: service.ProfileInput{
			Email:       "a@b.com",
			Name:        "Ann",
			Institute:   "X",
			DOB:         "2000-01-01",
			StudentType: model.StudentTypeSchool,
			Class:       "10",
		},
		Password: "pw123",
	}).Return(&model.User{ID: "u-1", Email: "a@b.com"}, nil)

	c, rec := newSignupContext(body)
	h := NewAuthHandler(accounts)

	err := h.Signup(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	accounts.AssertExpectations(t)
}

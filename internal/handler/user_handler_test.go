package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blogapi/internal/apperrors"
	"blogapi/internal/model"
	"blogapi/internal/service"
)

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, in service.CreateUserInput) (*model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, id uuid.UUID, in service.UpdateUserInput) (*model.User, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type testValidator struct {
	v *validator.Validate
}

func (t *testValidator) Validate(i interface{}) error {
	return t.v.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}
	return e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpErrorOf(t *testing.T, err error) *echo.HTTPError {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok, "expected *echo.HTTPError, got %T", err)
	return he
}

func TestUserHandler_ListUsers(t *testing.T) {
	t.Run("empty store yields 404, not an empty array", func(t *testing.T) {
		mockSvc := new(MockUserService)
		mockSvc.On("ListUsers", mock.Anything).Return([]model.User{}, nil)

		e := newTestEcho()
		c, _ := newJSONContext(e, http.MethodGet, "/api/v1/user", "")

		err := NewUserHandler(mockSvc).ListUsers(c)
		he := httpErrorOf(t, err)
		assert.Equal(t, http.StatusNotFound, he.Code)
		assert.Equal(t, apperrors.ErrorResponse{Message: "User Not Found."}, he.Message)
	})

	t.Run("returns all users", func(t *testing.T) {
		mockSvc := new(MockUserService)
		mockSvc.On("ListUsers", mock.Anything).Return([]model.User{
			{Name: "Ann"}, {Name: "Bob"},
		}, nil)

		e := newTestEcho()
		c, rec := newJSONContext(e, http.MethodGet, "/api/v1/user", "")

		assert.NoError(t, NewUserHandler(mockSvc).ListUsers(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var users []model.User
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
		assert.Len(t, users, 2)
	})
}

func TestUserHandler_GetUser(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		e := newTestEcho()
		c, _ := newJSONContext(e, http.MethodGet, "/api/v1/user/abc", "")
		c.SetParamNames("id")
		c.SetParamValues("abc")

		err := NewUserHandler(new(MockUserService)).GetUser(c)
		he := httpErrorOf(t, err)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})

	t.Run("missing user", func(t *testing.T) {
		id := uuid.New()
		mockSvc := new(MockUserService)
		mockSvc.On("GetUser", mock.Anything, id).Return(nil, apperrors.ErrUserNotFound)

		e := newTestEcho()
		c, _ := newJSONContext(e, http.MethodGet, "/api/v1/user/"+id.String(), "")
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		err := NewUserHandler(mockSvc).GetUser(c)
		he := httpErrorOf(t, err)
		assert.Equal(t, http.StatusNotFound, he.Code)
		assert.Equal(t, apperrors.ErrorResponse{Message: "User Not Found."}, he.Message)
	})
}

func TestUserHandler_CreateUser(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		e := newTestEcho()
		c, _ := newJSONContext(e, http.MethodPost, "/api/v1/user", `{"name":"Ann"}`)

		err := NewUserHandler(new(MockUserService)).CreateUser(c)
		he := httpErrorOf(t, err)
		assert.Equal(t, http.StatusBadRequest, he.Code)
		assert.Equal(t, apperrors.ErrorResponse{Message: "All fields are required."}, he.Message)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockSvc := new(MockUserService)
		mockSvc.On("CreateUser", mock.Anything, service.CreateUserInput{
			Name: "Ann", Email: "a@x.com", Password: "secret",
		}).Return(nil, apperrors.ErrEmailTaken)

		e := newTestEcho()
		c, _ := newJSONContext(e, http.MethodPost, "/api/v1/user",
			`{"name":"Ann","email":"a@x.com","password":"secret"}`)

		err := NewUserHandler(mockSvc).CreateUser(c)
		he := httpErrorOf(t, err)
		assert.Equal(t, http.StatusBadRequest, he.Code)
		assert.Equal(t, apperrors.ErrorResponse{Message: "Email already exits."}, he.Message)
	})

	t.Run("success responds 200 with the created record", func(t *testing.T) {
		created := &model.User{
			ID:       uuid.New(),
			Name:     "Ann",
			Email:    "a@x.com",
			Password: "$2a$10$notsecret",
			Role:     model.DefaultUserRole,
			Gender:   model.GenderUndefined,
			Status:   true,
		}
		mockSvc := new(MockUserService)
		mockSvc.On("CreateUser", mock.Anything, service.CreateUserInput{
			Name: "Ann", Email: "a@x.com", Password: "secret",
		}).Return(created, nil)

		e := newTestEcho()
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/user",
			`{"name":"Ann","email":"a@x.com","password":"secret"}`)

		assert.NoError(t, NewUserHandler(mockSvc).CreateUser(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got model.User
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Ann", got.Name)
		assert.Equal(t, "a@x.com", got.Email)
		assert.NotEqual(t, "secret", got.Password)
		mockSvc.AssertExpectations(t)
	})
}

func TestUserHandler_UpdateUser(t *testing.T) {
	t.Run("unknown id responds 200 with null body", func(t *testing.T) {
		id := uuid.New()
		mockSvc := new(MockUserService)
		mockSvc.On("UpdateUser", mock.Anything, id, mock.AnythingOfType("service.UpdateUserInput")).Return(nil, nil)

		e := newTestEcho()
		c, rec := newJSONContext(e, http.MethodPut, "/api/v1/user/"+id.String(), `{"name":"New"}`)
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		assert.NoError(t, NewUserHandler(mockSvc).UpdateUser(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("invalid gender", func(t *testing.T) {
		id := uuid.New()
		e := newTestEcho()
		c, _ := newJSONContext(e, http.MethodPut, "/api/v1/user/"+id.String(), `{"gender":"other"}`)
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		err := NewUserHandler(new(MockUserService)).UpdateUser(c)
		he := httpErrorOf(t, err)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})
}

func TestUserHandler_DeleteUser(t *testing.T) {
	t.Run("missing user", func(t *testing.T) {
		id := uuid.New()
		mockSvc := new(MockUserService)
		mockSvc.On("DeleteUser", mock.Anything, id).Return(nil, apperrors.ErrUserNotFound)

		e := newTestEcho()
		c, _ := newJSONContext(e, http.MethodDelete, "/api/v1/user/"+id.String(), "")
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		err := NewUserHandler(mockSvc).DeleteUser(c)
		he := httpErrorOf(t, err)
		assert.Equal(t, http.StatusNotFound, he.Code)
		assert.Equal(t, apperrors.ErrorResponse{Message: "User Not Found."}, he.Message)
	})

	t.Run("success includes confirmation and the removed record", func(t *testing.T) {
		id := uuid.New()
		mockSvc := new(MockUserService)
		mockSvc.On("DeleteUser", mock.Anything, id).Return(&model.User{ID: id, Name: "Ann"}, nil)

		e := newTestEcho()
		c, rec := newJSONContext(e, http.MethodDelete, "/api/v1/user/"+id.String(), "")
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		assert.NoError(t, NewUserHandler(mockSvc).DeleteUser(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp DeleteUserResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "User deleted successfull.", resp.Message)
		assert.Equal(t, "Ann", resp.User.Name)
	})
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sprintdesk/taskboard/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, name, password string, role domain.Role) (*domain.User, error)
	loginFn    func(ctx context.Context, name, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, name, password string, role domain.Role) (*domain.User, error) {
	return s.registerFn(ctx, name, password, role)
}

func (s *stubAuthService) Login(ctx context.Context, name, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, name, password)
}

type stubUserLister struct {
	users []*domain.User
}

func (s *stubUserLister) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (s *stubUserLister) FindByID(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserLister) FindByName(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserLister) List(_ context.Context) ([]*domain.User, error) {
	return s.users, nil
}

func newAuthContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, password string, role domain.Role) (*domain.User, error) {
			if name != "Amal" || role != domain.RoleDeveloper {
				t.Fatalf("unexpected args: %s %s", name, role)
			}
			return &domain.User{ID: "u1", Name: name, Role: role}, nil
		},
	}
	handler := NewAuthHandler(stub, &stubUserLister{})

	c, rec := newAuthContext(t, http.MethodPost, "/v1/auth/register",
		`{"name":"Amal","password":"s3cret","role":"developer"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["name"] != "Amal" || user["role"] != "developer" {
		t.Fatalf("unexpected user payload: %+v", resp)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatal("password hash must never be serialized")
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, password string, role domain.Role) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub, &stubUserLister{})

	c, _ := newAuthContext(t, http.MethodPost, "/v1/auth/register",
		`{"name":"Amal","password":"s3cret","role":"developer"}`)

	err := handler.Register(c)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected user exists to propagate to the error handler, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, password string, role domain.Role) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, &stubUserLister{})

	c, rec := newAuthContext(t, http.MethodPost, "/v1/auth/register", "not-json")

	_ = handler.Register(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, password string, role domain.Role) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, &stubUserLister{})

	c, rec := newAuthContext(t, http.MethodPost, "/v1/auth/register",
		`{"name":"Amal","password":"ab","role":"developer"}`)

	_ = handler.Register(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, name, password string) (string, *domain.User, error) {
			if name != "Amal" || password != "s3cret" {
				t.Fatalf("unexpected args: %s %s", name, password)
			}
			return "token123", &domain.User{ID: "u1", Name: "Amal", Role: domain.RoleAdmin}, nil
		},
	}
	handler := NewAuthHandler(stub, &stubUserLister{})

	c, rec := newAuthContext(t, http.MethodPost, "/v1/auth/login",
		`{"name":"Amal","password":"s3cret"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, name, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, &stubUserLister{})

	c, _ := newAuthContext(t, http.MethodPost, "/v1/auth/login",
		`{"name":"Amal","password":"bad"}`)

	err := handler.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials to propagate, got %v", err)
	}
}

func TestAuthHandler_ListUsers(t *testing.T) {
	users := &stubUserLister{users: []*domain.User{
		{ID: "u1", Name: "Amal", Role: domain.RoleAdmin},
		{ID: "u2", Name: "Basim", Role: domain.RoleViewer},
	}}
	handler := NewAuthHandler(&stubAuthService{}, users)

	c, rec := newAuthContext(t, http.MethodGet, "/v1/users", "")

	if err := handler.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0]["name"] != "Amal" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"eduportal/database/inmem"
	auth_handlers "eduportal/handlers/auth"
	"eduportal/store"
	"eduportal/utils/auth"
	"eduportal/utils/middleware"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	records := store.New(inmem.NewRepositories(), inmem.NewSessionStore())
	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: "test-secret",
		Expiry: time.Hour,
		Issuer: "eduportal-test",
	})
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, records)
	handler := auth_handlers.NewAuthHandler(records, jwtManager, nil)

	app := fiber.New()
	app.Post("/auth/register", handler.Register)
	app.Post("/auth/login", handler.Login)
	app.Post("/auth/logout", authMiddleware.Optional(), handler.Logout)
	app.Get("/auth/me", authMiddleware.Required(), handler.Me)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test(%s %s) failed: %v", method, path, err)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, env
}

func TestAuthFlow(t *testing.T) {
	app := newTestApp(t)

	// Register
	resp, _ := doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"username": "alice",
		"email":    "alice@x.com",
		"password": "password123",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d, want 201", resp.StatusCode)
	}

	// Login
	resp, env := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"username": "alice",
		"password": "password123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want 200", resp.StatusCode)
	}

	var loginData struct {
		User struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(env.Data, &loginData); err != nil {
		t.Fatalf("decode login data: %v", err)
	}
	if loginData.User.Username != "alice" || loginData.User.Role != "student" {
		t.Errorf("login user = %+v", loginData.User)
	}
	if loginData.AccessToken == "" {
		t.Fatal("login returned no token")
	}

	// Me with the token
	resp, env = doJSON(t, app, http.MethodGet, "/auth/me", loginData.AccessToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me status = %d, want 200", resp.StatusCode)
	}
	var me struct {
		Username string `json:"username"`
	}
	if err := json.Unmarshal(env.Data, &me); err != nil {
		t.Fatalf("decode me data: %v", err)
	}
	if me.Username != "alice" {
		t.Errorf("me username = %q, want alice", me.Username)
	}

	// Logout revokes the token immediately
	resp, _ = doJSON(t, app, http.MethodPost, "/auth/logout", loginData.AccessToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout status = %d, want 200", resp.StatusCode)
	}
	resp, _ = doJSON(t, app, http.MethodGet, "/auth/me", loginData.AccessToken, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("me after logout status = %d, want 401", resp.StatusCode)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"username": "alice",
		"email":    "alice@x.com",
		"password": "password123",
	})

	resp, env := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"username": "alice",
		"password": "wrong-password",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("login status = %d, want 401", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Code != "UNAUTHORIZED" {
		t.Errorf("error envelope = %+v, want UNAUTHORIZED", env.Error)
	}
}

func TestRegisterConflictStatus(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"username": "bob",
		"email":    "bob@x.com",
		"password": "password123",
	})

	resp, env := doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"username": "bob",
		"email":    "different@x.com",
		"password": "password123",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate register status = %d, want 409", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Code != "CONFLICT" {
		t.Errorf("error envelope = %+v, want CONFLICT", env.Error)
	}
}

func TestMeWithoutToken(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/auth/me", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("me status = %d, want 401", resp.StatusCode)
	}
}

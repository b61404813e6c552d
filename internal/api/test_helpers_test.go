package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/junipershade/petal/internal/activity"
	"github.com/junipershade/petal/internal/db"
	"github.com/sirupsen/logrus"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "petal-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	log := logrus.New()
	log.SetOutput(io.Discard)

	handler := NewHandler(database, "test-secret-key", time.UTC, log, activity.NopLogger{}, false)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func jsonRequest(t *testing.T, method string, target string, payload any, authCookie string) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, target, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}
	return request
}

func decodeJSONBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()

	defer response.Body.Close()
	decoded := map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return decoded
}

func authCookieFrom(t *testing.T, response *http.Response) string {
	t.Helper()

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatal("expected an auth cookie in the response")
	return ""
}

// registerTestUser signs up a fresh account and returns its session cookie.
func registerTestUser(t *testing.T, app *fiber.App) string {
	t.Helper()

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]any{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "sturdy-passphrase",
	}, ""), -1)
	if err != nil {
		t.Fatalf("register request failed: %v", err)
	}
	if response.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected 201 from register, got %d: %s", response.StatusCode, string(body))
	}
	return authCookieFrom(t, response)
}

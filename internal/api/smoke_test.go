package api

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/noctiluca/thermia/internal/db"
)

type testClient struct {
	t      *testing.T
	app    *fiber.App
	cookie string
}

func newTestClient(t *testing.T) *testClient {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "thermia.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, NewHandler(database, "test-secret", time.UTC, false))
	return &testClient{t: t, app: app}
}

func (client *testClient) request(method, path string, body any) *http.Response {
	client.t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			client.t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequest(method, path, reader)
	if err != nil {
		client.t.Fatalf("build request: %v", err)
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if client.cookie != "" {
		request.Header.Set("Cookie", client.cookie)
	}

	response, err := client.app.Test(request, -1)
	if err != nil {
		client.t.Fatalf("%s %s failed: %v", method, path, err)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName {
			client.cookie = fmt.Sprintf("%s=%s", cookie.Name, cookie.Value)
		}
	}
	return response
}

func (client *testClient) mustStatus(response *http.Response, want int) {
	client.t.Helper()
	if response.StatusCode != want {
		payload, _ := io.ReadAll(response.Body)
		client.t.Fatalf("expected status %d, got %d: %s", want, response.StatusCode, payload)
	}
}

func decodeJSON(t *testing.T, response *http.Response, target any) {
	t.Helper()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestAPISmoke(t *testing.T) {
	client := newTestClient(t)

	client.mustStatus(client.request(http.MethodGet, "/healthz", nil), http.StatusOK)

	// Protected routes refuse anonymous callers.
	client.mustStatus(client.request(http.MethodGet, "/api/readings", nil), http.StatusUnauthorized)

	status := map[string]bool{}
	response := client.request(http.MethodGet, "/api/auth/setup-status", nil)
	client.mustStatus(response, http.StatusOK)
	decodeJSON(t, response, &status)
	if status["setup_completed"] {
		t.Fatalf("expected setup incomplete on a fresh database")
	}

	client.mustStatus(client.request(http.MethodPost, "/api/auth/setup", map[string]string{
		"email":    "owner@example.com",
		"password": "correct horse",
	}), http.StatusCreated)
	if client.cookie == "" {
		t.Fatalf("expected an auth cookie after setup")
	}

	client.mustStatus(client.request(http.MethodPost, "/api/auth/setup", map[string]string{
		"email":    "second@example.com",
		"password": "another pass",
	}), http.StatusConflict)

	client.mustStatus(client.request(http.MethodPost, "/api/readings", map[string]any{
		"timestamp":           "2024-03-05T07:30:00Z",
		"temperature_celsius": 36.55,
	}), http.StatusCreated)
	client.mustStatus(client.request(http.MethodPost, "/api/readings", map[string]any{
		"timestamp":           "2024-03-06T07:30:00Z",
		"temperature_celsius": 52.0,
	}), http.StatusBadRequest)

	client.mustStatus(client.request(http.MethodPost, "/api/cycle-starts", map[string]string{
		"start_date": "2024-03-01",
	}), http.StatusCreated)
	client.mustStatus(client.request(http.MethodPost, "/api/cycle-starts", map[string]string{
		"start_date": "2024-03-01",
	}), http.StatusConflict)

	overview := map[string]any{}
	response = client.request(http.MethodGet, "/api/stats/overview", nil)
	client.mustStatus(response, http.StatusOK)
	decodeJSON(t, response, &overview)
	if overview["reading_count"] != float64(1) {
		t.Fatalf("expected 1 reading in the overview, got %v", overview["reading_count"])
	}

	response = client.request(http.MethodGet, "/api/export/csv", nil)
	client.mustStatus(response, http.StatusOK)
	scanner := bufio.NewScanner(response.Body)
	if !scanner.Scan() || !strings.HasPrefix(scanner.Text(), "Date,Time,Temperature_Celsius") {
		t.Fatalf("expected CSV header row, got %q", scanner.Text())
	}
}

func TestAPILoginRejectsBadCredentials(t *testing.T) {
	client := newTestClient(t)

	client.mustStatus(client.request(http.MethodPost, "/api/auth/setup", map[string]string{
		"email":    "owner@example.com",
		"password": "correct horse",
	}), http.StatusCreated)

	client.cookie = ""
	client.mustStatus(client.request(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "owner@example.com",
		"password": "wrong",
	}), http.StatusUnauthorized)

	client.mustStatus(client.request(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "Owner@Example.com",
		"password": "correct horse",
	}), http.StatusOK)
	if client.cookie == "" {
		t.Fatalf("expected an auth cookie after login")
	}
	client.mustStatus(client.request(http.MethodGet, "/api/readings", nil), http.StatusOK)
}

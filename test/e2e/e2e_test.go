//go:build e2e
// +build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
	"github.com/stemsi/asistnet-backend/internal/model"
)

const (
	defaultBaseURL = "http://localhost:5000"
	adminUser      = "admin"
	adminPass      = "admin123"
)

var (
	baseURL    string
	adminToken string
)

func TestMain(m *testing.M) {
	// Load .env if present (ignore error)
	_ = godotenv.Load("../../.env")

	baseURL = os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	if err := waitForServer(); err != nil {
		fmt.Printf("Setup failed: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

func waitForServer() error {
	deadline := time.Now().Add(15 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := get("/health", "")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("server at %s not healthy", baseURL)
}

func TestE2EFlow(t *testing.T) {
	// Step 1: Login as admin
	t.Run("Login", func(t *testing.T) {
		resp, err := post("/api/login", map[string]string{"username": adminUser, "password": adminPass}, "")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status %d: %s", resp.StatusCode, readBody(resp))
		}

		var body struct {
			Success bool              `json:"success"`
			User    model.UserSummary `json:"user"`
			Token   string            `json:"token"`
		}
		decodeJSON(t, resp, &body)
		if !body.Success || body.User.Role != model.RoleAdmin {
			t.Fatalf("unexpected login body %+v", body)
		}
		adminToken = body.Token
		if adminToken == "" {
			t.Fatal("token missing")
		}
	})

	// Step 1b: Wrong password
	t.Run("LoginInvalid", func(t *testing.T) {
		resp, err := post("/api/login", map[string]string{"username": adminUser, "password": "wrong"}, "")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d: %s", resp.StatusCode, readBody(resp))
		}
	})

	// Step 2: Token introspection
	t.Run("Me", func(t *testing.T) {
		resp, err := get("/api/auth/me", adminToken)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status %d: %s", resp.StatusCode, readBody(resp))
		}
	})

	// Step 3: Profile
	t.Run("GetProfile", func(t *testing.T) {
		resp, err := get("/api/user/profile", "")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		var body struct {
			Data model.Student `json:"data"`
		}
		decodeJSON(t, resp, &body)
		if body.Data.ID != "EST2024001" {
			t.Fatalf("unexpected profile %+v", body.Data)
		}
	})

	// Step 4: Attendance history
	t.Run("GetAttendance", func(t *testing.T) {
		resp, err := get("/api/user/attendance?limit=5", "")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		var body struct {
			Data []model.AttendanceRecord `json:"data"`
		}
		decodeJSON(t, resp, &body)
		if len(body.Data) != 5 {
			t.Fatalf("expected 5 records, got %d", len(body.Data))
		}
		today := time.Now().Format(model.DateLayout)
		if body.Data[0].Date != today {
			t.Logf("first record dated %s, server day may differ from %s", body.Data[0].Date, today)
		}
	})

	// Step 5: Search
	t.Run("Search", func(t *testing.T) {
		resp, err := get("/api/search?q=juan&type=students", "")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		var body struct {
			Count int `json:"count"`
		}
		decodeJSON(t, resp, &body)
		if body.Count != 1 {
			t.Fatalf("expected 1 result, got %d", body.Count)
		}
	})

	// Step 6: Profile update is acknowledged but not applied
	t.Run("UpdateProfile", func(t *testing.T) {
		resp, err := post("/api/user/update", map[string]string{"name": "E2E"}, "")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status %d: %s", resp.StatusCode, readBody(resp))
		}

		resp2, err := get("/api/user/profile", "")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp2.Body.Close()

		var body struct {
			Data model.Student `json:"data"`
		}
		decodeJSON(t, resp2, &body)
		if body.Data.Name == "E2E" {
			t.Fatal("profile should not change after update")
		}
	})

	// Step 7: Notifications over HTTP and WebSocket
	t.Run("Notifications", func(t *testing.T) {
		resp, err := get("/api/notifications", "")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		var body struct {
			Data []model.Notification `json:"data"`
		}
		decodeJSON(t, resp, &body)
		if len(body.Data) != 2 {
			t.Fatalf("expected 2 notifications, got %d", len(body.Data))
		}
	})

	t.Run("NotificationStream", func(t *testing.T) {
		wsURL := "ws" + strings.TrimPrefix(baseURL, "http") + "/ws/notifications"
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		if err != nil {
			t.Fatalf("dial: %v", err)
		}
		defer conn.Close()

		var msg struct {
			Event string               `json:"event"`
			Data  []model.Notification `json:"data"`
		}
		_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read: %v", err)
		}
		if msg.Event != "notifications" || len(msg.Data) != 2 {
			t.Fatalf("unexpected message %+v", msg)
		}
	})
}

func post(path string, body interface{}, token string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequest("POST", baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	client := &http.Client{Timeout: 10 * time.Second}
	return client.Do(req)
}

func get(path string, token string) (*http.Response, error) {
	req, err := http.NewRequest("GET", baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	client := &http.Client{Timeout: 10 * time.Second}
	return client.Do(req)
}

func readBody(resp *http.Response) string {
	b, _ := io.ReadAll(resp.Body)
	return string(b)
}

func decodeJSON(t *testing.T, resp *http.Response, v interface{}) {
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("json decode: %v", err)
	}
}

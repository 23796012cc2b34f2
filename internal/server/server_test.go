package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/ayushi/fitsense/internal/detector"
	"github.com/ayushi/fitsense/internal/engine"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	e := engine.New(engine.Config{Detector: detector.NewMockDetector()})
	t.Cleanup(func() {
		e.Close()
	})
	return New(Config{Engine: e})
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	t.Run("returns 200 with JSON response", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		rec := httptest.NewRecorder()

		s.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
		}

		var response map[string]interface{}
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		if response["status"] != "ok" {
			t.Errorf("expected status 'ok', got %v", response["status"])
		}

		if _, exists := response["uptime"]; !exists {
			t.Error("expected 'uptime' field in response")
		}
	})

	t.Run("only allows GET method", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
		rec := httptest.NewRecorder()

		s.ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
		}
	})
}

func TestServer_UnknownRoute(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nonsense", nil)
	rec := httptest.NewRecorder()

	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestLiveHandler_Stream(t *testing.T) {
	s := newTestServer(t)
	ts := httptest.NewServer(s)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/live"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("failed to dial websocket: %v", err)
	}
	defer conn.Close()

	front := detector.StandingFrontSet()

	// A good frame yields a profile.
	frame := liveFrame{
		FrontLandmarks:    front.Points[:],
		CalibrationHeight: 175,
		Gender:            "male",
	}
	if err := conn.WriteJSON(frame); err != nil {
		t.Fatalf("failed to write frame: %v", err)
	}

	var result liveResult
	if err := conn.ReadJSON(&result); err != nil {
		t.Fatalf("failed to read result: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got message %q", result.Message)
	}
	if result.Measurements == nil || result.Measurements.ShoulderWidth <= 0 {
		t.Errorf("expected a measurement profile, got %+v", result.Measurements)
	}

	// A bad side frame degrades to front-only instead of failing.
	frame.SideLandmarks = front.Points[:5]
	if err := conn.WriteJSON(frame); err != nil {
		t.Fatalf("failed to write frame: %v", err)
	}
	if err := conn.ReadJSON(&result); err != nil {
		t.Fatalf("failed to read result: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success with an unusable side frame, got message %q", result.Message)
	}
	if result.Measurements == nil || result.Measurements.Chest != nil {
		t.Error("expected null chest when the side frame is unusable")
	}
	frame.SideLandmarks = nil

	// A bad frame reports the failure in-band and keeps the stream open.
	frame.CalibrationHeight = 0
	if err := conn.WriteJSON(frame); err != nil {
		t.Fatalf("failed to write frame: %v", err)
	}
	if err := conn.ReadJSON(&result); err != nil {
		t.Fatalf("failed to read result: %v", err)
	}
	if result.Success {
		t.Error("expected success=false for zero calibration height")
	}
	if result.Message == "" {
		t.Error("expected a failure message")
	}

	// The connection survives the failed frame.
	frame.CalibrationHeight = 180
	if err := conn.WriteJSON(frame); err != nil {
		t.Fatalf("failed to write frame: %v", err)
	}
	if err := conn.ReadJSON(&result); err != nil {
		t.Fatalf("failed to read result: %v", err)
	}
	if !result.Success {
		t.Errorf("expected success after recovery, got message %q", result.Message)
	}
}

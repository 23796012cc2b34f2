package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/ayushi/fitsense/internal/engine"
	"github.com/ayushi/fitsense/internal/measure"
	"github.com/ayushi/fitsense/internal/pose"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// liveFrame is one client message on the live measurement stream: landmark
// sets plus calibration data for a single video frame.
type liveFrame struct {
	FrontLandmarks    []pose.Landmark `json:"front_landmarks"`
	SideLandmarks     []pose.Landmark `json:"side_landmarks,omitempty"`
	CalibrationHeight float64         `json:"calibration_height"`
	Gender            string          `json:"gender"`
	Units             string          `json:"units"`
}

// liveResult is the per-frame reply.
type liveResult struct {
	Success      bool             `json:"success"`
	Measurements *measure.Profile `json:"measurements,omitempty"`
	Confidence   float64          `json:"confidence,omitempty"`
	Message      string           `json:"message,omitempty"`
}

// LiveHandler runs the measurement pipeline over a WebSocket stream: the
// client pushes one landmark frame per message and receives one profile (or
// failure) per frame.
type LiveHandler struct {
	engine *engine.Engine
}

// NewLiveHandler creates a new LiveHandler backed by the given engine.
func NewLiveHandler(e *engine.Engine) *LiveHandler {
	return &LiveHandler{engine: e}
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	for {
		var frame liveFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("websocket read error: %v", err)
			}
			return
		}

		if err := conn.WriteJSON(h.measureFrame(frame)); err != nil {
			log.Printf("websocket write error: %v", err)
			return
		}
	}
}

// measureFrame runs one frame through the measurement pipeline. Failures are
// reported in-band so the client can keep streaming.
func (h *LiveHandler) measureFrame(frame liveFrame) liveResult {
	gender, err := measure.ParseGender(frame.Gender)
	if err != nil {
		return liveResult{Message: err.Error()}
	}
	units, err := measure.ParseUnit(frame.Units)
	if err != nil {
		return liveResult{Message: err.Error()}
	}

	front, err := pose.NewSet(frame.FrontLandmarks, pose.ViewFront)
	if err != nil {
		return liveResult{Message: err.Error()}
	}

	// A bad side frame only disables chest estimation.
	var side *pose.Set
	if len(frame.SideLandmarks) > 0 {
		side, err = pose.NewSet(frame.SideLandmarks, pose.ViewSide)
		if err != nil {
			log.Printf("side frame unusable (%v), proceeding with front only", err)
			side = nil
		}
	}

	profile, err := h.engine.Measure(front, side, frame.CalibrationHeight, gender, units)
	if err != nil {
		// Transient detection failures are expected mid-stream.
		if !errors.Is(err, pose.ErrPoseDetection) && !errors.Is(err, measure.ErrCalibration) {
			log.Printf("live measurement error: %v", err)
		}
		return liveResult{Message: err.Error()}
	}

	return liveResult{
		Success:      true,
		Measurements: profile,
		Confidence:   front.Confidence(),
	}
}

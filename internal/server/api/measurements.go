// Package api provides HTTP API handlers for the FitSense measurement
// service.
package api

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/ayushi/fitsense/internal/catalog"
	"github.com/ayushi/fitsense/internal/engine"
	"github.com/ayushi/fitsense/internal/measure"
	"github.com/ayushi/fitsense/internal/pose"
	"github.com/ayushi/fitsense/internal/store"
)

// MeasurementsHandler handles HTTP requests for measurement resources.
type MeasurementsHandler struct {
	engine *engine.Engine
	store  *store.Store
}

// NewMeasurementsHandler creates a new MeasurementsHandler. The store may be
// nil, in which case successful measurements are not persisted.
func NewMeasurementsHandler(e *engine.Engine, s *store.Store) *MeasurementsHandler {
	return &MeasurementsHandler{engine: e, store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests to
// appropriate methods.
func (h *MeasurementsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/measurements/calculate, /api/measurements/history,
	// /api/measurements/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/measurements")
	path = strings.TrimPrefix(path, "/")

	switch path {
	case "calculate":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.calculate(w, r)
	case "history":
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.history(w, r)
	case "":
		http.NotFound(w, r)
	default:
		id := path
		switch r.Method {
		case http.MethodGet:
			h.get(w, r, id)
		case http.MethodDelete:
			h.delete(w, r, id)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// Request and response types

type measurementRequest struct {
	FrontImage        string          `json:"front_image,omitempty"`
	SideImage         string          `json:"side_image,omitempty"`
	FrontLandmarks    []pose.Landmark `json:"front_landmarks,omitempty"`
	SideLandmarks     []pose.Landmark `json:"side_landmarks,omitempty"`
	CalibrationHeight float64         `json:"calibration_height"`
	Gender            string          `json:"gender"`
	Units             string          `json:"units"`
}

type measurementResponse struct {
	Success        bool             `json:"success"`
	ID             string           `json:"id,omitempty"`
	Measurements   *measure.Profile `json:"measurements"`
	Confidence     float64          `json:"confidence"`
	FrontLandmarks []pose.Landmark  `json:"front_landmarks,omitempty"`
	SideLandmarks  []pose.Landmark  `json:"side_landmarks,omitempty"`
}

type historyEntry struct {
	ID                string          `json:"id"`
	Gender            string          `json:"gender"`
	CalibrationHeight float64         `json:"calibration_height"`
	Measurements      measure.Profile `json:"measurements"`
	Confidence        float64         `json:"confidence"`
	CreatedAt         string          `json:"created_at"`
}

type historyResponse struct {
	Success      bool           `json:"success"`
	Measurements []historyEntry `json:"measurements"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// toHistoryEntry converts a store.MeasurementRecord to a historyEntry.
func toHistoryEntry(m *store.MeasurementRecord) historyEntry {
	return historyEntry{
		ID:                m.ID,
		Gender:            string(m.Gender),
		CalibrationHeight: m.CalibrationHeight,
		Measurements:      m.Profile(),
		Confidence:        m.Confidence,
		CreatedAt:         m.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response with success=false.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Message: message})
}

// writeEngineError maps a pipeline error onto the HTTP status table:
// validation 400, pose detection and calibration 422, unknown catalog
// entries and missing records 404.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, measure.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, pose.ErrPoseDetection):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, measure.ErrCalibration):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// resolveSet builds the landmark set for one view, preferring pre-computed
// landmarks over an image. Returns nil with no error when the view is
// absent.
func (h *MeasurementsHandler) resolveSet(landmarks []pose.Landmark, image string, view pose.View) (*pose.Set, error) {
	if len(landmarks) > 0 {
		set, err := pose.NewSet(landmarks, view)
		if err != nil {
			return nil, fmt.Errorf("%w: %s landmarks: %v", measure.ErrValidation, view, err)
		}
		return set, nil
	}
	if image == "" {
		return nil, nil
	}

	data, err := base64.StdEncoding.DecodeString(image)
	if err != nil {
		return nil, fmt.Errorf("%w: %s image is not valid base64", measure.ErrValidation, view)
	}
	return h.engine.DetectSet(data, view)
}

// calculate handles POST /api/measurements/calculate and runs the full
// measurement pipeline.
func (h *MeasurementsHandler) calculate(w http.ResponseWriter, r *http.Request) {
	var req measurementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.FrontImage == "" && len(req.FrontLandmarks) == 0 {
		writeError(w, http.StatusBadRequest, "front_image or front_landmarks is required")
		return
	}
	if req.CalibrationHeight <= 0 {
		writeError(w, http.StatusBadRequest, "calibration_height must be positive")
		return
	}

	gender, err := measure.ParseGender(req.Gender)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	units, err := measure.ParseUnit(req.Units)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	front, err := h.resolveSet(req.FrontLandmarks, req.FrontImage, pose.ViewFront)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	// A failed side view never fails the request, it only disables chest
	// estimation.
	side, err := h.resolveSet(req.SideLandmarks, req.SideImage, pose.ViewSide)
	if err != nil {
		log.Printf("side view unusable (%v), proceeding with front only", err)
		side = nil
	}

	profile, err := h.engine.Measure(front, side, req.CalibrationHeight, gender, units)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	resp := measurementResponse{
		Success:        true,
		Measurements:   profile,
		Confidence:     front.Confidence(),
		FrontLandmarks: front.Points[:],
	}
	if side != nil {
		resp.SideLandmarks = side.Points[:]
	}

	if h.store != nil {
		resp.ID = h.persist(profile, req.CalibrationHeight, gender, resp.Confidence)
	}

	writeJSON(w, http.StatusOK, resp)
}

// persist stores a successful measurement and returns its record ID. Storage
// failures are logged, not surfaced: the measurement itself succeeded.
func (h *MeasurementsHandler) persist(profile *measure.Profile, heightCm float64, gender measure.Gender, confidence float64) string {
	metric := profile.Convert(measure.UnitMetric)
	rec := &store.MeasurementRecord{
		Gender:            gender,
		CalibrationHeight: heightCm,
		ShoulderWidth:     metric.ShoulderWidth,
		Chest:             metric.Chest,
		Waist:             metric.Waist,
		Hip:               metric.Hip,
		Height:            metric.Height,
		Inseam:            metric.Inseam,
		Confidence:        confidence,
	}
	if err := h.store.Measurements().Create(rec); err != nil {
		log.Printf("failed to store measurement: %v", err)
		return ""
	}
	return rec.ID
}

// history handles GET /api/measurements/history and returns recent stored
// measurements, newest first.
func (h *MeasurementsHandler) history(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(w, http.StatusServiceUnavailable, "Measurement history is not available")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	records, err := h.store.Measurements().List(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list measurements")
		return
	}

	resp := historyResponse{
		Success:      true,
		Measurements: make([]historyEntry, 0, len(records)),
	}
	for _, rec := range records {
		resp.Measurements = append(resp.Measurements, toHistoryEntry(rec))
	}

	writeJSON(w, http.StatusOK, resp)
}

// get handles GET /api/measurements/{id} and returns one stored measurement.
func (h *MeasurementsHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	if h.store == nil {
		writeError(w, http.StatusServiceUnavailable, "Measurement history is not available")
		return
	}

	rec, err := h.store.Measurements().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Measurement not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get measurement")
		return
	}

	writeJSON(w, http.StatusOK, toHistoryEntry(rec))
}

// delete handles DELETE /api/measurements/{id} and removes a stored
// measurement.
func (h *MeasurementsHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if h.store == nil {
		writeError(w, http.StatusServiceUnavailable, "Measurement history is not available")
		return
	}

	if err := h.store.Measurements().Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Measurement not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete measurement")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

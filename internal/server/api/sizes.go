package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ayushi/fitsense/internal/catalog"
	"github.com/ayushi/fitsense/internal/engine"
	"github.com/ayushi/fitsense/internal/fit"
	"github.com/ayushi/fitsense/internal/measure"
)

// SizesHandler handles HTTP requests for size-chart and recommendation
// resources.
type SizesHandler struct {
	engine *engine.Engine
}

// NewSizesHandler creates a new SizesHandler backed by the given engine.
func NewSizesHandler(e *engine.Engine) *SizesHandler {
	return &SizesHandler{engine: e}
}

// ServeHTTP implements the http.Handler interface and routes requests to
// appropriate methods.
func (h *SizesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/sizes/recommend, /api/sizes/categories,
	// /api/sizes/chart/{category}
	path := strings.TrimPrefix(r.URL.Path, "/api/sizes")
	path = strings.TrimPrefix(path, "/")

	switch {
	case path == "recommend":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.recommend(w, r)
	case path == "categories":
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.categories(w, r)
	case strings.HasPrefix(path, "chart/"):
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.chart(w, r, strings.TrimPrefix(path, "chart/"))
	default:
		http.NotFound(w, r)
	}
}

type recommendRequest struct {
	Measurements    measure.Profile `json:"measurements"`
	GarmentCategory string          `json:"garment_category"`
}

type recommendResponse struct {
	Success bool `json:"success"`
	fit.Response
}

type categoriesResponse struct {
	Success    bool           `json:"success"`
	Categories []catalog.Info `json:"categories"`
}

type chartResponse struct {
	Success bool `json:"success"`
	*catalog.Category
}

// profileEmpty reports whether a profile carries no usable measurement. An
// absent measurements object decodes to exactly this shape.
func profileEmpty(p measure.Profile) bool {
	if p.Chest != nil && *p.Chest > 0 {
		return false
	}
	for _, v := range []float64{p.ShoulderWidth, p.Waist, p.Hip, p.Height, p.Inseam} {
		if v > 0 {
			return false
		}
	}
	return true
}

// recommend handles POST /api/sizes/recommend and scores every band of the
// requested category against the supplied measurements.
func (h *SizesHandler) recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.GarmentCategory == "" {
		writeError(w, http.StatusBadRequest, "garment_category is required")
		return
	}
	if profileEmpty(req.Measurements) {
		writeError(w, http.StatusBadRequest, "measurements with at least one positive value is required")
		return
	}

	units, err := measure.ParseUnit(string(req.Measurements.Units))
	if err != nil {
		writeEngineError(w, err)
		return
	}
	req.Measurements.Units = units

	result, err := h.engine.Recommend(req.Measurements, req.GarmentCategory)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recommendResponse{Success: true, Response: *result})
}

// categories handles GET /api/sizes/categories with an optional ?gender=
// audience filter.
func (h *SizesHandler) categories(w http.ResponseWriter, r *http.Request) {
	gender, err := measure.ParseGender(r.URL.Query().Get("gender"))
	if err != nil {
		writeEngineError(w, err)
		return
	}

	// An absent filter lists every category, not the male default.
	if r.URL.Query().Get("gender") == "" {
		gender = ""
	}

	writeJSON(w, http.StatusOK, categoriesResponse{
		Success:    true,
		Categories: h.engine.Categories(gender),
	})
}

// chart handles GET /api/sizes/chart/{category} and returns the full band
// table.
func (h *SizesHandler) chart(w http.ResponseWriter, r *http.Request, key string) {
	cat, err := h.engine.Chart(key)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, chartResponse{Success: true, Category: cat})
}

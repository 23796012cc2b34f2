// Package testdata provides preset landmark fixtures for tests.
package testdata

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/ayushi/fitsense/internal/pose"
)

//go:embed landmarks/*
var landmarksFS embed.FS

// LoadLandmarks loads a raw landmark array by fixture name.
func LoadLandmarks(name string) ([]pose.Landmark, error) {
	data, err := landmarksFS.ReadFile("landmarks/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("load landmarks %s: %w", name, err)
	}

	var points []pose.Landmark
	if err := json.Unmarshal(data, &points); err != nil {
		return nil, fmt.Errorf("decode landmarks %s: %w", name, err)
	}

	return points, nil
}

// LoadSet loads a fixture as a landmark set for the given view.
func LoadSet(name string, view pose.View) (*pose.Set, error) {
	points, err := LoadLandmarks(name)
	if err != nil {
		return nil, err
	}
	return pose.NewSet(points, view)
}

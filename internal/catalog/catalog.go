// Package catalog holds the immutable garment size-chart catalog.
//
// The catalog is built once at init and never mutated, so it is safe for
// unsynchronized concurrent reads.
package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested category does not exist.
var ErrNotFound = errors.New("category not found")

// Audience states which shoppers a category applies to. Category key strings
// keep their historical gender prefixes for compatibility, but filtering uses
// this explicit field rather than the naming convention.
type Audience string

const (
	AudienceMale   Audience = "male"
	AudienceFemale Audience = "female"
	AudienceUnisex Audience = "unisex"
)

// Measurement keys used in size-band ranges, matching the measurement
// profile field names.
const (
	MeasurementShoulderWidth = "shoulder_width"
	MeasurementChest         = "chest"
	MeasurementWaist         = "waist"
	MeasurementHip           = "hip"
	MeasurementInseam        = "inseam"
)

// MeasurementOrder is the canonical presentation order for per-measurement
// fit analysis.
var MeasurementOrder = []string{
	MeasurementChest,
	MeasurementShoulderWidth,
	MeasurementWaist,
	MeasurementHip,
	MeasurementInseam,
}

// Range is an inclusive acceptable measurement range in centimeters.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Center returns the midpoint of the range.
func (r Range) Center() float64 { return (r.Min + r.Max) / 2 }

// Halfwidth returns half the span of the range.
func (r Range) Halfwidth() float64 { return (r.Max - r.Min) / 2 }

// SizeBand is one labeled size with the measurement ranges relevant to its
// garment type.
type SizeBand struct {
	Label  string           `json:"size"`
	Ranges map[string]Range `json:"ranges"`
}

// Category is one garment category with its ordered size bands, smallest
// first.
type Category struct {
	Key      string     `json:"key"`
	Name     string     `json:"name"`
	Audience Audience   `json:"audience"`
	Bands    []SizeBand `json:"sizes"`
}

// Catalog maps category keys to size charts.
type Catalog struct {
	categories map[string]*Category
	order      []string
}

// Info is a category listing entry.
type Info struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Get returns the category for a key.
func (c *Catalog) Get(key string) (*Category, error) {
	cat, ok := c.categories[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return cat, nil
}

// List returns all categories in declaration order, filtered to the given
// audience. Unisex categories match every audience; an empty audience
// matches everything.
func (c *Catalog) List(audience Audience) []Info {
	infos := make([]Info, 0, len(c.order))
	for _, key := range c.order {
		cat := c.categories[key]
		if audience != "" && cat.Audience != audience && cat.Audience != AudienceUnisex {
			continue
		}
		infos = append(infos, Info{Key: cat.Key, Name: cat.Name})
	}
	return infos
}

func newCatalog(categories []*Category) *Catalog {
	c := &Catalog{categories: make(map[string]*Category, len(categories))}
	for _, cat := range categories {
		c.categories[cat.Key] = cat
		c.order = append(c.order, cat.Key)
	}
	return c
}

package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ayushi/fitsense/internal/measure"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// MeasurementRecord is one stored measurement profile. All lengths are in
// centimeters regardless of the units the original request asked for.
type MeasurementRecord struct {
	ID                string
	Gender            measure.Gender
	CalibrationHeight float64
	ShoulderWidth     float64
	Chest             *float64
	Waist             float64
	Hip               float64
	Height            float64
	Inseam            float64
	Confidence        float64
	CreatedAt         time.Time
}

// Profile converts the record back into a metric measurement profile.
func (m *MeasurementRecord) Profile() measure.Profile {
	p := measure.Profile{
		ShoulderWidth: m.ShoulderWidth,
		Waist:         m.Waist,
		Hip:           m.Hip,
		Height:        m.Height,
		Inseam:        m.Inseam,
		Units:         measure.UnitMetric,
	}
	if m.Chest != nil {
		chest := *m.Chest
		p.Chest = &chest
	}
	return p
}

// MeasurementRepository provides CRUD operations for measurement records.
type MeasurementRepository struct {
	db *sql.DB
}

// Measurements returns the measurement repository for this store.
func (s *Store) Measurements() *MeasurementRepository {
	return &MeasurementRepository{db: s.db}
}

// Create inserts a new measurement record. An empty ID is assigned a fresh
// UUID.
func (r *MeasurementRepository) Create(m *MeasurementRecord) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt = time.Now()

	var chest sql.NullFloat64
	if m.Chest != nil {
		chest = sql.NullFloat64{Float64: *m.Chest, Valid: true}
	}

	_, err := r.db.Exec(
		`INSERT INTO measurements
		 (id, gender, calibration_height, shoulder_width, chest, waist, hip, height, inseam, confidence, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, string(m.Gender), m.CalibrationHeight, m.ShoulderWidth, chest,
		m.Waist, m.Hip, m.Height, m.Inseam, m.Confidence, m.CreatedAt,
	)
	return err
}

// GetByID retrieves a measurement record by its ID.
func (r *MeasurementRepository) GetByID(id string) (*MeasurementRecord, error) {
	row := r.db.QueryRow(
		`SELECT id, gender, calibration_height, shoulder_width, chest, waist, hip, height, inseam, confidence, created_at
		 FROM measurements WHERE id = ?`,
		id,
	)

	m, err := scanMeasurement(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// List retrieves the most recent measurement records, newest first.
func (r *MeasurementRepository) List(limit int) ([]*MeasurementRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(
		`SELECT id, gender, calibration_height, shoulder_width, chest, waist, hip, height, inseam, confidence, created_at
		 FROM measurements ORDER BY created_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*MeasurementRecord
	for rows.Next() {
		m, err := scanMeasurement(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Delete removes a measurement record by its ID.
func (r *MeasurementRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM measurements WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func scanMeasurement(scan func(dest ...any) error) (*MeasurementRecord, error) {
	m := &MeasurementRecord{}
	var gender string
	var chest sql.NullFloat64

	err := scan(&m.ID, &gender, &m.CalibrationHeight, &m.ShoulderWidth, &chest,
		&m.Waist, &m.Hip, &m.Height, &m.Inseam, &m.Confidence, &m.CreatedAt)
	if err != nil {
		return nil, err
	}

	m.Gender = measure.Gender(gender)
	if chest.Valid {
		m.Chest = &chest.Float64
	}
	return m, nil
}

package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Measurements table - one row per computed measurement profile.
		// Lengths are stored in centimeters; chest is NULL when the request
		// had no usable side view.
		`CREATE TABLE IF NOT EXISTS measurements (
			id TEXT PRIMARY KEY,
			gender TEXT NOT NULL CHECK(gender IN ('male', 'female')),
			calibration_height REAL NOT NULL,
			shoulder_width REAL NOT NULL,
			chest REAL,
			waist REAL NOT NULL,
			hip REAL NOT NULL,
			height REAL NOT NULL,
			inseam REAL NOT NULL,
			confidence REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_measurements_created_at ON measurements(created_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}

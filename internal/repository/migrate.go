package repository

import "gorm.io/gorm"

// AutoMigrate creates the schema for all repositories plus the database
// level backstops against double-booking across processes (the service's
// per-classroom lock only covers goroutines in one process).
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&classroomModel{}, &bookingModel{}, &reviewModel{}); err != nil {
		return err
	}

	// With split-hourly persistence two overlapping windows always collide
	// on at least one (classroom_id, start_time) pair.
	if err := db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_no_double_booking
		 ON bookings (classroom_id, start_time)
		 WHERE status <> 'cancelled'`,
	).Error; err != nil {
		return err
	}

	// Single-row persistence stores one multi-hour row, whose start time
	// does not collide with an overlapping row's. PostgreSQL closes that
	// gap with a range exclusion constraint; SQLite deployments run a
	// single process and are covered by the service's lock.
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
			return err
		}
		return db.Exec(`DO $$
		BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'idx_no_overbooking') THEN
				ALTER TABLE bookings ADD CONSTRAINT idx_no_overbooking
					EXCLUDE USING gist (classroom_id WITH =, tstzrange(start_time, end_time, '[)') WITH &&)
					WHERE (status <> 'cancelled');
			END IF;
		END $$`).Error
	}
	return nil
}

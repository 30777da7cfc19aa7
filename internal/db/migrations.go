package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS plans (
			slot           TEXT NOT NULL CHECK(slot IN ('current', 'saved')),
			id             TEXT NOT NULL,
			name           TEXT NOT NULL,
			theme          TEXT NOT NULL DEFAULT '',
			total_budget   INTEGER NOT NULL CHECK(total_budget > 0), -- cents
			estimated_cost INTEGER NOT NULL DEFAULT 0,
			actual_cost    INTEGER NOT NULL DEFAULT 0,
			budget_alerts  INTEGER NOT NULL DEFAULT 1,
			created_at     TEXT NOT NULL,
			updated_at     TEXT NOT NULL,
			PRIMARY KEY (slot, id)
		);

		CREATE TABLE IF NOT EXISTS scheduled_activities (
			slot             TEXT NOT NULL,
			plan_id          TEXT NOT NULL,
			instance_id      TEXT NOT NULL,
			position         INTEGER NOT NULL,
			day              TEXT NOT NULL CHECK(day IN ('saturday', 'sunday')),
			start_time       TEXT NOT NULL,
			end_time         TEXT NOT NULL,
			actual_cost      INTEGER,
			activity_id      TEXT NOT NULL,
			name             TEXT NOT NULL,
			category         TEXT NOT NULL,
			mood             TEXT NOT NULL,
			duration         INTEGER NOT NULL CHECK(duration > 0),
			cost             INTEGER NOT NULL,
			cost_type        TEXT NOT NULL,
			cost_variability TEXT NOT NULL,
			description      TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (slot, plan_id, instance_id)
		);

		CREATE INDEX IF NOT EXISTS idx_scheduled_plan ON scheduled_activities(slot, plan_id, day, position);
		CREATE INDEX IF NOT EXISTS idx_plans_updated ON plans(slot, updated_at);

		CREATE TABLE IF NOT EXISTS activities (
			id               TEXT PRIMARY KEY,
			position         INTEGER NOT NULL,
			name             TEXT NOT NULL,
			category         TEXT NOT NULL CHECK(category IN ('food', 'outdoor', 'indoor', 'social', 'wellness')),
			mood             TEXT NOT NULL CHECK(mood IN ('happy', 'relaxed', 'energetic', 'peaceful')),
			duration         INTEGER NOT NULL CHECK(duration > 0),
			cost             INTEGER NOT NULL CHECK(cost >= 0),
			cost_type        TEXT NOT NULL CHECK(cost_type IN ('free', 'low', 'medium', 'high')),
			cost_variability TEXT NOT NULL CHECK(cost_variability IN ('fixed', 'variable')),
			description      TEXT NOT NULL DEFAULT ''
		);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}

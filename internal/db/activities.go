package db

import (
	"context"
	"fmt"

	"github.com/javiermolinar/weekendly/internal/activity"
)

// ListActivities returns the stored catalog in its saved order.
func (s *SQLite) ListActivities(ctx context.Context) ([]activity.Activity, error) {
	query := `
		SELECT id, name, category, mood, duration, cost, cost_type, cost_variability, description
		FROM activities
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying activities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var activities []activity.Activity
	for rows.Next() {
		var a activity.Activity
		err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.Category,
			&a.Mood,
			&a.Duration,
			&a.Cost,
			&a.CostType,
			&a.CostVariability,
			&a.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}
		activities = append(activities, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}

	return activities, nil
}

// SaveActivities replaces the stored catalog using a transaction.
func (s *SQLite) SaveActivities(ctx context.Context, activities []activity.Activity) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM activities`); err != nil {
		return fmt.Errorf("clearing activities: %w", err)
	}

	query := `
		INSERT INTO activities (
			id, position, name, category, mood, duration, cost, cost_type, cost_variability, description
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, a := range activities {
		_, err := stmt.ExecContext(ctx,
			a.ID,
			i,
			a.Name,
			a.Category,
			a.Mood,
			a.Duration,
			int64(a.Cost),
			a.CostType,
			a.CostVariability,
			a.Description,
		)
		if err != nil {
			return fmt.Errorf("inserting activity %q: %w", a.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

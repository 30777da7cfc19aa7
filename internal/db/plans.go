package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/javiermolinar/weekendly/internal/activity"
	"github.com/javiermolinar/weekendly/internal/plan"
)

const (
	slotCurrent = "current"
	slotSaved   = "saved"

	// timestampFormat is fixed width so stored values sort chronologically.
	timestampFormat = "2006-01-02T15:04:05.000000000Z07:00"
)

// SaveCurrent replaces the working plan. A nil plan clears it.
func (s *SQLite) SaveCurrent(ctx context.Context, p *plan.Plan) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := deleteSlot(ctx, tx, slotCurrent, ""); err != nil {
		return err
	}
	if p != nil {
		if err := insertPlan(ctx, tx, slotCurrent, p); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// LoadCurrent returns the working plan, or nil if there is none.
func (s *SQLite) LoadCurrent(ctx context.Context) (*plan.Plan, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM plans WHERE slot = ? LIMIT 1`, slotCurrent).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying current plan: %w", err)
	}
	return readPlan(ctx, s.db, slotCurrent, id)
}

// SavePlan inserts or replaces a plan in the saved set.
func (s *SQLite) SavePlan(ctx context.Context, p *plan.Plan) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := deleteSlot(ctx, tx, slotSaved, p.ID); err != nil {
		return err
	}
	if err := insertPlan(ctx, tx, slotSaved, p); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// GetPlan returns a saved plan by id, or nil if it does not exist.
func (s *SQLite) GetPlan(ctx context.Context, id string) (*plan.Plan, error) {
	return readPlan(ctx, s.db, slotSaved, id)
}

// ListPlans returns every saved plan, most recently updated first.
func (s *SQLite) ListPlans(ctx context.Context) ([]*plan.Plan, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM plans WHERE slot = ? ORDER BY updated_at DESC, id`, slotSaved)
	if err != nil {
		return nil, fmt.Errorf("querying plans: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scanning plan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	_ = rows.Close()

	plans := make([]*plan.Plan, 0, len(ids))
	for _, id := range ids {
		p, err := readPlan(ctx, s.db, slotSaved, id)
		if err != nil {
			return nil, err
		}
		if p != nil {
			plans = append(plans, p)
		}
	}
	return plans, nil
}

// DeletePlan removes a saved plan. It reports whether a plan was removed.
func (s *SQLite) DeletePlan(ctx context.Context, id string) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `DELETE FROM plans WHERE slot = ? AND id = ?`, slotSaved, id)
	if err != nil {
		return false, fmt.Errorf("deleting plan: %w", err)
	}
	rows, _ := result.RowsAffected()

	if _, err := tx.ExecContext(ctx, `DELETE FROM scheduled_activities WHERE slot = ? AND plan_id = ?`, slotSaved, id); err != nil {
		return false, fmt.Errorf("deleting scheduled activities: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing transaction: %w", err)
	}
	return rows > 0, nil
}

// deleteSlot removes plans and their entries from a slot. An empty id
// clears the whole slot.
func deleteSlot(ctx context.Context, tx *sql.Tx, slot, id string) error {
	planQuery := `DELETE FROM plans WHERE slot = ?`
	entryQuery := `DELETE FROM scheduled_activities WHERE slot = ?`
	args := []any{slot}
	if id != "" {
		planQuery += ` AND id = ?`
		entryQuery += ` AND plan_id = ?`
		args = append(args, id)
	}

	if _, err := tx.ExecContext(ctx, planQuery, args...); err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	if _, err := tx.ExecContext(ctx, entryQuery, args...); err != nil {
		return fmt.Errorf("deleting scheduled activities: %w", err)
	}
	return nil
}

func insertPlan(ctx context.Context, tx *sql.Tx, slot string, p *plan.Plan) error {
	query := `
		INSERT INTO plans (
			slot, id, name, theme, total_budget, estimated_cost, actual_cost,
			budget_alerts, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := tx.ExecContext(ctx, query,
		slot,
		p.ID,
		p.Name,
		p.Theme,
		int64(p.TotalBudget),
		int64(p.EstimatedCost),
		int64(p.ActualCost),
		p.BudgetAlerts,
		p.CreatedAt.UTC().Format(timestampFormat),
		p.UpdatedAt.UTC().Format(timestampFormat),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}

	entryQuery := `
		INSERT INTO scheduled_activities (
			slot, plan_id, instance_id, position, day, start_time, end_time, actual_cost,
			activity_id, name, category, mood, duration, cost, cost_type, cost_variability, description
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	stmt, err := tx.PrepareContext(ctx, entryQuery)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, day := range activity.Days() {
		entries := p.Saturday
		if day == activity.Sunday {
			entries = p.Sunday
		}
		for i, e := range entries {
			_, err := stmt.ExecContext(ctx,
				slot,
				p.ID,
				e.InstanceID,
				i,
				day,
				e.StartTime,
				e.EndTime,
				nullCents(e.ActualCost),
				e.ID,
				e.Name,
				e.Category,
				e.Mood,
				e.Duration,
				int64(e.Cost),
				e.CostType,
				e.CostVariability,
				e.Description,
			)
			if err != nil {
				return fmt.Errorf("inserting scheduled activity %q: %w", e.InstanceID, err)
			}
		}
	}
	return nil
}

func readPlan(ctx context.Context, q querier, slot, id string) (*plan.Plan, error) {
	query := `
		SELECT id, name, theme, total_budget, estimated_cost, actual_cost,
		       budget_alerts, created_at, updated_at
		FROM plans
		WHERE slot = ? AND id = ?
	`

	var (
		p         plan.Plan
		createdAt string
		updatedAt string
	)
	err := q.QueryRowContext(ctx, query, slot, id).Scan(
		&p.ID,
		&p.Name,
		&p.Theme,
		&p.TotalBudget,
		&p.EstimatedCost,
		&p.ActualCost,
		&p.BudgetAlerts,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying plan: %w", err)
	}

	p.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	p.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated at: %w", err)
	}

	p.Saturday = []activity.ScheduledActivity{}
	p.Sunday = []activity.ScheduledActivity{}
	if err := readEntries(ctx, q, slot, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func readEntries(ctx context.Context, q querier, slot string, p *plan.Plan) error {
	query := `
		SELECT instance_id, day, start_time, end_time, actual_cost,
		       activity_id, name, category, mood, duration, cost, cost_type, cost_variability, description
		FROM scheduled_activities
		WHERE slot = ? AND plan_id = ?
		ORDER BY day, position
	`
	rows, err := q.QueryContext(ctx, query, slot, p.ID)
	if err != nil {
		return fmt.Errorf("querying scheduled activities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			e      activity.ScheduledActivity
			actual sql.NullInt64
		)
		err := rows.Scan(
			&e.InstanceID,
			&e.Day,
			&e.StartTime,
			&e.EndTime,
			&actual,
			&e.ID,
			&e.Name,
			&e.Category,
			&e.Mood,
			&e.Duration,
			&e.Cost,
			&e.CostType,
			&e.CostVariability,
			&e.Description,
		)
		if err != nil {
			return fmt.Errorf("scanning scheduled activity: %w", err)
		}
		if actual.Valid {
			v := activity.Money(actual.Int64)
			e.ActualCost = &v
		}

		switch e.Day {
		case activity.Saturday:
			p.Saturday = append(p.Saturday, e)
		case activity.Sunday:
			p.Sunday = append(p.Sunday, e)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating scheduled activities: %w", err)
	}
	return nil
}

func nullCents(m *activity.Money) sql.NullInt64 {
	if m == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*m), Valid: true}
}

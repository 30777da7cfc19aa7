package plan

import "context"

// Repository defines how a host persists plans. The engine never calls it;
// it only needs the latest snapshot to be obtainable and replaceable.
type Repository interface {
	// SaveCurrent replaces the working plan snapshot. A nil plan clears it.
	SaveCurrent(ctx context.Context, p *Plan) error

	// LoadCurrent returns the working plan, or nil if there is none.
	LoadCurrent(ctx context.Context) (*Plan, error)

	// SavePlan inserts or replaces a plan in the saved set.
	SavePlan(ctx context.Context, p *Plan) error

	// GetPlan returns a saved plan by id, or nil if it does not exist.
	GetPlan(ctx context.Context, id string) (*Plan, error)

	// ListPlans returns every saved plan, most recently updated first.
	ListPlans(ctx context.Context) ([]*Plan, error)

	// DeletePlan removes a saved plan. It reports whether a plan was removed.
	DeletePlan(ctx context.Context, id string) (bool, error)
}

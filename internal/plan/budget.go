package plan

import "github.com/javiermolinar/weekendly/internal/activity"

// Thresholds for budget classification, as a percentage of the total budget.
const (
	NearBudgetPercent = 80
	OverBudgetPercent = 100
)

// BudgetStatus classifies spend against the total budget.
type BudgetStatus string

const (
	BudgetUnder BudgetStatus = "under"
	BudgetNear  BudgetStatus = "near"
	BudgetOver  BudgetStatus = "over"
)

// Label returns a human-readable status.
func (s BudgetStatus) Label() string {
	switch s {
	case BudgetOver:
		return "Over Budget"
	case BudgetNear:
		return "Near Budget"
	default:
		return "Under Budget"
	}
}

// ClassifyBudget returns over when estimated reaches 100% of total, near at
// 80% and under otherwise. A non-positive total is rejected at plan
// creation, so it is reported as under here.
func ClassifyBudget(estimated, total activity.Money) BudgetStatus {
	if total <= 0 {
		return BudgetUnder
	}
	switch {
	case estimated*100 >= total*OverBudgetPercent:
		return BudgetOver
	case estimated*100 >= total*NearBudgetPercent:
		return BudgetNear
	default:
		return BudgetUnder
	}
}

// BudgetStatus classifies the plan's estimated cost against its budget.
func (p *Plan) BudgetStatus() BudgetStatus {
	return ClassifyBudget(p.EstimatedCost, p.TotalBudget)
}

// RemainingBudget returns total budget minus estimated cost. It goes
// negative once the plan is over budget.
func (p *Plan) RemainingBudget() activity.Money {
	return p.TotalBudget - p.EstimatedCost
}

// PercentUsed returns estimated cost as a percentage of the total budget.
func (p *Plan) PercentUsed() float64 {
	if p.TotalBudget <= 0 {
		return 0
	}
	return float64(p.EstimatedCost) / float64(p.TotalBudget) * 100
}

// SumEstimated folds the base cost over both days. The engine keeps
// EstimatedCost incrementally; this is the reference it must match.
func (p *Plan) SumEstimated() activity.Money {
	var total activity.Money
	for _, e := range p.Saturday {
		total += e.Cost
	}
	for _, e := range p.Sunday {
		total += e.Cost
	}
	return total
}

// sumActual folds actual cost, falling back to base cost, over both days.
func sumActual(days ...[]activity.ScheduledActivity) activity.Money {
	var total activity.Money
	for _, day := range days {
		for _, e := range day {
			total += e.SpentCost()
		}
	}
	return total
}

// refreshActual recomputes ActualCost from scratch.
func (p *Plan) refreshActual() {
	p.ActualCost = sumActual(p.Saturday, p.Sunday)
}

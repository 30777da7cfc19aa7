package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/javiermolinar/weekendly/internal/activity"
	"github.com/javiermolinar/weekendly/internal/plan"
)

func hiking() activity.Activity {
	return activity.Activity{
		ID:              "hiking",
		Name:            "Hiking",
		Category:        activity.CategoryOutdoor,
		Mood:            activity.MoodEnergetic,
		Duration:        180,
		Cost:            0,
		CostType:        activity.CostFree,
		CostVariability: activity.CostFixed,
		Description:     "Trail walk",
	}
}

func brunch() activity.Activity {
	return activity.Activity{
		ID:              "brunch",
		Name:            "Brunch",
		Category:        activity.CategoryFood,
		Mood:            activity.MoodHappy,
		Duration:        90,
		Cost:            activity.Dollars(25),
		CostType:        activity.CostMedium,
		CostVariability: activity.CostVariable,
	}
}

func samplePlan(id string, updated time.Time) *plan.Plan {
	actual := activity.Dollars(31.57)
	sat := activity.Schedule(brunch(), "scheduled-1", activity.Saturday, "10:00")
	sat.ActualCost = &actual
	return &plan.Plan{
		ID:            id,
		Name:          "Weekend " + id,
		Theme:         "adventurous",
		Saturday:      []activity.ScheduledActivity{sat},
		Sunday:        []activity.ScheduledActivity{activity.Schedule(hiking(), "scheduled-2", activity.Sunday, "09:00")},
		TotalBudget:   activity.Dollars(120),
		EstimatedCost: activity.Dollars(25),
		ActualCost:    activity.Dollars(31.57),
		BudgetAlerts:  true,
		CreatedAt:     time.Date(2025, 6, 13, 18, 30, 0, 0, time.UTC),
		UpdatedAt:     updated,
	}
}

func assertPlanEqual(t *testing.T, got, want *plan.Plan) {
	t.Helper()
	if got == nil {
		t.Fatal("expected plan, got nil")
	}
	if got.ID != want.ID || got.Name != want.Name || got.Theme != want.Theme {
		t.Errorf("metadata = %s/%s/%s, want %s/%s/%s", got.ID, got.Name, got.Theme, want.ID, want.Name, want.Theme)
	}
	if got.TotalBudget != want.TotalBudget || got.EstimatedCost != want.EstimatedCost || got.ActualCost != want.ActualCost {
		t.Errorf("costs = %v/%v/%v, want %v/%v/%v", got.TotalBudget, got.EstimatedCost, got.ActualCost, want.TotalBudget, want.EstimatedCost, want.ActualCost)
	}
	if got.BudgetAlerts != want.BudgetAlerts {
		t.Errorf("BudgetAlerts = %v, want %v", got.BudgetAlerts, want.BudgetAlerts)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) || !got.UpdatedAt.Equal(want.UpdatedAt) {
		t.Errorf("timestamps = %v/%v, want %v/%v", got.CreatedAt, got.UpdatedAt, want.CreatedAt, want.UpdatedAt)
	}
	assertEntriesEqual(t, got.Saturday, want.Saturday)
	assertEntriesEqual(t, got.Sunday, want.Sunday)
}

func assertEntriesEqual(t *testing.T, got, want []activity.ScheduledActivity) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.Activity != w.Activity || g.InstanceID != w.InstanceID || g.Day != w.Day ||
			g.StartTime != w.StartTime || g.EndTime != w.EndTime {
			t.Errorf("entry %d = %+v, want %+v", i, g, w)
		}
		if (g.ActualCost == nil) != (w.ActualCost == nil) {
			t.Errorf("entry %d ActualCost presence mismatch", i)
		} else if g.ActualCost != nil && *g.ActualCost != *w.ActualCost {
			t.Errorf("entry %d ActualCost = %v, want %v", i, *g.ActualCost, *w.ActualCost)
		}
	}
}

func TestCurrentPlan_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	got, err := repo.LoadCurrent(ctx)
	if err != nil {
		t.Fatalf("LoadCurrent failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no current plan, got %+v", got)
	}

	want := samplePlan("plan-1", time.Date(2025, 6, 14, 9, 15, 30, 123000000, time.UTC))
	if err := repo.SaveCurrent(ctx, want); err != nil {
		t.Fatalf("SaveCurrent failed: %v", err)
	}

	got, err = repo.LoadCurrent(ctx)
	if err != nil {
		t.Fatalf("LoadCurrent failed: %v", err)
	}
	assertPlanEqual(t, got, want)
}

func TestSaveCurrent_Replaces(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)

	if err := repo.SaveCurrent(ctx, samplePlan("plan-1", now)); err != nil {
		t.Fatalf("SaveCurrent failed: %v", err)
	}
	second := samplePlan("plan-2", now)
	second.Sunday = []activity.ScheduledActivity{}
	if err := repo.SaveCurrent(ctx, second); err != nil {
		t.Fatalf("SaveCurrent failed: %v", err)
	}

	got, err := repo.LoadCurrent(ctx)
	if err != nil {
		t.Fatalf("LoadCurrent failed: %v", err)
	}
	assertPlanEqual(t, got, second)

	if err := repo.SaveCurrent(ctx, nil); err != nil {
		t.Fatalf("SaveCurrent(nil) failed: %v", err)
	}
	got, err = repo.LoadCurrent(ctx)
	if err != nil {
		t.Fatalf("LoadCurrent failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected cleared current plan, got %+v", got)
	}
}

func TestSavedPlans(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	older := samplePlan("plan-old", time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	newer := samplePlan("plan-new", time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC))
	for _, p := range []*plan.Plan{older, newer} {
		if err := repo.SavePlan(ctx, p); err != nil {
			t.Fatalf("SavePlan failed: %v", err)
		}
	}

	plans, err := repo.ListPlans(ctx)
	if err != nil {
		t.Fatalf("ListPlans failed: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("got %d plans, want 2", len(plans))
	}
	if plans[0].ID != "plan-new" || plans[1].ID != "plan-old" {
		t.Errorf("order = %s, %s; want plan-new, plan-old", plans[0].ID, plans[1].ID)
	}

	// Upsert keeps a single copy.
	older.Name = "Renamed"
	if err := repo.SavePlan(ctx, older); err != nil {
		t.Fatalf("SavePlan failed: %v", err)
	}
	got, err := repo.GetPlan(ctx, "plan-old")
	if err != nil {
		t.Fatalf("GetPlan failed: %v", err)
	}
	assertPlanEqual(t, got, older)

	missing, err := repo.GetPlan(ctx, "nope")
	if err != nil {
		t.Fatalf("GetPlan failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing plan, got %+v", missing)
	}
}

func TestDeletePlan(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	p := samplePlan("plan-1", time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC))

	if err := repo.SavePlan(ctx, p); err != nil {
		t.Fatalf("SavePlan failed: %v", err)
	}
	if err := repo.SaveCurrent(ctx, p); err != nil {
		t.Fatalf("SaveCurrent failed: %v", err)
	}

	removed, err := repo.DeletePlan(ctx, "plan-1")
	if err != nil {
		t.Fatalf("DeletePlan failed: %v", err)
	}
	if !removed {
		t.Error("expected plan to be removed")
	}

	removed, err = repo.DeletePlan(ctx, "plan-1")
	if err != nil {
		t.Fatalf("DeletePlan failed: %v", err)
	}
	if removed {
		t.Error("expected second delete to report nothing removed")
	}

	// The current slot is separate from the saved set.
	cur, err := repo.LoadCurrent(ctx)
	if err != nil {
		t.Fatalf("LoadCurrent failed: %v", err)
	}
	assertPlanEqual(t, cur, p)
}

func TestActivities_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	got, err := repo.ListActivities(ctx)
	if err != nil {
		t.Fatalf("ListActivities failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty catalog, got %d", len(got))
	}

	want := []activity.Activity{hiking(), brunch()}
	if err := repo.SaveActivities(ctx, want); err != nil {
		t.Fatalf("SaveActivities failed: %v", err)
	}
	got, err = repo.ListActivities(ctx)
	if err != nil {
		t.Fatalf("ListActivities failed: %v", err)
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %+v, want %+v", got, want)
	}

	if err := repo.SaveActivities(ctx, want[1:]); err != nil {
		t.Fatalf("SaveActivities failed: %v", err)
	}
	got, _ = repo.ListActivities(ctx)
	if len(got) != 1 || got[0].ID != "brunch" {
		t.Errorf("got %+v, want only brunch", got)
	}
}

func TestSaveActivities_RejectsInvalidRow(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	bad := hiking()
	bad.Category = "sleeping"
	if err := repo.SaveActivities(ctx, []activity.Activity{brunch(), bad}); err == nil {
		t.Fatal("expected constraint error")
	}

	got, _ := repo.ListActivities(ctx)
	if len(got) != 0 {
		t.Errorf("failed save should roll back, got %d rows", len(got))
	}
}

func TestNew_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "weekendly.db")
	repo, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	_ = repo.Close()
}

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}

	t.Cleanup(func() {
		_ = repo.Close()
	})

	return repo
}

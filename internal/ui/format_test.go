package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/javiermolinar/weekendly/internal/activity"
	"github.com/javiermolinar/weekendly/internal/plan"
)

func TestBudgetBar(t *testing.T) {
	DisableColor()

	tests := []struct {
		name   string
		spent  activity.Money
		total  activity.Money
		status plan.BudgetStatus
		want   string
	}{
		{"empty", 0, 100, plan.BudgetUnder, "[░░░░░░░░░░] 0%"},
		{"half", 50, 100, plan.BudgetUnder, "[█████░░░░░] 50%"},
		{"full", 100, 100, plan.BudgetOver, "[██████████] 100%"},
		{"over is capped", 150, 100, plan.BudgetOver, "[██████████] 150%"},
		{"no budget", 10, 0, plan.BudgetOver, "[░░░░░░░░░░]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BudgetBar(tt.spent, tt.total, tt.status, 10)
			if got != tt.want {
				t.Errorf("BudgetBar() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    activity.Money
		wantErr bool
	}{
		{"25", 2500, false},
		{"14.50", 1450, false},
		{"$30", 3000, false},
		{"0.10", 10, false},
		{"0", 0, false},
		{"-5", 0, true},
		{"1.005", 0, true},
		{"ten", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAmount(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseAmount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseAmount(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDescribeResult(t *testing.T) {
	tests := []struct {
		result plan.Result
		want   string
	}{
		{plan.ResultApplied, ""},
		{plan.ResultNotFound, "entry x not found"},
		{plan.ResultNoPlan, "no current plan"},
		{plan.ResultUnchanged, "Nothing to change"},
		{plan.ResultRejected, "Invalid input for entry x"},
	}

	for _, tt := range tests {
		t.Run(tt.result.String(), func(t *testing.T) {
			got := describeResult(tt.result, "entry x")
			if tt.want == "" && got != "" {
				t.Errorf("describeResult() = %q, want empty", got)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("describeResult() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestPrintEntryRow(t *testing.T) {
	DisableColor()

	actual := activity.Dollars(30)
	e := activity.Schedule(activity.Activity{
		ID:       "brunch",
		Name:     "A very long brunch name that will not fit",
		Category: activity.CategoryFood,
		Duration: 90,
		Cost:     activity.Dollars(25),
	}, "scheduled-abc", activity.Saturday, "10:00")
	e.ActualCost = &actual

	var buf bytes.Buffer
	PrintEntryRow(&buf, e, 12)
	got := buf.String()

	for _, want := range []string{"10:00-11:30", "[food    ]", "A very lo...", "$25", "(actual $30)", "abc"} {
		if !strings.Contains(got, want) {
			t.Errorf("row %q missing %q", got, want)
		}
	}
	if strings.Contains(got, "scheduled-") {
		t.Errorf("row %q shows the id prefix", got)
	}
}

func TestPrintAlert(t *testing.T) {
	DisableColor()

	p := &plan.Plan{Name: "x", TotalBudget: activity.Dollars(20), EstimatedCost: activity.Dollars(25), BudgetAlerts: true}
	var buf bytes.Buffer
	printAlert(&buf, p)
	if !strings.Contains(buf.String(), "Over budget by $5") {
		t.Errorf("unexpected alert: %q", buf.String())
	}

	buf.Reset()
	p.BudgetAlerts = false
	printAlert(&buf, p)
	if buf.Len() != 0 {
		t.Errorf("expected no alert with alerts off, got %q", buf.String())
	}

	printAlert(&buf, nil)
	if buf.Len() != 0 {
		t.Errorf("expected no alert for nil plan, got %q", buf.String())
	}
}

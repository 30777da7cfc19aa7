package activity

import "strings"

// Filter narrows a catalog. Zero-valued fields match everything.
type Filter struct {
	Category Category
	Mood     Mood
	CostType CostType
	Query    string // case-insensitive substring of name or description
}

// IsZero reports whether the filter matches every activity.
func (f Filter) IsZero() bool {
	return f.Category == "" && f.Mood == "" && f.CostType == "" && f.Query == ""
}

// Match returns true if the activity passes every set criterion.
func (f Filter) Match(a Activity) bool {
	if f.Category != "" && a.Category != f.Category {
		return false
	}
	if f.Mood != "" && a.Mood != f.Mood {
		return false
	}
	if f.CostType != "" && a.CostType != f.CostType {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(a.Name), q) &&
			!strings.Contains(strings.ToLower(a.Description), q) {
			return false
		}
	}
	return true
}

// Apply returns the activities matching the filter, preserving order.
func (f Filter) Apply(activities []Activity) []Activity {
	if f.IsZero() {
		result := make([]Activity, len(activities))
		copy(result, activities)
		return result
	}
	var result []Activity
	for _, a := range activities {
		if f.Match(a) {
			result = append(result, a)
		}
	}
	return result
}

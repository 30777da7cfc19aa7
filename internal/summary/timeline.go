package summary

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/weekendly/internal/plan"
)

// Format selects how much detail timeline items carry.
type Format string

const (
	FormatStory    Format = "story"
	FormatDetailed Format = "detailed"
	FormatCompact  Format = "compact"
)

// ParseFormat parses a timeline format. Empty means story.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatStory, nil
	case FormatStory, FormatDetailed, FormatCompact:
		return f, nil
	default:
		return "", fmt.Errorf("unknown timeline format %q", s)
	}
}

// TimelineOptions configures Timeline.
type TimelineOptions struct {
	Format     Format
	ShowBudget bool
	Message    string
}

// TimelineItem is one card of a shareable timeline.
type TimelineItem struct {
	Title    string
	Heading  string
	Subtitle string
	Details  []string
}

// Timeline lays out every scheduled entry in day and time order, with an
// optional opening message and, for the detailed format, a budget card.
func Timeline(p *plan.Plan, opts TimelineOptions) []TimelineItem {
	s := Summarize(p)
	if s.Count == 0 {
		return nil
	}

	var items []TimelineItem
	if opts.Message != "" {
		intro := TimelineItem{
			Title:    "Weekend Plan",
			Heading:  opts.Message,
			Subtitle: fmt.Sprintf("%d activities planned", s.Count),
		}
		if opts.ShowBudget {
			intro.Details = []string{fmt.Sprintf("Total budget %s, estimated cost %s", s.Budget, s.Estimated)}
		} else {
			intro.Details = []string{fmt.Sprintf("%d Saturday activities, %d Sunday activities", len(s.Days[0].Entries), len(s.Days[1].Entries))}
		}
		items = append(items, intro)
	}

	for _, d := range s.Days {
		for _, e := range d.Entries {
			item := TimelineItem{
				Title:    d.Day.Title() + " " + TimeOfDay(e.StartTime),
				Heading:  e.Name,
				Subtitle: e.StartTime + " - " + e.EndTime,
			}
			if opts.ShowBudget {
				item.Subtitle += ", " + CostLabel(e.Cost)
			}
			if e.Description != "" {
				item.Details = append(item.Details, e.Description)
			}
			switch opts.Format {
			case FormatDetailed:
				if opts.ShowBudget {
					item.Details = append(item.Details, fmt.Sprintf("Cost: %s (%s)", e.Cost, e.CostType))
				}
				item.Details = append(item.Details,
					"Mood: "+string(e.Mood),
					"Category: "+string(e.Category),
					fmt.Sprintf("Duration: %d minutes", e.Duration),
				)
			case FormatCompact:
				item.Details = append(item.Details, fmt.Sprintf("%s, %s, %dmin", e.Mood, e.Category, e.Duration))
			default:
				item.Details = append(item.Details, fmt.Sprintf("%s, %s", e.Mood, e.Category))
			}
			items = append(items, item)
		}
	}

	if opts.ShowBudget && opts.Format == FormatDetailed {
		items = append(items, TimelineItem{
			Title:    "Budget Summary",
			Heading:  fmt.Sprintf("Total: %s / %s", s.Estimated, s.Budget),
			Subtitle: s.Status.Label(),
			Details: []string{
				"Estimated cost: " + s.Estimated.String(),
				"Total budget: " + s.Budget.String(),
				"Remaining: " + s.Remaining.String(),
				fmt.Sprintf("Activities: %d", s.Count),
			},
		})
	}

	return items
}

// RenderTimeline renders timeline items as plain text.
func RenderTimeline(items []TimelineItem) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "[%s] %s\n", item.Title, item.Heading)
		if item.Subtitle != "" {
			fmt.Fprintf(&b, "  %s\n", item.Subtitle)
		}
		for _, d := range item.Details {
			fmt.Fprintf(&b, "  %s\n", d)
		}
	}
	return b.String()
}

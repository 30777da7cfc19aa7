package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/weekendly/internal/activity"
	"github.com/javiermolinar/weekendly/internal/summary"
)

const pickerVisibleRows = 8

// picker is the catalog list shown when adding an activity.
type picker struct {
	all      []activity.Activity
	items    []activity.Activity
	category activity.Category // empty shows every category
	search   textinput.Model
	typing   bool
	cursor   int
	offset   int
}

func newPicker(styles *Styles) picker {
	ti := textinput.New()
	ti.Placeholder = "search"
	ti.CharLimit = 64
	ti.Width = 24
	ti.Prompt = "/ "
	ti.PromptStyle = styles.Muted
	ti.PlaceholderStyle = styles.Muted
	return picker{search: ti}
}

// open resets the picker to show activities.
func (p *picker) open(activities []activity.Activity) {
	p.all = activities
	p.category = ""
	p.search.SetValue("")
	p.search.Blur()
	p.typing = false
	p.refilter()
}

func (p *picker) refilter() {
	f := activity.Filter{Category: p.category, Query: strings.TrimSpace(p.search.Value())}
	p.items = f.Apply(p.all)
	p.cursor = 0
	p.offset = 0
}

// cycleCategory steps through "all" and each category in order.
func (p *picker) cycleCategory() {
	cats := activity.Categories()
	next := activity.Category("")
	if p.category == "" {
		next = cats[0]
	} else {
		for i, c := range cats {
			if c == p.category && i+1 < len(cats) {
				next = cats[i+1]
			}
		}
	}
	p.category = next
	p.refilter()
}

func (p *picker) up() {
	if p.cursor > 0 {
		p.cursor--
	}
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
}

func (p *picker) down() {
	if p.cursor < len(p.items)-1 {
		p.cursor++
	}
	if p.cursor >= p.offset+pickerVisibleRows {
		p.offset = p.cursor - pickerVisibleRows + 1
	}
}

// selected returns the highlighted activity.
func (p picker) selected() (activity.Activity, bool) {
	if p.cursor < 0 || p.cursor >= len(p.items) {
		return activity.Activity{}, false
	}
	return p.items[p.cursor], true
}

func (p picker) render(styles *Styles, day activity.Day, width int) string {
	var b strings.Builder

	filter := "all"
	if p.category != "" {
		filter = string(p.category)
	}
	fmt.Fprintf(&b, "%s %s\n", styles.PickerTitle.Render("Add to "+day.Title()), styles.Muted.Render("["+filter+"]"))
	b.WriteString(p.search.View())
	b.WriteString("\n\n")

	if len(p.items) == 0 {
		b.WriteString(styles.Muted.Render("No activities match"))
		b.WriteString("\n")
		return b.String()
	}

	nameW := max(12, width-22)
	end := min(len(p.items), p.offset+pickerVisibleRows)
	for i := p.offset; i < end; i++ {
		a := p.items[i]
		line := fmt.Sprintf("%-*s %6s %5s",
			nameW, ansi.Truncate(a.Name, nameW, "…"),
			summary.FormatDuration(a.Duration),
			summary.CostLabel(a.Cost),
		)
		marker := styles.CategoryMarker(a.Category).Render("●")
		if i == p.cursor {
			b.WriteString(marker + " " + styles.PickerSelected.Render(line))
		} else {
			b.WriteString(marker + " " + styles.PickerItem.Render(line))
		}
		b.WriteString("\n")
	}
	if len(p.items) > pickerVisibleRows {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("%d/%d", p.cursor+1, len(p.items))))
		b.WriteString("\n")
	}
	return b.String()
}

// placePicker centers the rendered picker box over the board. The board
// stays visible on both sides of the box and is cut to height rows.
func placePicker(base, box string, width, height int) string {
	if width <= 0 || height <= 0 || box == "" {
		return base
	}

	rows := strings.Split(base, "\n")
	for len(rows) < height {
		rows = append(rows, "")
	}
	rows = rows[:height]

	boxRows := strings.Split(box, "\n")
	if len(boxRows) > height {
		boxRows = boxRows[:height]
	}
	boxW := min(width, lipgloss.Width(box))
	top := (height - len(boxRows)) / 2
	left := (width - boxW) / 2

	for i, line := range boxRows {
		row := rows[top+i]
		head := ansi.Truncate(row, left, "")
		head += strings.Repeat(" ", left-lipgloss.Width(head))
		rows[top+i] = head + ansi.Truncate(line, boxW, "") + ansi.Cut(row, left+boxW, width)
	}
	return strings.Join(rows, "\n")
}

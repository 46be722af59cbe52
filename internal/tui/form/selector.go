package form

import (
	"strings"

	"github.com/Iron-Ham/dialogorithm/internal/tui/styles"
	"github.com/Iron-Ham/dialogorithm/internal/util"
)

// dropdownRows is the number of options visible while a dropdown is open.
const dropdownRows = 8

// selector is a labelled choice with an optional filterable dropdown.
type selector struct {
	label   string
	options []string
	index   int

	open   bool
	filter string
	cursor int
}

func newSelector(label string, options []string) selector {
	return selector{label: label, options: options}
}

// Value returns the selected option, or "" when there are none.
func (s selector) Value() string {
	if s.index < 0 || s.index >= len(s.options) {
		return ""
	}
	return s.options[s.index]
}

// SetOptions replaces the options and selects the first one.
func (s *selector) SetOptions(options []string) {
	s.options = options
	s.index = 0
	s.Close()
}

// Select picks option by value. It reports whether the value was found.
func (s *selector) Select(value string) bool {
	for i, o := range s.options {
		if o == value {
			s.index = i
			return true
		}
	}
	return false
}

// Cycle moves the selection by delta, wrapping around.
func (s *selector) Cycle(delta int) {
	if len(s.options) == 0 {
		return
	}
	s.index = (s.index + delta + len(s.options)) % len(s.options)
}

func (s *selector) Open() {
	s.open = true
	s.filter = ""
	s.cursor = 0
	for i, o := range s.visible() {
		if o == s.Value() {
			s.cursor = i
		}
	}
}

func (s *selector) Close() {
	s.open = false
	s.filter = ""
	s.cursor = 0
}

// visible returns the options matching the filter, case-insensitively.
func (s selector) visible() []string {
	if s.filter == "" {
		return s.options
	}
	needle := strings.ToLower(s.filter)
	var out []string
	for _, o := range s.options {
		if strings.Contains(strings.ToLower(o), needle) {
			out = append(out, o)
		}
	}
	return out
}

func (s *selector) MoveCursor(delta int) {
	n := len(s.visible())
	if n == 0 {
		return
	}
	s.cursor = min(max(s.cursor+delta, 0), n-1)
}

func (s *selector) Type(text string) {
	s.filter += text
	s.cursor = 0
}

func (s *selector) Backspace() {
	if s.filter == "" {
		return
	}
	r := []rune(s.filter)
	s.filter = string(r[:len(r)-1])
	s.cursor = 0
}

// Confirm selects the option under the cursor and closes the dropdown. It
// reports whether anything was chosen.
func (s *selector) Confirm() bool {
	vis := s.visible()
	if len(vis) == 0 {
		return false
	}
	chosen := s.Select(vis[s.cursor])
	s.Close()
	return chosen
}

func (s selector) viewDropdown(width int) string {
	vis := s.visible()
	var b strings.Builder
	if s.filter != "" {
		b.WriteString(styles.Muted.Render("filter: " + s.filter))
		b.WriteString("\n")
	}
	if len(vis) == 0 {
		b.WriteString(styles.Muted.Render("no matches"))
		return styles.DropdownContainer.Render(b.String())
	}

	start := 0
	if s.cursor >= dropdownRows {
		start = s.cursor - dropdownRows + 1
	}
	end := min(start+dropdownRows, len(vis))
	for i := start; i < end; i++ {
		text := util.FitColumn(vis[i], width)
		if i == s.cursor {
			b.WriteString(styles.DropdownItemSelected.Render(text))
		} else {
			b.WriteString(styles.DropdownItem.Render(text))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return styles.DropdownContainer.Render(b.String())
}

// Package form implements the interactive generation screen: country pickers,
// a digit-only number field with a live formatted preview, a signature
// chooser and stage-by-stage progress while the image is produced.
package form

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/dialogorithm/internal/errors"
	"github.com/Iron-Ham/dialogorithm/internal/event"
	"github.com/Iron-Ham/dialogorithm/internal/phoneformat"
	"github.com/Iron-Ham/dialogorithm/internal/pipeline"
	"github.com/Iron-Ham/dialogorithm/internal/signature"
	"github.com/Iron-Ham/dialogorithm/internal/tui/styles"
	"github.com/Iron-Ham/dialogorithm/internal/util"
)

// allSubregions labels the subregion option that keeps the whole continent.
const allSubregions = "All Subregions"

const labelWidth = 12

// Field identifies a focusable element of the form.
type Field int

const (
	FieldContinent Field = iota
	FieldSubregion
	FieldCountry
	FieldNumber
	FieldSignature
	FieldCustom
	FieldGenerate
)

// Generator is the part of the pipeline the form drives.
type Generator interface {
	Validate(req pipeline.Request) (string, error)
	Generate(ctx context.Context, req pipeline.Request) (*pipeline.Result, error)
}

// StageMsg reports a pipeline stage change.
type StageMsg struct {
	Stage event.Stage
}

// DoneMsg carries the outcome of a generation.
type DoneMsg struct {
	Result *pipeline.Result
	Err    error
}

// Model is the Bubbletea model of the form.
type Model struct {
	ctx context.Context
	gen Generator

	continent selector
	subregion selector
	country   selector
	signature selector
	number    textinput.Model
	custom    textinput.Model

	focus      Field
	width      int
	generating bool
	stages     []event.Stage
	result     *pipeline.Result
	errorMsg   string
	quitting   bool
}

// New creates the form. defaultSignature preselects a signature choice when it
// is one of signature.Choices.
func New(ctx context.Context, gen Generator, defaultSignature string) Model {
	number := textinput.New()
	number.Placeholder = "local number"
	number.CharLimit = phoneformat.DigitLimit(0)
	number.Width = 24

	custom := textinput.New()
	custom.Placeholder = signature.Fallback
	custom.CharLimit = 80
	custom.Width = 40

	m := Model{
		ctx:       ctx,
		gen:       gen,
		continent: newSelector("Continent", append([]string{phoneformat.AllContinents}, phoneformat.Continents()...)),
		subregion: newSelector("Subregion", nil),
		country:   newSelector("Country", nil),
		signature: newSelector("Signature", signature.Choices()),
		number:    number,
		custom:    custom,
	}
	for _, c := range signature.Choices() {
		if strings.EqualFold(c, defaultSignature) {
			m.signature.Select(c)
		}
	}
	m.refreshSubregions()
	return m
}

func (m *Model) refreshSubregions() {
	m.subregion.SetOptions(append([]string{allSubregions}, phoneformat.Subregions(m.continent.Value())...))
	m.refreshCountries()
}

func (m *Model) refreshCountries() {
	sub := m.subregion.Value()
	if sub == allSubregions {
		sub = ""
	}
	m.country.SetOptions(phoneformat.Countries(m.continent.Value(), sub))
	m.applyDigitLimit()
}

// CallingCode returns the selected country's calling code, or 0.
func (m Model) CallingCode() int {
	code, _, ok := phoneformat.CallingCode(m.country.Value())
	if !ok {
		return 0
	}
	return code
}

// applyDigitLimit caps the number field at the selected country's limit.
func (m *Model) applyDigitLimit() {
	limit := phoneformat.DigitLimit(m.CallingCode())
	m.number.CharLimit = limit
	if v := m.number.Value(); len(v) > limit {
		m.number.SetValue(v[:limit])
	}
}

// Request builds the generation request from the current input.
func (m Model) Request() pipeline.Request {
	return pipeline.Request{
		CallingCode:     m.CallingCode(),
		LocalNumber:     m.number.Value(),
		Signature:       m.signature.Value(),
		CustomSignature: m.custom.Value(),
	}
}

// Preview returns the international display of the current number.
func (m Model) Preview() string {
	code := m.CallingCode()
	if code == 0 || m.number.Value() == "" {
		return ""
	}
	return phoneformat.InternationalDisplay(m.number.Value(), code)
}

func (m Model) customVisible() bool {
	return m.signature.Value() == signature.Custom
}

func (m *Model) setFocus(f Field) {
	m.focus = f
	m.number.Blur()
	m.custom.Blur()
	switch f {
	case FieldNumber:
		m.number.Focus()
	case FieldCustom:
		m.custom.Focus()
	}
}

func (m *Model) moveFocus(delta int) {
	next := m.focus
	for {
		next = Field((int(next) + delta + int(FieldGenerate) + 1) % (int(FieldGenerate) + 1))
		if next != FieldCustom || m.customVisible() {
			break
		}
	}
	m.setFocus(next)
}

func (m *Model) focusedSelector() *selector {
	switch m.focus {
	case FieldContinent:
		return &m.continent
	case FieldSubregion:
		return &m.subregion
	case FieldCountry:
		return &m.country
	case FieldSignature:
		return &m.signature
	}
	return nil
}

// selectionChanged cascades a picker change to the pickers below it.
func (m *Model) selectionChanged(f Field) {
	switch f {
	case FieldContinent:
		m.refreshSubregions()
	case FieldSubregion:
		m.refreshCountries()
	case FieldCountry:
		m.applyDigitLimit()
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case StageMsg:
		if m.generating {
			m.stages = append(m.stages, msg.Stage)
		}
		return m, nil

	case DoneMsg:
		m.generating = false
		if msg.Err != nil {
			m.errorMsg = msg.Err.Error()
			if !errors.IsUserFacing(msg.Err) {
				m.errorMsg = "generation failed unexpectedly; details are in the log"
			}
			m.result = nil
		} else {
			m.result = msg.Result
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.generating {
			return m, nil
		}
		if sel := m.focusedSelector(); sel != nil && sel.open {
			return m.handleDropdownKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleDropdownKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sel := m.focusedSelector()
	switch msg.Type {
	case tea.KeyEsc:
		sel.Close()
	case tea.KeyEnter:
		if sel.Confirm() {
			m.selectionChanged(m.focus)
		}
	case tea.KeyUp:
		sel.MoveCursor(-1)
	case tea.KeyDown:
		sel.MoveCursor(1)
	case tea.KeyBackspace:
		sel.Backspace()
	case tea.KeyRunes, tea.KeySpace:
		sel.Type(string(msg.Runes))
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errorMsg = ""

	switch msg.String() {
	case "esc":
		m.quitting = true
		return m, tea.Quit
	case "tab", "down":
		m.moveFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, nil
	}

	if sel := m.focusedSelector(); sel != nil {
		switch msg.String() {
		case "enter", " ":
			sel.Open()
		case "left", "h":
			sel.Cycle(-1)
			m.selectionChanged(m.focus)
		case "right", "l":
			sel.Cycle(1)
			m.selectionChanged(m.focus)
		}
		return m, nil
	}

	switch m.focus {
	case FieldNumber:
		if msg.Type == tea.KeyEnter {
			m.moveFocus(1)
			return m, nil
		}
		if msg.Type == tea.KeyRunes && !allDigits(msg.Runes) {
			return m, nil
		}
		var cmd tea.Cmd
		m.number, cmd = m.number.Update(msg)
		return m, cmd

	case FieldCustom:
		if msg.Type == tea.KeyEnter {
			m.moveFocus(1)
			return m, nil
		}
		var cmd tea.Cmd
		m.custom, cmd = m.custom.Update(msg)
		return m, cmd

	case FieldGenerate:
		if msg.Type == tea.KeyEnter || msg.String() == " " {
			return m.startGeneration()
		}
	}
	return m, nil
}

func allDigits(runes []rune) bool {
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// startGeneration validates synchronously and runs the pipeline in a command.
func (m Model) startGeneration() (tea.Model, tea.Cmd) {
	req := m.Request()
	if _, err := m.gen.Validate(req); err != nil {
		m.errorMsg = err.Error()
		return m, nil
	}
	m.generating = true
	m.stages = nil
	m.result = nil
	ctx, gen := m.ctx, m.gen
	return m, func() tea.Msg {
		res, err := gen.Generate(ctx, req)
		return DoneMsg{Result: res, Err: err}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Dialogorithm"))
	b.WriteString("\n")

	for _, f := range []Field{FieldContinent, FieldSubregion, FieldCountry} {
		b.WriteString(m.renderSelector(f))
	}

	b.WriteString(m.label(FieldNumber, "Number"))
	b.WriteString(m.number.View())
	b.WriteString("\n")
	b.WriteString(m.renderPreview())

	b.WriteString(m.renderSelector(FieldSignature))
	if m.customVisible() {
		b.WriteString(m.label(FieldCustom, "Custom"))
		b.WriteString(m.custom.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	button := "[ Generate ]"
	if m.focus == FieldGenerate {
		b.WriteString(styles.DropdownItemSelected.Render(button))
	} else {
		b.WriteString(styles.FieldLabel.Render(button))
	}
	b.WriteString("\n")

	b.WriteString(m.renderStatus())
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) label(f Field, text string) string {
	text = util.PadRight(text, labelWidth)
	if m.focus == f {
		return styles.FieldLabelActive.Render("> " + text)
	}
	return styles.FieldLabel.Render("  " + text)
}

func (m Model) renderSelector(f Field) string {
	var sel selector
	switch f {
	case FieldContinent:
		sel = m.continent
	case FieldSubregion:
		sel = m.subregion
	case FieldCountry:
		sel = m.country
	case FieldSignature:
		sel = m.signature
	}

	width := 40
	if m.width > 0 {
		width = max(min(m.width-labelWidth-8, 60), 10)
	}
	value := sel.Value()
	if value == "" {
		value = "(none)"
	}

	var b strings.Builder
	b.WriteString(m.label(f, sel.label))
	b.WriteString(util.TruncateANSI(value, width))
	b.WriteString("\n")
	if sel.open && m.focus == f {
		b.WriteString(sel.viewDropdown(width))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderPreview() string {
	code := m.CallingCode()
	if code == 0 {
		return ""
	}
	digits := len(m.number.Value())
	limit := phoneformat.DigitLimit(code)
	counter := fmt.Sprintf("%d/%d digits", digits, limit)

	line := strings.Repeat(" ", labelWidth+2)
	if preview := m.Preview(); preview != "" {
		line += styles.Preview.Render(preview) + "  "
	} else if example := phoneformat.FormatExample(m.country.Value()); example != "" {
		line += styles.Muted.Render("e.g. "+example) + "  "
	}
	if digits > 0 && digits < pipeline.DefaultMinLocalDigits {
		line += styles.Warning.Render(counter)
	} else {
		line += styles.Muted.Render(counter)
	}
	return line + "\n"
}

func (m Model) renderStatus() string {
	var b strings.Builder
	if m.generating || len(m.stages) > 0 {
		b.WriteString("\n")
		for _, s := range m.stages {
			b.WriteString("  " + styles.Stage(s) + "\n")
		}
	}
	if m.result != nil {
		b.WriteString("\n")
		b.WriteString(styles.SuccessMsg.Render("Saved " + m.result.ImagePath))
		b.WriteString("\n")
		if m.result.VerificationPath != "" {
			b.WriteString(styles.Muted.Render("Verification: " + m.result.VerificationPath))
			b.WriteString("\n")
		}
		if m.result.Duplicates > 0 || m.result.Placeholders > 0 {
			b.WriteString(styles.WarningMsg.Render(fmt.Sprintf(
				"%d repeated expressions, %d placeholders", m.result.Duplicates, m.result.Placeholders)))
			b.WriteString("\n")
		}
	}
	if m.errorMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorMsg.Render("Error: " + m.errorMsg))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderHelp() string {
	key := styles.HelpKey.Render
	if sel := m.focusedSelector(); sel != nil && sel.open {
		return styles.HelpBar.Render(key("type") + " filter  " + key("↑/↓") + " move  " +
			key("enter") + " choose  " + key("esc") + " close")
	}
	return styles.HelpBar.Render(key("tab/↑↓") + " field  " + key("←/→") + " change  " +
		key("enter") + " open/generate  " + key("esc") + " quit")
}

// Run shows the form until the user quits. Stage changes published on bus
// are forwarded to the screen.
func Run(ctx context.Context, gen Generator, bus *event.Bus, defaultSignature string) error {
	p := tea.NewProgram(New(ctx, gen, defaultSignature), tea.WithAltScreen())
	if bus != nil {
		id := bus.Subscribe(event.TypeStageChanged, func(e event.Event) {
			if sc, ok := e.(event.StageChangedEvent); ok {
				p.Send(StageMsg{Stage: sc.Current})
			}
		})
		defer bus.Unsubscribe(id)
	}
	_, err := p.Run()
	return err
}

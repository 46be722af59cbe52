package form

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iron-Ham/dialogorithm/internal/errors"
	"github.com/Iron-Ham/dialogorithm/internal/event"
	"github.com/Iron-Ham/dialogorithm/internal/phoneformat"
	"github.com/Iron-Ham/dialogorithm/internal/pipeline"
	"github.com/Iron-Ham/dialogorithm/internal/signature"
)

const usLabel = "🇺🇸 United States"

type fakeGenerator struct {
	requests []pipeline.Request
	err      error
}

func (f *fakeGenerator) Validate(req pipeline.Request) (string, error) {
	return pipeline.ValidateRequest(req, pipeline.DefaultMinLocalDigits)
}

func (f *fakeGenerator) Generate(_ context.Context, req pipeline.Request) (*pipeline.Result, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &pipeline.Result{ImagePath: "/tmp/out.png", VerificationPath: "/tmp/verification.txt", Duplicates: 1}, nil
}

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func send(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(Model)
	}
	return m, cmd
}

// withCountry returns a form with the United States selected and the number
// field focused.
func withCountry(t *testing.T, gen Generator) Model {
	t.Helper()
	m := New(context.Background(), gen, signature.Random)
	require.True(t, m.country.Select(usLabel))
	m.applyDigitLimit()
	m.setFocus(FieldNumber)
	return m
}

func TestNew_Defaults(t *testing.T) {
	m := New(context.Background(), &fakeGenerator{}, "pLeAsE cAlL mE aT:")
	assert.Equal(t, phoneformat.AllContinents, m.continent.Value())
	assert.Equal(t, allSubregions, m.subregion.Value())
	assert.Equal(t, phoneformat.CountryList(), m.country.options)
	assert.Equal(t, "Please call me at:", m.signature.Value())
	assert.Equal(t, FieldContinent, m.focus)
}

func TestNew_UnknownSignatureKeepsRandom(t *testing.T) {
	m := New(context.Background(), &fakeGenerator{}, "nonsense")
	assert.Equal(t, signature.Random, m.signature.Value())
}

func TestContinentChangeCascades(t *testing.T) {
	m := New(context.Background(), &fakeGenerator{}, "")
	m, _ = send(t, m, "enter", "Europe", "enter")

	assert.Equal(t, "Europe", m.continent.Value())
	assert.Equal(t, append([]string{allSubregions}, phoneformat.Subregions("Europe")...), m.subregion.options)
	assert.Equal(t, phoneformat.Countries("Europe", ""), m.country.options)

	m, _ = send(t, m, "tab", "enter", "Western", "enter")
	assert.Equal(t, "Western Europe", m.subregion.Value())
	assert.Equal(t, phoneformat.Countries("Europe", "Western Europe"), m.country.options)
}

func TestDropdown_FilterAndEscape(t *testing.T) {
	m := New(context.Background(), &fakeGenerator{}, "")
	m, _ = send(t, m, "tab", "tab", "enter")
	require.True(t, m.country.open)

	m, _ = send(t, m, "zzzz")
	assert.Empty(t, m.country.visible())
	assert.Contains(t, m.View(), "no matches")

	m, _ = send(t, m, "backspace", "backspace", "backspace", "backspace", "France")
	assert.Equal(t, []string{"🇫🇷 France"}, m.country.visible())

	before := m.country.Value()
	m, _ = send(t, m, "esc")
	assert.False(t, m.country.open)
	assert.Equal(t, before, m.country.Value(), "escape keeps the previous choice")
	assert.False(t, m.quitting, "escape in a dropdown does not quit")
}

func TestCycleWithArrows(t *testing.T) {
	m := New(context.Background(), &fakeGenerator{}, "")
	m, _ = send(t, m, "right")
	assert.Equal(t, phoneformat.Continents()[0], m.continent.Value())
	m, _ = send(t, m, "left", "left")
	conts := phoneformat.Continents()
	assert.Equal(t, conts[len(conts)-1], m.continent.Value())
}

func TestNumberField_DigitsOnly(t *testing.T) {
	m := withCountry(t, &fakeGenerator{})
	m, _ = send(t, m, "555", "a", "-", "5a", "12")

	assert.Equal(t, "55512", m.number.Value())
}

func TestNumberField_CappedAtCountryLimit(t *testing.T) {
	m := withCountry(t, &fakeGenerator{})
	for range 14 {
		m, _ = send(t, m, "9")
	}
	assert.Len(t, m.number.Value(), phoneformat.DigitLimit(1))
}

func TestPreview(t *testing.T) {
	m := withCountry(t, &fakeGenerator{})
	assert.Empty(t, m.Preview())

	m, _ = send(t, m, "5551234567")
	assert.Equal(t, phoneformat.InternationalDisplay("5551234567", 1), m.Preview())
	assert.True(t, strings.HasPrefix(m.Preview(), "+1 "))
	assert.Contains(t, m.View(), "10/10 digits")
}

func TestCustomFieldOnlyWhenCustomChosen(t *testing.T) {
	m := withCountry(t, &fakeGenerator{})
	m, _ = send(t, m, "tab")
	require.Equal(t, FieldSignature, m.focus)
	m, _ = send(t, m, "tab")
	assert.Equal(t, FieldGenerate, m.focus, "custom text is skipped")

	m, _ = send(t, m, "shift+tab", "enter", "Custom", "enter", "tab")
	require.Equal(t, signature.Custom, m.signature.Value())
	assert.Equal(t, FieldCustom, m.focus)

	m, _ = send(t, m, "Ring me")
	assert.Equal(t, "Ring me", m.Request().CustomSignature)
	assert.Contains(t, m.View(), "Custom")
}

func TestGenerate_ValidationErrorShownWithoutRunning(t *testing.T) {
	gen := &fakeGenerator{}
	m := withCountry(t, gen)
	m, _ = send(t, m, "123")
	m.setFocus(FieldGenerate)

	m, cmd := send(t, m, "enter")

	assert.Nil(t, cmd)
	assert.False(t, m.generating)
	assert.Contains(t, m.errorMsg, "at least 4 digits")
	assert.Empty(t, gen.requests)
}

func TestGenerate_RunsPipeline(t *testing.T) {
	gen := &fakeGenerator{}
	m := withCountry(t, gen)
	m, _ = send(t, m, "5551234567")
	m.setFocus(FieldGenerate)

	m, cmd := send(t, m, "enter")
	require.NotNil(t, cmd)
	assert.True(t, m.generating)

	// Input is ignored while the pipeline runs.
	m, _ = send(t, m, "tab")
	assert.Equal(t, FieldGenerate, m.focus)

	next, _ := m.Update(StageMsg{Stage: event.StageCompose})
	m = next.(Model)
	next, _ = m.Update(StageMsg{Stage: event.StageRender})
	m = next.(Model)
	assert.Equal(t, []event.Stage{event.StageCompose, event.StageRender}, m.stages)

	next, _ = m.Update(cmd())
	m = next.(Model)

	require.Len(t, gen.requests, 1)
	assert.Equal(t, pipeline.Request{CallingCode: 1, LocalNumber: "5551234567", Signature: signature.Random}, gen.requests[0])
	assert.False(t, m.generating)
	view := m.View()
	assert.Contains(t, view, "Saved /tmp/out.png")
	assert.Contains(t, view, "Verification: /tmp/verification.txt")
	assert.Contains(t, view, "1 repeated expressions, 0 placeholders")
}

func TestGenerate_Failure(t *testing.T) {
	gen := &fakeGenerator{err: errors.NewRenderError("pdflatex", "compile failed", nil)}
	m := withCountry(t, gen)
	m, _ = send(t, m, "5551234567")
	m.setFocus(FieldGenerate)

	m, cmd := send(t, m, "enter")
	next, _ := m.Update(cmd())
	m = next.(Model)

	assert.Nil(t, m.result)
	assert.Contains(t, m.View(), "Error:")
}

func TestGenerate_InternalErrorHidden(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("open /tmp/x: permission denied")}
	m := withCountry(t, gen)
	m, _ = send(t, m, "5551234567")
	m.setFocus(FieldGenerate)

	m, cmd := send(t, m, "enter")
	next, _ := m.Update(cmd())
	m = next.(Model)

	view := m.View()
	assert.Contains(t, view, "details are in the log")
	assert.NotContains(t, view, "permission denied")
}

func TestQuitKeys(t *testing.T) {
	m := New(context.Background(), &fakeGenerator{}, "")
	m, cmd := send(t, m, "esc")
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Empty(t, m.View())

	m = New(context.Background(), &fakeGenerator{}, "")
	m.generating = true
	m, _ = send(t, m, "ctrl+c")
	assert.True(t, m.quitting, "ctrl+c quits even while generating")
}

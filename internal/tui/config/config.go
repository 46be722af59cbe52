// Package config provides the interactive editor for the configuration file.
package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/dialogorithm/internal/config"
	"github.com/Iron-Ham/dialogorithm/internal/signature"
	"github.com/Iron-Ham/dialogorithm/internal/tui/styles"
)

// Item types.
const (
	TypeString   = "string"
	TypeBool     = "bool"
	TypeInt      = "int"
	TypeDuration = "duration"
	TypeSelect   = "select"
)

// ConfigItem represents a single configuration item
type ConfigItem struct {
	Key         string
	Label       string
	Description string
	Type        string
	Options     []string // For select type
}

// Category represents a group of config items
type Category struct {
	Name  string
	Items []ConfigItem
}

// Model is the Bubbletea model for the interactive config UI
type Model struct {
	categories     []Category
	categoryIndex  int
	itemIndex      int
	width          int
	height         int
	editing        bool
	textInput      textinput.Model
	selectIndex    int
	scrollOffset   int
	errorMsg       string
	infoMsg        string
	quitting       bool
	configModified bool
}

func signatureDefaults() []string {
	return slices.DeleteFunc(signature.Choices(), func(c string) bool {
		return c == signature.Custom
	})
}

// Categories returns the editable settings grouped by section.
func Categories() []Category {
	return []Category{
		{
			Name: "Output",
			Items: []ConfigItem{
				{Key: "output.dir", Label: "Output Directory", Description: "Where the image and verification file are written (~ is expanded)", Type: TypeString},
				{Key: "output.image_name", Label: "Image Name", Description: "File name of the rendered image, overwritten on every run", Type: TypeString},
				{Key: "output.verification", Label: "Verification File", Description: "Write a checklist of every expression next to the image", Type: TypeBool},
			},
		},
		{
			Name: "Render",
			Items: []ConfigItem{
				{Key: "render.dpi", Label: "DPI", Description: "Rasterization resolution (72-2400)", Type: TypeInt},
				{Key: "render.compile_timeout", Label: "Compile Timeout", Description: "Time allowed for the LaTeX compiler, e.g. 30s", Type: TypeDuration},
				{Key: "render.convert_timeout", Label: "Convert Timeout", Description: "Time allowed for the PDF to PNG converter, e.g. 20s", Type: TypeDuration},
				{Key: "render.latex_command", Label: "LaTeX Command", Description: "Compiler invoked with -interaction=nonstopmode", Type: TypeString},
				{Key: "render.raster_command", Label: "Raster Command", Description: "Converter invoked with -png -singlefile", Type: TypeString},
			},
		},
		{
			Name: "Compose",
			Items: []ConfigItem{
				{Key: "compose.max_unique_attempts", Label: "Unique Attempts", Description: "Draws per digit before a repeated expression is accepted", Type: TypeInt},
				{Key: "compose.strict_unique", Label: "Strict Uniqueness", Description: "Fail instead of repeating an expression", Type: TypeBool},
				{Key: "compose.line_columns", Label: "Columns Per Line", Description: "Expressions per rendered line", Type: TypeInt},
				{Key: "compose.min_local_digits", Label: "Minimum Digits", Description: "Shortest local number accepted", Type: TypeInt},
			},
		},
		{
			Name: "Signature",
			Items: []ConfigItem{
				{Key: "signature.default", Label: "Default Signature", Description: "Heading used when none is chosen", Type: TypeSelect, Options: signatureDefaults()},
			},
		},
		{
			Name: "Logging",
			Items: []ConfigItem{
				{Key: "logging.enabled", Label: "Enabled", Description: "Write a JSON log file under the config directory", Type: TypeBool},
				{Key: "logging.level", Label: "Level", Description: "Minimum level written", Type: TypeSelect, Options: config.ValidLogLevels()},
				{Key: "logging.max_size_mb", Label: "Max Size (MB)", Description: "Log size that triggers rotation", Type: TypeInt},
				{Key: "logging.max_backups", Label: "Max Backups", Description: "Rotated files kept", Type: TypeInt},
				{Key: "logging.compress", Label: "Compress Backups", Description: "Gzip rotated files", Type: TypeBool},
			},
		},
		{
			Name: "Metrics",
			Items: []ConfigItem{
				{Key: "metrics.textfile", Label: "Textfile", Description: "Prometheus textfile written after each run (empty disables)", Type: TypeString},
			},
		},
	}
}

// New creates a new config model
func New() Model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 40

	return Model{
		categories: Categories(),
		textInput:  ti,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureSelectionVisible(m.availableLines())
		return m, nil

	case tea.KeyMsg:
		m.errorMsg = ""
		m.infoMsg = ""

		if m.editing {
			return m.handleEditingKeypress(msg)
		}

		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			m.itemIndex--
			if m.itemIndex < 0 {
				m.categoryIndex--
				if m.categoryIndex < 0 {
					m.categoryIndex = len(m.categories) - 1
				}
				m.itemIndex = len(m.categories[m.categoryIndex].Items) - 1
			}

		case "down", "j":
			m.itemIndex++
			if m.itemIndex >= len(m.categories[m.categoryIndex].Items) {
				m.categoryIndex = (m.categoryIndex + 1) % len(m.categories)
				m.itemIndex = 0
			}

		case "tab":
			m.categoryIndex = (m.categoryIndex + 1) % len(m.categories)
			m.itemIndex = 0

		case "shift+tab":
			m.categoryIndex--
			if m.categoryIndex < 0 {
				m.categoryIndex = len(m.categories) - 1
			}
			m.itemIndex = 0

		case "enter", " ":
			item := m.currentItem()
			switch item.Type {
			case TypeBool:
				m.apply(item, !viper.GetBool(item.Key))
			case TypeSelect:
				m.editing = true
				m.selectIndex = m.getCurrentSelectIndex()
			default:
				m.editing = true
				m.textInput.SetValue(m.getDisplayValue(item))
				m.textInput.Focus()
			}

		case "ctrl+d", "pgdown":
			for range max(m.availableLines()/2, 1) {
				if !m.moveDown() {
					break
				}
			}

		case "ctrl+u", "pgup":
			for range max(m.availableLines()/2, 1) {
				if !m.moveUp() {
					break
				}
			}

		case "g":
			m.categoryIndex, m.itemIndex = 0, 0

		case "G":
			m.categoryIndex = len(m.categories) - 1
			m.itemIndex = len(m.categories[m.categoryIndex].Items) - 1

		case "r":
			m.resetCurrentToDefault()
		}
		m.ensureSelectionVisible(m.availableLines())
	}

	return m, nil
}

// moveDown advances the selection without wrapping.
func (m *Model) moveDown() bool {
	if m.itemIndex < len(m.categories[m.categoryIndex].Items)-1 {
		m.itemIndex++
		return true
	}
	if m.categoryIndex < len(m.categories)-1 {
		m.categoryIndex++
		m.itemIndex = 0
		return true
	}
	return false
}

// moveUp moves the selection back without wrapping.
func (m *Model) moveUp() bool {
	if m.itemIndex > 0 {
		m.itemIndex--
		return true
	}
	if m.categoryIndex > 0 {
		m.categoryIndex--
		m.itemIndex = len(m.categories[m.categoryIndex].Items) - 1
		return true
	}
	return false
}

// availableLines is the number of list lines that fit between the header
// and the description, help and message area.
func (m Model) availableLines() int {
	return max(m.height-12, 5)
}

// totalLines counts the rendered list lines: a header, the items and a blank
// line per category.
func (m Model) totalLines() int {
	n := 0
	for _, cat := range m.categories {
		n += len(cat.Items) + 2
	}
	return n
}

// currentSelectionLine is the list line of the selected item.
func (m Model) currentSelectionLine() int {
	line := 0
	for ci := 0; ci < m.categoryIndex; ci++ {
		line += len(m.categories[ci].Items) + 2
	}
	return line + 1 + m.itemIndex
}

func (m *Model) ensureSelectionVisible(available int) {
	sel := m.currentSelectionLine()
	if sel < m.scrollOffset {
		m.scrollOffset = sel
	}
	if sel >= m.scrollOffset+available {
		m.scrollOffset = sel - available + 1
	}
	if limit := max(m.totalLines()-available, 0); m.scrollOffset > limit {
		m.scrollOffset = limit
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
	// Keep the selection inside the window even after clamping.
	if sel >= m.scrollOffset+available {
		m.scrollOffset = sel - available + 1
	}
}

func (m *Model) handleEditingKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item := m.currentItem()

	switch msg.String() {
	case "esc":
		m.editing = false
		m.textInput.SetValue("")
		return m, nil

	case "enter":
		if item.Type == TypeSelect {
			m.apply(item, item.Options[m.selectIndex])
			m.editing = false
			return m, nil
		}
		value, err := ParseValue(item, m.textInput.Value())
		if err != nil {
			m.errorMsg = err.Error()
			return m, nil
		}
		if m.apply(item, value) {
			m.editing = false
			m.textInput.SetValue("")
		}
		return m, nil

	case "up", "k":
		if item.Type == TypeSelect {
			m.selectIndex--
			if m.selectIndex < 0 {
				m.selectIndex = len(item.Options) - 1
			}
			return m, nil
		}

	case "down", "j":
		if item.Type == TypeSelect {
			m.selectIndex = (m.selectIndex + 1) % len(item.Options)
			return m, nil
		}
	}

	if item.Type != TypeSelect {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// ParseValue converts text input into the item's type.
func ParseValue(item ConfigItem, value string) (any, error) {
	value = strings.TrimSpace(value)
	switch item.Type {
	case TypeInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("expected integer value")
		}
		return n, nil
	case TypeDuration:
		d, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("expected a duration such as 30s")
		}
		return d, nil
	case TypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("expected true or false")
		}
		return b, nil
	case TypeSelect:
		if !slices.Contains(item.Options, value) {
			return nil, fmt.Errorf("invalid option: %s", value)
		}
		return value, nil
	default:
		return value, nil
	}
}

// apply sets the value, rejects it if the resulting configuration is invalid,
// and saves. It reports whether the value was kept.
func (m *Model) apply(item ConfigItem, value any) bool {
	previous := viper.Get(item.Key)
	viper.Set(item.Key, value)
	if _, err := config.Load(); err != nil {
		viper.Set(item.Key, previous)
		m.errorMsg = err.Error()
		return false
	}
	m.saveConfig()
	return m.errorMsg == ""
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(styles.Header.Width(m.width - 4).Render("Dialogorithm Configuration"))
	b.WriteString("\n\n")

	configPath := viper.ConfigFileUsed()
	if configPath == "" {
		configPath = config.ConfigFile() + " (not created)"
	}
	b.WriteString(styles.Muted.Render(fmt.Sprintf("Config file: %s", configPath)))
	b.WriteString("\n\n")

	var lines []string
	for ci, cat := range m.categories {
		active := ci == m.categoryIndex
		catStyle := styles.Muted.Bold(true)
		if active {
			catStyle = styles.Primary.Bold(true)
		}
		lines = append(lines, catStyle.Render(fmt.Sprintf("[ %s ]", cat.Name)))
		for ii, item := range cat.Items {
			lines = append(lines, m.renderItem(item, active && ii == m.itemIndex))
		}
		lines = append(lines, "")
	}

	available := m.availableLines()
	start := min(m.scrollOffset, len(lines))
	end := min(start+available, len(lines))
	if start > 0 {
		b.WriteString(styles.Muted.Render("  ▲ more"))
	}
	b.WriteString("\n")
	b.WriteString(strings.Join(lines[start:end], "\n"))
	b.WriteString("\n")
	if end < len(lines) {
		b.WriteString(styles.Muted.Render("  ▼ more"))
	}
	b.WriteString("\n")

	if m.editing {
		b.WriteString(m.renderEditOverlay())
	} else {
		b.WriteString(styles.Muted.Render(m.currentItem().Description))
		b.WriteString("\n")
	}

	if m.errorMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorMsg.Render("Error: " + m.errorMsg))
	}
	if m.infoMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.SuccessMsg.Render(m.infoMsg))
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderItem(item ConfigItem, selected bool) string {
	label := fmt.Sprintf("%-22s", item.Label)
	value := m.getDisplayValue(item)

	if selected {
		return fmt.Sprintf("  %s %s  %s",
			styles.Secondary.Render(">"),
			styles.Text.Bold(true).Render(label),
			styles.Primary.Render(value))
	}
	return fmt.Sprintf("    %s  %s", styles.Muted.Render(label), styles.Text.Render(value))
}

func (m Model) renderEditOverlay() string {
	item := m.currentItem()
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.PrimaryColor).
		Padding(1, 2).
		Width(56)

	var content strings.Builder
	if item.Type == TypeSelect {
		fmt.Fprintf(&content, "Select %s:\n\n", item.Label)
		for i, opt := range item.Options {
			if i == m.selectIndex {
				content.WriteString(styles.DropdownItemSelected.Render(" > " + opt + " "))
			} else {
				content.WriteString(styles.DropdownItem.Render("   " + opt + " "))
			}
			content.WriteString("\n")
		}
		content.WriteString("\n" + styles.Muted.Render("j/k or arrows to select, enter to confirm, esc to cancel"))
	} else {
		fmt.Fprintf(&content, "Edit %s:\n\n", item.Label)
		content.WriteString(m.textInput.View())
		content.WriteString("\n\n" + styles.Muted.Render("enter to save, esc to cancel"))
	}
	return "\n" + border.Render(content.String())
}

func (m Model) renderHelp() string {
	key := styles.HelpKey.Render
	if m.editing {
		return styles.HelpBar.Render(key("enter") + " save  " + key("esc") + " cancel")
	}
	return styles.HelpBar.Render(
		key("j/k") + " navigate  " +
			key("tab") + " next section  " +
			key("enter/space") + " edit  " +
			key("r") + " reset  " +
			key("q") + " quit",
	)
}

func (m Model) currentItem() ConfigItem {
	return m.categories[m.categoryIndex].Items[m.itemIndex]
}

func (m Model) getDisplayValue(item ConfigItem) string {
	switch item.Type {
	case TypeBool:
		return strconv.FormatBool(viper.GetBool(item.Key))
	case TypeInt:
		return strconv.Itoa(viper.GetInt(item.Key))
	case TypeDuration:
		return viper.GetDuration(item.Key).String()
	default:
		return viper.GetString(item.Key)
	}
}

func (m Model) getCurrentSelectIndex() int {
	item := m.currentItem()
	current := viper.GetString(item.Key)
	for i, opt := range item.Options {
		if strings.EqualFold(opt, current) {
			return i
		}
	}
	return 0
}

func (m *Model) saveConfig() {
	if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
		m.errorMsg = fmt.Sprintf("Failed to create config directory: %v", err)
		return
	}
	if err := viper.WriteConfigAs(config.ConfigFile()); err != nil {
		m.errorMsg = fmt.Sprintf("Failed to save config: %v", err)
		return
	}
	m.infoMsg = "Saved!"
	m.configModified = true
}

// DefaultValue returns the built-in value for key.
func DefaultValue(key string) (any, bool) {
	d := config.Default()
	values := map[string]any{
		"output.dir":                  d.Output.Dir,
		"output.image_name":           d.Output.ImageName,
		"output.verification":         d.Output.Verification,
		"render.dpi":                  d.Render.DPI,
		"render.compile_timeout":      d.Render.CompileTimeout,
		"render.convert_timeout":      d.Render.ConvertTimeout,
		"render.latex_command":        d.Render.LatexCommand,
		"render.raster_command":       d.Render.RasterCommand,
		"compose.max_unique_attempts": d.Compose.MaxUniqueAttempts,
		"compose.strict_unique":       d.Compose.StrictUnique,
		"compose.line_columns":        d.Compose.LineColumns,
		"compose.min_local_digits":    d.Compose.MinLocalDigits,
		"signature.default":           d.Signature.Default,
		"logging.enabled":             d.Logging.Enabled,
		"logging.level":               d.Logging.Level,
		"logging.max_size_mb":         d.Logging.MaxSizeMB,
		"logging.max_backups":         d.Logging.MaxBackups,
		"logging.compress":            d.Logging.Compress,
		"metrics.textfile":            d.Metrics.Textfile,
	}
	v, ok := values[key]
	return v, ok
}

func (m *Model) resetCurrentToDefault() {
	item := m.currentItem()
	if v, ok := DefaultValue(item.Key); ok && m.apply(item, v) {
		m.infoMsg = fmt.Sprintf("Reset %s to default", item.Label)
	}
}

// Modified reports whether any change was saved.
func (m Model) Modified() bool {
	return m.configModified
}

// Run starts the interactive config UI
func Run() error {
	p := tea.NewProgram(New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

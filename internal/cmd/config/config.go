// Package config provides CLI commands for managing the configuration file.
package config

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	appconfig "github.com/Iron-Ham/dialogorithm/internal/config"
	tuiconfig "github.com/Iron-Ham/dialogorithm/internal/tui/config"
)

// Wrapper functions for exec to allow testing
var execLookPath = exec.LookPath
var execCommand = exec.Command

var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify Dialogorithm configuration",
	Long: `View or modify Dialogorithm configuration.

Without arguments, opens an interactive configuration UI (or shows the
configuration when not attached to a terminal).
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigInteractive,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  dialogorithm config set render.dpi 300
  dialogorithm config set render.compile_timeout 1m
  dialogorithm config set compose.strict_unique true

` + keyHelp(),
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/dialogorithm/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open config file in your editor",
	Long: `Open the config file in your preferred editor.

Uses $EDITOR environment variable, or falls back to common editors (vim, nano, vi).
If no config file exists, creates one with default values first.`,
	RunE: runConfigEdit,
}

var configResetCmd = &cobra.Command{
	Use:   "reset [key]",
	Short: "Reset configuration to defaults",
	Long: `Reset configuration values to their defaults.

Without arguments, resets all configuration to defaults.
With a key argument, resets only that specific key.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigReset,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configResetCmd)
}

// Register adds all config-related commands to the given parent command.
func Register(parent *cobra.Command) {
	parent.AddCommand(configCmd)
}

// items returns every settable key with its type, in display order.
func items() []tuiconfig.ConfigItem {
	var out []tuiconfig.ConfigItem
	for _, cat := range tuiconfig.Categories() {
		out = append(out, cat.Items...)
	}
	return out
}

func lookupItem(key string) (tuiconfig.ConfigItem, bool) {
	for _, item := range items() {
		if item.Key == key {
			return item, true
		}
	}
	return tuiconfig.ConfigItem{}, false
}

func keyHelp() string {
	var b strings.Builder
	b.WriteString("Valid keys:\n")
	for _, item := range items() {
		fmt.Fprintf(&b, "  %-28s - %s\n", item.Key, item.Description)
		if len(item.Options) > 0 {
			fmt.Fprintf(&b, "  %-28s   Options: %s\n", "", strings.Join(item.Options, ", "))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func runConfigInteractive(cmd *cobra.Command, args []string) error {
	if !isTerminal() {
		return runConfigShow(cmd, args)
	}
	return tuiconfig.Run()
}

// showSettings lists the effective value of every key grouped by section.
func showSettings() map[string]map[string]any {
	out := make(map[string]map[string]any)
	for _, item := range items() {
		section, name, _ := strings.Cut(item.Key, ".")
		if out[section] == nil {
			out[section] = make(map[string]any)
		}
		switch item.Type {
		case tuiconfig.TypeDuration:
			out[section][name] = viper.GetDuration(item.Key).String()
		case tuiconfig.TypeInt:
			out[section][name] = viper.GetInt(item.Key)
		case tuiconfig.TypeBool:
			out[section][name] = viper.GetBool(item.Key)
		default:
			out[section][name] = viper.GetString(item.Key)
		}
	}
	return out
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintln(out, "Config file: (none - using defaults)")
	}
	fmt.Fprintln(out)

	data, err := yaml.Marshal(showSettings())
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	fmt.Fprint(out, string(data))

	if _, err := appconfig.Load(); err != nil {
		fmt.Fprintf(out, "\nWarning: configuration is invalid, defaults are used instead:\n%v\n", err)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	item, ok := lookupItem(key)
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nRun 'dialogorithm config set --help' to see valid keys", key)
	}
	if item.Type == tuiconfig.TypeSelect && !slices.Contains(item.Options, value) {
		return fmt.Errorf("invalid value for %s: %s\nValid options: %s", key, value, strings.Join(item.Options, ", "))
	}
	typed, err := tuiconfig.ParseValue(item, value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	previous := viper.Get(key)
	viper.Set(key, typed)
	if _, err := appconfig.Load(); err != nil {
		viper.Set(key, previous)
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	configFile, err := writeConfig()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, typed)
	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", configFile)
	return nil
}

func writeConfig() (string, error) {
	if err := os.MkdirAll(appconfig.ConfigDir(), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	configFile := appconfig.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return configFile, nil
}

// defaultConfigContent renders a commented config file holding the defaults.
func defaultConfigContent() string {
	d := appconfig.Default()
	return fmt.Sprintf(`# Dialogorithm Configuration

# Where results are written
output:
  # Destination directory (~ is expanded)
  dir: %q
  # Image file name, overwritten on every run
  image_name: %q
  # Write a verification checklist next to the image
  verification: %t

# LaTeX toolchain
render:
  # Rasterization resolution (72-2400)
  dpi: %d
  # Time allowed for each external step
  compile_timeout: %s
  convert_timeout: %s
  latex_command: %s
  raster_command: %s

# Expression selection
compose:
  # Draws per digit before a repeated expression is accepted
  max_unique_attempts: %d
  # Fail instead of repeating an expression
  strict_unique: %t
  # Expressions per rendered line
  line_columns: %d
  # Shortest local number accepted
  min_local_digits: %d

signature:
  # Random, one of the fixed choices, or literal text
  default: %q

logging:
  enabled: %t
  # Options: %s
  level: %s
  max_size_mb: %d
  max_backups: %d
  compress: %t

metrics:
  # Prometheus textfile written after each run (empty disables)
  textfile: %q
`,
		d.Output.Dir, d.Output.ImageName, d.Output.Verification,
		d.Render.DPI, d.Render.CompileTimeout, d.Render.ConvertTimeout, d.Render.LatexCommand, d.Render.RasterCommand,
		d.Compose.MaxUniqueAttempts, d.Compose.StrictUnique, d.Compose.LineColumns, d.Compose.MinLocalDigits,
		d.Signature.Default,
		d.Logging.Enabled, strings.Join(appconfig.ValidLogLevels(), ", "), d.Logging.Level,
		d.Logging.MaxSizeMB, d.Logging.MaxBackups, d.Logging.Compress,
		d.Metrics.Textfile,
	)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := appconfig.ConfigDir()
	configFile := appconfig.ConfigFile()

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'dialogorithm config set' to modify values", configFile)
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(configFile, []byte(defaultConfigContent()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	fmt.Fprintln(cmd.OutOrStdout(), "Edit this file to customize Dialogorithm's behavior.")
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := appconfig.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", configFile)
	fmt.Fprintln(out, "  2. $HOME/.config/dialogorithm/config.yaml")
	fmt.Fprintln(out, "  3. ./config.yaml (current directory)")
	fmt.Fprintf(out, "\nLogs: %s\n", appconfig.LogDir())
	fmt.Fprintln(out, "Environment variables: DIALOGORITHM_* (e.g., DIALOGORITHM_RENDER_DPI)")
	return nil
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	configFile := appconfig.ConfigFile()

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		fmt.Fprintln(cmd.OutOrStdout(), "Config file doesn't exist, creating with defaults...")
		if err := runConfigInit(cmd, args); err != nil {
			return err
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"vim", "nano", "vi"} {
			if _, err := execLookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found. Set $EDITOR environment variable")
	}

	editorCmd := execCommand(editor, configFile)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr
	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config file saved: %s\n", configFile)
	return nil
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for _, item := range items() {
			if v, ok := tuiconfig.DefaultValue(item.Key); ok {
				viper.Set(item.Key, v)
			}
		}
		fmt.Fprintln(out, "Reset all configuration to defaults.")
	} else {
		key := args[0]
		value, ok := tuiconfig.DefaultValue(key)
		if !ok {
			return fmt.Errorf("unknown configuration key: %s\nRun 'dialogorithm config set --help' to see valid keys", key)
		}
		viper.Set(key, value)
		fmt.Fprintf(out, "Reset %s to default: %v\n", key, value)
	}

	configFile, err := writeConfig()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Config saved to %s\n", configFile)
	return nil
}

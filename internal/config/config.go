package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete Dialogorithm configuration
type Config struct {
	Output    OutputConfig    `mapstructure:"output"`
	Render    RenderConfig    `mapstructure:"render"`
	Compose   ComposeConfig   `mapstructure:"compose"`
	Signature SignatureConfig `mapstructure:"signature"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// OutputConfig controls where generated artifacts are written
type OutputConfig struct {
	// Dir is the destination directory for the image and verification file.
	// A leading ~ expands to the user's home directory (default: "~/Downloads")
	Dir string `mapstructure:"dir"`
	// ImageName is the file name of the rendered PNG; an existing file is overwritten
	ImageName string `mapstructure:"image_name"`
	// Verification writes a timestamped verification text file next to the image
	Verification bool `mapstructure:"verification"`
}

// RenderConfig controls the external typesetting toolchain
type RenderConfig struct {
	// DPI is the rasterization resolution (default: 600)
	DPI int `mapstructure:"dpi"`
	// CompileTimeout bounds the LaTeX compile step (default: 30s)
	CompileTimeout time.Duration `mapstructure:"compile_timeout"`
	// ConvertTimeout bounds the PDF to PNG conversion step (default: 20s)
	ConvertTimeout time.Duration `mapstructure:"convert_timeout"`
	// LatexCommand is the LaTeX compiler executable
	LatexCommand string `mapstructure:"latex_command"`
	// RasterCommand is the PDF rasterizer executable
	RasterCommand string `mapstructure:"raster_command"`
}

// ComposeConfig controls expression selection and layout
type ComposeConfig struct {
	// MaxUniqueAttempts is how many draws are made before a duplicate expression is tolerated
	MaxUniqueAttempts int `mapstructure:"max_unique_attempts"`
	// StrictUnique turns a tolerated duplicate into an error
	StrictUnique bool `mapstructure:"strict_unique"`
	// LineColumns is the number of layout columns per output line
	LineColumns int `mapstructure:"line_columns"`
	// MinLocalDigits is the fewest local digits accepted from the user
	MinLocalDigits int `mapstructure:"min_local_digits"`
}

// SignatureConfig controls the heading shown above the expressions
type SignatureConfig struct {
	// Default is the signature choice used when none is given on the command line.
	// "Random" draws one of the built-in phrases per run.
	Default string `mapstructure:"default"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether log lines are written to the log file
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum log level (debug, info, warn, error)
	Level string `mapstructure:"level"`
	// MaxSizeMB is the size at which the log file is rotated
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of rotated log files to keep
	MaxBackups int `mapstructure:"max_backups"`
	// Compress gzips rotated log files
	Compress bool `mapstructure:"compress"`
}

// MetricsConfig controls the Prometheus textfile export
type MetricsConfig struct {
	// Textfile is the path metrics are written to after each run (empty disables)
	Textfile string `mapstructure:"textfile"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:          "~/Downloads",
			ImageName:    "Dialogorithm_Contact.png",
			Verification: true,
		},
		Render: RenderConfig{
			DPI:            600,
			CompileTimeout: 30 * time.Second,
			ConvertTimeout: 20 * time.Second,
			LatexCommand:   "pdflatex",
			RasterCommand:  "pdftoppm",
		},
		Compose: ComposeConfig{
			MaxUniqueAttempts: 15,
			StrictUnique:      false,
			LineColumns:       3,
			MinLocalDigits:    4,
		},
		Signature: SignatureConfig{
			Default: "Random",
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 2,
			Compress:   true,
		},
		Metrics: MetricsConfig{
			Textfile: "",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Output defaults
	viper.SetDefault("output.dir", defaults.Output.Dir)
	viper.SetDefault("output.image_name", defaults.Output.ImageName)
	viper.SetDefault("output.verification", defaults.Output.Verification)

	// Render defaults
	viper.SetDefault("render.dpi", defaults.Render.DPI)
	viper.SetDefault("render.compile_timeout", defaults.Render.CompileTimeout)
	viper.SetDefault("render.convert_timeout", defaults.Render.ConvertTimeout)
	viper.SetDefault("render.latex_command", defaults.Render.LatexCommand)
	viper.SetDefault("render.raster_command", defaults.Render.RasterCommand)

	// Compose defaults
	viper.SetDefault("compose.max_unique_attempts", defaults.Compose.MaxUniqueAttempts)
	viper.SetDefault("compose.strict_unique", defaults.Compose.StrictUnique)
	viper.SetDefault("compose.line_columns", defaults.Compose.LineColumns)
	viper.SetDefault("compose.min_local_digits", defaults.Compose.MinLocalDigits)

	// Signature defaults
	viper.SetDefault("signature.default", defaults.Signature.Default)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)

	// Metrics defaults
	viper.SetDefault("metrics.textfile", defaults.Metrics.Textfile)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults when the
// loaded configuration is invalid.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ResolveDir returns the output directory with ~ expanded. Relative paths are
// returned unchanged and resolve against the working directory.
func (o *OutputConfig) ResolveDir() string {
	return expandHome(o.Dir)
}

// ImagePath returns the full path of the rendered image.
func (o *OutputConfig) ImagePath() string {
	return filepath.Join(o.ResolveDir(), o.ImageName)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dialogorithm")
	}
	// Fall back to ~/.config/dialogorithm
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dialogorithm"
	}
	return filepath.Join(home, ".config", "dialogorithm")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// LogDir returns the directory the log file is written to
func LogDir() string {
	return filepath.Join(ConfigDir(), "logs")
}

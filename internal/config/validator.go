package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "render.dpi")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Bounds for numeric settings.
const (
	minDPI            = 72
	maxDPI            = 2400
	maxUniqueAttempts = 1000
	maxLineColumns    = 12
	maxTimeout        = 10 * time.Minute
	maxLogSizeMB      = 1000
)

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateRender()...)
	errors = append(errors, c.validateCompose()...)
	errors = append(errors, c.validateSignature()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateOutput validates the OutputConfig
func (c *Config) validateOutput() []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(c.Output.Dir) == "" {
		errors = append(errors, ValidationError{
			Field:   "output.dir",
			Value:   c.Output.Dir,
			Message: "must not be empty",
		})
	}

	name := c.Output.ImageName
	switch {
	case name == "":
		errors = append(errors, ValidationError{
			Field:   "output.image_name",
			Value:   name,
			Message: "must not be empty",
		})
	case filepath.Base(name) != name:
		errors = append(errors, ValidationError{
			Field:   "output.image_name",
			Value:   name,
			Message: "must be a file name without directory components",
		})
	case !strings.EqualFold(filepath.Ext(name), ".png"):
		errors = append(errors, ValidationError{
			Field:   "output.image_name",
			Value:   name,
			Message: "must end in .png",
		})
	}

	return errors
}

// validateRender validates the RenderConfig
func (c *Config) validateRender() []ValidationError {
	var errors []ValidationError

	if c.Render.DPI < minDPI || c.Render.DPI > maxDPI {
		errors = append(errors, ValidationError{
			Field:   "render.dpi",
			Value:   c.Render.DPI,
			Message: fmt.Sprintf("must be between %d and %d", minDPI, maxDPI),
		})
	}

	timeouts := []struct {
		field string
		value time.Duration
	}{
		{"render.compile_timeout", c.Render.CompileTimeout},
		{"render.convert_timeout", c.Render.ConvertTimeout},
	}
	for _, tt := range timeouts {
		if tt.value <= 0 {
			errors = append(errors, ValidationError{
				Field:   tt.field,
				Value:   tt.value,
				Message: "must be positive",
			})
		} else if tt.value > maxTimeout {
			errors = append(errors, ValidationError{
				Field:   tt.field,
				Value:   tt.value,
				Message: fmt.Sprintf("exceeds maximum of %s", maxTimeout),
			})
		}
	}

	if strings.TrimSpace(c.Render.LatexCommand) == "" {
		errors = append(errors, ValidationError{
			Field:   "render.latex_command",
			Value:   c.Render.LatexCommand,
			Message: "must not be empty",
		})
	}
	if strings.TrimSpace(c.Render.RasterCommand) == "" {
		errors = append(errors, ValidationError{
			Field:   "render.raster_command",
			Value:   c.Render.RasterCommand,
			Message: "must not be empty",
		})
	}

	return errors
}

// validateCompose validates the ComposeConfig
func (c *Config) validateCompose() []ValidationError {
	var errors []ValidationError

	if c.Compose.MaxUniqueAttempts < 1 || c.Compose.MaxUniqueAttempts > maxUniqueAttempts {
		errors = append(errors, ValidationError{
			Field:   "compose.max_unique_attempts",
			Value:   c.Compose.MaxUniqueAttempts,
			Message: fmt.Sprintf("must be between 1 and %d", maxUniqueAttempts),
		})
	}

	if c.Compose.LineColumns < 1 || c.Compose.LineColumns > maxLineColumns {
		errors = append(errors, ValidationError{
			Field:   "compose.line_columns",
			Value:   c.Compose.LineColumns,
			Message: fmt.Sprintf("must be between 1 and %d", maxLineColumns),
		})
	}

	if c.Compose.MinLocalDigits < 1 {
		errors = append(errors, ValidationError{
			Field:   "compose.min_local_digits",
			Value:   c.Compose.MinLocalDigits,
			Message: "must be at least 1",
		})
	}

	return errors
}

// validateSignature validates the SignatureConfig
func (c *Config) validateSignature() []ValidationError {
	if strings.TrimSpace(c.Signature.Default) == "" {
		return []ValidationError{{
			Field:   "signature.default",
			Value:   c.Signature.Default,
			Message: "must not be blank",
		}}
	}
	return nil
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB <= 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be positive",
		})
	} else if c.Logging.MaxSizeMB > maxLogSizeMB {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("exceeds maximum of %dMB", maxLogSizeMB),
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{
		Field:   "render.dpi",
		Value:   10,
		Message: "must be between 72 and 2400",
	}

	expected := "render.dpi: must be between 72 and 2400 (got: 10)"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("empty errors", func(t *testing.T) {
		var errs ValidationErrors
		if errs.Error() != "" {
			t.Errorf("Error() for empty = %q, want empty string", errs.Error())
		}
	})

	t.Run("single error", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "test.field", Value: 123, Message: "is invalid"},
		}
		expected := "test.field: is invalid (got: 123)"
		if errs.Error() != expected {
			t.Errorf("Error() = %q, want %q", errs.Error(), expected)
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "field1", Value: "bad", Message: "is invalid"},
			{Field: "field2", Value: -1, Message: "must be positive"},
		}
		result := errs.Error()
		if !strings.Contains(result, "2 validation errors") {
			t.Errorf("Error() should mention 2 errors: %s", result)
		}
		if !strings.Contains(result, "field1") || !strings.Contains(result, "field2") {
			t.Errorf("Error() should mention both fields: %s", result)
		}
	})
}

func TestConfig_Validate_DefaultConfig(t *testing.T) {
	if errs := Default().Validate(); len(errs) != 0 {
		t.Errorf("Default() config has validation errors: %v", ValidationErrors(errs))
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{"empty output dir", func(c *Config) { c.Output.Dir = "  " }, "output.dir"},
		{"empty image name", func(c *Config) { c.Output.ImageName = "" }, "output.image_name"},
		{"image name with directory", func(c *Config) { c.Output.ImageName = "sub/x.png" }, "output.image_name"},
		{"image name not png", func(c *Config) { c.Output.ImageName = "x.jpg" }, "output.image_name"},
		{"dpi too low", func(c *Config) { c.Render.DPI = 10 }, "render.dpi"},
		{"dpi too high", func(c *Config) { c.Render.DPI = 5000 }, "render.dpi"},
		{"zero compile timeout", func(c *Config) { c.Render.CompileTimeout = 0 }, "render.compile_timeout"},
		{"huge convert timeout", func(c *Config) { c.Render.ConvertTimeout = time.Hour }, "render.convert_timeout"},
		{"blank latex command", func(c *Config) { c.Render.LatexCommand = "" }, "render.latex_command"},
		{"blank raster command", func(c *Config) { c.Render.RasterCommand = " " }, "render.raster_command"},
		{"zero attempts", func(c *Config) { c.Compose.MaxUniqueAttempts = 0 }, "compose.max_unique_attempts"},
		{"zero columns", func(c *Config) { c.Compose.LineColumns = 0 }, "compose.line_columns"},
		{"zero min digits", func(c *Config) { c.Compose.MinLocalDigits = 0 }, "compose.min_local_digits"},
		{"blank signature", func(c *Config) { c.Signature.Default = "" }, "signature.default"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"zero log size", func(c *Config) { c.Logging.MaxSizeMB = 0 }, "logging.max_size_mb"},
		{"huge log size", func(c *Config) { c.Logging.MaxSizeMB = 5000 }, "logging.max_size_mb"},
		{"negative backups", func(c *Config) { c.Logging.MaxBackups = -1 }, "logging.max_backups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			errs := cfg.Validate()
			if len(errs) != 1 {
				t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), ValidationErrors(errs))
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.wantField)
			}
		})
	}
}

func TestConfig_Validate_AccumulatesErrors(t *testing.T) {
	cfg := Default()
	cfg.Render.DPI = 0
	cfg.Compose.LineColumns = 0
	cfg.Logging.Level = "loud"

	if errs := cfg.Validate(); len(errs) != 3 {
		t.Errorf("Validate() returned %d errors, want 3", len(errs))
	}
}

func TestConfig_Validate_AcceptsEdgeValues(t *testing.T) {
	cfg := Default()
	cfg.Render.DPI = 72
	cfg.Compose.LineColumns = 1
	cfg.Compose.MaxUniqueAttempts = 1
	cfg.Logging.Level = ""
	cfg.Logging.MaxBackups = 0
	cfg.Output.ImageName = "card.PNG"
	cfg.Signature.Default = "Call me maybe:"

	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", ValidationErrors(errs))
	}
}

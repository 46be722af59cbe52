package generation

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iron-Ham/dialogorithm/internal/config"
	"github.com/Iron-Ham/dialogorithm/internal/errors"
	"github.com/Iron-Ham/dialogorithm/internal/logging"
	"github.com/Iron-Ham/dialogorithm/internal/render"
)

type fakeRasterizer struct {
	calls int
	err   error
}

func (f *fakeRasterizer) Rasterize(context.Context, string, int) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []byte("PNG"), nil
}

// setup isolates viper and the rasterizer, and returns the output directory.
func setup(t *testing.T) (*fakeRasterizer, string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	viper.Reset()
	config.SetDefaults()
	viper.Set("logging.enabled", false)
	t.Cleanup(viper.Reset)

	fake := &fakeRasterizer{}
	orig := newRasterizer
	newRasterizer = func(config.RenderConfig, *logging.Logger) render.Rasterizer { return fake }
	t.Cleanup(func() { newRasterizer = orig })

	generateCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	return fake, t.TempDir()
}

// executeCommand runs a command tree with args and returns captured output
func executeCommand(args ...string) (string, error) {
	root := &cobra.Command{Use: "dialogorithm", SilenceUsage: true, SilenceErrors: true}
	Register(root)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestGenerate(t *testing.T) {
	fake, out := setup(t)

	output, err := executeCommand("generate", "--code", "1", "--number", "5551234567",
		"--signature", "Phone:", "--output", out, "--seed", "7")
	require.NoError(t, err)

	assert.Equal(t, 1, fake.calls)
	image := filepath.Join(out, "Dialogorithm_Contact.png")
	assert.Contains(t, output, "Image:        "+image)
	assert.Contains(t, output, "Number:       +1 (555) 123-4567")
	assert.Contains(t, output, "Signature:    Phone:")
	assert.Contains(t, output, "Verification: ")

	data, err := os.ReadFile(image)
	require.NoError(t, err)
	assert.Equal(t, "PNG", string(data))
}

func TestGenerate_Raw(t *testing.T) {
	_, out := setup(t)

	output, err := executeCommand("generate", "--raw", "+44 20 7946 0958", "--custom", "Ring me", "-o", out)
	require.NoError(t, err)
	assert.Contains(t, output, "Signature:    Ring me")
}

func TestGenerate_Verbose(t *testing.T) {
	_, out := setup(t)

	output, err := executeCommand("generate", "--code", "33", "--number", "612345678", "-o", out, "-v")
	require.NoError(t, err)
	for _, stage := range []string{"validate", "compose", "verify", "render", "done"} {
		assert.Contains(t, output, stage)
	}
}

func TestGenerate_SameSeedSameVerification(t *testing.T) {
	_, out := setup(t)
	viper.Set("output.verification", false)

	first, err := executeCommand("generate", "--code", "1", "--number", "5551234567", "-o", out, "--seed", "99")
	require.NoError(t, err)
	setup(t)
	viper.Set("output.verification", false)
	second, err := executeCommand("generate", "--code", "1", "--number", "5551234567", "-o", out, "--seed", "99")
	require.NoError(t, err)

	sig := func(s string) string {
		for _, line := range strings.Split(s, "\n") {
			if strings.HasPrefix(line, "Signature:") {
				return line
			}
		}
		return ""
	}
	assert.Equal(t, sig(first), sig(second))
}

func TestGenerate_ValidationError(t *testing.T) {
	fake, out := setup(t)

	_, err := executeCommand("generate", "--code", "1", "--number", "123", "-o", out)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrTooShort)
	assert.Zero(t, fake.calls)
}

func TestGenerate_MissingInput(t *testing.T) {
	setup(t)

	_, err := executeCommand("generate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--raw")
}

func TestGenerate_RawConflictsWithCode(t *testing.T) {
	setup(t)

	_, err := executeCommand("generate", "--raw", "+15551234567", "--code", "1")
	require.Error(t, err)
}

func TestGenerate_InvalidConfig(t *testing.T) {
	setup(t)
	viper.Set("render.dpi", 1)

	_, err := executeCommand("generate", "--code", "1", "--number", "5551234567")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestGenerate_RenderFailure(t *testing.T) {
	fake, out := setup(t)
	fake.err = errors.NewRenderError("pdflatex", "compile failed", nil)

	_, err := executeCommand("generate", "--code", "1", "--number", "5551234567", "-o", out)
	assert.ErrorIs(t, err, errors.ErrRenderFailed)
}

func TestGenerate_TimeoutSuggestsLongerTimeout(t *testing.T) {
	fake, out := setup(t)
	fake.err = errors.NewRenderError("pdflatex", "compile timeout",
		errors.NewTimeoutError("pdflatex compile", 30*time.Second))

	_, err := executeCommand("generate", "--code", "1", "--number", "5551234567", "-o", out)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrTimeout)
	assert.Contains(t, err.Error(), "render.compile_timeout")

	fake.err = errors.NewRenderError("pdflatex", "compile failed", nil)
	_, err = executeCommand("generate", "--code", "1", "--number", "5551234567", "-o", out)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "render.compile_timeout")
}

func TestForm_RequiresTerminal(t *testing.T) {
	setup(t)
	orig := isTerminal
	isTerminal = func() bool { return false }
	t.Cleanup(func() { isTerminal = orig })

	_, err := executeCommand("form")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestOpenLogger(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg := config.Default()

	logger, err := openLogger(cfg)
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(filepath.Join(config.LogDir(), logging.LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)

	cfg.Logging.Enabled = false
	logger, err = openLogger(cfg)
	require.NoError(t, err)
	assert.NoError(t, logger.Close())
}

package geography

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iron-Ham/dialogorithm/internal/errors"
	"github.com/Iron-Ham/dialogorithm/internal/phoneformat"
)

func executeCommand(args ...string) (string, error) {
	countriesContinent, countriesSubregion = "", ""
	root := &cobra.Command{Use: "dialogorithm", SilenceUsage: true, SilenceErrors: true}
	Register(root)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestValidate(t *testing.T) {
	out, err := executeCommand("validate", "1", "5551234567")
	require.NoError(t, err)
	assert.Equal(t, "valid: 10/10 digits for +1\n", out)

	_, err = executeCommand("validate", "1", "55512345678")
	assert.ErrorContains(t, err, "at most 10")

	_, err = executeCommand("validate", "1", "555-123")
	assert.ErrorContains(t, err, "invalid")

	_, err = executeCommand("validate", "one", "555")
	assert.ErrorContains(t, err, "invalid calling code")
}

func TestFormat(t *testing.T) {
	out, err := executeCommand("format", "1", "555 123 4567")
	require.NoError(t, err)
	assert.Equal(t, "+1 (555) 123-4567\n", out)

	out, err = executeCommand("format", "33", "612345678")
	require.NoError(t, err)
	assert.Equal(t, phoneformat.InternationalDisplay("612345678", 33)+"\n", out)
}

func TestContinents(t *testing.T) {
	out, err := executeCommand("continents")
	require.NoError(t, err)
	for _, c := range phoneformat.Continents() {
		assert.Contains(t, out, c)
	}
	assert.Contains(t, out, "  Western Europe\n")
}

func TestCountries(t *testing.T) {
	out, err := executeCommand("countries", "--continent", "Europe", "--subregion", "Western Europe")
	require.NoError(t, err)
	assert.Contains(t, out, "France")
	assert.Contains(t, out, "+33")
	assert.NotContains(t, out, "Japan")
	assert.Contains(t, out, "countries\n")

	_, err = executeCommand("countries", "--continent", "Atlantis")
	assert.EqualError(t, err, "continent 'Atlantis' not found")
	var notFound *errors.NotFoundError
	assert.True(t, errors.As(err, &notFound))

	_, err = executeCommand("countries", "--continent", "Europe", "--subregion", "Nowhere")
	assert.EqualError(t, err, "subregion 'Nowhere' not found")
}

func TestCountries_All(t *testing.T) {
	out, err := executeCommand("countries")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "246 countries\n"), "got tail %q", out[len(out)-20:])
}

func TestSearch(t *testing.T) {
	out, err := executeCommand("search", "united*")
	require.NoError(t, err)
	assert.Contains(t, out, "United States")
	assert.Contains(t, out, "United Kingdom")

	out, err = executeCommand("search", "zzzz")
	require.NoError(t, err)
	assert.Equal(t, "No countries match \"zzzz\"\n", out)
}

func TestStats(t *testing.T) {
	out, err := executeCommand("stats")
	require.NoError(t, err)
	s := phoneformat.DatasetStats()
	assert.Contains(t, out, "Countries:")
	assert.Contains(t, out, "Calling codes:")
	for _, c := range s.Continents {
		assert.Contains(t, out, c.Name)
	}
	assert.Contains(t, out, "DIGIT LIMITS")
}

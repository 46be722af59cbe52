package bank

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iron-Ham/dialogorithm/internal/expression"
)

func executeCommand(args ...string) (string, error) {
	bankSeed, sampleCount = 0, 5
	root := &cobra.Command{Use: "dialogorithm", SilenceUsage: true, SilenceErrors: true}
	Register(root)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestInventory(t *testing.T) {
	out, err := executeCommand("bank", "inventory")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// header, 0-9, plus, total
	assert.Len(t, lines, 13)
	inv := expression.Default().Inventory()
	assert.Regexp(t, `^total\s+`+strconv.Itoa(inv.Templates)+`\s+`+strconv.Itoa(inv.Variants)+`$`, lines[len(lines)-1])
}

func TestExport_Stdout(t *testing.T) {
	out, err := executeCommand("bank", "export", "--seed", "3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "FULL EQUATION BANK\n"))
	assert.Contains(t, out, "=== DIGIT 7 (")
	assert.Contains(t, out, "=== PLUS SIGN (1 templates) ===")
}

func TestExport_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.txt")
	out, err := executeCommand("bank", "export", path, "--seed", "3")
	require.NoError(t, err)
	assert.Equal(t, "Exported expression bank to "+path+"\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Total: ")
}

func TestExport_UnwritablePath(t *testing.T) {
	_, err := executeCommand("bank", "export", filepath.Join(t.TempDir(), "missing", "bank.txt"))
	assert.ErrorContains(t, err, "failed to create export file")
}

func TestSample(t *testing.T) {
	out, err := executeCommand("bank", "sample", "4", "-n", "3", "--seed", "11")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], " 1: "))

	seen := map[string]bool{}
	for _, line := range lines {
		seen[line[4:]] = true
	}
	assert.Len(t, seen, 3, "samples are distinct")
}

func TestSample_SameSeedSameOutput(t *testing.T) {
	first, err := executeCommand("bank", "sample", "0", "--seed", "5")
	require.NoError(t, err)
	second, err := executeCommand("bank", "sample", "0", "--seed", "5")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSample_Plus(t *testing.T) {
	out, err := executeCommand("bank", "sample", "+", "-n", "2", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, " 1: \\mathbf{+}")
	assert.Contains(t, out, "(repeat)")
}

func TestSample_InvalidSymbol(t *testing.T) {
	for _, arg := range []string{"x", "12", "٣"} {
		_, err := executeCommand("bank", "sample", arg)
		assert.ErrorContains(t, err, "invalid symbol", arg)
	}

	_, err := executeCommand("bank", "sample", "1", "-n", "0")
	assert.ErrorContains(t, err, "--count")
}

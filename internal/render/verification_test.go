package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Iron-Ham/dialogorithm/internal/compose"
	"github.com/Iron-Ham/dialogorithm/internal/expression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func TestVerificationFileName(t *testing.T) {
	assert.Equal(t, "verification_20260102_030405.txt", VerificationFileName(fixedNow))
}

func TestFormatVerification(t *testing.T) {
	doc := composeDoc(t, "+15551234567", "Please call me at:")
	text := FormatVerification(doc, fixedNow)

	assert.True(t, strings.HasPrefix(text, strings.Repeat("=", 80)+"\nDIALOGORITHM EQUATION VERIFICATION FILE\n"))
	assert.Contains(t, text, "Generated: 2026-01-02 03:04:05\n")
	assert.Contains(t, text, "Original Input: +15551234567\n")
	assert.Contains(t, text, "Expected Sequence: + 1 5 5 5 1 2 3 4 5 6 7\n")
	assert.Contains(t, text, "Signature: Please call me at:\n")

	assert.Equal(t, 12, strings.Count(text, "Verification Result: [ ] Correct  [ ] Incorrect"))
	assert.Contains(t, text, "Expression #1:\nLaTeX: \\mathbf{+}\nExpected Value: +\n")
	assert.Contains(t, text, "Question: Does this expression evaluate to 7?")
	assert.Contains(t, text, "Type: plus_symbol\n")
	assert.Equal(t, 4, strings.Count(text, "Type: digit_5\n"))
	assert.Contains(t, text, "Total expressions verified: _____ / 12\n")
	assert.NotContains(t, text, "Placeholders:")
	assert.True(t, strings.HasSuffix(text, "END OF VERIFICATION FILE\n"))
}

func TestFormatVerification_Degradations(t *testing.T) {
	bank := expression.New(map[rune][]expression.Template{'1': {{Text: "one"}}})
	doc, err := compose.New(bank, compose.DefaultOptions(), nil).Compose(expression.NewRand(1), "119", "")
	require.NoError(t, err)

	text := FormatVerification(doc, fixedNow)
	assert.Contains(t, text, "Type: placeholder\n")
	assert.Contains(t, text, "Repeated expressions: 1\n")
	assert.Contains(t, text, "Placeholders: 1\n")
}

func TestWriteVerification(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	doc := composeDoc(t, "5551234567", "")

	path, err := WriteVerification(dir, doc, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "verification_20260102_030405.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, FormatVerification(doc, fixedNow), string(data))
}

func TestWriteVerification_UnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := WriteVerification(filepath.Join(file, "sub"), composeDoc(t, "1234", ""), fixedNow)
	assert.Error(t, err)
}

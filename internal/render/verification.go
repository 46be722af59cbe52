package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Iron-Ham/dialogorithm/internal/compose"
)

// VerificationFileName returns the timestamped verification file name for now.
func VerificationFileName(now time.Time) string {
	return "verification_" + now.Format("20060102_150405") + ".txt"
}

// ExpressionType classifies a token for the verification file.
func ExpressionType(t compose.Token) string {
	switch {
	case t.Placeholder:
		return "placeholder"
	case t.Kind == compose.KindPlus:
		return "plus_symbol"
	default:
		return "digit_" + string(t.Digit)
	}
}

// WriteVerification writes the checklist a reviewer uses to confirm every
// expression in doc by hand, and returns its path.
func WriteVerification(dir string, doc *compose.Document, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, VerificationFileName(now))
	if err := os.WriteFile(path, []byte(FormatVerification(doc, now)), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// FormatVerification renders the verification checklist for doc.
func FormatVerification(doc *compose.Document, now time.Time) string {
	exprs := doc.Expressions()
	rule := strings.Repeat("=", 80)
	thin := strings.Repeat("-", 80)

	values := make([]string, len(exprs))
	for i, t := range exprs {
		values[i] = t.Value()
	}

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line("%s", rule)
	line("DIALOGORITHM EQUATION VERIFICATION FILE")
	line("%s", rule)
	line("")
	line("Generated: %s", now.Format("2006-01-02 15:04:05"))
	line("Original Input: %s", doc.Input)
	line("Expected Sequence: %s", strings.Join(values, " "))
	line("Signature: %s", doc.Signature)
	line("")
	line("Evaluate each expression below and mark whether it equals the expected")
	line("value. Every expression must evaluate to exactly one digit, or to the plus")
	line("sign, for the rendered number to be correct.")
	line("")

	for i, t := range exprs {
		v := t.Value()
		line("%s", thin)
		line("Expression #%d:", i+1)
		line("LaTeX: %s", t.Expression)
		line("Expected Value: %s", v)
		line("Question: Does this expression evaluate to %s?", v)
		line("Type: %s", ExpressionType(t))
		line("Verification Result: [ ] Correct  [ ] Incorrect")
		line("Notes: ")
		line("")
	}

	line("%s", rule)
	line("SUMMARY CHECK")
	line("%s", rule)
	line("Total expressions verified: _____ / %d", len(exprs))
	if doc.Duplicates > 0 || doc.Placeholders > 0 {
		line("Repeated expressions: %d", doc.Duplicates)
		line("Placeholders: %d", doc.Placeholders)
	}
	line("")
	line("END OF VERIFICATION FILE")
	return b.String()
}

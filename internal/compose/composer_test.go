package compose

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Iron-Ham/dialogorithm/internal/errors"
	"github.com/Iron-Ham/dialogorithm/internal/expression"
	"github.com/Iron-Ham/dialogorithm/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// layout renders the token stream with digits as their values, for
// comparing shapes without depending on the drawn expressions.
func layout(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		if t.IsSeparator() {
			out[i] = t.Separator.String()
		} else {
			out[i] = t.Value()
		}
	}
	return out
}

func TestSegment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Segments
	}{
		{"nanp with plus", "+15551234567", Segments{HasPlus: true, CountryCode: "1", Subscriber: "5551234567"}},
		{"formatted nanp", "+1 (555) 123-4567", Segments{HasPlus: true, CountryCode: "1", Subscriber: "5551234567"}},
		{"two digit code", "+447911123456", Segments{HasPlus: true, CountryCode: "44", Subscriber: "7911123456"}},
		{"three digit code", "+8613812345678", Segments{HasPlus: true, CountryCode: "861", Subscriber: "3812345678"}},
		{"no plus", "5551234567", Segments{Subscriber: "5551234567"}},
		{"no plus long", "15551234567", Segments{Subscriber: "15551234567"}},
		{"plus short", "+1234567", Segments{HasPlus: true, Subscriber: "1234567"}},
		{"plus ten digits", "+5551234567", Segments{HasPlus: true, Subscriber: "5551234567"}},
		{"leading space", "  +15551234567", Segments{HasPlus: true, CountryCode: "1", Subscriber: "5551234567"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Segment(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSegment_NoDigits(t *testing.T) {
	for _, input := range []string{"", "   ", "+", "abc-()"} {
		_, err := Segment(input)
		assert.ErrorIs(t, err, errors.ErrEmptyInput, "input %q", input)
	}
}

func TestCompose_InternationalNANP(t *testing.T) {
	c := New(nil, DefaultOptions(), nil)
	doc, err := c.Compose(expression.NewRand(1), "+15551234567", "Call me")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"+", "1", "major-gap",
		"group-open", "5", "5", "5", "group-close", "minor-gap",
		"1", "2", "3", "dash", "4", "5", "6", "7",
	}, layout(doc.Tokens))
	assert.Equal(t, "15551234567", doc.Digits())
	assert.Equal(t, `\mathbf{+}`, doc.Tokens[0].Expression)

	require.Len(t, doc.Lines, 4)
	assert.True(t, strings.HasPrefix(doc.Lines[0], `\mathbf{+} `))
	assert.True(t, strings.HasSuffix(doc.Lines[0], `\quad`))
	assert.True(t, strings.HasPrefix(doc.Lines[1], `\boldsymbol{(} `))
	assert.Contains(t, doc.Lines[1], `\boldsymbol{)} \;`)
	assert.Contains(t, doc.Lines[2], `\text{---}`)

	assert.Zero(t, doc.Duplicates)
	assert.Zero(t, doc.Placeholders)
}

func TestCompose_DomesticTenDigits(t *testing.T) {
	c := New(nil, DefaultOptions(), nil)
	doc, err := c.Compose(expression.NewRand(2), "5551234567", "")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"group-open", "5", "5", "5", "group-close", "minor-gap",
		"1", "2", "3", "dash", "4", "5", "6", "7",
	}, layout(doc.Tokens))
	assert.Len(t, doc.Lines, 3)
	assert.False(t, doc.Segments.HasPlus)
	assert.Empty(t, doc.Segments.CountryCode)
}

func TestCompose_UngroupedDigits(t *testing.T) {
	c := New(nil, DefaultOptions(), nil)
	doc, err := c.Compose(expression.NewRand(3), "+4420", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"+", "4", "4", "2", "0"}, layout(doc.Tokens))
	assert.Len(t, doc.Lines, 2)
}

func TestCompose_EmptyInput(t *testing.T) {
	c := New(nil, DefaultOptions(), nil)
	_, err := c.Compose(expression.NewRand(1), "", "sig")

	var empty *errors.EmptyInputError
	assert.ErrorAs(t, err, &empty)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestCompose_DigitFidelity(t *testing.T) {
	c := New(nil, DefaultOptions(), nil)
	rapid.Check(t, func(t *rapid.T) {
		digits := rapid.StringMatching(`[0-9]{1,20}`).Draw(t, "digits")
		plus := rapid.Bool().Draw(t, "plus")
		seed := rapid.Uint64().Draw(t, "seed")

		number := digits
		if plus {
			number = "+" + digits
		}
		doc, err := c.Compose(expression.NewRand(seed), number, "")
		if err != nil {
			t.Fatalf("compose %q: %v", number, err)
		}
		if got := doc.Digits(); got != digits {
			t.Fatalf("digits %q, want %q", got, digits)
		}
		if doc.Segments.Digits() != digits {
			t.Fatalf("segments %q, want %q", doc.Segments.Digits(), digits)
		}
		if n := len(doc.Expressions()); n != len(digits)+boolToInt(plus) {
			t.Fatalf("%d expressions for %q", n, number)
		}
	})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestCompose_UniqueExpressionsWhenBankAllows(t *testing.T) {
	c := New(nil, DefaultOptions(), nil)
	doc, err := c.Compose(expression.NewRand(7), "+15551234567", "")
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, tok := range doc.Tokens {
		if tok.Kind != KindDigit {
			continue
		}
		assert.False(t, seen[tok.Expression], "repeated %q", tok.Expression)
		seen[tok.Expression] = true
	}
}

func TestCompose_UniqueExpressions_Property(t *testing.T) {
	const maxPerDigit = 3
	for _, row := range expression.Default().Inventory().Rows {
		if row.Symbol == '+' {
			continue
		}
		require.Greater(t, row.Templates, 4*maxPerDigit, "symbol %q", row.Symbol)
	}

	c := New(nil, DefaultOptions(), nil)
	rapid.Check(t, func(t *rapid.T) {
		var digits []rune
		for d := '0'; d <= '9'; d++ {
			n := rapid.IntRange(0, maxPerDigit).Draw(t, "count_"+string(d))
			for range n {
				digits = append(digits, d)
			}
		}
		if len(digits) == 0 {
			digits = append(digits, '0')
		}
		number := string(rapid.Permutation(digits).Draw(t, "order"))
		seed := rapid.Uint64().Draw(t, "seed")

		doc, err := c.Compose(expression.NewRand(seed), number, "")
		if err != nil {
			t.Fatalf("compose %q: %v", number, err)
		}
		if doc.Duplicates != 0 {
			t.Fatalf("%d duplicates for %q", doc.Duplicates, number)
		}
		seen := map[string]bool{}
		for _, tok := range doc.Expressions() {
			if seen[tok.Expression] {
				t.Fatalf("expression %q repeated for %q", tok.Expression, number)
			}
			seen[tok.Expression] = true
		}
	})
}

func TestCompose_ToleratesDuplicates(t *testing.T) {
	var buf bytes.Buffer
	bank := expression.New(map[rune][]expression.Template{'5': {{Text: "five"}}})
	c := New(bank, DefaultOptions(), logging.NewWriterLogger(&buf, logging.LevelWarn))

	doc, err := c.Compose(expression.NewRand(1), "555", "")
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Duplicates)
	assert.Contains(t, buf.String(), "repeated expression")
}

func TestCompose_StrictFailsOnDuplicate(t *testing.T) {
	bank := expression.New(map[rune][]expression.Template{'5': {{Text: "five"}}})
	opts := DefaultOptions()
	opts.Strict = true
	c := New(bank, opts, nil)

	_, err := c.Compose(expression.NewRand(1), "55", "")
	assert.ErrorIs(t, err, errors.ErrUniquenessExhausted)
}

func TestCompose_Placeholder(t *testing.T) {
	bank := expression.New(map[rune][]expression.Template{'1': {{Text: "one"}}})
	c := New(bank, DefaultOptions(), nil)

	doc, err := c.Compose(expression.NewRand(1), "19", "")
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Placeholders)
	assert.Equal(t, expression.Placeholder('9'), doc.Tokens[1].Expression)
	assert.True(t, doc.Tokens[1].Placeholder)
	assert.Equal(t, "19", doc.Digits())
}

func TestCompose_SignatureEscaped(t *testing.T) {
	c := New(nil, DefaultOptions(), nil)
	doc, err := c.Compose(expression.NewRand(1), "1234", "R&D 100%")
	require.NoError(t, err)
	assert.Equal(t, "R&D 100%", doc.Signature)
	assert.Equal(t, `R\&D 100\%`, doc.EscapedSignature)
}

func TestCompose_Deterministic(t *testing.T) {
	c := New(nil, DefaultOptions(), nil)
	a, err := c.Compose(expression.NewRand(11), "+447911123456", "")
	require.NoError(t, err)
	b, err := c.Compose(expression.NewRand(11), "+447911123456", "")
	require.NoError(t, err)
	assert.Equal(t, a.Lines, b.Lines)
}

func TestDocument_Body(t *testing.T) {
	doc := &Document{Lines: []string{"a b", "c"}}
	assert.Equal(t, "& a b \\\\\n& c", doc.Body())
}

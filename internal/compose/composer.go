// Package compose turns a phone number into a stream of digit expressions and
// layout separators, and wraps the stream into lines for an align* block.
package compose

import (
	"github.com/Iron-Ham/dialogorithm/internal/errors"
	"github.com/Iron-Ham/dialogorithm/internal/expression"
	"github.com/Iron-Ham/dialogorithm/internal/logging"
)

// Options configures a Composer.
type Options struct {
	// MaxAttempts bounds the draws per symbol before a repeat is tolerated.
	MaxAttempts int
	// Strict fails the composition instead of tolerating a repeat.
	Strict bool
	// LineColumns is the number of columns per output line.
	LineColumns int
}

// DefaultOptions returns the lenient defaults.
func DefaultOptions() Options {
	return Options{
		MaxAttempts: expression.DefaultMaxAttempts,
		LineColumns: DefaultLineColumns,
	}
}

// Document is one composed generation.
type Document struct {
	Input            string
	Signature        string
	EscapedSignature string
	Segments         Segments
	Tokens           []Token
	Lines            []string
	Duplicates       int
	Placeholders     int
}

// Digits returns the digits carried by the document's tokens.
func (d *Document) Digits() string {
	return DigitsOf(d.Tokens)
}

// Body returns the align* rows.
func (d *Document) Body() string {
	return AlignBody(d.Lines)
}

// Expressions returns the non-separator tokens in order.
func (d *Document) Expressions() []Token {
	var out []Token
	for _, t := range d.Tokens {
		if !t.IsSeparator() {
			out = append(out, t)
		}
	}
	return out
}

// Composer builds documents from a bank. It holds no per-run state and can be
// reused; each Compose call gets its own UsedSet.
type Composer struct {
	bank   *expression.Bank
	opts   Options
	logger *logging.Logger
}

// New creates a Composer. A nil bank means the built-in bank and a nil logger
// discards output.
func New(bank *expression.Bank, opts Options, logger *logging.Logger) *Composer {
	if bank == nil {
		bank = expression.Default()
	}
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = expression.DefaultMaxAttempts
	}
	if opts.LineColumns < 1 {
		opts.LineColumns = DefaultLineColumns
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Composer{bank: bank, opts: opts, logger: logger}
}

// Compose segments number, picks an expression for every symbol and wraps
// the result. It fails with an EmptyInputError when number has no digits, and
// with ErrUniquenessExhausted in strict mode when a repeat cannot be avoided.
func (c *Composer) Compose(rng expression.Rand, number, signature string) (*Document, error) {
	seg, err := Segment(number)
	if err != nil {
		return nil, err
	}

	e := &emitter{
		composer: c,
		rng:      rng,
		used:     expression.NewUsedSet(),
	}

	if seg.HasPlus {
		e.symbol(expression.PlusSymbol)
	}
	if seg.CountryCode != "" {
		e.digits(seg.CountryCode)
		e.separator(MajorGap)
	}
	if seg.Grouped() {
		sub := seg.Subscriber
		e.separator(GroupOpen)
		e.digits(sub[:3])
		e.separator(GroupClose)
		e.separator(MinorGap)
		e.digits(sub[3:6])
		e.separator(Dash)
		e.digits(sub[6:])
	} else {
		e.digits(seg.Subscriber)
	}
	if e.err != nil {
		return nil, e.err
	}

	doc := &Document{
		Input:            number,
		Signature:        signature,
		EscapedSignature: EscapeLaTeX(signature),
		Segments:         seg,
		Tokens:           e.tokens,
		Lines:            Wrap(e.tokens, c.opts.LineColumns),
		Duplicates:       e.duplicates,
		Placeholders:     e.placeholders,
	}
	c.logger.Debug("composed document",
		"tokens", len(doc.Tokens),
		"lines", len(doc.Lines),
		"country_code", seg.CountryCode,
	)
	return doc, nil
}

// emitter accumulates tokens for one Compose call and stops at the first error.
type emitter struct {
	composer     *Composer
	rng          expression.Rand
	used         expression.UsedSet
	tokens       []Token
	duplicates   int
	placeholders int
	err          error
}

func (e *emitter) separator(s Separator) {
	if e.err != nil {
		return
	}
	e.tokens = append(e.tokens, SeparatorToken(s))
}

func (e *emitter) digits(ds string) {
	for _, d := range ds {
		e.symbol(d)
	}
}

func (e *emitter) symbol(sym rune) {
	if e.err != nil {
		return
	}
	c := e.composer
	pick := c.bank.PickUnique(e.rng, sym, e.used, c.opts.MaxAttempts)

	if pick.Placeholder {
		e.placeholders++
		c.logger.Warn("no expressions for symbol, using placeholder", "symbol", string(sym))
	}
	if pick.Duplicate {
		if c.opts.Strict {
			e.err = errors.Wrapf(errors.ErrUniquenessExhausted,
				"symbol %q after %d attempts", string(sym), pick.Attempts)
			return
		}
		e.duplicates++
		c.logger.Warn("repeated expression after exhausting attempts",
			"symbol", string(sym),
			"attempts", pick.Attempts,
		)
	}

	var tok Token
	if sym == expression.PlusSymbol {
		tok = PlusToken(pick.Expression)
	} else {
		tok = DigitToken(sym, pick.Expression)
	}
	tok.Placeholder, tok.Duplicate = pick.Placeholder, pick.Duplicate
	e.tokens = append(e.tokens, tok)
}

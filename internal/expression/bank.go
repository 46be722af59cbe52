// Package expression provides the bank of LaTeX expressions that evaluate to
// each decimal digit, and uniqueness-constrained random selection over it.
package expression

import (
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
)

// PlusSymbol is the symbol for the leading "+" of an international number.
const PlusSymbol = '+'

// DefaultMaxAttempts is the number of draws made before a repeated
// expression is tolerated.
const DefaultMaxAttempts = 15

// paramMarker is replaced by the drawn parameter value in parameterized templates.
const paramMarker = "$n"

// plusExpression is the only expression for PlusSymbol.
const plusExpression = `\mathbf{+}`

// Template is one expression for a digit. A template with Max > 0 contains
// paramMarker and is rendered with an integer drawn from [Min, Max].
type Template struct {
	Text string
	Min  int
	Max  int
}

// Parameterized reports whether the template takes a parameter.
func (t Template) Parameterized() bool {
	return t.Max > 0
}

// Render substitutes v for the parameter marker.
func (t Template) Render(v int) string {
	if !t.Parameterized() {
		return t.Text
	}
	return strings.ReplaceAll(t.Text, paramMarker, strconv.Itoa(v))
}

// Variants returns the number of distinct expressions the template can produce.
func (t Template) Variants() int {
	if !t.Parameterized() {
		return 1
	}
	return t.Max - t.Min + 1
}

func (t Template) draw(rng Rand) string {
	if !t.Parameterized() {
		return t.Text
	}
	return t.Render(t.Min + rng.IntN(t.Variants()))
}

// Rand is the random source used for every draw. *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a deterministic random source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// UsedSet records the expressions already emitted during one generation.
type UsedSet map[string]struct{}

// NewUsedSet returns an empty UsedSet.
func NewUsedSet() UsedSet {
	return make(UsedSet)
}

// Contains reports whether expr was emitted.
func (u UsedSet) Contains(expr string) bool {
	_, ok := u[expr]
	return ok
}

// Add records expr.
func (u UsedSet) Add(expr string) {
	u[expr] = struct{}{}
}

// Pick is the outcome of one selection.
type Pick struct {
	Symbol     rune
	Expression string
	// Placeholder is set when the symbol has no collection.
	Placeholder bool
	// Duplicate is set when every attempt collided and a repeat was returned.
	Duplicate bool
	// Attempts is the number of draws made.
	Attempts int
}

// Placeholder returns the expression emitted for a symbol with no collection.
func Placeholder(symbol rune) string {
	return `\mathbf{\textit{(` + string(symbol) + `)}}`
}

// Bank maps symbols to their template collections. It is immutable after
// construction and safe to share between goroutines.
type Bank struct {
	templates map[rune][]Template
}

// New builds a bank from explicit collections. The plus symbol always gets
// its fixed collection unless one is supplied.
func New(collections map[rune][]Template) *Bank {
	b := &Bank{templates: make(map[rune][]Template, len(collections)+1)}
	for symbol, ts := range collections {
		if len(ts) > 0 {
			b.templates[symbol] = slices.Clone(ts)
		}
	}
	if _, ok := b.templates[PlusSymbol]; !ok {
		b.templates[PlusSymbol] = []Template{{Text: plusExpression}}
	}
	return b
}

var defaultBank = New(digitTemplates)

// Default returns the built-in bank of digit expressions.
func Default() *Bank {
	return defaultBank
}

// Symbols returns the symbols with a collection: digits ascending, then '+'.
func (b *Bank) Symbols() []rune {
	symbols := make([]rune, 0, len(b.templates))
	for s := range b.templates {
		symbols = append(symbols, s)
	}
	slices.SortFunc(symbols, func(x, y rune) int {
		if x == PlusSymbol {
			return 1
		}
		if y == PlusSymbol {
			return -1
		}
		return int(x - y)
	})
	return symbols
}

// Templates returns a copy of a symbol's collection, or nil.
func (b *Bank) Templates(symbol rune) []Template {
	return slices.Clone(b.templates[symbol])
}

// Has reports whether symbol has a collection.
func (b *Bank) Has(symbol rune) bool {
	return len(b.templates[symbol]) > 0
}

// Draw returns one uniformly chosen expression for symbol, or the
// placeholder when the symbol has no collection.
func (b *Bank) Draw(rng Rand, symbol rune) (expr string, placeholder bool) {
	ts := b.templates[symbol]
	if len(ts) == 0 {
		return Placeholder(symbol), true
	}
	return ts[rng.IntN(len(ts))].draw(rng), false
}

// PickUnique draws an expression for symbol that is not yet in used,
// retrying up to maxAttempts times. When every attempt collides one further
// draw is returned and flagged Duplicate. The result is always added to used.
// A maxAttempts below 1 means DefaultMaxAttempts.
func (b *Bank) PickUnique(rng Rand, symbol rune, used UsedSet, maxAttempts int) Pick {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	pick := Pick{Symbol: symbol}

	if !b.Has(symbol) {
		pick.Expression, pick.Placeholder = Placeholder(symbol), true
		pick.Attempts = 1
		used.Add(pick.Expression)
		return pick
	}

	for pick.Attempts < maxAttempts {
		pick.Attempts++
		expr, _ := b.Draw(rng, symbol)
		if !used.Contains(expr) {
			pick.Expression = expr
			used.Add(expr)
			return pick
		}
	}

	expr, _ := b.Draw(rng, symbol)
	pick.Attempts++
	pick.Expression = expr
	pick.Duplicate = used.Contains(expr)
	used.Add(expr)
	return pick
}

// DigitCount is one row of the bank inventory.
type DigitCount struct {
	Symbol    rune
	Templates int
	// Variants counts distinct expressions including parameter values.
	Variants int
}

// Inventory summarizes the bank.
type Inventory struct {
	Rows      []DigitCount
	Templates int
	Variants  int
}

// Inventory counts the templates per symbol.
func (b *Bank) Inventory() Inventory {
	var inv Inventory
	for _, s := range b.Symbols() {
		row := DigitCount{Symbol: s}
		for _, t := range b.templates[s] {
			row.Templates++
			row.Variants += t.Variants()
		}
		inv.Rows = append(inv.Rows, row)
		inv.Templates += row.Templates
		inv.Variants += row.Variants
	}
	return inv
}

// Export writes every template of every digit to w, numbered per digit, with
// parameters drawn from rng.
func (b *Bank) Export(w io.Writer, rng Rand) error {
	inv := b.Inventory()
	ew := &errWriter{w: w}

	rule := strings.Repeat("=", 60)
	ew.printf("FULL EQUATION BANK\n")
	ew.printf("Every template is listed; parameterized templates show one drawn value.\n")
	ew.printf("%s\n\n", rule)

	for _, row := range inv.Rows {
		label := "DIGIT " + string(row.Symbol)
		if row.Symbol == PlusSymbol {
			label = "PLUS SIGN"
		}
		ew.printf("=== %s (%d templates) ===\n", label, row.Templates)
		for i, t := range b.templates[row.Symbol] {
			ew.printf("%02d: $$ %s $$\n", i+1, t.draw(rng))
		}
		ew.printf("\n")
	}

	ew.printf("%s\n", rule)
	ew.printf("Total: %d templates, %d distinct expressions\n", inv.Templates, inv.Variants)
	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

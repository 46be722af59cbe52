// Package bank provides commands for inspecting the expression bank.
package bank

import (
	"fmt"
	"math/rand/v2"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/dialogorithm/internal/expression"
	"github.com/Iron-Ham/dialogorithm/internal/tui/styles"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect the expression bank",
	Long: `Inspect the bank of expressions each digit is replaced with.

Use 'bank inventory' for counts, 'bank export' for every template and
'bank sample <digit>' to draw a few expressions the way generation does.`,
}

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Count the templates per digit",
	Args:  cobra.NoArgs,
	RunE:  runInventory,
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write every template to a file or stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var sampleCmd = &cobra.Command{
	Use:   "sample <digit>",
	Short: "Draw distinct expressions for a digit or '+'",
	Args:  cobra.ExactArgs(1),
	RunE:  runSample,
}

var (
	bankSeed    uint64
	sampleCount int
)

func init() {
	bankCmd.PersistentFlags().Uint64Var(&bankSeed, "seed", 0, "random seed (0 picks one)")
	sampleCmd.Flags().IntVarP(&sampleCount, "count", "n", 5, "number of expressions to draw")

	bankCmd.AddCommand(inventoryCmd)
	bankCmd.AddCommand(exportCmd)
	bankCmd.AddCommand(sampleCmd)
}

// Register adds the bank commands to the given parent command.
func Register(parent *cobra.Command) {
	parent.AddCommand(bankCmd)
}

func newRand() expression.Rand {
	seed := bankSeed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return expression.NewRand(seed)
}

func symbolLabel(s rune) string {
	if s == expression.PlusSymbol {
		return "+"
	}
	return string(s)
}

func runInventory(cmd *cobra.Command, args []string) error {
	inv := expression.Default().Inventory()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, styles.TableHeader.Render(fmt.Sprintf("%-6s %10s %10s", "SYMBOL", "TEMPLATES", "VARIANTS")))
	for _, row := range inv.Rows {
		fmt.Fprintf(out, "%-6s %10d %10d\n", symbolLabel(row.Symbol), row.Templates, row.Variants)
	}
	fmt.Fprintf(out, "%-6s %10d %10d\n", "total", inv.Templates, inv.Variants)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	rng := newRand()
	if len(args) == 0 {
		return expression.Default().Export(cmd.OutOrStdout(), rng)
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := expression.Default().Export(f, rng); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported expression bank to %s\n", args[0])
	return nil
}

func runSample(cmd *cobra.Command, args []string) error {
	symbol, size := utf8.DecodeRuneInString(args[0])
	if size != len(args[0]) || !(symbol == expression.PlusSymbol || (symbol >= '0' && symbol <= '9')) {
		return fmt.Errorf("invalid symbol %q: expected a digit 0-9 or '+'", args[0])
	}
	if sampleCount < 1 {
		return fmt.Errorf("--count must be at least 1")
	}

	bank := expression.Default()
	rng := newRand()
	used := expression.NewUsedSet()
	out := cmd.OutOrStdout()
	for i := range sampleCount {
		pick := bank.PickUnique(rng, symbol, used, expression.DefaultMaxAttempts)
		line := fmt.Sprintf("%2d: %s", i+1, pick.Expression)
		if pick.Duplicate {
			line += "  " + styles.Warning.Render("(repeat)")
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

// Package geography provides the lookup commands over the calling-code
// registry and the country dataset.
package geography

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/dialogorithm/internal/errors"
	"github.com/Iron-Ham/dialogorithm/internal/phoneformat"
	"github.com/Iron-Ham/dialogorithm/internal/tui/styles"
	"github.com/Iron-Ham/dialogorithm/internal/util"
)

var validateCmd = &cobra.Command{
	Use:   "validate <code> <number>",
	Short: "Check a local number against a country's digit limit",
	Long: `Check whether a local number is acceptable for a calling code: digits
only and no longer than the country's limit. Partial numbers are accepted.`,
	Args: cobra.ExactArgs(2),
	RunE: runValidate,
}

var formatCmd = &cobra.Command{
	Use:   "format <code> <number>",
	Short: "Format a local number the way the country writes it",
	Args:  cobra.ExactArgs(2),
	RunE:  runFormat,
}

var continentsCmd = &cobra.Command{
	Use:   "continents",
	Short: "List continents and their subregions",
	Args:  cobra.NoArgs,
	RunE:  runContinents,
}

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List countries with calling code and digit limit",
	Long: `List countries sorted by name. --continent and --subregion narrow the
list; an unknown name lists nothing.`,
	Args: cobra.NoArgs,
	RunE: runCountries,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find countries by name",
	Long: `Find countries by case-insensitive substring, or by glob when the query
contains * ? [ or {, e.g.:
  dialogorithm search "united*"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dataset statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var (
	countriesContinent string
	countriesSubregion string
)

func init() {
	countriesCmd.Flags().StringVar(&countriesContinent, "continent", "", "only countries on this continent")
	countriesCmd.Flags().StringVar(&countriesSubregion, "subregion", "", "only countries in this subregion")
}

// Register adds the geography commands to the given parent command.
func Register(parent *cobra.Command) {
	parent.AddCommand(validateCmd)
	parent.AddCommand(formatCmd)
	parent.AddCommand(continentsCmd)
	parent.AddCommand(countriesCmd)
	parent.AddCommand(searchCmd)
	parent.AddCommand(statsCmd)
}

func parseCode(arg string) (int, error) {
	code, err := strconv.Atoi(arg)
	if err != nil || code < 1 {
		return 0, fmt.Errorf("invalid calling code: %s", arg)
	}
	return code, nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	code, err := parseCode(args[0])
	if err != nil {
		return err
	}
	local := args[1]
	limit := phoneformat.DigitLimit(code)
	if !phoneformat.Validate(local, code) {
		return fmt.Errorf("invalid: %q is not a local number for +%d (digits only, at most %d)", local, code, limit)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "valid: %d/%d digits for +%d\n", len(local), limit, code)
	return nil
}

func runFormat(cmd *cobra.Command, args []string) error {
	code, err := parseCode(args[0])
	if err != nil {
		return err
	}
	local := phoneformat.StripNonDigits(args[1])
	fmt.Fprintln(cmd.OutOrStdout(), phoneformat.InternationalDisplay(local, code))
	return nil
}

func runContinents(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, c := range phoneformat.ContinentStructure() {
		fmt.Fprintln(out, styles.TableHeader.Render(c.Name))
		for _, s := range c.Subregions {
			fmt.Fprintf(out, "  %s\n", s)
		}
	}
	return nil
}

func runCountries(cmd *cobra.Command, args []string) error {
	labels := phoneformat.Countries(countriesContinent, countriesSubregion)
	if len(labels) == 0 {
		if countriesSubregion != "" {
			return errors.NewNotFoundError("subregion", countriesSubregion)
		}
		return errors.NewNotFoundError("continent", countriesContinent)
	}
	printCountries(cmd.OutOrStdout(), labels)
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	labels := phoneformat.Search(args[0])
	if len(labels) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No countries match %q\n", args[0])
		return nil
	}
	printCountries(cmd.OutOrStdout(), labels)
	return nil
}

const countryColumn = 34

func printCountries(w io.Writer, labels []string) {
	fmt.Fprintf(w, "%s %-6s %-6s %s\n",
		styles.TableHeader.Render(util.PadRight("COUNTRY", countryColumn)), "CODE", "DIGITS", "FORMAT")
	for _, label := range labels {
		c, ok := phoneformat.Lookup(label)
		if !ok {
			continue
		}
		code := c.CallingCode()
		fmt.Fprintf(w, "%s %-6s %-6d %s\n",
			util.FitColumn(label, countryColumn), "+"+strconv.Itoa(code), phoneformat.DigitLimit(code), c.FormatExample)
	}
	fmt.Fprintf(w, "\n%d countries\n", len(labels))
}

func runStats(cmd *cobra.Command, args []string) error {
	s := phoneformat.DatasetStats()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, styles.TableHeader.Render("DATASET"))
	fmt.Fprintf(out, "Countries:      %d (%.1f%% of ISO 3166-1)\n", s.TotalCountries, s.CoveragePercent)
	fmt.Fprintf(out, "Calling codes:  %d (%d mapped to a region)\n", s.TotalCallingCodes, s.RegionMapped)
	fmt.Fprintln(out)

	fmt.Fprintln(out, styles.TableHeader.Render("CONTINENTS"))
	for _, c := range s.Continents {
		fmt.Fprintf(out, "%-14s %4d countries  %2d subregions\n", c.Name, c.Countries, c.Subregions)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, styles.TableHeader.Render("DIGIT LIMITS"))
	for _, d := range s.DigitLimitDistribution {
		fmt.Fprintf(out, "%2d digits: %3d codes\n", d.Limit, d.Codes)
	}
	return nil
}

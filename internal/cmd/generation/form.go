package generation

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Iron-Ham/dialogorithm/internal/config"
	"github.com/Iron-Ham/dialogorithm/internal/tui/form"
)

// Wrapper for terminal detection to allow testing
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the interactive generation screen",
	Long: `Open the interactive screen: pick a continent, subregion and country,
type the local number, choose a heading and generate.`,
	Args: cobra.NoArgs,
	RunE: runForm,
}

func runForm(cmd *cobra.Command, args []string) error {
	if !isTerminal() {
		return fmt.Errorf("form needs an interactive terminal; use 'dialogorithm generate' instead")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return form.Run(cmd.Context(), a.gen, a.bus, cfg.Signature.Default)
}

package generation

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/dialogorithm/internal/config"
	"github.com/Iron-Ham/dialogorithm/internal/errors"
	"github.com/Iron-Ham/dialogorithm/internal/event"
	"github.com/Iron-Ham/dialogorithm/internal/pipeline"
	"github.com/Iron-Ham/dialogorithm/internal/tui/styles"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render a phone number as an image",
	Long: `Render a phone number as an image of mathematical expressions.

The number is given as a calling code and local digits:
  dialogorithm generate --code 1 --number 5551234567

or as free-form text with --raw, which skips the digit-count checks:
  dialogorithm generate --raw "+1 555 123 4567"

--signature picks the heading: Random (default from config), one of the
fixed choices, Custom (with --custom), or any literal text.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var (
	generateCode      int
	generateNumber    string
	generateSignature string
	generateCustom    string
	generateRaw       string
	generateOutput    string
	generateSeed      uint64
	generateVerbose   bool
)

func init() {
	generateCmd.Flags().IntVar(&generateCode, "code", 0, "country calling code, e.g. 44")
	generateCmd.Flags().StringVar(&generateNumber, "number", "", "local number digits")
	generateCmd.Flags().StringVar(&generateSignature, "signature", "", "heading choice or literal text")
	generateCmd.Flags().StringVar(&generateCustom, "custom", "", "heading text used with --signature Custom")
	generateCmd.Flags().StringVar(&generateRaw, "raw", "", "free-form number, e.g. \"+1 555 123 4567\"")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output directory (overrides output.dir)")
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0, "random seed for a reproducible document (0 picks one)")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "print each stage as it starts")
	generateCmd.MarkFlagsMutuallyExclusive("raw", "code")
	generateCmd.MarkFlagsMutuallyExclusive("raw", "number")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generateRaw == "" && generateNumber == "" {
		return fmt.Errorf("provide --code and --number, or --raw")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if generateOutput != "" {
		cfg.Output.Dir = generateOutput
	}

	var opts []pipeline.Option
	if generateSeed != 0 {
		seed := generateSeed
		opts = append(opts, pipeline.WithSeeds(func() uint64 { return seed }))
	}
	a, err := newApp(cfg, opts...)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	if generateVerbose {
		a.bus.Subscribe(event.TypeStageChanged, func(e event.Event) {
			if sc, ok := e.(event.StageChangedEvent); ok {
				fmt.Fprintln(out, styles.Stage(sc.Current))
			}
		})
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	res, err := generate(ctx, a.gen)
	if err != nil {
		if errors.IsRetryable(err) {
			return fmt.Errorf("%w\nraise render.compile_timeout or render.convert_timeout and try again", err)
		}
		return err
	}
	printResult(out, res)
	return nil
}

func generate(ctx context.Context, gen *pipeline.Generator) (*pipeline.Result, error) {
	sig := generateSignature
	if generateRaw != "" {
		if generateCustom != "" && sig == "" {
			sig = generateCustom
		}
		return gen.GenerateRaw(ctx, generateRaw, sig)
	}
	return gen.Generate(ctx, pipeline.Request{
		CallingCode:     generateCode,
		LocalNumber:     generateNumber,
		Signature:       sig,
		CustomSignature: generateCustom,
	})
}

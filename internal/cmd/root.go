package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/dialogorithm/internal/cmd/bank"
	cmdconfig "github.com/Iron-Ham/dialogorithm/internal/cmd/config"
	"github.com/Iron-Ham/dialogorithm/internal/cmd/generation"
	"github.com/Iron-Ham/dialogorithm/internal/cmd/geography"
	"github.com/Iron-Ham/dialogorithm/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "dialogorithm",
	Short: "Render a phone number as a sheet of mathematical expressions",
	Long: `Dialogorithm turns a phone number into a LaTeX-typeset image in which
every digit is replaced by an expression that evaluates to it, under a
heading of your choice.

Run 'dialogorithm form' for the interactive screen, or 'dialogorithm generate'
to produce an image from flags.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// Root returns the root command.
func Root() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/dialogorithm/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	generation.Register(rootCmd)
	geography.Register(rootCmd)
	bank.Register(rootCmd)
	cmdconfig.Register(rootCmd)
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/dialogorithm")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("DIALOGORITHM")
	// e.g. DIALOGORITHM_RENDER_DPI for render.dpi
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

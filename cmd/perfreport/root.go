// cmd/perfreport/root.go
package perfreport

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/perfreport/internal/config"
)

// appFs is the filesystem the report commands read from and write to.
var appFs afero.Fs = afero.NewOsFs()

// rootCmd is the base Cobra command for the perfreport application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "perfreport",
	Short: "Summarize performance-test results per round",
	Long:  `perfreport reads a performance-test result table (one row per execution batch, tagged with a round id) and produces a per-round summary with totals, extrema, throughput and success/error rates.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(cmd)
		if err := config.ReadFile(viper.GetViper(), viper.GetString(config.KeyConfig)); err != nil {
			return err
		}
		// the config file may have changed the level
		setupLogging(cmd)
		return nil
	},
}

// Execute runs the root Cobra command and all registered subcommands.
// Cobra prints the returned error; the process exits with a non-zero status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command) {
	logrus.SetOutput(cmd.ErrOrStderr())
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	level, err := logrus.ParseLevel(viper.GetString(config.KeyLogLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	if viper.GetBool(config.KeyDebug) {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
}

func init() {
	config.SetDefaults(viper.GetViper())

	rootCmd.PersistentFlags().StringP(config.KeyConfig, "c", "", "config file (default ./config.json when present)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool(config.KeyDebug, false, "enable debug logging and dump the resolved config")

	cobra.CheckErr(viper.BindPFlag(config.KeyConfig, rootCmd.PersistentFlags().Lookup(config.KeyConfig)))
	cobra.CheckErr(viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag(config.KeyDebug, rootCmd.PersistentFlags().Lookup(config.KeyDebug)))
}

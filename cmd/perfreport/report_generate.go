// cmd/perfreport/report_generate.go
package perfreport

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/perfreport/internal/config"
	"github.com/mwiater/perfreport/internal/report"
	"github.com/mwiater/perfreport/internal/sink"
	"github.com/mwiater/perfreport/internal/tui"
)

// now is replaced in tests.
var now = time.Now

// generateCmd implements 'report generate', which runs the whole pipeline once:
// read the input table, aggregate per round, write the summary and print it.
var generateCmd = &cobra.Command{
	Use:          "generate",
	Short:        "Aggregate the input table and write the round summary",
	Long:         `The 'generate' subcommand reads the input table, aggregates it per round and writes the summary as CSV or JSON. Nothing is written when the input cannot be read or aggregated.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := config.OutputFromViper(viper.GetViper())
		if err != nil {
			return err
		}
		cfg, summaries, err := loadRounds(cmd)
		if err != nil {
			return err
		}

		totals := report.Totals(summaries)
		doc := sink.Document{
			GeneratedAt: now(),
			Input:       cfg.Input,
			Rounds:      summaries,
			Totals:      totals,
		}
		if err := sink.WriteFile(appFs, out.Path, out.Format, cfg.Locale, doc); err != nil {
			logrus.WithError(err).WithField("output", out.Path).Error("failed to write summary")
			return err
		}
		logrus.WithField("output", out.Path).Info("wrote round summary")

		if !out.Quiet {
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderTable(summaries, totals, cfg.Locale))
		}
		return nil
	},
}

func init() {
	reportCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP(config.KeyOutput, "o", "report.csv", "output file, overwritten if present")
	generateCmd.Flags().StringP(config.KeyFormat, "f", "csv", "output format (csv or json)")
	generateCmd.Flags().BoolP(config.KeyQuiet, "q", false, "do not print the summary table")

	cobra.CheckErr(viper.BindPFlag(config.KeyOutput, generateCmd.Flags().Lookup(config.KeyOutput)))
	cobra.CheckErr(viper.BindPFlag(config.KeyFormat, generateCmd.Flags().Lookup(config.KeyFormat)))
	cobra.CheckErr(viper.BindPFlag(config.KeyQuiet, generateCmd.Flags().Lookup(config.KeyQuiet)))
}

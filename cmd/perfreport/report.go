// cmd/perfreport/report.go
package perfreport

import (
	"github.com/k0kubun/pp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/perfreport/internal/config"
	"github.com/mwiater/perfreport/internal/report"
	"github.com/mwiater/perfreport/internal/source"
)

// reportCmd groups the commands that build a round summary from an input table.
// The input, locale and order flags are shared by its subcommands.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Group commands for building round summaries",
	Long:  `The 'report' command groups subcommands that read a performance-test result table and summarize it per round. It performs no action on its own.`,
}

// loadRounds resolves the config, reads the input table and aggregates it.
func loadRounds(cmd *cobra.Command) (config.Config, []report.RoundSummary, error) {
	cfg, err := config.FromViper(viper.GetViper())
	if err != nil {
		return cfg, nil, err
	}
	if cfg.Debug {
		pp.Fprintln(cmd.ErrOrStderr(), cfg)
	}

	log := logrus.WithField("input", cfg.Input)
	records, err := source.ReadFile(appFs, cfg.Input)
	if err != nil {
		log.WithError(err).Error("failed to read execution records")
		return cfg, nil, err
	}

	summaries, err := report.Aggregate(records, report.WithOrder(cfg.Order))
	if err != nil {
		log.WithError(err).Error("failed to aggregate execution records")
		return cfg, nil, err
	}
	log.WithFields(logrus.Fields{"rows": len(records), "rounds": len(summaries)}).Info("aggregated rounds")
	return cfg, summaries, nil
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.PersistentFlags().StringP(config.KeyInput, "i", "performance.csv", "input CSV table, one row per execution batch")
	reportCmd.PersistentFlags().String(config.KeyLocale, "en", "header language of the summary (en or zh)")
	reportCmd.PersistentFlags().String(config.KeyOrder, "appearance", "round order (appearance or ascending)")

	cobra.CheckErr(viper.BindPFlag(config.KeyInput, reportCmd.PersistentFlags().Lookup(config.KeyInput)))
	cobra.CheckErr(viper.BindPFlag(config.KeyLocale, reportCmd.PersistentFlags().Lookup(config.KeyLocale)))
	cobra.CheckErr(viper.BindPFlag(config.KeyOrder, reportCmd.PersistentFlags().Lookup(config.KeyOrder)))
}

// cmd/perfreport/report_show.go
package perfreport

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/perfreport/internal/report"
	"github.com/mwiater/perfreport/internal/tui"
)

var browse = tui.Browse

var interactive bool

// showCmd implements 'report show', which prints the round summary without
// writing any file, or browses it interactively.
var showCmd = &cobra.Command{
	Use:          "show",
	Short:        "Print the round summary without writing a file",
	Long:         `The 'show' subcommand aggregates the input table and prints the round summary as a table. With --interactive it opens a browsable table instead.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, summaries, err := loadRounds(cmd)
		if err != nil {
			return err
		}
		if interactive {
			return browse(summaries, cfg.Locale)
		}
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderTable(summaries, report.Totals(summaries), cfg.Locale))
		return nil
	},
}

func init() {
	reportCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&interactive, "interactive", false, "browse the summary in an interactive table")
}

// cmd/perfreport/list_columns.go
package perfreport

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mwiater/perfreport/internal/source"
)

// columnsCmd implements 'list columns', which prints every input field and the
// header names accepted for it.
var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "List the input columns and their accepted header names",
	Long:  `The 'columns' subcommand lists every field read from the input table together with the English, Chinese and snake_case header names that resolve to it. Other columns are ignored.`,
	Run: func(cmd *cobra.Command, args []string) {
		listColumns(cmd.OutOrStdout())
	},
}

func init() {
	listCmd.AddCommand(columnsCmd)
}

func listColumns(w io.Writer) {
	fieldStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Width(18)
	aliasStyle := lipgloss.NewStyle().Faint(true)

	for _, c := range source.Columns {
		fmt.Fprintln(w, fieldStyle.Render(c.Field)+aliasStyle.Render(strings.Join(c.Aliases, ", ")))
	}
}

// cmd_list.go - List Command fuer registrierte Experimente
// Hauptfunktionen: ListHandler
package cmd

import (
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/resona-asr/resona/api"
	"github.com/resona-asr/resona/format"
)

// ListHandler - Listet alle registrierten Experimente auf
func ListHandler(cmd *cobra.Command, args []string) error {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return err
	}

	experiments, err := client.List(cmd.Context())
	if err != nil {
		return err
	}

	var data [][]string
	for _, e := range experiments.Experiments {
		if len(args) == 0 || strings.HasPrefix(strings.ToLower(e.Name), strings.ToLower(args[0])) {
			data = append(data, []string{
				e.Name,
				format.HumanNumber(e.Params),
				format.HumanBytes(int64(e.SizeBytes)),
				format.HumanTime(e.ModifiedAt, "Never"),
			})
		}
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"NAME", "PARAMS", "SIZE", "MODIFIED"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return nil
}

// newListCmd - Erstellt den list Command
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list [PREFIX]",
		Aliases: []string{"ls"},
		Short:   "List experiments",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: checkServerHeartbeat,
		RunE:    ListHandler,
	}
}

// cmd_diff.go - Diff Command fuer Konfigurationsvergleiche
// Hauptfunktionen: DiffHandler
package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/resona-asr/resona/config"
)

// DiffHandler - Vergleicht zwei Konfigurationen Schluessel fuer Schluessel
func DiffHandler(cmd *cobra.Command, args []string) error {
	a, _, err := loadConfigArg(args[0], true)
	if err != nil {
		return err
	}
	b, _, err := loadConfigArg(args[1], true)
	if err != nil {
		return err
	}

	keys := config.Diff(a, b)
	if len(keys) == 0 {
		fmt.Println("no differences")
		return nil
	}

	// Dateipfade als Legende, damit die Spalten kurz bleiben
	fmt.Printf("A: %s\n", args[0])
	fmt.Printf("B: %s\n\n", args[1])

	var data [][]string
	for _, key := range keys {
		left, _ := a.Value(key)
		right, _ := b.Value(key)
		data = append(data, []string{key, left, right})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"PARAMETER", "A", "B"})
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

// newDiffCmd - Erstellt den diff Command
func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff FILE FILE",
		Short: "Compare two configurations key by key",
		Args:  cobra.ExactArgs(2),
		RunE:  DiffHandler,
	}
}

// cmd_utils.go - Gemeinsame Hilfsfunktionen
// Hauptfunktionen: checkServerHeartbeat, loadConfigArg, wrapText
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/resona-asr/resona/api"
	"github.com/resona-asr/resona/config"
	"github.com/resona-asr/resona/recipe"
)

// checkServerHeartbeat - Prueft ob der Registry-Server erreichbar ist
func checkServerHeartbeat(cmd *cobra.Command, _ []string) error {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return err
	}
	if err := client.Heartbeat(cmd.Context()); err != nil {
		return fmt.Errorf("%w - try 'resona serve'", err)
	}
	return nil
}

// isRecipeFile - Erkennt Rezeptdateien am Namen
func isRecipeFile(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, "Recipefile") || filepath.Ext(base) == ".recipe"
}

// loadConfigArg laedt eine Konfiguration aus einer YAML-Datei oder einem
// Rezept. Fuer Rezepte kommen die NOTE-Zeilen mit zurueck.
func loadConfigArg(path string, lenient bool) (*config.Config, []string, error) {
	if isRecipeFile(path) {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()

		rf, err := recipe.ParseFile(f)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}

		resolved, err := rf.Resolve(filepath.Dir(path))
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}

		return resolved.Config, resolved.Notes, nil
	}

	var opts []config.LoadOption
	if lenient {
		opts = append(opts, config.WithLenient())
	}

	cfg, err := config.LoadFile(path, opts...)
	return cfg, nil, err
}

// wrapText - Bricht Text auf die gewuenschte Breite um
func wrapText(s string, width int) []string {
	if width < 20 {
		width = 20
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(s) {
		wordWidth := runewidth.StringWidth(word)
		if lineWidth > 0 && lineWidth+1+wordWidth > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += wordWidth
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}

	return lines
}

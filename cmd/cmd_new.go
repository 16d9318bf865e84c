// cmd_new.go - New Command fuer Starter-Konfigurationen
// Hauptfunktionen: NewHandler
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/resona-asr/resona/config"
	"github.com/resona-asr/resona/version"
)

// NewHandler - Schreibt eine neue Konfigurationsdatei mit allen Defaults
func NewHandler(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s already exists", path)
		}
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "# Training configuration for attention-based ASR.\n")
	fmt.Fprintf(f, "# Written by resona %s with default values, adjust as needed.\n\n", version.Version)

	if err := config.Default().Save(f); err != nil {
		return err
	}

	fmt.Printf("created %s\n", path)
	return nil
}

// newNewCmd - Erstellt den new Command
func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new FILE",
		Short: "Write a fresh configuration with all defaults",
		Args:  cobra.ExactArgs(1),
		RunE:  NewHandler,
	}
}

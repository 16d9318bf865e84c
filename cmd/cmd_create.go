// cmd_create.go - Create Command fuer Experimente
// Hauptfunktionen: CreateHandler, getRecipefileName
package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/resona-asr/resona/api"
	"github.com/resona-asr/resona/types/experiment"
)

var errRecipefileNotFound = errors.New("specified Recipefile wasn't found")

// getRecipefileName - Findet den Rezeptdatei-Pfad
func getRecipefileName(cmd *cobra.Command) (string, error) {
	filename, _ := cmd.Flags().GetString("file")

	if filename == "" {
		filename = "Recipefile"
	}

	absName, err := filepath.Abs(filename)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(absName); err != nil {
		return "", err
	}

	return absName, nil
}

// CreateHandler - Registriert ein Experiment beim Server
func CreateHandler(cmd *cobra.Command, args []string) error {
	name := experiment.ParseName(args[0])
	if !name.IsValid() {
		return fmt.Errorf("invalid experiment name: %s", args[0])
	}

	filename, err := getRecipefileName(cmd)
	if err != nil {
		if os.IsNotExist(err) {
			return errRecipefileNotFound
		}
		return err
	}

	cfg, recipeNotes, err := loadConfigArg(filename, false)
	if err != nil {
		return err
	}

	notes, _ := cmd.Flags().GetString("notes")
	if notes == "" && len(recipeNotes) > 0 {
		notes = strings.Join(recipeNotes, "\n")
	}

	var buf bytes.Buffer
	if err := cfg.Save(&buf); err != nil {
		return err
	}

	client, err := api.ClientFromEnvironment()
	if err != nil {
		return err
	}

	resp, err := client.Create(cmd.Context(), &api.CreateRequest{
		Name:   args[0],
		Config: buf.String(),
		Notes:  notes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("created '%s'\n", resp.Name)
	return nil
}

// newCreateCmd - Erstellt den create Command
func newCreateCmd() *cobra.Command {
	createCmd := &cobra.Command{
		Use:     "create EXPERIMENT",
		Short:   "Create an experiment from a configuration or recipe",
		Args:    cobra.ExactArgs(1),
		PreRunE: checkServerHeartbeat,
		RunE:    CreateHandler,
	}

	createCmd.Flags().StringP("file", "f", "", "Name of the Recipefile (default \"Recipefile\")")
	createCmd.Flags().String("notes", "", "Free-form notes stored with the experiment")

	return createCmd
}

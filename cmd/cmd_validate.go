// cmd_validate.go - Validate Command
// Hauptfunktionen: ValidateHandler, newValidateCmd
package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/resona-asr/resona/envconfig"
)

// fileResult - Validierungsergebnis einer einzelnen Datei
type fileResult struct {
	path     string
	errs     []string
	warnings []string
}

// validateFile - Laedt und prueft eine Konfigurations- oder Rezeptdatei
func validateFile(path string, lenient bool) fileResult {
	cfg, _, err := loadConfigArg(path, lenient)
	if err != nil {
		return fileResult{path: path, errs: []string{err.Error()}}
	}

	result := fileResult{path: path}
	for _, err := range cfg.Validate() {
		result.errs = append(result.errs, err.Error())
	}
	result.warnings = cfg.Warnings()
	return result
}

// ValidateHandler - Validiert eine oder mehrere Dateien parallel
func ValidateHandler(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	lenient, _ := cmd.Flags().GetBool("lenient")

	results := make([]fileResult, len(args))

	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.NumCPU())
	for i, path := range args {
		g.Go(func() error {
			results[i] = validateFile(path, lenient)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	invalid := 0
	for _, result := range results {
		if len(result.errs) > 0 {
			invalid++
			fmt.Fprintf(os.Stderr, "%s: INVALID\n", result.path)
			for _, msg := range result.errs {
				fmt.Fprintf(os.Stderr, "  %s\n", msg)
			}
			continue
		}

		if !quiet {
			fmt.Printf("%s: OK\n", result.path)
			for _, warning := range result.warnings {
				fmt.Printf("  warning: %s\n", warning)
			}
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d files failed validation", invalid, len(args))
	}
	return nil
}

// newValidateCmd - Erstellt den validate Command
func newValidateCmd() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate FILE [FILE...]",
		Short: "Validate training configurations and recipes",
		Args:  cobra.MinimumNArgs(1),
		RunE:  ValidateHandler,
	}

	validateCmd.Flags().BoolP("quiet", "q", false, "Only report files that fail validation")
	validateCmd.Flags().Bool("lenient", !envconfig.Strict(true), "Ignore unknown configuration keys")

	return validateCmd
}

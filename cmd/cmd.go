// cmd.go - Haupt-CLI Setup und Root Command
// Hauptfunktionen: NewCLI, appendEnvDocs
package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/resona-asr/resona/envconfig"
)

// appendEnvDocs - Fuegt Umgebungsvariablen-Dokumentation zum Command hinzu
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// NewCLI - Erstellt das Haupt-CLI mit allen Commands
func NewCLI() *cobra.Command {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "resona",
		Short:         "Training configuration toolkit for attention-based ASR",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Run: func(cmd *cobra.Command, args []string) {
			if version, _ := cmd.Flags().GetBool("version"); version {
				versionHandler(cmd, args)
				return
			}

			cmd.Print(cmd.UsageString())
		},
	}

	rootCmd.Flags().BoolP("version", "v", false, "Show version information")

	// Commands erstellen
	newCmd := newNewCmd()
	validateCmd := newValidateCmd()
	showCmd := newShowCmd()
	diffCmd := newDiffCmd()
	createCmd := newCreateCmd()
	listCmd := newListCmd()
	evalCmd := newEvalCmd()
	rmCmd := newRmCmd()
	serveCmd := newServeCmd()

	// Environment-Dokumentation hinzufuegen
	envVars := envconfig.AsMap()
	envs := []envconfig.EnvVar{envVars["RESONA_HOST"]}

	for _, cmd := range []*cobra.Command{
		newCmd,
		validateCmd,
		showCmd,
		diffCmd,
		createCmd,
		listCmd,
		evalCmd,
		rmCmd,
		serveCmd,
	} {
		switch cmd {
		case newCmd, diffCmd:
			// rein lokale Commands brauchen keinen Server
		case validateCmd:
			appendEnvDocs(cmd, []envconfig.EnvVar{envVars["RESONA_STRICT"]})
		case serveCmd:
			appendEnvDocs(cmd, []envconfig.EnvVar{
				envVars["RESONA_DEBUG"],
				envVars["RESONA_HOST"],
				envVars["RESONA_HOME"],
				envVars["RESONA_ORIGINS"],
				envVars["RESONA_STRICT"],
			})
		default:
			appendEnvDocs(cmd, envs)
		}
	}

	rootCmd.AddCommand(
		newCmd,
		validateCmd,
		showCmd,
		diffCmd,
		createCmd,
		listCmd,
		evalCmd,
		rmCmd,
		serveCmd,
	)

	return rootCmd
}

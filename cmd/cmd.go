// cmd.go - Haupt-CLI Setup und Root Command
// Hauptfunktionen: NewCLI, appendEnvDocs
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/axleml/axle/envconfig"
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
	cobra.EnableCommandSorting = false

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: envconfig.LogLevel(),
	})))

	rootCmd := &cobra.Command{
		Use:           "axle",
		Short:         "N-dimensional array layout inspector",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	layoutCmd := newLayoutCmd()
	dtypesCmd := newDtypesCmd()
	envCmd := newEnvCmd()

	envVars := envconfig.AsMap()
	envs := []envconfig.EnvVar{envVars["AXLE_DEBUG"]}
	appendEnvDocs(rootCmd, envs)

	rootCmd.AddCommand(
		layoutCmd,
		dtypesCmd,
		envCmd,
	)

	return rootCmd
}

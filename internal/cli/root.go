package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/webpage/internal/output"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "webpage",
	Short:   "The simplest possible web server",
	Version: version,
	Long: `Webpage starts an HTTP server on http://localhost:8080 and answers every
request, whatever its method or path, with the same small HTML page.

Pick the page with a subcommand: "plain" serves a bare heading, "styled"
serves the heading with an inline stylesheet.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	err := RootCmd.Execute()
	if err != nil {
		noColor, _ := RootCmd.PersistentFlags().GetBool("no-color")
		output.NewConsole(os.Stdout, os.Stderr, noColor).Error(err)
	}
	return err
}

func init() {
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	// Add subcommands to root command
	RootCmd.AddCommand(plainCmd)
	RootCmd.AddCommand(styledCmd)
}

package cmd

import (
	"os"

	"github.com/sifiratik/fidan/internal/content"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// appFs is the filesystem every command reads and writes.
var appFs afero.Fs = afero.NewOsFs()

var contentFile string

var rootCmd = &cobra.Command{
	Use:   "fidan-cli",
	Short: "Fidan CLI tool",
	Long: `Fidan CLI works with the landing page content and its interactive widgets
without starting the server.

Available commands:
  content     Validate or print the page content
  faq         List questions and simulate accordion toggles
  newsletter  Check addresses against the sign-up rules
  events      List the events published on the site bus
  export      Render the initial page and assets to a directory

Use "fidan-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&contentFile, "content", "c", os.Getenv("CONTENT_FILE"),
		"YAML content file (defaults to CONTENT_FILE, or the compiled-in copy)")
}

// loadContent reads the content selected by --content.
func loadContent() (*content.Store, error) {
	store := content.NewStore(appFs, contentFile)
	if err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}

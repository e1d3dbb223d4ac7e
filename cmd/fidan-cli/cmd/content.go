package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Validate or print the page content",
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the content file decodes and validates",
	Long: `Load the content file the same way the server does at startup and report
any decoding or validation error.

Examples:
  fidan-cli content validate --content site.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadContent()
		if err != nil {
			return err
		}
		site := store.Current().Site
		source := store.Path()
		if source == "" {
			source = "compiled-in defaults"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "OK: %s (%d FAQ entries, %d services, %d steps)\n",
			source, len(site.FAQ.Entries), len(site.Services.Items), len(site.Steps.Items))
		return nil
	},
}

var contentDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective content as YAML",
	Long: `Print the content the server would serve, with defaults filled in.
The output is a valid content file and a good starting point for a new one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadContent()
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(store.Current().Site); err != nil {
			return err
		}
		return enc.Close()
	},
}

func init() {
	contentCmd.AddCommand(contentValidateCmd, contentDumpCmd)
	rootCmd.AddCommand(contentCmd)
}

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sifiratik/fidan/cmd/fidan-cli/internal/format"
	"github.com/sifiratik/fidan/internal/accordion"
	"github.com/spf13/cobra"
)

var (
	faqOutputFormat string
	faqStartOpen    string
)

var faqCmd = &cobra.Command{
	Use:   "faq",
	Short: "List questions and simulate accordion toggles",
}

var faqListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the FAQ entries with their indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := format.Check(faqOutputFormat); err != nil {
			return err
		}
		store, err := loadContent()
		if err != nil {
			return err
		}
		entries := store.Current().Site.FAQ.Entries

		if faqOutputFormat == format.JSON {
			return format.WriteJSON(cmd.OutOrStdout(), struct {
				Entries any `json:"entries"`
				Count   int `json:"count"`
			}{entries, len(entries)})
		}

		rows := make([][]string, 0, len(entries))
		for i, e := range entries {
			rows = append(rows, []string{strconv.Itoa(i), format.Truncate(e.Question, 60)})
		}
		return format.WriteTable(cmd.OutOrStdout(), []string{"INDEX", "QUESTION"}, rows)
	},
}

var faqToggleCmd = &cobra.Command{
	Use:   "toggle <index>...",
	Short: "Apply a sequence of toggles and print the state after each",
	Long: `Replay header activations against the accordion, starting from a freshly
mounted list (first entry open) unless --open says otherwise.

Examples:
  fidan-cli faq toggle 2 2 0        # open 2, close 2, open 0
  fidan-cli faq toggle 1 --open none`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadContent()
		if err != nil {
			return err
		}
		n := len(store.Current().Site.FAQ.Entries)

		sel := accordion.Initial()
		if faqStartOpen != "" {
			sel = accordion.Parse(faqStartOpen, n)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "start: %s\n", sel)

		for _, arg := range args {
			i, ok := accordion.ParseIndex(arg, n)
			if !ok {
				return fmt.Errorf("index %q is outside 0..%d", arg, n-1)
			}
			next := accordion.Reduce(sel, accordion.Action{Index: i})
			fmt.Fprintf(cmd.OutOrStdout(), "toggle(%d): %s%s\n", i, next, describeEffects(accordion.Effects(sel, next)))
			sel = next
		}
		return nil
	},
}

func describeEffects(effects []accordion.Effect) string {
	if len(effects) == 0 {
		return ""
	}
	parts := make([]string, 0, len(effects))
	for _, e := range effects {
		parts = append(parts, fmt.Sprintf("%s %d", e.Kind, e.Index))
	}
	return " [" + strings.Join(parts, ", ") + "]"
}

func init() {
	faqListCmd.Flags().StringVarP(&faqOutputFormat, "format", "f", format.Table, "Output format (table, json)")
	faqToggleCmd.Flags().StringVar(&faqStartOpen, "open", "", `Starting selection: an index or "none"`)

	faqCmd.AddCommand(faqListCmd, faqToggleCmd)
	rootCmd.AddCommand(faqCmd)
}

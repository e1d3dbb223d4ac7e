package cmd

import (
	"github.com/sifiratik/fidan/cmd/fidan-cli/internal/format"
	_ "github.com/sifiratik/fidan/internal/events"
	"github.com/sifiratik/fidan/internal/pubsub"
	"github.com/spf13/cobra"
)

var eventsOutputFormat string

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the events published on the site bus",
	Long: `List every event the site publishes, with a description. Subscribers
such as the telemetry logger listen on these names.

Examples:
  fidan-cli events
  fidan-cli events --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := format.Check(eventsOutputFormat); err != nil {
			return err
		}
		infos := pubsub.Events()

		if eventsOutputFormat == format.JSON {
			return format.WriteJSON(cmd.OutOrStdout(), struct {
				Events []pubsub.EventInfo `json:"events"`
				Count  int                `json:"count"`
			}{infos, len(infos)})
		}

		rows := make([][]string, 0, len(infos))
		for _, info := range infos {
			rows = append(rows, []string{info.Name, format.Truncate(info.Description, 60)})
		}
		return format.WriteTable(cmd.OutOrStdout(), []string{"NAME", "DESCRIPTION"}, rows)
	},
}

func init() {
	eventsCmd.Flags().StringVarP(&eventsOutputFormat, "format", "f", format.Table, "Output format (table, json)")
	rootCmd.AddCommand(eventsCmd)
}

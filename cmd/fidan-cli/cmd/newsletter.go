package cmd

import (
	"errors"
	"fmt"

	"github.com/sifiratik/fidan/internal/domain"
	"github.com/sifiratik/fidan/internal/newsletter"
	"github.com/spf13/cobra"
)

var newsletterCmd = &cobra.Command{
	Use:   "newsletter",
	Short: "Check addresses against the sign-up rules",
}

var newsletterCheckCmd = &cobra.Command{
	Use:   "check <email>...",
	Short: "Run addresses through the sign-up service without recording them",
	Long: `Each address goes through the same validation as the footer form and is
kept in memory only. The command fails if any address is rejected.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sink := &newsletter.MemorySink{}
		defer sink.Close()
		svc := newsletter.NewService(sink)

		rejected := 0
		for _, email := range args {
			sub, err := svc.Subscribe(cmd.Context(), email)
			switch {
			case errors.Is(err, domain.ErrInvalidEmail):
				rejected++
				fmt.Fprintf(cmd.OutOrStdout(), "REJECTED %q\n", email)
			case err != nil:
				return err
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "ACCEPTED %s\n", sub.Email)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d accepted, %d rejected\n", len(sink.Subscriptions()), rejected)
		if rejected > 0 {
			return fmt.Errorf("%d address(es) rejected", rejected)
		}
		return nil
	},
}

func init() {
	newsletterCmd.AddCommand(newsletterCheckCmd)
	rootCmd.AddCommand(newsletterCmd)
}

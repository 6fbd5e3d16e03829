package cli

import (
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/spf13/cobra"
)

func newReminderCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminder",
		Short: "Inspect or dismiss the daily reminder",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Print whether the reminder should be shown today",
			Args:  cobra.NoArgs,
			RunE: rt.withServices(func(cmd *cobra.Command, _ []string, svc *portssvc.ServiceContainer) error {
				printf(cmd.OutOrStdout(), "%s\n", svc.Reminder.State())
				return nil
			}),
		},
		&cobra.Command{
			Use:   "dismiss",
			Short: "Hide the reminder until tomorrow",
			Args:  cobra.NoArgs,
			RunE: rt.withServices(func(cmd *cobra.Command, _ []string, svc *portssvc.ServiceContainer) error {
				if err := svc.Reminder.Dismiss(cmd.Context()); err != nil {
					return err
				}
				printf(cmd.OutOrStdout(), "%s\n", svc.Reminder.State())
				return nil
			}),
		},
		&cobra.Command{
			Use:   "show",
			Short: "Show the reminder again for this session",
			Args:  cobra.NoArgs,
			RunE: rt.withServices(func(cmd *cobra.Command, _ []string, svc *portssvc.ServiceContainer) error {
				svc.Reminder.ForceShow()
				printf(cmd.OutOrStdout(), "%s\n", svc.Reminder.State())
				return nil
			}),
		},
	)
	return cmd
}

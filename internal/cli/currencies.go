package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/core/registry"
	"github.com/SscSPs/pocket_ledger/internal/utils"
	"github.com/spf13/cobra"
)

func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

func newRegistryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "registry",
		Short: "List every currency that can be configured",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			printf(tw, "CODE\tNAME\tSYMBOL\tREGION\tDECIMALS\n")
			for _, d := range registry.List() {
				printf(tw, "%s %s\t%s\t%s\t%s\t%d\n", d.Emoji, d.Code, d.DisplayName, d.Symbol, d.Region, d.Precision)
			}
			return tw.Flush()
		},
	}
}

func printCurrencies(cmd *cobra.Command, items []domain.CurrencyConfig) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	printf(tw, "CODE\tNAME\tRATE\tBASE\n")
	for _, c := range items {
		base := ""
		if c.IsBase {
			base = "*"
		}
		printf(tw, "%s\t%s\t%s\t%s\n", c.Code, c.DisplayName, strconv.FormatFloat(c.ExchangeRate, 'f', -1, 64), base)
	}
	return tw.Flush()
}

func newCurrenciesCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "currencies",
		Aliases: []string{"currency"},
		Short:   "Inspect and change the configured currency set",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List configured currencies",
			Args:  cobra.NoArgs,
			RunE: rt.withServices(func(cmd *cobra.Command, _ []string, svc *portssvc.ServiceContainer) error {
				return printCurrencies(cmd, svc.Currency.ListCurrencies(cmd.Context()))
			}),
		},
		&cobra.Command{
			Use:   "add <code> <rate>",
			Short: "Add a currency with its rate to the base currency",
			Args:  cobra.ExactArgs(2),
			RunE: rt.withServices(func(cmd *cobra.Command, args []string, svc *portssvc.ServiceContainer) error {
				rate, err := parseAmount(args[1])
				if err != nil {
					return err
				}
				added, err := svc.Currency.AddCurrency(cmd.Context(), args[0], rate)
				if err != nil {
					return err
				}
				printf(cmd.OutOrStdout(), "Added %s at %s\n", added.Code, strconv.FormatFloat(added.ExchangeRate, 'f', -1, 64))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "remove <code>",
			Short: "Remove a non-base currency",
			Args:  cobra.ExactArgs(1),
			RunE: rt.withServices(func(cmd *cobra.Command, args []string, svc *portssvc.ServiceContainer) error {
				if err := svc.Currency.RemoveCurrency(cmd.Context(), args[0]); err != nil {
					return err
				}
				printf(cmd.OutOrStdout(), "Removed %s\n", domain.NormalizeCurrencyCode(args[0]))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "rate <code> <rate>",
			Short: "Update the rate of a non-base currency",
			Args:  cobra.ExactArgs(2),
			RunE: rt.withServices(func(cmd *cobra.Command, args []string, svc *portssvc.ServiceContainer) error {
				rate, err := parseAmount(args[1])
				if err != nil {
					return err
				}
				updated, err := svc.Currency.UpdateExchangeRate(cmd.Context(), args[0], rate)
				if err != nil {
					return err
				}
				printf(cmd.OutOrStdout(), "%s is now %s\n", updated.Code, strconv.FormatFloat(updated.ExchangeRate, 'f', -1, 64))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "base <code>",
			Short: "Make a configured currency the base and rebase every rate",
			Args:  cobra.ExactArgs(1),
			RunE: rt.withServices(func(cmd *cobra.Command, args []string, svc *portssvc.ServiceContainer) error {
				items, err := svc.Currency.SetBaseCurrency(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printCurrencies(cmd, items)
			}),
		},
		&cobra.Command{
			Use:   "convert <amount> <code>",
			Short: "Convert an amount into the base currency",
			Args:  cobra.ExactArgs(2),
			RunE: rt.withServices(func(cmd *cobra.Command, args []string, svc *portssvc.ServiceContainer) error {
				amount, err := parseAmount(args[0])
				if err != nil {
					return err
				}
				ctx := cmd.Context()
				base := svc.Currency.CurrentBase(ctx).Code
				converted := svc.Currency.ConvertToBase(ctx, amount, args[1])
				printf(cmd.OutOrStdout(), "%s %s\n", utils.FormatWithCurrencyPrecision(converted, base), base)
				return nil
			}),
		},
	)
	return cmd
}

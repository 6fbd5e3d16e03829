package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/utils"
	"github.com/spf13/cobra"
)

func newReportCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show reports in the base currency",
	}

	summary := &cobra.Command{
		Use:   "summary",
		Short: "Income, expense, balance and the largest expense category",
		Args:  cobra.NoArgs,
		RunE: rt.withServices(func(cmd *cobra.Command, _ []string, svc *portssvc.ServiceContainer) error {
			s, err := svc.Reporting.Summary(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			money := func(v float64) string { return utils.FormatWithCurrencyPrecision(v, s.BaseCurrency) }
			printf(out, "Base currency: %s\n", s.BaseCurrency)
			printf(out, "Income:        %s\n", money(s.Totals.Income))
			printf(out, "Expense:       %s\n", money(s.Totals.Expense))
			printf(out, "Balance:       %s\n", money(s.Totals.Balance))
			printf(out, "Expenses:      %d (average %s)\n", s.Expenses.Count, money(s.Expenses.Mean))
			if s.LargestCategory != nil {
				printf(out, "Largest:       %s %s (%s)\n", s.LargestCategory.Category.Emoji, s.LargestCategory.Category.Name, money(s.LargestCategory.Total))
			}
			return nil
		}),
	}

	var kind string
	categories := &cobra.Command{
		Use:   "categories",
		Short: "Per-category totals, largest first",
		Args:  cobra.NoArgs,
		RunE: rt.withServices(func(cmd *cobra.Command, _ []string, svc *portssvc.ServiceContainer) error {
			k := domain.TransactionKind(kind)
			if kind != "" && !k.IsValid() {
				return fmt.Errorf("--kind must be expense or income, got %q", kind)
			}
			ctx := cmd.Context()
			stats, _, err := svc.Reporting.CategoryStats(ctx, k)
			if err != nil {
				return err
			}
			base := svc.Currency.CurrentBase(ctx).Code
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			printf(tw, "CATEGORY\tCOUNT\tTOTAL\n")
			for _, st := range stats {
				printf(tw, "%s %s\t%d\t%s\n", st.Category.Emoji, st.Category.Name, st.Count, utils.FormatWithCurrencyPrecision(st.Total, base))
			}
			return tw.Flush()
		}),
	}
	categories.Flags().StringVar(&kind, "kind", "", "expense or income (default both)")

	var limit int
	popular := &cobra.Command{
		Use:   "popular",
		Short: "Most used categories",
		Args:  cobra.NoArgs,
		RunE: rt.withServices(func(cmd *cobra.Command, _ []string, svc *portssvc.ServiceContainer) error {
			ranked, err := svc.Reporting.PopularCategories(cmd.Context(), limit)
			if err != nil {
				return err
			}
			for i, c := range ranked {
				printf(cmd.OutOrStdout(), "%d. %s %s\n", i+1, c.Emoji, c.Name)
			}
			return nil
		}),
	}
	popular.Flags().IntVar(&limit, "limit", 0, "how many categories (default 5)")

	cmd.AddCommand(summary, categories, popular)
	return cmd
}

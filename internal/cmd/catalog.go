package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jafarshop/weblarek/internal/domain"
	"github.com/jafarshop/weblarek/internal/view"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the storefront catalog",
	Args:  cobra.NoArgs,
	RunE:  runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	_, logger, client, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	products, err := client.GetProductList(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch catalog: %w", err)
	}

	return printProducts(cmd.OutOrStdout(), products)
}

// printProducts writes one row per product: id, category, price, title
func printProducts(w io.Writer, products []domain.Product) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tPRICE\tTITLE")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Category, view.FormatPrice(p.Price), p.Title)
	}
	return tw.Flush()
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jafarshop/weblarek/internal/domain"
)

var findCmd = &cobra.Command{
	Use:   "find <text>",
	Short: "Search the catalog by product id or title",
	Example: `  storefront find "таймер"
  storefront find 854cef69-976d-4c2a-a18c-2aa45046c390`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	_, logger, client, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	products, err := client.GetProductList(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch catalog: %w", err)
	}

	found := matchProducts(products, args[0])
	if len(found) == 0 {
		return fmt.Errorf("no product matches %q", args[0])
	}
	return printProducts(cmd.OutOrStdout(), found)
}

// matchProducts returns products whose id equals text or whose title contains
// it, ignoring case
func matchProducts(products []domain.Product, text string) []domain.Product {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return nil
	}

	var found []domain.Product
	for _, p := range products {
		if strings.EqualFold(p.ID, needle) || strings.Contains(strings.ToLower(p.Title), needle) {
			found = append(found, p)
		}
	}
	return found
}

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mwtrack/internal/services/catalog"
)

func productsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "products [query]",
		Short: "List the catalog, optionally filtered by name or code",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := appCtx.Catalog.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(args) == 1 {
				products = catalog.Search(products, args[0])
			}
			if len(products) == 0 {
				fmt.Println(appCtx.I18n.T("Producto no encontrado"))
				return nil
			}
			lang := appCtx.I18n.Language()
			for _, p := range products {
				fmt.Printf("%-6s %-10s %s  %s\n", p.ID, p.Code, p.Name, catalog.FormatPrice(p.Price, lang))
			}
			return nil
		},
	}
}

func productCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show a product with its variants and specifications",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := appCtx.Catalog.Detail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			lang := appCtx.I18n.Language()

			fmt.Printf("%s (%s)\n", p.Name, p.Code)
			fmt.Println(catalog.FormatPrice(p.Price, lang))
			fmt.Printf("image: %s\n", catalog.PrimaryImage(p.Files))
			if sheet, ok := catalog.Datasheet(p.Files); ok {
				fmt.Printf("datasheet: %s\n", sheet)
			}

			specs := catalog.Specifications(p.Product, lang)
			if len(specs) > 0 {
				fmt.Println()
				for _, s := range specs {
					fmt.Printf("  %s: %s\n", s.Label, s.Value)
				}
			}

			if len(p.Variants) > 0 {
				fmt.Println()
				labels := make([]string, 0, len(p.Variants))
				for _, v := range p.Variants {
					labels = append(labels, fmt.Sprintf("%s=%s", v.ID, catalog.VariantLabel(v)))
				}
				fmt.Printf("variants: %s\n", strings.Join(labels, "  "))
			}
			return nil
		},
	}
}

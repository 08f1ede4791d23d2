package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mwtrack/internal/services/orders"
)

func ordersCmd() *cobra.Command {
	var customers []string
	var listCustomers bool
	cmd := &cobra.Command{
		Use:   "orders [query]",
		Short: "List orders grouped by status",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := appCtx.I18n.T
			list, err := appCtx.Orders.List(cmd.Context())
			if err != nil {
				return err
			}
			if listCustomers {
				for _, c := range orders.Customers(list) {
					fmt.Println(c)
				}
				return nil
			}

			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			sections := orders.GroupByStatus(orders.Filter(list, query, customers))
			if len(sections) == 0 {
				fmt.Println(t("No tienes pedidos"))
				return nil
			}
			for _, s := range sections {
				fmt.Printf("%s (%d)\n", statusLabel(s.Status), len(s.Orders))
				for _, o := range s.Orders {
					fmt.Printf("  #%s  OC %s  %s  %s\n", o.Number, o.PurchaseOrder, o.ProductionDate, o.CustomerName)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&customers, "customer", nil, "only orders of these customers (repeatable)")
	cmd.Flags().BoolVar(&listCustomers, "customers", false, "list the customer names found in the orders")
	return cmd
}

// statusLabel translates each part of a compound status such as
// "Creación/Producción".
func statusLabel(status string) string {
	parts := strings.Split(status, "/")
	for i, p := range parts {
		parts[i] = appCtx.I18n.T(p)
	}
	return strings.Join(parts, "/")
}

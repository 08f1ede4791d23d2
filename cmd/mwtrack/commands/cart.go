package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"mwtrack/internal/domain"
	"mwtrack/internal/services/cart"
)

func cartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the cart grouped by product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := appCtx.Cart.Fetch(cmd.Context())
			if err != nil {
				return err
			}
			printCart(c)
			return nil
		},
	}
	cmd.AddCommand(cartCountCmd(), cartAddCmd(), cartUpdateCmd(), cartRemoveCmd(), cartCheckoutCmd())
	return cmd
}

func printCart(c domain.Cart) {
	t := appCtx.I18n.T
	if len(c.Items) == 0 {
		fmt.Println(t("Tu carrito está vacío"))
		return
	}
	for _, g := range cart.Group(c.Items) {
		fmt.Printf("%s %s  %s: %d  %s: $%.2f\n",
			g.Code, g.Name, t("Cantidad"), g.Quantity, t("Subtotal"), g.Subtotal)
		for _, it := range g.Items {
			size := it.VariantCode
			if len(it.Characteristics) > 0 {
				size = it.Characteristics[0].Value
			}
			fmt.Printf("  [%s] %s x%d  $%.2f\n", it.ProductID, size, it.Quantity, it.Subtotal)
		}
	}
	fmt.Printf("%s: $%.2f\n", t("Total"), c.Total)
}

func cartCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of units in the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(appCtx.Cart.Count(cmd.Context()))
			return nil
		},
	}
}

// parseQuantities reads variant=qty pairs.
func parseQuantities(args []string) (map[string]int, error) {
	out := make(map[string]int, len(args))
	for _, a := range args {
		id, raw, ok := strings.Cut(a, "=")
		if !ok || id == "" {
			return nil, fmt.Errorf("expected <variant>=<qty>, got %q", a)
		}
		qty, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("quantity for %s: %w", id, err)
		}
		out[id] += qty
	}
	return out, nil
}

func cartAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <variant>=<qty>...",
		Short: "Add product variants to the cart",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantities, err := parseQuantities(args)
			if err != nil {
				return err
			}
			added, err := appCtx.Cart.Add(cmd.Context(), quantities)
			if added > 0 {
				fmt.Printf("%s (%d)\n", appCtx.I18n.T("Productos agregados al carrito."), added)
			}
			return err
		},
	}
}

func reportSubmission(sub domain.Submission, done string) {
	if sub.Queued {
		fmt.Println("offline: change queued, it will be sent when the server is reachable")
		return
	}
	fmt.Println(appCtx.I18n.T(done))
}

func cartUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <variant> <qty>",
		Short: "Change the quantity of a cart line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("quantity: %w", err)
			}
			sub, err := appCtx.Cart.UpdateQuantity(cmd.Context(), args[0], qty)
			if err != nil {
				return err
			}
			reportSubmission(sub, "Éxito")
			if sub.Queued {
				printCachedLine(args[0])
			}
			return nil
		},
	}
}

// printCachedLine shows the cached cart line for variant and the cart total,
// both already repriced for the queued edit.
func printCachedLine(variant string) {
	c, ok, err := appCtx.Cart.Cached()
	if err != nil || !ok {
		return
	}
	t := appCtx.I18n.T
	for _, it := range c.Items {
		if it.ProductID == variant {
			fmt.Printf("  [%s] x%d  $%.2f\n", it.ProductID, it.Quantity, it.Subtotal)
		}
	}
	fmt.Printf("%s: $%.2f\n", t("Total"), c.Total)
}

func cartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <variant>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := appCtx.Cart.Remove(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			reportSubmission(sub, "Eliminado")
			return nil
		},
	}
}

func cartCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Turn the cart into an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := appCtx.Cart.Checkout(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(appCtx.I18n.T(msg))
			return nil
		},
	}
}

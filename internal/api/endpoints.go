package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"mwtrack/internal/domain"
)

// Login signs in with email and password and returns the user record.
func (c *Client) Login(ctx context.Context, email, password string) (domain.User, error) {
	env, err := c.call(ctx, EndpointLogin, "", map[string]any{
		"email":    email,
		"password": password,
	}, "Login failed")
	if err != nil {
		return domain.User{}, err
	}
	var u User
	if err := decodeData(env.Data, &u); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", EndpointLogin, err)
	}
	return u.toDomain(), nil
}

// Products lists the catalog visible to keyUser.
func (c *Client) Products(ctx context.Context, keyUser domain.KeyUser) ([]domain.Product, error) {
	env, err := c.call(ctx, EndpointProducts, keyUser, nil, "could not load products")
	if err != nil {
		return nil, err
	}
	var ps []Product
	if err := decodeData(env.Data, &ps); err != nil {
		return nil, fmt.Errorf("%s: %w", EndpointProducts, err)
	}
	out := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.toDomain().Product)
	}
	return out, nil
}

// ProductDetail fetches one product with its files and variants.
func (c *Client) ProductDetail(
	ctx context.Context,
	keyUser domain.KeyUser,
	productID string,
) (domain.ProductDetail, error) {
	env, err := c.call(ctx, EndpointProductDetail, keyUser, map[string]any{
		"product_id": productID,
	}, "Producto no encontrado")
	if err != nil {
		return domain.ProductDetail{}, err
	}
	var p Product
	if err := decodeData(env.Data, &p); err != nil {
		return domain.ProductDetail{}, fmt.Errorf("%s: %w", EndpointProductDetail, err)
	}
	return p.toDomain(), nil
}

// Cart reads the user's cart. Total is the sum of the item subtotals;
// ServerTotal is what the backend reported.
func (c *Client) Cart(ctx context.Context, keyUser domain.KeyUser) (domain.Cart, error) {
	env, err := c.call(ctx, EndpointCart, keyUser, nil, "No se pudo cargar el carrito")
	if err != nil {
		return domain.Cart{}, err
	}
	var lines []CartProduct
	if err := decodeData(env.Data, &lines); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", EndpointCart, err)
	}
	cart := domain.Cart{
		ID:          env.CartID.String(),
		Items:       make([]domain.CartItem, 0, len(lines)),
		ServerTotal: env.TotalAmount.Float(),
	}
	for _, l := range lines {
		it := l.toDomain()
		cart.Items = append(cart.Items, it)
		cart.Total += it.Subtotal
	}
	return cart, nil
}

// AddToCart adds quantity units of a variant and returns the cart id the
// backend assigned, which may be empty.
func (c *Client) AddToCart(
	ctx context.Context,
	keyUser domain.KeyUser,
	variantID string,
	quantity int,
) (string, error) {
	env, err := c.call(ctx, EndpointAddToCart, keyUser, map[string]any{
		"product_id": variantID,
		"quantity":   quantity,
	}, "Hubo un problema al agregar al carrito.")
	if err != nil {
		return "", err
	}
	return env.CartID.String(), nil
}

// Orders lists the user's orders.
func (c *Client) Orders(ctx context.Context, keyUser domain.KeyUser) ([]domain.Order, error) {
	env, err := c.call(ctx, EndpointOrders, keyUser, nil, "could not load orders")
	if err != nil {
		return nil, err
	}
	var rows []Order
	if err := decodeData(env.Data, &rows); err != nil {
		return nil, fmt.Errorf("%s: %w", EndpointOrders, err)
	}
	out := make([]domain.Order, len(rows))
	for i, o := range rows {
		out[i] = o.toDomain()
	}
	return out, nil
}

// TrackingLogs fetches recent tracking events. Logs whose id is not an
// integer are skipped.
func (c *Client) TrackingLogs(ctx context.Context, keyUser domain.KeyUser) ([]domain.TrackingLog, error) {
	const op = "Client.TrackingLogs"
	log := slog.With("op", op)

	env, err := c.call(ctx, EndpointMonitor, keyUser, nil, "could not load tracking logs")
	if err != nil {
		return nil, err
	}
	var ls []TrackingLog
	if err := decodeData(env.TrackingLogs, &ls); err != nil {
		return nil, fmt.Errorf("%s: %w", EndpointMonitor, err)
	}
	out := make([]domain.TrackingLog, 0, len(ls))
	for _, l := range ls {
		dl, ok := l.toDomain()
		if !ok {
			log.Warn("skipping tracking log with malformed id", "id", l.ID.String())
			continue
		}
		out = append(out, dl)
	}
	return out, nil
}

// decodeData unmarshals raw into out. Absent or null payloads leave out at
// its zero value.
func decodeData(raw json.RawMessage, out any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	return json.Unmarshal(raw, out)
}

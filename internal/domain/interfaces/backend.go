package interfaces

import (
	"context"

	domaintypes "mwtrack/internal/domain/types"
)

// Backend is how we talk to the remote storefront API, all with context.
type Backend interface {
	// NewCall builds a request for endpoint carrying the shared secret, the
	// user's key and fields. It does not send anything.
	NewCall(endpoint string, keyUser domaintypes.KeyUser, fields map[string]any) (domaintypes.Call, error)
	// Send performs call and decodes the response envelope.
	Send(ctx context.Context, call domaintypes.Call) (domaintypes.Envelope, error)
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	Login(ctx context.Context, email, password string) (domaintypes.User, error)
	Products(ctx context.Context, keyUser domaintypes.KeyUser) ([]domaintypes.Product, error)
	ProductDetail(
		ctx context.Context,
		keyUser domaintypes.KeyUser,
		productID string,
	) (domaintypes.ProductDetail, error)
	Cart(ctx context.Context, keyUser domaintypes.KeyUser) (domaintypes.Cart, error)
	AddToCart(
		ctx context.Context,
		keyUser domaintypes.KeyUser,
		variantID string,
		quantity int,
	) (cartID string, err error)
	Orders(ctx context.Context, keyUser domaintypes.KeyUser) ([]domaintypes.Order, error)
	TrackingLogs(ctx context.Context, keyUser domaintypes.KeyUser) ([]domaintypes.TrackingLog, error)
}

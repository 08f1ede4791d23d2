package mockapi_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mwtrack/internal/api"
	"mwtrack/internal/mockapi"
)

func newClient(t *testing.T, keyHash string) (*api.Client, *mockapi.Backend) {
	t.Helper()
	b := mockapi.New("k")
	b.Seed()
	srv := httptest.NewServer(b.Handler())
	t.Cleanup(srv.Close)
	return api.New(srv.URL, keyHash, srv.Client()), b
}

func TestLoginAndKeyHash(t *testing.T) {
	c, _ := newClient(t, "k")
	u, err := c.Login(t.Context(), mockapi.DemoEmail, mockapi.DemoPassword)
	require.NoError(t, err)
	assert.Equal(t, mockapi.DemoKeyUser, u.KeyUser)

	_, err = c.Login(t.Context(), mockapi.DemoEmail, "wrong")
	assert.Equal(t, "Credenciales incorrectas", api.Message(err, ""))

	bad, _ := newClient(t, "other")
	_, err = bad.Products(t.Context(), mockapi.DemoKeyUser)
	assert.Equal(t, "Acceso no autorizado", api.Message(err, ""))

	_, err = c.Products(t.Context(), "nobody")
	assert.Equal(t, "Usuario no válido", api.Message(err, ""))
}

func TestCartToOrder(t *testing.T) {
	c, b := newClient(t, "k")
	ctx := t.Context()
	ku := mockapi.DemoKeyUser

	_, err := c.Cart(ctx, ku)
	assert.Equal(t, "Carrito vacío", api.Message(err, ""))

	cartID, err := c.AddToCart(ctx, ku, "5011", 2)
	require.NoError(t, err)
	assert.Equal(t, "100", cartID)
	_, err = c.AddToCart(ctx, ku, "5011", 1)
	require.NoError(t, err)
	_, err = c.AddToCart(ctx, ku, "9999", 1)
	assert.Equal(t, "Producto no encontrado", api.Message(err, ""))

	cart, err := c.Cart(ctx, ku)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.InDelta(t, 145.5, cart.Total, 1e-9)
	assert.InDelta(t, cart.Total, cart.ServerTotal, 1e-9)

	call, err := c.NewCall(api.EndpointCheckout, ku, map[string]any{"cart_id": cartID})
	require.NoError(t, err)
	env, err := c.Send(ctx, call)
	require.NoError(t, err)
	assert.True(t, env.Success)
	assert.Empty(t, b.CartItems(ku))

	orders, err := c.Orders(ctx, ku)
	require.NoError(t, err)
	assert.Len(t, orders, 3)

	logs, err := c.TrackingLogs(ctx, ku)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, 3, logs[0].ID)
	assert.Equal(t, orders[2].Number, logs[0].OrderNumber)
}

func TestSetDown(t *testing.T) {
	c, b := newClient(t, "k")
	b.SetDown(true)

	_, err := c.Orders(t.Context(), mockapi.DemoKeyUser)
	var se *api.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusServiceUnavailable, se.Code)
	assert.Equal(t, 1, b.Calls(api.EndpointOrders))

	b.SetDown(false)
	_, err = c.Orders(t.Context(), mockapi.DemoKeyUser)
	require.NoError(t, err)
}

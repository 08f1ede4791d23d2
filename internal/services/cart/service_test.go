package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mwtrack/internal/api"
	"mwtrack/internal/mockapi"
	"mwtrack/internal/offline"
	"mwtrack/internal/services/auth"
	"mwtrack/internal/services/cart"
	"mwtrack/internal/store"
	"mwtrack/internal/testutil"
)

type fixture struct {
	env     *testutil.Env
	manager *offline.Manager
	svc     *cart.Service
}

func newFixture(t *testing.T) *fixture {
	env := testutil.NewEnv(t)
	sessions := auth.New(env.Client, env.Sessions, env.KV)
	manager := offline.NewManager(env.Client, sessions, offline.NewQueue(env.KV))
	return &fixture{
		env:     env,
		manager: manager,
		svc:     cart.New(env.Client, sessions, env.KV, manager),
	}
}

func TestFetch_EmptyAndSignedOut(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Fetch(t.Context())
	require.ErrorIs(t, err, auth.ErrNotSignedIn)
	assert.Zero(t, f.svc.Count(t.Context()))

	f.env.SignIn(t)
	c, err := f.svc.Fetch(t.Context())
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.Zero(t, f.svc.Count(t.Context()))

	_, ok, err := f.svc.CartID()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAdd(t *testing.T) {
	f := newFixture(t)
	f.env.SignIn(t)

	_, err := f.svc.Add(t.Context(), map[string]int{"5011": 0, "5012": -1})
	require.ErrorIs(t, err, cart.ErrNothingSelected)
	assert.Zero(t, f.env.Mock.Calls(api.EndpointAddToCart))

	added, err := f.svc.Add(t.Context(), map[string]int{"5012": 2, "5011": 1, "5013": 0})
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.Equal(t, 2, f.env.Mock.Calls(api.EndpointAddToCart))

	items := f.env.Mock.CartItems(mockapi.DemoKeyUser)
	require.Len(t, items, 2)
	assert.Equal(t, "5011", items[0].ProductID, "variants are added in id order")
	assert.Equal(t, "5012", items[1].ProductID)

	id, ok, err := f.svc.CartID()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "100", id)

	c, err := f.svc.Fetch(t.Context())
	require.NoError(t, err)
	assert.InDelta(t, 48.5*3, c.Total, 0.001)
	assert.InDelta(t, c.ServerTotal, c.Total, 0.001)
	assert.Equal(t, 3, f.svc.Count(t.Context()))
}

func TestAdd_PartialFailure(t *testing.T) {
	f := newFixture(t)
	f.env.SignIn(t)

	added, err := f.svc.Add(t.Context(), map[string]int{"5021": 1, "9999": 3})
	require.Error(t, err)
	assert.Equal(t, 1, added)

	var addErr *cart.AddError
	require.ErrorAs(t, err, &addErr)
	require.Contains(t, addErr.Failed, "9999")
	assert.Equal(t, "Producto no encontrado", api.Message(addErr.Failed["9999"], ""))

	// the successful variant is not rolled back
	assert.Len(t, f.env.Mock.CartItems(mockapi.DemoKeyUser), 1)
}

func TestUpdateQuantity(t *testing.T) {
	f := newFixture(t)
	f.env.SignIn(t)

	_, err := f.svc.UpdateQuantity(t.Context(), "5011", 2)
	require.ErrorIs(t, err, cart.ErrNoCart)

	_, err = f.svc.Add(t.Context(), map[string]int{"5011": 1})
	require.NoError(t, err)

	_, err = f.svc.UpdateQuantity(t.Context(), "5011", 0)
	require.ErrorIs(t, err, cart.ErrInvalidQuantity)

	sub, err := f.svc.UpdateQuantity(t.Context(), "5011", 4)
	require.NoError(t, err)
	assert.False(t, sub.Queued)
	assert.Equal(t, 4, f.svc.Count(t.Context()))

	_, err = f.svc.UpdateQuantity(t.Context(), "5099", 4)
	require.Error(t, err)
	assert.Equal(t, "Producto no encontrado en el carrito", api.Message(err, ""))
}

func TestUpdateQuantity_Offline(t *testing.T) {
	f := newFixture(t)
	f.env.SignIn(t)
	_, err := f.svc.Add(t.Context(), map[string]int{"5011": 1})
	require.NoError(t, err)

	_, ok, err := f.svc.Cached()
	require.NoError(t, err)
	assert.False(t, ok)
	_, err = f.svc.Fetch(t.Context())
	require.NoError(t, err)

	f.manager.SetOnline(false)
	sub, err := f.svc.UpdateQuantity(t.Context(), "5011", 9)
	require.NoError(t, err)
	assert.True(t, sub.Queued)
	assert.Equal(t, 1, f.env.Mock.CartItems(mockapi.DemoKeyUser)[0].Quantity)

	// the cached cart is repriced while the edit waits in the queue
	cached, ok, err := f.svc.Cached()
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, cached.Items, 1)
	assert.Equal(t, 9, cached.Items[0].Quantity)
	assert.InDelta(t, 48.5*9, cached.Items[0].Subtotal, 0.001)
	assert.InDelta(t, 48.5*9, cached.Total, 0.001)

	report, err := f.manager.Drain(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 9, f.env.Mock.CartItems(mockapi.DemoKeyUser)[0].Quantity)
}

func TestRemove(t *testing.T) {
	f := newFixture(t)
	f.env.SignIn(t)
	_, err := f.svc.Add(t.Context(), map[string]int{"5011": 1, "5021": 2})
	require.NoError(t, err)

	_, err = f.svc.Remove(t.Context(), "5011")
	require.NoError(t, err)
	items := f.env.Mock.CartItems(mockapi.DemoKeyUser)
	require.Len(t, items, 1)
	assert.Equal(t, "5021", items[0].ProductID)

	_, err = f.svc.Remove(t.Context(), "5011")
	require.Error(t, err)
	assert.Equal(t, "No se pudo eliminar", api.Message(err, ""))
}

func TestCheckout(t *testing.T) {
	f := newFixture(t)
	f.env.SignIn(t)

	_, err := f.svc.Checkout(t.Context())
	require.ErrorIs(t, err, cart.ErrNoCart)

	_, err = f.svc.Add(t.Context(), map[string]int{"5011": 2})
	require.NoError(t, err)
	_, err = f.svc.Remove(t.Context(), "5011")
	require.NoError(t, err)
	_, err = f.svc.Checkout(t.Context())
	require.ErrorIs(t, err, cart.ErrEmptyCart)

	_, err = f.svc.Add(t.Context(), map[string]int{"5021": 1})
	require.NoError(t, err)
	msg, err := f.svc.Checkout(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "Compra realizada con éxito", msg)
	assert.Empty(t, f.env.Mock.CartItems(mockapi.DemoKeyUser))

	_, ok, err := f.env.KV.Get(store.KeyCartID)
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = f.svc.Cached()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemove_OfflineDropsCachedLine(t *testing.T) {
	f := newFixture(t)
	f.env.SignIn(t)
	_, err := f.svc.Add(t.Context(), map[string]int{"5011": 1, "5021": 2})
	require.NoError(t, err)
	before, err := f.svc.Fetch(t.Context())
	require.NoError(t, err)

	f.manager.SetOnline(false)
	sub, err := f.svc.Remove(t.Context(), "5011")
	require.NoError(t, err)
	assert.True(t, sub.Queued)

	cached, ok, err := f.svc.Cached()
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, cached.Items, 1)
	assert.Equal(t, "5021", cached.Items[0].ProductID)
	assert.InDelta(t, before.Total-48.5, cached.Total, 0.001)
}

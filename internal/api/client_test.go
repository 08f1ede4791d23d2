package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mwtrack/internal/api"
	"mwtrack/internal/domain"
)

// serve answers every request with body and records the decoded request.
func serve(t *testing.T, status int, body string) (*api.Client, *map[string]any) {
	t.Helper()
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &got)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return api.New(srv.URL+"/", "secret", srv.Client()), &got
}

func TestNewCall(t *testing.T) {
	c := api.New("https://example.com/api/", "secret", nil)

	call, err := c.NewCall(api.EndpointAddToCart, "ku", map[string]any{"product_id": "5011", "quantity": 2})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, call.Method)
	assert.Equal(t, "https://example.com/api/agregarcart.php", call.URL)

	var body map[string]any
	require.NoError(t, json.Unmarshal(call.Body, &body))
	assert.Equal(t, "secret", body["keyhash"])
	assert.Equal(t, "ku", body["keyuser"])
	assert.Equal(t, "5011", body["product_id"])
	assert.EqualValues(t, 2, body["quantity"])

	call, err = c.NewCall(api.EndpointLogin, "", nil)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(call.Body, &body))
	assert.NotContains(t, string(call.Body), "keyuser")
}

func TestLogin(t *testing.T) {
	c, got := serve(t, http.StatusOK, `{"success":true,"data":{"id":12,"keyuser":"ku","name":"Ana","email":"a@b.c"}}`)

	u, err := c.Login(t.Context(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, domain.User{ID: "12", KeyUser: "ku", Name: "Ana", Email: "a@b.c"}, u)
	assert.Equal(t, "a@b.c", (*got)["email"])
	assert.Equal(t, "pw", (*got)["password"])
}

func TestRejectedEnvelope(t *testing.T) {
	t.Run("server message", func(t *testing.T) {
		c, _ := serve(t, http.StatusOK, `{"success":false,"message":"Credenciales incorrectas"}`)
		_, err := c.Login(t.Context(), "a@b.c", "bad")

		var apiErr *api.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, api.EndpointLogin, apiErr.Endpoint)
		assert.Equal(t, "Credenciales incorrectas", api.Message(err, "x"))
	})

	t.Run("fallback message", func(t *testing.T) {
		c, _ := serve(t, http.StatusOK, `{"success":false}`)
		_, err := c.Login(t.Context(), "a@b.c", "bad")
		assert.Equal(t, "Login failed", api.Message(err, "x"))
	})
}

func TestSend_StatusAndDecodeErrors(t *testing.T) {
	c, _ := serve(t, http.StatusServiceUnavailable, "down")
	_, err := c.Products(t.Context(), "ku")

	var se *api.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusServiceUnavailable, se.Code)
	assert.Equal(t, "/product.php", se.Path)
	assert.False(t, errors.Is(err, api.ErrUnreachable))
	assert.Equal(t, "fallback", api.Message(err, "fallback"))

	c, _ = serve(t, http.StatusOK, "<html>")
	_, err = c.Products(t.Context(), "ku")
	require.Error(t, err)
	assert.False(t, errors.Is(err, api.ErrUnreachable))
}

func TestUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := api.New(url, "secret", nil)
	_, err := c.Orders(t.Context(), "ku")
	require.ErrorIs(t, err, api.ErrUnreachable)
	require.ErrorIs(t, c.Ping(t.Context()), api.ErrUnreachable)
}

func TestPing_AnyResponse(t *testing.T) {
	c, _ := serve(t, http.StatusInternalServerError, "")
	require.NoError(t, c.Ping(t.Context()))
}

func TestCart_MixedNumberEncodings(t *testing.T) {
	c, _ := serve(t, http.StatusOK, `{
		"success": true,
		"cart_id": 100,
		"total_amount": "999.00",
		"data": [
			{"cart_product_id": "1", "product_id": 5011, "cart_product_quantity": "2",
			 "product_parent_id": 501, "product_code": "50B26", "product_sort_price": 48.5,
			 "variant_code": "50B26-38", "subtotal": "97.00",
			 "characteristics": [{"characteristic_id": 1, "characteristic_value": "38"}]},
			{"cart_product_id": 2, "product_id": "5021", "cart_product_quantity": "x",
			 "product_parent_id": "502", "product_sort_price": "35", "subtotal": null}
		]
	}`)

	cart, err := c.Cart(t.Context(), "ku")
	require.NoError(t, err)
	assert.Equal(t, "100", cart.ID)
	assert.InDelta(t, 999.0, cart.ServerTotal, 1e-9)
	assert.InDelta(t, 97.0, cart.Total, 1e-9)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, "5011", cart.Items[0].ProductID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "38", cart.Items[0].Characteristics[0].Value)
	assert.Equal(t, 0, cart.Items[1].Quantity)
	assert.InDelta(t, 35.0, cart.Items[1].UnitPrice, 1e-9)
}

func TestCart_NullData(t *testing.T) {
	c, _ := serve(t, http.StatusOK, `{"success":true,"data":null}`)
	cart, err := c.Cart(t.Context(), "ku")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
}

func TestTrackingLogs_SkipsMalformedIDs(t *testing.T) {
	c, _ := serve(t, http.StatusOK, `{"success":true,"tracking_logs":[
		{"id":"7","order_number":4100,"funcion_handler":"h","fecha_creacion":"2024-05-01"},
		{"id":"abc","order_number":"4101"},
		{"id":6,"order_number":"4101"}
	]}`)

	logs, err := c.TrackingLogs(t.Context(), "ku")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, 7, logs[0].ID)
	assert.Equal(t, domain.OrderNumber("4100"), logs[0].OrderNumber)
	assert.Equal(t, "2024-05-01", logs[0].CreatedAt)
	assert.Equal(t, 6, logs[1].ID)
}

func TestSend_Canceled(t *testing.T) {
	c, _ := serve(t, http.StatusOK, `{"success":true}`)
	call, err := c.NewCall(api.EndpointOrders, "ku", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err = c.Send(ctx, call)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, api.ErrUnreachable))
}

package mockapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"mwtrack/internal/api"
	"mwtrack/internal/domain"
	"mwtrack/internal/services/catalog"
)

type request struct {
	KeyHash   string      `json:"keyhash"`
	KeyUser   string      `json:"keyuser"`
	Email     string      `json:"email"`
	Password  string      `json:"password"`
	ProductID domain.Text `json:"product_id"`
	CartID    domain.Text `json:"cart_id"`
	Quantity  domain.Text `json:"quantity"`
}

type response struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	Data         any    `json:"data,omitempty"`
	CartID       string `json:"cart_id,omitempty"`
	TotalAmount  string `json:"total_amount,omitempty"`
	TrackingLogs any    `json:"tracking_logs,omitempty"`
}

type handlerFunc func(req request, user domain.User) response

// Handler returns the HTTP router serving the mock endpoints.
func (b *Backend) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodHead, http.MethodGet)

	r.Handle("/"+api.EndpointLogin+".php", b.endpoint(api.EndpointLogin, false, b.login)).Methods(http.MethodPost)
	r.Handle("/"+api.EndpointProducts+".php", b.endpoint(api.EndpointProducts, true, b.listProducts)).Methods(http.MethodPost)
	r.Handle("/"+api.EndpointProductDetail+".php", b.endpoint(api.EndpointProductDetail, true, b.productDetail)).Methods(http.MethodPost)
	r.Handle("/"+api.EndpointCart+".php", b.endpoint(api.EndpointCart, true, b.getCart)).Methods(http.MethodPost)
	r.Handle("/"+api.EndpointAddToCart+".php", b.endpoint(api.EndpointAddToCart, true, b.addToCart)).Methods(http.MethodPost)
	r.Handle("/"+api.EndpointUpdateCart+".php", b.endpoint(api.EndpointUpdateCart, true, b.updateCart)).Methods(http.MethodPost)
	r.Handle("/"+api.EndpointRemoveFromCart+".php", b.endpoint(api.EndpointRemoveFromCart, true, b.removeFromCart)).Methods(http.MethodPost)
	r.Handle("/"+api.EndpointCheckout+".php", b.endpoint(api.EndpointCheckout, true, b.checkout)).Methods(http.MethodPost)
	r.Handle("/"+api.EndpointOrders+".php", b.endpoint(api.EndpointOrders, true, b.listOrders)).Methods(http.MethodPost)
	r.Handle("/"+api.EndpointMonitor+".php", b.endpoint(api.EndpointMonitor, true, b.monitor)).Methods(http.MethodPost)
	return r
}

// endpoint decodes the request, checks credentials and serializes the
// response. State is locked for the duration of h.
func (b *Backend) endpoint(name string, authed bool, h handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()

		b.calls[name]++
		if b.down {
			http.Error(w, "service unavailable", http.StatusServiceUnavailable)
			return
		}

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON data", http.StatusBadRequest)
			return
		}

		var resp response
		var user domain.User
		switch {
		case req.KeyHash != b.keyHash:
			resp = fail("Acceso no autorizado")
		case authed:
			u, ok := b.userByKey(domain.KeyUser(req.KeyUser))
			if !ok {
				resp = fail("Usuario no válido")
				break
			}
			user = u
			resp = h(req, user)
		default:
			resp = h(req, user)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})
}

func fail(msg string) response { return response{Success: false, Message: msg} }

func (b *Backend) login(req request, _ domain.User) response {
	a, ok := b.accounts[req.Email]
	if !ok || a.password != req.Password {
		return fail("Credenciales incorrectas")
	}
	return response{Success: true, Data: api.UserFromDomain(a.user)}
}

func (b *Backend) listProducts(request, domain.User) response {
	out := make([]api.Product, 0, len(b.products))
	for _, p := range b.products {
		wire := api.ProductFromDomain(p)
		wire.Variants = nil
		out = append(out, wire)
	}
	return response{Success: true, Data: out}
}

func (b *Backend) productDetail(req request, _ domain.User) response {
	for _, p := range b.products {
		if p.ID == req.ProductID.String() {
			return response{Success: true, Data: api.ProductFromDomain(p)}
		}
	}
	return fail("Producto no encontrado")
}

func (b *Backend) getCart(_ request, user domain.User) response {
	c, ok := b.carts[user.KeyUser]
	if !ok {
		return fail("Carrito vacío")
	}
	lines := make([]api.CartProduct, len(c.items))
	for i, it := range c.items {
		lines[i] = api.CartProductFromDomain(it)
	}
	return response{
		Success:     true,
		Data:        lines,
		CartID:      c.id,
		TotalAmount: strconv.FormatFloat(c.total(), 'f', 2, 64),
	}
}

func (b *Backend) addToCart(req request, user domain.User) response {
	qty, err := req.Quantity.Int()
	if err != nil || qty < 1 {
		return fail("Cantidad inválida")
	}
	p, v, ok := b.findVariant(req.ProductID.String())
	if !ok {
		return fail("Producto no encontrado")
	}

	c, ok := b.carts[user.KeyUser]
	if !ok {
		c = &cart{id: b.newCartID()}
		b.carts[user.KeyUser] = c
	}
	for i := range c.items {
		if c.items[i].ProductID == v.ID {
			c.items[i].Quantity += qty
			c.items[i].Subtotal = c.items[i].UnitPrice * float64(c.items[i].Quantity)
			return response{Success: true, Message: "Producto agregado", CartID: c.id}
		}
	}
	c.items = append(c.items, domain.CartItem{
		CartProductID:   strconv.Itoa(len(c.items) + 1),
		ProductID:       v.ID,
		ParentID:        p.ID,
		Type:            "variant",
		Name:            p.Name,
		Code:            p.Code,
		VariantCode:     v.Code,
		Image:           catalog.PrimaryImage(p.Files),
		UnitPrice:       p.Price,
		Quantity:        qty,
		Subtotal:        p.Price * float64(qty),
		Characteristics: v.Characteristics,
	})
	return response{Success: true, Message: "Producto agregado", CartID: c.id}
}

// cartFor returns the user's cart when cartID matches it.
func (b *Backend) cartFor(user domain.User, cartID domain.Text) (*cart, bool) {
	c, ok := b.carts[user.KeyUser]
	if !ok || c.id != cartID.String() {
		return nil, false
	}
	return c, true
}

func (b *Backend) updateCart(req request, user domain.User) response {
	c, ok := b.cartFor(user, req.CartID)
	if !ok {
		return fail("Carrito no encontrado")
	}
	qty, err := req.Quantity.Int()
	if err != nil || qty < 1 {
		return fail("No se pudo actualizar la cantidad")
	}
	for i := range c.items {
		if c.items[i].ProductID == req.ProductID.String() {
			c.items[i].Quantity = qty
			c.items[i].Subtotal = c.items[i].UnitPrice * float64(qty)
			return response{Success: true, Message: "Cantidad actualizada"}
		}
	}
	return fail("Producto no encontrado en el carrito")
}

func (b *Backend) removeFromCart(req request, user domain.User) response {
	c, ok := b.cartFor(user, req.CartID)
	if !ok {
		return fail("Carrito no encontrado")
	}
	for i := range c.items {
		if c.items[i].ProductID == req.ProductID.String() {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return response{Success: true, Message: "Producto eliminado del carrito"}
		}
	}
	return fail("No se pudo eliminar")
}

func (b *Backend) checkout(req request, user domain.User) response {
	c, ok := b.cartFor(user, req.CartID)
	if !ok {
		return fail("No se encontró información del carrito")
	}
	if len(c.items) == 0 {
		return fail("Agrega productos antes de comprar")
	}
	number := domain.OrderNumber(strconv.Itoa(b.nextOrder))
	b.nextOrder++
	b.orders[user.KeyUser] = append(b.orders[user.KeyUser], domain.Order{
		ID:             string(number),
		Number:         number,
		Status:         "confirmed",
		ProductionDate: time.Now().Format(time.DateOnly),
		CustomerName:   user.Name,
	})
	b.appendLogLocked(user.KeyUser, number, "order_created")
	delete(b.carts, user.KeyUser)
	slog.Debug("mock checkout", "order", number, "user", user.ID)
	return response{Success: true, Message: "Compra realizada con éxito"}
}

func (b *Backend) listOrders(_ request, user domain.User) response {
	orders := b.orders[user.KeyUser]
	out := make([]api.Order, len(orders))
	for i, o := range orders {
		out[i] = api.OrderFromDomain(o)
	}
	return response{Success: true, Data: out}
}

func (b *Backend) monitor(_ request, user domain.User) response {
	logs := b.logsDescending(user.KeyUser)
	out := make([]api.TrackingLog, len(logs))
	for i, l := range logs {
		out[i] = api.TrackingLogFromDomain(l)
	}
	return response{Success: true, TrackingLogs: out}
}

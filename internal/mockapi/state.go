package mockapi

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"mwtrack/internal/domain"
)

type account struct {
	password string
	user     domain.User
}

type cart struct {
	id    string
	items []domain.CartItem
}

func (c *cart) total() float64 {
	var t float64
	for _, it := range c.items {
		t += it.Subtotal
	}
	return t
}

// Backend holds the in-memory state behind the mock endpoints.
type Backend struct {
	keyHash string

	mu         sync.Mutex
	accounts   map[string]account // by email
	products   []domain.ProductDetail
	carts      map[domain.KeyUser]*cart
	orders     map[domain.KeyUser][]domain.Order
	logs       map[domain.KeyUser][]domain.TrackingLog
	calls      map[string]int
	nextCartID int
	nextOrder  int
	nextLogID  int
	down       bool
}

// New returns an empty Backend accepting keyHash.
func New(keyHash string) *Backend {
	return &Backend{
		keyHash:    keyHash,
		accounts:   make(map[string]account),
		carts:      make(map[domain.KeyUser]*cart),
		orders:     make(map[domain.KeyUser][]domain.Order),
		logs:       make(map[domain.KeyUser][]domain.TrackingLog),
		calls:      make(map[string]int),
		nextCartID: 100,
		nextOrder:  5000,
		nextLogID:  1,
	}
}

// AddUser registers an account that can sign in with email and password.
func (b *Backend) AddUser(email, password string, u domain.User) {
	b.mu.Lock()
	defer b.mu.Unlock()
	u.Email = email
	b.accounts[email] = account{password: password, user: u}
}

// AddProduct adds a product to the catalog.
func (b *Backend) AddProduct(p domain.ProductDetail) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.products = append(b.products, p)
}

// AddOrder records an order for keyUser.
func (b *Backend) AddOrder(keyUser domain.KeyUser, o domain.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.orders[keyUser] = append(b.orders[keyUser], o)
}

// AppendTrackingLog records a new tracking event for an order of keyUser
// and returns it.
func (b *Backend) AppendTrackingLog(keyUser domain.KeyUser, order domain.OrderNumber, handler string) domain.TrackingLog {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.appendLogLocked(keyUser, order, handler)
}

func (b *Backend) appendLogLocked(keyUser domain.KeyUser, order domain.OrderNumber, handler string) domain.TrackingLog {
	l := domain.TrackingLog{
		ID:             b.nextLogID,
		OrderNumber:    order,
		Handler:        handler,
		ResponseStatus: "200",
		CreatedAt:      fmt.Sprintf("2025-01-01 00:00:%02d", b.nextLogID%60),
	}
	b.nextLogID++
	b.logs[keyUser] = append(b.logs[keyUser], l)
	return l
}

// CartItems returns a copy of keyUser's cart lines.
func (b *Backend) CartItems(keyUser domain.KeyUser) []domain.CartItem {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.carts[keyUser]
	if !ok {
		return nil
	}
	return append([]domain.CartItem(nil), c.items...)
}

// Calls reports how many requests reached endpoint.
func (b *Backend) Calls(endpoint string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[endpoint]
}

// SetDown toggles the simulated outage.
func (b *Backend) SetDown(down bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.down = down
}

func (b *Backend) userByKey(keyUser domain.KeyUser) (domain.User, bool) {
	for _, a := range b.accounts {
		if a.user.KeyUser == keyUser {
			return a.user, true
		}
	}
	return domain.User{}, false
}

// findVariant returns the product owning variantID.
func (b *Backend) findVariant(variantID string) (domain.ProductDetail, domain.Variant, bool) {
	for _, p := range b.products {
		for _, v := range p.Variants {
			if v.ID == variantID {
				return p, v, true
			}
		}
	}
	return domain.ProductDetail{}, domain.Variant{}, false
}

func (b *Backend) newCartID() string {
	id := strconv.Itoa(b.nextCartID)
	b.nextCartID++
	return id
}

// logsDescending returns keyUser's logs newest first, as the backend does.
func (b *Backend) logsDescending(keyUser domain.KeyUser) []domain.TrackingLog {
	out := append([]domain.TrackingLog(nil), b.logs[keyUser]...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

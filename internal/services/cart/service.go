package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"mwtrack/internal/api"
	"mwtrack/internal/domain"
	"mwtrack/internal/store"
)

var (
	// ErrInvalidQuantity is returned for a quantity below one.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrNoCart is returned when no cart id is known yet.
	ErrNoCart = errors.New("no cart information found")
	// ErrEmptyCart is returned when checking out a cart with no items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNothingSelected is returned by Add when no quantity is positive.
	ErrNothingSelected = errors.New("select at least one quantity")
)

// Service reads and edits the cart.
type Service struct {
	backend   domain.Backend
	sessions  domain.SessionService
	kv        domain.KeyValueStore
	submitter domain.Submitter
}

// New returns a cart service. Edits are sent through submitter.
func New(
	backend domain.Backend,
	sessions domain.SessionService,
	kv domain.KeyValueStore,
	submitter domain.Submitter,
) *Service {
	return &Service{backend: backend, sessions: sessions, kv: kv, submitter: submitter}
}

// Fetch reads the cart and remembers its id. A cart the backend reports as
// unsuccessful is returned empty.
func (s *Service) Fetch(ctx context.Context) (domain.Cart, error) {
	const op = "cart.Fetch"
	log := slog.With("op", op)

	user, err := s.sessions.Current()
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	c, err := s.backend.Cart(ctx, user.KeyUser)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			log.Debug("backend has no cart", "message", apiErr.Message)
			if err := s.kv.Delete(store.KeyCartSnapshot); err != nil {
				return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
			}
			return domain.Cart{}, nil
		}
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.rememberCartID(c.ID); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := store.SetJSON(s.kv, store.KeyCartSnapshot, c); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// Cached returns the cart as last fetched, with queued edits applied. It
// reports false when the cart was never fetched.
func (s *Service) Cached() (domain.Cart, bool, error) {
	var c domain.Cart
	ok, err := store.GetJSON(s.kv, store.KeyCartSnapshot, &c)
	if err != nil {
		return domain.Cart{}, false, fmt.Errorf("cart.Cached: %w", err)
	}
	return c, ok, nil
}

// applyQueued updates the cached cart with an edit that was queued, so it
// shows before the backend confirms it.
func (s *Service) applyQueued(edit func([]domain.CartItem) ([]domain.CartItem, float64)) error {
	c, ok, err := s.Cached()
	if err != nil || !ok {
		return err
	}
	c.Items, c.Total = edit(c.Items)
	return store.SetJSON(s.kv, store.KeyCartSnapshot, c)
}

// Count returns the number of units in the cart. It is 0 when nobody is
// signed in or the cart cannot be read.
func (s *Service) Count(ctx context.Context) int {
	c, err := s.Fetch(ctx)
	if err != nil {
		slog.Debug("cart count unavailable", "op", "cart.Count", "err", err)
		return 0
	}
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// CartID returns the remembered cart id.
func (s *Service) CartID() (string, bool, error) {
	id, ok, err := s.kv.Get(store.KeyCartID)
	if err != nil || !ok || id == "" {
		return "", false, err
	}
	return id, true, nil
}

// AddError reports the variants that could not be added.
type AddError struct {
	Failed map[string]error
}

func (e *AddError) Error() string {
	return fmt.Sprintf("%d variant(s) could not be added: %v", len(e.Failed), e.Unwrap())
}

// Unwrap returns the joined per-variant errors.
func (e *AddError) Unwrap() error {
	ids := make([]string, 0, len(e.Failed))
	for id := range e.Failed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	errs := make([]error, len(ids))
	for i, id := range ids {
		errs[i] = fmt.Errorf("variant %s: %w", id, e.Failed[id])
	}
	return errors.Join(errs...)
}

// Add adds each variant with a positive quantity, one request at a time in
// variant id order. Variants already added stay in the cart when a later
// one fails. It returns the number of variants added.
func (s *Service) Add(ctx context.Context, quantities map[string]int) (int, error) {
	const op = "cart.Add"
	log := slog.With("op", op)

	ids := make([]string, 0, len(quantities))
	for id, qty := range quantities {
		if qty > 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return 0, ErrNothingSelected
	}
	sort.Strings(ids)

	user, err := s.sessions.Current()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	added := 0
	failed := make(map[string]error)
	for _, id := range ids {
		cartID, err := s.backend.AddToCart(ctx, user.KeyUser, id, quantities[id])
		if err != nil {
			if ctx.Err() != nil {
				return added, fmt.Errorf("%s: %w", op, ctx.Err())
			}
			log.Warn("variant not added", "variant", id, "err", err)
			failed[id] = err
			continue
		}
		added++
		if err := s.rememberCartID(cartID); err != nil {
			return added, fmt.Errorf("%s: %w", op, err)
		}
	}
	if len(failed) > 0 {
		return added, &AddError{Failed: failed}
	}
	return added, nil
}

// UpdateQuantity sets the quantity of one cart line. The edit may be queued
// when the backend is unreachable.
func (s *Service) UpdateQuantity(ctx context.Context, productID string, qty int) (domain.Submission, error) {
	const op = "cart.UpdateQuantity"

	if qty < 1 {
		return domain.Submission{}, ErrInvalidQuantity
	}
	sub, err := s.edit(ctx, op, api.EndpointUpdateCart, "No se pudo actualizar la cantidad", map[string]any{
		"product_id": productID,
		"quantity":   qty,
	})
	if err != nil || !sub.Queued {
		return sub, err
	}
	err = s.applyQueued(func(items []domain.CartItem) ([]domain.CartItem, float64) {
		return Reprice(items, productID, qty)
	})
	if err != nil {
		return sub, fmt.Errorf("%s: %w", op, err)
	}
	return sub, nil
}

// Remove deletes one cart line. The edit may be queued when the backend is
// unreachable.
func (s *Service) Remove(ctx context.Context, productID string) (domain.Submission, error) {
	const op = "cart.Remove"

	sub, err := s.edit(ctx, op, api.EndpointRemoveFromCart, "No se pudo eliminar", map[string]any{
		"product_id": productID,
	})
	if err != nil || !sub.Queued {
		return sub, err
	}
	err = s.applyQueued(func(items []domain.CartItem) ([]domain.CartItem, float64) {
		kept := make([]domain.CartItem, 0, len(items))
		for _, it := range items {
			if it.ProductID != productID {
				kept = append(kept, it)
			}
		}
		return kept, Total(kept)
	})
	if err != nil {
		return sub, fmt.Errorf("%s: %w", op, err)
	}
	return sub, nil
}

// Checkout turns the cart into an order. It returns the backend's message.
func (s *Service) Checkout(ctx context.Context) (string, error) {
	const op = "cart.Checkout"
	log := slog.With("op", op)

	user, cartID, err := s.target()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	c, err := s.Fetch(ctx)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if len(c.Items) == 0 {
		return "", ErrEmptyCart
	}

	call, err := s.backend.NewCall(api.EndpointCheckout, user.KeyUser, map[string]any{"cart_id": cartID})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	env, err := s.backend.Send(ctx, call)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if !env.Success {
		return "", fmt.Errorf("%s: %w", op, rejected(api.EndpointCheckout, env, "No se pudo completar la compra"))
	}
	if err := s.kv.Delete(store.KeyCartID, store.KeyCartSnapshot); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	msg := env.Message
	if msg == "" {
		msg = "Compra realizada con éxito"
	}
	log.Info("checked out", "cart_id", cartID)
	return msg, nil
}

func (s *Service) edit(
	ctx context.Context,
	op, endpoint, fallback string,
	fields map[string]any,
) (domain.Submission, error) {
	user, cartID, err := s.target()
	if err != nil {
		return domain.Submission{}, fmt.Errorf("%s: %w", op, err)
	}
	fields["cart_id"] = cartID

	call, err := s.backend.NewCall(endpoint, user.KeyUser, fields)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("%s: %w", op, err)
	}
	sub, err := s.submitter.Submit(ctx, call)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("%s: %w", op, err)
	}
	if !sub.Queued && !sub.Envelope.Success {
		return sub, fmt.Errorf("%s: %w", op, rejected(endpoint, sub.Envelope, fallback))
	}
	return sub, nil
}

// target returns the signed-in user and the remembered cart id.
func (s *Service) target() (domain.User, string, error) {
	user, err := s.sessions.Current()
	if err != nil {
		return domain.User{}, "", err
	}
	cartID, ok, err := s.CartID()
	if err != nil {
		return domain.User{}, "", err
	}
	if !ok {
		return domain.User{}, "", ErrNoCart
	}
	return user, cartID, nil
}

func (s *Service) rememberCartID(id string) error {
	if id == "" {
		return nil
	}
	return s.kv.Set(store.KeyCartID, id)
}

func rejected(endpoint string, env domain.Envelope, fallback string) error {
	msg := env.Message
	if msg == "" {
		msg = fallback
	}
	return &api.Error{Endpoint: endpoint, Message: msg}
}

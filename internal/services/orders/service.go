package orders

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"mwtrack/internal/domain"
)

// Normalized order statuses, in display order.
const (
	StatusCreation = "Creación/Producción"
	StatusDispatch = "Preparación/Despacho"
	StatusTransit  = "Tránsito"
	StatusPaid     = "Pagado"
	StatusOther    = "Otros"
)

var statusOrder = []string{StatusCreation, StatusDispatch, StatusTransit, StatusPaid, StatusOther}

var statuses = map[string]string{
	"credito":     StatusCreation,
	"confirmed":   StatusCreation,
	"produccion":  StatusCreation,
	"transito":    StatusTransit,
	"preparacion": StatusDispatch,
	"despacho":    StatusDispatch,
	"pagado":      StatusPaid,
}

// Service reads orders for the signed-in user.
type Service struct {
	backend  domain.Backend
	sessions domain.SessionService
}

// New returns an orders service.
func New(backend domain.Backend, sessions domain.SessionService) *Service {
	return &Service{backend: backend, sessions: sessions}
}

// List fetches the signed-in user's orders.
func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	const op = "orders.List"

	user, err := s.sessions.Current()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	orders, err := s.backend.Orders(ctx, user.KeyUser)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return orders, nil
}

// NormalizeStatus maps a backend status onto one of the display groups.
func NormalizeStatus(status string) string {
	if s, ok := statuses[strings.ToLower(strings.TrimSpace(status))]; ok {
		return s
	}
	return StatusOther
}

// Filter keeps the orders matching query and, when customers is not empty,
// belonging to one of customers. The query is matched case-insensitively
// against the order number, purchase order, SAP numbers and customer name.
func Filter(orders []domain.Order, query string, customers []string) []domain.Order {
	q := strings.ToLower(strings.TrimSpace(query))
	allowed := make(map[string]struct{}, len(customers))
	for _, c := range customers {
		allowed[c] = struct{}{}
	}

	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if q != "" && !matches(o, q) {
			continue
		}
		if len(allowed) > 0 {
			if _, ok := allowed[o.CustomerName]; !ok || o.CustomerName == "" {
				continue
			}
		}
		out = append(out, o)
	}
	return out
}

func matches(o domain.Order, q string) bool {
	for _, field := range []string{
		string(o.Number),
		o.PurchaseOrder,
		o.SAPPreformaR,
		o.SAPPreforma,
		o.SAPPreformaMWT,
		o.CustomerName,
	} {
		if field != "" && strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// GroupByStatus splits orders into one section per normalized status, in
// display order. Empty sections are left out.
func GroupByStatus(orders []domain.Order) []domain.OrderSection {
	byStatus := make(map[string][]domain.Order)
	for _, o := range orders {
		s := NormalizeStatus(o.Status)
		byStatus[s] = append(byStatus[s], o)
	}
	var sections []domain.OrderSection
	for _, s := range statusOrder {
		if len(byStatus[s]) > 0 {
			sections = append(sections, domain.OrderSection{Status: s, Orders: byStatus[s]})
		}
	}
	return sections
}

// Customers returns the distinct non-empty customer names, sorted.
func Customers(orders []domain.Order) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, o := range orders {
		if o.CustomerName == "" {
			continue
		}
		if _, ok := seen[o.CustomerName]; ok {
			continue
		}
		seen[o.CustomerName] = struct{}{}
		out = append(out, o.CustomerName)
	}
	sort.Strings(out)
	return out
}

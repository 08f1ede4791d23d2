package cart

import "mwtrack/internal/domain"

// Group folds cart lines by product code, keeping the order in which codes
// first appear. Each group sums its quantity and subtotal.
func Group(items []domain.CartItem) []domain.CartGroup {
	var groups []domain.CartGroup
	index := make(map[string]int)
	for _, it := range items {
		i, ok := index[it.Code]
		if !ok {
			i = len(groups)
			index[it.Code] = i
			groups = append(groups, domain.CartGroup{
				Code:     it.Code,
				Name:     it.Name,
				Image:    it.Image,
				ParentID: it.ParentID,
			})
		}
		g := &groups[i]
		g.Quantity += it.Quantity
		g.Subtotal += it.Subtotal
		g.Items = append(g.Items, it)
	}
	return groups
}

// Reprice returns a copy of items with productID set to qty and its subtotal
// recomputed, together with the new total. It is used to show an edit before
// the backend confirms it. A qty below one leaves the items unchanged.
func Reprice(items []domain.CartItem, productID string, qty int) ([]domain.CartItem, float64) {
	out := make([]domain.CartItem, len(items))
	var total float64
	for i, it := range items {
		if it.ProductID == productID && qty >= 1 {
			it.Quantity = qty
			it.Subtotal = it.UnitPrice * float64(qty)
		}
		out[i] = it
		total += it.Subtotal
	}
	return out, total
}

// Total sums the subtotals of items.
func Total(items []domain.CartItem) float64 {
	var t float64
	for _, it := range items {
		t += it.Subtotal
	}
	return t
}

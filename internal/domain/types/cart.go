package types

// CartItem is one product variant in the cart.
type CartItem struct {
	CartProductID   string
	ProductID       string
	ParentID        string
	Type            string
	Name            string
	Code            string
	VariantCode     string
	Image           string
	UnitPrice       float64
	Quantity        int
	Subtotal        float64
	Characteristics []Characteristic
}

// Cart is the server-side cart of the signed-in user.
type Cart struct {
	ID    string
	Items []CartItem
	// Total is the sum of item subtotals.
	Total float64
	// ServerTotal is the total_amount reported by the backend.
	ServerTotal float64
}

// CartGroup aggregates the variants of one product code.
type CartGroup struct {
	Code     string
	Name     string
	Image    string
	ParentID string
	Quantity int
	Subtotal float64
	Items    []CartItem
}

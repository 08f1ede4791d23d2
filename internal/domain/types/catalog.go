package types

// ProductFile is an image or document attached to a product.
type ProductFile struct {
	ID   string
	URL  string
	Type string
}

// Attributes are the footwear specification fields of a product. Any of them
// may be empty.
type Attributes struct {
	Calzado               string
	Puntera               string
	Antiperforante        string
	Metatarsal            string
	Capellado             string
	Suela                 string
	Disipativo            string
	Color                 string
	Cierre                string
	Normativa             string
	Segmento              string
	Riesgo                string
	ComponentesReciclados string
	Cubrepuntera          string
	Plantilla             string
}

// Product is a catalog entry.
type Product struct {
	ID         string
	Name       string
	Code       string
	Price      float64
	Attributes Attributes
	Files      []ProductFile
}

// Characteristic describes one axis of a variant, such as its size.
type Characteristic struct {
	ID    string
	Value string
	Alias string
}

// Variant is an orderable SKU of a product. Its ID is the product id used
// by the cart endpoints.
type Variant struct {
	ID              string
	Code            string
	Characteristics []Characteristic
}

// ProductDetail is a product together with its orderable variants.
type ProductDetail struct {
	Product
	Variants []Variant
}

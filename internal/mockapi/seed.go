package mockapi

import "mwtrack/internal/domain"

// Demo credentials installed by Seed.
const (
	DemoEmail    = "compras@example.com"
	DemoPassword = "demo"
	DemoKeyUser  = domain.KeyUser("demo-keyuser")
)

// Seed installs a demo account, a small catalog and two orders with
// tracking history.
func (b *Backend) Seed() {
	b.AddUser(DemoEmail, DemoPassword, domain.User{
		ID:          "12",
		KeyUser:     DemoKeyUser,
		Name:        "Compras Demo",
		GroupTitles: []string{"Cliente"},
	})

	b.AddProduct(domain.ProductDetail{
		Product: domain.Product{
			ID:    "501",
			Name:  "Bota Marluvas 50B26",
			Code:  "50B26-BP",
			Price: 48.5,
			Attributes: domain.Attributes{
				Calzado:   "Bota al Tobillo",
				Puntera:   "Composite 200J",
				Capellado: "Cuero Plena Flor",
				Suela:     "Bidensidad PU",
				Color:     "Negro",
				Cierre:    "Con Cordones",
				Normativa: "ISO 20345",
				Segmento:  "Construccin",
				Riesgo:    "Cada Objetos",
			},
			Files: []domain.ProductFile{
				{ID: "1", URL: "https://cdn.example.com/50B26.png", Type: "product"},
				{ID: "2", URL: "https://cdn.example.com/50B26.pdf", Type: "pdf"},
			},
		},
		Variants: []domain.Variant{
			{ID: "5011", Code: "50B26-38", Characteristics: []domain.Characteristic{{ID: "1", Value: "38", Alias: "talla"}}},
			{ID: "5012", Code: "50B26-40", Characteristics: []domain.Characteristic{{ID: "1", Value: "40", Alias: "talla"}}},
			{ID: "5013", Code: "50B26-42", Characteristics: []domain.Characteristic{{ID: "1", Value: "42", Alias: "talla"}}},
		},
	})

	b.AddProduct(domain.ProductDetail{
		Product: domain.Product{
			ID:    "502",
			Name:  "Zapato Dielectrico 10VR",
			Code:  "10VR-ZD",
			Price: 35,
			Attributes: domain.Attributes{
				Calzado:    "Zapato o Tenis",
				Puntera:    "No tiene",
				Disipativo: "ASTM 2413 18.000V",
				Color:      "Marron",
				Segmento:   "Electricista",
			},
			Files: []domain.ProductFile{
				{ID: "3", URL: "https://cdn.example.com/10VR.jpg", Type: "file"},
			},
		},
		Variants: []domain.Variant{
			{ID: "5021", Code: "10VR-39", Characteristics: []domain.Characteristic{{ID: "1", Value: "39", Alias: "talla"}}},
			{ID: "5022", Code: "10VR-41", Characteristics: []domain.Characteristic{{ID: "1", Value: "41", Alias: "talla"}}},
		},
	})

	b.AddOrder(DemoKeyUser, domain.Order{
		ID: "4100", Number: "4100", Status: "produccion",
		PurchaseOrder: "OC-7781", SAPPreforma: "SAP-220", ProductionDate: "2025-03-02",
		CustomerName: "Constructora Andes",
	})
	b.AddOrder(DemoKeyUser, domain.Order{
		ID: "4101", Number: "4101", Status: "transito",
		PurchaseOrder: "OC-7790", SAPPreformaMWT: "MWT-55", ProductionDate: "2025-02-14",
		CustomerName: "Minera del Sur",
	})
	b.AppendTrackingLog(DemoKeyUser, "4100", "production_started")
	b.AppendTrackingLog(DemoKeyUser, "4101", "shipment_dispatched")
}

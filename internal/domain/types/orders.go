package types

// Order is a purchase order as listed by the backend.
type Order struct {
	ID             string
	Number         OrderNumber
	Status         string
	PurchaseOrder  string // OC
	SAPPreformaR   string
	SAPPreformaMWT string
	SAPPreforma    string
	ProductionDate string
	CustomerName   string
}

// OrderSection is a group of orders sharing a normalized status.
type OrderSection struct {
	Status string
	Orders []Order
}

package api

import (
	"strconv"

	"mwtrack/internal/domain"
)

type (
	User struct {
		ID          domain.Text `json:"id"`
		KeyUser     string      `json:"keyuser"`
		Name        string      `json:"name"`
		Email       string      `json:"email"`
		GroupTitles []string    `json:"group_titles,omitempty"`
	}

	File struct {
		ID   domain.Text `json:"file_id,omitempty"`
		URL  string      `json:"file_url"`
		Type string      `json:"file_type"`
	}

	Characteristic struct {
		ID    domain.Text `json:"characteristic_id"`
		Value string      `json:"characteristic_value"`
		Alias string      `json:"characteristic_alias,omitempty"`
	}

	Variant struct {
		ID              domain.Text      `json:"variant_id"`
		Code            string           `json:"variant_code"`
		Characteristics []Characteristic `json:"characteristics"`
	}

	Product struct {
		ID                    domain.Text `json:"product_id"`
		Name                  string      `json:"product_name"`
		Code                  string      `json:"product_code"`
		SortPrice             domain.Text `json:"product_sort_price"`
		Calzado               string      `json:"product_calzado,omitempty"`
		Puntera               string      `json:"product_puntera,omitempty"`
		Antiperforante        string      `json:"product_antiperforante,omitempty"`
		Metatarsal            string      `json:"product_metatarsal,omitempty"`
		Capellado             string      `json:"product_capellado,omitempty"`
		Suela                 string      `json:"product_suela,omitempty"`
		Disipativo            string      `json:"product_disipativo,omitempty"`
		Color                 string      `json:"product_color,omitempty"`
		Cierre                string      `json:"product_cierre,omitempty"`
		Normativa             string      `json:"product_normativa,omitempty"`
		Segmento              string      `json:"product_segmento,omitempty"`
		Riesgo                string      `json:"product_riesgo,omitempty"`
		ComponentesReciclados string      `json:"product_componentes_reciclados,omitempty"`
		Cubrepuntera          string      `json:"product_cubrepuntera,omitempty"`
		Plantilla             string      `json:"product_plantilla,omitempty"`
		Files                 []File      `json:"files"`
		Variants              []Variant   `json:"variants,omitempty"`
	}

	CartProduct struct {
		CartProductID   domain.Text      `json:"cart_product_id"`
		ProductID       domain.Text      `json:"product_id"`
		Quantity        domain.Text      `json:"cart_product_quantity"`
		Type            string           `json:"product_type"`
		ParentID        domain.Text      `json:"product_parent_id"`
		Name            string           `json:"product_name"`
		Code            string           `json:"product_code"`
		SortPrice       domain.Text      `json:"product_sort_price"`
		Image           string           `json:"product_image"`
		VariantCode     string           `json:"variant_code"`
		Characteristics []Characteristic `json:"characteristics"`
		Subtotal        domain.Text      `json:"subtotal"`
	}

	Order struct {
		ID                     domain.Text `json:"order_id"`
		Number                 domain.Text `json:"order_number"`
		Status                 string      `json:"order_status"`
		PreformaNumberPurchase string      `json:"preforma_number_purchase"`
		SAPNumberPreformaR     string      `json:"sap_number_preformar"`
		SAPNumberPreformaMWT   string      `json:"sap_number_preforma_mwt"`
		SAPNumberPreforma      string      `json:"sap_number_preforma"`
		ProductionStart        string      `json:"prod_fechai"`
		CustomerName           string      `json:"cust_customer_name"`
	}

	TrackingLog struct {
		ID             domain.Text `json:"id"`
		OrderNumber    domain.Text `json:"order_number"`
		Handler        string      `json:"funcion_handler"`
		ResponseStatus string      `json:"response_status"`
		CreatedAt      string      `json:"fecha_creacion"`
	}
)

func (u User) toDomain() domain.User {
	return domain.User{
		ID:          u.ID.String(),
		KeyUser:     domain.KeyUser(u.KeyUser),
		Name:        u.Name,
		Email:       u.Email,
		GroupTitles: u.GroupTitles,
	}
}

// UserFromDomain converts a domain user to its wire form.
func UserFromDomain(u domain.User) User {
	return User{
		ID:          domain.Text(u.ID),
		KeyUser:     u.KeyUser.String(),
		Name:        u.Name,
		Email:       u.Email,
		GroupTitles: u.GroupTitles,
	}
}

func characteristicsToDomain(cs []Characteristic) []domain.Characteristic {
	if len(cs) == 0 {
		return nil
	}
	out := make([]domain.Characteristic, len(cs))
	for i, c := range cs {
		out[i] = domain.Characteristic{ID: c.ID.String(), Value: c.Value, Alias: c.Alias}
	}
	return out
}

func characteristicsFromDomain(cs []domain.Characteristic) []Characteristic {
	out := make([]Characteristic, len(cs))
	for i, c := range cs {
		out[i] = Characteristic{ID: domain.Text(c.ID), Value: c.Value, Alias: c.Alias}
	}
	return out
}

func (p Product) toDomain() domain.ProductDetail {
	d := domain.ProductDetail{
		Product: domain.Product{
			ID:    p.ID.String(),
			Name:  p.Name,
			Code:  p.Code,
			Price: p.SortPrice.Float(),
			Attributes: domain.Attributes{
				Calzado:               p.Calzado,
				Puntera:               p.Puntera,
				Antiperforante:        p.Antiperforante,
				Metatarsal:            p.Metatarsal,
				Capellado:             p.Capellado,
				Suela:                 p.Suela,
				Disipativo:            p.Disipativo,
				Color:                 p.Color,
				Cierre:                p.Cierre,
				Normativa:             p.Normativa,
				Segmento:              p.Segmento,
				Riesgo:                p.Riesgo,
				ComponentesReciclados: p.ComponentesReciclados,
				Cubrepuntera:          p.Cubrepuntera,
				Plantilla:             p.Plantilla,
			},
		},
	}
	for _, f := range p.Files {
		d.Files = append(d.Files, domain.ProductFile{ID: f.ID.String(), URL: f.URL, Type: f.Type})
	}
	for _, v := range p.Variants {
		d.Variants = append(d.Variants, domain.Variant{
			ID:              v.ID.String(),
			Code:            v.Code,
			Characteristics: characteristicsToDomain(v.Characteristics),
		})
	}
	return d
}

// ProductFromDomain converts a domain product detail to its wire form.
func ProductFromDomain(d domain.ProductDetail) Product {
	a := d.Attributes
	p := Product{
		ID:                    domain.Text(d.ID),
		Name:                  d.Name,
		Code:                  d.Code,
		SortPrice:             formatAmount(d.Price),
		Calzado:               a.Calzado,
		Puntera:               a.Puntera,
		Antiperforante:        a.Antiperforante,
		Metatarsal:            a.Metatarsal,
		Capellado:             a.Capellado,
		Suela:                 a.Suela,
		Disipativo:            a.Disipativo,
		Color:                 a.Color,
		Cierre:                a.Cierre,
		Normativa:             a.Normativa,
		Segmento:              a.Segmento,
		Riesgo:                a.Riesgo,
		ComponentesReciclados: a.ComponentesReciclados,
		Cubrepuntera:          a.Cubrepuntera,
		Plantilla:             a.Plantilla,
		Files:                 make([]File, len(d.Files)),
	}
	for i, f := range d.Files {
		p.Files[i] = File{ID: domain.Text(f.ID), URL: f.URL, Type: f.Type}
	}
	for _, v := range d.Variants {
		p.Variants = append(p.Variants, Variant{
			ID:              domain.Text(v.ID),
			Code:            v.Code,
			Characteristics: characteristicsFromDomain(v.Characteristics),
		})
	}
	return p
}

// toDomain converts a cart line. Unparseable quantities count as 0.
func (c CartProduct) toDomain() domain.CartItem {
	qty, err := c.Quantity.Int()
	if err != nil {
		qty = 0
	}
	return domain.CartItem{
		CartProductID:   c.CartProductID.String(),
		ProductID:       c.ProductID.String(),
		ParentID:        c.ParentID.String(),
		Type:            c.Type,
		Name:            c.Name,
		Code:            c.Code,
		VariantCode:     c.VariantCode,
		Image:           c.Image,
		UnitPrice:       c.SortPrice.Float(),
		Quantity:        qty,
		Subtotal:        c.Subtotal.Float(),
		Characteristics: characteristicsToDomain(c.Characteristics),
	}
}

// CartProductFromDomain converts a cart item to its wire form.
func CartProductFromDomain(it domain.CartItem) CartProduct {
	return CartProduct{
		CartProductID:   domain.Text(it.CartProductID),
		ProductID:       domain.Text(it.ProductID),
		Quantity:        domain.Text(strconv.Itoa(it.Quantity)),
		Type:            it.Type,
		ParentID:        domain.Text(it.ParentID),
		Name:            it.Name,
		Code:            it.Code,
		SortPrice:       formatAmount(it.UnitPrice),
		Image:           it.Image,
		VariantCode:     it.VariantCode,
		Characteristics: characteristicsFromDomain(it.Characteristics),
		Subtotal:        formatAmount(it.Subtotal),
	}
}

func (o Order) toDomain() domain.Order {
	return domain.Order{
		ID:             o.ID.String(),
		Number:         domain.OrderNumber(o.Number),
		Status:         o.Status,
		PurchaseOrder:  o.PreformaNumberPurchase,
		SAPPreformaR:   o.SAPNumberPreformaR,
		SAPPreformaMWT: o.SAPNumberPreformaMWT,
		SAPPreforma:    o.SAPNumberPreforma,
		ProductionDate: o.ProductionStart,
		CustomerName:   o.CustomerName,
	}
}

// OrderFromDomain converts a domain order to its wire form.
func OrderFromDomain(o domain.Order) Order {
	return Order{
		ID:                     domain.Text(o.ID),
		Number:                 domain.Text(o.Number),
		Status:                 o.Status,
		PreformaNumberPurchase: o.PurchaseOrder,
		SAPNumberPreformaR:     o.SAPPreformaR,
		SAPNumberPreformaMWT:   o.SAPPreformaMWT,
		SAPNumberPreforma:      o.SAPPreforma,
		ProductionStart:        o.ProductionDate,
		CustomerName:           o.CustomerName,
	}
}

// toDomain converts a tracking log. It reports false when the id is not an
// integer.
func (l TrackingLog) toDomain() (domain.TrackingLog, bool) {
	id, err := l.ID.Int()
	if err != nil {
		return domain.TrackingLog{}, false
	}
	return domain.TrackingLog{
		ID:             id,
		OrderNumber:    domain.OrderNumber(l.OrderNumber),
		Handler:        l.Handler,
		ResponseStatus: l.ResponseStatus,
		CreatedAt:      l.CreatedAt,
	}, true
}

// TrackingLogFromDomain converts a tracking log to its wire form, with the id
// as a string the way the backend sends it.
func TrackingLogFromDomain(l domain.TrackingLog) TrackingLog {
	return TrackingLog{
		ID:             domain.Text(strconv.Itoa(l.ID)),
		OrderNumber:    domain.Text(l.OrderNumber),
		Handler:        l.Handler,
		ResponseStatus: l.ResponseStatus,
		CreatedAt:      l.CreatedAt,
	}
}

func formatAmount(f float64) domain.Text {
	return domain.Text(strconv.FormatFloat(f, 'f', 2, 64))
}

package webview

import (
	"fmt"
	"net/url"
	"strings"

	"mwtrack/internal/domain"
)

// DefaultBase is the site serving the embedded pages.
const DefaultBase = "https://mwt.one"

// Page ids on the site.
const (
	orderDetailPage = "84"
	trackingPage    = "143"
)

var dashboardPages = map[string]string{
	"es": "90",
	"us": "91",
	"fr": "92",
	"pt": "93",
}

// Support contact opened from every screen.
const (
	SupportPhone   = "+14255170007"
	SupportMessage = "Menu"
)

// Pages builds page URLs on a site.
type Pages struct {
	Base string
}

// NewPages returns Pages for base, or DefaultBase when base is empty.
func NewPages(base string) Pages {
	if base == "" {
		base = DefaultBase
	}
	return Pages{Base: strings.TrimRight(base, "/")}
}

// DashboardURL returns the dashboard for a URL prefix (es, us, fr, pt).
// Unknown prefixes get the Spanish page id.
func (p Pages) DashboardURL(prefix, userID string) string {
	id, ok := dashboardPages[prefix]
	if !ok {
		id = dashboardPages["es"]
	}
	return fmt.Sprintf("%s/%s/?option=com_sppagebuilder&view=page&id=%s&user_id=%s",
		p.Base, prefix, id, url.QueryEscape(userID))
}

// OrderDetailURL returns the detail page of an order.
func (p Pages) OrderDetailURL(userID string, order domain.OrderNumber) string {
	return p.orderPage(orderDetailPage, userID, order)
}

// TrackingURL returns the tracking page of an order.
func (p Pages) TrackingURL(userID string, order domain.OrderNumber) string {
	return p.orderPage(trackingPage, userID, order)
}

func (p Pages) orderPage(id, userID string, order domain.OrderNumber) string {
	return fmt.Sprintf("%s/es/?option=com_sppagebuilder&view=page&id=%s&order_number=%s&user_id=%s",
		p.Base, id, url.QueryEscape(string(order)), url.QueryEscape(userID))
}

// SupportLink returns the WhatsApp deep link to the support line.
func SupportLink() string {
	return fmt.Sprintf("whatsapp://send?phone=%s&text=%s", SupportPhone, SupportMessage)
}

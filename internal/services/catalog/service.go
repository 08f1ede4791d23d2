package catalog

import (
	"context"
	"fmt"
	"strings"

	"mwtrack/internal/domain"
	"mwtrack/internal/i18n"
)

// Placeholder images used when a product has no picture.
const (
	PlaceholderImage      = "https://via.placeholder.com/150"
	PlaceholderImageLarge = "https://via.placeholder.com/300"
)

// Service reads the catalog for the signed-in user.
type Service struct {
	backend  domain.Backend
	sessions domain.SessionService
}

// New returns a catalog service.
func New(backend domain.Backend, sessions domain.SessionService) *Service {
	return &Service{backend: backend, sessions: sessions}
}

// List fetches every product visible to the signed-in user.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	const op = "catalog.List"

	user, err := s.sessions.Current()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	products, err := s.backend.Products(ctx, user.KeyUser)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return products, nil
}

// Detail fetches one product with its variants and files.
func (s *Service) Detail(ctx context.Context, productID string) (domain.ProductDetail, error) {
	const op = "catalog.Detail"

	user, err := s.sessions.Current()
	if err != nil {
		return domain.ProductDetail{}, fmt.Errorf("%s: %w", op, err)
	}
	detail, err := s.backend.ProductDetail(ctx, user.KeyUser, productID)
	if err != nil {
		return domain.ProductDetail{}, fmt.Errorf("%s: %w", op, err)
	}
	return detail, nil
}

// Search keeps the products whose name or code contains query, ignoring
// case. An empty query keeps everything.
func Search(products []domain.Product, query string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Code), q) {
			out = append(out, p)
		}
	}
	return out
}

// Images returns the URLs of the files that can be shown as pictures.
func Images(files []domain.ProductFile) []string {
	var out []string
	for _, f := range files {
		if f.Type == "product" || f.Type == "file" {
			out = append(out, f.URL)
		}
	}
	return out
}

// PrimaryImage returns the first picture of a product, or the placeholder.
func PrimaryImage(files []domain.ProductFile) string {
	if imgs := Images(files); len(imgs) > 0 {
		return imgs[0]
	}
	return PlaceholderImage
}

// Datasheet returns the URL of the first PDF attached to a product.
func Datasheet(files []domain.ProductFile) (string, bool) {
	for _, f := range files {
		if strings.HasSuffix(strings.ToLower(f.URL), ".pdf") {
			return f.URL, true
		}
	}
	return "", false
}

// VariantLabel is what a size picker shows for v: its first characteristic,
// or the variant code when it has none.
func VariantLabel(v domain.Variant) string {
	if len(v.Characteristics) > 0 && v.Characteristics[0].Value != "" {
		return v.Characteristics[0].Value
	}
	return v.Code
}

// FormatPrice renders a unit price the way the product page shows it.
func FormatPrice(price float64, lang domain.Language) string {
	return fmt.Sprintf("%s $%.2f USD", i18n.Translate("Valor", lang), price)
}

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mwtrack/internal/api"
	"mwtrack/internal/domain"
	"mwtrack/internal/services/auth"
	"mwtrack/internal/services/catalog"
	"mwtrack/internal/testutil"
)

func newService(t *testing.T) (*catalog.Service, *testutil.Env) {
	env := testutil.NewEnv(t)
	sessions := auth.New(env.Client, env.Sessions, env.KV)
	return catalog.New(env.Client, sessions), env
}

func TestList(t *testing.T) {
	svc, env := newService(t)

	_, err := svc.List(t.Context())
	require.ErrorIs(t, err, auth.ErrNotSignedIn)

	env.SignIn(t)
	products, err := svc.List(t.Context())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "501", products[0].ID)
	assert.InDelta(t, 48.5, products[0].Price, 0.001)
	assert.Equal(t, 1, env.Mock.Calls(api.EndpointProducts))
}

func TestDetail(t *testing.T) {
	svc, env := newService(t)
	env.SignIn(t)

	detail, err := svc.Detail(t.Context(), "501")
	require.NoError(t, err)
	assert.Equal(t, "Bota Marluvas 50B26", detail.Name)
	require.Len(t, detail.Variants, 3)
	assert.Equal(t, "38", catalog.VariantLabel(detail.Variants[0]))

	_, err = svc.Detail(t.Context(), "999")
	require.Error(t, err)
	assert.Equal(t, "Producto no encontrado", api.Message(err, ""))
}

func TestSearch(t *testing.T) {
	products := []domain.Product{
		{ID: "1", Name: "Bota Marluvas", Code: "50B26"},
		{ID: "2", Name: "Zapato Dielectrico", Code: "10VR"},
	}

	assert.Len(t, catalog.Search(products, ""), 2)
	assert.Len(t, catalog.Search(products, "   "), 2)

	got := catalog.Search(products, "BOTA")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	got = catalog.Search(products, "10vr")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	assert.Empty(t, catalog.Search(products, "sandalia"))
}

func TestFiles(t *testing.T) {
	files := []domain.ProductFile{
		{URL: "https://cdn/x.pdf", Type: "pdf"},
		{URL: "https://cdn/a.png", Type: "file"},
		{URL: "https://cdn/b.png", Type: "product"},
	}
	assert.Equal(t, "https://cdn/a.png", catalog.PrimaryImage(files))
	assert.Equal(t, []string{"https://cdn/a.png", "https://cdn/b.png"}, catalog.Images(files))

	url, ok := catalog.Datasheet(files)
	assert.True(t, ok)
	assert.Equal(t, "https://cdn/x.pdf", url)

	assert.Equal(t, catalog.PlaceholderImage, catalog.PrimaryImage(nil))
	_, ok = catalog.Datasheet(files[1:])
	assert.False(t, ok)
}

func TestVariantLabel(t *testing.T) {
	assert.Equal(t, "40", catalog.VariantLabel(domain.Variant{
		Code:            "X-40",
		Characteristics: []domain.Characteristic{{Value: "40"}, {Value: "ancho"}},
	}))
	assert.Equal(t, "X-40", catalog.VariantLabel(domain.Variant{Code: "X-40"}))
}

func TestFixText(t *testing.T) {
	cases := map[string]string{
		"":                          "",
		"Produccin":                 "Producción",
		"Construccin, Agricola":     "Construcción, Agrícola",
		"Citoplastico 200C":         "Citoplástico 200C",
		"Plastico":                  "Plástico",
		"Ambiente Frio":             "Ambiente Frío",
		"Riesgo Electrico Estatica": "Riesgo Eléctrico Estática",
		"Bota al Tobillo":           "Bota al Tobillo",
	}
	for in, want := range cases {
		assert.Equal(t, want, catalog.FixText(in), "input %q", in)
	}
}

func TestSpecifications(t *testing.T) {
	p := domain.Product{Attributes: domain.Attributes{
		Calzado:  "Bota Alta",
		Color:    "Negro",
		Segmento: "Construccin",
		Riesgo:   "Humedad, Shock",
		Suela:    "  ",
	}}

	specs := catalog.Specifications(p, domain.English)
	assert.Equal(t, []catalog.Spec{
		{Label: "Tipo Calzado", Value: "High Boot"},
		{Label: "Color", Value: "Black"},
		{Label: "Segment", Value: "Construction"},
		{Label: "Risk", Value: "Humidity, Shock"},
	}, specs)

	specs = catalog.Specifications(p, domain.Spanish)
	assert.Equal(t, "Construcción", specs[2].Value)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "Valor $48.50 USD", catalog.FormatPrice(48.5, domain.Spanish))
}

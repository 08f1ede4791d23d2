package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mwtrack/internal/i18n"
	"mwtrack/internal/store"
)

func TestDetect(t *testing.T) {
	cases := map[string]i18n.Language{
		"":            i18n.Spanish,
		"C":           i18n.Spanish,
		"POSIX":       i18n.Spanish,
		"en_US.UTF-8": i18n.English,
		"en-GB":       i18n.English,
		"fr_CA":       i18n.French,
		"pt_BR.UTF-8": i18n.Portuguese,
		"es-CL":       i18n.Spanish,
		"de_DE.UTF-8": i18n.Spanish,
		"not a tag!":  i18n.Spanish,
	}
	for locale, want := range cases {
		assert.Equal(t, want, i18n.Detect(locale), "locale %q", locale)
	}
}

func TestParse(t *testing.T) {
	lang, err := i18n.Parse(" PT ")
	require.NoError(t, err)
	assert.Equal(t, i18n.Portuguese, lang)

	_, err = i18n.Parse("de")
	require.ErrorIs(t, err, i18n.ErrUnsupportedLanguage)
}

func TestURLPrefix(t *testing.T) {
	assert.Equal(t, "us", i18n.URLPrefix(i18n.English))
	assert.Equal(t, "es", i18n.URLPrefix(i18n.Spanish))
	assert.Equal(t, "fr", i18n.URLPrefix(i18n.French))
	assert.Equal(t, "pt", i18n.URLPrefix(i18n.Portuguese))
}

func TestTranslate(t *testing.T) {
	// product dictionary
	assert.Equal(t, "High Boot", i18n.Translate("Bota Alta", i18n.English))
	assert.Equal(t, "Sí", i18n.Translate("Si", i18n.Spanish))
	assert.Equal(t, "Cabedal", i18n.Translate("Capellada", i18n.Portuguese))

	// UI dictionary
	assert.Equal(t, "Sizes", i18n.Translate("Tallas", i18n.English))
	assert.Equal(t, "Votre Commande", i18n.Translate("Tu Pedido", i18n.French))

	// unknown keys pass through
	assert.Equal(t, "Sin traducción", i18n.Translate("Sin traducción", i18n.French))
}

func TestTranslatef(t *testing.T) {
	assert.Equal(t,
		"Order 4100 has received an update.",
		i18n.Translatef(i18n.English, "El pedido %s ha recibido una actualización.", "4100"),
	)
	assert.Equal(t,
		"El pedido 7 ha recibido una actualización.",
		i18n.Translatef(i18n.Spanish, "El pedido %s ha recibido una actualización.", "7"),
	)
}

func TestService_LoadDetectsAndPersists(t *testing.T) {
	kv := store.NewKVFileStore(t.TempDir())

	svc := i18n.NewService(kv, "fr_FR.UTF-8")
	lang, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, i18n.French, lang)

	v, ok, err := kv.Get(store.KeyLanguage)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "fr", v)

	// a stored preference beats the locale
	lang, err = i18n.NewService(kv, "en_US").Load()
	require.NoError(t, err)
	assert.Equal(t, i18n.French, lang)
}

func TestService_Set(t *testing.T) {
	kv := store.NewKVFileStore(t.TempDir())
	svc := i18n.NewService(kv, "")

	require.NoError(t, svc.Set(i18n.Portuguese))
	assert.Equal(t, i18n.Portuguese, svc.Language())
	assert.Equal(t, "Carrinho", svc.T("Carrito"))

	err := svc.Set("xx")
	require.ErrorIs(t, err, i18n.ErrUnsupportedLanguage)
	assert.Equal(t, i18n.Portuguese, svc.Language())

	lang, err := i18n.NewService(kv, "").Load()
	require.NoError(t, err)
	assert.Equal(t, i18n.Portuguese, lang)
}

func TestService_LoadIgnoresGarbage(t *testing.T) {
	kv := store.NewKVFileStore(t.TempDir())
	require.NoError(t, kv.Set(store.KeyLanguage, "klingon"))

	lang, err := i18n.NewService(kv, "en_US").Load()
	require.NoError(t, err)
	assert.Equal(t, i18n.English, lang)
}

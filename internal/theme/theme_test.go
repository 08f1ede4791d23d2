package theme_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mwtrack/internal/domain"
	"mwtrack/internal/store"
	"mwtrack/internal/theme"
)

func TestLoad_SystemThenStored(t *testing.T) {
	kv := store.NewKVFileStore(t.TempDir())

	got, err := theme.NewService(kv, "dark").Load()
	require.NoError(t, err)
	assert.Equal(t, domain.Dark, got)

	got, err = theme.NewService(kv, "").Load()
	require.NoError(t, err)
	assert.Equal(t, domain.Light, got)

	require.NoError(t, kv.Set(store.KeyTheme, "dark"))
	got, err = theme.NewService(kv, "light").Load()
	require.NoError(t, err)
	assert.Equal(t, domain.Dark, got)

	require.NoError(t, kv.Set(store.KeyTheme, "sepia"))
	got, err = theme.NewService(kv, "light").Load()
	require.NoError(t, err)
	assert.Equal(t, domain.Light, got)
}

func TestToggle(t *testing.T) {
	kv := store.NewKVFileStore(t.TempDir())
	svc := theme.NewService(kv, "light")
	_, err := svc.Load()
	require.NoError(t, err)

	got, err := svc.Toggle()
	require.NoError(t, err)
	assert.Equal(t, domain.Dark, got)
	assert.Equal(t, theme.DarkPalette, svc.Palette())

	v, _, err := kv.Get(store.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", v)

	got, err = svc.Toggle()
	require.NoError(t, err)
	assert.Equal(t, domain.Light, got)
	assert.Equal(t, "#f3f4f6", svc.Palette().Background)
}

func TestSet(t *testing.T) {
	kv := store.NewKVFileStore(t.TempDir())
	svc := theme.NewService(kv, "")

	require.ErrorIs(t, svc.Set("sepia"), theme.ErrUnknownTheme)
	require.NoError(t, svc.Set(domain.Dark))

	got, err := theme.NewService(kv, "light").Load()
	require.NoError(t, err)
	assert.Equal(t, domain.Dark, got)
}

func TestParse(t *testing.T) {
	got, err := theme.Parse(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, domain.Dark, got)

	_, err = theme.Parse("blue")
	require.ErrorIs(t, err, theme.ErrUnknownTheme)
}

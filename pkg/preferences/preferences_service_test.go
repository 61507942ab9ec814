package preferences

import (
	"context"
	"recipe-app/domain"
	"recipe-app/internal/utils/kvstore"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSettingsDefaults(t *testing.T) {
	svc := NewPreferencesService(kvstore.NewMemoryStore())

	settings, err := svc.GetSettings(context.Background(), "device-1")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings, settings)
}

func TestUpdateSettings(t *testing.T) {
	store := kvstore.NewMemoryStore()
	svc := NewPreferencesService(store)
	ctx := context.Background()

	settings, err := svc.UpdateSettings(ctx, "device-1", map[string]bool{
		domain.SettingDarkMode:    true,
		domain.SettingMetricUnits: false,
	})
	require.NoError(t, err)
	assert.True(t, settings[domain.SettingDarkMode])
	assert.False(t, settings[domain.SettingMetricUnits])
	assert.True(t, settings[domain.SettingNotificationsEnabled])

	raw, err := store.Get(ctx, "AppSettings:device-1:dark_mode")
	require.NoError(t, err)
	assert.Equal(t, "true", raw)

	other, err := svc.GetSettings(ctx, "device-2")
	require.NoError(t, err)
	assert.False(t, other[domain.SettingDarkMode])
}

func TestUpdateSettingsRejectsUnknownKey(t *testing.T) {
	svc := NewPreferencesService(kvstore.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.UpdateSettings(ctx, "device-1", map[string]bool{
		domain.SettingDarkMode: true,
		"autoplay_videos":      true,
	})
	assert.ErrorIs(t, err, domain.ErrUnknownSetting)

	// nothing was written
	settings, err := svc.GetSettings(ctx, "device-1")
	require.NoError(t, err)
	assert.False(t, settings[domain.SettingDarkMode])
}

func TestUnreadableSettingFallsBackToDefault(t *testing.T) {
	store := kvstore.NewMemoryStore()
	svc := NewPreferencesService(store)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "AppSettings:device-1:metric_units", "maybe", 0))

	settings, err := svc.GetSettings(ctx, "device-1")
	require.NoError(t, err)
	assert.True(t, settings[domain.SettingMetricUnits])
}

func TestNotes(t *testing.T) {
	store := kvstore.NewMemoryStore()
	svc := NewPreferencesService(store)
	ctx := context.Background()

	notes, err := svc.GetNotes(ctx, "device-1")
	require.NoError(t, err)
	assert.Equal(t, "", notes.Notes)

	require.NoError(t, svc.SaveNotes(ctx, "device-1", domain.NotesRequest{Notes: "buy basil"}))
	raw, err := store.Get(ctx, "ShoppingListPrefs:device-1:shopping_notes")
	require.NoError(t, err)
	assert.Equal(t, "buy basil", raw)

	notes, err = svc.GetNotes(ctx, "device-1")
	require.NoError(t, err)
	assert.Equal(t, "buy basil", notes.Notes)

	require.NoError(t, svc.SaveNotes(ctx, "device-1", domain.NotesRequest{}))
	_, err = store.Get(ctx, "ShoppingListPrefs:device-1:shopping_notes")
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)
}

func TestPreferencesRejectBadDeviceID(t *testing.T) {
	svc := NewPreferencesService(kvstore.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.GetSettings(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidDeviceID)
	_, err = svc.GetNotes(ctx, "a:b")
	assert.ErrorIs(t, err, domain.ErrInvalidDeviceID)
}

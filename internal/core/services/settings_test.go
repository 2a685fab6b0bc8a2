package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galleria-labs/galleria-cli/internal/core/domain"
)

// mockConfigStore is an in-memory config store for tests.
type mockConfigStore struct {
	values map[string]any
	saved  bool
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{values: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if v, ok := m.values[key].(string); ok {
		return v
	}
	return ""
}

func (m *mockConfigStore) GetInt(key string) int {
	switch v := m.values[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func (m *mockConfigStore) GetFloat(key string) float64 {
	switch v := m.values[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func (m *mockConfigStore) Set(key string, value any) error {
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Save() error {
	m.saved = true
	return nil
}

func (m *mockConfigStore) Load() error { return nil }
func (m *mockConfigStore) Path() string {
	return "/tmp/test-config.toml"
}

func TestSettingsService_GetDefaults(t *testing.T) {
	svc := NewSettingsService(newMockConfigStore())

	settings, err := svc.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), settings)
}

func TestSettingsService_GetStoredValues(t *testing.T) {
	store := newMockConfigStore()
	store.values["api.base_url"] = "http://localhost:9090"
	store.values["api.timeout_seconds"] = 30
	store.values["api.requests_per_second"] = 2.0
	store.values["gallery.page_size"] = 25

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9090", settings.API.BaseURL)
	assert.Equal(t, 30, settings.API.TimeoutSeconds)
	assert.Equal(t, 2.0, settings.API.RequestsPerSecond)
	assert.Equal(t, 25, settings.Gallery.PageSize)
}

func TestSettingsService_GetClampsStoredValues(t *testing.T) {
	store := newMockConfigStore()
	store.values["gallery.page_size"] = 5000

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, domain.MaxPageSize, settings.Gallery.PageSize)
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	store := newMockConfigStore()
	svc := NewSettingsService(store)

	in := domain.DefaultAppSettings()
	in.Gallery.PageSize = 20
	require.NoError(t, svc.Save(in))
	assert.True(t, store.saved)

	out, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSettingsService_SetPageSize(t *testing.T) {
	store := newMockConfigStore()
	svc := NewSettingsService(store)

	require.NoError(t, svc.SetPageSize(40))
	assert.Equal(t, 40, store.GetInt("gallery.page_size"))
	assert.True(t, store.saved)
}

func TestSettingsService_SetPageSizeOutOfRange(t *testing.T) {
	svc := NewSettingsService(newMockConfigStore())

	assert.Error(t, svc.SetPageSize(0))
	assert.Error(t, svc.SetPageSize(domain.MaxPageSize+1))
}

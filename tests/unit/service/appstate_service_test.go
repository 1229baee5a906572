package service_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legajos/internal/domain"
	"legajos/internal/service"
	"legajos/mocks"
)

func TestAppStateService_CalendarEvents_MissingKey(t *testing.T) {
	kv := new(mocks.MockKeyValueStore)
	svc := service.NewAppStateService(kv)

	kv.On("Get", service.KeyCalendarEvents).Return(nil, domain.ErrNotFound)

	events, err := svc.CalendarEvents()
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestAppStateService_CalendarEvents_RoundTrip(t *testing.T) {
	kv := new(mocks.MockKeyValueStore)
	svc := service.NewAppStateService(kv)

	events := service.CalendarEvents{
		"2024-03-15": {{ID: "1", Title: "Audiencia", Color: "#1e40af"}},
	}
	data, err := json.Marshal(events)
	require.NoError(t, err)

	kv.On("Put", service.KeyCalendarEvents, data).Return(nil)
	kv.On("Get", service.KeyCalendarEvents).Return(data, nil)

	require.NoError(t, svc.SaveCalendarEvents(events))

	loaded, err := svc.CalendarEvents()
	require.NoError(t, err)
	assert.Equal(t, events, loaded)
}

func TestAppStateService_Theme_DefaultWhenMissing(t *testing.T) {
	kv := new(mocks.MockKeyValueStore)
	svc := service.NewAppStateService(kv)

	kv.On("Get", service.KeyTheme).Return(nil, domain.ErrNotFound)

	theme, err := svc.Theme()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTheme(), theme)
}

func TestAppStateService_Theme_RoundTrip(t *testing.T) {
	kv := new(mocks.MockKeyValueStore)
	svc := service.NewAppStateService(kv)

	theme := domain.DefaultTheme()
	theme.FontSize = 18
	data, err := json.Marshal(theme)
	require.NoError(t, err)

	kv.On("Put", service.KeyTheme, data).Return(nil)
	kv.On("Get", service.KeyTheme).Return(data, nil)

	require.NoError(t, svc.SaveTheme(theme))

	loaded, err := svc.Theme()
	require.NoError(t, err)
	assert.Equal(t, theme, loaded)
}

func TestAppStateService_StoreFailurePropagates(t *testing.T) {
	kv := new(mocks.MockKeyValueStore)
	svc := service.NewAppStateService(kv)

	kv.On("Get", service.KeyTheme).Return(nil, errors.New("disk gone"))

	_, err := svc.Theme()
	assert.Error(t, err)
}

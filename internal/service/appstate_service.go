package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"legajos/internal/domain"
	"legajos/internal/port"
)

// Storage keys for the two independent application-state entries.
const (
	KeyCalendarEvents = "calendar_events"
	KeyTheme          = "app_theme"
)

// CalendarEvents maps an ISO date string (YYYY-MM-DD) to the events of
// that day.
type CalendarEvents map[string][]domain.CalendarEvent

// AppStateService loads and saves the presentation-layer state: calendar
// events and theme, each a single entry rewritten wholesale on every save.
type AppStateService interface {
	CalendarEvents() (CalendarEvents, error)
	SaveCalendarEvents(events CalendarEvents) error
	Theme() (*domain.Theme, error)
	SaveTheme(theme *domain.Theme) error
}

type appStateService struct {
	kv port.KeyValueStore
}

// NewAppStateService creates an AppStateService over the given store.
func NewAppStateService(kv port.KeyValueStore) AppStateService {
	return &appStateService{kv: kv}
}

func (s *appStateService) CalendarEvents() (CalendarEvents, error) {
	data, err := s.kv.Get(KeyCalendarEvents)
	if errors.Is(err, domain.ErrNotFound) {
		return CalendarEvents{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading calendar events: %w", err)
	}
	var events CalendarEvents
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("decoding calendar events: %w", err)
	}
	return events, nil
}

func (s *appStateService) SaveCalendarEvents(events CalendarEvents) error {
	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encoding calendar events: %w", err)
	}
	return s.kv.Put(KeyCalendarEvents, data)
}

func (s *appStateService) Theme() (*domain.Theme, error) {
	data, err := s.kv.Get(KeyTheme)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultTheme(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading theme: %w", err)
	}
	var theme domain.Theme
	if err := json.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("decoding theme: %w", err)
	}
	return &theme, nil
}

func (s *appStateService) SaveTheme(theme *domain.Theme) error {
	data, err := json.Marshal(theme)
	if err != nil {
		return fmt.Errorf("encoding theme: %w", err)
	}
	return s.kv.Put(KeyTheme, data)
}

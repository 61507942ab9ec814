// Package preferences keeps per-device app settings and shopping notes in the
// local key-value store.
package preferences

import (
	"context"
	"errors"
	"recipe-app/domain"
	"recipe-app/internal/utils/kvstore"
	"strconv"
)

const (
	settingsNamespace = "AppSettings"
	notesNamespace    = "ShoppingListPrefs"
	notesKey          = "shopping_notes"
)

type (
	PreferencesService interface {
		GetSettings(ctx context.Context, deviceID string) (map[string]bool, error)
		UpdateSettings(ctx context.Context, deviceID string, settings map[string]bool) (map[string]bool, error)
		GetNotes(ctx context.Context, deviceID string) (domain.NotesResponse, error)
		SaveNotes(ctx context.Context, deviceID string, req domain.NotesRequest) error
	}

	preferencesService struct {
		store kvstore.Store
	}
)

func NewPreferencesService(store kvstore.Store) PreferencesService {
	return &preferencesService{store: store}
}

// GetSettings returns every known setting, falling back to its default when
// unset or unreadable.
func (s *preferencesService) GetSettings(ctx context.Context, deviceID string) (map[string]bool, error) {
	if err := domain.CheckDeviceID(deviceID); err != nil {
		return nil, err
	}

	settings := make(map[string]bool, len(domain.DefaultSettings))
	for name, def := range domain.DefaultSettings {
		raw, err := s.store.Get(ctx, kvstore.Key(settingsNamespace, deviceID, name))
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			settings[name] = def
			continue
		}
		if err != nil {
			return nil, domain.Remote(err)
		}
		value, err := strconv.ParseBool(raw)
		if err != nil {
			value = def
		}
		settings[name] = value
	}
	return settings, nil
}

// UpdateSettings writes the given settings and returns the full set. Unknown
// names reject the whole update.
func (s *preferencesService) UpdateSettings(ctx context.Context, deviceID string, settings map[string]bool) (map[string]bool, error) {
	if err := domain.CheckDeviceID(deviceID); err != nil {
		return nil, err
	}
	for name := range settings {
		if _, ok := domain.DefaultSettings[name]; !ok {
			return nil, domain.ErrUnknownSetting
		}
	}

	for name, value := range settings {
		if err := s.store.Set(ctx, kvstore.Key(settingsNamespace, deviceID, name), strconv.FormatBool(value), 0); err != nil {
			return nil, domain.Remote(err)
		}
	}
	return s.GetSettings(ctx, deviceID)
}

func (s *preferencesService) GetNotes(ctx context.Context, deviceID string) (domain.NotesResponse, error) {
	if err := domain.CheckDeviceID(deviceID); err != nil {
		return domain.NotesResponse{}, err
	}

	notes, err := s.store.Get(ctx, kvstore.Key(notesNamespace, deviceID, notesKey))
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return domain.NotesResponse{}, nil
	}
	if err != nil {
		return domain.NotesResponse{}, domain.Remote(err)
	}
	return domain.NotesResponse{Notes: notes}, nil
}

// SaveNotes replaces the notes; empty notes remove them.
func (s *preferencesService) SaveNotes(ctx context.Context, deviceID string, req domain.NotesRequest) error {
	if err := domain.CheckDeviceID(deviceID); err != nil {
		return err
	}

	key := kvstore.Key(notesNamespace, deviceID, notesKey)
	var err error
	if req.Notes == "" {
		err = s.store.Delete(ctx, key)
	} else {
		err = s.store.Set(ctx, key, req.Notes, 0)
	}
	if err != nil {
		return domain.Remote(err)
	}
	return nil
}

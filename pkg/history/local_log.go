package history

import (
	"context"
	"encoding/json"
	"errors"
	"hash/fnv"
	"log/slog"
	"recipe-app/domain"
	"recipe-app/internal/utils/kvstore"
	"sync"
)

const (
	// MaxLocalHistory caps the device-local log.
	MaxLocalHistory = 50

	localNamespace = "RecipeHistoryPrefs"
	localKey       = "recipe_history"

	lockStripes = 64
)

type (
	// LocalLog is the per-device recently-viewed list, stored as one JSON
	// array under the device's key. It needs no session.
	LocalLog interface {
		AddToHistory(ctx context.Context, deviceID string, recipe domain.Recipe) error
		GetHistory(ctx context.Context, deviceID string) ([]domain.Recipe, error)
		ClearHistory(ctx context.Context, deviceID string) error
	}

	localLog struct {
		store  kvstore.Store
		logger *slog.Logger

		locks [lockStripes]sync.Mutex
	}
)

func NewLocalLog(store kvstore.Store, logger *slog.Logger) LocalLog {
	if logger == nil {
		logger = slog.Default()
	}
	return &localLog{
		store:  store,
		logger: logger,
	}
}

func localHistoryKey(deviceID string) string {
	return kvstore.Key(localNamespace, deviceID, localKey)
}

// lockStripe picks the mutex guarding key. Devices that share a stripe
// serialize with each other; the set of locks stays fixed.
func lockStripe(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % lockStripes)
}

// lock serializes read-modify-write cycles on one device's log.
func (l *localLog) lock(key string) func() {
	m := &l.locks[lockStripe(key)]
	m.Lock()
	return m.Unlock
}

// AddToHistory moves recipe to the front of the device's log, dropping any
// earlier entry with the same id and the oldest entries beyond
// MaxLocalHistory.
func (l *localLog) AddToHistory(ctx context.Context, deviceID string, recipe domain.Recipe) error {
	if err := domain.CheckDeviceID(deviceID); err != nil {
		return err
	}
	if recipe.ID == "" {
		return domain.ErrRecipeNotFound
	}

	key := localHistoryKey(deviceID)
	unlock := l.lock(key)
	defer unlock()

	entries, err := l.read(ctx, key)
	if err != nil {
		return err
	}

	entries = pushFront(entries, recipe, MaxLocalHistory)

	blob, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	if err := l.store.Set(ctx, key, string(blob), 0); err != nil {
		return domain.Remote(err)
	}
	return nil
}

// GetHistory returns the log most recent first. A missing or unreadable log
// is empty.
func (l *localLog) GetHistory(ctx context.Context, deviceID string) ([]domain.Recipe, error) {
	if err := domain.CheckDeviceID(deviceID); err != nil {
		return nil, err
	}
	return l.read(ctx, localHistoryKey(deviceID))
}

func (l *localLog) ClearHistory(ctx context.Context, deviceID string) error {
	if err := domain.CheckDeviceID(deviceID); err != nil {
		return err
	}

	key := localHistoryKey(deviceID)
	unlock := l.lock(key)
	defer unlock()

	if err := l.store.Delete(ctx, key); err != nil {
		return domain.Remote(err)
	}
	return nil
}

func (l *localLog) read(ctx context.Context, key string) ([]domain.Recipe, error) {
	blob, err := l.store.Get(ctx, key)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return []domain.Recipe{}, nil
	}
	if err != nil {
		return nil, domain.Remote(err)
	}

	var entries []domain.Recipe
	if err := json.Unmarshal([]byte(blob), &entries); err != nil {
		l.logger.WarnContext(ctx, "discarding unreadable recipe history", "key", key, "error", err)
		return []domain.Recipe{}, nil
	}
	if entries == nil {
		entries = []domain.Recipe{}
	}
	return entries, nil
}

// pushFront returns entries with recipe first, no other entry sharing its id,
// and at most limit entries.
func pushFront(entries []domain.Recipe, recipe domain.Recipe, limit int) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(entries)+1)
	out = append(out, recipe)
	for _, e := range entries {
		if e.ID != recipe.ID {
			out = append(out, e)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

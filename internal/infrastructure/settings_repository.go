package infrastructure

import (
	"context"
	"fmt"
	"sync"

	"github.com/mitchellh/mapstructure"

	"adpulse/internal/domain"
	"adpulse/pkg/logger"
)

// In-memory per-file settings store. A missing entry reads as defaults;
// PATCH merges only the keys present in the request body.
type SettingsRepository struct {
	data   map[string]*domain.Settings
	mutex  sync.RWMutex
	logger *logger.Logger
}

func NewSettingsRepository(logger *logger.Logger) *SettingsRepository {
	return &SettingsRepository{
		data:   make(map[string]*domain.Settings),
		logger: logger,
	}
}

func (r *SettingsRepository) Get(ctx context.Context, fileID string) (*domain.Settings, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if s, ok := r.data[fileID]; ok {
		copied := *s
		return &copied, nil
	}
	return &domain.Settings{}, nil
}

func (r *SettingsRepository) Patch(ctx context.Context, fileID string, patch map[string]any) (*domain.Settings, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	current, ok := r.data[fileID]
	if !ok {
		current = &domain.Settings{}
		r.data[fileID] = current
	}

	// mapstructure only touches keys present in the patch, which is
	// exactly the partial-update semantics PATCH needs.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  current,
		TagName: "mapstructure",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build settings decoder: %w", err)
	}
	if err := decoder.Decode(patch); err != nil {
		return nil, fmt.Errorf("failed to apply settings patch: %w", err)
	}

	r.logger.WithContext(ctx).WithField("file_id", fileID).Info("Patched settings")

	copied := *current
	return &copied, nil
}

func (r *SettingsRepository) Delete(ctx context.Context, fileID string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.data, fileID)
	return nil
}

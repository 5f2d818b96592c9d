package domain

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a dataset or settings entry does not exist.
var ErrNotFound = errors.New("not found")

// interface for dataset storage
type DatasetRepository interface {
	Create(ctx context.Context, ds *Dataset) error
	Get(ctx context.Context, id string) (*Dataset, error)
	List(ctx context.Context) ([]*Dataset, error)
	Update(ctx context.Context, ds *Dataset) error
	Delete(ctx context.Context, id string) error
}

// interface for per-file settings storage
type SettingsRepository interface {
	Get(ctx context.Context, fileID string) (*Settings, error)
	Patch(ctx context.Context, fileID string, patch map[string]any) (*Settings, error)
	Delete(ctx context.Context, fileID string) error
}

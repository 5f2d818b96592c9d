package infrastructure

import (
	"context"
	"sync"

	"adpulse/internal/domain"
	"adpulse/pkg/logger"
)

// In-memory dataset store. Uploads live in process memory only and do not
// survive a restart.
type DatasetRepository struct {
	data   map[string]*domain.Dataset
	mutex  sync.RWMutex
	logger *logger.Logger
}

func NewDatasetRepository(logger *logger.Logger) *DatasetRepository {
	return &DatasetRepository{
		data:   make(map[string]*domain.Dataset),
		logger: logger,
	}
}

func (r *DatasetRepository) Create(ctx context.Context, ds *domain.Dataset) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.data[ds.ID] = ds

	r.logger.WithContext(ctx).WithField("file_id", ds.ID).Info("Created dataset")
	return nil
}

func (r *DatasetRepository) Get(ctx context.Context, id string) (*domain.Dataset, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	ds, ok := r.data[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ds, nil
}

func (r *DatasetRepository) List(ctx context.Context) ([]*domain.Dataset, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]*domain.Dataset, 0, len(r.data))
	for _, ds := range r.data {
		out = append(out, ds)
	}
	return out, nil
}

func (r *DatasetRepository) Update(ctx context.Context, ds *domain.Dataset) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.data[ds.ID]; !ok {
		return domain.ErrNotFound
	}
	r.data[ds.ID] = ds
	return nil
}

func (r *DatasetRepository) Delete(ctx context.Context, id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.data[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.data, id)

	r.logger.WithContext(ctx).WithField("file_id", id).Info("Deleted dataset")
	return nil
}

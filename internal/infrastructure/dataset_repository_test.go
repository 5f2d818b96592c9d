package infrastructure

import (
	"context"
	"errors"
	"testing"

	"adpulse/internal/domain"
	"adpulse/pkg/logger"
)

func TestDatasetRepositoryCRUD(t *testing.T) {
	repo := NewDatasetRepository(logger.New("error"))
	ctx := context.Background()

	ds := &domain.Dataset{ID: "d1", Name: "file.csv"}
	if err := repo.Create(ctx, ds); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(ctx, "d1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "file.csv" {
		t.Errorf("Name = %q", got.Name)
	}

	got.Committed = true
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if again, _ := repo.Get(ctx, "d1"); !again.Committed {
		t.Error("update not visible")
	}

	all, err := repo.List(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("List = %d items, err %v", len(all), err)
	}

	if err := repo.Delete(ctx, "d1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(ctx, "d1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get after delete: %v, want ErrNotFound", err)
	}
}

func TestDatasetRepositoryNotFound(t *testing.T) {
	repo := NewDatasetRepository(logger.New("error"))
	ctx := context.Background()

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get: %v, want ErrNotFound", err)
	}
	if err := repo.Update(ctx, &domain.Dataset{ID: "missing"}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Update: %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Delete: %v, want ErrNotFound", err)
	}
}

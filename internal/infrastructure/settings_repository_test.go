package infrastructure

import (
	"context"
	"reflect"
	"testing"

	"adpulse/pkg/logger"
)

func TestSettingsRepositoryDefaultsWhenAbsent(t *testing.T) {
	repo := NewSettingsRepository(logger.New("error"))

	s, err := repo.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s.DateFrom != "" || s.DateTo != "" || len(s.HiddenTables) != 0 || len(s.KPICards) != 0 {
		t.Errorf("missing entry should read as defaults, got %+v", s)
	}
}

func TestSettingsRepositoryPatchMergesPartially(t *testing.T) {
	repo := NewSettingsRepository(logger.New("error"))
	ctx := context.Background()

	if _, err := repo.Patch(ctx, "f1", map[string]any{
		"date_from":     "2024-03-01",
		"hidden_tables": []string{"retention"},
	}); err != nil {
		t.Fatalf("first Patch: %v", err)
	}

	// Second patch touches only date_to; earlier keys survive.
	s, err := repo.Patch(ctx, "f1", map[string]any{"date_to": "2024-03-31"})
	if err != nil {
		t.Fatalf("second Patch: %v", err)
	}
	if s.DateFrom != "2024-03-01" || s.DateTo != "2024-03-31" {
		t.Errorf("range = %q..%q", s.DateFrom, s.DateTo)
	}
	if !reflect.DeepEqual(s.HiddenTables, []string{"retention"}) {
		t.Errorf("HiddenTables = %v", s.HiddenTables)
	}
}

func TestSettingsRepositoryPatchRejectsWrongTypes(t *testing.T) {
	repo := NewSettingsRepository(logger.New("error"))
	if _, err := repo.Patch(context.Background(), "f1", map[string]any{"date_from": 42}); err == nil {
		t.Error("patching a string field with an int should fail")
	}
}

func TestSettingsRepositoryDelete(t *testing.T) {
	repo := NewSettingsRepository(logger.New("error"))
	ctx := context.Background()

	if _, err := repo.Patch(ctx, "f1", map[string]any{"date_from": "2024-03-01"}); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if err := repo.Delete(ctx, "f1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	s, err := repo.Get(ctx, "f1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s.DateFrom != "" {
		t.Errorf("settings survived delete: %+v", s)
	}

	// Deleting an absent entry is a no-op.
	if err := repo.Delete(ctx, "f1"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestSettingsRepositoryGetReturnsCopy(t *testing.T) {
	repo := NewSettingsRepository(logger.New("error"))
	ctx := context.Background()

	if _, err := repo.Patch(ctx, "f1", map[string]any{"date_from": "2024-03-01"}); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	s, _ := repo.Get(ctx, "f1")
	s.DateFrom = "mutated"

	again, _ := repo.Get(ctx, "f1")
	if again.DateFrom != "2024-03-01" {
		t.Errorf("stored settings mutated through a returned copy: %+v", again)
	}
}

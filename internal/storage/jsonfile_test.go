package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"foodtrucks-maroc-api-server/internal/models"
)

func TestFileFoodTrucksRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewFileFoodTrucks(dir)
	ctx := context.Background()

	created, err := store.Create(ctx, models.FoodTruck{
		Name:        "Food Truck Vintage",
		Description: "Un food truck au charme rétro",
		Category:    models.CategoryVintage,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Food Truck Vintage" || got.Category != models.CategoryVintage {
		t.Fatalf("unexpected record: %+v", got)
	}

	all, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 record, got %d", len(all))
	}
}

func TestFileFoodTrucksGetAllOnMissingFile(t *testing.T) {
	store := NewFileFoodTrucks(t.TempDir())

	all, err := store.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty slice, got %d records", len(all))
	}
}

func TestFileFoodTrucksUpdate(t *testing.T) {
	dir := t.TempDir()
	store := NewFileFoodTrucks(dir)
	ctx := context.Background()

	created, err := store.Create(ctx, models.FoodTruck{
		Name:        "Avant",
		Description: "desc",
		Category:    models.CategoryKiosque,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	name := "Après"
	featured := true
	updated, err := store.Update(ctx, created.ID, models.FoodTruckUpdate{Name: &name, Featured: &featured})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Après" || !updated.Featured {
		t.Fatalf("update not applied: %+v", updated)
	}
	// Untouched fields survive a partial update.
	if updated.Category != models.CategoryKiosque {
		t.Fatalf("category clobbered: %+v", updated)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) && !updated.UpdatedAt.Equal(updated.CreatedAt) {
		t.Fatal("expected updatedAt >= createdAt")
	}

	if _, err := store.Update(ctx, "missing", models.FoodTruckUpdate{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFileFoodTrucksDelete(t *testing.T) {
	dir := t.TempDir()
	store := NewFileFoodTrucks(dir)
	ctx := context.Background()

	created, err := store.Create(ctx, models.FoodTruck{Name: "X", Description: "d", Category: models.CategoryRemorque})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.GetByID(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestFileDevisCreateAndUpdate(t *testing.T) {
	dir := t.TempDir()
	store := NewFileDevis(dir)
	ctx := context.Background()

	created, err := store.Create(ctx, models.Devis{
		TruckName:     "Demande générale",
		CustomerName:  "Ahmed Benali",
		CustomerEmail: "ahmed@example.com",
		CustomerPhone: "+212612345678",
		Message:       "Je voudrais un devis",
		Status:        models.DevisPending,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != models.DevisPending {
		t.Fatalf("expected pending status, got %q", created.Status)
	}

	amount := 250000.0
	status := models.DevisQuoted
	updated, err := store.Update(ctx, created.ID, models.DevisUpdate{Status: &status, QuoteAmount: &amount})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != models.DevisQuoted || updated.QuoteAmount == nil || *updated.QuoteAmount != 250000.0 {
		t.Fatalf("update not applied: %+v", updated)
	}
	// Customer fields survive a triage update.
	if updated.CustomerName != "Ahmed Benali" {
		t.Fatalf("customer fields clobbered: %+v", updated)
	}
}

func TestFileMessagesUpdateStatus(t *testing.T) {
	dir := t.TempDir()
	store := NewFileMessages(dir)
	ctx := context.Background()

	created, err := store.Create(ctx, models.Message{
		Name:    "Ahmed Benali",
		Email:   "ahmed@example.com",
		Subject: "Renseignements",
		Message: "Bonjour, je souhaite plus d'informations.",
		Status:  models.MessageUnread,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := store.UpdateStatus(ctx, created.ID, models.MessageRead)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != models.MessageRead {
		t.Fatalf("expected read status, got %q", updated.Status)
	}

	if _, err := store.UpdateStatus(ctx, "missing", models.MessageRead); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFileSettingsDefaultsAndSave(t *testing.T) {
	dir := t.TempDir()
	store := NewFileSettings(dir)
	ctx := context.Background()

	settings, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if settings.SiteName != "Food Trucks Maroc" {
		t.Fatalf("expected defaults before first save, got %+v", settings)
	}

	settings.SiteName = "Food Trucks Maroc SARL"
	settings.ContactPhone = "+212612345678"
	if err := store.Save(ctx, settings); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get after save: %v", err)
	}
	if reloaded.SiteName != "Food Trucks Maroc SARL" || reloaded.ContactPhone != "+212612345678" {
		t.Fatalf("save not persisted: %+v", reloaded)
	}

	if _, err := os.Stat(filepath.Join(dir, "settings.json")); err != nil {
		t.Fatalf("expected settings file on disk: %v", err)
	}
}

func TestNewIDShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		if len(id) < 10 {
			t.Fatalf("id too short: %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id: %q", id)
		}
		seen[id] = true
	}
}

package database

import (
	"context"
	"testing"

	"foodtrucks-maroc-api-server/internal/models"
	"foodtrucks-maroc-api-server/internal/storage"

	"go.uber.org/zap"
)

func TestSeedFoodTrucksOnEmptyStore(t *testing.T) {
	store := storage.NewFileFoodTrucks(t.TempDir())
	ctx := context.Background()

	if err := SeedFoodTrucks(ctx, store, zap.NewNop()); err != nil {
		t.Fatalf("SeedFoodTrucks: %v", err)
	}

	trucks, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(trucks) == 0 {
		t.Fatal("expected sample listings to be seeded")
	}
	for _, truck := range trucks {
		if truck.ID == "" || truck.Name == "" || !models.ValidCategory(truck.Category) {
			t.Fatalf("invalid seeded listing: %+v", truck)
		}
	}
}

func TestSeedFoodTrucksSkipsNonEmptyStore(t *testing.T) {
	store := storage.NewFileFoodTrucks(t.TempDir())
	ctx := context.Background()

	existing, err := store.Create(ctx, models.FoodTruck{
		Name:        "Déjà là",
		Description: "d",
		Category:    models.CategoryVintage,
	})
	if err != nil {
		t.Fatalf("seed existing listing: %v", err)
	}

	if err := SeedFoodTrucks(ctx, store, zap.NewNop()); err != nil {
		t.Fatalf("SeedFoodTrucks: %v", err)
	}

	trucks, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(trucks) != 1 || trucks[0].ID != existing.ID {
		t.Fatalf("expected seeding to be skipped, got %d listings", len(trucks))
	}
}

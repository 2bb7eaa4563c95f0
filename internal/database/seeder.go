package database

import (
	"context"
	"fmt"

	"foodtrucks-maroc-api-server/internal/models"
	"foodtrucks-maroc-api-server/internal/storage"

	"go.uber.org/zap"
)

// SeedFoodTrucks inserts a few sample listings when the catalogue is empty,
// so a fresh deployment has something to show.
func SeedFoodTrucks(ctx context.Context, store storage.FoodTruckStore, log *zap.Logger) error {
	existing, err := store.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("check existing foodtrucks: %w", err)
	}
	if len(existing) > 0 {
		log.Info("foodtrucks already present, seeding skipped", zap.Int("count", len(existing)))
		return nil
	}

	log.Info("empty catalogue, seeding sample foodtrucks")
	samples := []models.FoodTruck{
		{
			Name:             "Food Truck Vintage Rétro",
			Description:      "Un food truck au charme rétro entièrement équipé, idéal pour les burgers et la street food. Carrosserie restaurée, cuisine inox complète.",
			ShortDescription: "Food truck rétro entièrement équipé",
			Category:         models.CategoryVintage,
			Images:           []string{},
			Specifications: models.Specifications{
				Dimensions: "6m x 2.5m x 3m",
				Capacity:   "2-3 personnes",
				Equipment:  []string{"Plancha", "Friteuse", "Réfrigérateur", "Hotte aspirante"},
				Features:   []string{"Carrosserie restaurée", "Éclairage LED", "Comptoir de service"},
			},
			Featured: true,
		},
		{
			Name:             "Kiosque Urbain Compact",
			Description:      "Kiosque compact pour centres commerciaux et zones piétonnes. Installation rapide, raccordements standards, idéal café et snacking.",
			ShortDescription: "Kiosque compact pour zones piétonnes",
			Category:         models.CategoryKiosque,
			Images:           []string{},
			Specifications: models.Specifications{
				Dimensions: "3m x 2m x 2.5m",
				Capacity:   "1-2 personnes",
				Equipment:  []string{"Machine à café", "Vitrine réfrigérée"},
				Features:   []string{"Montage rapide", "Branding personnalisable"},
			},
			Featured: false,
		},
		{
			Name:             "Remorque Gourmande",
			Description:      "Remorque aménagée pour la restauration mobile, tractable par véhicule léger. Grande surface de travail et rangements optimisés.",
			ShortDescription: "Remorque aménagée tractable",
			Category:         models.CategoryRemorque,
			Images:           []string{},
			Specifications: models.Specifications{
				Dimensions: "4m x 2m x 2.8m",
				Capacity:   "2-3 personnes",
				Equipment:  []string{"Four", "Plan de travail inox", "Double évier"},
				Features:   []string{"Tractable permis B", "Auvent dépliable"},
			},
			Featured: false,
		},
	}

	for _, truck := range samples {
		if _, err := store.Create(ctx, truck); err != nil {
			return fmt.Errorf("seed foodtruck %q: %w", truck.Name, err)
		}
	}
	log.Info("sample foodtrucks seeded", zap.Int("count", len(samples)))
	return nil
}

package models

import "time"

// Category is the catalogue category of a listing.
type Category string

const (
	CategoryVintage    Category = "vintage"
	CategoryFoodTrucks Category = "food-trucks"
	CategoryKiosque    Category = "kiosque"
	CategoryConteneur  Category = "conteneur"
	CategoryRemorque   Category = "remorque"
	CategoryModulaire  Category = "modulaire"
	CategoryMobileChef Category = "mobile-chef"
	CategoryCharrette  Category = "charrette"
)

// Categories lists every valid listing category.
var Categories = []Category{
	CategoryVintage,
	CategoryFoodTrucks,
	CategoryKiosque,
	CategoryConteneur,
	CategoryRemorque,
	CategoryModulaire,
	CategoryMobileChef,
	CategoryCharrette,
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Specifications holds the technical sheet of a listing.
type Specifications struct {
	Dimensions string   `bson:"dimensions" json:"dimensions"`
	Capacity   string   `bson:"capacity" json:"capacity"`
	Equipment  []string `bson:"equipment" json:"equipment"`
	Features   []string `bson:"features" json:"features"`
}

// FoodTruck is a marketplace listing. Name, description and category are
// always non-empty for a persisted record; only admin flows mutate it.
type FoodTruck struct {
	ID               string         `bson:"id" json:"id"`
	Name             string         `bson:"name" json:"name"`
	Description      string         `bson:"description" json:"description"`
	ShortDescription string         `bson:"shortDescription" json:"shortDescription"`
	Category         Category       `bson:"category" json:"category"`
	Images           []string       `bson:"images" json:"images"`
	Specifications   Specifications `bson:"specifications" json:"specifications"`
	Featured         bool           `bson:"featured" json:"featured"`
	CreatedAt        time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// FoodTruckUpdate is a partial update; nil fields are left untouched.
type FoodTruckUpdate struct {
	Name             *string         `json:"name"`
	Description      *string         `json:"description"`
	ShortDescription *string         `json:"shortDescription"`
	Category         *Category       `json:"category"`
	Images           *[]string       `json:"images"`
	Specifications   *Specifications `json:"specifications"`
	Featured         *bool           `json:"featured"`
}

// Apply copies the non-nil fields onto t.
func (u FoodTruckUpdate) Apply(t *FoodTruck) {
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.ShortDescription != nil {
		t.ShortDescription = *u.ShortDescription
	}
	if u.Category != nil {
		t.Category = *u.Category
	}
	if u.Images != nil {
		t.Images = *u.Images
	}
	if u.Specifications != nil {
		t.Specifications = *u.Specifications
	}
	if u.Featured != nil {
		t.Featured = *u.Featured
	}
}

// Package storage persists marketplace entities. Each entity type has a
// primary backend (MongoDB) and a file-backed JSON fallback; the Fallback*
// wrappers compose the two with a degrade-on-read, fail-loud-on-write policy.
package storage

import (
	"context"
	"errors"
	"math/rand/v2"
	"strconv"
	"time"

	"foodtrucks-maroc-api-server/internal/models"
)

// ErrNotFound is returned when the requested id does not exist. It is a
// domain answer, not a backend failure, so it never triggers the fallback.
var ErrNotFound = errors.New("not found")

// FoodTruckStore is the CRUD contract for listings.
type FoodTruckStore interface {
	GetAll(ctx context.Context) ([]models.FoodTruck, error)
	GetByID(ctx context.Context, id string) (*models.FoodTruck, error)
	Create(ctx context.Context, truck models.FoodTruck) (*models.FoodTruck, error)
	Update(ctx context.Context, id string, updates models.FoodTruckUpdate) (*models.FoodTruck, error)
	Delete(ctx context.Context, id string) error
}

// DevisStore persists quote requests. Devis are never deleted.
type DevisStore interface {
	GetAll(ctx context.Context) ([]models.Devis, error)
	GetByID(ctx context.Context, id string) (*models.Devis, error)
	Create(ctx context.Context, devis models.Devis) (*models.Devis, error)
	Update(ctx context.Context, id string, updates models.DevisUpdate) (*models.Devis, error)
}

// MessageStore persists contact messages. Messages are never deleted.
type MessageStore interface {
	GetAll(ctx context.Context) ([]models.Message, error)
	GetByID(ctx context.Context, id string) (*models.Message, error)
	Create(ctx context.Context, msg models.Message) (*models.Message, error)
	UpdateStatus(ctx context.Context, id string, status models.MessageStatus) (*models.Message, error)
}

// SettingsStore persists the single site settings document.
type SettingsStore interface {
	Get(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, s models.Settings) error
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewID generates an entity id: current unix milliseconds plus a 9-character
// random alphanumeric suffix. No coordination between writers is needed.
func NewID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + string(suffix)
}

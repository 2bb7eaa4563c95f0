package storage

import (
	"context"
	"errors"

	"foodtrucks-maroc-api-server/internal/models"

	"go.uber.org/zap"
)

// The fallback wrappers apply one policy everywhere:
//
//   - reads degrade gracefully: a primary failure is retried on the fallback,
//     and a fallback failure yields empty/default data instead of an error;
//   - writes fail loud: a primary failure is retried on the fallback, and a
//     fallback failure propagates to the caller;
//   - ErrNotFound is an answer, not a failure, and never triggers a retry.

// FallbackFoodTrucks composes a primary and a fallback FoodTruckStore.
type FallbackFoodTrucks struct {
	primary  FoodTruckStore
	fallback FoodTruckStore
	log      *zap.Logger
}

func NewFallbackFoodTrucks(primary, fallback FoodTruckStore, log *zap.Logger) *FallbackFoodTrucks {
	return &FallbackFoodTrucks{primary: primary, fallback: fallback, log: log}
}

func (s *FallbackFoodTrucks) GetAll(ctx context.Context) ([]models.FoodTruck, error) {
	trucks, err := s.primary.GetAll(ctx)
	if err == nil {
		return trucks, nil
	}
	s.log.Warn("primary foodtruck store failed on getAll, using fallback", zap.Error(err))
	trucks, err = s.fallback.GetAll(ctx)
	if err != nil {
		s.log.Error("fallback foodtruck store failed on getAll", zap.Error(err))
		return []models.FoodTruck{}, nil
	}
	return trucks, nil
}

func (s *FallbackFoodTrucks) GetByID(ctx context.Context, id string) (*models.FoodTruck, error) {
	truck, err := s.primary.GetByID(ctx, id)
	if err == nil || errors.Is(err, ErrNotFound) {
		return truck, err
	}
	s.log.Warn("primary foodtruck store failed on getById, using fallback",
		zap.String("id", id), zap.Error(err))
	truck, err = s.fallback.GetByID(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.log.Error("fallback foodtruck store failed on getById", zap.String("id", id), zap.Error(err))
		return nil, ErrNotFound
	}
	return truck, err
}

func (s *FallbackFoodTrucks) Create(ctx context.Context, truck models.FoodTruck) (*models.FoodTruck, error) {
	created, err := s.primary.Create(ctx, truck)
	if err == nil {
		return created, nil
	}
	s.log.Warn("primary foodtruck store failed on create, using fallback", zap.Error(err))
	return s.fallback.Create(ctx, truck)
}

func (s *FallbackFoodTrucks) Update(ctx context.Context, id string, updates models.FoodTruckUpdate) (*models.FoodTruck, error) {
	updated, err := s.primary.Update(ctx, id, updates)
	if err == nil || errors.Is(err, ErrNotFound) {
		return updated, err
	}
	s.log.Warn("primary foodtruck store failed on update, using fallback",
		zap.String("id", id), zap.Error(err))
	return s.fallback.Update(ctx, id, updates)
}

func (s *FallbackFoodTrucks) Delete(ctx context.Context, id string) error {
	err := s.primary.Delete(ctx, id)
	if err == nil || errors.Is(err, ErrNotFound) {
		return err
	}
	s.log.Warn("primary foodtruck store failed on delete, using fallback",
		zap.String("id", id), zap.Error(err))
	return s.fallback.Delete(ctx, id)
}

// FallbackDevis composes a primary and a fallback DevisStore.
type FallbackDevis struct {
	primary  DevisStore
	fallback DevisStore
	log      *zap.Logger
}

func NewFallbackDevis(primary, fallback DevisStore, log *zap.Logger) *FallbackDevis {
	return &FallbackDevis{primary: primary, fallback: fallback, log: log}
}

func (s *FallbackDevis) GetAll(ctx context.Context) ([]models.Devis, error) {
	list, err := s.primary.GetAll(ctx)
	if err == nil {
		return list, nil
	}
	s.log.Warn("primary devis store failed on getAll, using fallback", zap.Error(err))
	list, err = s.fallback.GetAll(ctx)
	if err != nil {
		s.log.Error("fallback devis store failed on getAll", zap.Error(err))
		return []models.Devis{}, nil
	}
	return list, nil
}

func (s *FallbackDevis) GetByID(ctx context.Context, id string) (*models.Devis, error) {
	devis, err := s.primary.GetByID(ctx, id)
	if err == nil || errors.Is(err, ErrNotFound) {
		return devis, err
	}
	s.log.Warn("primary devis store failed on getById, using fallback",
		zap.String("id", id), zap.Error(err))
	devis, err = s.fallback.GetByID(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.log.Error("fallback devis store failed on getById", zap.String("id", id), zap.Error(err))
		return nil, ErrNotFound
	}
	return devis, err
}

func (s *FallbackDevis) Create(ctx context.Context, devis models.Devis) (*models.Devis, error) {
	created, err := s.primary.Create(ctx, devis)
	if err == nil {
		return created, nil
	}
	s.log.Warn("primary devis store failed on create, using fallback", zap.Error(err))
	return s.fallback.Create(ctx, devis)
}

func (s *FallbackDevis) Update(ctx context.Context, id string, updates models.DevisUpdate) (*models.Devis, error) {
	updated, err := s.primary.Update(ctx, id, updates)
	if err == nil || errors.Is(err, ErrNotFound) {
		return updated, err
	}
	s.log.Warn("primary devis store failed on update, using fallback",
		zap.String("id", id), zap.Error(err))
	return s.fallback.Update(ctx, id, updates)
}

// FallbackMessages composes a primary and a fallback MessageStore.
type FallbackMessages struct {
	primary  MessageStore
	fallback MessageStore
	log      *zap.Logger
}

func NewFallbackMessages(primary, fallback MessageStore, log *zap.Logger) *FallbackMessages {
	return &FallbackMessages{primary: primary, fallback: fallback, log: log}
}

func (s *FallbackMessages) GetAll(ctx context.Context) ([]models.Message, error) {
	list, err := s.primary.GetAll(ctx)
	if err == nil {
		return list, nil
	}
	s.log.Warn("primary message store failed on getAll, using fallback", zap.Error(err))
	list, err = s.fallback.GetAll(ctx)
	if err != nil {
		s.log.Error("fallback message store failed on getAll", zap.Error(err))
		return []models.Message{}, nil
	}
	return list, nil
}

func (s *FallbackMessages) GetByID(ctx context.Context, id string) (*models.Message, error) {
	msg, err := s.primary.GetByID(ctx, id)
	if err == nil || errors.Is(err, ErrNotFound) {
		return msg, err
	}
	s.log.Warn("primary message store failed on getById, using fallback",
		zap.String("id", id), zap.Error(err))
	msg, err = s.fallback.GetByID(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.log.Error("fallback message store failed on getById", zap.String("id", id), zap.Error(err))
		return nil, ErrNotFound
	}
	return msg, err
}

func (s *FallbackMessages) Create(ctx context.Context, msg models.Message) (*models.Message, error) {
	created, err := s.primary.Create(ctx, msg)
	if err == nil {
		return created, nil
	}
	s.log.Warn("primary message store failed on create, using fallback", zap.Error(err))
	return s.fallback.Create(ctx, msg)
}

func (s *FallbackMessages) UpdateStatus(ctx context.Context, id string, status models.MessageStatus) (*models.Message, error) {
	updated, err := s.primary.UpdateStatus(ctx, id, status)
	if err == nil || errors.Is(err, ErrNotFound) {
		return updated, err
	}
	s.log.Warn("primary message store failed on updateStatus, using fallback",
		zap.String("id", id), zap.Error(err))
	return s.fallback.UpdateStatus(ctx, id, status)
}

// FallbackSettings composes a primary and a fallback SettingsStore.
type FallbackSettings struct {
	primary  SettingsStore
	fallback SettingsStore
	log      *zap.Logger
}

func NewFallbackSettings(primary, fallback SettingsStore, log *zap.Logger) *FallbackSettings {
	return &FallbackSettings{primary: primary, fallback: fallback, log: log}
}

func (s *FallbackSettings) Get(ctx context.Context) (models.Settings, error) {
	settings, err := s.primary.Get(ctx)
	if err == nil {
		return settings, nil
	}
	s.log.Warn("primary settings store failed on get, using fallback", zap.Error(err))
	settings, err = s.fallback.Get(ctx)
	if err != nil {
		s.log.Error("fallback settings store failed on get", zap.Error(err))
		return models.DefaultSettings(), nil
	}
	return settings, nil
}

func (s *FallbackSettings) Save(ctx context.Context, settings models.Settings) error {
	if err := s.primary.Save(ctx, settings); err != nil {
		s.log.Warn("primary settings store failed on save, using fallback", zap.Error(err))
		return s.fallback.Save(ctx, settings)
	}
	return nil
}

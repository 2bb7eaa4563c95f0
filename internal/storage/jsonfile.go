package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"foodtrucks-maroc-api-server/internal/models"
)

// jsonCollection holds all records of one entity type in a single JSON array
// file. Every operation reads the whole file, mutates the slice in memory and
// writes the whole file back. The mutex serializes writers in this process;
// concurrent processes are last-write-wins, acceptable at this write volume.
type jsonCollection[T any] struct {
	path string
	mu   sync.Mutex
}

func (c *jsonCollection[T]) read() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			// Created lazily on first write.
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.path, err)
	}
	return items, nil
}

func (c *jsonCollection[T]) write(items []T) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.path, err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	return nil
}

// FileFoodTrucks is the file-backed listing store.
type FileFoodTrucks struct {
	col jsonCollection[models.FoodTruck]
}

func NewFileFoodTrucks(dir string) *FileFoodTrucks {
	return &FileFoodTrucks{col: jsonCollection[models.FoodTruck]{path: filepath.Join(dir, "foodtrucks.json")}}
}

func (s *FileFoodTrucks) GetAll(ctx context.Context) ([]models.FoodTruck, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	return s.col.read()
}

func (s *FileFoodTrucks) GetByID(ctx context.Context, id string) (*models.FoodTruck, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	trucks, err := s.col.read()
	if err != nil {
		return nil, err
	}
	for i := range trucks {
		if trucks[i].ID == id {
			t := trucks[i]
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileFoodTrucks) Create(ctx context.Context, truck models.FoodTruck) (*models.FoodTruck, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	trucks, err := s.col.read()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	truck.ID = NewID()
	truck.CreatedAt = now
	truck.UpdatedAt = now
	trucks = append(trucks, truck)
	if err := s.col.write(trucks); err != nil {
		return nil, err
	}
	return &truck, nil
}

func (s *FileFoodTrucks) Update(ctx context.Context, id string, updates models.FoodTruckUpdate) (*models.FoodTruck, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	trucks, err := s.col.read()
	if err != nil {
		return nil, err
	}
	for i := range trucks {
		if trucks[i].ID == id {
			updates.Apply(&trucks[i])
			trucks[i].UpdatedAt = time.Now()
			if err := s.col.write(trucks); err != nil {
				return nil, err
			}
			t := trucks[i]
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileFoodTrucks) Delete(ctx context.Context, id string) error {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	trucks, err := s.col.read()
	if err != nil {
		return err
	}
	kept := trucks[:0]
	for _, t := range trucks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(trucks) {
		return ErrNotFound
	}
	return s.col.write(kept)
}

// FileDevis is the file-backed quote request store.
type FileDevis struct {
	col jsonCollection[models.Devis]
}

func NewFileDevis(dir string) *FileDevis {
	return &FileDevis{col: jsonCollection[models.Devis]{path: filepath.Join(dir, "devis.json")}}
}

func (s *FileDevis) GetAll(ctx context.Context) ([]models.Devis, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	return s.col.read()
}

func (s *FileDevis) GetByID(ctx context.Context, id string) (*models.Devis, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	list, err := s.col.read()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			d := list[i]
			return &d, nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileDevis) Create(ctx context.Context, devis models.Devis) (*models.Devis, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	list, err := s.col.read()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	devis.ID = NewID()
	devis.CreatedAt = now
	devis.UpdatedAt = now
	list = append(list, devis)
	if err := s.col.write(list); err != nil {
		return nil, err
	}
	return &devis, nil
}

func (s *FileDevis) Update(ctx context.Context, id string, updates models.DevisUpdate) (*models.Devis, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	list, err := s.col.read()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			updates.Apply(&list[i])
			list[i].UpdatedAt = time.Now()
			if err := s.col.write(list); err != nil {
				return nil, err
			}
			d := list[i]
			return &d, nil
		}
	}
	return nil, ErrNotFound
}

// FileMessages is the file-backed contact message store.
type FileMessages struct {
	col jsonCollection[models.Message]
}

func NewFileMessages(dir string) *FileMessages {
	return &FileMessages{col: jsonCollection[models.Message]{path: filepath.Join(dir, "messages.json")}}
}

func (s *FileMessages) GetAll(ctx context.Context) ([]models.Message, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	return s.col.read()
}

func (s *FileMessages) GetByID(ctx context.Context, id string) (*models.Message, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	list, err := s.col.read()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			m := list[i]
			return &m, nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileMessages) Create(ctx context.Context, msg models.Message) (*models.Message, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	list, err := s.col.read()
	if err != nil {
		return nil, err
	}
	msg.ID = NewID()
	msg.CreatedAt = time.Now()
	list = append(list, msg)
	if err := s.col.write(list); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *FileMessages) UpdateStatus(ctx context.Context, id string, status models.MessageStatus) (*models.Message, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	list, err := s.col.read()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			list[i].Status = status
			if err := s.col.write(list); err != nil {
				return nil, err
			}
			m := list[i]
			return &m, nil
		}
	}
	return nil, ErrNotFound
}

// FileSettings stores the settings document as a single JSON object.
type FileSettings struct {
	path string
	mu   sync.Mutex
}

func NewFileSettings(dir string) *FileSettings {
	return &FileSettings{path: filepath.Join(dir, "settings.json")}
}

func (s *FileSettings) Get(ctx context.Context) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return models.Settings{}, fmt.Errorf("read %s: %w", s.path, err)
	}
	// Start from defaults so fields added later keep a sensible value.
	settings := models.DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return models.Settings{}, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return settings, nil
}

func (s *FileSettings) Save(ctx context.Context, settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

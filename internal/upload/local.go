package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage writes uploads to a directory served as static files.
type LocalStorage struct {
	Dir     string
	BaseURL string // e.g. "/uploads"
}

func NewLocalStorage(dir, baseURL string) *LocalStorage {
	return &LocalStorage{Dir: dir, BaseURL: strings.TrimSuffix(baseURL, "/")}
}

func (s *LocalStorage) Save(ctx context.Context, fileName, contentType string, body io.Reader) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}
	// fileName is generated by the handler, but strip path components anyway.
	fileName = filepath.Base(fileName)

	dst, err := os.Create(filepath.Join(s.Dir, fileName))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, body); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return s.BaseURL + "/" + fileName, nil
}

func (s *LocalStorage) Delete(ctx context.Context, fileName string) error {
	fileName = filepath.Base(fileName)
	if err := os.Remove(filepath.Join(s.Dir, fileName)); err != nil {
		return fmt.Errorf("delete upload file: %w", err)
	}
	return nil
}

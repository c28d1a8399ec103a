package filestorage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalFileStorage grava em disco sob basePath, organizando por prefixo e data.
type LocalFileStorage struct {
	basePath  string
	publicURL string
}

func NewLocalFileStorage(basePath, publicURL string) (*LocalFileStorage, error) {
	if _, err := os.Stat(basePath); os.IsNotExist(err) {
		if err := os.MkdirAll(basePath, 0o755); err != nil {
			return nil, fmt.Errorf("falha ao criar diretório de uploads: %w", err)
		}
	}
	return &LocalFileStorage{basePath: basePath, publicURL: strings.TrimSuffix(publicURL, "/")}, nil
}

func (s *LocalFileStorage) Save(_ context.Context, file io.Reader, _ int64, originalName, _ string, prefix string) (StoredFile, error) {
	ext := filepath.Ext(originalName)
	uniqueName := fmt.Sprintf("%s-%s%s", time.Now().Format("2006-01-02"), uuid.New().String(), ext)

	datePath := time.Now().Format("2006/01/02")
	fullDirPath := filepath.Join(s.basePath, prefix, datePath)
	if err := os.MkdirAll(fullDirPath, 0o755); err != nil {
		return StoredFile{}, err
	}

	dst, err := os.Create(filepath.Join(fullDirPath, uniqueName))
	if err != nil {
		return StoredFile{}, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return StoredFile{}, err
	}

	key := filepath.ToSlash(filepath.Join(prefix, datePath, uniqueName))
	return StoredFile{Key: key, URL: s.publicURL + "/" + key}, nil
}

func (s *LocalFileStorage) Delete(_ context.Context, key string) error {
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(key))
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(fullPath)
}

package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalProvider stores objects on the local file system.
type LocalProvider struct {
	basePath string
	baseURL  string
}

// NewLocalProvider creates a local storage provider rooted at basePath.
// Objects are served under baseURL/uploads.
func NewLocalProvider(basePath, baseURL string) (*LocalProvider, error) {
	if basePath == "" {
		basePath = "./uploads"
	}

	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %v", err)
	}

	return &LocalProvider{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

func (lp *LocalProvider) Name() string { return "local" }

func (lp *LocalProvider) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	fullPath := filepath.Join(lp.basePath, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return NewStorageError("local", "MKDIR_FAILED", err.Error(), key)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return NewStorageError("local", "CREATE_FAILED", err.Error(), key)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return NewStorageError("local", "WRITE_FAILED", err.Error(), key)
	}
	return nil
}

func (lp *LocalProvider) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	fullPath := filepath.Join(lp.basePath, filepath.FromSlash(key))
	file, err := os.Open(fullPath)
	if err != nil {
		return nil, NewStorageError("local", "OPEN_FAILED", err.Error(), key)
	}
	return file, nil
}

func (lp *LocalProvider) Delete(ctx context.Context, key string) error {
	fullPath := filepath.Join(lp.basePath, filepath.FromSlash(key))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return NewStorageError("local", "DELETE_FAILED", err.Error(), key)
	}
	return nil
}

func (lp *LocalProvider) URL(key string) string {
	return lp.baseURL + "/uploads/" + key
}

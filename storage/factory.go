package storage

import (
	"fmt"

	"opsdesk/config"
)

var activeProvider Provider

// Initialize builds the configured provider and makes it available through
// GetProvider.
func Initialize(cfg *config.Config) error {
	provider, err := newProvider(cfg)
	if err != nil {
		return err
	}
	activeProvider = provider
	return nil
}

// GetProvider returns the configured storage provider.
func GetProvider() Provider {
	if activeProvider == nil {
		panic("storage provider not initialized")
	}
	return activeProvider
}

func newProvider(cfg *config.Config) (Provider, error) {
	switch cfg.StorageProvider {
	case "local":
		return NewLocalProvider(cfg.UploadPath, cfg.AppURL)
	case "s3":
		return NewS3Provider(S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	default:
		return nil, fmt.Errorf("unknown storage provider: %s", cfg.StorageProvider)
	}
}

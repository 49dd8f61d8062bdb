package s3

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/doka-one/doka/config"
)

// NewProvider builds the S3ObjectStorage and registers an fx.Lifecycle hook
// that confirms the configured bucket is reachable on OnStart. A missing or
// unreachable bucket fails app startup with an error instead of crashing the
// process outright, the same way internal/transporthttp/module.go routes its
// own startup failures through the lifecycle.
func NewProvider(lc fx.Lifecycle, cfg *config.Configuration, logger *zap.Logger) (S3ObjectStorage, error) {
	configProvider := NewS3ObjectStorageConfigurationProvider(
		cfg.AWS.AccessKey,
		cfg.AWS.SecretKey,
		cfg.AWS.Endpoint,
		cfg.AWS.Region,
		cfg.AWS.BucketName,
		false,
	)

	storage, err := NewObjectStorage(configProvider, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			exists, err := storage.BucketExists(ctx, cfg.AWS.BucketName)
			if err != nil {
				return fmt.Errorf("s3: check bucket %q: %w", cfg.AWS.BucketName, err)
			}
			if !exists {
				return fmt.Errorf("s3: bucket %q does not exist", cfg.AWS.BucketName)
			}
			return nil
		},
	})

	return storage, nil
}

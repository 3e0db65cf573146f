package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pdrims-http-service/internal/infrastructure/config"
	"pdrims-http-service/pkg/logger"

	"gorm.io/gorm"
)

// defaultQueryTimeout bounds store calls when the config leaves it unset.
const defaultQueryTimeout = 5 * time.Second

// queryTimeout reads the per-call store timeout from cfg.
func queryTimeout(cfg *config.Config) time.Duration {
	if cfg == nil || cfg.DBQueryTimeout <= 0 {
		return defaultQueryTimeout
	}
	return cfg.DBQueryTimeout
}

// storageContext bounds a single store call.
func storageContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// storageError classifies a failed store call as a timeout or an outage and
// logs the driver detail, which must not reach callers.
func storageError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}

	kind := ErrStorageUnavailable
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		kind = ErrStorageTimeout
	}

	logger.WithFields(map[string]interface{}{
		"op":    op,
		"kind":  kind.Error(),
		"error": err.Error(),
	}).Error("storage call failed")

	return fmt.Errorf("%s: %w", op, kind)
}

// isNotFound reports gorm's missing-row error.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"pdrims-http-service/internal/infrastructure/database"
	"pdrims-http-service/internal/test/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	gormlogger "gorm.io/gorm/logger"
)

func newMockAudit(t *testing.T, timeout time.Duration) (InterfaceAuditService, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	pool, err := database.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), gormlogger.Silent)
	require.NoError(t, err)

	cfg := testutil.Config()
	cfg.DBQueryTimeout = timeout
	return NewAuditService(pool.GetDB(), cfg, nil), mock
}

func TestSlowStoreTimesOut(t *testing.T) {
	audit, mock := newMockAudit(t, 50*time.Millisecond)

	mock.ExpectQuery("SELECT").
		WillDelayFor(time.Second).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	start := time.Now()
	_, err := audit.ListLogs(context.Background(), 10)
	assert.ErrorIs(t, err, ErrStorageTimeout)
	assert.Less(t, time.Since(start), 900*time.Millisecond)
}

func TestStoreFailureHidesDriverDetail(t *testing.T) {
	audit, mock := newMockAudit(t, time.Second)

	mock.ExpectQuery("SELECT").
		WillReturnError(errors.New("Error 1045 (28000): Access denied for user 'root'"))

	_, err := audit.ListLogs(context.Background(), 10)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.NotContains(t, err.Error(), "1045")
	assert.NotContains(t, err.Error(), "root")
}

func TestStorageContextDefaultsTimeout(t *testing.T) {
	ctx, cancel := storageContext(context.Background(), 0)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(defaultQueryTimeout), deadline, time.Second)
}

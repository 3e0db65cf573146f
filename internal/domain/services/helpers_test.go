package services

import (
	"context"
	"testing"

	"pdrims-http-service/internal/domain/models"
	"pdrims-http-service/internal/infrastructure/config"
	"pdrims-http-service/internal/test/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testLedger struct {
	db         *gorm.DB
	cfg        *config.Config
	audit      InterfaceAuditService
	households InterfaceHouseholdService
	aid        InterfaceAidRecordService
	users      InterfaceUserService
}

func newTestLedger(t *testing.T) *testLedger {
	t.Helper()

	db := testutil.NewDB(t)
	cfg := testutil.Config()
	ids, err := NewSnowflakeIDGenerator(cfg.NodeID)
	require.NoError(t, err)

	audit := NewAuditService(db, cfg, nil)
	return &testLedger{
		db:         db,
		cfg:        cfg,
		audit:      audit,
		households: NewHouseholdService(db, cfg, audit, ids),
		aid:        NewAidRecordService(db, cfg, audit),
		users:      NewUserService(db, cfg, audit),
	}
}

func (l *testLedger) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, l.db.Model(model).Count(&n).Error)
	return n
}

func (l *testLedger) logs(t *testing.T) []models.SystemLog {
	t.Helper()
	logs, err := l.audit.ListLogs(context.Background(), MaxLogEntries)
	require.NoError(t, err)
	return logs
}

func (l *testLedger) createHousehold(t *testing.T, headName string) string {
	t.Helper()
	id, err := l.households.CreateHousehold(context.Background(), HouseholdInput{
		HeadName: headName,
		Purok:    "Purok 1",
	})
	require.NoError(t, err)
	return id
}

func intPtr(n int) *int { return &n }

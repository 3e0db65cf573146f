package services

import (
	"context"
	"fmt"
	"testing"

	"pdrims-http-service/internal/domain/models"
	"pdrims-http-service/internal/test/testutil"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLogsNewestFirst(t *testing.T) {
	l := newTestLedger(t)

	const total = 105
	for i := 0; i < total; i++ {
		l.audit.AppendAudit("Kagawad Santos", "Test Action", fmt.Sprintf("op %d", i))
	}

	logs, err := l.audit.ListLogs(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, logs, MaxLogEntries)

	assert.Equal(t, fmt.Sprintf("op %d", total-1), logs[0].Target)
	assert.Equal(t, fmt.Sprintf("op %d", total-MaxLogEntries), logs[MaxLogEntries-1].Target)
	for i := 1; i < len(logs); i++ {
		assert.Greater(t, logs[i-1].ID, logs[i].ID, "entry %d out of order", i)
	}
}

func TestListLogsLimit(t *testing.T) {
	l := newTestLedger(t)
	for i := 0; i < 120; i++ {
		l.audit.AppendAudit("", "Test Action", "")
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "explicit", limit: 10, want: 10},
		{name: "zero means max", limit: 0, want: MaxLogEntries},
		{name: "negative means max", limit: -5, want: MaxLogEntries},
		{name: "over max is clamped", limit: 500, want: MaxLogEntries},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs, err := l.audit.ListLogs(context.Background(), tt.limit)
			require.NoError(t, err)
			assert.Len(t, logs, tt.want)
		})
	}
}

func TestAppendAuditDefaultsActor(t *testing.T) {
	l := newTestLedger(t)

	l.audit.AppendAudit("", "Seeded", "")

	logs := l.logs(t)
	require.Len(t, logs, 1)
	assert.Equal(t, SystemActor, logs[0].Actor)
	assert.False(t, logs[0].Timestamp.IsZero())
}

func TestAuditFailureDoesNotFailMutation(t *testing.T) {
	db := testutil.NewDB(t)
	cfg := testutil.Config()
	ids, err := NewSnowflakeIDGenerator(cfg.NodeID)
	require.NoError(t, err)

	failures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_audit_write_failures_total",
	})
	audit := NewAuditService(db, cfg, failures)
	households := NewHouseholdService(db, cfg, audit, ids)

	require.NoError(t, db.Migrator().DropTable(&models.SystemLog{}))

	id, err := households.CreateHousehold(context.Background(), HouseholdInput{
		HeadName: "Juan Dela Cruz",
		Purok:    "Purok 3",
	})
	require.NoError(t, err)

	got, err := households.GetHousehold(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Juan Dela Cruz", got.HeadName)
	assert.Equal(t, float64(1), promtest.ToFloat64(failures))
}

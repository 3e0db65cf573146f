package benchmark

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests load a running server. They are skipped unless
// PDRIMS_BENCH_URL points at its /api root, e.g. http://localhost:3000/api.

type benchConfig struct {
	BaseURL     string
	AdminEmail  string
	AdminPass   string
	Concurrency int
	Requests    int
}

var (
	cfg       benchConfig
	authToken string
)

func TestMain(m *testing.M) {
	cfg = benchConfig{
		BaseURL:     os.Getenv("PDRIMS_BENCH_URL"),
		AdminEmail:  envOr("PDRIMS_BENCH_EMAIL", "admin@pdrims.gov"),
		AdminPass:   envOr("PDRIMS_BENCH_PASSWORD", "admin123"),
		Concurrency: envInt("PDRIMS_BENCH_CONCURRENCY", 10),
		Requests:    envInt("PDRIMS_BENCH_REQUESTS", 100),
	}

	if cfg.BaseURL != "" {
		if err := login(); err != nil {
			fmt.Fprintf(os.Stderr, "benchmark login failed: %v\n", err)
			os.Exit(1)
		}
	}
	os.Exit(m.Run())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil && n > 0 {
		return n
	}
	return fallback
}

func login() error {
	client := NewAPIBenchmark(cfg.BaseURL, 1, 1, "")
	var resp struct {
		Token string `json:"token"`
	}
	status, err := client.Do(http.MethodPost, "/login", map[string]string{
		"username": cfg.AdminEmail,
		"password": cfg.AdminPass,
	}, &resp)
	if err != nil {
		return err
	}
	if status != http.StatusOK || resp.Token == "" {
		return fmt.Errorf("login returned status %d", status)
	}
	authToken = resp.Token
	return nil
}

func requireServer(t *testing.T) *APIBenchmark {
	t.Helper()
	if cfg.BaseURL == "" {
		t.Skip("PDRIMS_BENCH_URL not set")
	}
	return NewAPIBenchmark(cfg.BaseURL, cfg.Concurrency, cfg.Requests, authToken)
}

func TestHouseholdIntakeLoad(t *testing.T) {
	bench := requireServer(t)

	result := bench.RunPOST("/households", func(i int) interface{} {
		return map[string]interface{}{
			"head_name":      fmt.Sprintf("Load Test Head %d", i),
			"purok":          fmt.Sprintf("Purok %d", i%7+1),
			"damage_status":  "Partial",
			"head_age":       30 + i%40,
			"family_members": []interface{}{},
			"official_name":  "Load Test",
		}
	})
	result.PrintResult(os.Stdout)

	assert.Zero(t, result.FailureCount, "household intake under load")
}

func TestHouseholdListLoad(t *testing.T) {
	bench := requireServer(t)

	result := bench.RunGET("/households")
	result.PrintResult(os.Stdout)

	assert.Zero(t, result.FailureCount, "household listing under load")
}

func TestAidDistributionLoad(t *testing.T) {
	bench := requireServer(t)

	var created struct {
		ID string `json:"id"`
	}
	status, err := bench.Do(http.MethodPost, "/households", map[string]interface{}{
		"head_name": "Aid Load Recipient",
		"purok":     "Purok 1",
	}, &created)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)

	result := bench.RunPOST("/aid-records", func(i int) interface{} {
		return map[string]interface{}{
			"recipient_id":     created.ID,
			"aid_type":         "Food Pack",
			"quantity":         strconv.Itoa(i+1) + " boxes",
			"date_distributed": "2025-01-01",
			"distributed_by":   "LGU",
		}
	})
	result.PrintResult(os.Stdout)

	assert.Zero(t, result.FailureCount, "aid distribution under load")
}

func TestAuditLogLoad(t *testing.T) {
	bench := requireServer(t)

	result := bench.RunGET("/logs")
	result.PrintResult(os.Stdout)

	assert.Zero(t, result.FailureCount, "audit log listing under load")
}

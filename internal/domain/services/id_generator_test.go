package services

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var householdIDPattern = regexp.MustCompile(`^[0-9A-Z]{1,20}$`)

func TestSnowflakeIDGeneratorConcurrentUnique(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	gen, err := NewSnowflakeIDGenerator(7)
	require.NoError(t, err)

	const workers = 32
	const perWorker = 250

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]string, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, gen.NextID())
			}
			mu.Lock()
			for _, id := range local {
				seen[id] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
	for id := range seen {
		require.Regexp(t, householdIDPattern, id)
	}
}

func TestSnowflakeIDGeneratorNodeRange(t *testing.T) {
	tests := []struct {
		name    string
		node    int64
		wantErr bool
	}{
		{name: "lowest node", node: 0},
		{name: "highest node", node: 1023},
		{name: "negative node", node: -1, wantErr: true},
		{name: "node too large", node: 1024, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewSnowflakeIDGenerator(tt.node)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, gen.NextID())
		})
	}
}

package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-catalog/internal/core/recipe"
	"recipe-catalog/internal/infrastructure/config"
	"recipe-catalog/internal/pkg/common"
)

func newDisabledSyncer() *Syncer {
	return NewSyncer(
		NewClient(config.AlgoliaConfig{}),
		config.SyncConfig{QueueSize: 4, BatchSize: 100},
	)
}

func TestEnqueueNoopWhenDisabled(t *testing.T) {
	s := newDisabledSyncer()
	defer s.Close()

	// 未設定憑證時排入不阻塞也不佔用隊列
	for i := 0; i < 100; i++ {
		s.EnqueueSave(&recipe.Recipe{ID: "a", Title: "Fried Rice"})
		s.EnqueueDelete("a")
	}

	stats := s.Stats()
	assert.False(t, stats.Enabled)
	assert.Equal(t, 0, stats.QueueLength)
	assert.Equal(t, int64(0), stats.Dropped)
}

func TestSyncAllDisabled(t *testing.T) {
	s := newDisabledSyncer()
	defer s.Close()

	_, err := s.SyncAll(context.Background(), nil)
	require.Equal(t, common.ErrSearchDisabled, err)
}

func TestStatsAfterClose(t *testing.T) {
	s := newDisabledSyncer()
	s.EnqueueSave(&recipe.Recipe{ID: "a"})
	s.Close()

	stats := s.Stats()
	assert.Equal(t, 0, stats.QueueLength)
}

package scheduler

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yupiter/analytics-api/infrastructure/kvstore"
	"github.com/yupiter/analytics-api/internal/config"
)

func newTestSnapshotService(t *testing.T, enabled bool) (*SnapshotSyncService, kvstore.Store) {
	t.Helper()

	store, err := kvstore.NewFile(afero.NewMemMapFs(), "/data", "yup_")
	require.NoError(t, err)

	cfg := &config.Config{
		SnapshotSync: config.SnapshotSync{
			CronSchedule: "0 2 * * *",
			Enabled:      enabled,
		},
	}

	return NewSnapshotSyncService(store, cfg), store
}

func TestSnapshotSync_RunNowWritesSnapshotKey(t *testing.T) {
	service, store := newTestSnapshotService(t, false)

	require.NoError(t, store.Set(kvstore.KeyStores, []map[string]any{{"name": "28 May"}}))

	service.RunNow()

	status := service.Status()
	require.NotEmpty(t, status.LastRunKey)
	assert.True(t, strings.HasPrefix(status.LastRunKey, "snapshot_"))
	assert.Empty(t, status.LastRunErr)
	require.NotNil(t, status.LastRunAt)

	var snapshot map[string]any
	require.True(t, store.Get(status.LastRunKey, &snapshot))

	// Every collection key appears, populated or not
	assert.Len(t, snapshot, len(kvstore.CollectionKeys))
	assert.NotNil(t, snapshot[kvstore.KeyStores])
	assert.Nil(t, snapshot[kvstore.KeyMeetings])
}

func TestSnapshotSync_StatusReflectsConfiguration(t *testing.T) {
	service, _ := newTestSnapshotService(t, true)

	status := service.Status()

	assert.True(t, status.Enabled)
	assert.False(t, status.Running)
	assert.Nil(t, status.LastRunAt)
	assert.Equal(t, len(kvstore.CollectionKeys), status.Collections)
}

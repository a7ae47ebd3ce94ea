package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/yupiter/analytics-api/infrastructure/kvstore"
	"github.com/yupiter/analytics-api/internal/config"
)

// SnapshotSyncConfig holds the scheduler settings for collection snapshots
type SnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SnapshotStatus describes the scheduler state for the status endpoint
type SnapshotStatus struct {
	Enabled     bool       `json:"enabled"`
	Running     bool       `json:"running"`
	LastRunAt   *time.Time `json:"lastRunAt,omitempty"`
	LastRunKey  string     `json:"lastRunKey,omitempty"`
	LastRunErr  string     `json:"lastRunError,omitempty"`
	Collections int        `json:"collections"`
}

// SnapshotSyncService periodically copies every collection document into a
// timestamped snapshot key, so a bad write can be recovered by hand.
type SnapshotSyncService struct {
	scheduler *gocron.Scheduler
	config    SnapshotSyncConfig
	store     kvstore.Store

	syncRunning bool
	syncMutex   sync.Mutex
	lastRunAt   time.Time
	lastRunKey  string
	lastRunErr  error
}

func NewSnapshotSyncService(store kvstore.Store, appConfig *config.Config) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule: appConfig.SnapshotSync.CronSchedule,
		SyncEnabled:  appConfig.SnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("snapshot scheduler configuration loaded")

	return &SnapshotSyncService{
		scheduler: scheduler,
		config:    syncConfig,
		store:     store,
	}
}

// Start schedules the snapshot job and runs the scheduler until the context
// is cancelled. With the sync disabled it does nothing.
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("collection snapshot sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting collection snapshot scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSnapshot()
	})
	if err != nil {
		return fmt.Errorf("scheduling collection snapshot: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping collection snapshot scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow triggers one snapshot immediately, regardless of the schedule.
func (s *SnapshotSyncService) RunNow() {
	s.runSnapshot()
}

// Status reports the current scheduler state.
func (s *SnapshotSyncService) Status() SnapshotStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := SnapshotStatus{
		Enabled:     s.config.SyncEnabled,
		Running:     s.syncRunning,
		LastRunKey:  s.lastRunKey,
		Collections: len(kvstore.CollectionKeys),
	}

	if !s.lastRunAt.IsZero() {
		at := s.lastRunAt
		status.LastRunAt = &at
	}
	if s.lastRunErr != nil {
		status.LastRunErr = s.lastRunErr.Error()
	}

	return status
}

func (s *SnapshotSyncService) runSnapshot() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("collection snapshot already in progress, skipping")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastRunAt = time.Now()
		s.syncMutex.Unlock()
	}()

	snapshotKey := fmt.Sprintf("snapshot_%s", startTime.UTC().Format("20060102T150405"))

	logrus.WithField("snapshot_key", snapshotKey).Info("starting collection snapshot")

	// Raw documents keyed by collection name. Missing collections are stored
	// as nil so the snapshot always lists every key.
	snapshot := make(map[string]any, len(kvstore.CollectionKeys))
	for _, key := range kvstore.CollectionKeys {
		var value any
		if s.store.Get(key, &value) {
			snapshot[key] = value
		} else {
			snapshot[key] = nil
		}
	}

	err := s.store.Set(snapshotKey, snapshot)

	s.syncMutex.Lock()
	s.lastRunKey = snapshotKey
	s.lastRunErr = err
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("collection snapshot failed")
		return
	}

	logrus.WithFields(logrus.Fields{
		"snapshot_key": snapshotKey,
		"collections":  len(kvstore.CollectionKeys),
		"duration":     time.Since(startTime).String(),
	}).Info("collection snapshot completed")
}

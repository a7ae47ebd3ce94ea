package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/yupiter/analytics-api/internal/scheduler"
	"github.com/yupiter/analytics-api/pkg/apiErrors"
)

// RunSnapshot triggers one collection snapshot immediately. The snapshot runs
// in the background; the handler returns as soon as it is kicked off.
func RunSnapshot(service *scheduler.SnapshotSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		go service.RunNow()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "started",
		})
	}
}

// GetSnapshotStatus reports the snapshot scheduler state
func GetSnapshotStatus(service *scheduler.SnapshotSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := service.Status()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Could not send response", nil)
		}
	}
}

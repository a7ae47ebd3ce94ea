package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/yupiter/analytics-api/internal/usecases/insighting"
	"github.com/yupiter/analytics-api/pkg/apiErrors"
)

// GetDashboard returns the KPI summary, top stores chart and region split
func GetDashboard(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := service.Dashboard()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Could not send response", nil)
		}
	}
}

// GetProductivity returns the per-area and per-employee productivity report
func GetProductivity(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := service.Productivity()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Could not send response", nil)
		}
	}
}

// GetPipelineCounts returns negative store counts per remediation stage
func GetPipelineCounts(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts := service.PipelineCounts()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(counts); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Could not send response", nil)
		}
	}
}

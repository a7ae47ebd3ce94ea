package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/yupiter/analytics-api/internal/usecases/projecting"
	"github.com/yupiter/analytics-api/pkg/apiErrors"
)

// GetProjection runs the investment simulation. Each assumption is an
// optional query parameter; anything missing or unparsable falls back to the
// default, and out-of-range values are clamped by the service.
func GetProjection(service projecting.Projector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		assumptions := service.Defaults()
		assumptions.MonthlySales = floatParam(query, "monthlySales", assumptions.MonthlySales)
		assumptions.MarginPct = floatParam(query, "marginPct", assumptions.MarginPct)
		assumptions.Rent = floatParam(query, "rent", assumptions.Rent)
		assumptions.Staff = floatParam(query, "staff", assumptions.Staff)
		assumptions.Logistics = floatParam(query, "logistics", assumptions.Logistics)
		assumptions.Investment = floatParam(query, "investment", assumptions.Investment)
		assumptions.RampMonths = intParam(query, "rampMonths", assumptions.RampMonths)

		projection := service.Project(assumptions)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(projection); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Could not send response", nil)
		}
	}
}

func floatParam(query url.Values, name string, fallback float64) float64 {
	raw := query.Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}

func intParam(query url.Values, name string, fallback int) int {
	raw := query.Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

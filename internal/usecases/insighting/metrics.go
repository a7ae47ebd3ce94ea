package insighting

import (
	"math"

	"github.com/yupiter/analytics-api/internal/domain"
	"github.com/yupiter/analytics-api/pkg/utils"
)

// ComputeMetrics fills the derived fields of a store from its base inputs.
// Ratios with a non-positive denominator come out as zero instead of Inf/NaN
// so a half-filled record never poisons the aggregates.
func ComputeMetrics(store *domain.Store) {
	store.EBITDA = store.GrossProfit - store.Opex

	if store.Sales > 0 {
		store.Margin = utils.RoundWithTwoDecimalPlace(store.GrossProfit / store.Sales * 100)
	} else {
		store.Margin = 0
	}

	if store.Sqm > 0 {
		store.SalesPerSqm = int(math.Round(store.Sales / store.Sqm))
	} else {
		store.SalesPerSqm = 0
	}

	if store.Employees > 0 {
		store.SalesPerEmployee = int(math.Round(store.Sales / float64(store.Employees)))
	} else {
		store.SalesPerEmployee = 0
	}
}

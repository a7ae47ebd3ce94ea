package projecting

import (
	"math"

	"github.com/yupiter/analytics-api/internal/domain"
	"github.com/yupiter/analytics-api/pkg/utils"
)

const seriesMonths = 36

// Projector runs the deterministic new-store investment simulation.
type Projector interface {
	Defaults() domain.Assumptions
	Clamp(a domain.Assumptions) domain.Assumptions
	Project(a domain.Assumptions) *domain.Projection
}

type bound struct {
	min, max float64
}

var bounds = struct {
	monthlySales bound
	marginPct    bound
	rent         bound
	staff        bound
	logistics    bound
	investment   bound
	rampMonths   bound
}{
	monthlySales: bound{50000, 500000},
	marginPct:    bound{10, 40},
	rent:         bound{2000, 20000},
	staff:        bound{5000, 30000},
	logistics:    bound{1000, 10000},
	investment:   bound{50000, 300000},
	rampMonths:   bound{1, 12},
}

type Service struct{}

func NewService() Projector {
	return &Service{}
}

// Defaults are the baseline assumptions of a typical mid-size opening.
func (s *Service) Defaults() domain.Assumptions {
	return domain.Assumptions{
		MonthlySales: 150000,
		MarginPct:    24,
		Rent:         8000,
		Staff:        12000,
		Logistics:    3000,
		Investment:   120000,
		RampMonths:   6,
	}
}

// Clamp pulls every assumption into its allowed range. Out-of-range values
// are snapped to the nearest bound rather than rejected.
func (s *Service) Clamp(a domain.Assumptions) domain.Assumptions {
	a.MonthlySales = clamp(a.MonthlySales, bounds.monthlySales)
	a.MarginPct = clamp(a.MarginPct, bounds.marginPct)
	a.Rent = clamp(a.Rent, bounds.rent)
	a.Staff = clamp(a.Staff, bounds.staff)
	a.Logistics = clamp(a.Logistics, bounds.logistics)
	a.Investment = clamp(a.Investment, bounds.investment)
	a.RampMonths = int(clamp(float64(a.RampMonths), bounds.rampMonths))
	return a
}

// Project computes the P&L line, the 36-month cumulative cash flow and the
// payback/IRR indicators for one set of assumptions. Assumptions are clamped
// first, so the result is always defined.
func (s *Service) Project(a domain.Assumptions) *domain.Projection {
	a = s.Clamp(a)

	grossProfit := a.MonthlySales * a.MarginPct / 100
	opex := a.Rent + a.Staff + a.Logistics
	ebitda := grossProfit - opex

	projection := &domain.Projection{
		Assumptions:  a,
		GrossProfit:  grossProfit,
		Opex:         opex,
		EBITDA:       ebitda,
		AnnualEBITDA: ebitda * 12,
		Series:       make([]domain.CashFlowPoint, 0, seriesMonths),
	}

	// Cumulative cash flow with a linear ramp: month i earns the full EBITDA
	// scaled by min(1, i/ramp).
	for month := 1; month <= seriesMonths; month++ {
		ramp := math.Min(1, float64(month)/float64(a.RampMonths))
		cumulative := math.Round(-a.Investment + ebitda*ramp*float64(month))
		projection.Series = append(projection.Series, domain.CashFlowPoint{
			Month:      month,
			Cumulative: cumulative,
		})
	}

	if ebitda > 0 {
		projection.PaybackMonths = int(math.Ceil(a.Investment / ebitda))
		projection.PaybackReachable = true

		irr := utils.RoundWithTwoDecimalPlace((ebitda*12/a.Investment - 1) * 100)
		projection.IRRPct = &irr
	}

	return projection
}

func clamp(v float64, b bound) float64 {
	if v < b.min {
		return b.min
	}
	if v > b.max {
		return b.max
	}
	return v
}

package projecting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yupiter/analytics-api/internal/domain"
)

func TestProject_Defaults(t *testing.T) {
	service := NewService()

	projection := service.Project(service.Defaults())

	// 150000 * 24% = 36000 gross profit, 23000 opex
	assert.Equal(t, float64(36000), projection.GrossProfit)
	assert.Equal(t, float64(23000), projection.Opex)
	assert.Equal(t, float64(13000), projection.EBITDA)
	assert.Equal(t, float64(156000), projection.AnnualEBITDA)

	// ceil(120000 / 13000) = 10
	assert.True(t, projection.PaybackReachable)
	assert.Equal(t, 10, projection.PaybackMonths)

	// (13000 * 12 / 120000 - 1) * 100 = 30
	require.NotNil(t, projection.IRRPct)
	assert.Equal(t, 30.00, *projection.IRRPct)

	require.Len(t, projection.Series, 36)
}

func TestProject_SeriesRamp(t *testing.T) {
	service := NewService()

	projection := service.Project(service.Defaults())

	// Month 6 is the last ramp month: -120000 + 13000 * 1 * 6 = -42000
	month6 := projection.Series[5]
	assert.Equal(t, 6, month6.Month)
	assert.Equal(t, float64(-42000), month6.Cumulative)

	// Month 12 at full run rate: -120000 + 13000 * 12 = 36000
	month12 := projection.Series[11]
	assert.Equal(t, 12, month12.Month)
	assert.Equal(t, float64(36000), month12.Cumulative)

	// Month 1 earns 1/6 of EBITDA: -120000 + 13000/6 ≈ -117833
	month1 := projection.Series[0]
	assert.Equal(t, 1, month1.Month)
	assert.Equal(t, float64(-117833), month1.Cumulative)
}

func TestProject_NegativeEBITDA(t *testing.T) {
	service := NewService()

	assumptions := service.Defaults()
	assumptions.MarginPct = 10 // 15000 gross profit against 23000 opex

	projection := service.Project(assumptions)

	assert.Equal(t, float64(-8000), projection.EBITDA)
	assert.False(t, projection.PaybackReachable)
	assert.Zero(t, projection.PaybackMonths)
	assert.Nil(t, projection.IRRPct)

	// Cash flow only sinks deeper
	last := projection.Series[len(projection.Series)-1]
	assert.Less(t, last.Cumulative, projection.Series[0].Cumulative)
}

func TestClamp(t *testing.T) {
	service := NewService()

	clamped := service.Clamp(domain.Assumptions{
		MonthlySales: 10,
		MarginPct:    99,
		Rent:         0,
		Staff:        1000000,
		Logistics:    0,
		Investment:   1,
		RampMonths:   0,
	})

	assert.Equal(t, float64(50000), clamped.MonthlySales)
	assert.Equal(t, float64(40), clamped.MarginPct)
	assert.Equal(t, float64(2000), clamped.Rent)
	assert.Equal(t, float64(30000), clamped.Staff)
	assert.Equal(t, float64(1000), clamped.Logistics)
	assert.Equal(t, float64(50000), clamped.Investment)
	assert.Equal(t, 1, clamped.RampMonths)
}

func TestClamp_InRangeValuesUntouched(t *testing.T) {
	service := NewService()

	assumptions := service.Defaults()
	assert.Equal(t, assumptions, service.Clamp(assumptions))
}

func TestProject_ClampsBeforeComputing(t *testing.T) {
	service := NewService()

	assumptions := service.Defaults()
	assumptions.MonthlySales = 9999999 // clamped to 500000

	projection := service.Project(assumptions)

	assert.Equal(t, float64(500000), projection.Assumptions.MonthlySales)
	assert.Equal(t, float64(120000), projection.GrossProfit)
}

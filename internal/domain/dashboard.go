package domain

// DashboardSummary is the KPI row at the top of the dashboard. It is only
// produced when at least one store exists; an empty collection is reported
// as "no data" (nil summary), not as a row of zeros.
type DashboardSummary struct {
	StoreCount    int     `json:"storeCount"`
	Sales         float64 `json:"sales"`
	GrossProfit   float64 `json:"grossProfit"`
	Opex          float64 `json:"opex"`
	EBITDA        float64 `json:"ebitda"`
	AvgMargin     float64 `json:"avgMargin"`
	NegativeCount int     `json:"negativeCount"`
}

type StoreChartRow struct {
	Name        string  `json:"name"`
	Sales       float64 `json:"sales"`
	GrossProfit float64 `json:"grossProfit"`
}

type RegionShare struct {
	Region Region  `json:"region"`
	Sales  float64 `json:"sales"`
}

type DashboardReport struct {
	Summary *DashboardSummary `json:"summary"`
	Chart   []StoreChartRow   `json:"chart"`
	Regions []RegionShare     `json:"regions"`
}

// ProductivityReport aggregates the per-area and per-employee ratios.
// Averages are restricted to stores with a positive denominator.
type ProductivityReport struct {
	AvgSalesPerSqm      int      `json:"avgSalesPerSqm"`
	AvgSalesPerEmployee int      `json:"avgSalesPerEmployee"`
	MaxMargin           float64  `json:"maxMargin"`
	Leaders             []*Store `json:"leaders"`
}

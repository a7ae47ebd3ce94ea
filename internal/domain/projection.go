package domain

// Assumptions are the seven tunable inputs of the investment simulator.
type Assumptions struct {
	MonthlySales float64 `json:"monthlySales"`
	MarginPct    float64 `json:"marginPct"`
	Rent         float64 `json:"rent"`
	Staff        float64 `json:"staff"`
	Logistics    float64 `json:"logistics"`
	Investment   float64 `json:"investment"`
	RampMonths   int     `json:"rampMonths"`
}

type CashFlowPoint struct {
	Month      int     `json:"month"`
	Cumulative float64 `json:"cumulative"`
}

// Projection is the deterministic result for one set of assumptions.
// PaybackMonths is only meaningful when PaybackReachable is true, and IRRPct
// is nil when EBITDA is not positive.
type Projection struct {
	Assumptions      Assumptions     `json:"assumptions"`
	GrossProfit      float64         `json:"grossProfit"`
	Opex             float64         `json:"opex"`
	EBITDA           float64         `json:"ebitda"`
	AnnualEBITDA     float64         `json:"annualEbitda"`
	PaybackMonths    int             `json:"paybackMonths"`
	PaybackReachable bool            `json:"paybackReachable"`
	IRRPct           *float64        `json:"irrPct"`
	Series           []CashFlowPoint `json:"series"`
}

package insighting

import (
	"math"
	"sort"

	"github.com/yupiter/analytics-api/infrastructure/repository"
	"github.com/yupiter/analytics-api/internal/domain"
	"github.com/yupiter/analytics-api/pkg/utils"
)

const (
	chartTopStores  = 10
	leaderboardSize = 12
)

// Insighter builds the derived reports the dashboard screens are made of.
// Every report is recomputed from the current collections on each call.
type Insighter interface {
	Dashboard() *domain.DashboardReport
	Productivity() *domain.ProductivityReport
	PipelineCounts() []domain.PipelineStageCount
}

type Service struct {
	storeColl    repository.Collection[*domain.Store]
	negativeColl repository.Collection[*domain.NegativeStore]
}

func NewService(
	storeColl repository.Collection[*domain.Store],
	negativeColl repository.Collection[*domain.NegativeStore],
) Insighter {
	return &Service{
		storeColl:    storeColl,
		negativeColl: negativeColl,
	}
}

// Dashboard aggregates the store collection into the KPI summary, the top
// stores chart and the per-region sales split. With no stores the summary is
// nil, never a row of zeros.
func (s *Service) Dashboard() *domain.DashboardReport {
	stores := s.storeColl.List()

	report := &domain.DashboardReport{
		Chart:   []domain.StoreChartRow{},
		Regions: []domain.RegionShare{},
	}

	if len(stores) == 0 {
		return report
	}

	summary := &domain.DashboardSummary{StoreCount: len(stores)}

	var marginSum float64
	regionSales := make(map[domain.Region]float64)

	for _, store := range stores {
		summary.Sales += store.Sales
		summary.GrossProfit += store.GrossProfit
		summary.Opex += store.Opex
		summary.EBITDA += store.EBITDA
		marginSum += store.Margin

		if store.EBITDA < 0 {
			summary.NegativeCount++
		}

		regionSales[store.Region] += store.Sales
	}

	summary.AvgMargin = utils.RoundWithTwoDecimalPlace(marginSum / float64(len(stores)))
	report.Summary = summary

	sorted := make([]*domain.Store, len(stores))
	copy(sorted, stores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Sales > sorted[j].Sales
	})

	limit := chartTopStores
	if len(sorted) < limit {
		limit = len(sorted)
	}
	for _, store := range sorted[:limit] {
		report.Chart = append(report.Chart, domain.StoreChartRow{
			Name:        store.Name,
			Sales:       store.Sales,
			GrossProfit: store.GrossProfit,
		})
	}

	// Regions keep the canonical order; regions with no sales are left out.
	for _, region := range domain.Regions {
		if sales, ok := regionSales[region]; ok && sales > 0 {
			report.Regions = append(report.Regions, domain.RegionShare{
				Region: region,
				Sales:  sales,
			})
		}
	}

	return report
}

// Productivity averages the per-sqm and per-employee ratios over the stores
// where they are defined, and ranks the leaders by sales per square meter.
func (s *Service) Productivity() *domain.ProductivityReport {
	stores := s.storeColl.List()

	report := &domain.ProductivityReport{Leaders: []*domain.Store{}}

	if len(stores) == 0 {
		return report
	}

	var (
		sqmSum, employeeSum     float64
		sqmCount, employeeCount int
	)

	// The means cover every store where the ratio is defined (positive
	// denominator), including stores whose ratio comes out zero.
	for _, store := range stores {
		if store.Sqm > 0 {
			sqmSum += float64(store.SalesPerSqm)
			sqmCount++
		}
		if store.Employees > 0 {
			employeeSum += float64(store.SalesPerEmployee)
			employeeCount++
		}
		if store.Margin > report.MaxMargin {
			report.MaxMargin = store.Margin
		}
	}

	if sqmCount > 0 {
		report.AvgSalesPerSqm = int(math.Round(sqmSum / float64(sqmCount)))
	}
	if employeeCount > 0 {
		report.AvgSalesPerEmployee = int(math.Round(employeeSum / float64(employeeCount)))
	}

	leaders := make([]*domain.Store, 0, len(stores))
	for _, store := range stores {
		if store.SalesPerSqm > 0 {
			leaders = append(leaders, store)
		}
	}
	sort.SliceStable(leaders, func(i, j int) bool {
		return leaders[i].SalesPerSqm > leaders[j].SalesPerSqm
	})

	if len(leaders) > leaderboardSize {
		leaders = leaders[:leaderboardSize]
	}
	report.Leaders = leaders

	return report
}

// PipelineCounts counts negative stores per remediation stage, keeping the
// workflow order. Stages with no entries still appear with a zero count.
func (s *Service) PipelineCounts() []domain.PipelineStageCount {
	negatives := s.negativeColl.List()

	byStage := make(map[domain.PipelineStage]int)
	for _, negative := range negatives {
		byStage[negative.Pipeline]++
	}

	counts := make([]domain.PipelineStageCount, 0, len(domain.PipelineStages))
	for _, stage := range domain.PipelineStages {
		counts = append(counts, domain.PipelineStageCount{
			Stage: stage,
			Count: byStage[stage],
		})
	}

	return counts
}

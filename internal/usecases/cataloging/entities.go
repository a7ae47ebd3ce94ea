package cataloging

import (
	"strings"
	"time"

	"github.com/yupiter/analytics-api/infrastructure/kvstore"
	"github.com/yupiter/analytics-api/infrastructure/repository"
	"github.com/yupiter/analytics-api/internal/domain"
	"github.com/yupiter/analytics-api/internal/usecases/insighting"
)

// Catalog bundles the managers of every dashboard collection. The two record
// collections used by the reporting service are exposed so insights read the
// same cached data the managers write.
type Catalog struct {
	Stores      Manager[*domain.Store]
	Costs       Manager[*domain.CostRule]
	Negatives   Manager[*domain.NegativeStore]
	Meetings    Manager[*domain.Meeting]
	NewStores   Manager[*domain.NewStoreLaunch]
	Reports     Manager[*domain.ReportTemplate]
	DataSources Manager[*domain.DataSource]

	StoreRecords    repository.Collection[*domain.Store]
	NegativeRecords repository.Collection[*domain.NegativeStore]
}

func NewCatalog(store kvstore.Store) *Catalog {
	storeColl := repository.NewCollection[*domain.Store](store, kvstore.KeyStores)
	negativeColl := repository.NewCollection[*domain.NegativeStore](store, kvstore.KeyNegatives)

	return &Catalog{
		Stores: NewManager(storeColl,
			WithValidate(requireName[*domain.Store](func(s *domain.Store) string { return s.Name }, "Store name is required")),
			WithPrepare(prepareStore),
		),
		Costs: NewManager(
			repository.NewCollection[*domain.CostRule](store, kvstore.KeyCosts),
			WithValidate(requireName[*domain.CostRule](func(c *domain.CostRule) string { return c.Name }, "Cost rule name is required")),
			WithPrepare(prepareCostRule),
		),
		Negatives: NewManager(negativeColl,
			WithValidate(requireName[*domain.NegativeStore](func(n *domain.NegativeStore) string { return n.Store }, "Store name is required")),
			WithPrepare(prepareNegative),
		),
		Meetings: NewManager(
			repository.NewCollection[*domain.Meeting](store, kvstore.KeyMeetings),
			WithValidate(requireName[*domain.Meeting](func(m *domain.Meeting) string { return m.Topic }, "Meeting topic is required")),
			WithPrepare(prepareMeeting),
		),
		NewStores: NewManager(
			repository.NewCollection[*domain.NewStoreLaunch](store, kvstore.KeyNewStores),
			WithValidate(requireName[*domain.NewStoreLaunch](func(n *domain.NewStoreLaunch) string { return n.Name }, "Store name is required")),
			WithPrepare(prepareLaunch),
		),
		Reports: NewManager(
			repository.NewCollection[*domain.ReportTemplate](store, kvstore.KeyReports),
			WithValidate(requireName[*domain.ReportTemplate](func(r *domain.ReportTemplate) string { return r.Name }, "Report name is required")),
			WithPrepare(prepareReport),
		),
		DataSources: NewManager(
			repository.NewCollection[*domain.DataSource](store, kvstore.KeyDataSources),
			WithValidate(requireName[*domain.DataSource](func(d *domain.DataSource) string { return d.Name }, "Data source name is required")),
			WithPrepare(prepareDataSource),
		),

		StoreRecords:    storeColl,
		NegativeRecords: negativeColl,
	}
}

func requireName[T domain.Entity](field func(T) string, message string) func(T) error {
	return func(item T) error {
		if strings.TrimSpace(field(item)) == "" {
			return NewValidationError(message)
		}
		return nil
	}
}

// prepareStore fills enum defaults and recomputes the derived metrics. The
// client never supplies the metric fields directly.
func prepareStore(store *domain.Store) {
	if !store.Status.Valid() {
		store.Status = domain.StoreStatusActive
	}
	if !store.Region.Valid() {
		store.Region = domain.RegionBakuCenter
	}
	insighting.ComputeMetrics(store)
}

func prepareCostRule(rule *domain.CostRule) {
	if !rule.Category.Valid() {
		rule.Category = domain.CostCategoryOther
	}
	if !rule.Method.Valid() {
		rule.Method = domain.AllocationBySalesShare
	}
}

func prepareNegative(negative *domain.NegativeStore) {
	if !negative.Pipeline.Valid() {
		negative.Pipeline = domain.StageNew
	}
	if !negative.RootCause.Valid() {
		negative.RootCause = domain.CauseOther
	}
	if negative.Weeks < 0 {
		negative.Weeks = 0
	}
}

func prepareMeeting(meeting *domain.Meeting) {
	if !meeting.Status.Valid() {
		meeting.Status = domain.MeetingPlanned
	}
	if meeting.Date == "" {
		meeting.Date = time.Now().UTC().Format("2006-01-02")
	}
}

func prepareLaunch(launch *domain.NewStoreLaunch) {
	if !launch.Status.Valid() {
		launch.Status = domain.LaunchOnPlan
	}
}

func prepareReport(report *domain.ReportTemplate) {
	if !report.Frequency.Valid() {
		report.Frequency = domain.FrequencyMonthly
	}
	if !report.Status.Valid() {
		report.Status = domain.ReportActive
	}
}

func prepareDataSource(source *domain.DataSource) {
	if !source.Type.Valid() {
		source.Type = domain.SourceManual
	}
	if !source.Status.Valid() {
		source.Status = domain.SourceManualEntry
	}
}

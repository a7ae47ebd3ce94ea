package cataloging

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yupiter/analytics-api/infrastructure/kvstore"
	"github.com/yupiter/analytics-api/internal/domain"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	store, err := kvstore.NewFile(afero.NewMemMapFs(), "/data", "yup_")
	require.NoError(t, err)

	return NewCatalog(store)
}

func TestCatalog_CreateStoreComputesMetrics(t *testing.T) {
	catalog := newTestCatalog(t)

	created, err := catalog.Stores.Create(&domain.Store{
		Name:        "Yupiter 28 May",
		Region:      domain.RegionBakuCenter,
		Sales:       250000,
		GrossProfit: 60000,
		Opex:        45000,
		Sqm:         420,
		Employees:   12,
		// Derived fields supplied by the client are ignored and recomputed
		EBITDA: 999999,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, float64(15000), created.EBITDA)
	assert.Equal(t, 24.00, created.Margin)
	assert.Equal(t, domain.StoreStatusActive, created.Status)
}

func TestCatalog_CreateRejectsBlankName(t *testing.T) {
	catalog := newTestCatalog(t)

	_, err := catalog.Stores.Create(&domain.Store{Name: "   "})

	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Empty(t, catalog.Stores.List())
}

func TestCatalog_UpdateRecomputesMetrics(t *testing.T) {
	catalog := newTestCatalog(t)

	created, err := catalog.Stores.Create(&domain.Store{
		Name: "A", Region: domain.RegionGanja, Sales: 100000, GrossProfit: 20000,
	})
	require.NoError(t, err)

	updated, err := catalog.Stores.Update(created.ID, &domain.Store{
		Name: "A", Region: domain.RegionGanja, Sales: 200000, GrossProfit: 50000,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 25.00, updated.Margin)
}

func TestCatalog_UpdateMissingID(t *testing.T) {
	catalog := newTestCatalog(t)

	_, err := catalog.Stores.Update("ID-missing", &domain.Store{Name: "A"})

	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCatalog_DeleteMissingID(t *testing.T) {
	catalog := newTestCatalog(t)

	assert.True(t, errors.Is(catalog.Stores.Delete("ID-missing"), ErrNotFound))
}

func TestCatalog_Defaults(t *testing.T) {
	catalog := newTestCatalog(t)

	cost, err := catalog.Costs.Create(&domain.CostRule{Name: "Mərkəzi anbar"})
	require.NoError(t, err)
	assert.Equal(t, domain.CostCategoryOther, cost.Category)
	assert.Equal(t, domain.AllocationBySalesShare, cost.Method)
	assert.True(t, cost.IsActive())

	negative, err := catalog.Negatives.Create(&domain.NegativeStore{Store: "Lənkəran 2", Weeks: -3})
	require.NoError(t, err)
	assert.Equal(t, domain.StageNew, negative.Pipeline)
	assert.Equal(t, domain.CauseOther, negative.RootCause)
	assert.Zero(t, negative.Weeks)

	meeting, err := catalog.Meetings.Create(&domain.Meeting{Topic: "Aylıq P&L"})
	require.NoError(t, err)
	assert.Equal(t, domain.MeetingPlanned, meeting.Status)
	assert.NotEmpty(t, meeting.Date)

	launch, err := catalog.NewStores.Create(&domain.NewStoreLaunch{Name: "Xırdalan"})
	require.NoError(t, err)
	assert.Equal(t, domain.LaunchOnPlan, launch.Status)

	report, err := catalog.Reports.Create(&domain.ReportTemplate{Name: "Həftəlik satış"})
	require.NoError(t, err)
	assert.Equal(t, domain.FrequencyMonthly, report.Frequency)
	assert.Equal(t, domain.ReportActive, report.Status)

	source, err := catalog.DataSources.Create(&domain.DataSource{Name: "POS"})
	require.NoError(t, err)
	assert.Equal(t, domain.SourceManual, source.Type)
	assert.Equal(t, domain.SourceManualEntry, source.Status)
}

func TestCatalog_ExplicitEnumValuesKept(t *testing.T) {
	catalog := newTestCatalog(t)

	negative, err := catalog.Negatives.Create(&domain.NegativeStore{
		Store:     "Sumqayıt 1",
		Pipeline:  domain.StageMonitoring,
		RootCause: domain.CauseHighRent,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StageMonitoring, negative.Pipeline)
	assert.Equal(t, domain.CauseHighRent, negative.RootCause)
}

func TestCatalog_Get(t *testing.T) {
	catalog := newTestCatalog(t)

	created, err := catalog.Meetings.Create(&domain.Meeting{Topic: "Büdcə"})
	require.NoError(t, err)

	found, err := catalog.Meetings.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Büdcə", found.Topic)

	_, err = catalog.Meetings.Get("ID-missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

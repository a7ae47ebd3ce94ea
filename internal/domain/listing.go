package domain

type LaunchStatus string

const (
	LaunchOnPlan LaunchStatus = "Planda"
	LaunchAhead  LaunchStatus = "Öndə"
	LaunchBehind LaunchStatus = "Geridə"
)

var LaunchStatuses = []LaunchStatus{LaunchOnPlan, LaunchAhead, LaunchBehind}

func (s LaunchStatus) Valid() bool {
	for _, known := range LaunchStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// NewStoreLaunch tracks the sales ramp of a recently opened store.
type NewStoreLaunch struct {
	Record
	Name        string       `json:"name"`
	OpenDate    string       `json:"openDate"`
	TargetSales float64      `json:"targetSales"`
	ActualSales float64      `json:"actualSales"`
	Status      LaunchStatus `json:"status"`
	Notes       string       `json:"notes"`
}

type ReportFrequency string

const (
	FrequencyDaily     ReportFrequency = "Gündəlik"
	FrequencyWeekly    ReportFrequency = "Həftəlik"
	FrequencyMonthly   ReportFrequency = "Aylıq"
	FrequencyQuarterly ReportFrequency = "Rüblük"
)

var ReportFrequencies = []ReportFrequency{
	FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly,
}

func (f ReportFrequency) Valid() bool {
	for _, known := range ReportFrequencies {
		if f == known {
			return true
		}
	}
	return false
}

type ReportStatus string

const (
	ReportActive   ReportStatus = "Aktiv"
	ReportArchived ReportStatus = "Arxiv"
	ReportDisabled ReportStatus = "Deaktiv"
)

var ReportStatuses = []ReportStatus{ReportActive, ReportArchived, ReportDisabled}

func (s ReportStatus) Valid() bool {
	for _, known := range ReportStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ReportTemplate is a recurring report definition with an assignee.
type ReportTemplate struct {
	Record
	Name      string          `json:"name"`
	Frequency ReportFrequency `json:"frequency"`
	Assignee  string          `json:"assignee"`
	Status    ReportStatus    `json:"status"`
	Notes     string          `json:"notes"`
}

type SourceType string

const (
	SourceAutomatic  SourceType = "Avtomatik"
	SourceManual     SourceType = "Manual"
	SourceAPI        SourceType = "API"
	SourceFileUpload SourceType = "Fayl yükləmə"
)

var SourceTypes = []SourceType{SourceAutomatic, SourceManual, SourceAPI, SourceFileUpload}

func (t SourceType) Valid() bool {
	for _, known := range SourceTypes {
		if t == known {
			return true
		}
	}
	return false
}

type SourceStatus string

const (
	SourceConnected   SourceStatus = "Bağlı"
	SourceManualEntry SourceStatus = "Manual"
	SourceConfiguring SourceStatus = "Konfiqurasiya"
	SourceDisabled    SourceStatus = "Deaktiv"
)

var SourceStatuses = []SourceStatus{
	SourceConnected, SourceManualEntry, SourceConfiguring, SourceDisabled,
}

func (s SourceStatus) Valid() bool {
	for _, known := range SourceStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// DataSource is an external feed (POS, ERP, logistics, HR) the dashboard
// data is loaded from.
type DataSource struct {
	Record
	Name     string       `json:"name"`
	Type     SourceType   `json:"type"`
	LastSync string       `json:"lastSync"`
	Status   SourceStatus `json:"status"`
	Notes    string       `json:"notes"`
}

package domain

// PipelineStage is a step in the remediation workflow for an underperforming
// store. Stages are ordered for display but any stage can be set directly;
// there is no enforced transition order.
type PipelineStage string

const (
	StageNew          PipelineStage = "Yeni"
	StageAwaitingData PipelineStage = "Məlumat gözlənilir"
	StageUnderReview  PipelineStage = "Nəzərdən keçirilir"
	StageActionPlan   PipelineStage = "Fəaliyyət planı"
	StageMonitoring   PipelineStage = "Monitorinq"
	StageClosed       PipelineStage = "Bağlı"
)

var PipelineStages = []PipelineStage{
	StageNew, StageAwaitingData, StageUnderReview,
	StageActionPlan, StageMonitoring, StageClosed,
}

func (p PipelineStage) Valid() bool {
	for _, known := range PipelineStages {
		if p == known {
			return true
		}
	}
	return false
}

type RootCause string

const (
	CauseHighRent      RootCause = "Yüksək icarə"
	CauseLowTraffic    RootCause = "Aşağı trafik"
	CauseStaffShortage RootCause = "Kadr çatışmazlığı"
	CauseCompetition   RootCause = "Rəqabət"
	CauseStockIssues   RootCause = "Stok problemi"
	CauseLocation      RootCause = "Lokasiya"
	CauseOther         RootCause = "Digər"
)

var RootCauses = []RootCause{
	CauseHighRent, CauseLowTraffic, CauseStaffShortage,
	CauseCompetition, CauseStockIssues, CauseLocation, CauseOther,
}

func (c RootCause) Valid() bool {
	for _, known := range RootCauses {
		if c == known {
			return true
		}
	}
	return false
}

type NegativeStore struct {
	Record
	Store     string        `json:"store"`
	Pipeline  PipelineStage `json:"pipeline"`
	RootCause RootCause     `json:"rootCause"`
	Weeks     int           `json:"weeks"`
	Notes     string        `json:"notes"`
}

type PipelineStageCount struct {
	Stage PipelineStage `json:"stage"`
	Count int           `json:"count"`
}

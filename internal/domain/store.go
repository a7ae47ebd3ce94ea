package domain

type Region string

const (
	RegionBakuCenter  Region = "Bakı Mərkəz"
	RegionBakuNorth   Region = "Bakı Şimal"
	RegionAbsheron    Region = "Abşeron"
	RegionSumqayit    Region = "Sumqayıt"
	RegionGanja       Region = "Gəncə"
	RegionLankaran    Region = "Lənkəran"
	RegionShaki       Region = "Şəki"
	RegionMingachevir Region = "Mingəçevir"
)

var Regions = []Region{
	RegionBakuCenter, RegionBakuNorth, RegionAbsheron, RegionSumqayit,
	RegionGanja, RegionLankaran, RegionShaki, RegionMingachevir,
}

func (r Region) Valid() bool {
	for _, known := range Regions {
		if r == known {
			return true
		}
	}
	return false
}

type StoreStatus string

const (
	StoreStatusActive     StoreStatus = "Aktiv"
	StoreStatusMonitoring StoreStatus = "Monitorinq"
	StoreStatusCritical   StoreStatus = "Kritik"
)

var StoreStatuses = []StoreStatus{StoreStatusActive, StoreStatusMonitoring, StoreStatusCritical}

func (s StoreStatus) Valid() bool {
	for _, known := range StoreStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Store is a retail outlet record. The four metric fields at the bottom are
// derived from the base inputs on every save and are never taken from the
// client as-is.
type Store struct {
	Record
	Name        string      `json:"name"`
	Region      Region      `json:"region"`
	Manager     string      `json:"manager"`
	Sqm         float64     `json:"sqm"`
	Employees   int         `json:"employees"`
	Sales       float64     `json:"sales"`
	GrossProfit float64     `json:"grossProfit"`
	Opex        float64     `json:"opex"`
	Status      StoreStatus `json:"status"`
	Notes       string      `json:"notes"`

	EBITDA           float64 `json:"ebitda"`
	Margin           float64 `json:"margin"`
	SalesPerSqm      int     `json:"salesPerSqm"`
	SalesPerEmployee int     `json:"salesPerEmployee"`
}

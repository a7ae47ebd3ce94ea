package domain

type CostCategory string

const (
	CostCategoryLogistics     CostCategory = "Logistika"
	CostCategorySupplierBonus CostCategory = "Tədarükçü Bonus"
	CostCategoryRent          CostCategory = "İcarə"
	CostCategoryOpex          CostCategory = "OPEX"
	CostCategoryOther         CostCategory = "Digər"
)

var CostCategories = []CostCategory{
	CostCategoryLogistics, CostCategorySupplierBonus, CostCategoryRent,
	CostCategoryOpex, CostCategoryOther,
}

func (c CostCategory) Valid() bool {
	for _, known := range CostCategories {
		if c == known {
			return true
		}
	}
	return false
}

type AllocationMethod string

const (
	AllocationBySalesShare   AllocationMethod = "Satış %-ə görə"
	AllocationByDeliveries   AllocationMethod = "Çatdırılma sayına görə"
	AllocationByVolume       AllocationMethod = "Həcmə görə"
	AllocationDirect         AllocationMethod = "Birbaşa"
	AllocationByCategoryMix  AllocationMethod = "Kateqoriya mixinə görə"
)

var AllocationMethods = []AllocationMethod{
	AllocationBySalesShare, AllocationByDeliveries, AllocationByVolume,
	AllocationDirect, AllocationByCategoryMix,
}

func (m AllocationMethod) Valid() bool {
	for _, known := range AllocationMethods {
		if m == known {
			return true
		}
	}
	return false
}

// CostRule describes how a shared cost is allocated across stores.
// Stores is a free-text scope filter; empty means all stores.
type CostRule struct {
	Record
	Name     string           `json:"name"`
	Category CostCategory     `json:"category"`
	Method   AllocationMethod `json:"method"`
	Stores   string           `json:"stores"`
	Amount   *float64         `json:"amount,omitempty"`
	Active   *bool            `json:"active"`
}

// IsActive treats an unset flag as active, matching the default.
func (c *CostRule) IsActive() bool {
	return c.Active == nil || *c.Active
}

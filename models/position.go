package models

// CatalogPosition is a canonical position entry as returned by the Showphaze
// position catalog. Instances are fetched fresh for every formatting call and
// are never cached across calls.
type CatalogPosition struct {
	ID                  string   `json:"Id"`
	PositionName        string   `json:"positionName"`
	PositionDescription string   `json:"positionDescription"`
	PositionBrief       string   `json:"positionBrief"`
	EquipmentRequired   []string `json:"equipmentRequired"`
	Tags                []string `json:"tag"`
	DefaultRate         int      `json:"defaultRate"`
	ContractorRate      int      `json:"contractorRate"`

	// Optional catalog-side default shift times. When present they are full
	// timestamps ("2006-01-02T15:04:05") and are used verbatim.
	TimeIn  string `json:"timeIn,omitempty"`
	TimeOut string `json:"timeOut,omitempty"`
}

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// FlexStrings accepts either a JSON string or an array of strings. The LLM
// extraction step is allowed to emit either shape for every per-position field,
// so the scalar form is preserved as a one-element slice and granularity is
// resolved later by the parameter expander.
type FlexStrings []string

// isJSONNull reports whether data is a JSON null literal. A null field is
// treated as absent, not as a scalar zero value.
func isJSONNull(data []byte) bool {
	return string(data) == "null"
}

func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*f = nil
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*f = FlexStrings{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("value is neither string nor string array: %s", string(data))
	}
	*f = FlexStrings(many)
	return nil
}

// FlexBools accepts either a JSON bool or an array of bools.
type FlexBools []bool

func (f *FlexBools) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*f = nil
		return nil
	}
	var single bool
	if err := json.Unmarshal(data, &single); err == nil {
		*f = FlexBools{single}
		return nil
	}
	var many []bool
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("value is neither bool nor bool array: %s", string(data))
	}
	*f = FlexBools(many)
	return nil
}

// FlexInts accepts either a JSON number or an array of numbers.
type FlexInts []int

func (f *FlexInts) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*f = nil
		return nil
	}
	var single int
	if err := json.Unmarshal(data, &single); err == nil {
		*f = FlexInts{single}
		return nil
	}
	var many []int
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("value is neither int nor int array: %s", string(data))
	}
	*f = FlexInts(many)
	return nil
}

// BookingParams is the loosely-typed parameter bag produced by the extraction
// collaborator. Only position_name, quantity and start_date are required; every
// other field may be absent, a scalar, one value per position group, or one
// value per expanded slot.
type BookingParams struct {
	PositionNames      FlexStrings `json:"position_name"`
	Quantities         FlexInts    `json:"quantity"`
	StartDates         FlexStrings `json:"start_date"`
	TimeIn             FlexStrings `json:"timeIn,omitempty"`
	TimeOut            FlexStrings `json:"timeOut,omitempty"`
	TBD                FlexBools   `json:"tbd,omitempty"`
	OvernightShift     FlexBools   `json:"overnight_shift,omitempty"`
	SelectOption       FlexStrings `json:"select_option,omitempty"`
	Complexity         FlexStrings `json:"complexity,omitempty"`
	NumberOfHours      FlexStrings `json:"number_of_hours,omitempty"`
	AdditionalComments FlexStrings `json:"additional_comments,omitempty"`
	Attire             FlexStrings `json:"attire,omitempty"`
	DefaultRate        FlexInts    `json:"default_rate,omitempty"`
	ContractorRate     FlexInts    `json:"contractor_rate,omitempty"`
}

// TotalSlots is the number of booking records the request expands to.
func (p *BookingParams) TotalSlots() int {
	total := 0
	for _, q := range p.Quantities {
		total += q
	}
	return total
}

// Validate checks the structural invariants of the parameter bag: quantities
// must line up with position names one-to-one and be positive, and start dates
// must be ISO dates at group granularity (or a single shared value).
func (p *BookingParams) Validate() error {
	groups := len(p.PositionNames)
	if groups == 0 {
		return fmt.Errorf("position_name is required")
	}
	if len(p.Quantities) != groups {
		return fmt.Errorf("quantity has %d entries, expected %d", len(p.Quantities), groups)
	}
	if len(p.StartDates) == 0 {
		return fmt.Errorf("start_date is required")
	}
	if len(p.StartDates) != 1 && len(p.StartDates) != groups {
		return fmt.Errorf("start_date has %d entries, expected 1 or %d", len(p.StartDates), groups)
	}
	for i, q := range p.Quantities {
		if q <= 0 {
			return fmt.Errorf("quantity[%d] must be positive, got %d", i, q)
		}
	}
	for i, d := range p.StartDates {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return fmt.Errorf("start_date[%d] %q is not a valid YYYY-MM-DD date", i, d)
		}
	}
	return nil
}

// BookingRecord is one fully-resolved bookable slot. Quantity is always 1: the
// aggregate request quantity has already been expanded into repeated records.
type BookingRecord struct {
	PositionID          string   `json:"positionId"`
	PositionName        string   `json:"positionName"`
	StartDate           string   `json:"startDate"`
	TimeIn              string   `json:"timeIn"`
	TimeOut             string   `json:"timeOut"`
	TBD                 bool     `json:"tbd"`
	NumberOfHours       string   `json:"numberOfHours"`
	Quantity            int      `json:"quantity"`
	OverNightShift      bool     `json:"overNightShift"`
	SelectOption        string   `json:"selectOption"`
	AdditionalComments  string   `json:"additionalComments"`
	Attire              string   `json:"attire"`
	Complexity          string   `json:"complexity"`
	PositionDescription string   `json:"position_description"`
	PositionBrief       string   `json:"position_brief"`
	EquipmentRequired   []string `json:"equipment_required"`
	Tags                []string `json:"tag"`
	DefaultRate         int      `json:"default_rate"`
	ContractorRate      int      `json:"contractor_rate"`
}

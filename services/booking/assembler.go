package booking

import (
	"slices"

	"showphaze/models"
)

// Hardcoded rate floor applied when neither the user nor the catalog provides
// a rate for the slot.
const (
	fallbackDefaultRate    = 25
	fallbackContractorRate = 20
)

// resolvedGroup is one position group after catalog resolution: the user's
// free-text name, its slot quantity and start date, and the matched catalog
// position (nil when the lookup failed or nothing scored above threshold).
type resolvedGroup struct {
	name      string
	quantity  int
	startDate string
	position  *models.CatalogPosition
}

// assembleRecords zips resolved groups with slot-expanded parameters into one
// BookingRecord per slot, preserving group-then-slot order. A group without a
// matched position still yields its records, with the position-derived fields
// left empty.
func assembleRecords(groups []resolvedGroup, params *slotParams) []models.BookingRecord {
	var records []models.BookingRecord
	slot := 0

	for _, g := range groups {
		for i := 0; i < g.quantity; i++ {
			rec := models.BookingRecord{
				StartDate:          g.startDate,
				TBD:                params.tbd[slot],
				NumberOfHours:      params.numberOfHours[slot],
				Quantity:           1,
				OverNightShift:     params.overnight[slot],
				SelectOption:       params.selectOption[slot],
				AdditionalComments: params.additionalComments[slot],
				Attire:             params.attire[slot],
				Complexity:         params.complexity[slot],
				DefaultRate:        fallbackDefaultRate,
				ContractorRate:     fallbackContractorRate,
				EquipmentRequired:  []string{},
				Tags:               []string{},
			}

			var catalogIn, catalogOut string
			if g.position != nil {
				rec.PositionID = g.position.ID
				rec.PositionName = g.position.PositionName
				rec.PositionDescription = g.position.PositionDescription
				rec.PositionBrief = g.position.PositionBrief
				// Each record gets its own copy so mutating one record's
				// slices cannot leak into siblings of the same group.
				if g.position.EquipmentRequired != nil {
					rec.EquipmentRequired = slices.Clone(g.position.EquipmentRequired)
				}
				if g.position.Tags != nil {
					rec.Tags = slices.Clone(g.position.Tags)
				}
				if g.position.DefaultRate != 0 {
					rec.DefaultRate = g.position.DefaultRate
				}
				if g.position.ContractorRate != 0 {
					rec.ContractorRate = g.position.ContractorRate
				}
				catalogIn = g.position.TimeIn
				catalogOut = g.position.TimeOut
			}

			// User-supplied rates win over both catalog and fallback.
			if params.defaultRate[slot] != 0 {
				rec.DefaultRate = params.defaultRate[slot]
			}
			if params.contractorRate[slot] != 0 {
				rec.ContractorRate = params.contractorRate[slot]
			}

			times := resolveSlotTimes(
				g.startDate,
				params.timeIn[slot], params.timeOut[slot],
				catalogIn, catalogOut,
				params.tbd[slot], params.overnight[slot],
			)
			rec.TimeIn = times.timeIn
			rec.TimeOut = times.timeOut

			records = append(records, rec)
			slot++
		}
	}
	return records
}

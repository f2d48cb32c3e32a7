package booking

import "showphaze/models"

// Sentinel values applied when a field is absent from the parameter bag.
const (
	defaultSelectOption = "NA"
	defaultComplexity   = "low"
	defaultAttire       = "Show Blacks"
)

// slotParams holds every optional booking field expanded to slot granularity:
// one element per bookable slot, in group-then-slot order.
type slotParams struct {
	timeIn             []string
	timeOut            []string
	tbd                []bool
	overnight          []bool
	selectOption       []string
	complexity         []string
	numberOfHours      []string
	additionalComments []string
	attire             []string
	defaultRate        []int
	contractorRate     []int
}

// expandField resolves one optional field from whatever granularity the caller
// supplied to exactly one value per slot:
//
//   - absent            -> the field's default, broadcast to every slot
//   - a single value    -> broadcast to every slot
//   - one per group     -> each group's value repeated quantity times
//   - one per slot      -> used verbatim (extra values are dropped)
//   - any other length  -> clamped: the last available value fills the rest
//
// When group count equals slot count (all quantities are 1) the per-group
// reading is chosen; the two interpretations coincide in that case.
func expandField[T any](vals []T, def T, quantities []int) []T {
	total := 0
	for _, q := range quantities {
		total += q
	}

	out := make([]T, 0, total)
	switch {
	case len(vals) == 0:
		for i := 0; i < total; i++ {
			out = append(out, def)
		}
	case len(vals) == 1:
		for i := 0; i < total; i++ {
			out = append(out, vals[0])
		}
	case len(vals) == len(quantities):
		for g, q := range quantities {
			for i := 0; i < q; i++ {
				out = append(out, vals[g])
			}
		}
	case len(vals) >= total:
		out = append(out, vals[:total]...)
	default:
		// Deliberate lenient fallback: repeat the last element rather than
		// rejecting a ragged array.
		for i := 0; i < total; i++ {
			idx := i
			if idx >= len(vals) {
				idx = len(vals) - 1
			}
			out = append(out, vals[idx])
		}
	}
	return out
}

// expandParams expands every optional field of the bag to slot granularity.
// The bag must already be validated.
func expandParams(p models.BookingParams) *slotParams {
	q := []int(p.Quantities)
	return &slotParams{
		timeIn:             expandField([]string(p.TimeIn), "", q),
		timeOut:            expandField([]string(p.TimeOut), "", q),
		tbd:                expandField([]bool(p.TBD), false, q),
		overnight:          expandField([]bool(p.OvernightShift), false, q),
		selectOption:       expandField([]string(p.SelectOption), defaultSelectOption, q),
		complexity:         expandField([]string(p.Complexity), defaultComplexity, q),
		numberOfHours:      expandField([]string(p.NumberOfHours), "", q),
		additionalComments: expandField([]string(p.AdditionalComments), "", q),
		attire:             expandField([]string(p.Attire), defaultAttire, q),
		defaultRate:        expandField([]int(p.DefaultRate), 0, q),
		contractorRate:     expandField([]int(p.ContractorRate), 0, q),
	}
}

// groupStartDates resolves start_date to group granularity: a single shared
// date is broadcast to every position group.
func groupStartDates(p models.BookingParams) []string {
	groups := len(p.PositionNames)
	if len(p.StartDates) >= groups {
		return p.StartDates[:groups]
	}
	out := make([]string, groups)
	for i := range out {
		out[i] = p.StartDates[len(p.StartDates)-1]
	}
	return out
}

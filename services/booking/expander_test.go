package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"showphaze/models"
)

func TestExpandFieldBroadcastScalar(t *testing.T) {
	got := expandField([]string{"Show Blacks"}, "", []int{3, 2})
	assert.Equal(t, []string{"Show Blacks", "Show Blacks", "Show Blacks", "Show Blacks", "Show Blacks"}, got)
}

func TestExpandFieldAbsentUsesDefault(t *testing.T) {
	got := expandField(nil, "low", []int{2, 1})
	assert.Equal(t, []string{"low", "low", "low"}, got)
}

func TestExpandFieldPerGroup(t *testing.T) {
	// One value per position group is repeated across that group's quantity.
	got := expandField([]string{"17:00", "09:00"}, "", []int{3, 2})
	assert.Equal(t, []string{"17:00", "17:00", "17:00", "09:00", "09:00"}, got)
}

func TestExpandFieldPerSlotVerbatim(t *testing.T) {
	vals := []bool{true, false, true, false, true}
	got := expandField(vals, false, []int{3, 2})
	assert.Equal(t, vals, got)
}

func TestExpandFieldIdempotent(t *testing.T) {
	// Expanding an already slot-length array yields the same array unchanged.
	vals := []int{10, 20, 30}
	first := expandField(vals, 0, []int{1, 1, 1})
	second := expandField(first, 0, []int{1, 1, 1})
	assert.Equal(t, first, second)
}

func TestExpandFieldClampRepeatsLast(t *testing.T) {
	// A ragged array (neither group- nor slot-length) is clamped, not rejected.
	got := expandField([]string{"a", "b", "c"}, "", []int{4, 1})
	assert.Equal(t, []string{"a", "b", "c", "c", "c"}, got)
}

func TestExpandFieldTruncatesOverlength(t *testing.T) {
	got := expandField([]int{1, 2, 3, 4, 5}, 0, []int{2, 1})
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestExpandFieldGroupCountEqualsSlotCount(t *testing.T) {
	// With all quantities 1 the per-group and per-slot readings coincide;
	// the per-group branch is the documented interpretation.
	got := expandField([]string{"x", "y"}, "", []int{1, 1})
	assert.Equal(t, []string{"x", "y"}, got)
}

func TestExpandParamsDefaults(t *testing.T) {
	params := models.BookingParams{
		PositionNames: models.FlexStrings{"waiter"},
		Quantities:    models.FlexInts{3},
		StartDates:    models.FlexStrings{"2024-04-10"},
	}

	expanded := expandParams(params)

	assert.Len(t, expanded.attire, 3)
	for i := 0; i < 3; i++ {
		assert.Equal(t, "", expanded.timeIn[i])
		assert.Equal(t, "", expanded.timeOut[i])
		assert.False(t, expanded.tbd[i])
		assert.False(t, expanded.overnight[i])
		assert.Equal(t, "NA", expanded.selectOption[i])
		assert.Equal(t, "low", expanded.complexity[i])
		assert.Equal(t, "", expanded.numberOfHours[i])
		assert.Equal(t, "", expanded.additionalComments[i])
		assert.Equal(t, "Show Blacks", expanded.attire[i])
		assert.Equal(t, 0, expanded.defaultRate[i])
		assert.Equal(t, 0, expanded.contractorRate[i])
	}
}

func TestGroupStartDatesBroadcast(t *testing.T) {
	params := models.BookingParams{
		PositionNames: models.FlexStrings{"waiter", "chef", "model"},
		Quantities:    models.FlexInts{1, 1, 1},
		StartDates:    models.FlexStrings{"2024-04-10"},
	}
	assert.Equal(t, []string{"2024-04-10", "2024-04-10", "2024-04-10"}, groupStartDates(params))
}

func TestGroupStartDatesPerGroup(t *testing.T) {
	params := models.BookingParams{
		PositionNames: models.FlexStrings{"waiter", "chef"},
		Quantities:    models.FlexInts{2, 1},
		StartDates:    models.FlexStrings{"2024-04-10", "2024-04-11"},
	}
	assert.Equal(t, []string{"2024-04-10", "2024-04-11"}, groupStartDates(params))
}

package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showphaze/models"
)

// fakeSource serves canned catalog responses per position name.
type fakeSource struct {
	responses map[string][]models.CatalogPosition
	errs      map[string]error
}

func (f *fakeSource) FetchPositionsByName(ctx context.Context, name string) ([]models.CatalogPosition, error) {
	if err, ok := f.errs[name]; ok {
		return nil, err
	}
	return f.responses[name], nil
}

func waiterPosition() models.CatalogPosition {
	return models.CatalogPosition{
		ID:                  "66618f3c1aa7cc77fd983ed5",
		PositionName:        "waiter",
		PositionDescription: "Responsible to serve food to Guest",
		PositionBrief:       "Responsible to serve food to Guest",
		EquipmentRequired:   []string{"Uniform", "utensils", "tray"},
		Tags:                []string{"Waiter", "waitress"},
		DefaultRate:         22,
		ContractorRate:      16,
	}
}

func TestFormatBookingRecordsSharedTimes(t *testing.T) {
	svc := NewFormatterService(&fakeSource{
		responses: map[string][]models.CatalogPosition{
			"waiter": {waiterPosition()},
		},
	})

	records, err := svc.FormatBookingRecords(context.Background(), models.BookingParams{
		PositionNames: models.FlexStrings{"waiter"},
		Quantities:    models.FlexInts{3},
		StartDates:    models.FlexStrings{"2024-04-10"},
		TimeIn:        models.FlexStrings{"2024-04-10T17:00:00"},
		TimeOut:       models.FlexStrings{"2024-04-10T22:00:00"},
	})
	require.NoError(t, err)
	require.Len(t, records, 3)

	for _, rec := range records {
		assert.Equal(t, "66618f3c1aa7cc77fd983ed5", rec.PositionID)
		assert.Equal(t, "waiter", rec.PositionName)
		assert.Equal(t, "2024-04-10", rec.StartDate)
		assert.Equal(t, "2024-04-10T17:00:00", rec.TimeIn)
		assert.Equal(t, "2024-04-10T22:00:00", rec.TimeOut)
		assert.Equal(t, 1, rec.Quantity)
		assert.Equal(t, 22, rec.DefaultRate)
		assert.Equal(t, 16, rec.ContractorRate)
	}
	// All three slots are identical copies.
	assert.Equal(t, records[0], records[1])
	assert.Equal(t, records[1], records[2])
}

func TestFormatBookingRecordsSlicesNotShared(t *testing.T) {
	svc := NewFormatterService(&fakeSource{
		responses: map[string][]models.CatalogPosition{
			"waiter": {waiterPosition()},
		},
	})

	records, err := svc.FormatBookingRecords(context.Background(), models.BookingParams{
		PositionNames: models.FlexStrings{"waiter"},
		Quantities:    models.FlexInts{2},
		StartDates:    models.FlexStrings{"2024-04-10"},
	})
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Mutating one record's slices must not bleed into its sibling.
	records[0].EquipmentRequired[0] = "changed"
	records[0].Tags[0] = "changed"
	assert.Equal(t, "Uniform", records[1].EquipmentRequired[0])
	assert.Equal(t, "Waiter", records[1].Tags[0])
}

func TestFormatBookingRecordsTBD(t *testing.T) {
	svc := NewFormatterService(&fakeSource{
		responses: map[string][]models.CatalogPosition{
			"model": {{ID: "m1", PositionName: "model"}},
		},
	})

	records, err := svc.FormatBookingRecords(context.Background(), models.BookingParams{
		PositionNames: models.FlexStrings{"model"},
		Quantities:    models.FlexInts{10},
		StartDates:    models.FlexStrings{"2024-04-10"},
		TBD:           models.FlexBools{true},
	})
	require.NoError(t, err)
	require.Len(t, records, 10)

	for _, rec := range records {
		assert.Equal(t, "TBD", rec.TimeIn)
		assert.Equal(t, "TBD", rec.TimeOut)
		assert.True(t, rec.TBD)
	}
}

func TestFormatBookingRecordsUnmatchedNameYieldsPlaceholder(t *testing.T) {
	// Candidates exist but none is remotely similar, so no match is selected
	// and the slot falls back to empty position fields and default rates.
	svc := NewFormatterService(&fakeSource{
		responses: map[string][]models.CatalogPosition{
			"zzzzqqqq": {waiterPosition()},
		},
	})

	records, err := svc.FormatBookingRecords(context.Background(), models.BookingParams{
		PositionNames: models.FlexStrings{"zzzzqqqq"},
		Quantities:    models.FlexInts{1},
		StartDates:    models.FlexStrings{"2024-04-10"},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "", rec.PositionID)
	assert.Equal(t, "", rec.PositionName)
	assert.Equal(t, "", rec.PositionDescription)
	assert.Equal(t, 25, rec.DefaultRate)
	assert.Equal(t, 20, rec.ContractorRate)
	assert.Equal(t, 1, rec.Quantity)
}

func TestFormatBookingRecordsOvernightRollover(t *testing.T) {
	svc := NewFormatterService(&fakeSource{
		responses: map[string][]models.CatalogPosition{
			"waiter": {waiterPosition()},
		},
	})

	records, err := svc.FormatBookingRecords(context.Background(), models.BookingParams{
		PositionNames:  models.FlexStrings{"waiter"},
		Quantities:     models.FlexInts{1},
		StartDates:     models.FlexStrings{"2023-11-25"},
		OvernightShift: models.FlexBools{true},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2023-11-26T06:00:00", records[0].TimeOut)
	assert.True(t, records[0].OverNightShift)
}

func TestFormatBookingRecordsLookupFailureDegrades(t *testing.T) {
	// One name's lookup fails; the batch still yields every slot in
	// group-then-slot order, with placeholders for the failed group.
	svc := NewFormatterService(&fakeSource{
		responses: map[string][]models.CatalogPosition{
			"waiter": {waiterPosition()},
		},
		errs: map[string]error{
			"chef": errors.New("connection refused"),
		},
	})

	records, err := svc.FormatBookingRecords(context.Background(), models.BookingParams{
		PositionNames: models.FlexStrings{"waiter", "chef"},
		Quantities:    models.FlexInts{2, 2},
		StartDates:    models.FlexStrings{"2024-04-10", "2024-04-10"},
	})
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, "waiter", records[0].PositionName)
	assert.Equal(t, "waiter", records[1].PositionName)
	assert.Equal(t, "", records[2].PositionName)
	assert.Equal(t, "", records[3].PositionName)
	assert.Equal(t, 25, records[2].DefaultRate)
	assert.Equal(t, 20, records[3].ContractorRate)
}

func TestFormatBookingRecordsNoDataAtAll(t *testing.T) {
	svc := NewFormatterService(&fakeSource{
		errs: map[string]error{
			"waiter": errors.New("boom"),
		},
	})

	_, err := svc.FormatBookingRecords(context.Background(), models.BookingParams{
		PositionNames: models.FlexStrings{"waiter"},
		Quantities:    models.FlexInts{1},
		StartDates:    models.FlexStrings{"2024-04-10"},
	})
	assert.ErrorIs(t, err, ErrNoPositionData)
}

func TestFormatBookingRecordsPerGroupTimesAndRates(t *testing.T) {
	chef := models.CatalogPosition{ID: "c1", PositionName: "chef", DefaultRate: 40, ContractorRate: 35}
	svc := NewFormatterService(&fakeSource{
		responses: map[string][]models.CatalogPosition{
			"waiter": {waiterPosition()},
			"chef":   {chef},
		},
	})

	records, err := svc.FormatBookingRecords(context.Background(), models.BookingParams{
		PositionNames: models.FlexStrings{"waiter", "chef"},
		Quantities:    models.FlexInts{2, 1},
		StartDates:    models.FlexStrings{"2024-03-26", "2024-03-27"},
		TimeIn:        models.FlexStrings{"2024-03-26T09:00:00", "2024-03-27T12:00:00"},
		TimeOut:       models.FlexStrings{"2024-03-26T17:00:00", "2024-03-27T20:00:00"},
		DefaultRate:   models.FlexInts{30, 0},
	})
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Waiter group: per-group time broadcast across its two slots, user rate wins.
	assert.Equal(t, "2024-03-26T09:00:00", records[0].TimeIn)
	assert.Equal(t, "2024-03-26T09:00:00", records[1].TimeIn)
	assert.Equal(t, 30, records[0].DefaultRate)

	// Chef group: its own date and times, catalog rate since user sent 0.
	assert.Equal(t, "2024-03-27", records[2].StartDate)
	assert.Equal(t, "2024-03-27T12:00:00", records[2].TimeIn)
	assert.Equal(t, "2024-03-27T20:00:00", records[2].TimeOut)
	assert.Equal(t, 40, records[2].DefaultRate)
}

func TestFormatBookingRecordsInvalidParams(t *testing.T) {
	svc := NewFormatterService(&fakeSource{})

	_, err := svc.FormatBookingRecords(context.Background(), models.BookingParams{
		PositionNames: models.FlexStrings{"waiter"},
		Quantities:    models.FlexInts{1, 2},
		StartDates:    models.FlexStrings{"2024-04-10"},
	})
	assert.Error(t, err)
}

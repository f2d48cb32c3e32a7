package booking

import (
	"context"

	"showphaze/models"
	"showphaze/services/catalog"
)

// FormatterService turns an extracted booking parameter bag into the final
// ordered list of per-slot booking records: parameters are expanded to slot
// granularity, each distinct position name is resolved against the catalog
// once, times are computed per slot, and one record is emitted per slot.
type FormatterService interface {
	FormatBookingRecords(ctx context.Context, params models.BookingParams) ([]models.BookingRecord, error)
}

// DefaultFormatterService implements FormatterService.
type DefaultFormatterService struct {
	Positions catalog.PositionSource
}

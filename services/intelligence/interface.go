// File: service/ai/interface.go
package ai

import (
	"context"

	"showphaze/models"
)

// Extractor turns a free-form booking request (typed or voice-transcribed)
// into the loosely-typed parameter bag the formatter consumes. The language
// model behind it is an opaque collaborator; the rest of the pipeline never
// touches the network through this interface in tests.
type Extractor interface {
	ExtractBookingParams(ctx context.Context, text string) (*models.BookingParams, error)
}

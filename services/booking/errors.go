package booking

import "errors"

// ErrNoPositionData is returned when the catalog yields no candidate
// positions for any requested name. Per-name lookup failures and unmatched
// names degrade to placeholder records instead and never surface as errors.
var ErrNoPositionData = errors.New("no position data found")

package booking

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const (
	dateLayout = "2006-01-02"

	// Fallback shift times applied when neither the user nor the catalog
	// supplies one.
	defaultTimeIn  = "09:00:00"
	defaultTimeOut = "17:00:00"

	// Overnight shifts always end at 06:00 the next morning.
	overnightTimeOut = "06:00:00"

	// TBDValue is the literal emitted when the slot's times are to be
	// determined later.
	TBDValue = "TBD"
)

// clockLayouts covers bare clock strings. These must be tried before
// dateparse, which reads strings like "09:30:15" as dates, not clocks.
var clockLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04:05PM",
	"3:04PM",
	"3PM",
}

// normalizeTimeOfDay reduces a free-form time string (a full timestamp, a
// 24h clock, or an am/pm clock) to "HH:MM:SS". It returns "" when the string
// is empty or unparseable; a malformed time is treated as absent, never as an
// error.
func normalizeTimeOfDay(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	upper := strings.ToUpper(strings.ReplaceAll(s, " ", ""))
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, upper); err == nil {
			return t.Format("15:04:05")
		}
	}
	if t, err := dateparse.ParseAny(s); err == nil {
		return t.Format("15:04:05")
	}
	return ""
}

// slotTimes is the resolved pair of timestamps for one slot. Values are either
// "YYYY-MM-DDTHH:MM:SS" or the literal "TBD".
type slotTimes struct {
	timeIn  string
	timeOut string
}

// resolveSlotTimes computes the effective timeIn/timeOut for one slot.
// Precedence, first applicable wins: TBD flag, user-supplied time-of-day on
// the slot's start date, catalog default timestamp verbatim, hardcoded
// 09:00/17:00 fallback. An overnight shift then forces timeOut to 06:00 on the
// following day unless the slot is TBD.
func resolveSlotTimes(startDate, userIn, userOut, catalogIn, catalogOut string, tbd, overnight bool) slotTimes {
	if tbd {
		return slotTimes{timeIn: TBDValue, timeOut: TBDValue}
	}

	timeIn := startDate + "T" + defaultTimeIn
	if t := normalizeTimeOfDay(userIn); t != "" {
		timeIn = startDate + "T" + t
	} else if catalogIn != "" {
		timeIn = catalogIn
	}

	timeOut := startDate + "T" + defaultTimeOut
	if t := normalizeTimeOfDay(userOut); t != "" {
		timeOut = startDate + "T" + t
	} else if catalogOut != "" {
		timeOut = catalogOut
	}

	if overnight {
		if d, err := time.Parse(dateLayout, startDate); err == nil {
			timeOut = d.AddDate(0, 0, 1).Format(dateLayout) + "T" + overnightTimeOut
		}
	}

	return slotTimes{timeIn: timeIn, timeOut: timeOut}
}

package attendance

import (
	"math"

	"github.com/atlashr/workforce-backend-go/internal/domain/punch"
)

// dayAggregate is the presence evidence extracted from one local day's
// punches: the earliest IN and the latest OUT.
type dayAggregate struct {
	FirstIn *punch.Punch
	LastOut *punch.Punch
}

// aggregatePunches expects punches for a single local day, sorted ascending
// by instant. The last OUT is found scanning from the end, regardless of its
// position relative to the first IN: an IN/OUT pair sharing one instant is
// legal and means zero worked hours. A day with OUT punches but no IN punch
// has no presence evidence; it is never silently paired.
func aggregatePunches(punches []punch.Punch) dayAggregate {
	var agg dayAggregate

	for i := range punches {
		if punches[i].Type == punch.TypeIn {
			agg.FirstIn = &punches[i]
			break
		}
	}
	if agg.FirstIn == nil {
		return dayAggregate{}
	}

	for i := len(punches) - 1; i >= 0; i-- {
		if punches[i].Type == punch.TypeOut {
			agg.LastOut = &punches[i]
			break
		}
	}

	return agg
}

// workedHours returns the span between first IN and last OUT in hours,
// rounded to two decimals, or nil when either end is missing. It is a
// derived convenience figure and never decides the day's status.
func (a dayAggregate) workedHours() *float64 {
	if a.FirstIn == nil || a.LastOut == nil {
		return nil
	}
	hours := a.LastOut.PunchedAt.Sub(a.FirstIn.PunchedAt).Hours()
	hours = math.Round(hours*100) / 100
	return &hours
}

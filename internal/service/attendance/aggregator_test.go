package attendance

import (
	"testing"
	"time"

	"github.com/atlashr/workforce-backend-go/internal/domain/punch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func punchAt(typ punch.Type, instant time.Time) punch.Punch {
	return punch.Punch{Type: typ, PunchedAt: instant}
}

func TestAggregatePunches_FirstInLastOut(t *testing.T) {
	base := time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC)
	punches := []punch.Punch{
		punchAt(punch.TypeIn, base),
		punchAt(punch.TypeOut, base.Add(4*time.Hour)),
		punchAt(punch.TypeIn, base.Add(5*time.Hour)),
		punchAt(punch.TypeOut, base.Add(9*time.Hour)),
	}

	agg := aggregatePunches(punches)

	require.NotNil(t, agg.FirstIn)
	require.NotNil(t, agg.LastOut)
	assert.Equal(t, base, agg.FirstIn.PunchedAt)
	assert.Equal(t, base.Add(9*time.Hour), agg.LastOut.PunchedAt)
}

func TestAggregatePunches_OutBeforeFirstIn(t *testing.T) {
	// A stray OUT before the first IN must not become the pair's end.
	base := time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC)
	punches := []punch.Punch{
		punchAt(punch.TypeOut, base),
		punchAt(punch.TypeIn, base.Add(time.Hour)),
		punchAt(punch.TypeOut, base.Add(8*time.Hour)),
	}

	agg := aggregatePunches(punches)

	require.NotNil(t, agg.FirstIn)
	require.NotNil(t, agg.LastOut)
	assert.Equal(t, base.Add(time.Hour), agg.FirstIn.PunchedAt)
	assert.Equal(t, base.Add(8*time.Hour), agg.LastOut.PunchedAt)
}

func TestAggregatePunches_OutOnly(t *testing.T) {
	// OUT punches without any IN carry no presence evidence.
	base := time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC)
	punches := []punch.Punch{
		punchAt(punch.TypeOut, base),
		punchAt(punch.TypeOut, base.Add(2*time.Hour)),
	}

	agg := aggregatePunches(punches)

	assert.Nil(t, agg.FirstIn)
	assert.Nil(t, agg.LastOut)
}

func TestAggregatePunches_InOnly(t *testing.T) {
	base := time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC)
	agg := aggregatePunches([]punch.Punch{punchAt(punch.TypeIn, base)})

	require.NotNil(t, agg.FirstIn)
	assert.Nil(t, agg.LastOut)
	assert.Nil(t, agg.workedHours())
}

func TestAggregatePunches_Empty(t *testing.T) {
	agg := aggregatePunches(nil)
	assert.Nil(t, agg.FirstIn)
	assert.Nil(t, agg.LastOut)
}

func TestWorkedHours(t *testing.T) {
	base := time.Date(2024, 1, 15, 3, 35, 0, 0, time.UTC)
	agg := aggregatePunches([]punch.Punch{
		punchAt(punch.TypeIn, base),
		punchAt(punch.TypeOut, base.Add(8*time.Hour+35*time.Minute)),
	})

	hours := agg.workedHours()
	require.NotNil(t, hours)
	assert.InDelta(t, 8.58, *hours, 0.001)
}

func TestWorkedHours_SameInstantPair(t *testing.T) {
	// An IN/OUT pair at the same instant is legal and means zero hours.
	instant := time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC)
	agg := aggregatePunches([]punch.Punch{
		punchAt(punch.TypeIn, instant),
		punchAt(punch.TypeOut, instant),
	})

	hours := agg.workedHours()
	require.NotNil(t, hours)
	assert.Equal(t, 0.0, *hours)
}

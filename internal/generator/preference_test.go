package generator

import (
	"testing"
	"time"

	"dashd/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyTrend_NoPrevious(t *testing.T) {
	assert.Equal(t, models.TrendStable, ClassifyTrend(0, false, 500))
}

func TestClassifyTrend_ZeroPrevious(t *testing.T) {
	assert.Equal(t, models.TrendStable, ClassifyTrend(0, true, 500))
}

func TestClassifyTrend_Rising(t *testing.T) {
	// +6% crosses the +5% threshold
	assert.Equal(t, models.TrendRising, ClassifyTrend(100, true, 106))
}

func TestClassifyTrend_Falling(t *testing.T) {
	// -6% crosses the -5% threshold
	assert.Equal(t, models.TrendFalling, ClassifyTrend(100, true, 94))
}

func TestClassifyTrend_StableWithinThreshold(t *testing.T) {
	assert.Equal(t, models.TrendStable, ClassifyTrend(100, true, 103))
	assert.Equal(t, models.TrendStable, ClassifyTrend(100, true, 97))
	assert.Equal(t, models.TrendStable, ClassifyTrend(100, true, 105))
	assert.Equal(t, models.TrendStable, ClassifyTrend(100, true, 95))
}

func TestTimeOfDayWeight_Curve(t *testing.T) {
	cases := map[int]float64{
		0: 0.3, 5: 0.3,
		6: 0.8, 8: 0.8,
		9: 1.0, 12: 1.0, 17: 1.0,
		18: 0.9, 21: 0.9,
		22: 0.4, 23: 0.4,
	}
	for hour, want := range cases {
		assert.Equal(t, want, timeOfDayWeight(hour), "hour %d", hour)
	}
}

func TestPreferenceGenerator_FirstSnapshotStable(t *testing.T) {
	g := NewPreferenceGenerator(testRand())
	for i := 0; i < 100; i++ {
		p := g.Generate(testNoon, nil).Data.(models.PreferencePayload)
		assert.Equal(t, models.TrendStable, p.Trend)
	}
}

func TestPreferenceGenerator_NoonBounds(t *testing.T) {
	g := NewPreferenceGenerator(testRand())
	for i := 0; i < 1000; i++ {
		p := g.Generate(testNoon, nil).Data.(models.PreferencePayload)
		// stable trend, weight 1.0: base [400, 1000] with ±20% jitter
		assert.GreaterOrEqual(t, p.TotalVisits, 320.0)
		assert.LessOrEqual(t, p.TotalVisits, 1200.0)
	}
}

func TestPreferenceGenerator_NeverNegative(t *testing.T) {
	night := time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC)
	g := NewPreferenceGenerator(testRand())
	prev := &models.Snapshot{Data: models.PreferencePayload{TotalVisits: 5000}}
	for i := 0; i < 1000; i++ {
		p := g.Generate(night, prev).Data.(models.PreferencePayload)
		assert.GreaterOrEqual(t, p.TotalVisits, 0.0)
		for _, pg := range p.Pages {
			assert.GreaterOrEqual(t, pg.Visits, 0.0)
		}
	}
}

func TestPreferenceGenerator_TrendAgainstPrevious(t *testing.T) {
	g := NewPreferenceGenerator(testRand())
	// a tiny previous magnitude forces rising against any raw draw
	prev := &models.Snapshot{Data: models.PreferencePayload{TotalVisits: 1}}
	p := g.Generate(testNoon, prev).Data.(models.PreferencePayload)
	assert.Equal(t, models.TrendRising, p.Trend)

	// a huge previous magnitude forces falling
	prev = &models.Snapshot{Data: models.PreferencePayload{TotalVisits: 100000}}
	p = g.Generate(testNoon, prev).Data.(models.PreferencePayload)
	assert.Equal(t, models.TrendFalling, p.Trend)
}

func TestPreferenceGenerator_PagesSumToTotal(t *testing.T) {
	g := NewPreferenceGenerator(testRand())
	snap := g.Generate(testNoon, nil)
	p := snap.Data.(models.PreferencePayload)
	require.Len(t, p.Pages, len(pageCatalog))
	var sum float64
	for _, pg := range p.Pages {
		sum += pg.Visits
	}
	assert.InDelta(t, p.TotalVisits, sum, 0.5)
}

func TestPreviousTotalVisits_Sources(t *testing.T) {
	v, ok := previousTotalVisits(nil)
	assert.False(t, ok)
	assert.Zero(t, v)

	v, ok = previousTotalVisits(&models.Snapshot{Data: models.PreferencePayload{TotalVisits: 42.5}})
	assert.True(t, ok)
	assert.Equal(t, 42.5, v)

	v, ok = previousTotalVisits(&models.Snapshot{Data: &models.PreferencePayload{TotalVisits: 10}})
	assert.True(t, ok)
	assert.Equal(t, 10.0, v)

	// the shape a reload from storage produces
	v, ok = previousTotalVisits(&models.Snapshot{Data: map[string]any{"total_visits": 99.9}})
	assert.True(t, ok)
	assert.Equal(t, 99.9, v)

	_, ok = previousTotalVisits(&models.Snapshot{Data: map[string]any{"other": 1}})
	assert.False(t, ok)

	_, ok = previousTotalVisits(&models.Snapshot{Data: models.VisitorPayload{TotalVisitors: 7}})
	assert.False(t, ok)
}

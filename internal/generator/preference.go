package generator

import (
	"math/rand"
	"time"

	"github.com/spf13/cast"

	"dashd/internal/models"
)

// PreferenceGenerator is the trend-aware family of one: the new magnitude
// is classified against the previous snapshot's magnitude with a ±5%
// relative threshold, scaled by a trend multiplier and the time-of-day
// weight, then jittered ±20%. Without a previous snapshot the trend is
// stable.
type PreferenceGenerator struct {
	rng *rand.Rand
}

func NewPreferenceGenerator(rng *rand.Rand) *PreferenceGenerator {
	return &PreferenceGenerator{rng: rng}
}

func (g *PreferenceGenerator) Type() models.StatType { return models.TypePreference }

const (
	trendThreshold    = 0.05
	risingMultiplier  = 1.2
	fallingMultiplier = 0.8
	jitterSpread      = 0.2
)

// ClassifyTrend compares current against previous with the ±5% relative
// threshold. hasPrev=false (first snapshot of the day) is always stable.
func ClassifyTrend(previous float64, hasPrev bool, current float64) models.Trend {
	if !hasPrev || previous == 0 {
		return models.TrendStable
	}
	change := (current - previous) / previous
	switch {
	case change > trendThreshold:
		return models.TrendRising
	case change < -trendThreshold:
		return models.TrendFalling
	default:
		return models.TrendStable
	}
}

func trendMultiplier(t models.Trend) float64 {
	switch t {
	case models.TrendRising:
		return risingMultiplier
	case models.TrendFalling:
		return fallingMultiplier
	default:
		return 1.0
	}
}

// timeOfDayWeight scales magnitudes by the campus activity curve.
func timeOfDayWeight(hour int) float64 {
	switch {
	case hour < 6:
		return 0.3
	case hour < 9:
		return 0.8
	case hour < 18:
		return 1.0
	case hour < 22:
		return 0.9
	default:
		return 0.4
	}
}

func (g *PreferenceGenerator) Generate(now time.Time, prev *models.Snapshot) models.Snapshot {
	raw := uniform(g.rng, 400, 1000)

	previous, hasPrev := previousTotalVisits(prev)
	trend := ClassifyTrend(previous, hasPrev, raw)

	jitter := 1 + (g.rng.Float64()*2-1)*jitterSpread
	total := raw * trendMultiplier(trend) * jitter * timeOfDayWeight(now.Hour())
	if total < 0 {
		total = 0
	}
	total = round1(total)

	pages := make([]models.PagePreference, 0, len(pageCatalog))
	remaining := total
	for i, p := range pageCatalog {
		share := remaining
		if i < len(pageCatalog)-1 {
			share = round1(remaining * uniform(g.rng, 0.1, 0.4))
		}
		if share < 0 {
			share = 0
		}
		remaining -= share
		pages = append(pages, models.PagePreference{Name: p.title, Visits: share})
	}

	return newSnapshot(now, models.PreferencePayload{
		TotalVisits: total,
		Trend:       trend,
		Pages:       pages,
	})
}

// previousTotalVisits pulls the magnitude out of the prior snapshot. On
// the write path Data is a typed payload; after a reload from storage it
// is a decoded map, hence the cast fallback.
func previousTotalVisits(prev *models.Snapshot) (float64, bool) {
	if prev == nil {
		return 0, false
	}
	switch d := prev.Data.(type) {
	case models.PreferencePayload:
		return d.TotalVisits, true
	case *models.PreferencePayload:
		return d.TotalVisits, true
	case map[string]any:
		if v, ok := d["total_visits"]; ok {
			return cast.ToFloat64(v), true
		}
	}
	return 0, false
}

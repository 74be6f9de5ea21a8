package generator

import (
	"math/rand"
	"time"

	"dashd/internal/models"
)

// Generator produces one snapshot for its statistic type. now is captured
// once per collector cycle and must not be mutated; prev is the latest
// snapshot of today's document, nil on the first run of the day.
type Generator interface {
	Type() models.StatType
	Generate(now time.Time, prev *models.Snapshot) models.Snapshot
}

// NewRand seeds the shared random source. Collector cycles are serialized
// by the scheduler mutex, so a single unlocked source is fine.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Registry holds one generator per statistic type.
type Registry struct {
	gens map[models.StatType]Generator
}

func NewRegistry(rng *rand.Rand) *Registry {
	r := &Registry{gens: make(map[models.StatType]Generator)}
	for _, g := range []Generator{
		NewCourseGenerator(rng),
		NewFacilityGenerator(rng),
		NewVisitorGenerator(rng),
		NewPageGenerator(rng),
		NewPerformanceGenerator(rng),
		NewPreferenceGenerator(rng),
		NewExamGenerator(rng, models.TypeExam),
		NewAssignmentGenerator(rng, models.TypeAssignment),
		NewAssignmentGenerator(rng, models.TypeCurrentAssignment),
		NewWeeklyScoreGenerator(rng),
		NewStudentGenerator(rng),
	} {
		r.gens[g.Type()] = g
	}
	return r
}

func (r *Registry) For(typ models.StatType) (Generator, bool) {
	g, ok := r.gens[typ]
	return g, ok
}

func newSnapshot(now time.Time, data models.Payload) models.Snapshot {
	return models.Snapshot{
		CreatedAt: now,
		Period:    models.PeriodOf(now),
		Data:      data,
	}
}

// uniform returns a value in [lo, hi].
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// uniformInt returns a value in [lo, hi].
func uniformInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

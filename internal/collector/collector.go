package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/atomic"

	"dashd/internal/generator"
	"dashd/internal/models"
	"dashd/internal/providers"
	"dashd/internal/store"
)

// Collector owns the append-merge loop for one statistic type. A cycle is
// read -> generate -> append -> persist; any read failure degrades to
// "start a fresh document", any persist failure ends the cycle and the
// next tick tries again. Last write wins: nothing guards against a second
// process running the same type.
type Collector struct {
	typ      models.StatType
	interval time.Duration
	limit    int
	gen      generator.Generator
	docs     store.DocumentStore
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
	loc      *time.Location
	now      func() time.Time
	running  atomic.Bool
}

func NewCollector(
	typ models.StatType,
	interval time.Duration,
	historyLimit int,
	gen generator.Generator,
	docs store.DocumentStore,
	logger providers.Logger,
	metrics providers.MetricsProviderInterface,
	loc *time.Location,
) *Collector {
	return &Collector{
		typ:      typ,
		interval: interval,
		limit:    historyLimit,
		gen:      gen,
		docs:     docs,
		logger:   logger,
		metrics:  metrics,
		loc:      loc,
		now:      time.Now,
	}
}

func (c *Collector) Type() models.StatType   { return c.typ }
func (c *Collector) Interval() time.Duration { return c.interval }

// RunCycle executes one collection cycle. Overlapping invocations are
// skipped rather than queued.
func (c *Collector) RunCycle(ctx context.Context) error {
	if !c.running.CompareAndSwap(false, true) {
		c.logger.Warnf(providers.TypeCollector, "Cycle for %s still in flight, skipping", c.typ)
		return nil
	}
	defer c.running.Store(false)

	start := time.Now()
	err := c.cycle(ctx)
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.metrics.IncCollectorCycles(string(c.typ), result)
	c.metrics.ObserveCycleDuration(string(c.typ), time.Since(start))
	return err
}

func (c *Collector) cycle(ctx context.Context) error {
	// One immutable capture of now per cycle; created_at and period both
	// derive from it.
	now := c.now().In(c.loc)
	date := models.DateKeyAt(now, c.loc)

	doc, err := c.docs.Get(ctx, c.typ, date)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			c.logger.Warnf(providers.TypeCollector, "Read failed for %s/%s, starting fresh: %s", c.typ, date, err)
		}
		doc = models.NewStatDocument(c.typ, date)
	}

	snap := c.gen.Generate(now, doc.LastSnapshot())
	doc.Append(snap, c.limit)

	if err := c.docs.Put(ctx, c.typ, date, doc); err != nil {
		return fmt.Errorf("persist %s/%s: %w", c.typ, date, err)
	}

	c.metrics.SetHistoryLength(string(c.typ), len(doc.History))
	c.logger.Infof(providers.TypeCollector, "Collected %s/%s (%d snapshots)", c.typ, date, len(doc.History))
	return nil
}

package collector

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/roylee0704/gron"

	"dashd/internal/collector/interfaces"
	"dashd/internal/generator"
	"dashd/internal/models"
	"dashd/internal/providers"
	"dashd/internal/services"
	"dashd/internal/store"
	"dashd/internal/structures"
)

// DefaultTimezone matches the deployments this daemon feeds; every date
// key and period boundary is computed in it unless configured otherwise.
const DefaultTimezone = "Asia/Seoul"

// Scheduler drives all collectors: each runs once at startup and then on
// its interval. Cycles across collectors are serialized by opsMu, the
// same discipline the single-process design relies on.
type Scheduler struct {
	config     *structures.Config
	logger     providers.Logger
	board      services.BoardServiceInterface
	collectors []*Collector
	cron       *gron.Cron
	opsMu      sync.Mutex
}

func NewScheduler(
	conf *structures.Config,
	logger providers.Logger,
	metrics providers.MetricsProviderInterface,
	registry *generator.Registry,
	docs store.DocumentStore,
	board services.BoardServiceInterface,
) (interfaces.SchedulerInterface, error) {
	tz := conf.Collector.Timezone
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load collector timezone: %w", err)
	}

	types := conf.Collector.Types
	if len(types) == 0 {
		for _, t := range models.AllStatTypes() {
			types = append(types, string(t))
		}
	}

	s := &Scheduler{
		config: conf,
		logger: logger,
		board:  board,
	}

	for _, name := range types {
		typ, err := models.ParseStatType(name)
		if err != nil {
			return nil, err
		}
		gen, ok := registry.For(typ)
		if !ok {
			return nil, fmt.Errorf("no generator registered for %s", typ)
		}

		interval := conf.Collector.Interval
		limit := conf.Collector.HistoryLimit
		if o, ok := conf.Collector.Overrides[name]; ok {
			if o.Interval > 0 {
				interval = o.Interval
			}
			if o.HistoryLimit > 0 {
				limit = o.HistoryLimit
			}
		}

		s.collectors = append(s.collectors, NewCollector(typ, interval, limit, gen, docs, logger, metrics, loc))
	}

	return s, nil
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	// Group collectors sharing an interval into one cron job.
	byInterval := make(map[time.Duration][]*Collector)
	for _, c := range s.collectors {
		byInterval[c.Interval()] = append(byInterval[c.Interval()], c)
	}

	for interval, group := range byInterval {
		group := group
		s.cron.AddFunc(gron.Every(interval), func() {
			s.runGroup(group)
		})
	}

	// Every collector also runs once immediately, before the first tick.
	go s.runGroup(s.collectors)

	s.cron.Start()
	s.logger.Infof(providers.TypeApp, "Scheduler started with %d collectors", len(s.collectors))
}

func (s *Scheduler) runGroup(group []*Collector) {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	ctx := context.Background()
	for _, c := range group {
		if err := c.RunCycle(ctx); err != nil {
			s.logger.Errorf(providers.TypeCollector, "Cycle failed for %s: %s", c.Type(), err)
		}
	}
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Restore loads the board repository from disk at startup.
func (s *Scheduler) Restore() error {
	return s.board.Load()
}

// Persist flushes the board repository on shutdown. Statistic documents
// need no flush: every cycle writes through to the store.
func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Persisting board posts...")
	if err := s.board.Save(); err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting board posts: %s", err)
		return err
	}
	return nil
}

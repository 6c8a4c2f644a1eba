package sweeper

import (
	"patient-records-service/internal/app/contracts"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const fallbackCronSpec = "@every 1m"

type target struct {
	name    string
	sweeper contracts.Sweeper
}

// Worker periodically drops expired entries from the in-process stores.
type Worker struct {
	log     *zap.Logger
	spec    string
	mu      sync.Mutex
	targets []target
	cron    *cron.Cron
	now     func() time.Time
}

func NewWorker(logger *zap.Logger, spec string) *Worker {
	return &Worker{
		log:  logger,
		spec: spec,
		now:  time.Now,
	}
}

func (w *Worker) Register(name string, sweeper contracts.Sweeper) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.targets = append(w.targets, target{name: name, sweeper: sweeper})
}

func (w *Worker) Start() {
	c := cron.New()
	_, err := c.AddFunc(w.spec, w.RunOnce)
	if err != nil {
		w.log.Warn("sweeper.Worker: invalid cron spec, falling back",
			zap.String("cron_spec", w.spec),
			zap.String("fallback_cron_spec", fallbackCronSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(fallbackCronSpec, w.RunOnce)
	}
	c.Start()
	w.cron = c
}

// Stop waits for a running sweep to finish.
func (w *Worker) Stop() {
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) RunOnce() {
	w.mu.Lock()
	targets := append([]target(nil), w.targets...)
	w.mu.Unlock()

	now := w.now()
	for _, t := range targets {
		removed := t.sweeper.Sweep(now)
		if removed > 0 {
			w.log.Debug("sweeper.Worker removed expired entries",
				zap.String("store", t.name),
				zap.Int("removed", removed),
			)
		}
	}
}

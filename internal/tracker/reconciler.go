package tracker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultReconcileInterval is how often the background pass re-checks due
// dates against the clock when no interval is configured.
const DefaultReconcileInterval = time.Minute

// Reconciler runs the overdue derivation pass on a timer so assignments whose
// due date elapses while the process is idle still transition without waiting
// for the next read. The pass itself is the same explicit Tracker.Reconcile
// call the read path uses; nothing here is a hidden render-time side effect.
type Reconciler struct {
	tracker    *Tracker
	interval   time.Duration
	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
	logger     *slog.Logger
}

// NewReconciler creates a Reconciler for the given tracker. A zero interval
// falls back to DefaultReconcileInterval.
func NewReconciler(t *Tracker, interval time.Duration, logger *slog.Logger) *Reconciler {
	if interval <= 0 {
		interval = DefaultReconcileInterval
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Reconciler{
		tracker:    t,
		interval:   interval,
		ctx:        ctx,
		cancelFunc: cancel,
		logger:     logger.With(slog.String("component", "reconciler")),
	}
}

// Start begins the periodic reconciliation loop.
func (r *Reconciler) Start() {
	r.wg.Add(1)
	go r.loop()
}

// Stop gracefully shuts down the loop and waits for it to exit.
func (r *Reconciler) Stop() {
	r.cancelFunc()
	r.wg.Wait()
}

func (r *Reconciler) loop() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.ctx.Done():
			return
		case <-ticker.C:
			if changed := r.tracker.Reconcile(); changed > 0 {
				r.logger.Info("periodic reconciliation transitioned assignments",
					slog.Int("transitioned", changed))
			}
		}
	}
}

package gateway

import (
	"context"

	"go.uber.org/zap"
)

// reconcileJob checks one pending reference against the gateway and
// settles it. Errors are logged by the pool, not returned to the sweep.
type reconcileJob func() error

type jobPool interface {
	Dispatch(ctx context.Context, job reconcileJob) error
	Close()
}

// referencePool fans reconcile jobs out over a fixed set of workers so
// one slow gateway call cannot stall a whole sweep.
type referencePool struct {
	jobs chan reconcileJob
}

func newReferencePool(workers int) *referencePool {
	p := &referencePool{jobs: make(chan reconcileJob, workers)}
	for i := 0; i < workers; i++ {
		go p.work()
	}
	return p
}

func (p *referencePool) work() {
	for job := range p.jobs {
		if err := job(); err != nil {
			zap.L().Error("Top-up reconciliation failed", zap.Error(err))
		}
	}
}

// Dispatch hands a job to the pool, giving up when ctx is cancelled
// while every worker is busy.
func (p *referencePool) Dispatch(ctx context.Context, job reconcileJob) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.jobs <- job:
		return nil
	}
}

func (p *referencePool) Close() {
	close(p.jobs)
}

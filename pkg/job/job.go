package job

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

type job struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

// Runner runs registered jobs on their own tickers until the context is
// canceled. Each run is recovered so a panicking job cannot take the service
// down.
type Runner struct {
	jobs []job
	wg   *sync.WaitGroup
}

func NewRunner() *Runner {
	return &Runner{
		wg: &sync.WaitGroup{},
	}
}

func (r *Runner) Register(name string, interval time.Duration, fn func(ctx context.Context) error) *Runner {
	return r.TryRegister(true, name, interval, fn)
}

func (r *Runner) TryRegister(isEnabled bool, name string, interval time.Duration, fn func(ctx context.Context) error) *Runner {
	if !isEnabled {
		return r
	}

	r.jobs = append(r.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return r
}

func (r *Runner) Start(ctx context.Context) {
	for _, v := range r.jobs {
		go r.startJob(ctx, v)
	}
}

func (r *Runner) startJob(ctx context.Context, job job) {
	r.wg.Add(1)
	defer r.wg.Done()

	l := slog.Default().With("job", job.name)

	ticker := time.NewTicker(job.interval)
	defer ticker.Stop()

	for {
		l.Debug("job started")

		err := r.withRecover(ctx, l, job)
		if err != nil {
			l.Error("job failed", "error", err)
		} else {
			l.Debug("job done")
		}

		select {
		case <-ctx.Done():
			l.Debug("context done")
			return

		case <-ticker.C:
		}
	}
}

func (r *Runner) withRecover(ctx context.Context, l *slog.Logger, j job) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			l.Error("job panic", "error", rec, "stack", string(debug.Stack()))
		}
	}()

	return j.fn(ctx)
}

func (r *Runner) Stop() {
	r.wg.Wait()
}

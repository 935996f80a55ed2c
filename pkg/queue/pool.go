package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/swarmlet/swarmlet/pkg/config"
)

// Handler executes one claimed item. The context is cancelled when the
// lease is lost or the pool shuts down; handlers must stop promptly.
type Handler func(ctx context.Context, item *Item) error

// Job is one registered recurring job.
type Job struct {
	ID       string
	Spec     string
	Schedule cron.Schedule
	Handler  Handler
}

// Pool runs registered jobs: a scheduler goroutine per job enqueues
// fires, claim workers execute them, and a sweeper reclaims leases from
// dead replicas.
type Pool struct {
	store *Store
	cfg   config.QueueConfig
	owner string

	mu   sync.Mutex
	jobs map[string]*Job

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool
}

// NewPool creates a Pool. The owner identity is "hostname:pid", unique
// per process, so a restarted replica can recognize and release its own
// stale claims.
func NewPool(store *Store, cfg config.QueueConfig) *Pool {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return &Pool{
		store:  store,
		cfg:    cfg,
		owner:  fmt.Sprintf("%s:%d", hostname, os.Getpid()),
		jobs:   make(map[string]*Job),
		stopCh: make(chan struct{}),
	}
}

// Owner returns the pool's claim identity.
func (p *Pool) Owner() string {
	return p.owner
}

// Register binds a handler to a cron expression. Must be called before
// Start. Standard 5-field cron specs.
func (p *Pool) Register(jobID, spec string, handler Handler) error {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return fmt.Errorf("invalid cron spec for %s: %w", jobID, err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.jobs[jobID]; exists {
		return fmt.Errorf("job %s already registered", jobID)
	}
	p.jobs[jobID] = &Job{ID: jobID, Spec: spec, Schedule: schedule, Handler: handler}
	return nil
}

// Start releases this owner's stale claims, backfills missed fires, and
// launches schedulers, claim workers, and the sweeper.
func (p *Pool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Queue pool already started, ignoring duplicate Start call", "owner", p.owner)
		return nil
	}
	p.started = true

	released, err := p.store.ReleaseOwned(ctx, p.owner)
	if err != nil {
		return err
	}
	if released > 0 {
		slog.Info("Released stale queue claims from previous incarnation", "owner", p.owner, "count", released)
	}

	p.backfill(ctx)

	p.mu.Lock()
	jobCount := len(p.jobs)
	for _, job := range p.jobs {
		p.wg.Add(1)
		go p.runScheduler(job)
	}
	p.mu.Unlock()

	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)
		go p.runWorker(fmt.Sprintf("%s-worker-%d", p.owner, i))
	}

	p.wg.Add(1)
	go p.runSweeper()

	slog.Info("Queue pool started", "owner", p.owner, "workers", p.cfg.Workers, "jobs", jobCount)
	return nil
}

// Stop signals everything to stop and waits for in-flight tasks, up to
// the configured graceful shutdown timeout.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Queue pool stopped gracefully", "owner", p.owner)
	case <-time.After(p.cfg.GracefulShutdownTimeout):
		slog.Warn("Queue pool shutdown timed out; abandoning in-flight tasks", "owner", p.owner)
	}
}

// backfill enqueues, per job, the single most recent fire missed while
// no scheduler was running, bounded by the backfill window. Only the
// latest missed fire runs: replaying a day of hourly digests after an
// outage helps nobody.
func (p *Pool) backfill(ctx context.Context) {
	now := time.Now()
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, job := range p.jobs {
		missed := lastFireBefore(job.Schedule, now.Add(-p.cfg.BackfillWindow), now)
		if missed.IsZero() {
			continue
		}
		enqueued, err := p.store.Enqueue(ctx, job.ID, missed, p.cfg.MaxAttempts)
		if err != nil {
			slog.Error("Backfill enqueue failed", "job_id", job.ID, "error", err)
			continue
		}
		if enqueued {
			slog.Info("Backfilled missed fire", "job_id", job.ID, "scheduled_for", missed.UTC())
		}
	}
}

// lastFireBefore returns the most recent schedule fire in (from, until],
// or the zero time when there is none.
func lastFireBefore(schedule cron.Schedule, from, until time.Time) time.Time {
	var last time.Time
	t := schedule.Next(from)
	for !t.IsZero() && !t.After(until) {
		last = t
		t = schedule.Next(t)
	}
	return last
}

// runScheduler enqueues each fire of one job as its time arrives. The
// enqueued scheduled_for is the exact fire time, so every replica's
// scheduler computes the same dedupe key and only one insert wins.
func (p *Pool) runScheduler(job *Job) {
	defer p.wg.Done()
	log := slog.With("job_id", job.ID, "owner", p.owner)

	next := job.Schedule.Next(time.Now())
	for {
		select {
		case <-p.stopCh:
			return
		case <-time.After(time.Until(next)):
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if _, err := p.store.Enqueue(ctx, job.ID, next, p.cfg.MaxAttempts); err != nil {
			log.Error("Failed to enqueue scheduled fire", "error", err)
		}
		cancel()

		next = job.Schedule.Next(next)
	}
}

// runWorker is the claim loop: poll with jitter, claim, execute.
func (p *Pool) runWorker(workerID string) {
	defer p.wg.Done()
	log := slog.With("worker_id", workerID)
	log.Info("Queue worker started")

	for {
		select {
		case <-p.stopCh:
			log.Info("Queue worker shutting down")
			return
		default:
			if err := p.claimAndRun(log); err != nil {
				if errors.Is(err, ErrNoItemsAvailable) {
					p.sleep(p.pollInterval())
					continue
				}
				log.Error("Queue item processing failed", "error", err)
				p.sleep(time.Second)
			}
		}
	}
}

// claimAndRun claims one item and drives it to a terminal status.
func (p *Pool) claimAndRun(log *slog.Logger) error {
	ctx := context.Background()

	item, err := p.store.Claim(ctx, p.owner, p.cfg.LeaseDuration)
	if err != nil {
		return err
	}
	log = log.With("item_id", item.ID, "job_id", item.JobID, "attempt", item.Attempts)
	log.Info("Queue item claimed")

	p.mu.Lock()
	job := p.jobs[item.JobID]
	p.mu.Unlock()
	if job == nil {
		// An item for a job this binary no longer registers. Dead-letter
		// rather than bouncing it between replicas forever.
		log.Warn("No handler registered for queued job")
		return p.store.Fail(ctx, item, p.owner, "no handler registered", true)
	}

	ok, err := p.store.MarkRunning(ctx, item.ID, p.owner)
	if err != nil {
		return err
	}
	if !ok {
		log.Warn("Claim lost before execution started")
		return nil
	}

	taskCtx, cancelTask := context.WithCancel(ctx)
	defer cancelTask()

	// Heartbeat at half-lease. A failed heartbeat means the sweeper (or
	// another claimer) took the item; the task must be abandoned, not
	// finished, or two replicas could both complete it.
	hbCtx, cancelHB := context.WithCancel(ctx)
	defer cancelHB()
	p.wg.Add(1)
	go p.runHeartbeat(hbCtx, item, cancelTask, log)

	// Shutdown cancels in-flight tasks cooperatively.
	go func() {
		select {
		case <-p.stopCh:
			cancelTask()
		case <-taskCtx.Done():
		}
	}()

	err = job.Handler(taskCtx, item)
	cancelHB()

	if err != nil {
		log.Warn("Queue item failed", "error", err)
		return p.store.Fail(ctx, item, p.owner, err.Error(), errors.Is(err, ErrPermanent))
	}
	if taskCtx.Err() != nil {
		// The handler swallowed the cancellation; the lease may be gone.
		return p.store.Fail(ctx, item, p.owner, taskCtx.Err().Error(), false)
	}

	log.Info("Queue item complete")
	return p.store.Succeed(ctx, item.ID, p.owner)
}

// runHeartbeat extends the lease until cancelled; on a lost lease it
// cancels the task.
func (p *Pool) runHeartbeat(ctx context.Context, item *Item, cancelTask context.CancelFunc, log *slog.Logger) {
	defer p.wg.Done()
	ticker := time.NewTicker(p.cfg.LeaseDuration / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.store.Heartbeat(ctx, item.ID, p.owner, p.cfg.LeaseDuration); err != nil {
				if errors.Is(err, ErrLeaseLost) {
					log.Warn("Queue lease lost; aborting task")
					cancelTask()
					return
				}
				log.Warn("Queue heartbeat failed", "error", err)
			}
		}
	}
}

// runSweeper periodically reclaims expired leases cluster-wide.
func (p *Pool) runSweeper() {
	defer p.wg.Done()
	ticker := time.NewTicker(p.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			requeued, dead, err := p.store.Sweep(ctx)
			cancel()
			if err != nil {
				slog.Error("Queue sweep failed", "owner", p.owner, "error", err)
				continue
			}
			if requeued > 0 || dead > 0 {
				slog.Info("Queue sweep reclaimed items", "owner", p.owner, "requeued", requeued, "dead", dead)
			}
		}
	}
}

// sleep waits for d or until stop is signalled.
func (p *Pool) sleep(d time.Duration) {
	select {
	case <-p.stopCh:
	case <-time.After(d):
	}
}

// pollInterval returns the poll duration with jitter, spreading
// replicas' claim attempts apart.
func (p *Pool) pollInterval() time.Duration {
	base := p.cfg.PollInterval
	jitter := p.cfg.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

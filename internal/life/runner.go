package life

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/randomizedcoder/axcontainers/internal/cancel"
	"github.com/randomizedcoder/axcontainers/internal/tick"
)

// Runner drives a World: it drains the mailbox into the input backlog,
// applies inputs, and advances one generation per tick while not paused.
//
// All World access happens on the goroutine calling Run.
type Runner struct {
	world   *World
	inputs  *Inputs
	mailbox *Mailbox
	ticker  *tick.Rate
	stop    cancel.Canceler
	quit    cancel.Flag
	log     *zap.Logger
	metrics *Metrics

	paused      bool
	generation  uint64
	generations uint64
	poll        time.Duration
	report      time.Duration
	dropped     uint64
}

// NewRunner creates a runner for w. stop, if not nil, ends Run from
// outside; a quit input ends it from inside. mb may be nil if inputs are
// only added directly.
func NewRunner(cfg Config, w *World, inputs *Inputs, mb *Mailbox, stop cancel.Canceler, log *zap.Logger, m *Metrics) *Runner {
	r := &Runner{
		world:       w,
		inputs:      inputs,
		mailbox:     mb,
		ticker:      tick.NewRate(cfg.Rate),
		log:         log,
		metrics:     m,
		paused:      cfg.Paused,
		generations: cfg.Generations,
		poll:        cfg.Poll,
		report:      cfg.Report,
	}
	r.stop = &r.quit
	if stop != nil {
		r.stop = cancel.Any{stop, &r.quit}
	}
	m.rate.Set(float64(r.ticker.PerSecond()))
	return r
}

// Generation returns the number of generations computed so far.
func (r *Runner) Generation() uint64 {
	return r.generation
}

// Paused reports whether generations are suspended.
func (r *Runner) Paused() bool {
	return r.paused
}

// Rate returns the target generations per second.
func (r *Runner) Rate() int {
	return r.ticker.PerSecond()
}

// Run loops until stopped, a quit input arrives, the configured number of
// generations is reached, or a generation fails.
func (r *Runner) Run() error {
	r.log.Info("Starting simulation",
		zap.Stringer("rules", r.world.Rules()),
		zap.Int("population", r.world.Population()),
		zap.Int("rate", r.ticker.PerSecond()),
		zap.Bool("paused", r.paused),
	)
	defer r.ticker.Stop()

	lastReport := time.Now()
	for !r.stop.Done() {
		r.receive()
		r.apply()

		if r.paused || !r.ticker.Tick() {
			if r.poll > 0 {
				time.Sleep(r.poll)
			}
			continue
		}
		if err := r.Step(); err != nil {
			r.log.Error("Generation failed",
				zap.Uint64("generation", r.generation),
				zap.Int("population", r.world.Population()),
				zap.Error(err),
			)
			return err
		}
		if r.generations > 0 && r.generation >= r.generations {
			break
		}
		if r.report > 0 && time.Since(lastReport) >= r.report {
			lastReport = time.Now()
			r.log.Info("Progress",
				zap.Uint64("generation", r.generation),
				zap.Int("population", r.world.Population()),
			)
		}
	}

	r.log.Info("Simulation stopped",
		zap.Uint64("generation", r.generation),
		zap.Int("population", r.world.Population()),
		zap.Uint64("inputs_dropped", r.dropped+r.inputs.Dropped()),
	)
	return nil
}

// Step computes one generation and records it.
func (r *Runner) Step() error {
	start := time.Now()
	if err := r.world.Step(); err != nil {
		return fmt.Errorf("generation %d: %w", r.generation+1, err)
	}
	r.metrics.stepSeconds.Observe(time.Since(start).Seconds())
	r.generation++
	r.metrics.generations.Inc()
	r.metrics.population.Set(float64(r.world.Population()))
	return nil
}

// receive moves everything waiting in the mailbox onto the backlog.
func (r *Runner) receive() {
	if r.mailbox == nil {
		return
	}
	for {
		in, ok := r.mailbox.Receive()
		if !ok {
			return
		}
		before := r.inputs.Dropped()
		if err := r.inputs.Add(in); err != nil {
			r.dropped++
			r.metrics.dropped.Inc()
			r.log.Warn("Dropping input", zap.Stringer("kind", in.Kind), zap.Error(err))
			continue
		}
		if d := r.inputs.Dropped() - before; d > 0 {
			r.metrics.dropped.Add(float64(d))
		}
	}
}

// apply handles every pending input.
func (r *Runner) apply() {
	for {
		in, ok := r.inputs.Next()
		if !ok {
			return
		}
		r.metrics.inputs.WithLabelValues(in.Kind.String()).Inc()
		if err := r.handle(in); err != nil {
			r.log.Warn("Input failed", zap.Stringer("kind", in.Kind), zap.Error(err))
		}
	}
}

func (r *Runner) handle(in Input) error {
	switch in.Kind {
	case InputPlace:
		return r.world.Place(in.X, in.Y)
	case InputRemove:
		r.world.Remove(in.X, in.Y)
	case InputPause:
		r.paused = !r.paused
		if !r.paused {
			r.ticker.Reset()
		}
		r.log.Info("Pause toggled", zap.Bool("paused", r.paused))
	case InputClear:
		r.world.Clear()
	case InputRate:
		rate := r.ticker.Adjust(in.Delta)
		r.metrics.rate.Set(float64(rate))
		r.log.Info("Rate changed", zap.Int("rate", rate))
	case InputBackup:
		if err := r.world.Backup(); err != nil {
			return err
		}
		r.metrics.backups.Set(float64(r.world.Backups()))
	case InputRestore:
		if !r.world.Restore() {
			r.log.Debug("No backup to restore")
		}
		r.metrics.backups.Set(float64(r.world.Backups()))
	case InputQuit:
		r.quit.Cancel()
	default:
		return fmt.Errorf("%w: kind %d", ErrInput, in.Kind)
	}
	r.metrics.population.Set(float64(r.world.Population()))
	return nil
}

package scenario

import (
	"context"
	"fmt"
	"log/slog"
)

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. A nil logger falls back to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithCompact renders results with juxtaposed products.
func WithCompact(compact bool) Option {
	return func(r *Runner) {
		r.compact = compact
	}
}

// WithStepLimit rejects scenarios with more than n steps. Zero means no limit.
func WithStepLimit(n int) Option {
	return func(r *Runner) {
		r.stepLimit = n
	}
}

// Runner replays scenarios. A Runner holds no per-scenario state and may run
// several scenarios concurrently.
type Runner struct {
	logger    *slog.Logger
	compact   bool
	stepLimit int
}

// NewRunner creates a Runner configured by opts.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Result is the outcome of a successful run.
type Result struct {
	Name   string
	Steps  int
	Output string
}

// Run applies every step of s in order. It stops at the first failing step or
// when ctx is done.
func (r *Runner) Run(ctx context.Context, s *Scenario) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", s.Name, err)
	}
	if r.stepLimit > 0 && len(s.Steps) > r.stepLimit {
		return Result{}, fmt.Errorf("%s: %d steps exceeds limit %d: %w", s.Name, len(s.Steps), r.stepLimit, ErrInvalid)
	}
	m, err := newMachine(s)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", s.Name, err)
	}

	log := r.logger.With(slog.String("scenario", s.Name), slog.String("kind", string(s.Kind)))
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("%s: step %d: %w", s.Name, i, err)
		}
		if st.Op == "expect" {
			if got := m.render(false); got != st.Want {
				return Result{}, fmt.Errorf("%s: step %d: got %q, want %q: %w", s.Name, i, got, st.Want, ErrExpectation)
			}
			log.Debug("Expectation met", slog.Int("step", i), slog.String("value", st.Want))
			continue
		}
		if err := m.apply(st); err != nil {
			return Result{}, fmt.Errorf("%s: step %d (%s): %w", s.Name, i, st.Op, err)
		}
		log.Debug("Applied step", slog.Int("step", i), slog.String("op", st.Op), slog.String("value", m.render(false)))
	}

	res := Result{Name: s.Name, Steps: len(s.Steps), Output: m.render(r.compact)}
	log.Info("Scenario passed", slog.Int("steps", res.Steps), slog.String("result", res.Output))
	return res, nil
}

// RunFile loads and runs the scenario at path.
func (r *Runner) RunFile(ctx context.Context, path string) (Result, error) {
	s, err := Load(path)
	if err != nil {
		return Result{}, err
	}
	return r.Run(ctx, s)
}

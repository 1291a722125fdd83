package resilience

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half_open"
)

type Config struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenProbes   int
}

func DefaultConfig() Config {
	return Config{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenProbes:   2,
	}
}

// Normalize fills non-positive fields from DefaultConfig.
func (c Config) Normalize() Config {
	d := DefaultConfig()
	if c.FailureThreshold < 1 {
		c.FailureThreshold = d.FailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = d.OpenTimeout
	}
	if c.HalfOpenProbes < 1 {
		c.HalfOpenProbes = d.HalfOpenProbes
	}
	return c
}

// Breaker trips after FailureThreshold consecutive failures, rejects calls
// for OpenTimeout, then lets HalfOpenProbes calls through. All probes must
// succeed to close it again; any probe failure reopens it.
type Breaker struct {
	name string
	cfg  Config
	now  func() time.Time

	mu        sync.Mutex
	state     State
	failures  int
	openedAt  time.Time
	inFlight  int
	succeeded int
	onChange  func(name string, from, to State)
}

// New returns nil when cfg is disabled. A nil *Breaker passes every call.
func New(name string, cfg Config) *Breaker {
	if !cfg.Enabled {
		return nil
	}
	return &Breaker{
		name:  name,
		cfg:   cfg.Normalize(),
		now:   time.Now,
		state: StateClosed,
	}
}

// OnStateChange registers a hook called, outside the lock, after every transition.
func (b *Breaker) OnStateChange(fn func(name string, from, to State)) {
	if b == nil {
		return
	}
	b.mu.Lock()
	b.onChange = fn
	b.mu.Unlock()
}

func (b *Breaker) Name() string {
	if b == nil {
		return ""
	}
	return b.name
}

// Execute runs fn when the breaker admits the call and records its outcome.
// Context cancellation by the caller is not counted against the dependency.
func (b *Breaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if b == nil {
		return fn(ctx)
	}
	if err := b.admit(); err != nil {
		return err
	}

	err := fn(ctx)
	b.record(err == nil || errors.Is(err, context.Canceled))
	return err
}

func (b *Breaker) State() State {
	if b == nil {
		return StateClosed
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		return StateHalfOpen
	}
	return b.state
}

func (b *Breaker) admit() error {
	b.mu.Lock()
	from := b.state
	if b.state == StateOpen {
		if b.now().Sub(b.openedAt) < b.cfg.OpenTimeout {
			b.mu.Unlock()
			return ErrCircuitOpen
		}
		b.moveTo(StateHalfOpen)
	}
	if b.state == StateHalfOpen {
		if b.inFlight >= b.cfg.HalfOpenProbes {
			b.mu.Unlock()
			b.notify(from)
			return ErrCircuitOpen
		}
		b.inFlight++
	}
	b.mu.Unlock()
	b.notify(from)
	return nil
}

func (b *Breaker) record(ok bool) {
	b.mu.Lock()
	from := b.state
	switch b.state {
	case StateClosed:
		if ok {
			b.failures = 0
		} else if b.failures++; b.failures >= b.cfg.FailureThreshold {
			b.moveTo(StateOpen)
		}
	case StateHalfOpen:
		if b.inFlight > 0 {
			b.inFlight--
		}
		if !ok {
			b.moveTo(StateOpen)
			break
		}
		if b.succeeded++; b.succeeded >= b.cfg.HalfOpenProbes && b.inFlight == 0 {
			b.moveTo(StateClosed)
		}
	case StateOpen:
		if !ok {
			b.openedAt = b.now()
		}
	}
	b.mu.Unlock()
	b.notify(from)
}

// moveTo must be called with mu held.
func (b *Breaker) moveTo(to State) {
	b.state = to
	b.inFlight = 0
	b.succeeded = 0
	switch to {
	case StateClosed:
		b.failures = 0
		b.openedAt = time.Time{}
	case StateOpen:
		b.openedAt = b.now()
	}
}

func (b *Breaker) notify(from State) {
	b.mu.Lock()
	to, fn := b.state, b.onChange
	b.mu.Unlock()
	if fn != nil && from != to {
		fn(b.name, from, to)
	}
}

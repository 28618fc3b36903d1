package access

import "sync"

// Policy fixes the budgets for a share before it starts.
type Policy struct {
	// Uses is how many times the payload may be retrieved.
	Uses uint
	// FailedAttempts is how many invalid requests are tolerated before
	// the share is aborted.
	FailedAttempts uint
}

// Decision is the counter's verdict on a single request.
type Decision int

const (
	// Serve means a use was consumed and the payload may be sent.
	Serve Decision = iota
	// Gone means the path was valid but the share is already terminal.
	Gone
	// NotFound means the path was invalid.
	NotFound
)

func (d Decision) String() string {
	switch d {
	case Serve:
		return "serve"
	case Gone:
		return "gone"
	default:
		return "not found"
	}
}

// Cause identifies which budget ended a share.
type Cause int

const (
	CauseNone Cause = iota
	CauseUsesExhausted
	CauseFailuresExhausted
)

func (c Cause) String() string {
	switch c {
	case CauseUsesExhausted:
		return "all uses consumed"
	case CauseFailuresExhausted:
		return "failed attempt budget exhausted"
	default:
		return "active"
	}
}

// Counter tracks the remaining budgets of one share across concurrent
// request handlers.
type Counter struct {
	mu                sync.Mutex
	remainingUses     uint
	remainingFailures uint
	cause             Cause

	once      sync.Once
	exhausted chan struct{}
}

// NewCounter returns a counter holding the full budgets of p.
func NewCounter(p Policy) *Counter {
	return &Counter{
		remainingUses:     p.Uses,
		remainingFailures: p.FailedAttempts,
		exhausted:         make(chan struct{}),
	}
}

// RecordValid accounts for a request whose path matched the share URL.
// Consuming the last use moves the counter into its terminal state, so the
// response carrying the final payload copy is also the last one ever served.
// The verdict is derived from the post-decrement value while the lock is
// held; two racing requests can never both win the last use.
func (c *Counter) RecordValid() Decision {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cause != CauseNone {
		return Gone
	}
	if c.remainingUses == 0 {
		// Only reachable with a zero-use policy.
		c.terminate(CauseUsesExhausted)
		return Gone
	}
	c.remainingUses--
	if c.remainingUses == 0 {
		c.terminate(CauseUsesExhausted)
	}
	return Serve
}

// RecordInvalid accounts for a request with any other path. The share stays
// up while tolerated failures remain; the first invalid request beyond the
// budget terminates it. Terminal shares answer without further bookkeeping.
func (c *Counter) RecordInvalid() Decision {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cause != CauseNone {
		return NotFound
	}
	if c.remainingFailures == 0 {
		c.terminate(CauseFailuresExhausted)
		return NotFound
	}
	c.remainingFailures--
	return NotFound
}

// terminate records the cause and fires the exhaustion signal exactly once.
// Callers must hold c.mu.
func (c *Counter) terminate(cause Cause) {
	c.cause = cause
	c.once.Do(func() { close(c.exhausted) })
}

// Exhausted returns a channel that is closed once either budget is spent.
func (c *Counter) Exhausted() <-chan struct{} { return c.exhausted }

// Cause reports which budget ended the share, or CauseNone while active.
func (c *Counter) Cause() Cause {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cause
}

// Remaining returns the unspent budgets, for operator logging.
func (c *Counter) Remaining() (uses, failures uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remainingUses, c.remainingFailures
}

// Package session implements the debounced live-search state machine.
// Keystrokes restart a settle timer; only the timer belonging to the
// latest input may trigger a search, so a fast typist never fires a
// search for a stale prefix.
package session

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultSettleDelay is how long input must be quiet before a search runs.
const DefaultSettleDelay = 450 * time.Millisecond

// State is the lifecycle phase of the search session.
type State int

const (
	// StateIdle means the query is blank and nothing is scheduled.
	StateIdle State = iota

	// StatePending means input changed and the settle timer is running.
	StatePending

	// StateSettled means the latest query has been dispatched for search.
	StateSettled
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Timer identifies one scheduled settle timer. The token ties a timer
// expiry back to the input edit that scheduled it.
type Timer struct {
	Token uuid.UUID
	Delay time.Duration
}

// Controller tracks the current query and which settle timer, if any, is
// allowed to fire a search. It is not safe for concurrent use; in the TUI
// all calls happen on the Bubbletea update loop.
type Controller struct {
	state State
	query string
	token uuid.UUID
	delay time.Duration
}

// NewController creates a controller. A non-positive delay uses
// DefaultSettleDelay.
func NewController(delay time.Duration) *Controller {
	if delay <= 0 {
		delay = DefaultSettleDelay
	}
	return &Controller{delay: delay}
}

// Input records an edited query and schedules a fresh settle timer,
// invalidating any timer already running. The returned ok is false when
// the query is blank; the session then goes idle and nothing should be
// scheduled.
func (c *Controller) Input(query string) (Timer, bool) {
	if strings.TrimSpace(query) == "" {
		c.Clear()
		return Timer{}, false
	}

	c.state = StatePending
	c.query = query
	c.token = uuid.New()

	return Timer{Token: c.token, Delay: c.delay}, true
}

// Fire handles a settle timer expiry. It returns the query to search for,
// and ok=false when the token is stale: a newer edit superseded the timer
// or the session was cleared.
func (c *Controller) Fire(token uuid.UUID) (string, bool) {
	if c.state != StatePending || token != c.token {
		return "", false
	}

	c.state = StateSettled
	return c.query, true
}

// Clear resets the session to idle, invalidating any pending timer.
func (c *Controller) Clear() {
	c.state = StateIdle
	c.query = ""
	c.token = uuid.Nil
}

// State returns the current lifecycle phase.
func (c *Controller) State() State {
	return c.state
}

// Query returns the latest recorded query.
func (c *Controller) Query() string {
	return c.query
}

// Delay returns the configured settle delay.
func (c *Controller) Delay() time.Duration {
	return c.delay
}

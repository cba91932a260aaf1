package playback

import (
	"sync"
	"time"

	"github.com/kataras/golog"
)

// DefaultSpeed is the auto-advance interval used when none is configured.
const DefaultSpeed = 500 * time.Millisecond

// MinSpeed is the smallest interval SetSpeed accepts; shorter values are raised to it.
const MinSpeed = time.Millisecond

// State is the observable playback state.
type State struct {
	Index   int           `json:"index"`
	Length  int           `json:"length"`
	Playing bool          `json:"playing"`
	Speed   time.Duration `json:"speed"`
}

// Listener observes every transition.
type Listener func(State)

// Controller steps through a trace of a given length, either by hand or on
// a timer. At most one auto-advance task is outstanding at any time: every
// transition bumps a generation counter and stops the pending timer, and a
// callback that fires for an older generation does nothing.
//
// Controller is safe for concurrent use. Listeners run after the internal
// lock is released, on the goroutine that caused the transition.
type Controller struct {
	mu        sync.Mutex
	length    int
	index     int
	playing   bool
	speed     time.Duration
	gen       uint64
	timer     Timer
	sched     Scheduler
	get       func() int
	set       func(int)
	listeners []Listener
	log       *golog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithScheduler replaces the time.AfterFunc scheduler.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.sched = s
		}
	}
}

// WithSpeed sets the initial auto-advance interval.
func WithSpeed(d time.Duration) Option {
	return func(c *Controller) { c.speed = clampSpeed(d) }
}

// WithExternalIndex makes the controller read and write its index through
// get and set instead of owning it. The caller's index must stay within
// the loaded length; the controller clamps every value it writes.
func WithExternalIndex(get func() int, set func(int)) Option {
	return func(c *Controller) {
		if get != nil && set != nil {
			c.get, c.set = get, set
		}
	}
}

// WithLogger enables debug logging of transitions.
func WithLogger(l *golog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// New returns an Idle controller at index 0 over a trace of the given length.
func New(length int, opts ...Option) *Controller {
	c := &Controller{
		length: max(length, 0),
		speed:  DefaultSpeed,
		sched:  RealScheduler{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.setIndex(0)

	return c
}

// OnChange registers l to receive the state after every transition.
func (c *Controller) OnChange(l Listener) {
	if l == nil {
		return
	}
	c.mu.Lock()
	c.listeners = append(c.listeners, l)
	c.mu.Unlock()
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshot()
}

// Play starts auto-advance. It is a no-op when already playing, when the
// trace is empty, or at the last index.
func (c *Controller) Play() {
	c.transition("play", func() bool {
		if c.playing || c.length == 0 || c.getIndex() >= c.length-1 {
			return false
		}
		c.cancel()
		c.playing = true
		c.schedule()
		return true
	})
}

// Pause stops auto-advance and keeps the index.
func (c *Controller) Pause() {
	c.transition("pause", func() bool {
		if !c.playing {
			return false
		}
		c.cancel()
		c.playing = false
		return true
	})
}

// Toggle pauses when playing and plays otherwise.
func (c *Controller) Toggle() {
	if c.State().Playing {
		c.Pause()
		return
	}
	c.Play()
}

// Next moves one step forward, clamped to the last index, and stops playback.
func (c *Controller) Next() {
	c.transition("next", func() bool {
		return c.moveTo(c.getIndex() + 1)
	})
}

// Prev moves one step back, clamped to 0, and stops playback.
func (c *Controller) Prev() {
	c.transition("prev", func() bool {
		return c.moveTo(c.getIndex() - 1)
	})
}

// Seek jumps to i, clamped to the valid range, and stops playback.
func (c *Controller) Seek(i int) {
	c.transition("seek", func() bool {
		return c.moveTo(i)
	})
}

// Reset returns to index 0 and stops playback.
func (c *Controller) Reset() {
	c.transition("reset", func() bool {
		return c.moveTo(0)
	})
}

// SetSpeed changes the auto-advance interval. While playing, the pending
// task is replaced by one at the new interval.
func (c *Controller) SetSpeed(d time.Duration) {
	c.transition("speed", func() bool {
		d = clampSpeed(d)
		if d == c.speed {
			return false
		}
		c.speed = d
		if c.playing {
			c.cancel()
			c.schedule()
		}
		return true
	})
}

// Load switches to a trace of a new length: index 0, Idle, pending task cancelled.
func (c *Controller) Load(length int) {
	c.transition("load", func() bool {
		c.cancel()
		c.length = max(length, 0)
		c.playing = false
		c.setIndex(0)
		return true
	})
}

// Stop cancels any pending task and detaches every listener without
// notifying them. The controller stays usable and can be played again.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancel()
	c.playing = false
	c.listeners = nil
}

// tick is the auto-advance callback for generation g.
func (c *Controller) tick(g uint64) {
	c.transition("tick", func() bool {
		if g != c.gen || !c.playing {
			return false
		}
		c.cancel()
		next := min(c.getIndex()+1, c.length-1)
		c.setIndex(next)
		if next >= c.length-1 {
			c.playing = false
			return true
		}
		c.schedule()
		return true
	})
}

// transition runs fn under the lock and, when fn reports a change, notifies
// listeners after unlocking.
func (c *Controller) transition(op string, fn func() bool) {
	c.mu.Lock()
	changed := fn()
	st := c.snapshot()
	ls := append([]Listener(nil), c.listeners...)
	c.mu.Unlock()

	if !changed {
		return
	}
	if c.log != nil {
		c.log.Debugf("playback: %s index=%d/%d playing=%v speed=%s", op, st.Index, st.Length, st.Playing, st.Speed)
	}
	for _, l := range ls {
		l(st)
	}
}

// moveTo clamps i, writes it, and forces Idle.
func (c *Controller) moveTo(i int) bool {
	i = c.clamp(i)
	changed := c.playing || i != c.getIndex()
	c.cancel()
	c.playing = false
	c.setIndex(i)

	return changed
}

func (c *Controller) cancel() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) schedule() {
	g := c.gen
	c.timer = c.sched.AfterFunc(c.speed, func() { c.tick(g) })
}

func (c *Controller) snapshot() State {
	return State{Index: c.getIndex(), Length: c.length, Playing: c.playing, Speed: c.speed}
}

func (c *Controller) clamp(i int) int {
	if c.length == 0 || i < 0 {
		return 0
	}
	if i > c.length-1 {
		return c.length - 1
	}

	return i
}

func (c *Controller) getIndex() int {
	if c.get != nil {
		return c.get()
	}

	return c.index
}

func (c *Controller) setIndex(i int) {
	if c.set != nil {
		c.set(i)
		return
	}
	c.index = i
}

func clampSpeed(d time.Duration) time.Duration {
	if d < MinSpeed {
		return MinSpeed
	}

	return d
}

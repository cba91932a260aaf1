// Package compare plays two traces side by side on one shared clock.
//
// A Pair owns a single shared index over [0, max(len(A), len(B))-1] and one
// playback.Controller in external-index mode that advances it. Each side
// shows the step at min(shared, len-1): a shorter trace holds its final
// step while the longer one keeps going.
package compare

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/lvtrace/playback"
	"github.com/katalvlaran/lvtrace/trace"
)

// ErrEmptySide is returned when either trace has no steps.
var ErrEmptySide = errors.New("compare: both traces must be non-empty")

// Frame is what a side-by-side view draws for one shared index.
type Frame struct {
	Index      int        `json:"index"`
	Length     int        `json:"length"`
	LeftIndex  int        `json:"leftIndex"`
	RightIndex int        `json:"rightIndex"`
	LeftDone   bool       `json:"leftDone"`
	RightDone  bool       `json:"rightDone"`
	Left       trace.Step `json:"left"`
	Right      trace.Step `json:"right"`
}

// FrameAt pairs a and b at shared index i, clamped to the longer trace.
func FrameAt(a, b trace.Trace, i int) (Frame, error) {
	if len(a) == 0 || len(b) == 0 {
		return Frame{}, ErrEmptySide
	}
	n := max(len(a), len(b))
	i = min(max(i, 0), n-1)
	li, ri := min(i, len(a)-1), min(i, len(b)-1)

	return Frame{
		Index:      i,
		Length:     n,
		LeftIndex:  li,
		RightIndex: ri,
		LeftDone:   li == len(a)-1,
		RightDone:  ri == len(b)-1,
		Left:       a[li],
		Right:      b[ri],
	}, nil
}

// Pair synchronizes two traces.
type Pair struct {
	left, right atomic.Pointer[trace.Trace]
	shared      atomic.Int64
	ctrl        *playback.Controller
}

// New pairs a and b. opts configure the underlying controller; the
// external index option is always set by the Pair itself.
func New(a, b trace.Trace, opts ...playback.Option) (*Pair, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, fmt.Errorf("new pair: %w", ErrEmptySide)
	}
	p := &Pair{}
	p.left.Store(&a)
	p.right.Store(&b)
	opts = append(opts, playback.WithExternalIndex(
		func() int { return int(p.shared.Load()) },
		func(i int) { p.shared.Store(int64(i)) },
	))
	p.ctrl = playback.New(max(len(a), len(b)), opts...)

	return p, nil
}

// Controller exposes the shared controller, for OnChange subscriptions.
func (p *Pair) Controller() *playback.Controller { return p.ctrl }

// Len is the length of the longer trace.
func (p *Pair) Len() int { return max(len(*p.left.Load()), len(*p.right.Load())) }

// Index is the shared index.
func (p *Pair) Index() int { return int(p.shared.Load()) }

// Current returns both steps at the shared index.
func (p *Pair) Current() Frame {
	f, _ := FrameAt(*p.left.Load(), *p.right.Load(), p.Index())

	return f
}

// Load replaces both traces and rewinds to index 0, Idle.
func (p *Pair) Load(a, b trace.Trace) error {
	if len(a) == 0 || len(b) == 0 {
		return fmt.Errorf("load pair: %w", ErrEmptySide)
	}
	p.left.Store(&a)
	p.right.Store(&b)
	p.ctrl.Load(max(len(a), len(b)))

	return nil
}

// Play starts the shared clock.
func (p *Pair) Play() { p.ctrl.Play() }

// Pause stops the shared clock.
func (p *Pair) Pause() { p.ctrl.Pause() }

// Next advances both sides one shared step.
func (p *Pair) Next() { p.ctrl.Next() }

// Prev moves both sides one shared step back.
func (p *Pair) Prev() { p.ctrl.Prev() }

// Seek jumps both sides to shared index i.
func (p *Pair) Seek(i int) { p.ctrl.Seek(i) }

// Reset rewinds both sides.
func (p *Pair) Reset() { p.ctrl.Reset() }

// SetSpeed changes the shared auto-advance interval.
func (p *Pair) SetSpeed(d time.Duration) { p.ctrl.SetSpeed(d) }

// State reports the shared playback state.
func (p *Pair) State() playback.State { return p.ctrl.State() }

// Package playback steps through a trace by hand or on a timer.
//
// A Controller is either Idle at some index or Playing. Play schedules one
// auto-advance task through a Scheduler; each tick moves one step forward
// and schedules the next, until the last index where playback stops by
// itself. Next, Prev, Seek and Reset clamp the index and force Idle. Load
// switches to a trace of another length.
//
// Production code uses RealScheduler (time.AfterFunc); tests drive a
// ManualClock with Advance.
//
// Example:
//
//	c := playback.New(len(tr), playback.WithSpeed(200*time.Millisecond))
//	c.OnChange(func(s playback.State) { draw(tr.At(s.Index)) })
//	c.Play()
package playback

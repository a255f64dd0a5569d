// Package timer provides a millisecond alarm timer driven by a Clock.
package timer

import "time"

// Timer records a reference timestamp and an optional alarm.
type Timer struct {
	clock      Clock
	duration   time.Duration
	stamp      time.Time
	alarmStamp time.Time
}

// New creates a timer with its reference timestamp set to now.
// A nil clock uses SystemClock.
func New(clock Clock) *Timer {
	if clock == nil {
		clock = SystemClock{}
	}
	t := &Timer{clock: clock}
	t.Set()
	t.alarmStamp = t.stamp
	return t
}

// Set records the current time as the reference timestamp.
func (t *Timer) Set() {
	t.stamp = t.clock.Now()
}

// SetAlarm sets the reference timestamp and an alarm d in the future.
func (t *Timer) SetAlarm(d time.Duration) {
	t.duration = d
	t.stamp = t.clock.Now()
	t.alarmStamp = t.stamp.Add(d)
}

// ResetAlarm re-arms the alarm with the previously configured duration.
func (t *Timer) ResetAlarm() {
	t.SetAlarm(t.duration)
}

// Alarm reports whether the alarm time has been reached.
func (t *Timer) Alarm() bool {
	return !t.clock.Now().Before(t.alarmStamp)
}

// Elapsed returns the time since the reference timestamp.
func (t *Timer) Elapsed() time.Duration {
	return t.clock.Now().Sub(t.stamp)
}

// Duration returns the configured alarm duration.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// ElapsedNormalized returns Elapsed divided by the alarm duration.
// The result is not clamped and exceeds 1 once the alarm has fired.
// With a zero duration it returns 1.
func (t *Timer) ElapsedNormalized() float64 {
	if t.duration <= 0 {
		return 1
	}
	return float64(t.Elapsed()) / float64(t.duration)
}

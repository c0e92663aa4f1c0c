package spindle_test

import (
	"testing"

	"github.com/spindlework/spindle"
	"github.com/stretchr/testify/assert"
)

// should count exactly the still-subscribed dependents of a cell
func TestDependentCount(t *testing.T) {
	tc := spindle.NewTrackingContext(nil)
	c := spindle.NewCell(tc, 1)

	e1 := spindle.NewEffect(tc, func() error {
		c.Value()
		return nil
	})
	e2 := spindle.NewEffect(tc, func() error {
		c.Value()
		return nil
	})
	assert.Equal(t, 2, tc.DependentCount(c.ID()))

	e1.Stop()
	assert.Equal(t, 1, tc.DependentCount(c.ID()))

	tc.DisposeSubscriber(e2.ID())
	assert.Equal(t, 0, tc.DependentCount(c.ID()))
}

// should tolerate disposing the same subscriber twice
func TestDisposeIdempotent(t *testing.T) {
	tc := spindle.NewTrackingContext(nil)
	c := spindle.NewCell(tc, 1)

	e := spindle.NewEffect(tc, func() error {
		c.Value()
		return nil
	})

	tc.DisposeSubscriber(e.ID())
	tc.DisposeSubscriber(e.ID())
	assert.Equal(t, 0, tc.DependentCount(c.ID()))
}

// should pause tracking
func TestShouldPauseTracking(t *testing.T) {
	tc := spindle.NewTrackingContext(nil)

	src := spindle.NewCell(tc, 0)
	c := spindle.NewDerived(tc, func() int {
		tc.PauseTracking()
		value := src.Value()
		tc.ResumeTracking()
		return value
	})
	assert.Equal(t, 0, c.Value())

	src.SetValue(1)
	assert.Equal(t, 0, c.Value())
}

// should skip tracking inside Untracked
func TestUntracked(t *testing.T) {
	tc := spindle.NewTrackingContext(nil)
	a := spindle.NewCell(tc, 1)
	b := spindle.NewCell(tc, 2)

	runs := 0
	spindle.NewEffect(tc, func() error {
		a.Value()
		tc.Untracked(func() {
			b.Value()
		})
		runs++
		return nil
	})

	b.SetValue(5)
	assert.Equal(t, 1, runs)
	a.SetValue(3)
	assert.Equal(t, 2, runs)
}

// should allow a notified subscriber to write other cells
func TestNotificationCascade(t *testing.T) {
	tc := spindle.NewTrackingContext(nil)
	a := spindle.NewCell(tc, 1)
	b := spindle.NewCell(tc, 0)

	spindle.NewEffect(tc, func() error {
		b.SetValue(a.Value() * 2)
		return nil
	})

	got := 0
	spindle.NewEffect(tc, func() error {
		got = b.Value()
		return nil
	})
	assert.Equal(t, 2, got)

	a.SetValue(5)
	assert.Equal(t, 10, got)
}

// should allow a manual subscriber to read the cell it watches
func TestSubscriberReentrantRead(t *testing.T) {
	tc := spindle.NewTrackingContext(nil)
	c := spindle.NewCell(tc, 1)

	seen := 0
	c.Subscribe(func() {
		seen = c.Value()
	})
	c.SetValue(7)
	assert.Equal(t, 7, seen)
}

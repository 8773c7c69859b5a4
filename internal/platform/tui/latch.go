package tui

import (
	"github.com/vovakirdan/float-runner/internal/core"
	"github.com/vovakirdan/float-runner/internal/runner"
)

// floatLatch turns key repeat events into held float inputs. Terminals send
// no key release, so each event keeps the input asserted for a fixed number
// of ticks.
type floatLatch struct {
	hold      int
	primary   int
	secondary int
}

func newFloatLatch(holdTicks int) floatLatch {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return floatLatch{hold: holdTicks}
}

// Press refreshes the latch for a float action.
func (l *floatLatch) Press(action core.Action) {
	switch action {
	case core.ActionFloat:
		l.primary = l.hold
	case core.ActionFloatAlt:
		l.secondary = l.hold
	}
}

// Sample returns the input for this tick and counts the hold window down.
func (l *floatLatch) Sample() runner.InputState {
	in := runner.InputState{
		FloatPrimary:   l.primary > 0,
		FloatSecondary: l.secondary > 0,
	}
	if l.primary > 0 {
		l.primary--
	}
	if l.secondary > 0 {
		l.secondary--
	}
	return in
}

// Clear releases both inputs.
func (l *floatLatch) Clear() {
	l.primary = 0
	l.secondary = 0
}

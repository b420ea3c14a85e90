// Package timing provides frame durations for hosts that drive the controller.
package timing

import "time"

// FixedStep reports the same duration every frame.
type FixedStep struct {
	Step time.Duration
}

// FromTPS returns a FixedStep for the given ticks per second. A non-positive
// rate yields a zero step.
func FromTPS(tps int) FixedStep {
	if tps <= 0 {
		return FixedStep{}
	}
	return FixedStep{Step: time.Second / time.Duration(tps)}
}

func (f FixedStep) DeltaTime() time.Duration {
	return f.Step
}

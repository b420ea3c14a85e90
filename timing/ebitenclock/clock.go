// Package ebitenclock reads frame timing from a running ebiten game loop.
package ebitenclock

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Clock reports one tick of the ebiten game loop. When ticks are synced to
// the frame rate it falls back to the measured FPS.
type Clock struct{}

func (Clock) DeltaTime() time.Duration {
	if tps := ebiten.TPS(); tps > 0 {
		return time.Second / time.Duration(tps)
	}
	if fps := ebiten.ActualFPS(); fps > 0 {
		return time.Duration(float64(time.Second) / fps)
	}
	return 0
}

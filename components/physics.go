package components

import (
	"github.com/automoto/tilemap-controller/controller"
	"github.com/automoto/tilemap-controller/shared/gamemath"
	"github.com/yohamta/donburi"
)

// MotionData is a character's requested speed and the outcome of its last
// movement step.
type MotionData struct {
	Speed    gamemath.Vec2 // Units per second
	Velocity gamemath.Vec2 // Realized displacement of the last step
	Flags    controller.CollisionFlags
	Grounded bool
	Stuck    bool // Last step could not escape an obstacle
}

var Motion = donburi.NewComponentType[MotionData]()

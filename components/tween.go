package components

import (
	"github.com/automoto/tilemap-controller/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData moves an obstacle along a fixed direction. The sequence yields
// the distance from Start.
type TweenData struct {
	Sequence  *gween.Sequence
	Start     gamemath.Vec2
	Direction gamemath.Vec2
}

var Tween = donburi.NewComponentType[TweenData]()

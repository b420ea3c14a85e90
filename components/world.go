package components

import (
	"github.com/automoto/tilemap-controller/controller"
	"github.com/automoto/tilemap-controller/world"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// WorldData is the query world singleton and the logger systems write to.
type WorldData struct {
	*world.World
	Logger *zap.Logger
}

var World = donburi.NewComponentType[WorldData]()

// ClockData holds the frame timer shared by every system.
type ClockData struct {
	controller.FrameTimer
}

var Clock = donburi.NewComponentType[ClockData]()

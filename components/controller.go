package components

import (
	"github.com/automoto/tilemap-controller/controller"
	"github.com/automoto/tilemap-controller/world"
	"github.com/yohamta/donburi"
)

type ControllerData struct {
	*controller.Controller
	Actor *world.Actor
}

var Controller = donburi.NewComponentType[ControllerData]()

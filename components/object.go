package components

import (
	"github.com/automoto/tilemap-controller/world"
	"github.com/yohamta/donburi"
)

// ObstacleData links an entity to its body in the query world.
type ObstacleData struct {
	*world.Body
}

var Obstacle = donburi.NewComponentType[ObstacleData]()

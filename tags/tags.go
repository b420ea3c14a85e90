package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Obstacle  = donburi.NewTag().SetName("Obstacle")
	Mover     = donburi.NewTag().SetName("Mover")
)

// Resolv tags for the query index
const (
	ResolvBody  = "body"
	ResolvProbe = "probe"
)

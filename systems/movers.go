package systems

import (
	"github.com/automoto/tilemap-controller/components"
	"github.com/automoto/tilemap-controller/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovers advances every moving obstacle by one frame of the clock.
// Without a clock entity nothing moves.
func UpdateMovers(ecs *ecs.ECS) {
	clock, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	dt := float32(components.Clock.Get(clock).DeltaTime().Seconds())

	tags.Mover.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		obstacle := components.Obstacle.Get(e)

		distance, _, done := tw.Sequence.Update(dt)
		if done {
			tw.Sequence.Reset()
		}
		obstacle.SetOrigin(tw.Start.Add(tw.Direction.Scale(float64(distance))))
	})
}

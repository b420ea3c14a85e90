package archetypes

import (
	"github.com/automoto/tilemap-controller/components"
	"github.com/automoto/tilemap-controller/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const defaultLayer ecs.LayerID = 0

var (
	Character = newArchetype(
		tags.Character,
		components.Controller,
		components.Motion,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
	)
	Mover = newArchetype(
		tags.Obstacle,
		tags.Mover,
		components.Obstacle,
		components.Tween,
	)
	World = newArchetype(
		components.World,
	)
	Clock = newArchetype(
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		defaultLayer,
		append(a.components, cs...)...,
	))
	return e
}

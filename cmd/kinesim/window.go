package main

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/automoto/tilemap-controller/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	windowWidth  = 320
	windowHeight = 120
)

// viewer steps the scene once per ebiten tick and prints its status.
type viewer struct {
	scene     *scenes.SimulationScene
	remaining int
}

func (v *viewer) Update() error {
	if v.remaining <= 0 {
		return ebiten.Termination
	}
	v.scene.Update()
	v.remaining--
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	st := v.scene.Status()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"step %d\npos  (%.3f, %.3f)\nvel  (%.3f, %.3f)\nflags %s\nstuck %t\nTPS %0.1f",
		st.Step, st.Position.X, st.Position.Y, st.Velocity.X, st.Velocity.Y, st.Flags, st.Stuck, ebiten.ActualTPS()))
}

func (v *viewer) Layout(width, height int) (int, int) {
	return windowWidth, windowHeight
}

func runWindow(scene *scenes.SimulationScene, steps int) error {
	ebiten.SetWindowSize(windowWidth*2, windowHeight*2)
	ebiten.SetWindowTitle("kinesim")

	err := ebiten.RunGame(&viewer{scene: scene, remaining: steps})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

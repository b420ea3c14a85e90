// Command kinesim runs a character through a Tiled level at a constant speed
// and logs where the controller lets it go.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/automoto/tilemap-controller/assets"
	"github.com/automoto/tilemap-controller/config"
	"github.com/automoto/tilemap-controller/controller"
	"github.com/automoto/tilemap-controller/logging"
	"github.com/automoto/tilemap-controller/scenes"
	"github.com/automoto/tilemap-controller/shared/leveldata"
	"github.com/automoto/tilemap-controller/timing"
	"github.com/automoto/tilemap-controller/timing/ebitenclock"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "YAML config overlay (empty = built-in defaults)")
	levelPath := flag.String("level", "", "Tiled .tmx level to load (empty = embedded level)")
	demo := flag.String("demo", "corridor", "Embedded level to run when -level is empty")
	steps := flag.Int("steps", 0, "Steps to run (0 = simulation.steps from config)")
	window := flag.Bool("window", false, "Run in an ebiten window, timed by the game loop")
	flag.Parse()

	if err := run(*configPath, *levelPath, *demo, *steps, *window); err != nil {
		fmt.Fprintf(os.Stderr, "kinesim: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, levelPath, demo string, steps int, window bool) error {
	if configPath != "" {
		if err := config.LoadFile(configPath); err != nil {
			return err
		}
	}
	if steps <= 0 {
		steps = config.Simulation.Steps
	}

	logger, err := logging.New(config.Log)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	var level *leveldata.Level
	if levelPath != "" {
		level, err = leveldata.LoadLevel(os.DirFS(filepath.Dir(levelPath)), filepath.Base(levelPath), assets.LevelOptions())
	} else {
		level, err = assets.LoadLevel(demo)
	}
	if err != nil {
		return err
	}
	logger.Info("level loaded",
		zap.String("level", level.Name),
		zap.Float64("width", level.Width),
		zap.Float64("height", level.Height))

	var timer controller.FrameTimer = timing.FixedStep{Step: config.Simulation.FixedTimestep}
	if window {
		timer = ebitenclock.Clock{}
	}

	scene, err := scenes.NewSimulationScene(level, timer, logger)
	if err != nil {
		return err
	}

	if window {
		return runWindow(scene, steps)
	}

	for range steps {
		scene.Update()
	}
	st := scene.Status()
	logger.Info("simulation finished",
		zap.Int("steps", st.Step),
		zap.Any("position", st.Position),
		zap.Any("velocity", st.Velocity),
		zap.Stringer("flags", st.Flags),
		zap.Bool("stuck", st.Stuck))
	return nil
}

package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"

	"rcvis/internal/circuit"
	"rcvis/internal/config"
	"rcvis/internal/game"
	"rcvis/internal/logger"
)

func main() {
	demoMode := flag.Bool("demo", false, "cycle through preset circuit configurations on startup")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(cfg.LogLevel)

	st := circuit.New()
	applyStartup(st, cfg, log)

	var click *game.Clicker
	if cfg.SoundEnabled {
		click, err = game.NewClicker()
		if err != nil {
			log.Warnw("audio unavailable, toggle sound disabled", "err", err)
		}
	}

	g := game.New(st, cfg, log, *demoMode, click)

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("RC Circuit Visualizer")

	log.Infow("starting",
		"window", cfg.WindowWidth,
		"demo", *demoMode,
		"tau", circuit.FormatSeconds(st.TimeConstant()),
	)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalw("game loop failed", "err", err)
	}
}

// applyStartup moves the circuit from its baseline to the configured startup
// values. An out-of-range value is reported and the baseline kept, so the
// window always opens with a valid circuit.
func applyStartup(st *circuit.State, cfg config.Config, log *logger.Logger) {
	set := func(name string, v float64, fn func(float64) error) {
		if err := fn(v); err != nil {
			log.Warnw("startup value out of range, keeping default", "param", name, "value", v, "err", err)
		}
	}
	set("emf", cfg.StartEMF, st.SetEMF)
	set("resistance", cfg.StartResistance, st.SetResistance)
	set("capacitance", cfg.StartCapacitance, st.SetCapacitance)
	st.SetSwitch(cfg.StartSwitchClosed)
}

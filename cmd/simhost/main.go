// Command simhost runs the simulation headless: it seeds a named starting
// layout (see scenarios.go), drives the world for a fixed number of ticks,
// and prints a summary. It has no rendering, audio, or input collaborators
// — those are a separate host's concern; simhost only exercises
// World.Tick the way a dedicated server or an automated test harness
// would.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/brackfield/beltworks/engine/commands"
	"github.com/brackfield/beltworks/engine/config"
	"github.com/brackfield/beltworks/engine/terrain"
	"github.com/brackfield/beltworks/engine/world"
)

func main() {
	ticks := flag.Int("ticks", 600, "number of fixed ticks to simulate")
	seed := flag.Int64("seed", 1, "terrain generation seed")
	logPath := flag.String("record", "", "path to write a replayable command log")
	verbose := flag.Bool("v", false, "log every tick's errors, not just the summary")
	scenarioName := flag.String("scenario", "default", "starting layout: default, transport_bench, electric_bench")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	t := terrain.New(terrain.Params{
		Unlimited:           true,
		Seed:                *seed,
		WaterNoiseThreshold: cfg.Terrain.WaterNoiseThreshold,
		ResourceAmount:      cfg.Terrain.ResourceAmount,
		NoiseScale:          cfg.Terrain.NoiseScale,
		NoiseThreshold:      cfg.Terrain.NoiseThreshold,
	})
	w := world.New(cfg, t, logger)

	if *logPath != "" {
		rec, err := commands.NewLogRecorder(*logPath)
		if err != nil {
			logger.Error("open recorder", "error", err)
			os.Exit(1)
		}
		defer rec.Close()
		w.Recorder(rec)
	}

	seedFn, ok := scenarios[*scenarioName]
	if !ok {
		logger.Error("unknown scenario", "name", *scenarioName)
		os.Exit(1)
	}
	seedFn(w)

	loop := world.NewLoop(w, 20)
	loop.Play()
	start := time.Now()
	for i := 0; i < *ticks; i++ {
		w.Tick(1.0 / loop.TickRate)
		if errs := w.Errors(); len(errs) > 0 {
			for _, err := range errs {
				logger.Debug("tick error","tick", w.TickCount(), "error", err)
			}
		}
	}
	elapsed := time.Since(start)

	logger.Info("simulation complete",
		"ticks", w.TickCount(),
		"sim_seconds", w.SimTime(),
		"wall_time", elapsed,
		"research", w.ResearchQuery(),
	)
}

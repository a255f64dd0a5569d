package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/apputils/internal/application/game"
	"github.com/younwookim/apputils/internal/application/manager"
	"github.com/younwookim/apputils/internal/application/replay"
	"github.com/younwookim/apputils/internal/application/scene"
	"github.com/younwookim/apputils/internal/application/scene/demo"
	"github.com/younwookim/apputils/internal/application/system"
	"github.com/younwookim/apputils/internal/domain/timer"
	"github.com/younwookim/apputils/internal/infrastructure/config"
	"github.com/younwookim/apputils/internal/infrastructure/watch"
)

func main() {
	configFlag := flag.String("config", "", "Config file (.json, .yaml or .toml); defaults to the embedded config")
	verbose := flag.Bool("v", false, "Verbose logging")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back input from a recorded file")
	seedFlag := flag.Int64("seed", 0, "Random seed for the Boxes scene (0 uses the time)")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(logger, *configFlag, *recordFlag, *replayFlag, *seedFlag); err != nil {
		logger.Error("exiting", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, configPath, recordFile, replayFile string, seed int64) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	var input system.InputSource = system.NewInputSystem()
	if replayFile != "" {
		data, err := replay.LoadReplay(replayFile)
		if err != nil {
			return err
		}
		seed = data.Seed
		if data.Scene != "" {
			cfg.Scenes.Start = data.Scene
		}
		input = replay.NewReplayer(*data)
		logger.Info("replaying", "file", replayFile, "frames", len(data.Frames), "seed", seed)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var recorder *replay.Recorder
	if recordFile != "" {
		recorder = replay.NewRecorder(seed, cfg.Scenes.Start)
		input = replay.NewRecording(input, recorder)
		logger.Info("recording enabled", "file", recordFile, "seed", seed)
	}

	m, err := newManager(cfg, logger, seed)
	if err != nil {
		return err
	}

	opts := game.Options{
		Config:  cfg,
		Manager: m,
		Input:   input,
		Logger:  logger,
	}
	if cfg.Warp.Watch {
		w, err := watch.NewFile(cfg.Warp.SettingsFile, logger)
		if err != nil {
			return err
		}
		defer func() { _ = w.Close() }()
		opts.Reload = w.Changes()
	}

	g := game.New(opts)
	if cfg.Warp.Enabled {
		if err := g.LoadWarpSettings(); err != nil {
			logger.Info("using default warp", "reason", err)
		}
	}
	if !g.Start() {
		logger.Warn("start scene not found", "scene", cfg.Scenes.Start)
	}

	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)

	runErr := ebiten.RunGame(g)
	if errors.Is(runErr, ebiten.Termination) {
		runErr = nil
	}

	if recorder != nil {
		if err := recorder.Save(recordFile); err != nil {
			logger.Error("failed to save recording", "error", err)
		} else {
			logger.Info("recording saved", "file", recordFile, "frames", recorder.FrameCount())
		}
	}
	return runErr
}

func loadConfig(path string) (*config.AppConfig, error) {
	if path == "" {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, fmt.Errorf("failed to get config subfs: %w", err)
		}
		return config.NewFSLoader(fsys, "configs").Load(config.DefaultFile)
	}
	return config.NewLoader(filepath.Dir(path)).Load(filepath.Base(path))
}

func newManager(cfg *config.AppConfig, logger *slog.Logger, seed int64) (*manager.Manager, error) {
	ease, ok := scene.EaseByName(cfg.Fade.Ease)
	if !ok {
		logger.Warn("unknown ease, using linear", "ease", cfg.Fade.Ease)
	}

	opts := demo.Options{
		Clock:   timer.SystemClock{},
		Logger:  logger,
		Width:   float64(cfg.Display.ScreenWidth),
		Height:  float64(cfg.Display.ScreenHeight),
		FadeIn:  cfg.Fade.In(),
		FadeOut: cfg.Fade.Out(),
		Ease:    ease,
	}

	m := manager.New(opts.Clock, logger)
	m.SetMinChangeInterval(cfg.Scenes.MinChangeInterval())
	m.SetOverlap(cfg.Scenes.Overlap)
	for _, s := range []scene.Scene{
		demo.NewBoxes(opts, cfg.Scenes.BoxesDuration(), seed),
		demo.NewLines(opts),
	} {
		if !m.Add(s) {
			return nil, fmt.Errorf("could not add scene %s", s.Name())
		}
	}
	return m, nil
}

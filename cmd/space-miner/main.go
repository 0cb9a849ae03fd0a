package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-miner/audio"
	"github.com/lixenwraith/space-miner/config"
	"github.com/lixenwraith/space-miner/constants"
	"github.com/lixenwraith/space-miner/engine"
	"github.com/lixenwraith/space-miner/events"
	"github.com/lixenwraith/space-miner/input"
	"github.com/lixenwraith/space-miner/network"
	"github.com/lixenwraith/space-miner/render"
	"github.com/lixenwraith/space-miner/storage"
	"github.com/lixenwraith/space-miner/systems"
)

// options are the command-line overrides applied on top of the config file
type options struct {
	configPath  string
	debug       bool
	seed        uint64
	seedSet     bool
	spectate    string
	noAudio     bool
	dbPath      string
	writeConfig bool
}

func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	opts := &options{}
	fs.StringVar(&opts.configPath, "config", config.DefaultPath(), "Path to the YAML config file")
	fs.BoolVar(&opts.debug, "debug", false, "Write debug log to logs/space-miner.log")
	fs.Uint64Var(&opts.seed, "seed", 0, "Simulation seed, 0 picks one from the clock")
	fs.StringVar(&opts.spectate, "spectate", "", "Serve the spectator feed on this address, e.g. 127.0.0.1:8765")
	fs.BoolVar(&opts.noAudio, "no-audio", false, "Disable sound effects")
	fs.StringVar(&opts.dbPath, "db", "", "Score database path, 'off' disables score storage")
	fs.BoolVar(&opts.writeConfig, "write-config", false, "Write a config file with every default and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seedSet = true
		}
	})
	return opts, nil
}

// apply overrides cfg with the flags the user actually passed
func (o *options) apply(cfg *config.Config) {
	if o.debug {
		cfg.Debug = true
	}
	if o.seedSet {
		cfg.Seed = o.seed
	}
	if o.spectate != "" {
		cfg.SpectateAddr = o.spectate
	}
	if o.noAudio {
		cfg.AudioEnabled = false
	}
	switch o.dbPath {
	case "":
	case "off":
		cfg.Storage.Enabled = false
	default:
		cfg.Storage.Enabled = true
		cfg.Storage.Path = o.dbPath
	}
}

func toLeaderboard(records []storage.RunRecord) []render.LeaderboardEntry {
	entries := make([]render.LeaderboardEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, render.LeaderboardEntry{
			Score:  rec.Score,
			Cargo:  rec.Cargo.Total(),
			Reason: rec.Reason.String(),
		})
	}
	return entries
}

func main() {
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if opts.writeConfig {
		if err := config.WriteDefaults(opts.configPath); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", opts.configPath)
		return
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	opts.apply(cfg)

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	state, err := run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// Screen is finalized, plain output is visible again
	if state != nil && state.RunID != "" {
		fmt.Printf("Final score: %d (%s)\n", state.Score, state.EndReason)
	}
}

// run owns the screen for the lifetime of the game and returns the last run's state
func run(cfg *config.Config) (*engine.GameState, error) {
	keys := input.DefaultKeyTable()
	if err := keys.ApplyOverrides(cfg.Keys); err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	// Goroutines started through engine.Go restore the terminal before dumping the stack
	engine.SetCrashHandler(func(any) { screen.Fini() })
	defer func() {
		if r := recover(); r != nil {
			engine.HandleCrash(r)
		}
	}()

	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbHUDText))
	screen.HideCursor()
	screen.Clear()

	ctx := engine.NewGameContext(cfg, nil)
	systems.RegisterAll(ctx)

	renderer := render.NewTerminalRenderer(screen, cfg.Field.Width, cfg.Field.Height)

	router := events.NewRouter[*engine.GameContext](ctx.Events)
	router.Register(eventLogger{})

	if cfg.AudioEnabled {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("[main] audio unavailable, continuing silently: %v", err)
		} else {
			defer sm.Cleanup()
			router.Register(audio.NewEventHandler(sm))
		}
	}

	if cfg.Storage.Enabled {
		repo, err := storage.OpenScoreRepository(cfg.Storage.Path)
		if err != nil {
			log.Printf("[main] score storage unavailable: %v", err)
		} else {
			defer repo.Close()
			recorder := storage.NewRecorder(repo, constants.LeaderboardSize, func(top []storage.RunRecord) {
				renderer.SetLeaderboard(toLeaderboard(top))
			})
			router.Register(recorder)

			loadCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			recorder.Refresh(loadCtx)
			cancel()
		}
	}

	runCtx, stop := context.WithCancel(context.Background())
	defer stop()

	var hub *network.Hub
	if cfg.SpectateAddr != "" {
		netCfg := network.DefaultConfig(cfg.SpectateAddr)
		hub = network.NewHub(netCfg)
		server := network.NewServer(netCfg, hub)
		engine.Go(func() { hub.Run(runCtx) })
		engine.Go(func() {
			if err := server.ListenAndServe(runCtx); err != nil {
				log.Printf("[main] spectator feed stopped: %v", err)
			}
		})
	}

	publish := func() {
		if hub != nil {
			hub.Publish(network.NewSnapshot(ctx))
		}
	}

	eventChan := make(chan tcell.Event, constants.InputChannelSize)
	engine.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-runCtx.Done():
				return
			}
		}
	})

	tickTicker := time.NewTicker(cfg.Timing.TickInterval)
	defer tickTicker.Stop()
	frameTicker := time.NewTicker(cfg.Timing.FrameInterval)
	defer frameTicker.Stop()

	renderer.RenderFrame(ctx)

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				keep := ctx.HandleIntent(keys.Resolve(ev))
				router.DispatchAll(ctx)
				publish()
				if !keep {
					log.Printf("[main] exit requested")
					return ctx.State, nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-tickTicker.C:
			if ctx.Tick() {
				router.DispatchAll(ctx)
				publish()
			}

		case <-frameTicker.C:
			if hub != nil {
				renderer.SetSpectators(hub.ClientCount())
			}
			renderer.RenderFrame(ctx)
		}
	}
}

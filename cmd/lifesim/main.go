// Command lifesim runs one life simulation behind the HTTP play API.
package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/talgya/lifesim/internal/api"
	"github.com/talgya/lifesim/internal/config"
	"github.com/talgya/lifesim/internal/sim"
	"github.com/talgya/lifesim/internal/telemetry"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var (
		worldPath = flag.String("world", "", "world YAML file (empty = built-in world)")
		dbPath    = flag.String("db", "data/telemetry.db", "telemetry database path")
		seed      = flag.Int64("seed", time.Now().UnixNano(), "random seed (fixed seed = reproducible run)")
		port      = flag.Int("port", 8080, "HTTP API port")
	)
	flag.Parse()

	world, err := loadWorld(*worldPath)
	if err != nil {
		slog.Error("failed to load world", "path", *worldPath, "error", err)
		os.Exit(1)
	}

	var recorder telemetry.Recorder = telemetry.Nop{}
	if *dbPath != "" {
		if err := os.MkdirAll(filepath.Dir(*dbPath), 0755); err != nil {
			slog.Warn("telemetry disabled", "error", err)
		} else if store, err := telemetry.OpenStore(*dbPath); err != nil {
			slog.Warn("telemetry disabled", "error", err)
		} else {
			defer store.Close()
			recorder = store
			slog.Info("telemetry opened", "path", *dbPath, "run", store.Run())
		}
	}

	s := sim.New(world, *seed, recorder)
	s.OnUpdate = func() {
		snap := s.Snapshot()
		slog.Debug("state updated",
			"date", snap.Date.Format(time.DateOnly),
			"age", snap.Age,
			"money", snap.Money,
			"pending", s.Notices.PendingCount(),
		)
	}

	server := &api.Server{
		Sim:      s,
		Port:     *port,
		AdminKey: os.Getenv("LIFESIM_ADMIN_KEY"),
	}
	server.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("received signal, shutting down", "signal", sig)
}

func loadWorld(path string) (*config.World, error) {
	if path == "" {
		slog.Info("using built-in world")
		return config.DefaultWorld(), nil
	}
	return config.Load(path)
}

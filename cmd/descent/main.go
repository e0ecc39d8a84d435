package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hollowmire/descent/internal/ai"
	"github.com/hollowmire/descent/internal/config"
	"github.com/hollowmire/descent/internal/data"
	"github.com/hollowmire/descent/internal/db"
	"github.com/hollowmire/descent/internal/game/combat"
	"github.com/hollowmire/descent/internal/game/loop"
)

const defaultConfigPath = "config/descent.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil && ctx.Err() == nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := defaultConfigPath
	if p := os.Getenv("DESCENT_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := parseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))
	ai.EnableDebugLogging(logLevel == slog.LevelDebug)

	pathID := os.Getenv("DESCENT_PATH")
	if pathID == "" {
		ids := data.PathIDs()
		pathID = ids[rand.IntN(len(ids))]
	}

	slog.Info("descent starting",
		"path", pathID,
		"scaling", cfg.ScalingMode,
		"rooms_per_floor", cfg.RoomsPerFloor,
		"final_floor", cfg.FinalFloor)

	session, err := combat.NewSession(cfg, pathID, combat.NewDebugController())
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}

	var repo *db.RunRepository
	if cfg.Database.Enabled {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()

		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		repo = db.NewRunRepository(database.Pool())
		slog.Info("run persistence enabled")
	}

	driver := newDriver(session)
	runID := newRunID()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		l := loop.New(cfg.TickIntervalMs, cfg.MaxCatchUpTicks, driver)
		err := l.Run(gctx)
		if err == nil || gctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tick loop: %w", err)
	})

	if repo != nil {
		g.Go(func() error {
			return autosave(gctx, repo, runID, pathID, driver)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if repo != nil {
		saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := saveRun(saveCtx, repo, runID, pathID, driver); err != nil {
			slog.Warn("final run save failed", "err", err)
		}
	}

	st := driver.session.State()
	slog.Info("run over",
		"victory", driver.session.Victory(),
		"floor", st.Floor,
		"room", st.Room,
		"level", st.Player.Level,
		"gold", st.Player.Gold)
	return nil
}

// autosave snapshots the run periodically until the run or context ends.
func autosave(ctx context.Context, repo *db.RunRepository, runID, pathID string, d *driver) error {
	interval := time.Duration(d.session.Cfg().AutosaveIntervalSec) * time.Second
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := saveRun(ctx, repo, runID, pathID, d); err != nil {
				slog.Warn("autosave failed", "err", err)
			}
			if d.Done() {
				return nil
			}
		}
	}
}

func saveRun(ctx context.Context, repo *db.RunRepository, runID, pathID string, d *driver) error {
	st, over, victory := d.Snapshot()
	return repo.SaveRun(ctx, db.RunRecord{
		ID:       runID,
		PathID:   pathID,
		Floor:    st.Floor,
		Room:     st.Room,
		Level:    st.Player.Level,
		Gold:     st.Player.Gold,
		Victory:  victory,
		Finished: over,
		State:    st,
	})
}

func newRunID() string {
	return fmt.Sprintf("%s-%04x", time.Now().UTC().Format("20060102T150405"), rand.Uint32N(0x10000))
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

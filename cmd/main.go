package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/baccarat-master/application"
	"github.com/luca-patrignani/baccarat-master/config"
	"github.com/luca-patrignani/baccarat-master/domain/baccarat"
	"github.com/luca-patrignani/baccarat-master/domain/shoe"
	"github.com/luca-patrignani/baccarat-master/ledger"
	"github.com/luca-patrignani/baccarat-master/storage/prefs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	ctx := context.Background()

	store, err := prefs.Open(cfg.PrefsPath)
	if err != nil {
		logger.Warn("preferences unavailable, running without persistence", "path", cfg.PrefsPath, "error", err)
	} else {
		defer store.Close()
	}
	p := loadPreferences(ctx, store, cfg.CardStyle, logger)

	printBanner()

	if !p.DisclaimerAccepted {
		accepted, err := showWelcome()
		if err != nil {
			logger.Error("welcome prompt failed", "error", err)
			os.Exit(1)
		}
		if !accepted {
			pterm.Info.Println("See you next time.")
			return
		}
		p.DisclaimerAccepted = true
		if store != nil {
			if err := store.SetBool(ctx, prefs.KeyDisclaimerAccepted, true); err != nil {
				logger.Warn("could not save disclaimer acceptance", "error", err)
			}
		}
	}

	s := &session{
		trainer: application.NewTrainer(newShoe(cfg, logger), ledger.NewRoadmap(cfg.HistorySize), logger),
		prefs:   p,
		store:   store,
		cfg:     cfg,
		logger:  logger,
	}
	if err := s.run(ctx); err != nil {
		logger.Error("trainer stopped", "error", err)
		os.Exit(1)
	}
	score := s.trainer.Score()
	pterm.Success.Printfln("Session over: %d correct, %d mistakes, %d hands.", score.Correct, score.Incorrect, score.HandsPlayed)
}

// newLogger builds a slog logger writing through the pterm logger at the given level.
func newLogger(level string) *slog.Logger {
	plogger := pterm.DefaultLogger.WithLevel(logLevel(level))
	return slog.New(pterm.NewSlogHandler(plogger))
}

func logLevel(level string) pterm.LogLevel {
	switch level {
	case "debug":
		return pterm.LogLevelDebug
	case "warn":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}

func newShoe(cfg config.Config, logger *slog.Logger) baccarat.Shoe {
	if cfg.UseSeededShoe() {
		s := shoe.NewSeeded(cfg.Seed)
		logger.Info("using seeded shoe", "seed", s.Seed())
		return s
	}
	return shoe.NewCrypto()
}

func loadPreferences(ctx context.Context, store *prefs.Store, defaultStyle string, logger *slog.Logger) prefs.Preferences {
	fallback := prefs.Preferences{CardStyle: defaultStyle}
	if store == nil {
		return fallback
	}
	p, err := store.Load(ctx, defaultStyle)
	if err != nil {
		logger.Warn("could not load preferences", "error", err)
		return fallback
	}
	if p.CardStyle != config.StyleModern && p.CardStyle != config.StyleClassic {
		p.CardStyle = defaultStyle
	}
	return p
}

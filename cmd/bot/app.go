package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-table/internal/config"
	"github.com/KirkDiggler/rpg-table/internal/confirm"
	"github.com/KirkDiggler/rpg-table/internal/engine/dice"
	"github.com/KirkDiggler/rpg-table/internal/handlers/chat"
	"github.com/KirkDiggler/rpg-table/internal/orchestrators/character"
	diceorch "github.com/KirkDiggler/rpg-table/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-table/internal/orchestrators/initiative"
	"github.com/KirkDiggler/rpg-table/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-table/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-table/internal/redis"
	"github.com/KirkDiggler/rpg-table/internal/repositories/snapshot"
	"github.com/KirkDiggler/rpg-table/internal/store"
)

// loadConfig reads the environment, applies the persistent flags and
// validates the result once
func loadConfig() (*config.Config, error) {
	cfg, err := config.Parse()
	if err != nil {
		return nil, err
	}

	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagStorage != "" {
		cfg.Storage = strings.ToLower(flagStorage)
	}
	if flagPrefix != "" {
		cfg.Prefix = flagPrefix
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging sends structured logs to stderr so stdout stays free for replies
func setupLogging(cfg *config.Config) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler))
}

// app holds everything one bot process runs on
type app struct {
	profiles   *store.Profiles
	boards     *store.Boards
	redis      redis.Client
	characters *character.Orchestrator
	handler    *chat.Handler
	dice       diceorch.Service
}

// newApp loads both collections and wires the orchestrators. A nil responder
// skips the chat handler.
func newApp(ctx context.Context, cfg *config.Config, responder chat.Responder) (*app, error) {
	a := &app{}

	profilesRepo, boardsRepo, err := a.repositories(cfg)
	if err != nil {
		return nil, err
	}

	a.profiles, err = store.NewProfiles(profilesRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to create profiles store: %w", err)
	}
	a.boards, err = store.NewBoards(boardsRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to create initiative store: %w", err)
	}
	if err := a.profiles.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	if err := a.boards.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load initiative: %w", err)
	}

	engine, err := dice.NewEngine(&dice.Config{Limits: cfg.Limits()})
	if err != nil {
		return nil, fmt.Errorf("failed to create dice engine: %w", err)
	}

	bus := events.NewBus()
	subscribeLogger(bus)

	a.characters, err = character.New(&character.Config{
		Profiles: a.profiles,
		EventBus: bus,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create character orchestrator: %w", err)
	}

	initiativeService, err := initiative.NewOrchestrator(&initiative.Config{
		Boards:   a.boards,
		Engine:   engine,
		EventBus: bus,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create initiative orchestrator: %w", err)
	}

	a.dice, err = diceorch.NewOrchestrator(&diceorch.Config{
		Engine:      engine,
		IDGenerator: idgen.NewUUID("roll"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dice orchestrator: %w", err)
	}

	slog.Info("State loaded",
		"storage", cfg.Storage,
		"profiles", a.characters.Count(),
		"initiative_rooms", a.boards.Len(),
	)

	if responder == nil {
		return a, nil
	}

	waiter, err := confirm.NewWaiter(&confirm.Config{
		Clock:       clock.New(),
		IDGenerator: idgen.NewUUID("confirm"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create confirmation waiter: %w", err)
	}

	a.handler, err = chat.NewHandler(&chat.HandlerConfig{
		CharacterService:  a.characters,
		InitiativeService: initiativeService,
		DiceService:       a.dice,
		Waiter:            waiter,
		Responder:         responder,
		Prefix:            cfg.Prefix,
		ConfirmTimeout:    cfg.ConfirmTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat handler: %w", err)
	}

	return a, nil
}

func (a *app) repositories(cfg *config.Config) (profiles, boards snapshot.Repository, err error) {
	switch cfg.Storage {
	case config.StorageRedis:
		a.redis, err = redis.NewClient(cfg.RedisAddr, &redis.Options{
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		profiles, err = snapshot.NewRedis(&snapshot.RedisConfig{Client: a.redis, Name: store.ProfilesName})
		if err != nil {
			return nil, nil, err
		}
		boards, err = snapshot.NewRedis(&snapshot.RedisConfig{Client: a.redis, Name: store.InitiativeName})
		return profiles, boards, err
	default:
		profiles, err = snapshot.NewFile(&snapshot.FileConfig{Path: cfg.ProfilesPath()})
		if err != nil {
			return nil, nil, err
		}
		boards, err = snapshot.NewFile(&snapshot.FileConfig{Path: cfg.InitiativePath()})
		return profiles, boards, err
	}
}

// close waits for pending confirmations, writes both snapshots once more
// and releases the redis connection
func (a *app) close(ctx context.Context) error {
	if a.handler != nil {
		a.handler.Wait()
	}

	var firstErr error
	if err := a.profiles.Flush(ctx); err != nil {
		slog.Error("Failed to flush profiles", "error", err)
		firstErr = err
	}
	if err := a.boards.Flush(ctx); err != nil {
		slog.Error("Failed to flush initiative", "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}
	return firstErr
}

var loggedEvents = []string{
	character.EventRegistered,
	character.EventUnregistered,
	character.EventHPChanged,
	character.EventMoneyChanged,
	character.EventInventoryChanged,
	character.EventAttributesChanged,
	initiative.EventRolled,
	initiative.EventCleared,
}

// subscribeLogger logs every state change published on the bus
func subscribeLogger(bus events.EventBus) {
	for _, eventType := range loggedEvents {
		bus.SubscribeFunc(eventType, 0, func(_ context.Context, e events.Event) error {
			attrs := []any{"event", e.Type()}
			if src := e.Source(); src != nil {
				attrs = append(attrs, "source_id", src.GetID(), "source_type", src.GetType())
			}
			if tgt := e.Target(); tgt != nil {
				attrs = append(attrs, "target_id", tgt.GetID(), "target_type", tgt.GetType())
			}
			slog.Debug("State changed", attrs...)
			return nil
		})
	}
}

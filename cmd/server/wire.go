package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/dungeon-runner/internal/clients/weather"
	"github.com/KirkDiggler/dungeon-runner/internal/config"
	"github.com/KirkDiggler/dungeon-runner/internal/engine"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
	v1alpha1 "github.com/KirkDiggler/dungeon-runner/internal/handlers/dungeonrunner/v1alpha1"
	"github.com/KirkDiggler/dungeon-runner/internal/metrics"
	dungeonorchestrator "github.com/KirkDiggler/dungeon-runner/internal/orchestrators/dungeon"
	"github.com/KirkDiggler/dungeon-runner/internal/orchestrators/inventory"
	"github.com/KirkDiggler/dungeon-runner/internal/orchestrators/run"
	"github.com/KirkDiggler/dungeon-runner/internal/pkg/clock"
	"github.com/KirkDiggler/dungeon-runner/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/dungeon-runner/internal/redis"
	"github.com/KirkDiggler/dungeon-runner/internal/repositories/descriptors"
	inventoryrepo "github.com/KirkDiggler/dungeon-runner/internal/repositories/inventory"
	"github.com/KirkDiggler/dungeon-runner/internal/repositories/journal"
	"github.com/KirkDiggler/dungeon-runner/internal/repositories/levels"
	runsession "github.com/KirkDiggler/dungeon-runner/internal/repositories/run_session"
	"github.com/KirkDiggler/dungeon-runner/internal/seed"
)

type repositories struct {
	descriptors descriptors.Repository
	levels      levels.Repository
	inventory   inventoryrepo.Repository
	journal     journal.Repository
	sessions    runsession.Repository
}

func newRepositories(client redisclient.Client, clk clock.Clock) (*repositories, error) {
	descriptorRepo, err := descriptors.NewRedis(&descriptors.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create descriptors repository: %w", err)
	}
	levelRepo, err := levels.NewRedis(&levels.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create levels repository: %w", err)
	}
	inventoryRepo, err := inventoryrepo.NewRedis(&inventoryrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory repository: %w", err)
	}
	journalRepo, err := journal.NewRedis(&journal.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create journal repository: %w", err)
	}
	sessionRepo, err := runsession.NewRedisRepository(&runsession.Config{Client: client, Clock: clk})
	if err != nil {
		return nil, fmt.Errorf("failed to create run session repository: %w", err)
	}

	return &repositories{
		descriptors: descriptorRepo,
		levels:      levelRepo,
		inventory:   inventoryRepo,
		journal:     journalRepo,
		sessions:    sessionRepo,
	}, nil
}

// seedResult counts what seedStore wrote
type seedResult struct {
	Descriptors int
	Levels      int
}

// seedStore loads the embedded descriptor catalog and levels into redis,
// replacing whatever was there
func seedStore(ctx context.Context, repos *repositories) (*seedResult, error) {
	entries, err := seed.Descriptors()
	if err != nil {
		return nil, err
	}
	if _, err := engine.NewCatalog(entries); err != nil {
		return nil, errors.Wrap(err, "embedded descriptor catalog is invalid")
	}
	replaced, err := repos.descriptors.Replace(ctx, descriptors.ReplaceInput{Descriptors: entries})
	if err != nil {
		return nil, err
	}

	levelList, err := seed.Levels()
	if err != nil {
		return nil, err
	}
	for i := range levelList {
		if _, err := repos.levels.Put(ctx, levels.PutInput{Level: &levelList[i]}); err != nil {
			return nil, errors.Wrapf(err, "failed to seed level %s", levelList[i].ID)
		}
	}

	return &seedResult{Descriptors: replaced.Count, Levels: len(levelList)}, nil
}

// loadCatalog reads the stored catalog, seeding an empty store first when
// seedIfEmpty is set
func loadCatalog(ctx context.Context, repos *repositories, seedIfEmpty bool) (*engine.Catalog, error) {
	stored, err := repos.descriptors.List(ctx, descriptors.ListInput{})
	if errors.IsNotFound(err) && seedIfEmpty {
		result, seedErr := seedStore(ctx, repos)
		if seedErr != nil {
			return nil, seedErr
		}
		slog.Info("seeded empty store", "descriptors", result.Descriptors, "levels", result.Levels)
		stored, err = repos.descriptors.List(ctx, descriptors.ListInput{})
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load descriptor catalog")
	}

	return engine.NewCatalog(stored.Descriptors)
}

// dependencies are the outside-world pieces the services are built on
type dependencies struct {
	Redis   redisclient.Client
	Roller  dice.Roller
	Weather weather.Client
	Clock   clock.Clock
}

// services is the assembled application
type services struct {
	bus       events.EventBus
	collector *metrics.EventCollector
	handler   *v1alpha1.Handler
}

func (s *services) close() {
	s.collector.Unregister(s.bus)
}

func buildServices(ctx context.Context, cfg *config.Config, deps *dependencies) (*services, error) {
	repos, err := newRepositories(deps.Redis, deps.Clock)
	if err != nil {
		return nil, err
	}

	catalog, err := loadCatalog(ctx, repos, cfg.SeedOnStart)
	if err != nil {
		return nil, err
	}

	rules, err := engine.New(&engine.Config{Catalog: catalog, Roller: deps.Roller})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	bus := events.NewBus()
	collector := metrics.NewEventCollector()
	collector.Register(bus)

	dungeonService, err := dungeonorchestrator.NewOrchestrator(&dungeonorchestrator.Config{
		LevelRepo:     repos.levels,
		InventoryRepo: repos.inventory,
		JournalRepo:   repos.journal,
		Engine:        rules,
		EventBus:      bus,
		Clock:         deps.Clock,
		ItemIDGen:     idgen.NewUUID(idgen.PrefixItem),
		RecordIDGen:   idgen.NewUUID(idgen.PrefixRecord),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dungeon orchestrator: %w", err)
	}

	runService, err := run.NewOrchestrator(&run.Config{
		SessionRepo: repos.sessions,
		LevelRepo:   repos.levels,
		Dungeon:     dungeonService,
		Weather:     deps.Weather,
		Clock:       deps.Clock,
		SessionTTL:  cfg.RunSessionTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create run orchestrator: %w", err)
	}

	inventoryService, err := inventory.NewOrchestrator(&inventory.Config{
		InventoryRepo: repos.inventory,
		Clock:         deps.Clock,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		DungeonService:   dungeonService,
		RunService:       runService,
		InventoryService: inventoryService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create handler: %w", err)
	}

	slog.Info("services ready", "descriptors", catalog.Len())

	return &services{bus: bus, collector: collector, handler: handler}, nil
}

func newWeatherClient(cfg *config.Config) (weather.Client, error) {
	upstream, err := weather.New(&weather.Config{
		BaseURL:     cfg.WeatherBaseURL,
		HTTPTimeout: cfg.WeatherTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create weather client: %w", err)
	}

	if cfg.WeatherCacheTTL == 0 {
		return upstream, nil
	}

	cached, err := weather.NewCached(&weather.CachedConfig{
		Client: upstream,
		Size:   cfg.WeatherCacheSize,
		TTL:    cfg.WeatherCacheTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create weather cache: %w", err)
	}
	return cached, nil
}

func connectRedis(ctx context.Context, cfg *config.Config) (redisclient.Client, error) {
	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	if err := redisclient.Ping(ctx, client, 5*time.Second); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
	}
	return client, nil
}

package wire

import (
	"finance-tracker/cmd/config"
	budgetusecases "finance-tracker/internal/budget/usecases"
	"finance-tracker/internal/infra/async"
	"finance-tracker/internal/infra/cache"
	"finance-tracker/internal/infra/pubsub"
	"finance-tracker/internal/infra/sql"
	ledgerusecases "finance-tracker/internal/ledger/usecases"
	schemapersistence "finance-tracker/internal/schema/persistence"
	"fmt"
	"log/slog"
	"sync"
)

var (
	databaseOnce sync.Once
	databaseORM  sql.ORM
	databaseErr  error

	cacheOnce  sync.Once
	cacheStore cache.Cache
	cacheErr   error
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

// provideDatabase opens the ORM once per process, so every injector shares
// the same connection pool (and the same in-memory database when local).
func provideDatabase(config config.AppConfig) (sql.ORM, error) {
	databaseOnce.Do(func() {
		databaseORM, databaseErr = openDatabase(config)
	})
	return databaseORM, databaseErr
}

func openDatabase(config config.AppConfig) (sql.ORM, error) {
	if config.General.IsLocal() {
		return sql.NewMemoryORM(config.Database.MigrationsPath)
	}

	db := sql.NewPosgreDatabase(config.Database.URL)
	if err := db.Open(); err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Up(config.Database.MigrationsPath, config.Database.MigrationReplacements); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	orm, err := sql.NewPosgreORM(config.Database.DSN, config.Database.QueryTimeout)
	if err != nil {
		return nil, fmt.Errorf("opening orm: %w", err)
	}
	return orm, nil
}

func providePublisherFactory(config config.AppConfig) pubsub.PublisherFactory {
	environment := config.General.Environment
	if environment == "" {
		environment = "production"
	}

	return pubsub.NewFactory(pubsub.FactoryOptions{
		Environment:       environment,
		KafkaBrokers:      config.Kafka.Brokers,
		SchemaRegistryURL: config.Kafka.SchemaRegistry,
	}).GetPublisherFactory()
}

func provideCacheStore(config config.AppConfig) (cache.Cache, error) {
	cacheOnce.Do(func() {
		cacheStore, cacheErr = openCacheStore(config)
	})
	return cacheStore, cacheErr
}

func openCacheStore(config config.AppConfig) (cache.Cache, error) {
	if config.Cache.Backend != "redis" {
		return newRistrettoStore()
	}

	redisConfig := cache.DefaultRedisConfig()
	redisConfig.Addr = config.Cache.Redis.Addr
	redisConfig.Password = config.Cache.Redis.Password
	redisConfig.DB = config.Cache.Redis.DB

	store, err := cache.NewRedisCache(redisConfig)
	if err != nil {
		slog.Warn("redis cache unavailable, falling back to ristretto", slog.String("error", err.Error()))
		return newRistrettoStore()
	}
	return store, nil
}

func newRistrettoStore() (cache.Cache, error) {
	store, err := cache.New(cache.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("creating ristretto cache: %w", err)
	}
	return store, nil
}

func provideFieldListCache(store cache.Cache, config config.AppConfig) *schemapersistence.CachedFieldList {
	return schemapersistence.NewFieldListCache(store, config.Cache.FieldTTL)
}

func provideBudgetPeriodService(repository budgetusecases.BudgetPeriodRepository, config config.AppConfig) *budgetusecases.SimpleBudgetPeriodService {
	return budgetusecases.NewBudgetPeriodService(repository, config.Budget.Location())
}

func provideRecordService(
	repository ledgerusecases.RecordRepository,
	periods ledgerusecases.ActivePeriodResolver,
	broker async.InternalBroker,
	config config.AppConfig,
) *ledgerusecases.SimpleRecordService {
	return ledgerusecases.NewRecordService(repository, periods, broker, config.Budget.Location())
}

package config

import (
	"finance-tracker/internal/infra/utils"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

const (
	_defaultPort           = 3000
	_defaultQueryTimeout   = 5 * time.Second
	_defaultFieldTTL       = 10 * time.Minute
	_defaultShutdownPeriod = 10 * time.Second
)

var loadConfigOnce sync.Once
var configInstance AppConfig

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("finance_tracker")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("server")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		setDefaults()
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = readConfig()
	})

	return configInstance
}

func setDefaults() {
	viper.SetDefault("general.log_level", "info")
	viper.SetDefault("general.environment", "production")
	viper.SetDefault("database.query_timeout", _defaultQueryTimeout)
	viper.SetDefault("database.migrations_path", "migrations")
	viper.SetDefault("cache.backend", "ristretto")
	viper.SetDefault("cache.field_ttl", _defaultFieldTTL)
	viper.SetDefault("budget.timezone", "Local")
	viper.SetDefault("http.port", _defaultPort)
	viper.SetDefault("http.allowed_origins", []string{"*"})
	viper.SetDefault("http.shutdown_timeout", _defaultShutdownPeriod)
}

func readConfig() AppConfig {
	return AppConfig{
		General: GeneralConfig{
			LogLevel:    viper.GetString("general.log_level"),
			Environment: viper.GetString("general.environment"),
		},
		Database: DatabaseConfig{
			URL:                   viper.GetString("database.url"),
			DSN:                   viper.GetString("database.dsn"),
			QueryTimeout:          viper.GetDuration("database.query_timeout"),
			MigrationsPath:        viper.GetString("database.migrations_path"),
			MigrationReplacements: viper.GetStringMapString("database.migration_replacements"),
		},
		Kafka: KafkaConfig{
			Brokers:        viper.GetStringSlice("kafka.brokers"),
			Group:          viper.GetString("kafka.group"),
			SchemaRegistry: viper.GetString("kafka.schema_registry"),
		},
		Cache: CacheConfig{
			Backend:  viper.GetString("cache.backend"),
			FieldTTL: viper.GetDuration("cache.field_ttl"),
			Redis: RedisConfig{
				Addr:     viper.GetString("cache.redis.addr"),
				Password: viper.GetString("cache.redis.password"),
				DB:       viper.GetInt("cache.redis.db"),
			},
		},
		Budget: BudgetConfig{
			Timezone: viper.GetString("budget.timezone"),
		},
		HTTP: HTTPConfig{
			Port:            viper.GetInt("http.port"),
			AllowedOrigins:  viper.GetStringSlice("http.allowed_origins"),
			ShutdownTimeout: viper.GetDuration("http.shutdown_timeout"),
		},
	}
}

type AppConfig struct {
	General  GeneralConfig
	Database DatabaseConfig
	Kafka    KafkaConfig
	Cache    CacheConfig
	Budget   BudgetConfig
	HTTP     HTTPConfig
}

type GeneralConfig struct {
	LogLevel string
	// Environment "local" runs on the in-memory ORM and the in-memory pubsub.
	Environment string
}

func (c GeneralConfig) IsLocal() bool {
	return c.Environment == "local"
}

type DatabaseConfig struct {
	URL                   string
	DSN                   string
	QueryTimeout          time.Duration
	MigrationsPath        string
	MigrationReplacements map[string]string
}

type KafkaConfig struct {
	Brokers        []string
	Group          string
	SchemaRegistry string
}

type CacheConfig struct {
	// Backend is "ristretto" or "redis".
	Backend  string
	FieldTTL time.Duration
	Redis    RedisConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type BudgetConfig struct {
	Timezone string
}

// Location resolves the budget timezone, falling back to the local zone.
func (c BudgetConfig) Location() *time.Location {
	return utils.LocationOrLocal(c.Timezone)
}

type HTTPConfig struct {
	Port            int
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

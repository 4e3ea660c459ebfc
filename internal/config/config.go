package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Backend     Backend     `mapstructure:",squash"`
	Cache       Cache       `mapstructure:",squash"`
	Polling     Polling     `mapstructure:",squash"`
	RefreshSync RefreshSync `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Cors        Cors        `mapstructure:",squash"`
	Tables      Tables      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host       string `mapstructure:"host"`
	Port       string `mapstructure:"port"`
	TablesPort string `mapstructure:"tables_port"`
}

// Backend descreve o backend REST de tabelas consumido pelo dashboard
type Backend struct {
	BaseURL          string `mapstructure:"backend_base_url"`
	TimeoutSeconds   int    `mapstructure:"backend_timeout_seconds"`
	RetryAttempts    int    `mapstructure:"backend_retry_attempts"`
	RetryBaseDelayMs int    `mapstructure:"backend_retry_base_delay_ms"`
	DefaultStationID string `mapstructure:"default_station_id"`
}

type Cache struct {
	TTL        time.Duration `mapstructure:"cache_ttl"`
	MaxEntries int           `mapstructure:"cache_max_entries"`
}

// Polling controla a atualização periódica de mercado e previsões
type Polling struct {
	Enabled         bool `mapstructure:"polling_enabled"`
	IntervalSeconds int  `mapstructure:"polling_interval_seconds"`
}

// RefreshSync controla a renovação completa do cache via cron
type RefreshSync struct {
	CronSchedule string `mapstructure:"refresh_sync_cron"`
	Enabled      bool   `mapstructure:"refresh_sync_enabled"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

// Tables controla o schema e a carga inicial do backend de tabelas
type Tables struct {
	AutoMigrate bool `mapstructure:"tables_auto_migrate"`
	Seed        bool `mapstructure:"tables_seed"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("TABLES_PORT", 8001)

	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:8001/")
	viper.SetDefault("BACKEND_TIMEOUT_SECONDS", 10)
	viper.SetDefault("BACKEND_RETRY_ATTEMPTS", 2)
	viper.SetDefault("BACKEND_RETRY_BASE_DELAY_MS", 200)
	viper.SetDefault("DEFAULT_STATION_ID", "1")

	viper.SetDefault("CACHE_TTL", "5m")
	viper.SetDefault("CACHE_MAX_ENTRIES", 512)

	viper.SetDefault("POLLING_ENABLED", true)
	viper.SetDefault("POLLING_INTERVAL_SECONDS", 30)

	viper.SetDefault("REFRESH_SYNC_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("REFRESH_SYNC_ENABLED", false)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/gas_station?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("TABLES_AUTO_MIGRATE", true)
	viper.SetDefault("TABLES_SEED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func (c *Config) validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("config: BACKEND_BASE_URL é obrigatório")
	}
	if c.Backend.DefaultStationID == "" {
		return fmt.Errorf("config: DEFAULT_STATION_ID é obrigatório")
	}
	if c.Polling.Enabled && c.Polling.IntervalSeconds <= 0 {
		return fmt.Errorf("config: POLLING_INTERVAL_SECONDS deve ser positivo, recebido %d", c.Polling.IntervalSeconds)
	}
	return nil
}

// PollingInterval retorna o intervalo de polling como time.Duration
func (c *Config) PollingInterval() time.Duration {
	return time.Duration(c.Polling.IntervalSeconds) * time.Second
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

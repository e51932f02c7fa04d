package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DatasetSourceFixtures = "fixtures"
	DatasetSourcePostgres = "postgres"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Dataset       Dataset       `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	RenewalDigest RenewalDigest `mapstructure:",squash"`
	DatasetReload DatasetReload `mapstructure:",squash"`
	Metrics       Metrics       `mapstructure:",squash"`
	CORS          CORS          `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	SSLMode  string `mapstructure:"database_sslmode"`
}

type App struct {
	LogLevel      string `mapstructure:"log_level"`
	Env           string `mapstructure:"app_env"`
	DefaultRegion string `mapstructure:"default_region"`
}

type Dataset struct {
	Source      string `mapstructure:"dataset_source"`
	FixturesDir string `mapstructure:"fixtures_dir"`
	Watch       bool   `mapstructure:"fixtures_watch"`
}

type Auth struct {
	Enabled  bool          `mapstructure:"auth_enabled"`
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type RenewalDigest struct {
	CronSchedule string `mapstructure:"renewal_digest_cron"`
	Enabled      bool   `mapstructure:"renewal_digest_enabled"`
}

type DatasetReload struct {
	CronSchedule string `mapstructure:"dataset_reload_cron"`
	Enabled      bool   `mapstructure:"dataset_reload_enabled"`
}

type Metrics struct {
	Enabled bool `mapstructure:"metrics_enabled"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "dev")
	viper.SetDefault("DEFAULT_REGION", "Oslo")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/crm")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")

	viper.SetDefault("DATASET_SOURCE", DatasetSourceFixtures)
	viper.SetDefault("FIXTURES_DIR", "") // vazio usa as fixtures embutidas
	viper.SetDefault("FIXTURES_WATCH", false)

	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("RENEWAL_DIGEST_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("RENEWAL_DIGEST_ENABLED", false)

	viper.SetDefault("DATASET_RELOAD_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("DATASET_RELOAD_ENABLED", false)

	viper.SetDefault("METRICS_ENABLED", true)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)
	if config.Database.SSLMode != "" {
		config.Database.DSN += "?sslmode=" + config.Database.SSLMode
	}

	for i, origin := range config.CORS.AllowedOrigins {
		config.CORS.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica combinações de valores que não podem ser corrigidas com defaults
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case DatasetSourceFixtures, DatasetSourcePostgres:
	default:
		return errors.Errorf("DATASET_SOURCE inválido: %q (use %s ou %s)",
			c.Dataset.Source, DatasetSourceFixtures, DatasetSourcePostgres)
	}

	if c.Dataset.Watch && c.Dataset.FixturesDir == "" {
		return errors.New("FIXTURES_WATCH exige FIXTURES_DIR")
	}

	if c.Auth.Enabled && c.Auth.Secret == "" {
		return errors.New("AUTH_ENABLED exige AUTH_SECRET")
	}

	if c.Auth.TokenTTL <= 0 {
		return errors.Errorf("AUTH_TOKEN_TTL inválido: %s", c.Auth.TokenTTL)
	}

	return nil
}

// IsDevelopment indica ambiente local, onde os logs são mais enxutos
func (a App) IsDevelopment() bool {
	return a.Env == "" || a.Env == "dev" || a.Env == "development"
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
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}

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
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Cors            Cors            `mapstructure:",squash"`
	DailyGoalDigest DailyGoalDigest `mapstructure:",squash"`
	SecretKey       string          `mapstructure:"secret_key"`
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
}

type App struct {
	Env      string         `mapstructure:"app_env"`
	LogLevel string         `mapstructure:"log_level"`
	Timezone string         `mapstructure:"timezone"`
	Location *time.Location `mapstructure:"-"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DailyGoalDigest struct {
	CronSchedule      string `mapstructure:"daily_goal_digest_cron"`
	MaxConcurrentJobs int    `mapstructure:"daily_goal_digest_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"daily_goal_digest_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales_goals?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("APP_ENV", "dev")
	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("TIMEZONE", "America/Sao_Paulo")

	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	// Resumo diário de metas
	viper.SetDefault("DAILY_GOAL_DIGEST_CRON", "0 8 * * *")      // Todos os dias às 8h da manhã
	viper.SetDefault("DAILY_GOAL_DIGEST_MAX_CONCURRENT_JOBS", 3) // 3 lojas em paralelo
	viper.SetDefault("DAILY_GOAL_DIGEST_ENABLED", false)         // Habilitar envio do resumo
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	config.App.Location, err = time.LoadLocation(config.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("fuso horário inválido %q: %w", config.App.Timezone, err)
	}

	if config.DailyGoalDigest.MaxConcurrentJobs <= 0 {
		config.DailyGoalDigest.MaxConcurrentJobs = 1
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

// Today retorna a data de hoje no fuso da operação, sem horário
func (c *Config) Today() time.Time {
	loc := c.App.Location
	if loc == nil {
		loc = time.Local
	}

	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

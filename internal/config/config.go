package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port       string `mapstructure:"port"`
		Env        string `mapstructure:"env"`
		CORSOrigin string `mapstructure:"cors_origin"`
	} `mapstructure:"app"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	RateLimit struct {
		Window time.Duration `mapstructure:"window"`
		Max    int           `mapstructure:"max"`
	} `mapstructure:"rate_limit"`
	Tracing struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"tracing"`
}

func LoadConfig(paths ...string) (cfg Config, err error) {

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use environment only.")
	}

	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		viper.AddConfigPath(p)
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read env only. Error: %v", err)
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("app.port", "3001")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.cors_origin", "*")
	viper.SetDefault("rate_limit.window", 15*time.Minute)
	viper.SetDefault("rate_limit.max", 100)

	viper.BindEnv("app.port", "APP_PORT")
	viper.BindEnv("app.env", "APP_ENV")
	viper.BindEnv("app.cors_origin", "CORS_ORIGIN")
	viper.BindEnv("db.dsn", "DB_DSN")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	viper.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	viper.BindEnv("rate_limit.max", "RATE_LIMIT_MAX")
	viper.BindEnv("tracing.otlp_endpoint", "OTLP_ENDPOINT")

	err = viper.Unmarshal(&cfg)
	return
}

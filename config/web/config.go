package config

import "github.com/ilyakaznacheev/cleanenv"

type Config struct {
	Port      int    `env:"WEB_PORT" env-default:"8080"`
	JWTSecret string `env:"JWT_SECRET"`
	OpenAI    OpenAIConfig
	Database  DatabaseConfig
}

type OpenAIConfig struct {
	BaseURL string `env:"OPENAI_BASE_URL" env-default:"https://api.openai.com/v1"`
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     int    `env:"DB_PORT" env-default:"5432"`
	User     string `env:"DB_USER"`
	Name     string `env:"DB_NAME"`
	Password string `env:"DB_PASSWORD"`
	SSLMode  string `env:"DB_SSLMODE" env-default:"disable"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("failed to read environment variables: " + err.Error())
	}
	return &cfg
}

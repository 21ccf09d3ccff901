package config

import "github.com/ilyakaznacheev/cleanenv"

type Config struct {
	BaseURL string `env:"ECHONOTE_API_URL" env-default:"http://localhost:8080/api/v1"`
	Token   string `env:"ECHONOTE_TOKEN"`

	// AudioSink is the command PCM feedback frames are piped to.
	AudioSink string `env:"ECHONOTE_AUDIO_SINK" env-default:"aplay -q -f S16_LE -r 16000 -c 1"`
	Silent    bool   `env:"ECHONOTE_SILENT" env-default:"false"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("failed to read environment variables: " + err.Error())
	}
	return &cfg
}

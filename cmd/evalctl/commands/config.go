package commands

import (
	"errors"
	"time"

	"github.com/spf13/viper"

	"github.com/quizforge/evalengine/internal/config"
)

// Config is the CLI-side view of the engine wiring. File values override
// the environment defaults from internal/config.
type Config struct {
	NormalizerURL       string `mapstructure:"normalizer_url"`
	NormalizerTimeoutMS int    `mapstructure:"normalizer_timeout_ms"`
	NormalizerRetries   int    `mapstructure:"normalizer_retries"`
	Language            string `mapstructure:"language"`
	Workers             int    `mapstructure:"workers"`
	Format              string `mapstructure:"format"`
}

func LoadConfig(path string) (Config, error) {
	env := config.FromEnv()
	cfg := Config{
		NormalizerURL:       env.NormalizerURL,
		NormalizerTimeoutMS: int(env.NormalizerTimeout / time.Millisecond),
		NormalizerRetries:   int(env.NormalizerRetries),
		Language:            env.Language,
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".evalctl")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) normalizerTimeout() time.Duration {
	if c.NormalizerTimeoutMS <= 0 {
		return 2 * time.Second
	}
	return time.Duration(c.NormalizerTimeoutMS) * time.Millisecond
}

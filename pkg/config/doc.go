// Package config loads typed configuration from environment variables.
//
// Structs are described with `env` tags understood by
// github.com/caarlos0/env/v11. Before the first Load the package reads the
// .env file in the working directory through github.com/joho/godotenv, if
// one exists. Parsed values are cached per type so repeated Load calls for
// the same struct are cheap and return identical values.
//
//	type Config struct {
//	    AppEnv      string        `env:"APP_ENV" envDefault:"development"`
//	    TypingDelay time.Duration `env:"CHAT_TYPING_DELAY" envDefault:"0s"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Tests that change the environment use Reload or ResetCache to drop the
// cached value.
package config

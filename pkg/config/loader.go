package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	mu    sync.Mutex
	cache = make(map[reflect.Type]*entry)

	defaultEnvOnce sync.Once
)

// Load parses environment variables into v according to its `env` tags.
// The default .env file, when present, is loaded on first use.
// Each type is parsed once; later calls copy the cached value into v.
// A failed parse is cached too, until ResetCache or Reload.
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvOnce.Do(func() {
		_ = godotenv.Load()
	})

	e := lookup[T]()
	e.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = parsed
	})
	if e.err != nil {
		return e.err
	}

	*v = e.value.(T)
	return nil
}

// MustLoad is like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// Reload drops the cached value for T and parses it again.
func Reload[T any](v *T) error {
	mu.Lock()
	delete(cache, reflect.TypeFor[T]())
	mu.Unlock()
	return Load(v)
}

// ResetCache drops every cached config.
func ResetCache() {
	mu.Lock()
	clear(cache)
	mu.Unlock()
}

// LoadEnv loads the given .env files into the process environment, or the
// default .env when no path is given. Later files override earlier ones;
// variables already set in the process are left untouched by the first file.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil {
			return errors.Join(ErrLoadingEnv, err)
		}
		return nil
	}
	if err := godotenv.Load(paths[0]); err != nil {
		return errors.Join(ErrLoadingEnv, err)
	}
	if len(paths) > 1 {
		if err := godotenv.Overload(paths[1:]...); err != nil {
			return errors.Join(ErrLoadingEnv, err)
		}
	}
	return nil
}

func lookup[T any]() *entry {
	t := reflect.TypeFor[T]()
	mu.Lock()
	defer mu.Unlock()
	e, ok := cache[t]
	if !ok {
		e = &entry{}
		cache[t] = e
	}
	return e
}

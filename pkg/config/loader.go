package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache stores parsed configuration structs keyed by their type name so
// each type is parsed at most once per process.
type cache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	global = &cache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}

	dotenvOnce sync.Once
)

// LoadEnv loads the named .env files into the process environment before
// any struct is parsed. Call it ahead of Load when the file lives outside
// the working directory; Load itself falls back to ./.env on its own.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFiles, err)
	}
	return nil
}

// Load populates v from the process environment based on `env` field tags,
// reading a ./.env file first when one exists. Each configuration type is
// parsed once per process and cached by value; later calls for the same
// type are served from the cache and do not observe environment changes.
//
// Example:
//
//	type QualityConfig struct {
//		MissingThreshold float64 `env:"DATACHECK_MISSING_THRESHOLD" envDefault:"0.1"`
//		OutlierSigma     float64 `env:"DATACHECK_OUTLIER_SIGMA" envDefault:"3"`
//	}
//
//	var cfg QualityConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	dotenvOnce.Do(func() {
		// A missing .env file is fine; the environment may be set directly.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	global.mu.RLock()
	if cached, ok := global.values[typeName]; ok {
		*v = cached.(T)
		global.mu.RUnlock()
		return nil
	}
	global.mu.RUnlock()

	global.mu.Lock()
	once, exists := global.onces[typeName]
	if !exists {
		once = new(sync.Once)
		global.onces[typeName] = once
	}
	global.mu.Unlock()

	var err error
	once.Do(func() {
		if parseErr := env.Parse(v); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			return
		}

		global.mu.Lock()
		global.values[typeName] = *v // store a copy, callers keep their own
		global.mu.Unlock()
	})

	if err != nil {
		return err
	}

	global.mu.RLock()
	defer global.mu.RUnlock()
	if cached, ok := global.values[typeName]; ok {
		*v = cached.(T)
		return nil
	}

	// The once ran earlier and failed; nothing was cached for this type.
	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics when loading fails. Meant for
// configuration the tool cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ResetCache drops every cached configuration so the next Load parses the
// environment again. Intended for tests that mutate the environment.
func ResetCache() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.values = make(map[string]any)
	global.onces = make(map[string]*sync.Once)
}

// getTypeName returns a string identifier for the generic type T.
func getTypeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}

// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// deliver a small API that:
//
//   - Loads values from the default `.env` in the working directory, or
//     from explicit files via LoadEnv.
//   - Parses the environment into any Go struct using `env` field tags.
//   - Caches each successfully loaded configuration type so it is parsed
//     once for the lifetime of the process.
//   - Exposes MustLoad for configuration the tool cannot start without,
//     and ResetCache for tests that mutate the environment.
//
// # Architecture
//
// Internally the package keeps a singleton cache storing parsed struct
// copies keyed by their type name. Each key holds a `sync.Once` so the
// parsing work runs at most once per configuration type even under
// concurrent access; reads go through a `sync.RWMutex` fast path.
//
// # Usage
//
// Describe the configuration as a struct with `env` tags:
//
//	type QualityConfig struct {
//	    MissingThreshold float64 `env:"DATACHECK_MISSING_THRESHOLD" envDefault:"0.1"`
//	    OutlierSigma     float64 `env:"DATACHECK_OUTLIER_SIGMA" envDefault:"3"`
//	}
//
//	var cfg QualityConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Subsequent calls to `config.Load(&cfg)` are served from the in-memory
// cache without re-parsing.
//
// # Error Handling
//
// The package defines sentinel errors for `errors.Is` comparisons:
// ErrParsingConfig, ErrLoadingEnvFiles, ErrConfigNotLoaded and
// ErrNilPointer.
package config

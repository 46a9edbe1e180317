// Package config loads runtime settings from IDEEFASE_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/ideefase/internal/domain"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DotenvFile is read from the working directory by Load.
const DotenvFile = ".env"

// Config holds all settings for the assistant.
type Config struct {
	MinFunctionalities int `env:"IDEEFASE_MIN_FUNCTIONALITIES" envDefault:"4"`
	MinRoles           int `env:"IDEEFASE_MIN_ROLES" envDefault:"2"`
	MaxRoles           int `env:"IDEEFASE_MAX_ROLES" envDefault:"3"`

	BackendMinEntities   int `env:"IDEEFASE_BACKEND_MIN_ENTITIES" envDefault:"6"`
	BackendMaxEntities   int `env:"IDEEFASE_BACKEND_MAX_ENTITIES" envDefault:"7"`
	FullstackMinEntities int `env:"IDEEFASE_FULLSTACK_MIN_ENTITIES" envDefault:"5"`
	FullstackMaxEntities int `env:"IDEEFASE_FULLSTACK_MAX_ENTITIES" envDefault:"6"`
	FrontendMinEntities  int `env:"IDEEFASE_FRONTEND_MIN_ENTITIES" envDefault:"4"`
	FrontendMaxEntities  int `env:"IDEEFASE_FRONTEND_MAX_ENTITIES" envDefault:"5"`

	// ToastDuration is how long a notification stays on screen.
	ToastDuration time.Duration `env:"IDEEFASE_TOAST_DURATION" envDefault:"5s"`
	// Deadline prefills the resubmission date in new forms.
	Deadline       string `env:"IDEEFASE_DEADLINE"`
	LogEvaluations bool   `env:"IDEEFASE_LOG_EVALUATIONS" envDefault:"false"`
}

// Load reads the configuration from the process environment and validates it.
// Variables in a .env file fill in what the environment leaves unset.
func Load() (Config, error) {
	return LoadWithDotenv(DotenvFile)
}

// LoadWithDotenv is Load with an explicit dotenv path. A missing file is
// not an error.
func LoadWithDotenv(path string) (Config, error) {
	vars, err := readDotenv(path)
	if err != nil {
		return Config{}, err
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return LoadFrom(vars)
}

func readDotenv(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return vars, nil
}

// LoadFrom reads the configuration from vars instead of the process
// environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every inconsistent threshold at once.
func (c Config) Validate() error {
	var errs []error
	if c.MinFunctionalities < 1 {
		errs = append(errs, fmt.Errorf("IDEEFASE_MIN_FUNCTIONALITIES must be at least 1, got %d", c.MinFunctionalities))
	}
	errs = append(errs, checkRange("roles", c.MinRoles, c.MaxRoles))
	errs = append(errs, checkRange("backend entities", c.BackendMinEntities, c.BackendMaxEntities))
	errs = append(errs, checkRange("fullstack entities", c.FullstackMinEntities, c.FullstackMaxEntities))
	errs = append(errs, checkRange("frontend entities", c.FrontendMinEntities, c.FrontendMaxEntities))
	if c.ToastDuration <= 0 {
		errs = append(errs, fmt.Errorf("IDEEFASE_TOAST_DURATION must be positive, got %s", c.ToastDuration))
	}
	return errors.Join(errs...)
}

func checkRange(name string, min, max int) error {
	if min < 1 {
		return fmt.Errorf("%s: minimum must be at least 1, got %d", name, min)
	}
	if min > max {
		return fmt.Errorf("%s: minimum %d exceeds maximum %d", name, min, max)
	}
	return nil
}

// Rules converts the thresholds into evaluation rules.
func (c Config) Rules() domain.Rules {
	return domain.Rules{
		MinFunctionalities: c.MinFunctionalities,
		MinRoles:           c.MinRoles,
		MaxRoles:           c.MaxRoles,
		Entities: map[domain.Variant]domain.EntityBounds{
			domain.VariantBackend:   {Min: c.BackendMinEntities, Max: c.BackendMaxEntities},
			domain.VariantFullstack: {Min: c.FullstackMinEntities, Max: c.FullstackMaxEntities},
			domain.VariantFrontend:  {Min: c.FrontendMinEntities, Max: c.FrontendMaxEntities},
		},
	}
}

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

const (
	// ProjectConfigFile is the name of the project-level config file
	ProjectConfigFile = "stationgraph.yaml"
	// EnvFile holds local environment overrides, usually credentials
	EnvFile = ".env"
)

// Environment variables read by the loader.
const (
	EnvAppID          = "TFL_APP_ID"
	EnvAppKey         = "TFL_APP_KEY"
	EnvFacilitiesURL  = "STATIONGRAPH_FACILITIES_URL"
	EnvStepFreeURL    = "STATIONGRAPH_STEP_FREE_URL"
	EnvHTTPTimeout    = "STATIONGRAPH_HTTP_TIMEOUT"
	EnvOutXML         = "STATIONGRAPH_OUT_XML"
	EnvOutRDF         = "STATIONGRAPH_OUT_RDF"
	EnvRDFFormat      = "STATIONGRAPH_RDF_FORMAT"
	EnvMetricsFile    = "STATIONGRAPH_METRICS_FILE"
	EnvLogLevel       = "STATIONGRAPH_LOG_LEVEL"
	EnvDeriveUnmapped = "STATIONGRAPH_DERIVE_UNMAPPED"
)

// Loader handles configuration loading with layered precedence
type Loader struct {
	logger *slog.Logger

	// dir is where the project config search starts (cwd when empty)
	dir string
	// lookupEnv reads the process environment
	lookupEnv func(string) (string, bool)
}

// NewLoader creates a new configuration loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger, lookupEnv: os.LookupEnv}
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. Explicit config file, or stationgraph.yaml in current or parent directories
// 3. Environment variables, with .env supplying values the process lacks
//
// Command line flags are applied by the caller on top of the result.
func (l *Loader) Load(explicitPath string) (*Config, error) {
	config := DefaultConfig()

	path := explicitPath
	if path == "" {
		path = l.findProjectConfig()
	}
	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("Loaded config file", slog.String("path", path))
		config = fileConfig
	} else {
		l.logger.Debug("No project config found")
	}

	config.Merge(l.envConfig(l.dotEnv(path)))

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// dotEnv reads the .env file next to the config file, falling back to the
// search directory. A missing file yields an empty map.
func (l *Loader) dotEnv(configPath string) map[string]string {
	dir := l.startDir()
	if configPath != "" {
		dir = filepath.Dir(configPath)
	}
	path := filepath.Join(dir, EnvFile)

	values, err := godotenv.Read(path)
	if err != nil {
		if !os.IsNotExist(err) {
			l.logger.Warn("Failed to read env file", slog.String("path", path), slog.String("error", err.Error()))
		}
		return nil
	}
	l.logger.Debug("Loaded env file", slog.String("path", path))
	return values
}

// envConfig builds the overrides found in the environment. Process
// variables win over the .env file.
func (l *Loader) envConfig(dotEnv map[string]string) *Config {
	get := func(key string) string {
		if v, ok := l.lookupEnv(key); ok {
			return v
		}
		return dotEnv[key]
	}

	env := &Config{}
	env.Credentials.AppID = get(EnvAppID)
	env.Credentials.AppKey = get(EnvAppKey)
	env.Feeds.Facilities.URL = get(EnvFacilitiesURL)
	env.Feeds.StepFree.URL = get(EnvStepFreeURL)
	env.Output.XML = get(EnvOutXML)
	env.Output.RDF = get(EnvOutRDF)
	env.Output.RDFFormat = get(EnvRDFFormat)
	env.Output.MetricsFile = get(EnvMetricsFile)
	env.LogLevel = get(EnvLogLevel)

	if v := get(EnvHTTPTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			env.HTTP.Timeout = d
		} else {
			l.logger.Warn("Ignoring invalid timeout", slog.String("var", EnvHTTPTimeout), slog.String("value", v))
		}
	}
	switch get(EnvDeriveUnmapped) {
	case "1", "true", "yes":
		env.Vocabulary.DeriveUnmapped = true
	}

	return env
}

func (l *Loader) startDir() string {
	if l.dir != "" {
		return l.dir
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

// findProjectConfig searches for stationgraph.yaml in the start directory
// and its parents
func (l *Loader) findProjectConfig() string {
	dir := l.startDir()
	for {
		configPath := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// Package config provides configuration loading and management for
// stationgraph.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/stationgraph/source"
)

// Default feed locations.
const (
	FacilitiesURL = "https://data.tfl.gov.uk/tfl/syndication/feeds/stations-facilities.xml"
	StepFreeURL   = "https://tfl.gov.uk/tfl/syndication/feeds/step-free-tube-guide.xml"
)

// Config represents the complete stationgraph configuration
type Config struct {
	Feeds       FeedsConfig       `yaml:"feeds"`
	Credentials CredentialsConfig `yaml:"credentials"`
	HTTP        HTTPConfig        `yaml:"http"`
	Vocabulary  VocabularyConfig  `yaml:"vocabulary"`
	Output      OutputConfig      `yaml:"output"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`
}

// FeedsConfig configures the two source feeds
type FeedsConfig struct {
	// Facilities is the secondary feed merged into the step-free stations
	Facilities FeedConfig `yaml:"facilities"`
	// StepFree is the primary feed; its stations drive the output
	StepFree FeedConfig `yaml:"step_free"`
}

// FeedConfig configures one XML feed
type FeedConfig struct {
	URL string `yaml:"url"`
	// Authenticated adds the app_id/app_key credentials as query parameters
	Authenticated bool `yaml:"authenticated"`
	// NamePath selects the station name elements used for matching
	NamePath string `yaml:"name_path"`
	// PartialFile is where the pruned feed is written when partial files are stored
	PartialFile string       `yaml:"partial_file"`
	Prune       []PruneRule `yaml:"prune"`
}

// PruneRule removes matching elements from a feed before merging
type PruneRule struct {
	// Pattern is a doublestar glob over the slash-joined tag path
	Pattern string `yaml:"pattern"`
	// Text, when set, must equal the element's trimmed text
	Text string `yaml:"text,omitempty"`
}

// CredentialsConfig holds the TfL open data credentials
type CredentialsConfig struct {
	AppID  string `yaml:"app_id"`
	AppKey string `yaml:"app_key"`
}

// HTTPConfig configures feed downloads
type HTTPConfig struct {
	// Timeout bounds each request (0 disables it)
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

// VocabularyConfig controls predicate resolution
type VocabularyConfig struct {
	// DeriveUnmapped invents tfl:has<Name> predicates for names missing from
	// the mapping tables instead of skipping them
	DeriveUnmapped bool `yaml:"derive_unmapped"`
}

// OutputConfig configures generated files
type OutputConfig struct {
	XML string `yaml:"xml"`
	RDF string `yaml:"rdf"`
	// RDFFormat is one of rdfxml, ntriples, turtle
	RDFFormat string `yaml:"rdf_format"`
	// StorePartialFiles writes the pruned feeds next to the merged file
	StorePartialFiles bool `yaml:"store_partial_files"`
	// MetricsFile receives run metrics in Prometheus text format (empty = off)
	MetricsFile string `yaml:"metrics_file"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Feeds: FeedsConfig{
			Facilities: FeedConfig{
				URL:           FacilitiesURL,
				Authenticated: true,
				NamePath:      "//station/name",
				PartialFile:   "StationFacilitiesNOH.xml",
				Prune:         []PruneRule{{Pattern: "**/openingHours"}},
			},
			StepFree: FeedConfig{
				URL:         StepFreeURL,
				NamePath:    "//Station/StationName",
				PartialFile: "StepFreeTubeNNone.xml",
				Prune:       []PruneRule{{Pattern: "**/AccessibilityType", Text: "None"}},
			},
		},
		HTTP: HTTPConfig{
			Timeout:   60 * time.Second,
			UserAgent: "stationgraph",
		},
		Output: OutputConfig{
			XML:               "final.xml",
			RDF:               "final.rdf",
			RDFFormat:         "rdfxml",
			StorePartialFiles: true,
		},
		LogLevel: "info",
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	feeds := []struct {
		name string
		feed FeedConfig
	}{
		{"feeds.facilities", c.Feeds.Facilities},
		{"feeds.step_free", c.Feeds.StepFree},
	}
	for _, f := range feeds {
		if err := f.feed.validate(); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
	}

	if c.HTTP.Timeout < 0 {
		return fmt.Errorf("http.timeout must not be negative")
	}
	if c.Output.XML == "" {
		return fmt.Errorf("output.xml is required")
	}
	if c.Output.RDF == "" {
		return fmt.Errorf("output.rdf is required")
	}
	switch c.Output.RDFFormat {
	case "rdfxml", "ntriples", "turtle":
	default:
		return fmt.Errorf("output.rdf_format %q must be one of rdfxml, ntriples, turtle", c.Output.RDFFormat)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q must be one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}

func (f FeedConfig) validate() error {
	u, err := url.Parse(f.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url %q must be http or https", f.URL)
	}
	if f.NamePath == "" {
		return fmt.Errorf("name_path is required")
	}
	for _, r := range f.PruneRules() {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// PruneRules converts the configured rules for the source package.
func (f FeedConfig) PruneRules() []source.Rule {
	rules := make([]source.Rule, 0, len(f.Prune))
	for _, r := range f.Prune {
		rules = append(rules, source.Rule{Pattern: r.Pattern, Text: r.Text})
	}
	return rules
}

// Query returns the credential query parameters for the feed, or nil when
// the feed is anonymous or no credentials are configured.
func (c *Config) Query(f FeedConfig) map[string]string {
	if !f.Authenticated || (c.Credentials.AppID == "" && c.Credentials.AppKey == "") {
		return nil
	}
	return map[string]string{
		"app_id":  c.Credentials.AppID,
		"app_key": c.Credentials.AppKey,
	}
}

// LoadFromFile loads configuration from a YAML file. Keys absent from the
// file keep their default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Credentials may be present, keep the file private.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values). Booleans are only ever switched on.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Feeds
	mergeFeed(&c.Feeds.Facilities, other.Feeds.Facilities)
	mergeFeed(&c.Feeds.StepFree, other.Feeds.StepFree)

	// Credentials
	if other.Credentials.AppID != "" {
		c.Credentials.AppID = other.Credentials.AppID
	}
	if other.Credentials.AppKey != "" {
		c.Credentials.AppKey = other.Credentials.AppKey
	}

	// HTTP
	if other.HTTP.Timeout != 0 {
		c.HTTP.Timeout = other.HTTP.Timeout
	}
	if other.HTTP.UserAgent != "" {
		c.HTTP.UserAgent = other.HTTP.UserAgent
	}

	// Vocabulary
	if other.Vocabulary.DeriveUnmapped {
		c.Vocabulary.DeriveUnmapped = true
	}

	// Output
	if other.Output.XML != "" {
		c.Output.XML = other.Output.XML
	}
	if other.Output.RDF != "" {
		c.Output.RDF = other.Output.RDF
	}
	if other.Output.RDFFormat != "" {
		c.Output.RDFFormat = other.Output.RDFFormat
	}
	if other.Output.StorePartialFiles {
		c.Output.StorePartialFiles = true
	}
	if other.Output.MetricsFile != "" {
		c.Output.MetricsFile = other.Output.MetricsFile
	}

	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
}

func mergeFeed(dst *FeedConfig, src FeedConfig) {
	if src.URL != "" {
		dst.URL = src.URL
	}
	if src.Authenticated {
		dst.Authenticated = true
	}
	if src.NamePath != "" {
		dst.NamePath = src.NamePath
	}
	if src.PartialFile != "" {
		dst.PartialFile = src.PartialFile
	}
	if len(src.Prune) > 0 {
		dst.Prune = src.Prune
	}
}

// Configuration is loaded from a yaml file, by default config.yaml in the working directory.
// Keys that are absent from the file keep their defaults. The returned LoadResult tells the caller
// whether the file was complete, so it can decide for itself whether to carry on.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

type (
	Application struct {
		Environment    string               `yaml:"environment"`
		Authentication AuthenticationConfig `yaml:"authentication"`
		Webhook        WebhookConfig        `yaml:"webhook"`
		Onboarding     OnboardingConfig     `yaml:"onboarding"`
		RoutingNumber  string               `yaml:"routing_number"`
		LogLevel       string               `yaml:"log_level"`
		Api            ApiConfig            `yaml:"api"`
		Database       DatabaseConfig       `yaml:"database"`
	}

	AuthenticationConfig struct {
		ProcessorApiKey string `yaml:"processor_api_key"`
		VendorApiKey    string `yaml:"vendor_api_key"`
	}

	WebhookConfig struct {
		Url    string       `yaml:"url"`
		Listen ListenConfig `yaml:"listen"`
	}

	// ListenConfig configures the local receiver started by webhook:listen.
	ListenConfig struct {
		BaseAddress  string `yaml:"address"`
		Port         int    `yaml:"port"`
		Token        string `yaml:"token"`
		ReadTimeout  int    `yaml:"read_timeout_seconds"`
		WriteTimeout int    `yaml:"write_timeout_seconds"`
		IdleTimeout  int    `yaml:"idle_timeout_seconds"`
	}

	OnboardingConfig struct {
		Kyb bool `yaml:"kyb"`
	}

	ApiConfig struct {
		// BaseUrl replaces the url selected by Environment, mostly useful against a local simulator.
		BaseUrl        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	}

	DatabaseConfig struct {
		Use        DatabaseType `yaml:"use"`
		Username   string       `yaml:"username"`
		Password   string       `yaml:"password"`
		Database   string       `yaml:"database"`
		Parameters []string     `yaml:"parameters"`
	}
)

type DatabaseType string

const (
	Mysql    DatabaseType = "mysql"
	Inmemory DatabaseType = "inmemory"
)

const (
	EnvironmentSandbox    = "sandbox"
	EnvironmentProduction = "production"
)

const DefaultFilename = "config.yaml"

// Completeness describes how much of the configuration actually came from the file.
type Completeness int

const (
	// Complete means every required key was present.
	Complete Completeness = iota
	// Partial means the file was read but some required keys were absent and kept their defaults.
	Partial
	// Defaulted means there was no file at all.
	Defaulted
)

func (c Completeness) String() string {
	switch c {
	case Complete:
		return "complete"
	case Partial:
		return "partial"
	case Defaulted:
		return "defaulted"
	}
	return "unknown"
}

type LoadResult struct {
	Config       *Application
	Completeness Completeness
	// Missing lists the required keys (dotted yaml paths) that were not set, sorted.
	Missing []string
}

// requiredKeys are the keys every usable configuration file sets.
var requiredKeys = []string{
	"environment",
	"authentication.processor_api_key",
	"authentication.vendor_api_key",
	"webhook.url",
	"onboarding.kyb",
	"routing_number",
	"log_level",
}

func Default() *Application {
	return &Application{
		Environment: EnvironmentSandbox,
		LogLevel:    "INFO",
		Webhook: WebhookConfig{
			Listen: ListenConfig{
				Port:         8080,
				ReadTimeout:  30,
				WriteTimeout: 30,
				IdleTimeout:  120,
			},
		},
		Api: ApiConfig{
			TimeoutSeconds: 30,
		},
		Database: DatabaseConfig{
			Use: Inmemory,
		},
	}
}

// UnmarshalFromYamlConfiguration decodes a configuration on top of the defaults.
//
// Unknown keys are rejected so typos do not go unnoticed.
func UnmarshalFromYamlConfiguration(r io.Reader) (*Application, error) {
	conf := Default()

	d := yaml.NewDecoder(r)
	d.KnownFields(true)

	if err := d.Decode(conf); err != nil {
		if errors.Is(err, io.EOF) {
			// an empty file is not an error, it just sets nothing
			return conf, nil
		}
		return nil, err
	}

	return conf, nil
}

// Load reads the configuration file and applies environment overrides.
//
// A missing file is not an error, it yields the defaults with Completeness Defaulted.
// A file that cannot be parsed is an error.
func Load(filename string) (LoadResult, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			conf := Default()
			overridden := applyEnvironmentOverrides(conf)
			return LoadResult{
				Config:       conf,
				Completeness: Defaulted,
				Missing:      subtract(requiredKeys, overridden),
			}, nil
		}
		return LoadResult{}, fmt.Errorf("failed to read configuration file %s: %w", filename, err)
	}

	conf, err := UnmarshalFromYamlConfiguration(bytes.NewReader(data))
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to parse configuration file %s: %w", filename, err)
	}

	missing, err := missingKeys(data)
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to parse configuration file %s: %w", filename, err)
	}

	overridden := applyEnvironmentOverrides(conf)
	missing = subtract(missing, overridden)

	result := LoadResult{
		Config:       conf,
		Completeness: Complete,
		Missing:      missing,
	}
	if len(missing) > 0 {
		result.Completeness = Partial
	}
	return result, nil
}

func missingKeys(data []byte) ([]string, error) {
	raw := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	missing := make([]string, 0)
	for _, key := range requiredKeys {
		if !hasKey(raw, key) {
			missing = append(missing, key)
		}
	}
	return missing, nil
}

func hasKey(raw map[string]interface{}, dotted string) bool {
	var current interface{} = raw
	for _, part := range strings.Split(dotted, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return false
		}
		current, ok = m[part]
		if !ok || current == nil {
			return false
		}
	}
	return true
}

func subtract(keys []string, remove []string) []string {
	result := make([]string, 0, len(keys))
	for _, k := range keys {
		if !sliceContains(remove, k) {
			result = append(result, k)
		}
	}
	sort.Strings(result)
	return result
}

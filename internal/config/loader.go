package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/25smoking/heatdot/internal/embedded"
)

// DefaultName is the config file looked up under config/ and in the
// embedded defaults.
const DefaultName = "heatdot.yaml"

var validate = validator.New()

type Settings struct {
	Paths  PathSettings   `yaml:"paths"`
	Report ReportSettings `yaml:"report"`
}

type PathSettings struct {
	Graph  string `yaml:"graph" validate:"required"`
	Log    string `yaml:"log" validate:"required"`
	Output string `yaml:"output" validate:"required,nefield=Graph,nefield=Log"`
}

type ReportSettings struct {
	Summary string `yaml:"summary"`
	Metrics string `yaml:"metrics"`
}

func loadConfigData(configPath string) ([]byte, error) {
	// An explicit path must exist.
	if configPath != "" {
		return os.ReadFile(configPath)
	}

	if data, err := os.ReadFile(GetConfigPath(DefaultName)); err == nil {
		return data, nil
	}

	// embed always uses forward slashes
	return embedded.Content.ReadFile("config/" + DefaultName)
}

// Load reads the settings from configPath, or from config/heatdot.yaml, or
// from the embedded defaults, in that order. Keys missing from a file keep
// their default value.
func Load(configPath string) (*Settings, error) {
	settings, err := Defaults()
	if err != nil {
		return nil, err
	}

	data, err := loadConfigData(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	settings.Normalize()

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Defaults returns the embedded default settings.
func Defaults() (*Settings, error) {
	data, err := embedded.Content.ReadFile("config/" + DefaultName)
	if err != nil {
		return nil, fmt.Errorf("failed to read default config: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse default config: %w", err)
	}
	return &settings, nil
}

// Normalize cleans every configured path so that two spellings of the same
// file compare equal. Empty paths stay empty.
func (s *Settings) Normalize() {
	for _, p := range []*string{&s.Paths.Graph, &s.Paths.Log, &s.Paths.Output, &s.Report.Summary, &s.Report.Metrics} {
		if *p != "" {
			*p = filepath.Clean(*p)
		}
	}
}

// Validate checks that every path is set and that the output does not
// overwrite an input.
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s failed %q check", fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// GetConfigPath returns the first existing candidate location of filename.
func GetConfigPath(filename string) string {
	candidates := []string{
		filepath.Join("config", filename),
		filepath.Join("..", "config", filename),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return candidates[0]
}

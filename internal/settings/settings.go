package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"weather-cli/internal/models"
)

const DefaultPath = "config.yaml"

// Settings is the user-facing record persisted between runs. It is
// separate from the ambient config package: this file belongs to the
// user, the environment belongs to the deployment.
type Settings struct {
	APIKey    string  `yaml:"api_key"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Units     string  `yaml:"units"`
}

func Default() Settings {
	return Settings{
		APIKey:    "",
		Latitude:  0,
		Longitude: 0,
		Units:     "imperial",
	}
}

// Store reads and writes the settings file at a fixed path.
type Store struct {
	Path string
}

func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{Path: path}
}

// requiredKeys is the shape check applied on load: every key must be
// present, extra keys are ignored.
var requiredKeys = []string{"api_key", "latitude", "longitude", "units"}

// LoadOrCreate reads the settings file, or writes and returns the
// default record when no file exists yet. The boolean reports whether
// the file was created on this call.
func (s *Store) LoadOrCreate() (Settings, bool, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		def := Default()
		if saveErr := s.Save(def); saveErr != nil {
			return Settings{}, false, saveErr
		}
		return def, true, nil
	}
	if err != nil {
		return Settings{}, false, fmt.Errorf("%w: read %s: %v", models.ErrIO, s.Path, err)
	}

	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Settings{}, false, fmt.Errorf("%w: %s is not valid YAML: %v", models.ErrParse, s.Path, err)
	}
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			return Settings{}, false, fmt.Errorf("%w: %s is missing key %q", models.ErrParse, s.Path, key)
		}
	}

	var st Settings
	if err := yaml.Unmarshal(data, &st); err != nil {
		return Settings{}, false, fmt.Errorf("%w: %s: %v", models.ErrParse, s.Path, err)
	}

	return st, false, nil
}

// Save overwrites the settings file in place (truncate and write).
func (s *Store) Save(st Settings) error {
	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("%w: marshal settings: %v", models.ErrIO, err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", models.ErrIO, s.Path, err)
	}
	return nil
}

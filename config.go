package visaletter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Organization identifies the issuing organization on the letterhead.
type Organization struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Website string `yaml:"website"`
	Email   string `yaml:"email"`
}

// Signer identifies the conference official who signs the letter.
type Signer struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	ContactInfo string `yaml:"contact_info"`
}

// ConferenceConfig holds the conference-level fields shared by every letter
// of a run. It is loaded once and not mutated afterwards.
type ConferenceConfig struct {
	ConferenceName      string       `yaml:"conference_name"`
	ConferenceStartDate string       `yaml:"conference_start_date"`
	ConferenceEndDate   string       `yaml:"conference_end_date"`
	ConferenceLocation  string       `yaml:"conference_location"`
	ConferenceInfo      string       `yaml:"conference_info"`
	ConferenceContact   string       `yaml:"conference_contact"`
	Organization        Organization `yaml:"organization"`
	Signer              Signer       `yaml:"signer"`
}

// LoadConfig reads and parses the conference configuration YAML.
func LoadConfig(path string) (*ConferenceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg ConferenceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	return &cfg, nil
}

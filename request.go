package visaletter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ApplicantRequest holds the per-applicant fields of one letter.
type ApplicantRequest struct {
	FullNamePassport string `yaml:"full_name_passport"`
	DateOfBirth      string `yaml:"date_of_birth"`
	Nationality      string `yaml:"nationality"`
	PassportNumber   string `yaml:"passport_number"`
	Gender           string `yaml:"gender"`
	Address          string `yaml:"address"`
	EmbassyName      string `yaml:"embassy_name"`
	EmbassyAddress   string `yaml:"embassy_address"`
	StayAt           string `yaml:"stay_at"`
	Contact          string `yaml:"contact"`
	EntryDate        string `yaml:"entry_date"`
	ExitDate         string `yaml:"exit_date"`
	IsSpeaker        bool   `yaml:"is_speaker"`
	ExtraText        string `yaml:"extra_text"`

	Accommodations bool `yaml:"pgeu_accommodations"`
	// Misspelled key kept for compatibility with older request files.
	AccommodationsCompat bool `yaml:"pgeu_accomodations"`
}

// AccommodationsCovered reports whether the organizers cover accommodation,
// accepting both spellings of the YAML key.
func (r *ApplicantRequest) AccommodationsCovered() bool {
	return r.Accommodations || r.AccommodationsCompat
}

// LoadRequest reads and parses a per-applicant request YAML.
func LoadRequest(path string) (*ApplicantRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read request: %w", err)
	}
	var req ApplicantRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	return &req, nil
}

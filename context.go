package visaletter

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Context is the flat mapping consumed by the letter template. Every key the
// default template references is guaranteed present after BuildContext.
type Context map[string]any

type pronounSet struct {
	subject    string
	object     string
	possessive string
}

// pronounsFor selects the pronoun family for a gender value. Absent or
// unrecognized values fall back to the neutral family.
func pronounsFor(gender string) pronounSet {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "male", "m", "man":
		return pronounSet{subject: "he", object: "him", possessive: "his"}
	case "female", "f", "woman":
		return pronounSet{subject: "she", object: "her", possessive: "her"}
	default:
		return pronounSet{subject: "they", object: "them", possessive: "their"}
	}
}

func titleCase(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}

// BuildContext merges the conference configuration and the applicant request
// into the render context, checking required fields, applying defaults, and
// deriving formatted dates and pronoun tokens. letterDate becomes the date
// printed on the letter.
func BuildContext(cfg *ConferenceConfig, req *ApplicantRequest, letterDate time.Time) (Context, error) {
	required := []struct {
		key   string
		value string
	}{
		{"full_name_passport", req.FullNamePassport},
		{"date_of_birth", req.DateOfBirth},
		{"passport_number", req.PassportNumber},
		{"nationality", req.Nationality},
		{"address", req.Address},
		{"embassy_name", req.EmbassyName},
		{"embassy_address", req.EmbassyAddress},
		{"stay_at", req.StayAt},
		{"contact", req.Contact},
		{"entry_date", req.EntryDate},
		{"exit_date", req.ExitDate},
		{"conference_name", cfg.ConferenceName},
		{"conference_start_date", cfg.ConferenceStartDate},
		{"conference_end_date", cfg.ConferenceEndDate},
		{"conference_location", cfg.ConferenceLocation},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, f.key)
		}
	}

	dob, err := ParseDate("date_of_birth", req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	entry, err := ParseDate("entry_date", req.EntryDate)
	if err != nil {
		return nil, err
	}
	exit, err := ParseDate("exit_date", req.ExitDate)
	if err != nil {
		return nil, err
	}
	confStart, err := ParseDate("conference_start_date", cfg.ConferenceStartDate)
	if err != nil {
		return nil, err
	}
	confEnd, err := ParseDate("conference_end_date", cfg.ConferenceEndDate)
	if err != nil {
		return nil, err
	}

	p := pronounsFor(req.Gender)
	return Context{
		"full_name_passport":  req.FullNamePassport,
		"date_of_birth":       formatShort(dob),
		"nationality":         req.Nationality,
		"passport_number":     req.PassportNumber,
		"gender":              req.Gender,
		"address":             req.Address,
		"embassy_name":        req.EmbassyName,
		"embassy_address":     req.EmbassyAddress,
		"stay_at":             req.StayAt,
		"contact":             req.Contact,
		"entry_date":          formatShort(entry),
		"exit_date":           formatShort(exit),
		"is_speaker":          req.IsSpeaker,
		"pgeu_accommodations": req.AccommodationsCovered(),
		"extra_text":          req.ExtraText,

		"conference_name":       cfg.ConferenceName,
		"conference_location":   cfg.ConferenceLocation,
		"conference_start_date": formatLong(confStart),
		"conference_end_date":   formatLong(confEnd),
		"conference_dates":      formatRange(confStart, confEnd),
		"conference_info":       cfg.ConferenceInfo,
		"conference_contact":    cfg.ConferenceContact,
		"letter_date":           formatLong(letterDate),

		"signer_name":         cfg.Signer.Name,
		"signer_title":        cfg.Signer.Title,
		"signer_contact_info": cfg.Signer.ContactInfo,

		"pronoun_subject":       p.subject,
		"pronoun_subject_title": titleCase(p.subject),
		"pronoun_object":        p.object,
		"pronoun_possessive":    p.possessive,
	}, nil
}

package visaletter

import (
	"errors"
	"testing"
)

func TestLoadRequest(t *testing.T) {
	path := writeTemp(t, "JohnDoe.yaml", `
full_name_passport: "John Q. Doe"
date_of_birth: "1988-04-02"
nationality: "Examplandian"
passport_number: "X1234567"
gender: "male"
address: "12 Example Street"
embassy_name: "Embassy of Portugal"
embassy_address: |
  1 Consular Avenue
  Exampleville
stay_at: "Hotel Lisboa"
contact: "+351 900 000 000"
entry_date: "2026-10-19"
exit_date: "2026-10-24"
is_speaker: true
`)
	req, err := LoadRequest(path)
	if err != nil {
		t.Fatalf("LoadRequest: %v", err)
	}
	if req.FullNamePassport != "John Q. Doe" {
		t.Fatalf("FullNamePassport = %q", req.FullNamePassport)
	}
	if !req.IsSpeaker {
		t.Fatalf("IsSpeaker = false, want true")
	}
	if req.AccommodationsCovered() {
		t.Fatalf("AccommodationsCovered = true, want false")
	}
}

func TestLoadRequestAccommodationsAlias(t *testing.T) {
	path := writeTemp(t, "alias.yaml", "pgeu_accomodations: true\n")
	req, err := LoadRequest(path)
	if err != nil {
		t.Fatalf("LoadRequest: %v", err)
	}
	if !req.AccommodationsCovered() {
		t.Fatalf("AccommodationsCovered = false, want true via misspelled key")
	}
}

func TestLoadRequestMalformed(t *testing.T) {
	path := writeTemp(t, "bad.yaml", "full_name_passport: [oops\n  nope")
	_, err := LoadRequest(path)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("LoadRequest error = %v, want ErrParse", err)
	}
}

package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

const testConfigYAML = `conference_name: "PGConf Europe 2026"
conference_start_date: "2026-10-20"
conference_end_date: "2026-10-23"
conference_location: "Lisbon, Portugal"
conference_contact: "secretary@example.org"
organization:
  name: "PostgreSQL Europe"
  address: |
    61, rue de Lyon
    75012 Paris
signer:
  name: "Jane Example"
  title: "Conference Secretary"
`

const testRequestYAML = `full_name_passport: "John Q. Doe"
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
`

func setupWorkdir(t *testing.T, requestYAML string) {
	t.Helper()
	t.Chdir(t.TempDir())
	if err := os.WriteFile("conference.yaml", []byte(testConfigYAML), 0o644); err != nil {
		t.Fatalf("write conference.yaml: %v", err)
	}
	if err := os.WriteFile("JohnDoe.yaml", []byte(requestYAML), 0o644); err != nil {
		t.Fatalf("write JohnDoe.yaml: %v", err)
	}
}

func TestDeriveOutput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"JohnDoe.yaml", "JohnDoe.pdf"},
		{"requests/JohnDoe.yaml", "JohnDoe.pdf"},
		{"/abs/path/JaneRoe.yml", "JaneRoe.pdf"},
		{"noext", "noext.pdf"},
	}
	for _, tt := range tests {
		if got := deriveOutput(tt.in); got != tt.want {
			t.Fatalf("deriveOutput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRunGeneratesPDF(t *testing.T) {
	setupWorkdir(t, testRequestYAML)
	var stdout, stderr bytes.Buffer
	code := run([]string{"--date", "2026-05-01", "JohnDoe.yaml"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run = %d, stderr: %s", code, stderr.String())
	}
	data, err := os.ReadFile("JohnDoe.pdf")
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestRunIdempotent(t *testing.T) {
	setupWorkdir(t, testRequestYAML)
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--date", "2026-05-01", "JohnDoe.yaml"}, &stdout, &stderr); code != 0 {
		t.Fatalf("first run = %d, stderr: %s", code, stderr.String())
	}
	first, err := os.ReadFile("JohnDoe.pdf")
	if err != nil {
		t.Fatalf("read first output: %v", err)
	}
	if code := run([]string{"--date", "2026-05-01", "JohnDoe.yaml"}, &stdout, &stderr); code != 0 {
		t.Fatalf("second run = %d, stderr: %s", code, stderr.String())
	}
	second, err := os.ReadFile("JohnDoe.pdf")
	if err != nil {
		t.Fatalf("read second output: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("runs differ: %d vs %d bytes", len(first), len(second))
	}
}

func TestRunMissingField(t *testing.T) {
	request := strings.ReplaceAll(testRequestYAML, "passport_number: \"X1234567\"\n", "")
	setupWorkdir(t, request)
	var stdout, stderr bytes.Buffer
	code := run([]string{"--date", "2026-05-01", "JohnDoe.yaml"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "passport_number") {
		t.Fatalf("stderr %q does not name passport_number", stderr.String())
	}
	if _, err := os.Stat("JohnDoe.pdf"); !os.IsNotExist(err) {
		t.Fatalf("PDF written despite missing field")
	}
}

func TestRunInvalidDate(t *testing.T) {
	request := strings.ReplaceAll(testRequestYAML, "2026-10-19", "19/10/2026")
	setupWorkdir(t, request)
	var stdout, stderr bytes.Buffer
	code := run([]string{"--date", "2026-05-01", "JohnDoe.yaml"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "YYYY-MM-DD") {
		t.Fatalf("stderr %q does not explain the expected layout", stderr.String())
	}
	if _, err := os.Stat("JohnDoe.pdf"); !os.IsNotExist(err) {
		t.Fatalf("PDF written despite invalid date")
	}
}

func TestRunPreview(t *testing.T) {
	setupWorkdir(t, testRequestYAML)
	var stdout, stderr bytes.Buffer
	code := run([]string{"--preview", "--date", "2026-05-01", "JohnDoe.yaml"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "John Q. Doe") {
		t.Fatalf("preview missing applicant name:\n%s", stdout.String())
	}
	if _, err := os.Stat("JohnDoe.pdf"); !os.IsNotExist(err) {
		t.Fatalf("PDF written in preview mode")
	}
}

func TestRunUsageError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 2 {
		t.Fatalf("run with no args = %d, want 2", code)
	}
	if code := run([]string{"a.yaml", "b.yaml"}, &stdout, &stderr); code != 2 {
		t.Fatalf("run with two args = %d, want 2", code)
	}
}

func TestRunStdoutPDF(t *testing.T) {
	setupWorkdir(t, testRequestYAML)
	var stdout, stderr bytes.Buffer
	code := run([]string{"-o", "-", "--date", "2026-05-01", "JohnDoe.yaml"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run = %d, stderr: %s", code, stderr.String())
	}
	if !bytes.HasPrefix(stdout.Bytes(), []byte("%PDF-")) {
		t.Fatalf("stdout is not a PDF")
	}
}

func TestRunInit(t *testing.T) {
	t.Chdir(t.TempDir())
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--init"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run --init = %d, stderr: %s", code, stderr.String())
	}
	for _, name := range []string{"conference.yaml", "request.sample.yaml"} {
		if _, err := os.Stat(name); err != nil {
			t.Fatalf("missing sample %s: %v", name, err)
		}
	}
	if code := run([]string{"--init"}, &stdout, &stderr); code != 1 {
		t.Fatalf("second --init = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "already exists") {
		t.Fatalf("stderr %q does not mention existing file", stderr.String())
	}
}

func TestRunInitLeavesNoPartialSamples(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.WriteFile("request.sample.yaml", []byte("keep: me\n"), 0o644); err != nil {
		t.Fatalf("write request.sample.yaml: %v", err)
	}
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--init"}, &stdout, &stderr); code != 1 {
		t.Fatalf("run --init = %d, want 1", code)
	}
	if _, err := os.Stat("conference.yaml"); !os.IsNotExist(err) {
		t.Fatalf("conference.yaml left behind after failed init")
	}
	data, err := os.ReadFile("request.sample.yaml")
	if err != nil || string(data) != "keep: me\n" {
		t.Fatalf("pre-existing request.sample.yaml modified: %q, %v", data, err)
	}
}

package visaletter

import (
	"strings"
	"time"
)

// Letter is the fully composed document handed to the layout stage.
type Letter struct {
	Organization   Organization
	EmbassyName    string
	EmbassyAddress []string
	Date           string
	Paragraphs     []string
	Contact        string
}

// ComposeLetter assembles the rendered body and the surrounding letterhead
// into a Letter. Paragraphs are split on blank lines; one of them may carry
// the SignatureMarker.
func ComposeLetter(cfg *ConferenceConfig, req *ApplicantRequest, body string, letterDate time.Time) Letter {
	return Letter{
		Organization:   cfg.Organization,
		EmbassyName:    req.EmbassyName,
		EmbassyAddress: splitLines(req.EmbassyAddress),
		Date:           formatLong(letterDate),
		Paragraphs:     splitParagraphs(body),
		Contact:        cfg.ConferenceContact,
	}
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func splitParagraphs(body string) []string {
	var paras []string
	for _, para := range strings.Split(body, "\n\n") {
		para = strings.TrimSpace(para)
		if para != "" {
			paras = append(paras, para)
		}
	}
	return paras
}

package visaletter

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Preview renders the letter as plain text wrapped to width, for terminal
// inspection before generating the PDF. The signature marker is dropped.
func Preview(letter Letter, width int) string {
	if width <= 0 {
		width = 80
	}
	var b strings.Builder
	if letter.Organization.Name != "" {
		b.WriteString(letter.Organization.Name + "\n")
	}
	for _, line := range splitLines(letter.Organization.Address) {
		b.WriteString(line + "\n")
	}
	if letter.Organization.Website != "" {
		b.WriteString("Website: " + letter.Organization.Website + "\n")
	}
	if letter.Organization.Email != "" {
		b.WriteString("Email: " + letter.Organization.Email + "\n")
	}
	b.WriteString("\n")
	b.WriteString(letter.EmbassyName + "\n")
	for _, line := range letter.EmbassyAddress {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + letter.Date + "\n")
	for _, para := range letter.Paragraphs {
		para = strings.TrimSpace(strings.ReplaceAll(para, SignatureMarker, ""))
		if para == "" {
			continue
		}
		b.WriteString("\n" + para + "\n")
	}
	if letter.Contact != "" {
		b.WriteString("\nContact: " + letter.Contact + "\n")
	}
	return wordwrap.String(b.String(), width)
}

package visaletter

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"text/template"
)

// TemplateFile is the well-known template path in the working directory.
// Editing it in place customizes the letter; when it does not exist the
// embedded default is used.
const TemplateFile = "letter_template.tmpl"

// SignatureMarker marks where the signature image is placed in the rendered
// body.
const SignatureMarker = "[SIGNATURE]"

//go:embed letter_template.tmpl
var defaultTemplate string

// LoadTemplate returns the letter template text. An empty path selects
// TemplateFile with the embedded default as fallback; an explicit path must
// exist.
func LoadTemplate(path string) (string, error) {
	explicit := path != ""
	if !explicit {
		path = TemplateFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		return string(data), nil
	case !explicit && errors.Is(err, fs.ErrNotExist):
		return defaultTemplate, nil
	default:
		return "", fmt.Errorf("%w: read template %s: %v", ErrTemplate, path, err)
	}
}

// RenderLetter substitutes the context into the template text and returns the
// letter body. Placeholders referencing keys absent from the context fail
// rather than render empty.
func RenderLetter(tmplText string, ctx Context) (string, error) {
	t, err := template.New("letter").Option("missingkey=error").Parse(tmplText)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplate, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, map[string]any(ctx)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplate, err)
	}
	return normalizeBody(buf.String()), nil
}

// normalizeBody collapses the blank-line runs left behind by skipped
// conditional blocks so paragraphs stay separated by exactly one blank line.
func normalizeBody(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(s)
}

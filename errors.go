package visaletter

import "errors"

var (
	// ErrParse reports malformed YAML input.
	ErrParse = errors.New("malformed yaml")
	// ErrMissingField reports an absent or empty required field.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidDate reports a date not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date")
	// ErrTemplate reports an unreadable template or a failed substitution.
	ErrTemplate = errors.New("template error")
	// ErrPDF reports a layout or output failure while writing the PDF.
	ErrPDF = errors.New("pdf generation failed")
)

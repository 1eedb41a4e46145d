package pdf

import "time"

// Config holds PDF layout settings.
type Config struct {
	PageSize           string
	Margin             float64
	FontFamily         string
	FontSize           float64
	LineHeight         float64
	LogoPath           string
	LogoMaxWidth       float64
	LogoMaxHeight      float64
	SignaturePath      string
	SignatureMaxWidth  float64
	SignatureMaxHeight float64
	// CreationDate pins the embedded creation and modification timestamps
	// so identical inputs produce identical bytes.
	CreationDate time.Time
}

// DefaultConfig returns a baseline configuration. Units are points.
func DefaultConfig() Config {
	return Config{
		PageSize:           "A4",
		Margin:             72,
		FontFamily:         "Helvetica",
		FontSize:           10,
		LineHeight:         1.3,
		LogoMaxWidth:       216,
		LogoMaxHeight:      72,
		SignatureMaxWidth:  162,
		SignatureMaxHeight: 40.5,
	}
}

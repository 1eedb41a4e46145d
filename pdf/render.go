package pdf

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"visaletter"
)

const (
	addressColWidth = 170
	dateColWidth    = 170
	headerGap       = 20
	paragraphGap    = 6
	footerGap       = 14
)

// RenderRequest contains inputs for PDF layout.
type RenderRequest struct {
	Letter visaletter.Letter
	Writer io.Writer
	Config Config
}

// Render lays out the letter and writes the PDF. Logo and signature images
// are included when their files exist and skipped otherwise.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("%w: writer is nil", visaletter.ErrPDF)
	}
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)

	doc := fpdf.New("P", "pt", cfg.PageSize, "")
	doc.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	doc.SetAutoPageBreak(true, cfg.Margin)
	// Sorted resource dictionaries keep identical inputs byte-identical.
	doc.SetCatalogSort(true)
	if !cfg.CreationDate.IsZero() {
		doc.SetCreationDate(cfg.CreationDate)
		doc.SetModificationDate(cfg.CreationDate)
	}
	doc.SetTitle("Visa support letter", true)
	if req.Letter.Organization.Name != "" {
		doc.SetAuthor(req.Letter.Organization.Name, true)
	}
	doc.AddPage()
	doc.SetFont(cfg.FontFamily, "", cfg.FontSize)
	doc.SetTextColor(0, 0, 0)
	if err := doc.Error(); err != nil {
		return fmt.Errorf("%w: font setup: %v", visaletter.ErrPDF, err)
	}
	tr := doc.UnicodeTranslatorFromDescriptor("")
	lineH := cfg.FontSize * cfg.LineHeight
	pageW, _ := doc.GetPageSize()
	contentW := pageW - 2*cfg.Margin
	if contentW < 100 {
		return fmt.Errorf("%w: page too narrow for content", visaletter.ErrPDF)
	}

	logo, err := loadImage(doc, cfg.LogoPath, cfg.LogoMaxWidth, cfg.LogoMaxHeight)
	if err != nil {
		return err
	}
	signature, err := loadImage(doc, cfg.SignaturePath, cfg.SignatureMaxWidth, cfg.SignatureMaxHeight)
	if err != nil {
		return err
	}

	y := renderHeader(doc, tr, cfg, req.Letter.Organization, logo, lineH, pageW)
	y = renderEmbassyRow(doc, tr, cfg, req.Letter, lineH, pageW, y)
	doc.SetY(y)

	for _, para := range req.Letter.Paragraphs {
		if strings.Contains(para, visaletter.SignatureMarker) {
			before, after, _ := strings.Cut(para, visaletter.SignatureMarker)
			writeParagraph(doc, tr, contentW, lineH, before)
			placeImage(doc, cfg.Margin, signature)
			writeParagraph(doc, tr, contentW, lineH, after)
			continue
		}
		writeParagraph(doc, tr, contentW, lineH, para)
	}

	if req.Letter.Contact != "" {
		doc.Ln(footerGap)
		doc.MultiCell(contentW, lineH, tr("Contact: "+req.Letter.Contact), "", "L", false)
	}

	if err := doc.Error(); err != nil {
		return fmt.Errorf("%w: %v", visaletter.ErrPDF, err)
	}
	if err := doc.Output(req.Writer); err != nil {
		return fmt.Errorf("%w: output: %v", visaletter.ErrPDF, err)
	}
	return nil
}

// renderHeader draws the logo in the top-left corner and the organization
// address block in the top-right, returning the y position below both.
func renderHeader(doc *fpdf.Fpdf, tr func(string) string, cfg Config, org visaletter.Organization, logo *placedImage, lineH, pageW float64) float64 {
	y := cfg.Margin
	headerH := 0.0
	if logo != nil {
		doc.ImageOptions(logo.path, cfg.Margin, y, logo.w, logo.h, false, logo.opts, 0, "")
		headerH = logo.h
	}
	lines := orgHeaderLines(org)
	if len(lines) > 0 {
		doc.SetXY(pageW-cfg.Margin-addressColWidth, y)
		for i, line := range lines {
			if i == 0 {
				doc.SetFont(cfg.FontFamily, "B", cfg.FontSize)
			}
			doc.CellFormat(addressColWidth, lineH, tr(line), "", 2, "L", false, 0, "")
			if i == 0 {
				doc.SetFont(cfg.FontFamily, "", cfg.FontSize)
			}
		}
		headerH = math.Max(headerH, float64(len(lines))*lineH)
	}
	if headerH > 0 {
		y += headerH + headerGap
	}
	return y
}

// renderEmbassyRow draws the embassy block on the left and the letter date
// right-aligned at the same height, returning the y position below the row.
func renderEmbassyRow(doc *fpdf.Fpdf, tr func(string) string, cfg Config, letter visaletter.Letter, lineH, pageW, y float64) float64 {
	if letter.Date != "" {
		doc.SetXY(pageW-cfg.Margin-dateColWidth, y)
		doc.CellFormat(dateColWidth, lineH, tr(letter.Date), "", 0, "R", false, 0, "")
	}
	lines := make([]string, 0, len(letter.EmbassyAddress)+1)
	if letter.EmbassyName != "" {
		lines = append(lines, letter.EmbassyName)
	}
	lines = append(lines, letter.EmbassyAddress...)
	doc.SetXY(cfg.Margin, y)
	for _, line := range lines {
		doc.CellFormat(addressColWidth, lineH, tr(line), "", 2, "L", false, 0, "")
	}
	rows := len(lines)
	if rows == 0 && letter.Date != "" {
		rows = 1
	}
	return y + float64(rows)*lineH + headerGap
}

func writeParagraph(doc *fpdf.Fpdf, tr func(string) string, w, lineH float64, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	doc.MultiCell(w, lineH, tr(text), "", "L", false)
	doc.Ln(paragraphGap)
}

func orgHeaderLines(org visaletter.Organization) []string {
	var lines []string
	if org.Name != "" {
		lines = append(lines, org.Name)
	}
	for _, line := range strings.Split(strings.ReplaceAll(org.Address, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if org.Website != "" {
		lines = append(lines, "Website: "+org.Website)
	}
	if org.Email != "" {
		lines = append(lines, "Email: "+org.Email)
	}
	return lines
}

type placedImage struct {
	path string
	opts fpdf.ImageOptions
	w    float64
	h    float64
}

// loadImage registers an image and scales it to fit the given extents. A
// missing file is not an error; the letter renders without the image.
func loadImage(doc *fpdf.Fpdf, path string, maxW, maxH float64) (*placedImage, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	imageType := imageTypeForPath(path)
	if imageType == "" {
		return nil, fmt.Errorf("%w: image %s must be PNG or JPEG", visaletter.ErrPDF, path)
	}
	opts := fpdf.ImageOptions{ImageType: imageType, ReadDpi: true}
	info := doc.RegisterImageOptions(path, opts)
	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("%w: load image %s: %v", visaletter.ErrPDF, path, err)
	}
	width, height := info.Extent()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid image dimensions: %s", visaletter.ErrPDF, path)
	}
	scale := 1.0
	if maxW > 0 {
		scale = math.Min(scale, maxW/width)
	}
	if maxH > 0 {
		scale = math.Min(scale, maxH/height)
	}
	return &placedImage{path: path, opts: opts, w: width * scale, h: height * scale}, nil
}

func placeImage(doc *fpdf.Fpdf, x float64, img *placedImage) {
	if img == nil {
		return
	}
	y := doc.GetY()
	doc.ImageOptions(img.path, x, y, img.w, img.h, false, img.opts, 0, "")
	doc.SetY(y + img.h)
	doc.Ln(paragraphGap)
}

func imageTypeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "PNG"
	case ".jpg", ".jpeg":
		return "JPG"
	default:
		return ""
	}
}

func applyConfig(dst *Config, src Config) {
	if src.PageSize != "" {
		dst.PageSize = src.PageSize
	}
	if src.Margin > 0 {
		dst.Margin = src.Margin
	}
	if src.FontFamily != "" {
		dst.FontFamily = src.FontFamily
	}
	if src.FontSize > 0 {
		dst.FontSize = src.FontSize
	}
	if src.LineHeight > 0 {
		dst.LineHeight = src.LineHeight
	}
	if src.LogoPath != "" {
		dst.LogoPath = src.LogoPath
	}
	if src.LogoMaxWidth > 0 {
		dst.LogoMaxWidth = src.LogoMaxWidth
	}
	if src.LogoMaxHeight > 0 {
		dst.LogoMaxHeight = src.LogoMaxHeight
	}
	if src.SignaturePath != "" {
		dst.SignaturePath = src.SignaturePath
	}
	if src.SignatureMaxWidth > 0 {
		dst.SignatureMaxWidth = src.SignatureMaxWidth
	}
	if src.SignatureMaxHeight > 0 {
		dst.SignatureMaxHeight = src.SignatureMaxHeight
	}
	if !src.CreationDate.IsZero() {
		dst.CreationDate = src.CreationDate
	}
}

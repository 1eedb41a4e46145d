package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"

	"visaletter"
	"visaletter/pdf"
)

const (
	defaultConfigPath    = "conference.yaml"
	defaultLogoPath      = "logo.png"
	defaultSignaturePath = "signature.png"
	defaultPreviewWidth  = 80
)

func init() {
	version.SetDefaultModule("visaletter")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		configPath    string
		templatePath  string
		logoPath      string
		signaturePath string
		outPath       string
		dateFlag      string
		preview       bool
		initSamples   bool
		showVersion   bool
	)

	flags := pflag.NewFlagSet("visaletter", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&configPath, "config", "c", defaultConfigPath, "Conference configuration YAML")
	flags.StringVar(&templatePath, "template", "", "Letter template (default: "+visaletter.TemplateFile+" if present, built-in otherwise)")
	flags.StringVar(&logoPath, "logo", defaultLogoPath, "Organization logo image (PNG or JPEG, skipped if missing)")
	flags.StringVar(&signaturePath, "signature", defaultSignaturePath, "Signer signature image (PNG or JPEG, skipped if missing)")
	flags.StringVarP(&outPath, "output", "o", "", "Output PDF path (default: request base name with .pdf; \"-\" for stdout)")
	flags.StringVar(&dateFlag, "date", "", "Letter date as YYYY-MM-DD (default: today)")
	flags.BoolVar(&preview, "preview", false, "Print the letter as wrapped text instead of writing a PDF")
	flags.BoolVar(&initSamples, "init", false, "Write sample conference and request YAML files and exit")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: visaletter [flags] <request.yaml>\n")
		fmt.Fprintln(stderr, "\nGenerates a visa-support letter PDF from an applicant request YAML")
		fmt.Fprintln(stderr, "and the conference configuration.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if initSamples {
		if err := writeSamples(stdout); err != nil {
			fmt.Fprintf(stderr, "init: %v\n", err)
			return 1
		}
		return 0
	}

	rest := flags.Args()
	if len(rest) != 1 {
		flags.Usage()
		return 2
	}
	requestPath := rest[0]

	letterDate := time.Now()
	if dateFlag != "" {
		parsed, err := visaletter.ParseDate("date", dateFlag)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return 2
		}
		letterDate = parsed
	}

	cfg, err := visaletter.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}
	req, err := visaletter.LoadRequest(requestPath)
	if err != nil {
		fmt.Fprintf(stderr, "load request: %v\n", err)
		return 1
	}
	ctx, err := visaletter.BuildContext(cfg, req, letterDate)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	tmpl, err := visaletter.LoadTemplate(templatePath)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	body, err := visaletter.RenderLetter(tmpl, ctx)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	letter := visaletter.ComposeLetter(cfg, req, body, letterDate)

	if preview {
		fmt.Fprintln(stdout, visaletter.Preview(letter, previewWidth(stdout)))
		return 0
	}

	pcfg := pdf.DefaultConfig()
	pcfg.LogoPath = logoPath
	pcfg.SignaturePath = signaturePath
	pcfg.CreationDate = midnightUTC(letterDate)

	var buf bytes.Buffer
	if err := pdf.Render(pdf.RenderRequest{Letter: letter, Writer: &buf, Config: pcfg}); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	if outPath == "-" {
		if isTerminal(stdout) {
			fmt.Fprintln(stderr, "refusing to write PDF to terminal; use -o/--output")
			return 2
		}
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			fmt.Fprintf(stderr, "write pdf: %v\n", err)
			return 1
		}
		return 0
	}

	out := outPath
	if out == "" {
		out = deriveOutput(requestPath)
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintf(stderr, "%v: write %s: %v\n", visaletter.ErrPDF, out, err)
		return 1
	}
	fmt.Fprintf(stderr, "wrote %s\n", out)
	return 0
}

// deriveOutput maps a request path to the output PDF in the current working
// directory: same base name, .pdf extension.
func deriveOutput(requestPath string) string {
	base := filepath.Base(requestPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".pdf"
}

//go:embed conference.sample.yaml
var sampleConfig string

//go:embed request.sample.yaml
var sampleRequest string

// writeSamples creates starter YAML files next to the invocation directory,
// refusing to clobber existing ones. A failure removes the samples written
// so far, so the run leaves either both files or none.
func writeSamples(stdout io.Writer) (err error) {
	samples := []struct {
		path    string
		content string
	}{
		{defaultConfigPath, sampleConfig},
		{"request.sample.yaml", sampleRequest},
	}
	var written []string
	defer func() {
		if err == nil {
			return
		}
		for _, path := range written {
			_ = os.Remove(path)
		}
	}()
	for _, s := range samples {
		f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			if os.IsExist(err) {
				return fmt.Errorf("%s already exists", s.path)
			}
			return err
		}
		written = append(written, s.path)
		if _, err := f.WriteString(s.content); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s\n", s.path)
	}
	return nil
}

func previewWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultPreviewWidth
	}
	fd := int(f.Fd())
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return width
		}
	}
	return defaultPreviewWidth
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

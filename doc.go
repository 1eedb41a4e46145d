// Package visaletter turns a conference configuration and a per-applicant
// request, both YAML, into a formatted visa-support letter.
//
// The pipeline is a single linear pass: load the conference config, load the
// applicant request, merge both into a flat render context with derived
// fields (formatted dates, pronoun tokens), render the letter template, and
// hand the result to the pdf subpackage for layout.
//
// Example:
//
//	cfg, err := visaletter.LoadConfig("conference.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	req, err := visaletter.LoadRequest("JohnDoe.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	ctx, err := visaletter.BuildContext(cfg, req, time.Now())
//	if err != nil {
//		log.Fatal(err)
//	}
//	tmpl, err := visaletter.LoadTemplate("")
//	if err != nil {
//		log.Fatal(err)
//	}
//	body, err := visaletter.RenderLetter(tmpl, ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	letter := visaletter.ComposeLetter(cfg, req, body, time.Now())
//
// Errors are classified through the package sentinels (ErrParse,
// ErrMissingField, ErrInvalidDate, ErrTemplate, ErrPDF) and matched with
// errors.Is.
package visaletter

// Package pdf lays out a composed visa-support letter as a PDF.
//
// The renderer consumes a visaletter.Letter and writes the document to an
// io.Writer. It places an optional organization logo and signature image,
// scaled to fit configured extents, and keeps output deterministic by
// pinning the document creation date.
//
// Example:
//
//	cfg := pdf.DefaultConfig()
//	cfg.LogoPath = "logo.png"
//	cfg.SignaturePath = "signature.png"
//
//	err := pdf.Render(pdf.RenderRequest{
//		Letter: letter,
//		Writer: outFile,
//		Config: cfg,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
package pdf

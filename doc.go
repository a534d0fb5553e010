// Package itemize streams UTF-8 text through a script itemizer and reports
// every run of text that shares a script, a direction and a language.
//
// Input is read in fixed-size chunks into a rolling TextBuffer. Each pass
// itemizes the complete paragraphs buffered so far, emits one Report per
// item and keeps the remainder for the next chunk. Codepoints and
// paragraphs are never split between passes, so the reports do not depend
// on the chunk size or on how the reader splits its data.
//
// # Quick Start
//
//	p := itemize.NewPipeline(itemize.NewTextEmitter(os.Stdout))
//	if err := p.Run(ctx, os.Stdin); err != nil {
//	    log.Fatal(err)
//	}
//
// # Fonts
//
// Reports carry a font family when the pipeline has a resolver:
//
//	r, err := fontmap.NewResolver(fontmap.WithSystemFonts(""))
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//	p := itemize.NewPipeline(emitter, itemize.WithResolver(r))
//
// # Errors
//
// Run stops at the first failure. Match it with errors.Is against ErrIO,
// ErrInvalidText or ErrRunExceedsBuffer, or with errors.As against the
// typed errors for details such as the offset of ill-formed input.
//
// # Logging
//
// Nothing is logged by default. See SetLogger.
package itemize

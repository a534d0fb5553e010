// Package text implements the itemization stage of a text layout pipeline.
//
// Itemization splits text into items: maximal runs that share a writing
// script, a resolved direction and a language, so each run can be shaped
// with one font and one script engine.
//
// The building blocks are:
//
//   - ScriptOf: classifies a codepoint by Unicode script (UAX #24), using the
//     tables of github.com/go-text/typesetting/language
//   - Itemizer: groups codepoints into Items, resolving Common and Inherited
//     codepoints from their context and direction with the Unicode
//     Bidirectional Algorithm (golang.org/x/text/unicode/bidi)
//   - AttributeSet: optional formatting overrides (language spans)
//   - FontResolver: the collaborator that picks a font for each item
//
// # Example usage
//
//	iz := text.NewItemizer()
//	iz.Resolver = text.StaticResolver{Family: "Go"}
//
//	src := []byte("ABあい")
//	for _, it := range iz.Itemize(src, text.AttributeSet{}) {
//	    fmt.Printf("%d+%d %s %q\n", it.Offset, it.Length, it.Script.Name(), it.Text(src))
//	}
//
// # Paragraphs
//
// Itemize resolves every paragraph (text up to and including a bidi class B
// separator such as LF) independently, so items never cross a paragraph
// separator. Streaming callers rely on this to itemize input one batch of
// complete paragraphs at a time with the same result as itemizing it whole.
package text

// Package fontmap resolves representative fonts for scripts using
// github.com/go-text/typesetting/fontscan.
//
// A Resolver always knows at least one face, the Go Regular font shipped in
// golang.org/x/image, so every script resolves to something even on systems
// without installed fonts:
//
//	r, err := fontmap.NewResolver(fontmap.WithSystemFonts(""))
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	it := text.NewItemizer()
//	it.Resolver = r
//
// Resolutions are memoised per (script, language) pair.
package fontmap

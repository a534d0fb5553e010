package text

// FontDescriptor describes the font selected for an item.
type FontDescriptor struct {
	// Family is the font family name as reported by the resolver.
	Family string

	// File identifies where the face was loaded from, if known.
	File string
}

// FontResolver selects a representative font for a script and language.
// The language is a BCP 47 tag and may be empty.
//
// Implementations must be safe to call repeatedly with the same arguments
// and should return the same descriptor each time.
type FontResolver interface {
	ResolveFont(script Script, language string) FontDescriptor
}

// FontResolverFunc adapts an ordinary function to FontResolver.
type FontResolverFunc func(script Script, language string) FontDescriptor

// ResolveFont calls f(script, language).
func (f FontResolverFunc) ResolveFont(script Script, language string) FontDescriptor {
	return f(script, language)
}

// StaticResolver resolves every script to the same family.
type StaticResolver struct {
	Family string
}

// ResolveFont implements FontResolver.
func (r StaticResolver) ResolveFont(Script, string) FontDescriptor {
	return FontDescriptor{Family: r.Family}
}

package fontmap

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"github.com/go-text/typesetting/language"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/itemize"
	"github.com/gogpu/itemize/internal/cache"
	"github.com/gogpu/itemize/text"
)

const (
	// fallbackFileID identifies the embedded Go Regular face.
	fallbackFileID = "goregular"

	// fallbackFamily is the family the embedded face is registered under,
	// as normalized by fontscan.
	fallbackFamily = "go"
)

// ErrClosed is returned by operations on a closed Resolver.
var ErrClosed = errors.New("fontmap: resolver closed")

type cacheKey struct {
	script text.Script
	lang   string
}

// Resolver implements text.FontResolver on top of a fontscan.FontMap.
//
// fontscan.FontMap is not safe for concurrent use; Resolver serializes
// access to it, so a Resolver may be shared between itemizers.
type Resolver struct {
	mu     sync.Mutex
	fm     *fontscan.FontMap
	query  fontscan.Query
	cache  *cache.Cache[cacheKey, text.FontDescriptor]
	closed bool
}

// NewResolver creates a Resolver. The embedded Go Regular face is always
// registered; system fonts are scanned only with WithSystemFonts.
func NewResolver(opts ...Option) (*Resolver, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	fm := fontscan.NewFontMap(scanLogger{})
	if cfg.systemFonts {
		if err := fm.UseSystemFonts(cfg.cacheDir); err != nil {
			return nil, fmt.Errorf("fontmap: scan system fonts: %w", err)
		}
	}
	if err := fm.AddFont(bytes.NewReader(goregular.TTF), fallbackFileID, "Go"); err != nil {
		return nil, fmt.Errorf("fontmap: load fallback face: %w", err)
	}

	families := cfg.families
	if len(families) == 0 {
		families = []string{fontscan.SansSerif}
	}
	// The fallback family goes last so that user preferences win.
	families = append(families, fallbackFamily)

	itemize.Logger().Debug("fontmap: resolver ready",
		"families", families,
		"systemFonts", cfg.systemFonts,
		"cacheSize", cfg.cacheSize)

	return &Resolver{
		fm:    fm,
		query: fontscan.Query{Families: families},
		cache: cache.New[cacheKey, text.FontDescriptor](cfg.cacheSize),
	}, nil
}

// ResolveFont implements text.FontResolver.
//
// With a language the face is chosen by language coverage; otherwise, or when
// no face covers the language, by coverage of a representative rune of the
// script. A closed Resolver returns the fallback descriptor and memoises
// nothing.
func (r *Resolver) ResolveFont(script text.Script, lang string) text.FontDescriptor {
	if r.isClosed() {
		return fallbackDescriptor()
	}
	return r.cache.GetOrCreate(cacheKey{script, lang}, func() text.FontDescriptor {
		return r.resolve(script, lang)
	})
}

func (r *Resolver) isClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

func (r *Resolver) resolve(script text.Script, lang string) text.FontDescriptor {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return fallbackDescriptor()
	}

	r.fm.SetQuery(r.query)
	r.fm.SetScript(language.Script(script))

	var face *font.Face
	if lang != "" {
		if id, ok := language.NewLangID(language.NewLanguage(lang)); ok {
			face = r.fm.ResolveFaceForLang(id)
		}
	}
	if face == nil {
		if sample, ok := script.SampleRune(); ok {
			face = r.fm.ResolveFace(sample)
		}
	}
	if face == nil {
		itemize.Logger().Debug("fontmap: no face matched",
			"script", script.Tag(), "language", lang)
		return fallbackDescriptor()
	}

	family, _ := r.fm.FontMetadata(face.Font)
	loc := r.fm.FontLocation(face.Font)
	return text.FontDescriptor{Family: family, File: loc.File}
}

// Close releases the font map and clears the cache. ResolveFont keeps
// working after Close but only returns the fallback descriptor.
func (r *Resolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	r.closed = true
	r.fm = nil
	r.cache.Clear()
	return nil
}

// Stats reports memoisation statistics.
func (r *Resolver) Stats() cache.Stats {
	return r.cache.Stats()
}

func fallbackDescriptor() text.FontDescriptor {
	return text.FontDescriptor{Family: fallbackFamily, File: fallbackFileID}
}

// scanLogger routes fontscan diagnostics to the package logger.
type scanLogger struct{}

func (scanLogger) Printf(format string, args ...any) {
	itemize.Logger().Debug("fontmap: " + fmt.Sprintf(format, args...))
}

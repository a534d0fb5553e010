package text

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"
)

// Item is a maximal run of text sharing one script, direction and language.
// Offsets are byte offsets into the slice passed to Itemize.
type Item struct {
	Offset    int
	Length    int
	NumChars  int
	Script    Script
	Direction Direction
	Level     int
	Language  string
	Font      FontDescriptor
}

// End returns the byte offset just past the item.
func (it Item) End() int {
	return it.Offset + it.Length
}

// Text returns the bytes of src covered by the item.
func (it Item) Text(src []byte) []byte {
	return src[it.Offset:it.End()]
}

// Itemizer splits text into items.
//
// The zero value itemizes left-to-right with no language and no font
// resolution. An Itemizer holds no per-call state and may be reused.
type Itemizer struct {
	// BaseDirection is the paragraph direction. DirectionLTR and
	// DirectionRTL are forced; DirectionAuto uses the first strong character.
	BaseDirection Direction

	// Language is the language hint for text not covered by a language
	// attribute. It may be empty.
	Language string

	// Resolver, when set, attaches a FontDescriptor to every item.
	Resolver FontResolver
}

// NewItemizer returns a left-to-right Itemizer.
func NewItemizer() *Itemizer {
	return &Itemizer{BaseDirection: DirectionLTR}
}

// NewItemizerWithDirection returns an Itemizer with the given base direction.
func NewItemizerWithDirection(dir Direction) *Itemizer {
	return &Itemizer{BaseDirection: dir}
}

// Itemize splits src into items. src must be valid UTF-8.
//
// Items are contiguous, ordered by offset and cover src exactly. Items never
// span a paragraph separator: each paragraph is resolved independently, which
// is what allows a stream to be itemized one paragraph batch at a time.
func (iz *Itemizer) Itemize(src []byte, attrs AttributeSet) []Item {
	if len(src) == 0 {
		return nil
	}

	var items []Item
	for start := 0; start < len(src); {
		end := start + ParagraphEnd(src[start:])
		items = iz.itemizeParagraph(items, src, start, end, attrs)
		start = end
	}

	if iz.Resolver != nil {
		for i := range items {
			items[i].Font = iz.Resolver.ResolveFont(items[i].Script, items[i].Language)
		}
	}
	return items
}

// itemizeParagraph appends the items of src[start:end] to items.
func (iz *Itemizer) itemizeParagraph(items []Item, src []byte, start, end int, attrs AttributeSet) []Item {
	para := src[start:end]
	n := utf8.RuneCount(para)

	offsets := make([]int, 0, n+1)
	scripts := make([]Script, 0, n)
	for i := 0; i < len(para); {
		r, size := utf8.DecodeRune(para[i:])
		offsets = append(offsets, start+i)
		scripts = append(scripts, ScriptOf(r))
		i += size
	}
	offsets = append(offsets, end)

	resolveScripts(scripts)
	levels := iz.computeLevels(para, n)
	langs := iz.resolveLanguages(offsets[:n], attrs)

	runStart := 0
	for i := 1; i <= n; i++ {
		if i < n && scripts[i] == scripts[runStart] && levels[i] == levels[runStart] && langs[i] == langs[runStart] {
			continue
		}
		items = append(items, makeItem(offsets, runStart, i, scripts[runStart], levels[runStart], langs[runStart]))
		runStart = i
	}
	return items
}

// resolveScripts replaces Inherited and Common scripts in place.
// Inherited takes the preceding concrete script. Common takes the preceding
// strong script, otherwise the following one, otherwise stays Common.
// Unknown counts as strong, so it never merges into a classified run.
func resolveScripts(scripts []Script) {
	last := ScriptCommon
	for i, s := range scripts {
		if s == ScriptInherited {
			scripts[i] = last
		} else if s != ScriptCommon {
			last = s
		}
	}

	prev := ScriptCommon
	for i, s := range scripts {
		if s != ScriptCommon {
			prev = s
			continue
		}
		if prev != ScriptCommon {
			scripts[i] = prev
			continue
		}
		scripts[i] = findNextStrongScript(scripts, i+1)
	}
}

// findNextStrongScript finds the next non-Common, non-Inherited script starting at index start.
func findNextStrongScript(scripts []Script, start int) Script {
	for j := start; j < len(scripts); j++ {
		if scripts[j].IsStrong() {
			return scripts[j]
		}
	}
	return ScriptCommon
}

// computeLevels returns the bidi level parity (0 or 1) of each rune of para.
func (iz *Itemizer) computeLevels(para []byte, n int) []int {
	levels := make([]int, n)
	if iz.BaseDirection == DirectionRTL {
		for i := range levels {
			levels[i] = 1
		}
	} else if !hasRTL(para) {
		return levels
	}

	text := para
	shift := 0
	var opts []bidi.Option
	switch iz.BaseDirection {
	case DirectionRTL:
		opts = append(opts, bidi.DefaultDirection(bidi.RightToLeft))
	case DirectionLTR:
		// x/text only forces RTL; a leading LRM forces an LTR paragraph.
		text = make([]byte, 0, len(para)+3)
		text = append(text, "\u200e"...)
		text = append(text, para...)
		shift = 1
	}

	var p bidi.Paragraph
	if _, err := p.SetBytes(text, opts...); err != nil {
		return levels
	}
	ordering, err := p.Order()
	if err != nil {
		return levels
	}

	// run.Pos() returns RUNE indices (start, end inclusive)
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		startRune, endRune := run.Pos()
		runLevel := 0
		if run.Direction() == bidi.RightToLeft {
			runLevel = 1
		}
		for j := startRune; j <= endRune; j++ {
			if k := j - shift; k >= 0 && k < n {
				levels[k] = runLevel
			}
		}
	}
	resetTrailingLevels(para, levels, iz.paragraphLevel(para))
	return levels
}

// paragraphLevel returns the base level parity of para: 1 for an RTL
// paragraph, 0 otherwise. DirectionAuto takes the first strong character.
func (iz *Itemizer) paragraphLevel(para []byte) int {
	switch iz.BaseDirection {
	case DirectionRTL:
		return 1
	case DirectionAuto:
		for i := 0; i < len(para); {
			props, size := bidi.Lookup(para[i:])
			switch props.Class() {
			case bidi.L:
				return 0
			case bidi.R, bidi.AL:
				return 1
			}
			i += max(size, 1)
		}
	}
	return 0
}

// resetTrailingLevels sets the paragraph separator and whitespace at the
// end of para to the paragraph level (UAX #9 rule L1). levels holds one
// entry per rune of para.
func resetTrailingLevels(para []byte, levels []int, base int) {
	k := len(levels) - 1
	for end := len(para); end > 0 && k >= 0; k-- {
		r, size := utf8.DecodeLastRune(para[:end])
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.B, bidi.S, bidi.WS:
			levels[k] = base
		default:
			return
		}
		end -= size
	}
}

// hasRTL reports whether para contains any character that can produce a
// right-to-left level.
func hasRTL(para []byte) bool {
	for i := 0; i < len(para); {
		props, size := bidi.Lookup(para[i:])
		switch props.Class() {
		case bidi.R, bidi.AL, bidi.AN, bidi.RLE, bidi.RLO, bidi.RLI, bidi.FSI:
			return true
		}
		if size == 0 {
			size = 1
		}
		i += size
	}
	return false
}

// resolveLanguages returns the language hint for each rune offset.
func (iz *Itemizer) resolveLanguages(offsets []int, attrs AttributeSet) []string {
	langs := make([]string, len(offsets))
	for i, off := range offsets {
		if lang, ok := attrs.languageAt(off); ok {
			langs[i] = lang
		} else {
			langs[i] = iz.Language
		}
	}
	return langs
}

func makeItem(offsets []int, startRune, endRune int, script Script, level int, lang string) Item {
	dir := DirectionLTR
	if level%2 == 1 {
		dir = DirectionRTL
	}
	return Item{
		Offset:    offsets[startRune],
		Length:    offsets[endRune] - offsets[startRune],
		NumChars:  endRune - startRune,
		Script:    script,
		Direction: dir,
		Level:     level,
		Language:  lang,
	}
}

// IsParagraphSeparator reports whether r ends a paragraph (bidi class B).
func IsParagraphSeparator(r rune) bool {
	props, _ := bidi.LookupRune(r)
	return props.Class() == bidi.B
}

// ParagraphEnd returns the length of the first paragraph of src, including
// its separator, or len(src) if src holds no separator. CR LF counts as a
// single separator.
func ParagraphEnd(src []byte) int {
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		i += size
		if !IsParagraphSeparator(r) {
			continue
		}
		if r == '\r' && i < len(src) && src[i] == '\n' {
			i++
		}
		return i
	}
	return len(src)
}

// LastParagraphEnd returns the end offset of the last complete paragraph in
// src, or 0 if src holds no complete paragraph. A trailing CR is not
// considered complete, since the LF that may follow belongs to it.
func LastParagraphEnd(src []byte) int {
	end := len(src)
	for end > 0 {
		r, size := utf8.DecodeLastRune(src[:end])
		if IsParagraphSeparator(r) {
			if r == '\r' && end == len(src) {
				end -= size
				continue
			}
			return end
		}
		end -= size
	}
	return 0
}

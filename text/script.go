package text

import "github.com/go-text/typesetting/language"

// Script represents a Unicode script (UAX #24) for text segmentation.
// Scripts are used to identify runs of text that should be shaped together.
//
// The value is the ISO 15924 tag packed big-endian into a uint32, the same
// encoding used by github.com/go-text/typesetting/language, so a Script
// converts losslessly to and from language.Script.
type Script language.Script

// Script constants for the scripts the itemizer reports by name.
const (
	// ScriptCommon is used for punctuation, numbers, and symbols shared across scripts.
	ScriptCommon = Script(language.Common)
	// ScriptInherited is used for combining marks that inherit the script of the base character.
	ScriptInherited = Script(language.Inherited)
	// ScriptUnknown is used for unassigned and private-use codepoints.
	ScriptUnknown = Script(language.Unknown)

	ScriptLatin      = Script(language.Latin)
	ScriptCyrillic   = Script(language.Cyrillic)
	ScriptGreek      = Script(language.Greek)
	ScriptArmenian   = Script(language.Armenian)
	ScriptGeorgian   = Script(language.Georgian)
	ScriptArabic     = Script(language.Arabic)
	ScriptHebrew     = Script(language.Hebrew)
	ScriptSyriac     = Script(language.Syriac)
	ScriptThaana     = Script(language.Thaana)
	ScriptHan        = Script(language.Han)
	ScriptHiragana   = Script(language.Hiragana)
	ScriptKatakana   = Script(language.Katakana)
	ScriptBopomofo   = Script(language.Bopomofo)
	ScriptHangul     = Script(language.Hangul)
	ScriptDevanagari = Script(language.Devanagari)
	ScriptBengali    = Script(language.Bengali)
	ScriptGurmukhi   = Script(language.Gurmukhi)
	ScriptGujarati   = Script(language.Gujarati)
	ScriptOriya      = Script(language.Oriya)
	ScriptTamil      = Script(language.Tamil)
	ScriptTelugu     = Script(language.Telugu)
	ScriptKannada    = Script(language.Kannada)
	ScriptMalayalam  = Script(language.Malayalam)
	ScriptSinhala    = Script(language.Sinhala)
	ScriptThai       = Script(language.Thai)
	ScriptLao        = Script(language.Lao)
	ScriptTibetan    = Script(language.Tibetan)
	ScriptMyanmar    = Script(language.Myanmar)
	ScriptKhmer      = Script(language.Khmer)
	ScriptMongolian  = Script(language.Mongolian)
	ScriptEthiopic   = Script(language.Ethiopic)
)

// notClassified is the name reported for scripts missing from scriptNames.
const notClassified = "Not classified"

// scriptNames maps Script values to their human-readable names.
// Any script not listed resolves to notClassified.
var scriptNames = map[Script]string{
	ScriptCommon:     "Common",
	ScriptInherited:  "Inherited",
	ScriptLatin:      "Latin",
	ScriptCyrillic:   "Cyrillic",
	ScriptGreek:      "Greek",
	ScriptArmenian:   "Armenian",
	ScriptGeorgian:   "Georgian",
	ScriptArabic:     "Arabic",
	ScriptHebrew:     "Hebrew",
	ScriptSyriac:     "Syriac",
	ScriptThaana:     "Thaana",
	ScriptHan:        "Han",
	ScriptHiragana:   "Hiragana",
	ScriptKatakana:   "Katakana",
	ScriptBopomofo:   "Bopomofo",
	ScriptHangul:     "Hangul",
	ScriptDevanagari: "Devanagari",
	ScriptBengali:    "Bengali",
	ScriptGurmukhi:   "Gurmukhi",
	ScriptGujarati:   "Gujarati",
	ScriptOriya:      "Oriya",
	ScriptTamil:      "Tamil",
	ScriptTelugu:     "Telugu",
	ScriptKannada:    "Kannada",
	ScriptMalayalam:  "Malayalam",
	ScriptSinhala:    "Sinhala",
	ScriptThai:       "Thai",
	ScriptLao:        "Lao",
	ScriptTibetan:    "Tibetan",
	ScriptMyanmar:    "Myanmar",
	ScriptKhmer:      "Khmer",
	ScriptMongolian:  "Mongolian",
	ScriptEthiopic:   "Ethiopic",
}

// ScriptOf returns the Unicode script for a given rune.
// Invalid, unassigned and private-use runes map to ScriptUnknown.
func ScriptOf(r rune) Script {
	return Script(language.LookupScript(r))
}

// ID returns the numeric script identifier.
func (s Script) ID() uint32 {
	return uint32(s)
}

// Tag returns the ISO 15924 code of the script, e.g. "Latn".
func (s Script) Tag() string {
	return language.Script(s).String()
}

// Name returns the name of the script, or "Not classified".
func (s Script) Name() string {
	if name, ok := scriptNames[s]; ok {
		return name
	}
	return notClassified
}

// String returns the name of the script.
func (s Script) String() string {
	return s.Name()
}

// IsStrong reports whether the script determines a run on its own,
// i.e. it is neither Common nor Inherited.
func (s Script) IsStrong() bool {
	return language.Script(s).Strong()
}

// IsRTL returns true if the script is typically written right-to-left.
func (s Script) IsRTL() bool {
	switch s {
	case ScriptArabic, ScriptHebrew, ScriptSyriac, ScriptThaana:
		return true
	default:
		return false
	}
}

// SampleRune returns a representative codepoint of the script, for font
// resolvers that match on rune coverage. Control characters are skipped.
func (s Script) SampleRune() (rune, bool) {
	for _, rng := range language.ScriptRanges {
		if Script(rng.Script) != s {
			continue
		}
		r := rng.Start
		if r < 0x20 {
			if rng.End < 0x20 {
				continue
			}
			r = 0x20
		}
		return r, true
	}
	return 0, false
}

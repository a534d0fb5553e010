package text

import (
	"fmt"

	xlanguage "golang.org/x/text/language"
)

// AttrKind identifies what an Attribute overrides.
type AttrKind uint8

const (
	// AttrLanguage sets the language of a span. Its Value is a BCP 47 tag.
	AttrLanguage AttrKind = iota + 1
)

// String returns the string representation of the attribute kind.
func (k AttrKind) String() string {
	switch k {
	case AttrLanguage:
		return "language"
	default:
		return unknownStr
	}
}

// Attribute is a formatting override applied to the byte span [Start, End).
type Attribute struct {
	Kind  AttrKind
	Start int
	End   int
	Value string
}

// AttributeSet is an immutable list of attributes. The zero value is the
// empty set, which leaves itemization driven by script and direction only.
//
// When attributes overlap, the one added last wins.
type AttributeSet struct {
	attrs []Attribute
}

// NewAttributeSet validates attrs and returns a set holding them.
// Language values are canonicalised ("EN-us" becomes "en-US").
func NewAttributeSet(attrs ...Attribute) (AttributeSet, error) {
	out := make([]Attribute, 0, len(attrs))
	for i, a := range attrs {
		if a.Start < 0 || a.End < a.Start {
			return AttributeSet{}, fmt.Errorf("%w: attribute %d has span [%d, %d)", ErrBadAttribute, i, a.Start, a.End)
		}
		switch a.Kind {
		case AttrLanguage:
			tag, err := CanonicalLanguage(a.Value)
			if err != nil {
				return AttributeSet{}, err
			}
			a.Value = tag
		default:
			return AttributeSet{}, fmt.Errorf("%w: attribute %d has unknown kind %d", ErrBadAttribute, i, a.Kind)
		}
		if a.Start == a.End {
			continue
		}
		out = append(out, a)
	}
	return AttributeSet{attrs: out}, nil
}

// Len returns the number of attributes in the set.
func (s AttributeSet) Len() int {
	return len(s.attrs)
}

// Attributes returns a copy of the attributes in the set.
func (s AttributeSet) Attributes() []Attribute {
	out := make([]Attribute, len(s.attrs))
	copy(out, s.attrs)
	return out
}

// Slice returns the attributes intersecting [start, end), clipped to that
// window and rebased so that start becomes offset 0.
func (s AttributeSet) Slice(start, end int) AttributeSet {
	if len(s.attrs) == 0 || end <= start {
		return AttributeSet{}
	}
	var out []Attribute
	for _, a := range s.attrs {
		if a.End <= start || a.Start >= end {
			continue
		}
		a.Start = max(a.Start, start) - start
		a.End = min(a.End, end) - start
		out = append(out, a)
	}
	return AttributeSet{attrs: out}
}

// languageAt returns the language attribute covering byte offset off.
func (s AttributeSet) languageAt(off int) (string, bool) {
	for i := len(s.attrs) - 1; i >= 0; i-- {
		a := s.attrs[i]
		if a.Kind == AttrLanguage && off >= a.Start && off < a.End {
			return a.Value, true
		}
	}
	return "", false
}

// CanonicalLanguage validates a BCP 47 tag and returns its canonical form.
// The empty string is accepted and means "no language".
func CanonicalLanguage(tag string) (string, error) {
	if tag == "" {
		return "", nil
	}
	t, err := xlanguage.Parse(tag)
	if err != nil {
		return "", &ParseError{Kind: "language", Value: tag, Err: err}
	}
	return t.String(), nil
}

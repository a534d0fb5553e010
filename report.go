package itemize

import (
	"github.com/rivo/uniseg"

	"github.com/gogpu/itemize/text"
)

// Report describes one item as emitted to the outside world.
type Report struct {
	// Offset is the absolute byte offset of the item in the input stream.
	Offset int64 `json:"offset"`
	// Length is the item length in bytes.
	Length int `json:"length"`
	// NumChars is the number of codepoints.
	NumChars int `json:"chars"`
	// Graphemes is the number of user-perceived characters.
	Graphemes int    `json:"graphemes"`
	Text      string `json:"text"`

	Font     string `json:"font,omitempty"`
	FontFile string `json:"fontFile,omitempty"`

	ScriptID   uint32 `json:"scriptId"`
	ScriptTag  string `json:"scriptTag"`
	ScriptName string `json:"script"`

	Direction string `json:"direction"`
	Language  string `json:"language,omitempty"`
}

// NewReport builds the report for item, which was itemized from window.
// base is the stream offset of window[0].
func NewReport(item text.Item, window []byte, base int64) Report {
	s := string(item.Text(window))
	return Report{
		Offset:     base + int64(item.Offset),
		Length:     item.Length,
		NumChars:   item.NumChars,
		Graphemes:  uniseg.GraphemeClusterCount(s),
		Text:       s,
		Font:       item.Font.Family,
		FontFile:   item.Font.File,
		ScriptID:   item.Script.ID(),
		ScriptTag:  item.Script.Tag(),
		ScriptName: item.Script.Name(),
		Direction:  item.Direction.String(),
		Language:   item.Language,
	}
}

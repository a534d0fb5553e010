package itemize

import (
	"errors"
	"testing"

	"github.com/gogpu/itemize/text"
)

func TestDefaultConfig(t *testing.T) {
	c := defaultConfig()
	if c.bufferSize != DefaultBufferSize {
		t.Errorf("bufferSize = %d, want %d", c.bufferSize, DefaultBufferSize)
	}
	if c.maxBufferSize != DefaultMaxBufferSize {
		t.Errorf("maxBufferSize = %d, want %d", c.maxBufferSize, DefaultMaxBufferSize)
	}
	if c.direction != text.DirectionLTR {
		t.Errorf("direction = %v, want LTR", c.direction)
	}
	if c.invalid != InvalidFail {
		t.Errorf("invalid = %v, want fail", c.invalid)
	}
	if c.resolver != nil || c.language != "" || c.attrs.Len() != 0 {
		t.Error("default config has a resolver, language or attributes")
	}
}

func TestOptions(t *testing.T) {
	attrs, err := text.NewAttributeSet(text.Attribute{Kind: text.AttrLanguage, End: 3, Value: "de"})
	if err != nil {
		t.Fatalf("NewAttributeSet() = %v", err)
	}
	res := text.StaticResolver{Family: "serif"}

	p := NewPipeline(&collectEmitter{},
		WithBufferSize(64),
		WithMaxBufferSize(32),
		WithBaseDirection(text.DirectionRTL),
		WithLanguage("ar"),
		WithInvalidPolicy(InvalidReplace),
		WithResolver(res),
		WithAttributes(attrs),
	)

	c := p.cfg
	if c.bufferSize != 64 {
		t.Errorf("bufferSize = %d, want 64", c.bufferSize)
	}
	if c.maxBufferSize != 64 {
		t.Errorf("maxBufferSize = %d, want raised to buffer size 64", c.maxBufferSize)
	}
	if c.direction != text.DirectionRTL || c.language != "ar" || c.invalid != InvalidReplace {
		t.Errorf("config = %+v", c)
	}
	if c.resolver != res {
		t.Errorf("resolver = %v, want %v", c.resolver, res)
	}
	if c.attrs.Len() != 1 {
		t.Errorf("attrs.Len() = %d, want 1", c.attrs.Len())
	}
}

func TestWithBufferSizeMinimum(t *testing.T) {
	c := defaultConfig()
	WithBufferSize(1)(&c)
	if c.bufferSize != MinBufferSize {
		t.Errorf("bufferSize = %d, want %d", c.bufferSize, MinBufferSize)
	}
}

func TestParseInvalidPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    InvalidPolicy
		wantErr bool
	}{
		{"", InvalidFail, false},
		{"fail", InvalidFail, false},
		{"Replace", InvalidReplace, false},
		{"skip", InvalidFail, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseInvalidPolicy(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseInvalidPolicy(%q) error = %v", tt.in, err)
			}
			if err != nil && !errors.Is(err, ErrInvalidOption) {
				t.Errorf("error = %v, want ErrInvalidOption", err)
			}
			if got != tt.want {
				t.Errorf("ParseInvalidPolicy(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInvalidPolicyString(t *testing.T) {
	if InvalidFail.String() != "fail" || InvalidReplace.String() != "replace" {
		t.Errorf("names = %s, %s", InvalidFail, InvalidReplace)
	}
	if got := InvalidPolicy(9).String(); got != "InvalidPolicy(9)" {
		t.Errorf("InvalidPolicy(9).String() = %q", got)
	}
}

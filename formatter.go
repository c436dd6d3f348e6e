package prettytype

import (
	"bytes"
	"fmt"
	"io"
)

// Config holds the configuration settings for the type formatter.
// It controls which names are collapsed, which are kept on one line, and how
// the output is indented.
type Config struct {
	// IndentWidth is the number of spaces added per nesting level.
	// If 0, the DefaultConfig.IndentWidth value is used instead.
	IndentWidth int `toml:"indent_width"`

	// Placeholder replaces the whole subtree of a boilerplate name.
	// If empty, the DefaultConfig.Placeholder value is used instead.
	Placeholder string `toml:"placeholder"`

	// Qualifier is the scope prefix that marks a library name, such as "std::".
	// A name whose raw text contains it keeps its arguments on one line.
	// If empty, the DefaultConfig.Qualifier value is used instead.
	Qualifier string `toml:"qualifier"`

	// Exempt lists substrings that cancel the Qualifier match. Exempted names
	// are exploded like ordinary names.
	// If nil, the DefaultConfig.Exempt value is used instead.
	Exempt []string `toml:"exempt"`

	// Boilerplate lists substrings of raw names whose argument lists are
	// collapsed to Placeholder, such as default allocators and comparators.
	// If nil, the DefaultConfig.Boilerplate value is used instead.
	Boilerplate []string `toml:"boilerplate"`

	// SingleLine lists substrings of stripped names that keep their arguments
	// on one line regardless of Qualifier.
	// If nil, the DefaultConfig.SingleLine value is used instead.
	SingleLine []string `toml:"single_line"`

	// Highlight enables ANSI colors in the output.
	Highlight bool `toml:"highlight"`
}

// DefaultConfig collapses the common C++ standard library helpers and keeps
// standard library wrappers on a single line, indenting by two spaces.
var DefaultConfig = &Config{
	IndentWidth: 2,
	Placeholder: "T",
	Qualifier:   "std::",
	Exempt:      []string{"std::tuple"},
	Boilerplate: []string{
		"std::less",
		"std::hash",
		"std::equal",
		"allocator",
		"char_traits",
		"integer_sequence",
	},
	SingleLine: []string{"tuple_like", "map_save"},
}

func (c *Config) indentWidth() int {
	if c.IndentWidth <= 0 {
		return DefaultConfig.IndentWidth
	}
	return c.IndentWidth
}

func (c *Config) placeholder() string {
	if c.Placeholder == "" {
		return DefaultConfig.Placeholder
	}
	return c.Placeholder
}

func (c *Config) qualifier() string {
	if c.Qualifier == "" {
		return DefaultConfig.Qualifier
	}
	return c.Qualifier
}

func (c *Config) exempt() []string {
	if c.Exempt == nil {
		return DefaultConfig.Exempt
	}
	return c.Exempt
}

func (c *Config) boilerplate() []string {
	if c.Boilerplate == nil {
		return DefaultConfig.Boilerplate
	}
	return c.Boilerplate
}

func (c *Config) singleLine() []string {
	if c.SingleLine == nil {
		return DefaultConfig.SingleLine
	}
	return c.SingleLine
}

// Format is a convenience function that formats the given type dump
// using the default configuration. This is equivalent to calling:
//
//	New(DefaultConfig).Format(src)
func Format(src []byte) []byte {
	return New(DefaultConfig).Format(src)
}

// Formatter reflows type dumps using the specified configuration.
type Formatter struct {
	config *Config
}

// New creates a new formatter instance with the given configuration.
// If config is nil, DefaultConfig will be used instead.
// The returned formatter can be reused for multiple Format calls.
func New(config *Config) *Formatter {
	if config == nil {
		config = DefaultConfig
	}
	return &Formatter{config: config}
}

// Format returns the reflowed form of src, terminated by a newline.
// Malformed nesting is not an error; it produces best-effort output.
func (f *Formatter) Format(src []byte) []byte {
	var buf bytes.Buffer
	_ = f.Fprint(&buf, src) // bytes.Buffer writes never fail
	return buf.Bytes()
}

// Fprint writes the reflowed form of src to w in a single pass.
// It returns the first error reported by w.
func (f *Formatter) Fprint(w io.Writer, src []byte) error {
	p := newPrinter(w, f.config)

	var (
		state State
		frags []Fragment
	)
	for tok := range Tokens(string(src), f.config) {
		frags = state.Step(f.config, tok, frags[:0])
		for _, frag := range frags {
			p.print(frag)
		}
	}
	p.newline()

	if err := p.flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

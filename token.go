package prettytype

import (
	"iter"
	"slices"
	"strings"
)

// Kind identifies the role of a token in a type dump.
type Kind uint8

const (
	Name  Kind = iota // a type or value name
	Open              // '<'
	Close             // '>'
	Comma             // ','
)

func (k Kind) String() string {
	switch k {
	case Open:
		return "<"
	case Close:
		return ">"
	case Comma:
		return ","
	default:
		return "name"
	}
}

// Token is a single classified element of the input.
type Token struct {
	Kind Kind

	// Text is the printable form of the token. For names this is the final
	// scope segment of the raw text.
	Text string

	// Qualified reports whether the raw name carried the library qualifier.
	Qualified bool

	// Boilerplate reports whether the raw name matched a collapse marker.
	Boilerplate bool
}

const delimiters = "<>,"

// Split yields the trimmed pieces of src between and including the structural
// delimiters '<', '>' and ','. Pieces that are empty after trimming are
// skipped.
func Split(src string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for len(src) > 0 {
			i := strings.IndexAny(src, delimiters)
			if i < 0 {
				if s := strings.TrimSpace(src); s != "" {
					yield(s)
				}
				return
			}
			if s := strings.TrimSpace(src[:i]); s != "" {
				if !yield(s) {
					return
				}
			}
			if !yield(src[i : i+1]) {
				return
			}
			src = src[i+1:]
		}
	}
}

// Tokens yields the classified tokens of src using the markers in config.
// If config is nil, DefaultConfig is used.
func Tokens(src string, config *Config) iter.Seq[Token] {
	if config == nil {
		config = DefaultConfig
	}
	return func(yield func(Token) bool) {
		for raw := range Split(src) {
			tok, ok := config.classify(raw)
			if !ok {
				continue
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// classify turns a trimmed raw piece into a token. It returns false if the
// piece is a name that is empty once its scope prefix is stripped.
func (c *Config) classify(raw string) (Token, bool) {
	switch raw {
	case "<":
		return Token{Kind: Open, Text: raw}, true
	case ">":
		return Token{Kind: Close, Text: raw}, true
	case ",":
		return Token{Kind: Comma, Text: raw}, true
	}

	qualifier := c.qualifier()
	tok := Token{
		Kind:        Name,
		Text:        stripScope(raw),
		Qualified:   strings.Contains(raw, qualifier) && !containsAny(raw, c.exempt()),
		Boilerplate: containsAny(raw, c.boilerplate()),
	}
	return tok, tok.Text != ""
}

// stripScope drops everything up to and including the last ':'.
func stripScope(s string) string {
	return s[strings.LastIndexByte(s, ':')+1:]
}

func containsAny(s string, markers []string) bool {
	return slices.ContainsFunc(markers, func(m string) bool { return m != "" && strings.Contains(s, m) })
}

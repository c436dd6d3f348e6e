package prettytype

import "strings"

// Skip tracks suppression of a collapsed boilerplate subtree.
// Depth counts the brackets opened since the subtree started.
type Skip struct {
	Active bool
	Depth  int
}

// Anchor records the indent level at which single-line mode started.
type Anchor struct {
	Set   bool
	Level int
}

// State is the complete formatter state between two tokens.
// The zero value is the state at the start of a pass.
type State struct {
	Level  int
	Skip   Skip
	Anchor Anchor
}

// Role describes how a fragment of output is rendered.
type Role uint8

const (
	Text        Role = iota // a plain name
	Break                   // a newline followed by Depth levels of indentation
	Delim                   // '<', '>' or ", "
	Placeholder             // a collapsed boilerplate subtree
	Wrapper                 // a name that keeps its arguments on one line
)

// Fragment is a piece of output produced by a single step.
type Fragment struct {
	Role  Role
	Text  string
	Depth int
}

// Step applies tok to s, appending the output it produces to dst.
func (s *State) Step(c *Config, tok Token, dst []Fragment) []Fragment {
	if s.Skip.Active {
		s.skip(tok)
		return dst
	}

	switch tok.Kind {
	case Open:
		s.Level++
		return append(dst, Fragment{Role: Delim, Text: "<"})

	case Comma:
		return append(dst, Fragment{Role: Delim, Text: ", "})

	case Close:
		if s.Level > 0 {
			s.Level--
		}
		if !s.Anchor.Set {
			dst = append(dst, Fragment{Role: Break, Depth: s.Level})
		}
		dst = append(dst, Fragment{Role: Delim, Text: ">"})
		if s.Anchor.Set && s.Anchor.Level == s.Level {
			s.Anchor = Anchor{}
		}
		return dst
	}

	if tok.Boilerplate {
		s.Skip = Skip{Active: true}
		return append(dst, Fragment{Role: Placeholder, Text: c.placeholder()})
	}

	if s.Anchor.Set {
		return append(dst, Fragment{Role: Text, Text: tok.Text})
	}
	if s.Level > 0 {
		dst = append(dst, Fragment{Role: Break, Depth: s.Level})
	}
	if tok.Qualified || containsAny(tok.Text, c.singleLine()) {
		s.Anchor = Anchor{Set: true, Level: s.Level}
		return append(dst, Fragment{Role: Wrapper, Text: tok.Text})
	}
	return append(dst, Fragment{Role: Text, Text: tok.Text})
}

// skip consumes tok while a boilerplate subtree is suppressed. A close at
// depth 0 also ends suppression: a boilerplate name without its own argument
// list swallows the next close it sees.
func (s *State) skip(tok Token) {
	switch tok.Kind {
	case Open:
		s.Skip.Depth++
	case Close:
		if s.Skip.Depth <= 1 {
			s.Skip = Skip{}
		} else {
			s.Skip.Depth--
		}
	}
}

// indent returns the indentation for the given nesting level.
func (c *Config) indent(level int) string {
	return strings.Repeat(" ", c.indentWidth()*level)
}

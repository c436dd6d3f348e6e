package prettytype_test

import (
	"strings"
	"testing"

	"github.com/abemedia/prettytype"
)

func FuzzFormat(f *testing.F) {
	f.Add("A<B,C>")
	f.Add("std::vector<int, std::allocator<int>>")
	f.Add("bxlx::graph<tuple_like<a<b>>, c<std::hash<d>, e<f>>>")
	f.Add("a< , >")

	f.Fuzz(func(t *testing.T, s string) {
		got := string(prettytype.Format([]byte(s)))
		if !strings.HasSuffix(got, "\n") {
			t.Fatalf("missing trailing newline: %q", got)
		}
		if strings.Contains(s, "\n") || strings.Contains(s, "\r") {
			return
		}
		for line := range strings.Lines(got) {
			if strings.TrimSpace(line) == "" && line != "\n" {
				t.Fatalf("whitespace-only line %q in %q", line, got)
			}
		}
		if !balanced(s) {
			return
		}
		// Boilerplate names can hide brackets, but never unevenly.
		if open, closed := strings.Count(got, "<"), strings.Count(got, ">"); open != closed {
			t.Fatalf("unbalanced output for %q: %d '<' and %d '>' in %q", s, open, closed, got)
		}
	})
}

// balanced reports whether s has well-nested brackets and every boilerplate
// name in it is followed by its own argument list.
func balanced(s string) bool {
	depth := 0
	pending := false
	for tok := range prettytype.Tokens(s, nil) {
		switch tok.Kind {
		case prettytype.Open:
			depth++
			pending = false
		case prettytype.Close:
			if depth == 0 || pending {
				return false
			}
			depth--
		case prettytype.Comma:
			if pending {
				return false
			}
		case prettytype.Name:
			if pending {
				return false
			}
			pending = tok.Boilerplate
		}
	}
	return depth == 0 && !pending
}

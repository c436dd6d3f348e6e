package prettytype

import (
	"bufio"
	"io"

	"github.com/fatih/color"
)

// printer renders fragments to a buffered writer.
type printer struct {
	config *Config
	w      *bufio.Writer
	styles map[Role]*color.Color
}

func newPrinter(w io.Writer, config *Config) *printer {
	p := &printer{config: config, w: bufio.NewWriter(w)}
	if config.Highlight {
		p.styles = map[Role]*color.Color{
			Delim:       color.New(color.FgCyan),
			Placeholder: color.New(color.Faint),
			Wrapper:     color.New(color.Bold),
		}
		// Ignore color.NoColor; callers decide when to highlight.
		for _, c := range p.styles {
			c.EnableColor()
		}
	}
	return p
}

// print writes a single fragment. Write errors are sticky in the underlying
// bufio.Writer and surface from flush.
func (p *printer) print(frag Fragment) {
	if frag.Role == Break {
		p.newline()
		_, _ = p.w.WriteString(p.config.indent(frag.Depth))
		return
	}
	if c, ok := p.styles[frag.Role]; ok {
		_, _ = p.w.WriteString(c.Sprint(frag.Text))
		return
	}
	_, _ = p.w.WriteString(frag.Text)
}

func (p *printer) newline() {
	_ = p.w.WriteByte('\n')
}

func (p *printer) flush() error {
	return p.w.Flush()
}

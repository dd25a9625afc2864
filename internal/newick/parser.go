package newick

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Options controls how Newick input is interpreted.
type Options struct {
	// QuotedNames allows leaf and node labels wrapped in single quotes,
	// with doubled quotes as the escape.
	QuotedNames bool
	// BracketedSupport converts support values in trailing square
	// brackets to standard labels before parsing.
	BracketedSupport bool
}

// ParseError describes a syntax error with the byte offset it occurred at.
type ParseError struct {
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("newick: %s at offset %d", e.Message, e.Offset)
}

// Parse parses a single Newick tree from s.
func Parse(s string, opts Options) (*Node, error) {
	if opts.BracketedSupport {
		s = ConvertBracketedSupport(s)
	}
	p := &parser{input: s, opts: opts}
	p.skipSpace()
	root, err := p.parseSubtree()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.input) && p.input[p.pos] == ';' {
		p.pos++
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return nil, p.errorf("trailing data after tree")
	}
	return root, nil
}

// ParseFile reads path and parses the first line as a Newick tree.
// Tree files produced by inference tools keep the whole tree on one line.
func ParseFile(path string, opts Options) (*Node, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree file: %w", err)
	}
	line := strings.TrimSpace(string(content))
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = strings.TrimSpace(line[:idx])
	}
	if line == "" {
		return nil, fmt.Errorf("tree file %s is empty", path)
	}
	tree, err := Parse(line, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return tree, nil
}

type parser struct {
	input string
	pos   int
	opts  Options
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &ParseError{Offset: p.pos, Message: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

// parseSubtree parses either a leaf or a parenthesized internal node,
// followed by an optional label and branch length.
func (p *parser) parseSubtree() (*Node, error) {
	node := &Node{}

	if p.peek() == '(' {
		p.pos++
		for {
			p.skipSpace()
			child, err := p.parseSubtree()
			if err != nil {
				return nil, err
			}
			node.AddChild(child)
			p.skipSpace()
			switch p.peek() {
			case ',':
				p.pos++
				continue
			case ')':
				p.pos++
			case 0:
				return nil, p.errorf("unexpected end of input, expected ')'")
			default:
				return nil, p.errorf("unexpected %q, expected ',' or ')'", p.peek())
			}
			break
		}
		// The label after ')' is a support value when numeric.
		label, err := p.parseLabel()
		if err != nil {
			return nil, err
		}
		if label != "" {
			if support, err := strconv.ParseFloat(label, 64); err == nil {
				node.Support = support
				node.HasSupport = true
			} else {
				node.Name = label
			}
		}
	} else {
		label, err := p.parseLabel()
		if err != nil {
			return nil, err
		}
		node.Name = label
	}

	p.skipSpace()
	if p.peek() == ':' {
		p.pos++
		p.skipSpace()
		length, err := p.parseNumber()
		if err != nil {
			return nil, err
		}
		node.Length = length
		node.HasLength = true
	}
	return node, nil
}

// parseLabel reads a bare or quoted label. Bare labels end at any
// structural character.
func (p *parser) parseLabel() (string, error) {
	if p.peek() == '\'' {
		if !p.opts.QuotedNames {
			return "", p.errorf("quoted name found, but quoted names are not enabled")
		}
		return p.parseQuoted()
	}
	start := p.pos
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case '(', ')', ',', ':', ';', '[', ']', '\n', '\r':
			return strings.TrimSpace(p.input[start:p.pos]), nil
		}
		p.pos++
	}
	return strings.TrimSpace(p.input[start:p.pos]), nil
}

func (p *parser) parseQuoted() (string, error) {
	p.pos++ // opening quote
	var b strings.Builder
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '\'' {
			if p.pos+1 < len(p.input) && p.input[p.pos+1] == '\'' {
				b.WriteByte('\'')
				p.pos += 2
				continue
			}
			p.pos++
			return b.String(), nil
		}
		b.WriteByte(c)
		p.pos++
	}
	return "", p.errorf("unterminated quoted name")
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E' {
			p.pos++
			continue
		}
		break
	}
	if start == p.pos {
		return 0, p.errorf("expected a number")
	}
	f, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, p.errorf("invalid number %q", p.input[start:p.pos])
	}
	return f, nil
}

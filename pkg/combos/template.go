package combos

import (
	"strings"

	"github.com/arthur-debert/combogen/pkg/errors"
)

type segment struct {
	text    string
	isToken bool
}

// Template is a parsed template ready for repeated rendering.
type Template struct {
	source   string
	segments []segment
	tokens   []string
}

// ParseTemplate splits text into literal runs and placeholder tokens.
func ParseTemplate(text string) (*Template, error) {
	t := &Template{source: text}
	seen := make(map[string]bool)

	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			t.segments = append(t.segments, segment{text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(text); {
		c := text[i]
		switch c {
		case '{':
			if i+1 < len(text) && text[i+1] == '{' {
				lit.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(text[i+1:], '}')
			if end < 0 {
				return nil, errors.New(errors.ErrTemplateSyntax, "unterminated placeholder").
					WithDetail("offset", i)
			}
			name := text[i+1 : i+1+end]
			if name == "" || strings.ContainsRune(name, '{') {
				return nil, errors.Newf(errors.ErrTemplateSyntax, "malformed placeholder %q", "{"+name+"}").
					WithDetail("offset", i)
			}
			flush()
			t.segments = append(t.segments, segment{text: name, isToken: true})
			if !seen[name] {
				seen[name] = true
				t.tokens = append(t.tokens, name)
			}
			i += end + 2
		case '}':
			if i+1 < len(text) && text[i+1] == '}' {
				lit.WriteByte('}')
				i += 2
				continue
			}
			return nil, errors.New(errors.ErrTemplateSyntax, "single '}' encountered in template").
				WithDetail("offset", i)
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()

	return t, nil
}

// Tokens returns the distinct placeholder tokens in order of first appearance.
func (t *Template) Tokens() []string {
	out := make([]string, len(t.tokens))
	copy(out, t.tokens)
	return out
}

// Source returns the unparsed template text.
func (t *Template) Source() string {
	return t.source
}

// Render substitutes every token with its value from values.
func (t *Template) Render(values map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(t.source))
	for _, seg := range t.segments {
		if !seg.isToken {
			b.WriteString(seg.text)
			continue
		}
		v, ok := values[seg.text]
		if !ok {
			return "", errors.Newf(errors.ErrTemplateUnresolved, "placeholder {%s} has no value", seg.text).
				WithDetail("token", seg.text)
		}
		b.WriteString(v)
	}
	return b.String(), nil
}

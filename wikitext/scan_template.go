package wikitext

import "strings"

const (
	openCall      = "{{"
	openCallParam = "{{{"
	closeCall     = "}}"
	closeParam    = "}}}"
)

// callOpening is the result of the lookahead at "{{" or "{{{".
type callOpening struct {
	kind   CallKind
	opener string

	// name is the raw name, including surrounding whitespace.
	name string

	// closer is set if the call closes right after the name.
	closer string
}

// width returns the number of bytes consumed by the opening, the name and the closer if any.
func (m callOpening) width() int {
	return len(m.opener) + len(m.name) + len(m.closer)
}

// matchCallOpening checks if the substr starts with a template, a parser function,
// a variable or a template parameter.
//
// The name ends at the first '|', at the closing braces, or, for the double brace calls,
// at the first ':'. Names containing brackets, angle brackets or stray braces are rejected,
// as well as names consisting of whitespace only.
func matchCallOpening(substr string) (m callOpening, ok bool) {
	switch {
	case strings.HasPrefix(substr, openCallParam):
		m.opener = openCallParam
		m.kind = KindTemplateParam
	case strings.HasPrefix(substr, openCall):
		m.opener = openCall
	default:
		return
	}

	body := substr[len(m.opener):]
	sep := byte(0)

scan:
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '|':
			m.name = body[:i]
			sep = '|'
			break scan

		case ':':
			if m.kind == KindTemplateParam {
				continue
			}
			m.name = body[:i]
			sep = ':'
			break scan

		case '}':
			closer := closeCall
			if m.kind == KindTemplateParam {
				closer = closeParam
			}
			if !strings.HasPrefix(body[i:], closer) {
				return m, false
			}
			m.name = body[:i]
			m.closer = closer
			break scan

		case '{', '[', ']', '<', '>':
			return m, false
		}
	}

	// the input ended before the name did
	if sep == 0 && m.closer == "" {
		return m, false
	}

	trimmed := strings.TrimSpace(m.name)
	if trimmed == "" {
		return m, false
	}

	if m.kind == KindTemplateParam {
		return m, true
	}

	switch {
	case IsMagicWord(trimmed):
		m.kind = KindVariable
	case sep == ':' || strings.Contains(trimmed, "#"):
		m.kind = KindParserFunction
	default:
		m.kind = KindTemplate
	}

	return m, true
}

// templateScanner recognizes the opening of a call and, as the controlling scanner
// of the call's context, its closing braces.
type templateScanner struct {
	open *Template
}

func (s *templateScanner) scan(ctx *parseContext) bool {
	if s.open != nil {
		if ctx.owner != s {
			return false
		}
		return s.scanClose(ctx)
	}

	if ctx.cur.char() != '{' {
		return false
	}

	return s.scanOpen(ctx)
}

func (s *templateScanner) scanOpen(ctx *parseContext) bool {
	cur := ctx.cur

	m, ok := matchCallOpening(cur.peek(0))
	if !ok {
		return false
	}

	start := cur.i
	t := newTemplate(m.kind, m.opener, m.name)

	// the call has no parameters, so there is no need for a new context
	if m.closer != "" {
		t.closer = m.closer
		t.finish(cur.slice(start, start+m.width()))
		ctx.addNode(t)
		cur.skip(m.width())
		return true
	}

	s.open = t
	ctx.enter(t, s, start)

	// stopping right before the separator, so the parameter scanner will see it
	cur.skip(m.width())
	return true
}

// scanClose closes the call at "}}". A template parameter is closed at "}}}" if present,
// and at "}}" otherwise.
func (s *templateScanner) scanClose(ctx *parseContext) bool {
	cur := ctx.cur

	closer := closeCall
	if s.open.Kind == KindTemplateParam && cur.peek(len(closeParam)) == closeParam {
		closer = closeParam
	}

	if cur.peek(len(closer)) != closer {
		return false
	}

	s.open.closer = closer
	ctx.exit(cur.i + len(closer))
	cur.skip(len(closer))
	return true
}

func (s *templateScanner) afterParse(ctx *parseContext) {
	if s.open == nil || ctx.node != s.open {
		return
	}

	t := s.open
	s.open = nil

	// never closed, nothing to hoist
	if t.closer == "" {
		return
	}

	hoistTrailingBlank(ctx.cur.top(), t)
}

// hoistTrailingBlank moves the blank space which precedes the closing braces out of the
// template, making it the template's next siblings in the parent context.
func hoistTrailingBlank(parentCtx *parseContext, t *Template) {
	direct := t.cutTrailingBlank()

	var tail []Node
	if len(t.parts) > 1 {
		if p, ok := t.parts[len(t.parts)-1].(*Parameter); ok {
			tail = p.cutTrailingBlank()
		}
	}

	tail = append(tail, direct...)
	t.hoisted = len(tail)

	for _, n := range tail {
		parentCtx.addNode(n)
	}
}

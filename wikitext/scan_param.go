package wikitext

import "strings"

// paramScanner splits the content of a template or a link into parameters.
//
// One paramScanner serves a single call: it's a part of the call's context, where it
// opens the first parameter, and it's the controlling scanner of every parameter
// context of that call, where it closes the current parameter and opens the next one.
type paramScanner struct {
	call builder

	// closer is the closing sequence of the call. Parameters are closed right before it,
	// so the call's own scanner sees the same sequence in the call's context.
	closer string

	// anonymous counts the anonymous parameters, which are numbered from 1.
	anonymous int

	// opened counts all parameters of the call.
	opened int

	open *Parameter
}

func newParamScanner(call builder) *paramScanner {
	s := &paramScanner{call: call}

	switch c := call.(type) {
	case *Template:
		// a template parameter is closed by "}}}", which starts with "}}" as well
		s.closer = closeCall
	case *Link:
		s.closer = closeInternalLink
		if c.Kind == ExternalLink {
			s.closer = closeExternalLink
		}
	}

	return s
}

// startsAt reports if the byte starts a new parameter of the call.
func (s *paramScanner) startsAt(b byte) bool {
	switch c := s.call.(type) {
	case *Link:
		// an external link has a single label, which starts after the first space
		if c.Kind == ExternalLink {
			return s.opened == 0 && b == ' '
		}
		return b == '|'

	case *Template:
		if s.opened == 0 && (c.Kind == KindParserFunction || c.Kind == KindVariable) {
			return b == '|' || b == ':'
		}
		return b == '|'
	}

	return false
}

func (s *paramScanner) scan(ctx *parseContext) bool {
	cur := ctx.cur

	// inside the call's context: only the first parameter can start here
	if s.open == nil {
		if !s.startsAt(cur.char()) {
			return false
		}
		s.begin(ctx)
		return true
	}

	if ctx.owner != s {
		return false
	}

	// closing the parameter one level deeper than the call, and handing the same
	// byte over to the call's context on the next iteration
	if cur.peek(len(s.closer)) == s.closer {
		ctx.exit(cur.i)
		cur.rollback(1)
		return true
	}

	if !s.startsAt(cur.char()) {
		return false
	}

	ctx.exit(cur.i)
	s.begin(cur.top())
	return true
}

// begin opens a new parameter at the current position within the call's context.
func (s *paramScanner) begin(ctx *parseContext) {
	cur := ctx.cur
	start := cur.i
	prefix := cur.slice(start, start+1)

	p := &Parameter{prefix: prefix}
	width := len(prefix)

	if prefix == "|" {
		if key, ok := lookupParamKey(cur.input[start+1:]); ok {
			p.named = true
			p.name = strings.TrimSpace(key)
			p.key = Tokenize(key)
			width += len(key) + 1
		}
	}

	if !p.named {
		s.anonymous++
		p.index = s.anonymous
	}

	s.opened++
	s.open = p

	ctx.enter(p, s, start)
	cur.skip(width)
}

func (s *paramScanner) afterParse(ctx *parseContext) {
	if s.open != nil && ctx.node == s.open {
		s.open = nil
	}
}

// lookupParamKey checks if the parameter starting at the substr is named, that is if
// an '=' comes before any separator, closing sequence or nested markup.
// It returns the raw key without the '='.
func lookupParamKey(substr string) (key string, ok bool) {
	for i := 0; i < len(substr); i++ {
		switch substr[i] {
		case '=':
			return substr[:i], true
		case '|', '{', '}', '[', ']', '<', '>':
			return "", false
		}
	}
	return "", false
}

package wikitext

import (
	"regexp"
	"strings"
)

const (
	openInternalLink  = "[["
	closeInternalLink = "]]"
	openExternalLink  = "["
	closeExternalLink = "]"

	filePrefix = "File:"
)

// externalLinkRe matches the opening of an external link up to the separator, which is
// either the space before the label or the closing bracket.
var externalLinkRe = regexp.MustCompile(`^\[((?i:` + schemeAlternation() + `)[^\s\[\]<>"{}|]+)([ \]])`)

// linkOpening is the result of the lookahead at '['.
type linkOpening struct {
	kind   LinkType
	opener string

	// target is the raw target, including surrounding whitespace.
	target string

	// closer is set if the link closes right after the target.
	closer string
}

func (m linkOpening) width() int {
	return len(m.opener) + len(m.target) + len(m.closer)
}

// matchLinkOpening checks if the substr starts with an internal, a file or an external link.
func matchLinkOpening(substr string) (m linkOpening, ok bool) {
	if strings.HasPrefix(substr, openInternalLink) {
		return matchInternalLink(substr)
	}

	sub := externalLinkRe.FindStringSubmatch(substr)
	if sub == nil {
		return m, false
	}

	m.kind = ExternalLink
	m.opener = openExternalLink
	m.target = sub[1]
	if sub[2] == closeExternalLink {
		m.closer = closeExternalLink
	}

	return m, true
}

func matchInternalLink(substr string) (m linkOpening, ok bool) {
	m.opener = openInternalLink
	body := substr[len(openInternalLink):]
	found := false

scan:
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '|':
			m.target = body[:i]
			found = true
			break scan

		case ']':
			if !strings.HasPrefix(body[i:], closeInternalLink) {
				return m, false
			}
			m.target = body[:i]
			m.closer = closeInternalLink
			found = true
			break scan

		case '[', '{', '}', '<', '>', '\n':
			return m, false
		}
	}

	trimmed := strings.TrimSpace(m.target)
	if !found || trimmed == "" {
		return m, false
	}

	m.kind = InternalLink
	if strings.HasPrefix(trimmed, filePrefix) {
		m.kind = File
	}

	return m, true
}

// linkScanner recognizes the opening of a link and, as the controlling scanner
// of the link's context, its closing bracket(s).
type linkScanner struct {
	open *Link
}

func (s *linkScanner) scan(ctx *parseContext) bool {
	cur := ctx.cur

	if s.open != nil {
		if ctx.owner != s {
			return false
		}

		closer := closeInternalLink
		if s.open.Kind == ExternalLink {
			closer = closeExternalLink
		}

		if cur.peek(len(closer)) != closer {
			return false
		}

		ctx.exit(cur.i + len(closer))
		cur.skip(len(closer))
		return true
	}

	if cur.char() != '[' {
		return false
	}

	// links don't nest, only a parameter of a link can contain one
	if _, ok := ctx.node.(*Link); ok {
		return false
	}

	m, ok := matchLinkOpening(cur.peek(0))
	if !ok {
		return false
	}

	start := cur.i
	l := newLink(m.kind, m.opener, m.target)

	if m.closer != "" {
		l.finish(cur.slice(start, start+m.width()))
		ctx.addNode(l)
		cur.skip(m.width())
		return true
	}

	s.open = l
	ctx.enter(l, s, start)

	// stopping right before the separator, so the parameter scanner will see it
	cur.skip(m.width())
	return true
}

func (s *linkScanner) afterParse(ctx *parseContext) {
	if s.open != nil && ctx.node == s.open {
		s.open = nil
	}
}

package wikitext

import (
	"regexp"
	"strings"
)

var (
	// behaviorSwitchRe matches one of the known double-underscore switches.
	behaviorSwitchRe = regexp.MustCompile(`^__(?:` + strings.Join(behaviorSwitches, "|") + `)__`)

	// redirectRe matches the keyword of a redirect directive up to the opening of its link.
	redirectRe = regexp.MustCompile(`(?i)^#REDIRECT\s+\[\[`)
)

// specialScanner recognizes behavior switches and redirect directives.
// Both are consumed in one step and never open a context.
type specialScanner struct{}

func (specialScanner) scan(ctx *parseContext) bool {
	cur := ctx.cur

	switch cur.char() {
	case '_':
		sw := behaviorSwitchRe.FindString(cur.peek(0))
		if sw == "" {
			return false
		}
		ctx.addNode(NewBehaviorSwitch(sw))
		cur.skip(len(sw))
		return true

	case '\n':
		return scanRedirect(ctx, 1)

	case '#':
		if cur.i != 0 {
			return false
		}
		return scanRedirect(ctx, 0)
	}

	return false
}

func (specialScanner) afterParse(*parseContext) {}

// scanRedirect matches a directive which starts lead bytes after the current position.
// The link must be closed on the line where it was opened.
func scanRedirect(ctx *parseContext, lead int) bool {
	cur := ctx.cur
	substr := cur.peek(0)

	head := redirectRe.FindString(substr[lead:])
	if head == "" {
		return false
	}

	rest := substr[lead+len(head):]
	if eol := strings.IndexByte(rest, '\n'); eol >= 0 {
		rest = rest[:eol]
	}

	end := strings.Index(rest, closeInternalLink)
	if end < 0 {
		return false
	}

	directive := substr[:lead+len(head)+end+len(closeInternalLink)]

	r := &Redirect{}
	for _, n := range Tokenize(directive) {
		r.appendPart(n)
	}
	r.finish(directive)

	ctx.addNode(r)
	cur.skip(len(directive))
	return true
}

package wikitext

import "strings"

const (
	openComment  = "<!--"
	closeComment = "-->"

	openNowiki  = "<nowiki>"
	closeNowiki = "</nowiki>"
)

// selfClosingNowiki lists the accepted spellings of an empty verbatim block.
var selfClosingNowiki = []string{"<nowiki/>", "<nowiki />"}

// htmlScanner recognizes comments and verbatim blocks. Both are consumed in one step
// and never open a context.
type htmlScanner struct{}

func (htmlScanner) scan(ctx *parseContext) bool {
	cur := ctx.cur

	if cur.char() != '<' {
		return false
	}

	substr := cur.peek(0)

	var (
		node  Node
		width int
	)

	switch {
	case strings.HasPrefix(substr, openComment):
		end := cur.index(closeComment, cur.i+len(openComment))
		if end < 0 {
			return false
		}
		width = end - cur.i + len(closeComment)
		node = NewComment(substr[:width])

	case strings.HasPrefix(substr, openNowiki):
		end := cur.index(closeNowiki, cur.i+len(openNowiki))
		if end < 0 {
			return false
		}
		content := cur.slice(cur.i+len(openNowiki), end)
		node = &Element{Open: openNowiki, Content: content, Close: closeNowiki}
		width = end - cur.i + len(closeNowiki)

	default:
		tag, ok := matchSelfClosingNowiki(substr)
		if !ok {
			return false
		}
		node = &Element{Open: tag}
		width = len(tag)
	}

	ctx.addNode(node)
	cur.skip(width)
	return true
}

func (htmlScanner) afterParse(*parseContext) {}

func matchSelfClosingNowiki(substr string) (string, bool) {
	for _, tag := range selfClosingNowiki {
		if strings.HasPrefix(substr, tag) {
			return tag, true
		}
	}
	return "", false
}

// Package wikitext converts MediaWiki markup into a lossless tree.
//
// The parser understands templates, parser functions, variables and template parameters
// ("{{...}}", "{{{...}}}"), internal, file and external links ("[[...]]", "[...]"),
// comments, "<nowiki>" blocks, behavior switches ("__NOTOC__") and redirect directives.
// Tables, lists and headings are left as plain text.
//
// # Policies
//
//  1. Parsing never fails. Anything which does not form a complete construct is plain text.
//     An opening without its closing sequence is turned into text, while the constructs
//     nested in it are kept.
//  2. Every node's String returns the exact part of the input the node was parsed from,
//     so String of the root is always equal to the input.
//  3. Blank space right before the closing braces of a template is moved out of the template
//     and becomes its next sibling. The template's String still covers that space.
//  4. The tree is not modified after Parse returns and may be read concurrently.
//
// # Scanning
//
// The input is scanned byte by byte. Each level of nesting has its own context with an
// ordered list of scanners; the byte is offered to them in order until one claims it.
// A scanner which recognizes an opening either emits a complete node and skips over it,
// or enters a new context and becomes its controlling scanner, the only one allowed
// to close it. Bytes nobody claims are collected as text and split into whitespace and
// glyph leaves.
package wikitext

import "unicode"

// Parse converts the input into a tree and returns its root.
func Parse(input string) *Fragment {
	root := &Fragment{}

	cur := newCursor(input)
	cur.push(newParseContext(root, nil, cur, 0))

	for cur.i = 0; cur.i < len(input); cur.i++ {
		cur.top().dispatch()
	}

	// the calls still open at the end of the input have no closing sequence
	unwind(cur)

	rootCtx := cur.top()
	rootCtx.text.flush(rootCtx)
	root.finish(input)

	return root
}

// Tokenize splits a plain string into whitespace and glyph leaves, without looking for any markup.
// A whitespace-only string becomes a single leaf. An empty string produces no leaves.
func Tokenize(s string) []Node {
	var (
		out     []Node
		start   int
		inSpace bool
	)

	for i, r := range s {
		space := unicode.IsSpace(r)

		if i == 0 {
			inSpace = space
			continue
		}

		if space != inSpace {
			out = append(out, newTextLeaf(s[start:i], inSpace))
			start = i
			inSpace = space
		}
	}

	if start < len(s) {
		out = append(out, newTextLeaf(s[start:], inSpace))
	}

	return out
}

func newTextLeaf(s string, space bool) *Text {
	if space {
		return NewWhitespace(s)
	}
	return NewGlyph(s)
}

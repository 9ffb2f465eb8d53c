package wikitext

import (
	"strconv"
	"strings"
	"unicode"
)

// NodeType defines the semantic kind of a tree node.
type NodeType int

const (
	NodeRoot NodeType = iota
	NodeWhitespace
	NodeComment
	NodeGlyph
	NodeBehaviorSwitch
	NodeRedirect
	NodeElement
	NodeLink
	NodeParameter
	NodeTemplate

	// NumNodeTypes is the total number of Node types. Should be placed as last const.
	NumNodeTypes
)

var nodeTypeToString = [NumNodeTypes]string{
	NodeRoot:           "Root",
	NodeWhitespace:     "Whitespace",
	NodeComment:        "Comment",
	NodeGlyph:          "Glyph",
	NodeBehaviorSwitch: "BehaviorSwitch",
	NodeRedirect:       "Redirect",
	NodeElement:        "Element",
	NodeLink:           "Link",
	NodeParameter:      "Parameter",
	NodeTemplate:       "Template",
}

func (t NodeType) String() string {
	if t < 0 || t >= NumNodeTypes {
		return "NodeType(" + strconv.Itoa(int(t)) + ")"
	}
	return nodeTypeToString[t]
}

// Node is a part of the parsed tree.
//
// String always returns the exact substring of the input the node was parsed from,
// so String of the root reproduces the whole input.
type Node interface {
	Type() NodeType
	String() string
}

// Parent is a Node which owns an ordered sequence of child nodes.
type Parent interface {
	Node

	// Parts returns the node's children in source order.
	Parts() []Node
}

// builder is implemented by every parent the parser populates through a context.
type builder interface {
	Parent
	appendPart(n Node)
	dropLastPart()
	finish(raw string)
}

// Text is an immutable leaf node.
type Text struct {
	typ     NodeType
	content string
}

func (t *Text) Type() NodeType { return t.typ }
func (t *Text) String() string { return t.content }

// IsBlank reports if the leaf is blank space, that is whitespace or a comment.
func (t *Text) IsBlank() bool {
	return t.typ == NodeWhitespace || t.typ == NodeComment
}

// NewWhitespace creates a whitespace leaf. It panics if s contains anything but whitespace.
func NewWhitespace(s string) *Text {
	if s == "" || strings.IndexFunc(s, isNotSpace) >= 0 {
		panic("wikitext: whitespace leaf with non-whitespace content " + strconv.Quote(s))
	}
	return &Text{typ: NodeWhitespace, content: s}
}

// NewGlyph creates a leaf for a word fragment. It panics if s contains whitespace.
func NewGlyph(s string) *Text {
	if s == "" || strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		panic("wikitext: glyph leaf with whitespace content " + strconv.Quote(s))
	}
	return &Text{typ: NodeGlyph, content: s}
}

// NewComment creates a comment leaf from the whole "<!-- ... -->" sequence.
func NewComment(s string) *Text {
	return &Text{typ: NodeComment, content: s}
}

// NewBehaviorSwitch creates a leaf for a double-underscore switch, e.g. "__NOTOC__".
func NewBehaviorSwitch(s string) *Text {
	return &Text{typ: NodeBehaviorSwitch, content: s}
}

func isNotSpace(r rune) bool {
	return !unicode.IsSpace(r)
}

// isBlank reports if the node is a blank-space leaf.
func isBlank(n Node) bool {
	t, ok := n.(*Text)
	return ok && t.IsBlank()
}

// parent implements the shared part of every parent node.
type parent struct {
	parts []Node
	raw   string
}

func (p *parent) Parts() []Node { return p.parts }
func (p *parent) String() string { return p.raw }

func (p *parent) appendPart(n Node) {
	p.parts = append(p.parts, n)
}

func (p *parent) dropLastPart() {
	p.parts = p.parts[:len(p.parts)-1]
}

func (p *parent) finish(raw string) {
	p.raw = raw
}

// cutTrailingBlank removes the run of blank-space leaves at the tail of the
// parts and returns it in source order.
func (p *parent) cutTrailingBlank() []Node {
	i := len(p.parts)
	for i > 0 && isBlank(p.parts[i-1]) {
		i--
	}

	// the siblings hoisted out of a nested template stay right after it
	if i > 0 {
		if t, ok := p.parts[i-1].(*Template); ok {
			i = min(i+t.hoisted, len(p.parts))
		}
	}

	tail := p.parts[i:]
	if len(tail) == 0 {
		return nil
	}

	// the tail must not share the backing array with the parts anymore
	out := make([]Node, len(tail))
	copy(out, tail)
	p.parts = p.parts[:i]
	return out
}

// Fragment is a plain concatenation container. The parser returns the document
// root as a Fragment of type [NodeRoot].
type Fragment struct {
	parent
}

func (f *Fragment) Type() NodeType { return NodeRoot }

// Redirect wraps the tokens of a "#REDIRECT [[Target]]" directive.
type Redirect struct {
	parent
}

func (r *Redirect) Type() NodeType { return NodeRedirect }

// Target returns the trimmed page name the redirect points to, without the
// link brackets and any label after a pipe.
func (r *Redirect) Target() string {
	s := r.raw
	start := strings.Index(s, "[[")
	if start < 0 {
		return ""
	}
	s = s[start+2:]
	if end := strings.Index(s, "]]"); end >= 0 {
		s = s[:end]
	}
	if pipe := strings.IndexByte(s, '|'); pipe >= 0 {
		s = s[:pipe]
	}
	return strings.TrimSpace(s)
}

// Element wraps verbatim content between a fixed opening and closing tag,
// e.g. "<nowiki>{{not a template}}</nowiki>". The content is never parsed.
type Element struct {
	Open    string
	Content string
	Close   string
}

func (e *Element) Type() NodeType { return NodeElement }
func (e *Element) String() string { return e.Open + e.Content + e.Close }

// Parts returns nil, the content of an Element is stored raw.
func (e *Element) Parts() []Node { return nil }

// SelfClosing reports if the element was written as a single tag, e.g. "<nowiki/>".
func (e *Element) SelfClosing() bool { return e.Close == "" }

// joinParts concatenates the source of the nodes. The blank space hoisted out of
// a template is already a part of the template's source and is skipped.
func joinParts(ns []Node) string {
	var b strings.Builder
	for i := 0; i < len(ns); i++ {
		b.WriteString(ns[i].String())
		if t, ok := ns[i].(*Template); ok {
			i += t.hoisted
		}
	}
	return b.String()
}

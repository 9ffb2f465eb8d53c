package wikitext

import (
	"strconv"
	"strings"
)

// CallKind classifies a double or triple brace construct.
type CallKind int

const (
	// KindTemplate is a plain transclusion, e.g. "{{Infobox|...}}".
	KindTemplate CallKind = iota

	// KindVariable is a built-in magic word, e.g. "{{PAGENAME}}".
	KindVariable

	// KindParserFunction is a call with a ':' separator after the name or a '#' inside it,
	// e.g. "{{#if:...}}".
	KindParserFunction

	// KindTemplateParam is a triple brace parameter reference, e.g. "{{{1|default}}}".
	KindTemplateParam
)

var callKindToString = map[CallKind]string{
	KindTemplate:       "Template",
	KindVariable:       "Variable",
	KindParserFunction: "ParserFunction",
	KindTemplateParam:  "TemplateParam",
}

func (k CallKind) String() string {
	return callKindToString[k]
}

// LinkType classifies a bracketed link.
type LinkType int

const (
	InternalLink LinkType = iota
	ExternalLink
	File
)

var linkTypeToString = map[LinkType]string{
	InternalLink: "InternalLink",
	ExternalLink: "ExternalLink",
	File:         "File",
}

func (t LinkType) String() string {
	return linkTypeToString[t]
}

// Parameter is a single argument of a template, a template parameter or a link.
//
// A Parameter is either anonymous, then it has a 1-based Index assigned in the order
// of appearance within the call, or named, then it has a Name taken from the text
// before the first '='. The name of a template is stored as the anonymous
// Parameter with Index 0.
type Parameter struct {
	parent

	prefix string
	index  int
	name   string
	named  bool

	// key holds the tokens of the raw name, including surrounding whitespace.
	key []Node
}

func (p *Parameter) Type() NodeType { return NodeParameter }

// Prefix returns the separator which started the parameter: "|", ":" or " ".
// It is empty for the template name.
func (p *Parameter) Prefix() string { return p.prefix }

// Index returns the position of an anonymous parameter, or 0 for a named one.
func (p *Parameter) Index() int { return p.index }

// Name returns the trimmed name of a named parameter.
func (p *Parameter) Name() string { return p.name }

// IsNamed reports if the parameter was written as "name=value".
func (p *Parameter) IsNamed() bool { return p.named }

// Key returns the lookup key of the parameter: the trimmed name for the named
// parameters and the decimal index for the anonymous ones.
func (p *Parameter) Key() string {
	if p.named {
		return p.name
	}
	return strconv.Itoa(p.index)
}

// KeyParts returns the tokens of the raw parameter name. It's nil for anonymous parameters.
func (p *Parameter) KeyParts() []Node { return p.key }

// Value returns the concatenated source of the value parts.
func (p *Parameter) Value() string { return joinParts(p.parts) }

// flatten returns the parameter as plain tokens followed by its value parts.
// It's used when the enclosing call is never closed.
func (p *Parameter) flatten() []Node {
	var out []Node
	if p.prefix != "" {
		out = append(out, Tokenize(p.prefix)...)
	}
	if p.named {
		out = append(out, p.key...)
		out = append(out, NewGlyph("="))
	}
	return append(out, p.parts...)
}

func newNameParameter(raw string) *Parameter {
	p := &Parameter{}
	p.parts = Tokenize(raw)
	p.finish(raw)
	return p
}

// Template is a double or triple brace call. Its first part is always the name
// parameter, followed by the real parameters.
type Template struct {
	parent

	Kind CallKind

	opener string
	closer string

	// hoisted is the number of the template's next siblings moved out of it.
	hoisted int
}

func (t *Template) Type() NodeType { return NodeTemplate }

// Opener returns "{{" or "{{{".
func (t *Template) Opener() string { return t.opener }

// Closer returns the closing braces consumed by the call.
func (t *Template) Closer() string { return t.closer }

// Hoisted returns the number of the template's next siblings which were moved out of it
// from before the closing braces. Their source is covered by the template's String.
func (t *Template) Hoisted() int { return t.hoisted }

// NameParam returns the pseudo-parameter holding the name of the call.
func (t *Template) NameParam() *Parameter {
	return t.parts[0].(*Parameter)
}

// Name returns the trimmed name of the call, e.g. "Infobox" or "#if".
func (t *Template) Name() string {
	return strings.TrimSpace(t.NameParam().Value())
}

// Params returns the real parameters of the call in source order.
func (t *Template) Params() []*Parameter {
	return paramsOf(t.parts[1:])
}

// Param returns the parameter with the provided key, or nil if none.
// When the key is repeated, the last occurrence wins.
func (t *Template) Param(key string) *Parameter {
	return lastParam(t.Params(), key)
}

func newTemplate(kind CallKind, opener, name string) *Template {
	t := &Template{Kind: kind, opener: opener}
	t.appendPart(newNameParameter(name))
	return t
}

// flatten returns the opener and the name of the template as plain tokens,
// followed by its parameters.
func (t *Template) flatten() []Node {
	out := Tokenize(t.opener)
	out = append(out, t.NameParam().parts...)
	return append(out, t.parts[1:]...)
}

// Link is an internal, file or external link. The parts of a Link are its parameters.
type Link struct {
	parent

	Kind LinkType

	opener string
	target []Node
}

func (l *Link) Type() NodeType { return NodeLink }

// Target returns the trimmed link target: a page name or an URL.
func (l *Link) Target() string {
	return strings.TrimSpace(joinParts(l.target))
}

// TargetParts returns the tokens of the raw target.
func (l *Link) TargetParts() []Node { return l.target }

// Params returns the parameters of the link, e.g. the label or the file options.
func (l *Link) Params() []*Parameter {
	return paramsOf(l.parts)
}

// Param returns the parameter with the provided key, or nil if none.
func (l *Link) Param(key string) *Parameter {
	return lastParam(l.Params(), key)
}

// Label returns the value of the last anonymous parameter, which is what the
// link displays, or an empty string if the link has no parameters.
func (l *Link) Label() string {
	params := l.Params()
	for i := len(params) - 1; i >= 0; i-- {
		if !params[i].named {
			return strings.TrimSpace(params[i].Value())
		}
	}
	return ""
}

func newLink(kind LinkType, opener, target string) *Link {
	return &Link{
		Kind:   kind,
		opener: opener,
		target: Tokenize(target),
	}
}

func (l *Link) flatten() []Node {
	out := Tokenize(l.opener)
	out = append(out, l.target...)
	return append(out, l.parts...)
}

func paramsOf(ns []Node) []*Parameter {
	out := make([]*Parameter, 0, len(ns))
	for _, n := range ns {
		if p, ok := n.(*Parameter); ok {
			out = append(out, p)
		}
	}
	return out
}

func lastParam(params []*Parameter, key string) *Parameter {
	for i := len(params) - 1; i >= 0; i-- {
		if params[i].Key() == key {
			return params[i]
		}
	}
	return nil
}

package wikitext

// scanner is a pluggable scanning module. Each context owns an ordered list of scanners
// and offers them the current byte until one of them claims it.
type scanner interface {
	// scan tries to consume the input at the current cursor position.
	// It returns false if the scanner does not recognize anything there.
	scan(ctx *parseContext) bool

	// afterParse is invoked on every scanner of the context when the context exits.
	afterParse(ctx *parseContext)
}

// contextKind selects the set of scanners a context is built with.
type contextKind int

const (
	// contextPlain is the root context, which has no controlling scanner.
	contextPlain contextKind = iota

	// contextCall is the context of an open template or link.
	contextCall

	// contextParam is the context of an open parameter of a template or a link.
	contextParam
)

type scannerID int

const (
	scanController scannerID = iota
	scanLink
	scanParam
	scanTemplate
	scanSpecial
	scanHTML
	scanText
)

// scannerSets defines the priority order of the scanners per context kind.
// The controlling scanner always goes first, so it sees the closing sequence
// before anything nested can claim it.
var scannerSets = map[contextKind][]scannerID{
	contextPlain: {scanLink, scanTemplate, scanSpecial, scanHTML, scanText},
	contextCall:  {scanController, scanLink, scanParam, scanTemplate, scanSpecial, scanHTML, scanText},
	contextParam: {scanController, scanLink, scanTemplate, scanSpecial, scanHTML, scanText},
}

// parseContext binds a parent node under construction to the scanners populating it.
type parseContext struct {
	node builder

	// owner is the scanner which opened the context and is the only one allowed to close it.
	// It's nil for the root context.
	owner scanner

	cur *cursor

	// start is the position in the input where the node's source begins.
	start int

	scanners []scanner
	text     *textScanner
}

func kindOf(node builder, owner scanner) contextKind {
	if owner == nil {
		return contextPlain
	}
	if _, ok := node.(*Parameter); ok {
		return contextParam
	}
	return contextCall
}

func newParseContext(node builder, owner scanner, cur *cursor, start int) *parseContext {
	ctx := &parseContext{
		node:  node,
		owner: owner,
		cur:   cur,
		start: start,
		text:  &textScanner{},
	}

	ids := scannerSets[kindOf(node, owner)]
	ctx.scanners = make([]scanner, 0, len(ids))

	for _, id := range ids {
		var s scanner

		switch id {
		case scanController:
			s = owner
		case scanLink:
			s = &linkScanner{}
		case scanParam:
			s = newParamScanner(node)
		case scanTemplate:
			s = &templateScanner{}
		case scanSpecial:
			s = specialScanner{}
		case scanHTML:
			s = htmlScanner{}
		case scanText:
			s = ctx.text
		}

		ctx.scanners = append(ctx.scanners, s)
	}

	return ctx
}

// dispatch offers the current byte to the scanners in priority order.
// The text scanner is always the last one and never declines.
func (ctx *parseContext) dispatch() {
	for _, s := range ctx.scanners {
		if s.scan(ctx) {
			return
		}
	}
}

// addNode flushes the pending plain text and appends n to the context's node.
func (ctx *parseContext) addNode(n Node) {
	ctx.text.flush(ctx)
	ctx.node.appendPart(n)
}

// enter adds the node and opens a new context for it, controlled by the owner.
func (ctx *parseContext) enter(node builder, owner scanner, start int) *parseContext {
	ctx.addNode(node)

	next := newParseContext(node, owner, ctx.cur, start)
	ctx.cur.push(next)

	return next
}

// exit closes the context, making the node's source end at the provided position.
// Exiting a context which is not the current one is a no-op.
func (ctx *parseContext) exit(end int) {
	if ctx.cur.top() != ctx {
		return
	}

	ctx.cur.pop()
	ctx.text.flush(ctx)
	ctx.node.finish(ctx.cur.slice(ctx.start, end))

	for _, s := range ctx.scanners {
		s.afterParse(ctx)
	}

	ctx.owner = nil
}

// flattener is implemented by the parents which turn into plain text when their
// closing sequence is missing.
type flattener interface {
	builder
	flatten() []Node
}

// unwind turns the calls still open at the end of the input into plain text.
// The outermost open call is replaced in the root with its opening sequence and
// separators as text, followed by everything collected inside it. Complete nested
// nodes are kept. Every collected node is visited once, whatever the nesting depth.
func unwind(cur *cursor) {
	if len(cur.stack) < 2 {
		return
	}

	open := make(map[builder]*parseContext, len(cur.stack)-1)
	for _, ctx := range cur.stack[1:] {
		open[ctx.node] = ctx
	}

	rootCtx := cur.stack[0]
	outer := cur.stack[1].node.(flattener)
	cur.stack = cur.stack[:1]

	rootCtx.node.dropLastPart()
	rootCtx.spill(outer, open)
}

type spillFrame struct {
	node  flattener
	parts []Node
	next  int
}

// spill appends the flattened form of the open node to the context. Parameters and
// nested open calls are flattened in place, with the text still pending in their
// contexts placed after their parts.
func (ctx *parseContext) spill(node flattener, open map[builder]*parseContext) {
	stack := []spillFrame{{node: node, parts: node.flatten()}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.next == len(top.parts) {
			if c, ok := open[top.node]; ok {
				ctx.text.buf = append(ctx.text.buf, c.text.buf...)
			}
			stack = stack[:len(stack)-1]
			continue
		}

		n := top.parts[top.next]
		top.next++

		if f, ok := n.(flattener); ok {
			_, isParam := n.(*Parameter)
			if _, isOpen := open[f]; isParam || isOpen {
				stack = append(stack, spillFrame{node: f, parts: f.flatten()})
				continue
			}
		}

		switch v := n.(type) {
		case *Template:
			// the hoisted siblings must stay separate nodes right after their template
			ctx.addNode(v)
			end := min(top.next+v.hoisted, len(top.parts))
			for _, h := range top.parts[top.next:end] {
				ctx.node.appendPart(h)
			}
			top.next = end

		case *Text:
			if v.typ == NodeWhitespace || v.typ == NodeGlyph {
				ctx.text.buf = append(ctx.text.buf, v.content...)
				continue
			}
			ctx.addNode(v)

		default:
			ctx.addNode(n)
		}
	}
}

// textScanner accumulates the bytes nobody else claimed.
type textScanner struct {
	buf []byte
}

func (s *textScanner) scan(ctx *parseContext) bool {
	s.buf = append(s.buf, ctx.cur.char())
	return true
}

func (s *textScanner) afterParse(ctx *parseContext) {
	s.flush(ctx)
}

// flush splits the pending text into whitespace and glyph leaves and appends them to the node.
func (s *textScanner) flush(ctx *parseContext) {
	if len(s.buf) == 0 {
		return
	}

	for _, n := range Tokenize(string(s.buf)) {
		ctx.node.appendPart(n)
	}

	s.buf = s.buf[:0]
}

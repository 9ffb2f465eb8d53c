package wikitext

import "strings"

// cursor walks over the input string and keeps the stack of the open parse contexts.
//
// The driver loop advances the position by one byte per iteration, so every scanner
// which consumes more than the current byte adjusts the position with skip or rollback.
type cursor struct {
	input string
	i     int

	// stack is the chain of the open contexts from the root to the current one.
	// The bottom element is always the root context.
	stack []*parseContext

	// seen remembers the last lookup of every closing sequence searched with index.
	seen map[string]lookup
}

// lookup is a result of index: at is the first occurrence at or after from, or -1.
type lookup struct {
	from int
	at   int
}

func newCursor(input string) *cursor {
	return &cursor{input: input}
}

// peek returns the substring from the current position of at most limit bytes,
// or the whole rest of the input if the limit is not positive.
func (c *cursor) peek(limit int) string {
	if limit <= 0 || c.i+limit > len(c.input) {
		return c.input[c.i:]
	}
	return c.input[c.i : c.i+limit]
}

// char returns the byte at the current position.
func (c *cursor) char() byte {
	return c.input[c.i]
}

// index returns the position of the first occurrence of seq at or after from, or -1.
// A result is reused for any later from which it still answers, so repeated
// lookups of a missing or distant sequence don't rescan the input.
func (c *cursor) index(seq string, from int) int {
	if l, ok := c.seen[seq]; ok && from >= l.from && (l.at < 0 || from <= l.at) {
		return l.at
	}

	at := strings.Index(c.input[from:], seq)
	if at >= 0 {
		at += from
	}

	if c.seen == nil {
		c.seen = make(map[string]lookup)
	}
	c.seen[seq] = lookup{from: from, at: at}

	return at
}

func (c *cursor) slice(from, to int) string {
	return c.input[from:to]
}

// skip advances the position by n-1 bytes, since the driver loop accounts for the current one.
func (c *cursor) skip(n int) {
	c.i += n - 1
}

// rollback moves the position n bytes back.
func (c *cursor) rollback(n int) {
	c.i -= n
}

// top returns the current context.
func (c *cursor) top() *parseContext {
	// since there will always be a root context, 0 len should not be an issue
	return c.stack[len(c.stack)-1]
}

func (c *cursor) push(ctx *parseContext) {
	c.stack = append(c.stack, ctx)
}

// pop removes the current context and returns it.
func (c *cursor) pop() *parseContext {
	lastItemIdx := len(c.stack) - 1
	lastItem := c.stack[lastItemIdx]
	c.stack = c.stack[:lastItemIdx]
	return lastItem
}

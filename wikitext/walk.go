package wikitext

// Walk visits the tree in depth-first pre-order. The children of a node are skipped
// if fn returns false for it.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	p, ok := n.(Parent)
	if !ok {
		return
	}

	for _, child := range p.Parts() {
		Walk(child, fn)
	}
}

// Templates returns all calls of the tree in source order, including the nested ones.
func Templates(root Node) []*Template {
	var out []*Template
	Walk(root, func(n Node) bool {
		if t, ok := n.(*Template); ok {
			out = append(out, t)
		}
		return true
	})
	return out
}

// Links returns all links of the tree in source order, including the ones nested in calls.
func Links(root Node) []*Link {
	var out []*Link
	Walk(root, func(n Node) bool {
		if l, ok := n.(*Link); ok {
			out = append(out, l)
		}
		return true
	})
	return out
}

package wikitext

// SerializableNode is a JSON-friendly copy of a tree node.
type SerializableNode struct {
	Type    string `json:"type"`
	Content string `json:"content"`

	// Kind is the call kind of a template or the type of a link.
	Kind string `json:"kind,omitempty"`

	// Name is the name of a call, the target of a link or a redirect.
	Name string `json:"name,omitempty"`

	// Key is the trimmed name of a named parameter.
	Key string `json:"key,omitempty"`

	// Index is the position of an anonymous parameter, 0 for the name of a call.
	Index *int `json:"index,omitempty"`

	// Hoisted is the number of the template's next siblings whose source is
	// covered by the template's content.
	Hoisted int `json:"hoisted,omitempty"`

	Children []SerializableNode `json:"children"`
}

type serializeTask struct {
	parent   *SerializableNode
	childIdx int // index in parent.Children
	node     Node
}

// Serialize converts the tree rooted at n into its serializable form.
func Serialize(n Node) SerializableNode {
	out := serializeOne(n)

	// seed stack with root's children
	stack := make([]serializeTask, 0, len(out.Children))
	for i, child := range partsOf(n) {
		stack = append(stack, serializeTask{&out, i, child})
	}

	for len(stack) > 0 {
		// pop
		task := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// place in parent
		task.parent.Children[task.childIdx] = serializeOne(task.node)
		placed := &task.parent.Children[task.childIdx]

		for i, child := range partsOf(task.node) {
			stack = append(stack, serializeTask{placed, i, child})
		}
	}

	return out
}

func serializeOne(n Node) SerializableNode {
	sn := SerializableNode{
		Type:     n.Type().String(),
		Content:  n.String(),
		Children: make([]SerializableNode, len(partsOf(n))),
	}

	switch v := n.(type) {
	case *Template:
		sn.Kind = v.Kind.String()
		sn.Name = v.Name()
		sn.Hoisted = v.Hoisted()
	case *Link:
		sn.Kind = v.Kind.String()
		sn.Name = v.Target()
	case *Redirect:
		sn.Name = v.Target()
	case *Parameter:
		if v.IsNamed() {
			sn.Key = v.Name()
		} else {
			index := v.Index()
			sn.Index = &index
		}
	}

	return sn
}

func partsOf(n Node) []Node {
	if p, ok := n.(Parent); ok {
		return p.Parts()
	}
	return nil
}

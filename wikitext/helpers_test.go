package wikitext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// sources returns the source of every node.
func sources(ns []Node) []string {
	out := make([]string, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.String())
	}
	return out
}

func types(ns []Node) []NodeType {
	out := make([]NodeType, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.Type())
	}
	return out
}

// onlyTemplate parses the input and returns the root's first child, which must be a template.
func onlyTemplate(t *testing.T, input string) (*Fragment, *Template) {
	t.Helper()

	root := Parse(input)
	require.NotEmpty(t, root.Parts())

	tmpl, ok := root.Parts()[0].(*Template)
	require.True(t, ok, "expected a template, got %s", root.Parts()[0].Type())

	return root, tmpl
}

func onlyLink(t *testing.T, input string) *Link {
	t.Helper()

	root := Parse(input)
	require.Len(t, root.Parts(), 1)

	l, ok := root.Parts()[0].(*Link)
	require.True(t, ok, "expected a link, got %s", root.Parts()[0].Type())

	return l
}

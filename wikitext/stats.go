package wikitext

// Stats summarizes a parsed tree.
type Stats struct {
	Nodes           int `json:"nodes"`
	Templates       int `json:"templates"`
	Variables       int `json:"variables"`
	ParserFunctions int `json:"parser_functions"`
	TemplateParams  int `json:"template_params"`
	Links           int `json:"links"`
	ExternalLinks   int `json:"external_links"`
	Files           int `json:"files"`
	Parameters      int `json:"parameters"`
	Comments        int `json:"comments"`

	// MaxDepth is the length of the longest path from the root, the root itself excluded.
	MaxDepth int `json:"max_depth"`
}

// Measure walks the tree and counts its nodes. The name pseudo-parameters of the calls
// are not counted as parameters.
func Measure(root Node) Stats {
	var s Stats
	measure(root, 0, &s)
	return s
}

func measure(n Node, depth int, s *Stats) {
	s.Nodes++
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}

	switch v := n.(type) {
	case *Template:
		switch v.Kind {
		case KindTemplate:
			s.Templates++
		case KindVariable:
			s.Variables++
		case KindParserFunction:
			s.ParserFunctions++
		case KindTemplateParam:
			s.TemplateParams++
		}
		s.Parameters += len(v.Params())

	case *Link:
		switch v.Kind {
		case InternalLink:
			s.Links++
		case ExternalLink:
			s.ExternalLinks++
		case File:
			s.Files++
		}
		s.Parameters += len(v.Params())

	case *Text:
		if v.typ == NodeComment {
			s.Comments++
		}
	}

	if p, ok := n.(Parent); ok {
		for _, child := range p.Parts() {
			measure(child, depth+1, s)
		}
	}
}

package notation

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/Venkata-Vasanth/LL1-Parser/ll"
	"gopkg.in/yaml.v3"
)

// LoadDocument reads a grammar from a JSON or YAML document. The document
// has to be a mapping of non-terminals to lists of productions; the first
// key is the start symbol. Contrary to the line notation, any structural
// problem of the document is an error.
func LoadDocument(name string, r io.Reader) (*ll.Grammar, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading grammar %q: %w", name, err)
	}
	return ParseDocument(name, data)
}

// ParseDocument is like LoadDocument, but operates on a byte slice.
func ParseDocument(name string, data []byte) (*ll.Grammar, error) {
	var doc yaml.Node // yaml.Node keeps the order of mapping keys
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("grammar %q is not a valid document: %w", name, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("grammar %q: empty document", name)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, docError(name, root, "expected a mapping of non-terminals to productions")
	}
	b := ll.NewGrammarBuilder(name)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		lhs := ll.Classify(key.Value)
		if key.Kind != yaml.ScalarNode || !lhs.IsNonTerminal() {
			return nil, docError(name, key, fmt.Sprintf("%q is not a non-terminal", key.Value))
		}
		if value.Kind != yaml.SequenceNode {
			return nil, docError(name, value, "expected a list of productions for "+lhs.Name)
		}
		for _, prod := range value.Content {
			rhs, err := production(name, prod)
			if err != nil {
				return nil, err
			}
			rb := b.LHS(lhs.Name)
			for _, A := range rhs {
				rb.Sym(A)
			}
			rb.End()
		}
	}
	tracer().Debugf("read %d non-terminals from document %q", len(root.Content)/2, name)
	return b.Grammar()
}

// production converts a production node: either a list of symbols or a
// string of white space separated symbols. An empty list denotes ε.
func production(name string, node *yaml.Node) ([]ll.Symbol, error) {
	var texts []string
	switch node.Kind {
	case yaml.ScalarNode:
		texts = strings.Fields(node.Value)
		if len(texts) == 0 {
			return nil, docError(name, node, "empty production, use 'ε'")
		}
	case yaml.SequenceNode:
		for _, sym := range node.Content {
			if sym.Kind != yaml.ScalarNode || strings.TrimSpace(sym.Value) == "" {
				return nil, docError(name, sym, "expected a grammar symbol")
			}
			texts = append(texts, strings.TrimSpace(sym.Value))
		}
	default:
		return nil, docError(name, node, "expected a production")
	}
	rhs := make([]ll.Symbol, 0, len(texts))
	for _, text := range texts {
		A := ll.Classify(text)
		if A.IsEndMarker() {
			return nil, docError(name, node, "end marker '$' on right hand side")
		}
		rhs = append(rhs, A)
	}
	return rhs, nil
}

func docError(name string, node *yaml.Node, msg string) error {
	return fmt.Errorf("grammar %q, line %d, column %d: %s", name, node.Line, node.Column, msg)
}

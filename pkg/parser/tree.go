package parser

import (
	"bytes"
	"encoding/xml"
	"io"
)

// Node is one element in the recovered document tree. Only structure and
// attributes are retained; character data is irrelevant to activity analysis.
type Node struct {
	Local    string // element name with any namespace qualification stripped
	Space    string // namespace or prefix, empty when unqualified
	Attrs    map[string]string
	Parent   *Node
	Children []*Node
}

// Attr returns the named attribute, or "" when absent. Lookup is exact;
// dialect walkers decide their own casing.
func (n *Node) Attr(name string) string {
	return n.Attrs[name]
}

// Ancestors returns the number of elements on the chain from this node up to
// the document root.
func (n *Node) Ancestors() int {
	count := 0
	for p := n.Parent; p != nil; p = p.Parent {
		count++
	}

	return count
}

// Walk visits n and every descendant in document order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)

	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// document is the recovered tree. Malformed inputs can yield several top
// level elements, so roots is a slice rather than a single node.
type document struct {
	roots    []*Node
	warnings int
}

// walk visits every element of every root in document order.
func (d *document) walk(fn func(*Node)) {
	for _, root := range d.roots {
		root.Walk(fn)
	}
}

// readTree consumes the byte stream with a tolerant token reader. It keeps
// every element it can resolve and counts anything it had to discard or skip
// as a warning. A syntax error mid-stream ends reading but keeps the tree
// built so far.
func readTree(raw []byte) (*document, error) {
	decoder := xml.NewDecoder(bytes.NewReader(raw))
	decoder.Strict = false
	// Uploaded exports carry declarations like windows-1252; decode the
	// bytes as-is rather than rejecting the charset.
	decoder.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	doc := &document{}

	var current *Node

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}

		if err != nil {
			// The decoder cannot resume after a syntax error. Keep
			// whatever structure was recovered before it.
			doc.warnings++

			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			node := &Node{
				Local:  t.Name.Local,
				Space:  t.Name.Space,
				Attrs:  make(map[string]string, len(t.Attr)),
				Parent: current,
			}
			for _, attr := range t.Attr {
				node.Attrs[attr.Name.Local] = attr.Value
			}

			if current == nil {
				doc.roots = append(doc.roots, node)
			} else {
				current.Children = append(current.Children, node)
			}

			current = node
		case xml.EndElement:
			if current == nil {
				// Stray end tag, discard it.
				doc.warnings++

				continue
			}

			if current.Local != t.Name.Local {
				// Mismatched close: unwind to the nearest matching
				// ancestor, or drop the tag when none matches.
				ancestor := current
				for ancestor != nil && ancestor.Local != t.Name.Local {
					ancestor = ancestor.Parent
				}

				doc.warnings++

				if ancestor == nil {
					continue
				}

				current = ancestor
			}

			current = current.Parent
		default:
			// Character data, comments, directives and processing
			// instructions carry no structure.
		}
	}

	if len(doc.roots) == 0 {
		return nil, ErrUnreadableDocument
	}

	return doc, nil
}

package ast

// Node is a single syntax tree node in ESTree vocabulary. Child nodes hang
// off named properties; a property holds either one node or an ordered
// sequence of nodes. Scalar attributes (identifier name, operator text,
// shorthand flag) live on the node itself so traversals only ever see
// node-bearing properties.
type Node struct {
	Kind string

	// Line and Col locate the first character of the node, both 1-based.
	Line int
	Col  int

	Props []Prop

	// Name is set for Identifier nodes.
	Name string
	// Operator is set for binary/logical/unary/update/assignment expressions.
	Operator string
	// DeclKind is "var", "let" or "const" on a VariableDeclaration.
	DeclKind string
	// Shorthand marks an object-literal property whose key and value are the
	// same identifier occurrence.
	Shorthand bool
	// Computed marks bracket member access and computed keys.
	Computed bool
}

// Prop is one named child property of a Node. Exactly one of Node or Nodes
// is meaningful; Seq distinguishes an empty sequence from an absent child.
type Prop struct {
	Name  string
	Node  *Node
	Nodes []*Node
	Seq   bool
}

// Child returns the single node stored under name, or nil.
func (n *Node) Child(name string) *Node {
	for i := range n.Props {
		if n.Props[i].Name == name && !n.Props[i].Seq {
			return n.Props[i].Node
		}
	}
	return nil
}

// Seq returns the node sequence stored under name, or nil.
func (n *Node) Seq(name string) []*Node {
	for i := range n.Props {
		if n.Props[i].Name == name && n.Props[i].Seq {
			return n.Props[i].Nodes
		}
	}
	return nil
}

// SetChild records a single-node property; nil children are dropped so the
// traversal never sees absent slots.
func (n *Node) SetChild(name string, child *Node) {
	if child == nil {
		return
	}
	n.Props = append(n.Props, Prop{Name: name, Node: child})
}

// SetSeq records a sequence property. The sequence is recorded even when
// empty, matching parser output for empty parameter and argument lists.
func (n *Node) SetSeq(name string, children []*Node) {
	n.Props = append(n.Props, Prop{Name: name, Nodes: children, Seq: true})
}

// Append adds child to the sequence property name, creating it on first use.
func (n *Node) Append(name string, child *Node) {
	if child == nil {
		return
	}
	for i := range n.Props {
		if n.Props[i].Name == name && n.Props[i].Seq {
			n.Props[i].Nodes = append(n.Props[i].Nodes, child)
			return
		}
	}
	n.Props = append(n.Props, Prop{Name: name, Nodes: []*Node{child}, Seq: true})
}

// Is reports whether the node has the given kind.
func (n *Node) Is(kind string) bool {
	return n != nil && n.Kind == kind
}

// CountIdentifiers returns the number of Identifier nodes in the subtree.
// A node reachable through two properties (shorthand key/value) counts once.
func CountIdentifiers(root *Node) int {
	seen := map[*Node]bool{}
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil || seen[n] {
			return
		}
		seen[n] = true
		for _, p := range n.Props {
			if p.Seq {
				for _, c := range p.Nodes {
					walk(c)
				}
			} else {
				walk(p.Node)
			}
		}
	}
	walk(root)
	count := 0
	for n := range seen {
		if n.Kind == KindIdentifier {
			count++
		}
	}
	return count
}

package classifier

import (
	"strings"

	"github.com/viant/identscan/ast"
)

// Annotated wraps a syntax node with a non-owning back-reference to the
// context it was reached through. A sequence container is an Annotated with
// a nil Node; containers are transparent for ancestor lookups. Annotations
// are built fresh for each traversal and never stored on the tree itself.
type Annotated struct {
	Node   *ast.Node
	Parent *Annotated
	Prop   string
}

// Annotate wraps root as the single annotated root of a traversal.
func Annotate(root *ast.Node) *Annotated {
	return &Annotated{Node: root}
}

func (a *Annotated) child(prop string, n *ast.Node) *Annotated {
	return &Annotated{Node: n, Parent: a, Prop: prop}
}

func (a *Annotated) container(prop string) *Annotated {
	return &Annotated{Parent: a, Prop: prop}
}

// Context returns the nearest non-sequence parent node and the property
// name connecting it toward this node.
func (a *Annotated) Context() (*ast.Node, string) {
	prop := a.Prop
	for cur := a.Parent; cur != nil; cur = cur.Parent {
		if cur.Node != nil {
			return cur.Node, prop
		}
		prop = cur.Prop
	}
	return nil, ""
}

// FindAncestor walks parent links upward, skipping sequence containers,
// until it finds a node of the given kind. It returns the ancestor and the
// property name connecting it toward the branch the walk started from. The
// walk is O(depth) and never revisits a node.
func FindAncestor(a *Annotated, kind string) (*Annotated, string, bool) {
	prop := a.Prop
	for cur := a.Parent; cur != nil; cur = cur.Parent {
		if cur.Node == nil {
			prop = cur.Prop
			continue
		}
		if cur.Node.Kind == kind {
			return cur, prop, true
		}
		prop = cur.Prop
	}
	return nil, "", false
}

// PathOf renders the structural path from the tree root down to a as
// segments of the form {ParentKind}.property for node parents and
// [property] for sequence-container hops.
func PathOf(a *Annotated) string {
	var segments []string
	for cur := a; cur.Parent != nil; cur = cur.Parent {
		parent := cur.Parent
		if parent.Node == nil {
			segments = append(segments, "["+parent.Prop+"]")
			continue
		}
		segments = append(segments, "{"+parent.Node.Kind+"}."+cur.Prop)
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return strings.Join(segments, "/")
}

package classifier

import (
	"strings"

	"github.com/viant/identscan/ast"
)

// Options configures a traversal. It is an explicit value rather than a
// process-wide toggle so classification stays a pure function of
// (tree, options).
type Options struct {
	// Debug attaches the structural path to every emitted record, not just
	// Unknown diagnostics.
	Debug bool
}

// Source carries the file identity and line text used to fill records.
type Source struct {
	File  string
	lines []string
}

// NewSource splits content into lines for record construction.
func NewSource(file string, content []byte) *Source {
	return &Source{File: file, lines: strings.Split(string(content), "\n")}
}

// LineText returns the text of the 1-based line, without its terminator.
func (s *Source) LineText(line int) string {
	if line < 1 || line > len(s.lines) {
		return ""
	}
	return strings.TrimSuffix(s.lines[line-1], "\r")
}

// Walk performs an exhaustive pre-order depth-first traversal of root,
// classifying every identifier occurrence and passing each resulting record
// to emit. Identifiers in slots that deliberately produce no classification
// are skipped; everything else, including Unknown, is emitted. Annotations
// live only for the duration of the call.
func Walk(root *ast.Node, src *Source, opts Options, emit func(Record)) {
	walk(Annotate(root), src, opts, emit)
}

func walk(a *Annotated, src *Source, opts Options, emit func(Record)) {
	node := a.Node
	if node == nil {
		return
	}
	if node.Kind == ast.KindIdentifier {
		class, ok := Classify(a)
		if !ok {
			return
		}
		record := Record{
			Name:       node.Name,
			File:       src.File,
			Line:       node.Line,
			Col:        node.Col,
			SourceLine: src.LineText(node.Line),
			Class:      class,
		}
		if class == Unknown || opts.Debug {
			record.Path = PathOf(a)
		}
		emit(record)
		return
	}
	for _, prop := range node.Props {
		if prop.Seq {
			container := a.container(prop.Name)
			for _, child := range prop.Nodes {
				walk(container.child(prop.Name, child), src, opts, emit)
			}
			continue
		}
		walk(a.child(prop.Name, prop.Node), src, opts, emit)
	}
}

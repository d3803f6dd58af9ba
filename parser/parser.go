package parser

import (
	"context"
	"fmt"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/viant/identscan/ast"
)

// Parser turns JavaScript-family source text into the ast model. Each Parse
// call creates its own tree-sitter parser instance, so a Parser is safe for
// concurrent use.
type Parser struct{}

// New creates a new Parser.
func New() *Parser {
	return &Parser{}
}

// Parse parses src and returns the root Program node. A leading interpreter
// directive line is neutralized before parsing with source positions
// preserved. A grammar rejection is returned as *SyntaxError carrying the
// location of the first offending token.
func (p *Parser) Parse(ctx context.Context, src []byte, filename string) (*ast.Node, error) {
	if !utf8.Valid(src) {
		return nil, fmt.Errorf("%s: %w", filename, ErrInvalidContent)
	}
	src = stripShebang(src)

	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		bad := firstErrorNode(root)
		return nil, &SyntaxError{
			File: filename,
			Line: int(bad.StartPoint().Row) + 1,
			Col:  int(bad.StartPoint().Column) + 1,
			Desc: describeError(bad, src),
		}
	}

	c := &converter{src: src}
	return c.node(root), nil
}

// stripShebang replaces a leading "#!" with a line comment marker so the
// grammar never sees the directive while byte offsets and line numbers stay
// intact.
func stripShebang(src []byte) []byte {
	if len(src) < 2 || src[0] != '#' || src[1] != '!' {
		return src
	}
	out := make([]byte, len(src))
	copy(out, src)
	out[0], out[1] = '/', '/'
	return out
}

// firstErrorNode locates the shallowest ERROR or missing node.
func firstErrorNode(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if !child.HasError() && !child.IsMissing() {
			continue
		}
		return firstErrorNode(child)
	}
	return n
}

func describeError(n *sitter.Node, src []byte) string {
	if n.IsMissing() {
		return fmt.Sprintf("missing %q", n.Type())
	}
	text := n.Content(src)
	if len(text) > 20 {
		text = text[:20] + "..."
	}
	return fmt.Sprintf("unexpected token near %q", text)
}

package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/identscan/ast"
)

// converter rebuilds a tree-sitter CST as the ESTree-shaped ast model. The
// grammar's field names differ from ESTree property names (name/value vs
// id/init), and a few shapes need restructuring: loop headers with a
// declaration kind get a synthesized VariableDeclaration, shorthand literal
// properties share one identifier node between key and value, and
// parenthesized expressions are unwrapped.
type converter struct {
	src []byte
}

func (c *converter) pos(out *ast.Node, n *sitter.Node) *ast.Node {
	out.Line = int(n.StartPoint().Row) + 1
	out.Col = int(n.StartPoint().Column) + 1
	return out
}

func (c *converter) text(n *sitter.Node) string {
	return n.Content(c.src)
}

// named returns the named children excluding comments.
func (c *converter) named(n *sitter.Node) []*sitter.Node {
	var out []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "comment", "hash_bang_line":
			continue
		}
		out = append(out, child)
	}
	return out
}

func (c *converter) field(n *sitter.Node, name string) *ast.Node {
	if child := n.ChildByFieldName(name); child != nil {
		return c.node(child)
	}
	return nil
}

func (c *converter) identifier(n *sitter.Node) *ast.Node {
	out := &ast.Node{Kind: ast.KindIdentifier, Name: c.text(n)}
	return c.pos(out, n)
}

func (c *converter) hasKeyword(n *sitter.Node, keyword string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if !child.IsNamed() && c.text(child) == keyword {
			return true
		}
	}
	return false
}

func (c *converter) node(n *sitter.Node) *ast.Node {
	if n == nil {
		return nil
	}
	switch n.Type() {

	case "program":
		out := c.pos(&ast.Node{Kind: ast.KindProgram}, n)
		var body []*ast.Node
		for _, child := range c.named(n) {
			body = append(body, c.node(child))
		}
		out.SetSeq("body", body)
		return out

	case "identifier", "property_identifier", "statement_identifier",
		"shorthand_property_identifier", "shorthand_property_identifier_pattern",
		"private_property_identifier":
		return c.identifier(n)

	case "this":
		return c.pos(&ast.Node{Kind: ast.KindThisExpression}, n)
	case "super":
		return c.pos(&ast.Node{Kind: ast.KindSuper}, n)

	case "number", "string", "true", "false", "null", "undefined", "regex":
		return c.pos(&ast.Node{Kind: ast.KindLiteral}, n)

	case "variable_declaration", "lexical_declaration":
		return c.variableDeclaration(n)

	case "variable_declarator":
		out := c.pos(&ast.Node{Kind: ast.KindVariableDeclarator}, n)
		out.SetChild("id", c.field(n, "name"))
		out.SetChild("init", c.field(n, "value"))
		return out

	case "function_declaration", "generator_function_declaration":
		return c.function(n, ast.KindFunctionDeclaration)
	case "function", "function_expression", "generator_function":
		return c.function(n, ast.KindFunctionExpression)

	case "arrow_function":
		out := c.pos(&ast.Node{Kind: ast.KindArrowFunctionExpression}, n)
		if single := n.ChildByFieldName("parameter"); single != nil {
			out.SetSeq("params", []*ast.Node{c.node(single)})
		} else {
			out.SetSeq("params", c.parameters(n.ChildByFieldName("parameters")))
		}
		out.SetChild("body", c.field(n, "body"))
		return out

	case "statement_block":
		out := c.pos(&ast.Node{Kind: ast.KindBlockStatement}, n)
		var body []*ast.Node
		for _, child := range c.named(n) {
			body = append(body, c.node(child))
		}
		out.SetSeq("body", body)
		return out

	case "class_declaration":
		return c.class(n, ast.KindClassDeclaration)
	case "class":
		return c.class(n, ast.KindClassExpression)

	case "class_body":
		out := c.pos(&ast.Node{Kind: ast.KindClassBody}, n)
		var body []*ast.Node
		for _, child := range c.named(n) {
			body = append(body, c.node(child))
		}
		out.SetSeq("body", body)
		return out

	case "method_definition":
		out := c.pos(&ast.Node{Kind: ast.KindMethodDefinition}, n)
		out.SetChild("key", c.propertyKey(n.ChildByFieldName("name"), out))
		value := c.pos(&ast.Node{Kind: ast.KindFunctionExpression}, n)
		value.SetSeq("params", c.parameters(n.ChildByFieldName("parameters")))
		value.SetChild("body", c.field(n, "body"))
		out.SetChild("value", value)
		return out

	case "field_definition":
		out := c.pos(&ast.Node{Kind: ast.KindPropertyDefinition}, n)
		out.SetChild("key", c.propertyKey(n.ChildByFieldName("property"), out))
		out.SetChild("value", c.field(n, "value"))
		return out

	case "object":
		out := c.pos(&ast.Node{Kind: ast.KindObjectExpression}, n)
		var props []*ast.Node
		for _, child := range c.named(n) {
			props = append(props, c.objectMember(child, false))
		}
		out.SetSeq("properties", props)
		return out

	case "object_pattern":
		out := c.pos(&ast.Node{Kind: ast.KindObjectPattern}, n)
		var props []*ast.Node
		for _, child := range c.named(n) {
			props = append(props, c.objectMember(child, true))
		}
		out.SetSeq("properties", props)
		return out

	case "array":
		out := c.pos(&ast.Node{Kind: ast.KindArrayExpression}, n)
		var elements []*ast.Node
		for _, child := range c.named(n) {
			elements = append(elements, c.node(child))
		}
		out.SetSeq("elements", elements)
		return out

	case "array_pattern":
		out := c.pos(&ast.Node{Kind: ast.KindArrayPattern}, n)
		var elements []*ast.Node
		for _, child := range c.named(n) {
			elements = append(elements, c.node(child))
		}
		out.SetSeq("elements", elements)
		return out

	case "spread_element":
		out := c.pos(&ast.Node{Kind: ast.KindSpreadElement}, n)
		if inner := c.named(n); len(inner) > 0 {
			out.SetChild("argument", c.node(inner[0]))
		}
		return out

	case "rest_pattern":
		out := c.pos(&ast.Node{Kind: ast.KindRestElement}, n)
		if inner := c.named(n); len(inner) > 0 {
			out.SetChild("argument", c.node(inner[0]))
		}
		return out

	case "assignment_expression":
		out := c.pos(&ast.Node{Kind: ast.KindAssignmentExpression, Operator: "="}, n)
		out.SetChild("left", c.field(n, "left"))
		out.SetChild("right", c.field(n, "right"))
		return out

	case "augmented_assignment_expression":
		out := c.pos(&ast.Node{Kind: ast.KindAssignmentExpression}, n)
		if op := n.ChildByFieldName("operator"); op != nil {
			out.Operator = c.text(op)
		}
		out.SetChild("left", c.field(n, "left"))
		out.SetChild("right", c.field(n, "right"))
		return out

	case "assignment_pattern", "object_assignment_pattern":
		out := c.pos(&ast.Node{Kind: ast.KindAssignmentPattern}, n)
		out.SetChild("left", c.field(n, "left"))
		out.SetChild("right", c.field(n, "right"))
		return out

	case "binary_expression":
		kind := ast.KindBinaryExpression
		operator := ""
		if op := n.ChildByFieldName("operator"); op != nil {
			operator = c.text(op)
		}
		switch operator {
		case "&&", "||", "??":
			kind = ast.KindLogicalExpression
		}
		out := c.pos(&ast.Node{Kind: kind, Operator: operator}, n)
		out.SetChild("left", c.field(n, "left"))
		out.SetChild("right", c.field(n, "right"))
		return out

	case "unary_expression":
		out := c.pos(&ast.Node{Kind: ast.KindUnaryExpression}, n)
		if op := n.ChildByFieldName("operator"); op != nil {
			out.Operator = c.text(op)
		}
		out.SetChild("argument", c.field(n, "argument"))
		return out

	case "update_expression":
		out := c.pos(&ast.Node{Kind: ast.KindUpdateExpression}, n)
		if op := n.ChildByFieldName("operator"); op != nil {
			out.Operator = c.text(op)
		}
		out.SetChild("argument", c.field(n, "argument"))
		return out

	case "ternary_expression":
		out := c.pos(&ast.Node{Kind: ast.KindConditionalExpression}, n)
		out.SetChild("test", c.field(n, "condition"))
		out.SetChild("consequent", c.field(n, "consequence"))
		out.SetChild("alternate", c.field(n, "alternative"))
		return out

	case "sequence_expression":
		out := c.pos(&ast.Node{Kind: ast.KindSequenceExpression}, n)
		out.SetSeq("expressions", c.flattenSequence(n))
		return out

	case "call_expression":
		args := n.ChildByFieldName("arguments")
		if args != nil && args.Type() == "template_string" {
			out := c.pos(&ast.Node{Kind: ast.KindTaggedTemplateExpression}, n)
			out.SetChild("tag", c.field(n, "function"))
			out.SetChild("quasi", c.node(args))
			return out
		}
		out := c.pos(&ast.Node{Kind: ast.KindCallExpression}, n)
		out.SetChild("callee", c.field(n, "function"))
		out.SetSeq("arguments", c.arguments(args))
		return out

	case "new_expression":
		out := c.pos(&ast.Node{Kind: ast.KindNewExpression}, n)
		out.SetChild("callee", c.field(n, "constructor"))
		out.SetSeq("arguments", c.arguments(n.ChildByFieldName("arguments")))
		return out

	case "member_expression":
		out := c.pos(&ast.Node{Kind: ast.KindMemberExpression}, n)
		out.SetChild("object", c.field(n, "object"))
		out.SetChild("property", c.field(n, "property"))
		return out

	case "subscript_expression":
		out := c.pos(&ast.Node{Kind: ast.KindMemberExpression, Computed: true}, n)
		out.SetChild("object", c.field(n, "object"))
		out.SetChild("property", c.field(n, "index"))
		return out

	case "parenthesized_expression":
		if inner := c.named(n); len(inner) > 0 {
			return c.node(inner[0])
		}
		return nil

	case "await_expression":
		out := c.pos(&ast.Node{Kind: ast.KindAwaitExpression}, n)
		if inner := c.named(n); len(inner) > 0 {
			out.SetChild("argument", c.node(inner[0]))
		}
		return out

	case "yield_expression":
		out := c.pos(&ast.Node{Kind: ast.KindYieldExpression}, n)
		if inner := c.named(n); len(inner) > 0 {
			out.SetChild("argument", c.node(inner[0]))
		}
		return out

	case "template_string":
		out := c.pos(&ast.Node{Kind: ast.KindTemplateLiteral}, n)
		var expressions []*ast.Node
		for _, child := range c.named(n) {
			if child.Type() != "template_substitution" {
				continue
			}
			if inner := c.named(child); len(inner) > 0 {
				expressions = append(expressions, c.node(inner[0]))
			}
		}
		out.SetSeq("expressions", expressions)
		return out

	case "expression_statement":
		out := c.pos(&ast.Node{Kind: ast.KindExpressionStatement}, n)
		if inner := c.named(n); len(inner) > 0 {
			out.SetChild("expression", c.node(inner[0]))
		}
		return out

	case "empty_statement":
		return c.pos(&ast.Node{Kind: ast.KindEmptyStatement}, n)

	case "if_statement":
		out := c.pos(&ast.Node{Kind: ast.KindIfStatement}, n)
		out.SetChild("test", c.field(n, "condition"))
		out.SetChild("consequent", c.field(n, "consequence"))
		if alt := n.ChildByFieldName("alternative"); alt != nil {
			// else_clause wraps the statement
			if inner := c.named(alt); len(inner) > 0 {
				out.SetChild("alternate", c.node(inner[0]))
			}
		}
		return out

	case "while_statement":
		out := c.pos(&ast.Node{Kind: ast.KindWhileStatement}, n)
		out.SetChild("test", c.field(n, "condition"))
		out.SetChild("body", c.field(n, "body"))
		return out

	case "do_statement":
		out := c.pos(&ast.Node{Kind: ast.KindDoWhileStatement}, n)
		out.SetChild("body", c.field(n, "body"))
		out.SetChild("test", c.field(n, "condition"))
		return out

	case "for_statement":
		return c.forStatement(n)

	case "for_in_statement":
		return c.forInStatement(n)

	case "switch_statement":
		out := c.pos(&ast.Node{Kind: ast.KindSwitchStatement}, n)
		out.SetChild("discriminant", c.field(n, "value"))
		var cases []*ast.Node
		if body := n.ChildByFieldName("body"); body != nil {
			for _, child := range c.named(body) {
				cases = append(cases, c.switchCase(child))
			}
		}
		out.SetSeq("cases", cases)
		return out

	case "return_statement":
		out := c.pos(&ast.Node{Kind: ast.KindReturnStatement}, n)
		if inner := c.named(n); len(inner) > 0 {
			out.SetChild("argument", c.node(inner[0]))
		}
		return out

	case "throw_statement":
		out := c.pos(&ast.Node{Kind: ast.KindThrowStatement}, n)
		if inner := c.named(n); len(inner) > 0 {
			out.SetChild("argument", c.node(inner[0]))
		}
		return out

	case "try_statement":
		out := c.pos(&ast.Node{Kind: ast.KindTryStatement}, n)
		out.SetChild("block", c.field(n, "body"))
		out.SetChild("handler", c.field(n, "handler"))
		if fin := n.ChildByFieldName("finalizer"); fin != nil {
			if inner := c.named(fin); len(inner) > 0 {
				out.SetChild("finalizer", c.node(inner[0]))
			}
		}
		return out

	case "catch_clause":
		out := c.pos(&ast.Node{Kind: ast.KindCatchClause}, n)
		out.SetChild("param", c.field(n, "parameter"))
		out.SetChild("body", c.field(n, "body"))
		return out

	case "labeled_statement":
		out := c.pos(&ast.Node{Kind: ast.KindLabeledStatement}, n)
		out.SetChild("label", c.field(n, "label"))
		out.SetChild("body", c.field(n, "body"))
		return out

	case "break_statement":
		out := c.pos(&ast.Node{Kind: ast.KindBreakStatement}, n)
		out.SetChild("label", c.field(n, "label"))
		return out

	case "continue_statement":
		out := c.pos(&ast.Node{Kind: ast.KindContinueStatement}, n)
		out.SetChild("label", c.field(n, "label"))
		return out

	case "import_statement":
		return c.importStatement(n)

	case "export_statement":
		return c.exportStatement(n)

	default:
		// Unmapped grammar shapes keep their raw type; identifiers below
		// them surface as Unknown diagnostics rather than being dropped.
		out := c.pos(&ast.Node{Kind: n.Type()}, n)
		var children []*ast.Node
		for _, child := range c.named(n) {
			children = append(children, c.node(child))
		}
		if len(children) > 0 {
			out.SetSeq("children", children)
		}
		return out
	}
}

func (c *converter) variableDeclaration(n *sitter.Node) *ast.Node {
	out := c.pos(&ast.Node{Kind: ast.KindVariableDeclaration, DeclKind: "var"}, n)
	if kind := n.ChildByFieldName("kind"); kind != nil {
		out.DeclKind = c.text(kind)
	} else if n.ChildCount() > 0 {
		out.DeclKind = c.text(n.Child(0))
	}
	var declarations []*ast.Node
	for _, child := range c.named(n) {
		if child.Type() == "variable_declarator" {
			declarations = append(declarations, c.node(child))
		}
	}
	out.SetSeq("declarations", declarations)
	return out
}

func (c *converter) function(n *sitter.Node, kind string) *ast.Node {
	out := c.pos(&ast.Node{Kind: kind}, n)
	out.SetChild("id", c.field(n, "name"))
	out.SetSeq("params", c.parameters(n.ChildByFieldName("parameters")))
	out.SetChild("body", c.field(n, "body"))
	return out
}

func (c *converter) parameters(n *sitter.Node) []*ast.Node {
	if n == nil {
		return nil
	}
	var params []*ast.Node
	for _, child := range c.named(n) {
		params = append(params, c.node(child))
	}
	return params
}

func (c *converter) arguments(n *sitter.Node) []*ast.Node {
	if n == nil {
		return nil
	}
	var args []*ast.Node
	for _, child := range c.named(n) {
		args = append(args, c.node(child))
	}
	return args
}

func (c *converter) class(n *sitter.Node, kind string) *ast.Node {
	out := c.pos(&ast.Node{Kind: kind}, n)
	out.SetChild("id", c.field(n, "name"))
	for _, child := range c.named(n) {
		if child.Type() == "class_heritage" {
			if inner := c.named(child); len(inner) > 0 {
				out.SetChild("superClass", c.node(inner[0]))
			}
		}
	}
	out.SetChild("body", c.field(n, "body"))
	return out
}

// propertyKey converts a key slot, recording computed bracket keys on owner.
func (c *converter) propertyKey(n *sitter.Node, owner *ast.Node) *ast.Node {
	if n == nil {
		return nil
	}
	if n.Type() == "computed_property_name" {
		owner.Computed = true
		if inner := c.named(n); len(inner) > 0 {
			return c.node(inner[0])
		}
		return nil
	}
	return c.node(n)
}

// objectMember converts one entry of an object literal or pattern into a
// Property (or passes spread/rest/method members through). A shorthand
// literal entry shares a single identifier node between key and value; a
// shorthand pattern entry gets two slots referencing the same identifier
// node with the shorthand flag left unset, so the declarator-sensitive key
// rule sees it.
func (c *converter) objectMember(n *sitter.Node, pattern bool) *ast.Node {
	switch n.Type() {
	case "pair", "pair_pattern":
		out := c.pos(&ast.Node{Kind: ast.KindProperty}, n)
		out.SetChild("key", c.propertyKey(n.ChildByFieldName("key"), out))
		out.SetChild("value", c.field(n, "value"))
		return out
	case "shorthand_property_identifier", "shorthand_property_identifier_pattern":
		out := c.pos(&ast.Node{Kind: ast.KindProperty, Shorthand: !pattern}, n)
		id := c.identifier(n)
		out.SetChild("key", id)
		out.SetChild("value", id)
		return out
	case "object_assignment_pattern":
		// {x = 1} inside a pattern: key and assignment target are distinct
		// occurrences of the same name.
		out := c.pos(&ast.Node{Kind: ast.KindProperty}, n)
		left := n.ChildByFieldName("left")
		out.SetChild("key", c.node(left))
		value := c.pos(&ast.Node{Kind: ast.KindAssignmentPattern}, n)
		value.SetChild("left", c.node(left))
		value.SetChild("right", c.field(n, "right"))
		out.SetChild("value", value)
		return out
	default:
		return c.node(n)
	}
}

// flattenSequence handles both grammar encodings of comma expressions, the
// nested left/right form and the flat child list.
func (c *converter) flattenSequence(n *sitter.Node) []*ast.Node {
	left := n.ChildByFieldName("left")
	right := n.ChildByFieldName("right")
	if left == nil && right == nil {
		var out []*ast.Node
		for _, child := range c.named(n) {
			out = append(out, c.node(child))
		}
		return out
	}
	var out []*ast.Node
	if left != nil {
		if left.Type() == "sequence_expression" {
			out = append(out, c.flattenSequence(left)...)
		} else {
			out = append(out, c.node(left))
		}
	}
	if right != nil {
		if right.Type() == "sequence_expression" {
			out = append(out, c.flattenSequence(right)...)
		} else {
			out = append(out, c.node(right))
		}
	}
	return out
}

// forStatement unwraps the statement-shaped init and condition slots the
// grammar produces so the ast model carries plain expressions, as ESTree
// does.
func (c *converter) forStatement(n *sitter.Node) *ast.Node {
	out := c.pos(&ast.Node{Kind: ast.KindForStatement}, n)
	if init := n.ChildByFieldName("initializer"); init != nil {
		out.SetChild("init", c.unwrapClause(init))
	}
	if cond := n.ChildByFieldName("condition"); cond != nil {
		out.SetChild("test", c.unwrapClause(cond))
	}
	out.SetChild("update", c.field(n, "increment"))
	out.SetChild("body", c.field(n, "body"))
	return out
}

func (c *converter) unwrapClause(n *sitter.Node) *ast.Node {
	switch n.Type() {
	case "empty_statement":
		return nil
	case "expression_statement":
		if inner := c.named(n); len(inner) > 0 {
			return c.node(inner[0])
		}
		return nil
	default:
		return c.node(n)
	}
}

// forInStatement covers both for-in and for-of. When the header declares its
// variable the grammar exposes a bare kind token and pattern, so the
// declaration is synthesized to match the ESTree left slot.
func (c *converter) forInStatement(n *sitter.Node) *ast.Node {
	kind := ast.KindForInStatement
	if op := n.ChildByFieldName("operator"); op != nil && c.text(op) == "of" {
		kind = ast.KindForOfStatement
	}
	out := c.pos(&ast.Node{Kind: kind}, n)

	left := c.field(n, "left")
	if declKind := n.ChildByFieldName("kind"); declKind != nil && left != nil {
		declarator := &ast.Node{
			Kind: ast.KindVariableDeclarator,
			Line: left.Line,
			Col:  left.Col,
		}
		declarator.SetChild("id", left)
		declaration := &ast.Node{
			Kind:     ast.KindVariableDeclaration,
			DeclKind: c.text(declKind),
			Line:     left.Line,
			Col:      left.Col,
		}
		declaration.SetSeq("declarations", []*ast.Node{declarator})
		left = declaration
	}
	out.SetChild("left", left)
	out.SetChild("right", c.field(n, "right"))
	out.SetChild("body", c.field(n, "body"))
	return out
}

func (c *converter) switchCase(n *sitter.Node) *ast.Node {
	out := c.pos(&ast.Node{Kind: ast.KindSwitchCase}, n)
	var consequent []*ast.Node
	value := n.ChildByFieldName("value")
	if value != nil {
		out.SetChild("test", c.node(value))
	}
	for _, child := range c.named(n) {
		if value != nil && child.Equal(value) {
			continue
		}
		consequent = append(consequent, c.node(child))
	}
	out.SetSeq("consequent", consequent)
	return out
}

func (c *converter) importStatement(n *sitter.Node) *ast.Node {
	out := c.pos(&ast.Node{Kind: ast.KindImportDeclaration}, n)
	var specifiers []*ast.Node
	for _, child := range c.named(n) {
		if child.Type() != "import_clause" {
			continue
		}
		for _, clause := range c.named(child) {
			switch clause.Type() {
			case "identifier":
				spec := c.pos(&ast.Node{Kind: ast.KindImportDefaultSpecifier}, clause)
				spec.SetChild("local", c.identifier(clause))
				specifiers = append(specifiers, spec)
			case "namespace_import":
				spec := c.pos(&ast.Node{Kind: ast.KindImportNamespaceSpecifier}, clause)
				if inner := c.named(clause); len(inner) > 0 {
					spec.SetChild("local", c.identifier(inner[0]))
				}
				specifiers = append(specifiers, spec)
			case "named_imports":
				for _, named := range c.named(clause) {
					if named.Type() != "import_specifier" {
						continue
					}
					specifiers = append(specifiers, c.importSpecifier(named))
				}
			}
		}
	}
	out.SetSeq("specifiers", specifiers)
	out.SetChild("source", c.field(n, "source"))
	return out
}

// importSpecifier builds distinct identifier nodes for the imported and
// local slots even without a rename, so each occurrence is classified
// independently.
func (c *converter) importSpecifier(n *sitter.Node) *ast.Node {
	out := c.pos(&ast.Node{Kind: ast.KindImportSpecifier}, n)
	name := n.ChildByFieldName("name")
	alias := n.ChildByFieldName("alias")
	if name != nil {
		out.SetChild("imported", c.identifier(name))
	}
	if alias != nil {
		out.SetChild("local", c.identifier(alias))
	} else if name != nil {
		out.SetChild("local", c.identifier(name))
	}
	return out
}

func (c *converter) exportStatement(n *sitter.Node) *ast.Node {
	if c.hasKeyword(n, "default") {
		out := c.pos(&ast.Node{Kind: ast.KindExportDefaultDeclaration}, n)
		if decl := n.ChildByFieldName("declaration"); decl != nil {
			out.SetChild("declaration", c.node(decl))
		} else if value := n.ChildByFieldName("value"); value != nil {
			out.SetChild("declaration", c.node(value))
		}
		return out
	}
	if c.hasKeyword(n, "*") {
		out := c.pos(&ast.Node{Kind: ast.KindExportAllDeclaration}, n)
		out.SetChild("source", c.field(n, "source"))
		return out
	}
	out := c.pos(&ast.Node{Kind: ast.KindExportNamedDeclaration}, n)
	out.SetChild("declaration", c.field(n, "declaration"))
	var specifiers []*ast.Node
	for _, child := range c.named(n) {
		if child.Type() != "export_clause" {
			continue
		}
		for _, spec := range c.named(child) {
			if spec.Type() != "export_specifier" {
				continue
			}
			specifiers = append(specifiers, c.exportSpecifier(spec))
		}
	}
	out.SetSeq("specifiers", specifiers)
	out.SetChild("source", c.field(n, "source"))
	return out
}

func (c *converter) exportSpecifier(n *sitter.Node) *ast.Node {
	out := c.pos(&ast.Node{Kind: ast.KindExportSpecifier}, n)
	name := n.ChildByFieldName("name")
	alias := n.ChildByFieldName("alias")
	if name != nil {
		out.SetChild("local", c.identifier(name))
	}
	if alias != nil {
		out.SetChild("exported", c.identifier(alias))
	} else if name != nil {
		out.SetChild("exported", c.identifier(name))
	}
	return out
}

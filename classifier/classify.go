package classifier

import (
	"github.com/viant/identscan/ast"
)

// Classify decides the class of one identifier occurrence from its annotated
// context. The second result is false for slots that deliberately emit no
// record at all: the key slot of a shorthand literal property, the exported
// slot of a pure re-export, and the reserved constructor method key.
//
// The decision procedure runs in priority order: the direct
// (parent kind, property) table first, then the conditional rules that need
// one extra level of ancestor context, then the Unknown fallback for any
// uncovered pair.
func Classify(a *Annotated) (Classification, bool) {
	parent, prop := a.Context()
	if parent == nil {
		return Unknown, true
	}

	switch parent.Kind {

	case ast.KindClassDeclaration, ast.KindClassExpression:
		switch prop {
		case "id":
			return Definition, true
		case "superClass":
			return Reference, true
		}

	case ast.KindFunctionDeclaration, ast.KindFunctionExpression:
		switch prop {
		case "id":
			return Definition, true
		case "params":
			return Ignored, true
		}

	case ast.KindArrowFunctionExpression:
		switch prop {
		case "params":
			return Ignored, true
		case "body":
			// expression-bodied arrow
			return Reference, true
		}

	case ast.KindConditionalExpression:
		switch prop {
		case "consequent":
			return Definition, true
		case "test", "alternate":
			return Reference, true
		}

	case ast.KindExportDefaultDeclaration:
		if prop == "declaration" {
			return Definition, true
		}

	case ast.KindImportDefaultSpecifier, ast.KindImportNamespaceSpecifier:
		if prop == "local" {
			return Definition, true
		}

	case ast.KindLabeledStatement:
		if prop == "label" {
			return Definition, true
		}

	case ast.KindBreakStatement, ast.KindContinueStatement:
		if prop == "label" {
			return Reference, true
		}

	case ast.KindBinaryExpression, ast.KindLogicalExpression:
		if prop == "left" || prop == "right" {
			return operandClass(a)
		}

	case ast.KindUnaryExpression, ast.KindUpdateExpression:
		if prop == "argument" {
			return operandClass(a)
		}

	case ast.KindAssignmentExpression, ast.KindAssignmentPattern:
		switch prop {
		case "left":
			return Ignored, true
		case "right":
			return Reference, true
		}

	case ast.KindCatchClause:
		if prop == "param" {
			return Ignored, true
		}

	case ast.KindRestElement:
		if prop == "argument" {
			return Ignored, true
		}

	case ast.KindSpreadElement:
		if prop == "argument" {
			return Reference, true
		}

	case ast.KindCallExpression, ast.KindNewExpression:
		if prop == "callee" || prop == "arguments" {
			return Reference, true
		}

	case ast.KindMemberExpression:
		if prop == "object" || prop == "property" {
			return Reference, true
		}

	case ast.KindArrayExpression:
		if prop == "elements" {
			return Reference, true
		}

	case ast.KindArrayPattern:
		// destructuring element introduces a binding regardless of context
		if prop == "elements" {
			return Definition, true
		}

	case ast.KindIfStatement, ast.KindWhileStatement, ast.KindDoWhileStatement:
		if prop == "test" {
			return Reference, true
		}

	case ast.KindSwitchStatement:
		if prop == "discriminant" {
			return Reference, true
		}

	case ast.KindSwitchCase:
		if prop == "test" {
			return Reference, true
		}

	case ast.KindThrowStatement, ast.KindReturnStatement:
		if prop == "argument" {
			return Reference, true
		}

	case ast.KindTemplateLiteral:
		if prop == "expressions" {
			return Reference, true
		}

	case ast.KindTaggedTemplateExpression:
		if prop == "tag" {
			return Reference, true
		}

	case ast.KindAwaitExpression, ast.KindYieldExpression:
		if prop == "argument" {
			return Reference, true
		}

	case ast.KindForInStatement, ast.KindForOfStatement:
		if prop == "right" {
			return Reference, true
		}

	case ast.KindForStatement:
		switch prop {
		case "test", "init":
			return Reference, true
		case "update":
			return operandClass(a)
		}

	case ast.KindExpressionStatement:
		if prop == "expression" {
			return Reference, true
		}

	case ast.KindSequenceExpression:
		if prop == "expressions" {
			return Reference, true
		}

	case ast.KindVariableDeclarator:
		switch prop {
		case "init":
			return Reference, true
		case "id":
			// Loop-header declarators (for init, for-in/of left) surface
			// their single Definition here; the test/update occurrences are
			// folded by operandClass.
			return Definition, true
		}

	case ast.KindProperty:
		switch prop {
		case "key":
			return propertyKeyClass(a, parent)
		case "value":
			return propertyValueClass(parent)
		}

	case ast.KindMethodDefinition:
		if prop == "key" {
			if a.Node.Name == "constructor" {
				return Ignored, false
			}
			return Definition, true
		}

	case ast.KindPropertyDefinition:
		switch prop {
		case "key":
			return Definition, true
		case "value":
			return Reference, true
		}

	case ast.KindImportSpecifier:
		switch prop {
		case "imported":
			// paired local slot carries the real classification
			return Ignored, true
		case "local":
			imported := parent.Child("imported")
			if imported != nil && imported.Name != a.Node.Name {
				return Definition, true
			}
			return Reference, true
		}

	case ast.KindExportSpecifier:
		switch prop {
		case "local":
			// paired exported slot carries the real classification
			return Ignored, true
		case "exported":
			local := parent.Child("local")
			if local != nil && local.Name == a.Node.Name {
				// pure re-export introduces no new local binding
				return Ignored, false
			}
			return Definition, true
		}
	}

	return Unknown, true
}

// operandClass classifies an expression-operand occurrence, folding away the
// test/update occurrences of a loop-control variable so the variable is
// reported exactly once, at its declaration.
func operandClass(a *Annotated) (Classification, bool) {
	loop, prop, ok := FindAncestor(a, ast.KindForStatement)
	if ok && (prop == "test" || prop == "update") {
		if init := loop.Node.Child("init"); declaresName(init, a.Node.Name) {
			return Ignored, true
		}
	}
	return Reference, true
}

// declaresName reports whether decl is a variable declaration binding name
// through a plain identifier declarator. Loop-control declarations are
// simple by construction, so pattern declarators are not searched.
func declaresName(decl *ast.Node, name string) bool {
	if !decl.Is(ast.KindVariableDeclaration) {
		return false
	}
	for _, declarator := range decl.Seq("declarations") {
		id := declarator.Child("id")
		if id.Is(ast.KindIdentifier) && id.Name == name {
			return true
		}
	}
	return false
}

// propertyKeyClass implements the object-property key rule. A shorthand
// literal key emits nothing (the paired value slot of the same node carries
// the Reference). Otherwise the nearest variable-declarator ancestor
// disambiguates: a distinct key under the declarator's init slot is an
// object destructuring rename target, and a key that doubles as the value
// under the id slot is a pattern binding; both are Definitions. Everything
// else reads an existing property name.
func propertyKeyClass(a *Annotated, property *ast.Node) (Classification, bool) {
	if property.Shorthand {
		return Ignored, false
	}
	key := property.Child("key")
	value := property.Child("value")
	if _, prop, ok := FindAncestor(a, ast.KindVariableDeclarator); ok {
		if prop == "init" && key != value {
			return Definition, true
		}
		if prop == "id" && key == value {
			return Definition, true
		}
	}
	return Reference, true
}

// propertyValueClass classifies the value slot. When key and value are the
// same node the record is emitted on exactly one side: the value slot for a
// shorthand literal, the key slot for a pattern binding.
func propertyValueClass(property *ast.Node) (Classification, bool) {
	key := property.Child("key")
	value := property.Child("value")
	if key == value && !property.Shorthand {
		return Ignored, false
	}
	return Reference, true
}

package ast

// Node kinds follow ESTree naming so classification rules can be stated in
// terms of (parent kind, property name) pairs. Tree shapes the parser does
// not map keep their raw grammar type as the kind.
const (
	KindProgram    = "Program"
	KindIdentifier = "Identifier"
	KindLiteral    = "Literal"

	KindVariableDeclaration = "VariableDeclaration"
	KindVariableDeclarator  = "VariableDeclarator"

	KindFunctionDeclaration     = "FunctionDeclaration"
	KindFunctionExpression      = "FunctionExpression"
	KindArrowFunctionExpression = "ArrowFunctionExpression"

	KindClassDeclaration   = "ClassDeclaration"
	KindClassExpression    = "ClassExpression"
	KindClassBody          = "ClassBody"
	KindMethodDefinition   = "MethodDefinition"
	KindPropertyDefinition = "PropertyDefinition"

	KindObjectExpression = "ObjectExpression"
	KindObjectPattern    = "ObjectPattern"
	KindProperty         = "Property"
	KindArrayExpression  = "ArrayExpression"
	KindArrayPattern     = "ArrayPattern"
	KindSpreadElement    = "SpreadElement"
	KindRestElement      = "RestElement"

	KindAssignmentExpression  = "AssignmentExpression"
	KindAssignmentPattern     = "AssignmentPattern"
	KindBinaryExpression      = "BinaryExpression"
	KindLogicalExpression     = "LogicalExpression"
	KindUnaryExpression       = "UnaryExpression"
	KindUpdateExpression      = "UpdateExpression"
	KindConditionalExpression = "ConditionalExpression"
	KindCallExpression        = "CallExpression"
	KindNewExpression         = "NewExpression"
	KindMemberExpression      = "MemberExpression"
	KindSequenceExpression    = "SequenceExpression"
	KindThisExpression        = "ThisExpression"
	KindSuper                 = "Super"
	KindAwaitExpression       = "AwaitExpression"
	KindYieldExpression       = "YieldExpression"

	KindTemplateLiteral          = "TemplateLiteral"
	KindTaggedTemplateExpression = "TaggedTemplateExpression"

	KindExpressionStatement = "ExpressionStatement"
	KindBlockStatement      = "BlockStatement"
	KindEmptyStatement      = "EmptyStatement"
	KindIfStatement         = "IfStatement"
	KindWhileStatement      = "WhileStatement"
	KindDoWhileStatement    = "DoWhileStatement"
	KindForStatement        = "ForStatement"
	KindForInStatement      = "ForInStatement"
	KindForOfStatement      = "ForOfStatement"
	KindSwitchStatement     = "SwitchStatement"
	KindSwitchCase          = "SwitchCase"
	KindReturnStatement     = "ReturnStatement"
	KindThrowStatement      = "ThrowStatement"
	KindTryStatement        = "TryStatement"
	KindCatchClause         = "CatchClause"
	KindLabeledStatement    = "LabeledStatement"
	KindBreakStatement      = "BreakStatement"
	KindContinueStatement   = "ContinueStatement"

	KindImportDeclaration        = "ImportDeclaration"
	KindImportSpecifier          = "ImportSpecifier"
	KindImportDefaultSpecifier   = "ImportDefaultSpecifier"
	KindImportNamespaceSpecifier = "ImportNamespaceSpecifier"
	KindExportNamedDeclaration   = "ExportNamedDeclaration"
	KindExportDefaultDeclaration = "ExportDefaultDeclaration"
	KindExportAllDeclaration     = "ExportAllDeclaration"
	KindExportSpecifier          = "ExportSpecifier"
)

package classifier_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/identscan/ast"
	"github.com/viant/identscan/classifier"
	"github.com/viant/identscan/parser"
	"github.com/viant/identscan/report"
)

func classify(t *testing.T, source string) *report.Collector {
	t.Helper()
	root := parse(t, source)
	collector := &report.Collector{}
	src := classifier.NewSource("source.js", []byte(source))
	classifier.Walk(root, src, classifier.Options{}, collector.Report)
	return collector
}

func parse(t *testing.T, source string) *ast.Node {
	t.Helper()
	root, err := parser.New().Parse(context.Background(), []byte(source), "source.js")
	require.NoError(t, err)
	return root
}

func classesOf(records []classifier.Record) []classifier.Classification {
	var out []classifier.Classification
	for _, record := range records {
		out = append(out, record.Class)
	}
	return out
}

func TestClassify_Declarations(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		ident   string
		expect  []classifier.Classification
		skipped bool
	}{
		{
			name:   "variable declarator",
			source: `let count = 0;`,
			ident:  "count",
			expect: []classifier.Classification{classifier.Definition},
		},
		{
			name:   "declarator init is a reference",
			source: `let copy = original;`,
			ident:  "original",
			expect: []classifier.Classification{classifier.Reference},
		},
		{
			name:   "function name",
			source: `function handle(req) { return req; }`,
			ident:  "handle",
			expect: []classifier.Classification{classifier.Definition},
		},
		{
			name:   "function parameter is ignored",
			source: `function handle(req) { return req; }`,
			ident:  "req",
			expect: []classifier.Classification{classifier.Ignored, classifier.Reference},
		},
		{
			name:   "class name",
			source: `class Widget {}`,
			ident:  "Widget",
			expect: []classifier.Classification{classifier.Definition},
		},
		{
			name:   "superclass is a reference",
			source: `class Widget extends Base {}`,
			ident:  "Base",
			expect: []classifier.Classification{classifier.Reference},
		},
		{
			name:   "method key",
			source: `class Widget { render() {} }`,
			ident:  "render",
			expect: []classifier.Classification{classifier.Definition},
		},
		{
			name:    "constructor key yields no record",
			source:  `class Widget { constructor() {} }`,
			ident:   "constructor",
			skipped: true,
		},
		{
			name:   "statement label",
			source: "outer: while (ready) { break outer; }",
			ident:  "outer",
			expect: []classifier.Classification{classifier.Definition, classifier.Reference},
		},
		{
			name:   "catch parameter is ignored",
			source: `try {} catch (err) {}`,
			ident:  "err",
			expect: []classifier.Classification{classifier.Ignored},
		},
		{
			name:   "assignment target ignored, source referenced",
			source: `target = value;`,
			ident:  "target",
			expect: []classifier.Classification{classifier.Ignored},
		},
		{
			name:   "default export expression",
			source: `export default app;`,
			ident:  "app",
			expect: []classifier.Classification{classifier.Definition},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector := classify(t, tt.source)
			records := collector.Named(tt.ident)
			if tt.skipped {
				assert.Empty(t, records)
				return
			}
			assert.Equal(t, tt.expect, classesOf(records))
		})
	}
}

func TestClassify_References(t *testing.T) {
	tests := []struct {
		name   string
		source string
		ident  string
	}{
		{"call callee", `run();`, "run"},
		{"call argument", `run(task);`, "task"},
		{"member object", `config.get();`, "config"},
		{"member property", `config.get;`, "get"},
		{"binary operand", `let sum = left + 1;`, "left"},
		{"unary operand", `let negated = !flag;`, "flag"},
		{"array element", `let pair = [first, 2];`, "first"},
		{"if test", `if (ready) {}`, "ready"},
		{"switch discriminant", `switch (mode) {}`, "mode"},
		{"throw argument", `throw failure;`, "failure"},
		{"return argument", `function f() { return result; }`, "result"},
		{"template interpolation", "let msg = `v=${version}`;", "version"},
		{"tagged template tag", "tag`text`;", "tag"},
		{"spread argument", `run(...extras);`, "extras"},
		{"for-of iterable", `for (const item of items) {}`, "items"},
		{"for-in iterable", `for (const key in table) {}`, "table"},
		{"new callee", `let w = new Widget();`, "Widget"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector := classify(t, tt.source)
			records := collector.Named(tt.ident)
			require.NotEmpty(t, records)
			assert.Equal(t, classifier.Reference, records[0].Class)
		})
	}
}

func TestClassify_ShorthandProperty(t *testing.T) {
	collector := classify(t, `let wrapped = {x};`)
	records := collector.Named("x")
	require.Len(t, records, 1, "shorthand {x} must produce exactly one record")
	assert.Equal(t, classifier.Reference, records[0].Class)
}

func TestClassify_NonShorthandPropertyKey(t *testing.T) {
	t.Run("outside a declarator the key reads a property name", func(t *testing.T) {
		collector := classify(t, `run({mode: fast});`)
		assert.Equal(t, []classifier.Classification{classifier.Reference},
			classesOf(collector.Named("mode")))
		assert.Equal(t, []classifier.Classification{classifier.Reference},
			classesOf(collector.Named("fast")))
	})
	t.Run("under a declarator init a distinct key is a rename target", func(t *testing.T) {
		collector := classify(t, `let opts = {mode: fast};`)
		assert.Equal(t, []classifier.Classification{classifier.Definition},
			classesOf(collector.Named("mode")))
		assert.Equal(t, []classifier.Classification{classifier.Reference},
			classesOf(collector.Named("fast")))
	})
	t.Run("pattern rename key with distinct nodes defaults to reference", func(t *testing.T) {
		collector := classify(t, `const {mode: selected} = options;`)
		assert.Equal(t, []classifier.Classification{classifier.Reference},
			classesOf(collector.Named("mode")))
		assert.Equal(t, []classifier.Classification{classifier.Reference},
			classesOf(collector.Named("selected")))
	})
}

func TestClassify_ObjectPatternBinding(t *testing.T) {
	collector := classify(t, `const {host} = options;`)
	records := collector.Named("host")
	require.Len(t, records, 1, "pattern shorthand must produce exactly one record")
	assert.Equal(t, classifier.Definition, records[0].Class)
	assert.Equal(t, []classifier.Classification{classifier.Reference},
		classesOf(collector.Named("options")))
}

func TestClassify_ForLoopControlVariable(t *testing.T) {
	collector := classify(t, `for (let i = 0; i < 10; i++) { }`)
	records := collector.Named("i")
	assert.Equal(t, 1, len(collector.ByClass(classifier.Definition)),
		"exactly one Definition, at the declarator")
	for _, record := range records {
		assert.NotEqual(t, classifier.Reference, record.Class)
		assert.NotEqual(t, classifier.Unknown, record.Class)
	}
}

func TestClassify_ForLoopUnrelatedOperand(t *testing.T) {
	// an operand that is not the loop-control variable stays a reference
	collector := classify(t, `for (let i = 0; i < limit; i++) { }`)
	records := collector.Named("limit")
	require.Len(t, records, 1)
	assert.Equal(t, classifier.Reference, records[0].Class)
}

func TestClassify_LoopBodyUsesStayReferences(t *testing.T) {
	collector := classify(t, `for (let i = 0; i < 10; i++) { use(i); }`)
	var bodyRefs int
	for _, record := range collector.Named("i") {
		if record.Class == classifier.Reference {
			bodyRefs++
		}
	}
	assert.Equal(t, 1, bodyRefs, "the body occurrence is an ordinary reference")
}

func TestClassify_Imports(t *testing.T) {
	t.Run("renamed import defines the local name", func(t *testing.T) {
		collector := classify(t, `import {a as b} from "m";`)
		assert.Equal(t, []classifier.Classification{classifier.Definition},
			classesOf(collector.Named("b")))
		assert.Empty(t, collector.ByClass(classifier.Reference))
	})
	t.Run("plain import degenerates to a reference", func(t *testing.T) {
		collector := classify(t, `import {a} from "m";`)
		refs := collector.ByClass(classifier.Reference)
		require.Len(t, refs, 1)
		assert.Equal(t, "a", refs[0].Name)
		assert.Empty(t, collector.ByClass(classifier.Definition))
	})
	t.Run("default import", func(t *testing.T) {
		collector := classify(t, `import app from "m";`)
		assert.Equal(t, []classifier.Classification{classifier.Definition},
			classesOf(collector.Named("app")))
	})
	t.Run("namespace import", func(t *testing.T) {
		collector := classify(t, `import * as util from "m";`)
		assert.Equal(t, []classifier.Classification{classifier.Definition},
			classesOf(collector.Named("util")))
	})
}

func TestClassify_Exports(t *testing.T) {
	t.Run("pure re-export defines nothing", func(t *testing.T) {
		collector := classify(t, `export {foo};`)
		assert.Empty(t, collector.ByClass(classifier.Definition))
	})
	t.Run("renamed export defines the exported name", func(t *testing.T) {
		collector := classify(t, `export {foo as bar};`)
		definitions := collector.ByClass(classifier.Definition)
		require.Len(t, definitions, 1)
		assert.Equal(t, "bar", definitions[0].Name)
	})
}

func TestClassify_ArrayDestructuring(t *testing.T) {
	collector := classify(t, `const [p, q] = arr;`)
	assert.Equal(t, []classifier.Classification{classifier.Definition},
		classesOf(collector.Named("p")))
	assert.Equal(t, []classifier.Classification{classifier.Definition},
		classesOf(collector.Named("q")))
	assert.Equal(t, []classifier.Classification{classifier.Reference},
		classesOf(collector.Named("arr")))
}

func TestClassify_UnknownContext(t *testing.T) {
	// a bare identifier as for-in target is not in the rule table
	collector := classify(t, `for (x in table) {}`)
	unknown := collector.ByClass(classifier.Unknown)
	require.Len(t, unknown, 1)
	assert.Equal(t, "x", unknown[0].Name)
	assert.NotEmpty(t, unknown[0].Path, "unknown diagnostics carry the structural path")
}

func TestClassify_Totality(t *testing.T) {
	source := `
import {a as b} from "m";
let base = 1;
function compute(input) {
  const {mode} = input;
  const [first, second] = input.list;
  for (let i = 0; i < base; i++) { emit(i); }
  return {mode, result: first + second};
}
export {compute as run};
`
	root := parse(t, source)
	collector := &report.Collector{}
	src := classifier.NewSource("source.js", []byte(source))
	classifier.Walk(root, src, classifier.Options{}, collector.Report)

	total := len(collector.ByClass(classifier.Definition)) +
		len(collector.ByClass(classifier.Reference)) +
		len(collector.ByClass(classifier.Ignored)) +
		len(collector.ByClass(classifier.Unknown))
	assert.Equal(t, ast.CountIdentifiers(root), total)
	assert.Empty(t, collector.ByClass(classifier.Unknown))
}

func TestClassify_Deterministic(t *testing.T) {
	source := `
function pick(list) {
  outer: for (let i = 0; i < list.length; i++) {
    if (list[i]) { break outer; }
  }
  return list;
}
`
	first := classify(t, source)
	second := classify(t, source)
	assert.Equal(t, first.Records, second.Records)
}

func TestClassify_ConditionalDeclarationShorthand(t *testing.T) {
	collector := classify(t, `let choice = ready ? primary : fallback;`)
	assert.Equal(t, []classifier.Classification{classifier.Reference},
		classesOf(collector.Named("ready")))
	assert.Equal(t, []classifier.Classification{classifier.Definition},
		classesOf(collector.Named("primary")))
	assert.Equal(t, []classifier.Classification{classifier.Reference},
		classesOf(collector.Named("fallback")))
}

func TestClassify_RestAndDefaults(t *testing.T) {
	collector := classify(t, `function gather(first = seed, ...rest) {}`)
	assert.Equal(t, []classifier.Classification{classifier.Ignored},
		classesOf(collector.Named("first")))
	assert.Equal(t, []classifier.Classification{classifier.Reference},
		classesOf(collector.Named("seed")))
	assert.Equal(t, []classifier.Classification{classifier.Ignored},
		classesOf(collector.Named("rest")))
}

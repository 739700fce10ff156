// Package debug renders tokens and parsed ASTs as YAML for humans
// debugging the lexer/parser. It's boundary tooling, wired up only from
// cmd/natrix's -dump-tokens/-dump-ast flags — nothing in pkg/eval imports
// this package.
package debug

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tethal/natrix/pkg/ast"
	"github.com/tethal/natrix/pkg/lexer"
)

// tokenDump is the plain struct tokens are translated into before
// marshaling; yaml.v3 can't usefully render lexer.Token itself since its
// position fields are byte offsets with no lexeme attached.
type tokenDump struct {
	Kind string `yaml:"kind"`
	Text string `yaml:"text,omitempty"`
	From int    `yaml:"from"`
	To   int    `yaml:"to"`
}

// DumpTokens marshals toks to YAML, writing the result to w.
func DumpTokens(w io.Writer, toks []lexer.Token, src string) error {
	dumps := make([]tokenDump, len(toks))
	for i, t := range toks {
		dumps[i] = tokenDump{Kind: t.Kind.String(), Text: t.Text(src), From: t.From, To: t.To}
	}
	return yaml.NewEncoder(w).Encode(dumps)
}

// node is a flattened, struct-tagged view of one AST node. Using a single
// struct with fixed field order (rather than map[string]interface{}) keeps
// the YAML output deterministic across runs, since Go map iteration order
// isn't.
type node struct {
	Kind     string  `yaml:"kind"`
	Text     string  `yaml:"text,omitempty"`
	Op       string  `yaml:"op,omitempty"`
	Left     *node   `yaml:"left,omitempty"`
	Right    *node   `yaml:"right,omitempty"`
	Receiver *node   `yaml:"receiver,omitempty"`
	Index    *node   `yaml:"index,omitempty"`
	Elements []*node `yaml:"elements,omitempty"`
	LHS      *node   `yaml:"lhs,omitempty"`
	RHS      *node   `yaml:"rhs,omitempty"`
	Cond     *node   `yaml:"cond,omitempty"`
	Body     []*node `yaml:"body,omitempty"`
	Then     []*node `yaml:"then,omitempty"`
	Else     []*node `yaml:"else,omitempty"`
	Expr     *node   `yaml:"expr,omitempty"`
}

// DumpAST marshals stmts to YAML, writing the result to w.
func DumpAST(w io.Writer, stmts []ast.Stmt, src string) error {
	nodes := make([]*node, len(stmts))
	for i, s := range stmts {
		nodes[i] = dumpStmt(s, src)
	}
	return yaml.NewEncoder(w).Encode(nodes)
}

func dumpStmt(s ast.Stmt, src string) *node {
	switch s := s.(type) {
	case *ast.ExprStmt:
		return &node{Kind: "ExprStmt", Expr: dumpExpr(s.Expr, src)}
	case *ast.Assign:
		return &node{Kind: "Assign", LHS: dumpExpr(s.LHS, src), RHS: dumpExpr(s.RHS, src)}
	case *ast.While:
		return &node{Kind: "While", Cond: dumpExpr(s.Cond, src), Body: dumpStmts(s.Body, src)}
	case *ast.If:
		n := &node{Kind: "If", Cond: dumpExpr(s.Cond, src), Then: dumpStmts(s.Then, src)}
		if len(s.Else) > 0 {
			n.Else = dumpStmts(s.Else, src)
		}
		return n
	case *ast.Pass:
		return &node{Kind: "Pass"}
	case *ast.Print:
		return &node{Kind: "Print", Expr: dumpExpr(s.Expr, src)}
	default:
		return &node{Kind: "Unknown", Text: src[s.Range().From:s.Range().To]}
	}
}

func dumpStmts(stmts []ast.Stmt, src string) []*node {
	out := make([]*node, len(stmts))
	for i, s := range stmts {
		out[i] = dumpStmt(s, src)
	}
	return out
}

func dumpExpr(e ast.Expr, src string) *node {
	switch e := e.(type) {
	case *ast.IntLiteral:
		return &node{Kind: "IntLiteral", Text: e.Text}
	case *ast.StringLiteral:
		return &node{Kind: "StringLiteral", Text: e.Text}
	case *ast.ListLiteral:
		elems := make([]*node, len(e.Elements))
		for i, el := range e.Elements {
			elems[i] = dumpExpr(el, src)
		}
		return &node{Kind: "ListLiteral", Elements: elems}
	case *ast.Name:
		return &node{Kind: "Name", Text: e.Text}
	case *ast.Binary:
		return &node{Kind: "Binary", Op: e.Op.String(), Left: dumpExpr(e.Left, src), Right: dumpExpr(e.Right, src)}
	case *ast.Subscript:
		return &node{Kind: "Subscript", Receiver: dumpExpr(e.Receiver, src), Index: dumpExpr(e.Index, src)}
	default:
		return &node{Kind: "Unknown", Text: src[e.Range().From:e.Range().To]}
	}
}

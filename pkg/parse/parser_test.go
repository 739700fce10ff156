package parse

import (
	"testing"

	"github.com/tethal/natrix/pkg/arena"
	"github.com/tethal/natrix/pkg/ast"
	"github.com/tethal/natrix/pkg/diag"
	"github.com/tethal/natrix/pkg/source"
)

func TestParserGolden(t *testing.T) {
	src := source.LoadString("t.nx", "(10 - 3) * 6\n1\n")
	stmts, err := Parse(arena.New(), src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(stmts) != 2 {
		t.Fatalf("len(stmts) = %d, want 2", len(stmts))
	}

	first, ok := stmts[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("stmts[0] = %T, want *ast.ExprStmt", stmts[0])
	}
	mul, ok := first.Expr.(*ast.Binary)
	if !ok || mul.Op != ast.MUL {
		t.Fatalf("first.Expr = %#v, want MUL binary", first.Expr)
	}
	sub, ok := mul.Left.(*ast.Binary)
	if !ok || sub.Op != ast.SUB {
		t.Fatalf("mul.Left = %#v, want SUB binary", mul.Left)
	}
	if lit, ok := sub.Left.(*ast.IntLiteral); !ok || lit.Text != "10" {
		t.Fatalf("sub.Left = %#v, want IntLiteral 10", sub.Left)
	}
	if lit, ok := sub.Right.(*ast.IntLiteral); !ok || lit.Text != "3" {
		t.Fatalf("sub.Right = %#v, want IntLiteral 3", sub.Right)
	}
	if lit, ok := mul.Right.(*ast.IntLiteral); !ok || lit.Text != "6" {
		t.Fatalf("mul.Right = %#v, want IntLiteral 6", mul.Right)
	}

	second, ok := stmts[1].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("stmts[1] = %T, want *ast.ExprStmt", stmts[1])
	}
	if lit, ok := second.Expr.(*ast.IntLiteral); !ok || lit.Text != "1" {
		t.Fatalf("second.Expr = %#v, want IntLiteral 1", second.Expr)
	}
}

func TestDiagnosticPosition(t *testing.T) {
	src := source.LoadString("t.nx", "\n(10 - 3   # comment\n")
	_, err := Parse(arena.New(), src)
	if err == nil {
		t.Fatalf("Parse() succeeded, want error")
	}
	de, ok := err.(*diag.Error)
	if !ok {
		t.Fatalf("err = %T, want *diag.Error", err)
	}
	line, col := de.LineCol()
	if line != 2 || col != 11 {
		t.Fatalf("LineCol() = %d,%d, want 2,11", line, col)
	}
	if de.To-de.From != 10 {
		t.Fatalf("span width = %d, want 10", de.To-de.From)
	}
	if de.Message != "expected closing parenthesis" {
		t.Fatalf("Message = %q", de.Message)
	}
}

func TestParserTotality(t *testing.T) {
	cases := []string{
		"1\n",
		"a = 1\nb = a + 1\nprint(b)\n",
		"while 1:\n  pass\n",
		"if 1:\n  pass\nelif 2:\n  pass\nelse:\n  pass\n",
		"[1, 2, 3,]\n",
		"(\n",
		"a < b < c\n",
		"a = 1 + 2\n",
	}
	for _, code := range cases {
		src := source.LoadString("t.nx", code)
		stmts, err := Parse(arena.New(), src)
		if err != nil && stmts != nil {
			t.Errorf("%q: both stmts and err non-nil", code)
		}
		if err == nil && stmts == nil {
			t.Errorf("%q: both stmts and err nil", code)
		}
	}
}

func TestAssignmentTargetValidation(t *testing.T) {
	src := source.LoadString("t.nx", "1 + 2 = 3\n")
	_, err := Parse(arena.New(), src)
	if err == nil {
		t.Fatalf("Parse() succeeded, want error")
	}
	if err.(*diag.Error).Message != "cannot assign to expression here" {
		t.Fatalf("Message = %q", err.(*diag.Error).Message)
	}
}

func TestNonAssociativeRelational(t *testing.T) {
	src := source.LoadString("t.nx", "a < b < c\n")
	_, err := Parse(arena.New(), src)
	if err == nil {
		t.Fatalf("Parse() succeeded, want error (non-associative relop)")
	}
}

func TestSubscriptAssignment(t *testing.T) {
	src := source.LoadString("t.nx", "a[0] = 1\n")
	stmts, err := Parse(arena.New(), src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	assign, ok := stmts[0].(*ast.Assign)
	if !ok {
		t.Fatalf("stmts[0] = %T, want *ast.Assign", stmts[0])
	}
	if _, ok := assign.LHS.(*ast.Subscript); !ok {
		t.Fatalf("LHS = %T, want *ast.Subscript", assign.LHS)
	}
}

package ast

import (
	"testing"

	"github.com/tethal/natrix/pkg/arena"
	"github.com/tethal/natrix/pkg/diag"
)

func TestBinaryOpString(t *testing.T) {
	cases := map[BinaryOp]string{ADD: "+", SUB: "-", MUL: "*", DIV: "/", EQ: "==", NE: "!=", LT: "<", LE: "<=", GT: ">", GE: ">="}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", op, got, want)
		}
	}
}

func TestNodesCarryRange(t *testing.T) {
	a := arena.New()
	lit := NewIntLiteral(a, diag.Ranging{From: 3, To: 5}, "42")
	if lit.Range() != (diag.Ranging{From: 3, To: 5}) {
		t.Fatalf("Range() = %v", lit.Range())
	}

	bin := NewBinary(a, diag.Ranging{From: 0, To: 5}, lit, ADD, lit)
	var _ Expr = bin
	if bin.Op != ADD {
		t.Fatalf("Op = %v", bin.Op)
	}
}

func TestIfElseDefaultsToEmptySlice(t *testing.T) {
	a := arena.New()
	ifStmt := NewIf(a, diag.Ranging{}, NewIntLiteral(a, diag.Ranging{}, "1"), nil, nil)
	if len(ifStmt.Else) != 0 {
		t.Fatalf("Else = %v, want empty", ifStmt.Else)
	}
}

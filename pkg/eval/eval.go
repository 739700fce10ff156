// Package eval tree-walks a parsed program: one statement executor, one
// expression evaluator, both threading the same GC and environment through
// every call. Every runtime fault is raised through pkg/rterror and is not
// caught anywhere in this package — natrix has no try/except.
package eval

import (
	"fmt"
	"io"
	"strconv"

	"github.com/tethal/natrix/pkg/ast"
	"github.com/tethal/natrix/pkg/gc"
	"github.com/tethal/natrix/pkg/rterror"
	"github.com/tethal/natrix/pkg/value"
)

type evaluator struct {
	gc  *gc.GC
	env *Env
	out io.Writer
}

// Run executes stmts with a fresh environment seeded with arg → int(arg),
// writing print output to out. It does not recover runtime faults; the
// caller (normally cmd/natrix) does that.
func Run(g *gc.GC, stmts []ast.Stmt, arg int64, out io.Writer) {
	value.Init(g)
	env := NewEnv(g)
	e := &evaluator{gc: g, env: env, out: out}

	seed := value.NewInt(g, arg)
	g.Root(seed)
	env.Set(g, "arg", seed)
	g.Unroot(seed)

	e.execStmts(stmts)

	g.Unroot(env)
	g.Collect()
}

func (e *evaluator) execStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		e.execStmt(s)
	}
}

func (e *evaluator) execStmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.ExprStmt:
		e.evalExpr(s.Expr)
	case *ast.Assign:
		e.execAssign(s)
	case *ast.While:
		e.execWhile(s)
	case *ast.If:
		e.execIf(s)
	case *ast.Pass:
		// no-op
	case *ast.Print:
		e.execPrint(s)
	default:
		panic(fmt.Sprintf("eval: unhandled statement %T", s))
	}
}

func (e *evaluator) execAssign(s *ast.Assign) {
	rhs := e.evalExpr(s.RHS)
	e.gc.Root(rhs)
	defer e.gc.Unroot(rhs)

	switch lhs := s.LHS.(type) {
	case *ast.Name:
		e.env.Set(e.gc, lhs.Text, rhs)
	case *ast.Subscript:
		recv := e.evalExpr(lhs.Receiver)
		list, ok := recv.(*value.List)
		if !ok {
			rterror.Panicf("Subscripted value must be a list")
		}
		e.gc.Root(list)
		idx := e.evalExpr(lhs.Index)
		e.gc.Unroot(list)
		value.SetElement(list, idx, rhs)
	default:
		panic(fmt.Sprintf("eval: invalid assignment target %T", lhs))
	}
}

func (e *evaluator) execWhile(s *ast.While) {
	for e.condTruthy(e.evalExpr(s.Cond)) {
		e.execStmts(s.Body)
	}
}

func (e *evaluator) execIf(s *ast.If) {
	if e.condTruthy(e.evalExpr(s.Cond)) {
		e.execStmts(s.Then)
	} else {
		e.execStmts(s.Else)
	}
}

// condTruthy implements the while/if condition rule: the condition must be
// an Int, and it's truthy iff nonzero. This is deliberately stricter than
// value.AsBool's generic conversion (e.g. a bool or str condition is a
// fault here, not coerced).
func (e *evaluator) condTruthy(v value.Value) bool {
	i, ok := v.(*value.Int)
	if !ok {
		rterror.Panicf("Condition must be an integer")
	}
	return i.V != 0
}

func (e *evaluator) execPrint(s *ast.Print) {
	v := e.evalExpr(s.Expr)
	switch v := v.(type) {
	case *value.Int:
		fmt.Fprintf(e.out, "%d\n", v.V)
	case *value.Str:
		fmt.Fprintf(e.out, "%s\n", v.V)
	default:
		rterror.Panicf("cannot print ‘%s’ object", v.Type().Name)
	}
}

func (e *evaluator) evalExpr(expr ast.Expr) value.Value {
	switch x := expr.(type) {
	case *ast.IntLiteral:
		return e.evalIntLiteral(x)
	case *ast.StringLiteral:
		return e.evalStringLiteral(x)
	case *ast.ListLiteral:
		return e.evalListLiteral(x)
	case *ast.Name:
		return e.evalName(x)
	case *ast.Binary:
		return e.evalBinary(x)
	case *ast.Subscript:
		return e.evalSubscript(x)
	default:
		panic(fmt.Sprintf("eval: unhandled expression %T", expr))
	}
}

func (e *evaluator) evalIntLiteral(x *ast.IntLiteral) value.Value {
	n, err := strconv.ParseInt(x.Text, 10, 64)
	if err != nil {
		rterror.Panicf("Integer literal too large")
	}
	return value.NewInt(e.gc, n)
}

// evalStringLiteral strips the surrounding quotes StringLiteral.Text carries
// from the lexer.
func (e *evaluator) evalStringLiteral(x *ast.StringLiteral) value.Value {
	return value.NewStr(e.gc, x.Text[1:len(x.Text)-1])
}

func (e *evaluator) evalListLiteral(x *ast.ListLiteral) value.Value {
	capacity := int64(len(x.Elements))
	if capacity == 0 {
		capacity = 1 // NewList requires a positive initial capacity
	}
	list := value.NewList(e.gc, capacity)
	e.gc.Root(list)
	for _, elemExpr := range x.Elements {
		v := e.evalExpr(elemExpr)
		e.gc.Root(v)
		value.ListAppend(e.gc, list, v)
		e.gc.Unroot(v)
	}
	e.gc.Unroot(list)
	return list
}

func (e *evaluator) evalName(x *ast.Name) value.Value {
	v, ok := e.env.Lookup(x.Text)
	if !ok {
		rterror.Panicf("Undefined variable: %s", x.Text)
	}
	return v
}

func (e *evaluator) evalBinary(x *ast.Binary) value.Value {
	left := e.evalExpr(x.Left)
	e.gc.Root(left)
	right := e.evalExpr(x.Right)
	e.gc.Unroot(left)

	if li, ok := left.(*value.Int); ok {
		if ri, ok := right.(*value.Int); ok {
			return e.evalIntBinary(x.Op, li, ri)
		}
	}
	if x.Op == ast.ADD {
		if ls, ok := left.(*value.Str); ok {
			if rs, ok := right.(*value.Str); ok {
				return value.ConcatStr(e.gc, ls, rs)
			}
		}
	}
	rterror.Panicf("Operands must be integers")
	panic("unreachable")
}

func (e *evaluator) evalIntBinary(op ast.BinaryOp, l, r *value.Int) value.Value {
	// Comparisons yield the Int 1 or 0, so they can serve as while/if
	// conditions (see condTruthy).
	truth := func(b bool) value.Value {
		if b {
			return value.NewInt(e.gc, 1)
		}
		return value.NewInt(e.gc, 0)
	}
	switch op {
	case ast.ADD:
		return value.NewInt(e.gc, l.V+r.V)
	case ast.SUB:
		return value.NewInt(e.gc, l.V-r.V)
	case ast.MUL:
		return value.NewInt(e.gc, l.V*r.V)
	case ast.DIV:
		if r.V == 0 {
			rterror.Panicf("Division by zero")
		}
		return value.NewInt(e.gc, l.V/r.V)
	case ast.EQ:
		return truth(l.V == r.V)
	case ast.NE:
		return truth(l.V != r.V)
	case ast.LT:
		return truth(l.V < r.V)
	case ast.LE:
		return truth(l.V <= r.V)
	case ast.GT:
		return truth(l.V > r.V)
	case ast.GE:
		return truth(l.V >= r.V)
	}
	panic(fmt.Sprintf("eval: unhandled binary op %v", op))
}

func (e *evaluator) evalSubscript(x *ast.Subscript) value.Value {
	recv := e.evalExpr(x.Receiver)
	list, ok := recv.(*value.List)
	if !ok {
		rterror.Panicf("Subscripted value must be a list")
	}
	e.gc.Root(list)
	idx := e.evalExpr(x.Index)
	e.gc.Unroot(list)
	return value.GetElement(list, idx)
}

// Package ast defines the typed expression and statement nodes built by
// the parser. Every node is allocated out of an arena.Arena passed in by
// the parser, so the whole tree is freed as a unit together with the
// source it slices into.
package ast

import (
	"github.com/tethal/natrix/pkg/arena"
	"github.com/tethal/natrix/pkg/diag"
)

// BinaryOp enumerates the binary operators natrix supports.
type BinaryOp int

const (
	ADD BinaryOp = iota
	SUB
	MUL
	DIV
	EQ
	NE
	LT
	LE
	GT
	GE
)

var binaryOpText = [...]string{
	ADD: "+", SUB: "-", MUL: "*", DIV: "/",
	EQ: "==", NE: "!=", LT: "<", LE: "<=", GT: ">", GE: ">=",
}

func (op BinaryOp) String() string { return binaryOpText[op] }

// Expr is implemented by every expression node. Embedding diag.Ranging
// gives every concrete node a Range method for free, satisfying
// diag.Ranger.
type Expr interface {
	diag.Ranger
	exprNode()
}

type exprBase struct {
	diag.Ranging
}

func (exprBase) exprNode() {}

// IntLiteral is a run of decimal digits; parsing (and overflow detection)
// happens at evaluation time, not here.
type IntLiteral struct {
	exprBase
	Text string
}

// NewIntLiteral allocates an IntLiteral node out of a.
func NewIntLiteral(a *arena.Arena, r diag.Ranging, text string) *IntLiteral {
	n := arena.AllocNode[IntLiteral](a)
	n.Ranging, n.Text = r, text
	return n
}

// StringLiteral's Text includes the surrounding double quotes.
type StringLiteral struct {
	exprBase
	Text string
}

func NewStringLiteral(a *arena.Arena, r diag.Ranging, text string) *StringLiteral {
	n := arena.AllocNode[StringLiteral](a)
	n.Ranging, n.Text = r, text
	return n
}

// ListLiteral is a `[e1, e2, ...]` literal.
type ListLiteral struct {
	exprBase
	Elements []Expr
}

func NewListLiteral(a *arena.Arena, r diag.Ranging, elems []Expr) *ListLiteral {
	n := arena.AllocNode[ListLiteral](a)
	n.Ranging, n.Elements = r, elems
	return n
}

// Name is a bare identifier reference.
type Name struct {
	exprBase
	Text string
}

func NewName(a *arena.Arena, r diag.Ranging, text string) *Name {
	n := arena.AllocNode[Name](a)
	n.Ranging, n.Text = r, text
	return n
}

// Binary is a binary operator expression.
type Binary struct {
	exprBase
	Left  Expr
	Op    BinaryOp
	Right Expr
}

func NewBinary(a *arena.Arena, r diag.Ranging, left Expr, op BinaryOp, right Expr) *Binary {
	n := arena.AllocNode[Binary](a)
	n.Ranging, n.Left, n.Op, n.Right = r, left, op, right
	return n
}

// Subscript is a `receiver[index]` expression.
type Subscript struct {
	exprBase
	Receiver Expr
	Index    Expr
}

func NewSubscript(a *arena.Arena, r diag.Ranging, receiver, index Expr) *Subscript {
	n := arena.AllocNode[Subscript](a)
	n.Ranging, n.Receiver, n.Index = r, receiver, index
	return n
}

// Stmt is implemented by every statement node.
type Stmt interface {
	diag.Ranger
	stmtNode()
}

type stmtBase struct {
	diag.Ranging
}

func (stmtBase) stmtNode() {}

// ExprStmt is a bare expression used as a statement, evaluated and
// discarded.
type ExprStmt struct {
	stmtBase
	Expr Expr
}

func NewExprStmt(a *arena.Arena, r diag.Ranging, expr Expr) *ExprStmt {
	n := arena.AllocNode[ExprStmt](a)
	n.Ranging, n.Expr = r, expr
	return n
}

// Assign is `LHS = RHS`; the parser guarantees LHS is a *Name or
// *Subscript before constructing this node.
type Assign struct {
	stmtBase
	LHS, RHS Expr
}

func NewAssign(a *arena.Arena, r diag.Ranging, lhs, rhs Expr) *Assign {
	n := arena.AllocNode[Assign](a)
	n.Ranging, n.LHS, n.RHS = r, lhs, rhs
	return n
}

// While is `while Cond: Body`.
type While struct {
	stmtBase
	Cond Expr
	Body []Stmt
}

func NewWhile(a *arena.Arena, r diag.Ranging, cond Expr, body []Stmt) *While {
	n := arena.AllocNode[While](a)
	n.Ranging, n.Cond, n.Body = r, cond, body
	return n
}

// If is `if Cond: Then else: Else`. Else is never nil: the parser supplies
// an empty slice when no else/elif clause was written, which the
// evaluator treats exactly like an explicit pass.
type If struct {
	stmtBase
	Cond Expr
	Then []Stmt
	Else []Stmt
}

func NewIf(a *arena.Arena, r diag.Ranging, cond Expr, then, els []Stmt) *If {
	n := arena.AllocNode[If](a)
	n.Ranging, n.Cond, n.Then, n.Else = r, cond, then, els
	return n
}

// Pass is a no-op statement.
type Pass struct {
	stmtBase
}

func NewPass(a *arena.Arena, r diag.Ranging) *Pass {
	n := arena.AllocNode[Pass](a)
	n.Ranging = r
	return n
}

// Print is `print(Expr)`.
type Print struct {
	stmtBase
	Expr Expr
}

func NewPrint(a *arena.Arena, r diag.Ranging, expr Expr) *Print {
	n := arena.AllocNode[Print](a)
	n.Ranging, n.Expr = r, expr
	return n
}

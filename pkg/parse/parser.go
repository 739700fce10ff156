// Package parse implements a recursive-descent parser that builds a
// github.com/tethal/natrix/pkg/ast tree from a source.Source, reporting at
// most one diagnostic.
package parse

import (
	"github.com/tethal/natrix/pkg/arena"
	"github.com/tethal/natrix/pkg/ast"
	"github.com/tethal/natrix/pkg/diag"
	"github.com/tethal/natrix/pkg/lexer"
	"github.com/tethal/natrix/pkg/source"
)

type parser struct {
	arena   *arena.Arena
	src     *source.Source
	lex     *lexer.Lexer
	current lexer.Token
	err     *diag.Error
}

// Parse parses src into a non-empty statement sequence. On the first
// diagnostic it stops and returns (nil, err); the caller must not proceed
// to evaluation in that case.
func Parse(a *arena.Arena, src *source.Source) ([]ast.Stmt, error) {
	p := &parser{arena: a, src: src, lex: lexer.New(src.Code)}
	p.current = p.lex.NextToken()
	stmts := p.statements(lexer.EOF)
	if stmts == nil {
		return nil, p.err
	}
	return stmts, nil
}

func (p *parser) errorAt(r diag.Ranging, message string) {
	if p.err != nil {
		return
	}
	p.err = diag.NewError(p.src, diag.KindError, r, message)
}

// error reports message at the current token's position, substituting the
// lexer's own message when the current token is itself an ERROR.
func (p *parser) error(message string) {
	if p.current.Kind == lexer.ERROR {
		message = p.lex.ErrorMessage()
	}
	p.errorAt(p.current.Ranging, message)
}

// consume returns the current token and advances. Must not be called when
// the current token is ERROR or EOF.
func (p *parser) consume() lexer.Token {
	t := p.current
	p.current = p.lex.NextToken()
	return t
}

// expect consumes the current token if it has the given kind, else reports
// message and leaves the token stream untouched.
func (p *parser) expect(kind lexer.Kind, message string) (lexer.Token, bool) {
	if p.current.Kind != kind {
		p.error(message)
		return lexer.Token{}, false
	}
	return p.consume(), true
}

func (p *parser) text(t lexer.Token) string {
	return t.Text(p.src.Code)
}

// --- expressions ---

var relOps = map[lexer.Kind]ast.BinaryOp{
	lexer.EQ: ast.EQ, lexer.NE: ast.NE,
	lexer.LT: ast.LT, lexer.LE: ast.LE,
	lexer.GT: ast.GT, lexer.GE: ast.GE,
}

func (p *parser) expr() ast.Expr {
	return p.relExpr()
}

// relExpr is non-associative: it consumes at most one comparison operator.
func (p *parser) relExpr() ast.Expr {
	left := p.addExpr()
	if left == nil {
		return nil
	}
	op, ok := relOps[p.current.Kind]
	if !ok {
		return left
	}
	p.consume()
	right := p.addExpr()
	if right == nil {
		return nil
	}
	return ast.NewBinary(p.arena, span(left, right), left, op, right)
}

func (p *parser) addExpr() ast.Expr {
	left := p.mulExpr()
	for left != nil && (p.current.Kind == lexer.PLUS || p.current.Kind == lexer.MINUS) {
		op := ast.ADD
		if p.current.Kind == lexer.MINUS {
			op = ast.SUB
		}
		p.consume()
		right := p.mulExpr()
		if right == nil {
			return nil
		}
		left = ast.NewBinary(p.arena, span(left, right), left, op, right)
	}
	return left
}

func (p *parser) mulExpr() ast.Expr {
	left := p.postfixExpr()
	for left != nil && (p.current.Kind == lexer.STAR || p.current.Kind == lexer.SLASH) {
		op := ast.MUL
		if p.current.Kind == lexer.SLASH {
			op = ast.DIV
		}
		p.consume()
		right := p.postfixExpr()
		if right == nil {
			return nil
		}
		left = ast.NewBinary(p.arena, span(left, right), left, op, right)
	}
	return left
}

func (p *parser) postfixExpr() ast.Expr {
	e := p.primary()
	for e != nil && p.current.Kind == lexer.LBRACKET {
		p.consume()
		idx := p.expr()
		if idx == nil {
			return nil
		}
		closeTok, ok := p.expect(lexer.RBRACKET, "expected closing bracket")
		if !ok {
			return nil
		}
		e = ast.NewSubscript(p.arena, diag.Ranging{From: e.Range().From, To: closeTok.To}, e, idx)
	}
	return e
}

func (p *parser) primary() ast.Expr {
	switch p.current.Kind {
	case lexer.INT_LITERAL:
		t := p.consume()
		return ast.NewIntLiteral(p.arena, t.Ranging, p.text(t))
	case lexer.STRING_LITERAL:
		t := p.consume()
		return ast.NewStringLiteral(p.arena, t.Ranging, p.text(t))
	case lexer.IDENTIFIER:
		t := p.consume()
		return ast.NewName(p.arena, t.Ranging, p.text(t))
	case lexer.LPAREN:
		p.consume()
		e := p.expr()
		if e == nil {
			return nil
		}
		if _, ok := p.expect(lexer.RPAREN, "expected closing parenthesis"); !ok {
			return nil
		}
		return e
	case lexer.LBRACKET:
		return p.listLiteral()
	}
	p.error("expected expression")
	return nil
}

// listLiteral parses '[' (expr (',' expr)* ','?)? ']'.
func (p *parser) listLiteral() ast.Expr {
	start := p.consume() // '['
	var elems []ast.Expr
	if p.current.Kind != lexer.RBRACKET {
		for {
			e := p.expr()
			if e == nil {
				return nil
			}
			elems = append(elems, e)
			if p.current.Kind != lexer.COMMA {
				break
			}
			p.consume()
			if p.current.Kind == lexer.RBRACKET {
				break // trailing comma
			}
		}
	}
	end, ok := p.expect(lexer.RBRACKET, "expected closing bracket")
	if !ok {
		return nil
	}
	return ast.NewListLiteral(p.arena, diag.Ranging{From: start.From, To: end.To}, elems)
}

// --- statements ---

// statements parses statement+ until the current token is sentinel. It
// returns nil only when a diagnostic was reported.
func (p *parser) statements(sentinel lexer.Kind) []ast.Stmt {
	s := p.statement()
	if s == nil {
		return nil
	}
	stmts := []ast.Stmt{s}
	for p.current.Kind != sentinel {
		s = p.statement()
		if s == nil {
			return nil
		}
		stmts = append(stmts, s)
	}
	return stmts
}

func (p *parser) statement() ast.Stmt {
	switch p.current.Kind {
	case lexer.KW_WHILE:
		return p.whileStmt()
	case lexer.KW_IF:
		return p.ifStmt()
	default:
		return p.simpleStmtLine()
	}
}

// block parses NEWLINE INDENT statements DEDENT.
func (p *parser) block() []ast.Stmt {
	if _, ok := p.expect(lexer.NEWLINE, "newline expected"); !ok {
		return nil
	}
	if _, ok := p.expect(lexer.INDENT, "indent expected"); !ok {
		return nil
	}
	stmts := p.statements(lexer.DEDENT)
	if stmts == nil {
		return nil
	}
	p.consume() // DEDENT: guaranteed present, statements() only stops there or on error
	return stmts
}

func (p *parser) whileStmt() ast.Stmt {
	start := p.consume() // 'while'
	cond := p.expr()
	if cond == nil {
		return nil
	}
	if _, ok := p.expect(lexer.COLON, "expected ':'"); !ok {
		return nil
	}
	body := p.block()
	if body == nil {
		return nil
	}
	return ast.NewWhile(p.arena, diag.Ranging{From: start.From, To: last(body).Range().To}, cond, body)
}

func (p *parser) ifStmt() ast.Stmt {
	start := p.consume() // 'if'
	cond := p.expr()
	if cond == nil {
		return nil
	}
	if _, ok := p.expect(lexer.COLON, "expected ':'"); !ok {
		return nil
	}
	then := p.block()
	if then == nil {
		return nil
	}
	els := p.elseClause()
	if els == nil {
		return nil
	}
	end := last(then).Range().To
	if len(els) > 0 {
		end = last(els).Range().To
	}
	return ast.NewIf(p.arena, diag.Ranging{From: start.From, To: end}, cond, then, els)
}

// elseClause parses an optional ('elif' expr ':' block elseClause | 'else'
// ':' block). It returns a non-nil, possibly empty slice when no
// elif/else was present, and nil only on error.
func (p *parser) elseClause() []ast.Stmt {
	switch p.current.Kind {
	case lexer.KW_ELIF:
		start := p.consume()
		cond := p.expr()
		if cond == nil {
			return nil
		}
		if _, ok := p.expect(lexer.COLON, "expected ':'"); !ok {
			return nil
		}
		then := p.block()
		if then == nil {
			return nil
		}
		els := p.elseClause()
		if els == nil {
			return nil
		}
		end := last(then).Range().To
		if len(els) > 0 {
			end = last(els).Range().To
		}
		return []ast.Stmt{ast.NewIf(p.arena, diag.Ranging{From: start.From, To: end}, cond, then, els)}
	case lexer.KW_ELSE:
		p.consume()
		return p.block()
	default:
		return []ast.Stmt{}
	}
}

func (p *parser) simpleStmtLine() ast.Stmt {
	s := p.simpleStmt()
	if s == nil {
		return nil
	}
	if _, ok := p.expect(lexer.NEWLINE, "expected end of line"); !ok {
		return nil
	}
	return s
}

func (p *parser) simpleStmt() ast.Stmt {
	switch p.current.Kind {
	case lexer.KW_PRINT:
		return p.printStmt()
	case lexer.KW_PASS:
		t := p.consume()
		return ast.NewPass(p.arena, t.Ranging)
	default:
		return p.exprOrAssignStmt()
	}
}

func (p *parser) printStmt() ast.Stmt {
	start := p.consume() // 'print'
	if _, ok := p.expect(lexer.LPAREN, "expected '('"); !ok {
		return nil
	}
	e := p.expr()
	if e == nil {
		return nil
	}
	closeTok, ok := p.expect(lexer.RPAREN, "expected ')'")
	if !ok {
		return nil
	}
	return ast.NewPrint(p.arena, diag.Ranging{From: start.From, To: closeTok.To}, e)
}

func (p *parser) exprOrAssignStmt() ast.Stmt {
	lhs := p.expr()
	if lhs == nil {
		return nil
	}
	if p.current.Kind != lexer.EQUALS {
		return ast.NewExprStmt(p.arena, lhs.Range(), lhs)
	}
	switch lhs.(type) {
	case *ast.Name, *ast.Subscript:
	default:
		p.errorAt(lhs.Range(), "cannot assign to expression here")
		return nil
	}
	p.consume()
	rhs := p.expr()
	if rhs == nil {
		return nil
	}
	return ast.NewAssign(p.arena, span(lhs, rhs), lhs, rhs)
}

func span(a, b ast.Expr) diag.Ranging {
	return diag.Ranging{From: a.Range().From, To: b.Range().To}
}

func last(stmts []ast.Stmt) ast.Stmt {
	return stmts[len(stmts)-1]
}

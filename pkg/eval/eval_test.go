package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tethal/natrix/pkg/arena"
	"github.com/tethal/natrix/pkg/gc"
	"github.com/tethal/natrix/pkg/parse"
	"github.com/tethal/natrix/pkg/rterror"
	"github.com/tethal/natrix/pkg/source"
)

func runProgram(t *testing.T, code string, arg int64) string {
	t.Helper()
	a := arena.New()
	src := source.LoadString("<test>", code)
	stmts, err := parse.Parse(a, src)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	var out bytes.Buffer
	Run(gc.New(), stmts, arg, &out)
	return out.String()
}

func TestFactorial(t *testing.T) {
	code := "n = arg\n" +
		"fact = 1\n" +
		"while n > 0:\n" +
		"  fact = fact * n\n" +
		"  n = n - 1\n" +
		"print(fact)\n"
	got := runProgram(t, code, 5)
	if got != "120\n" {
		t.Fatalf("got %q, want %q", got, "120\n")
	}
}

func TestListMutation(t *testing.T) {
	code := "a = [\"Hello\", \"world!\"]\n" +
		"a[0] = \"Goodbye\"\n" +
		"print(a[0] + \" \" + a[1])\n"
	got := runProgram(t, code, 0)
	if got != "Goodbye world!\n" {
		t.Fatalf("got %q, want %q", got, "Goodbye world!\n")
	}
}

func expectRunFault(t *testing.T, want string, code string, arg int64) {
	t.Helper()
	defer func() {
		r := recover()
		f, ok := r.(rterror.Fault)
		if !ok {
			t.Fatalf("recovered %T (%v), want rterror.Fault", r, r)
		}
		if !strings.Contains(f.Message, want) {
			t.Fatalf("Message = %q, want to contain %q", f.Message, want)
		}
	}()
	runProgram(t, code, arg)
	t.Fatalf("did not panic")
}

func TestDivisionByZeroFault(t *testing.T) {
	expectRunFault(t, "Division by zero", "x = 1 / 0\n", 0)
}

func TestUndefinedVariableFault(t *testing.T) {
	expectRunFault(t, "Undefined variable: y", "print(y)\n", 0)
}

func TestSubscriptNonListFault(t *testing.T) {
	expectRunFault(t, "Subscripted value must be a list", "x = 5\nprint(x[0])\n", 0)
}

func TestConditionMustBeIntFault(t *testing.T) {
	expectRunFault(t, "Condition must be an integer", "if \"x\":\n  pass\n", 0)
}

func TestOperandsMustBeIntegersFault(t *testing.T) {
	expectRunFault(t, "Operands must be integers", "x = 1 + \"a\"\n", 0)
}

func TestPrintUnsupportedTypeFault(t *testing.T) {
	expectRunFault(t, "cannot print", "print([1, 2])\n", 0)
}

func TestIfElseBranch(t *testing.T) {
	code := "if arg > 0:\n  print(1)\nelse:\n  print(0)\n"
	if got := runProgram(t, code, -1); got != "0\n" {
		t.Fatalf("got %q, want %q", got, "0\n")
	}
	if got := runProgram(t, code, 3); got != "1\n" {
		t.Fatalf("got %q, want %q", got, "1\n")
	}
}

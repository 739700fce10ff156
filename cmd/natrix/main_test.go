package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScript(t *testing.T, code string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "t.nx")
	if err := os.WriteFile(path, []byte(code), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestRunFactorial(t *testing.T) {
	path := writeScript(t, "n = arg\nfact = 1\nwhile n > 0:\n  fact = fact * n\n  n = n - 1\nprint(fact)\n")
	var out, errOut strings.Builder
	code := run([]string{path, "5"}, &out, &errOut)
	if code != 0 {
		t.Fatalf("run() = %d, want 0 (stderr: %s)", code, errOut.String())
	}
	if out.String() != "120\n" {
		t.Fatalf("stdout = %q, want %q", out.String(), "120\n")
	}
}

func TestRunMissingArgReturnsOne(t *testing.T) {
	var out, errOut strings.Builder
	code := run(nil, &out, &errOut)
	if code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
}

func TestRunUnreadableFileReturnsOne(t *testing.T) {
	var out, errOut strings.Builder
	code := run([]string{filepath.Join(t.TempDir(), "missing.nx")}, &out, &errOut)
	if code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
}

func TestRunNonNumericArgReturnsOne(t *testing.T) {
	path := writeScript(t, "print(arg)\n")
	var out, errOut strings.Builder
	code := run([]string{path, "not-a-number"}, &out, &errOut)
	if code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
}

func TestRunParseErrorReturnsOne(t *testing.T) {
	path := writeScript(t, "x = (1\n")
	var out, errOut strings.Builder
	code := run([]string{path}, &out, &errOut)
	if code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
}

func TestRunRuntimeFaultReturnsOne(t *testing.T) {
	path := writeScript(t, "x = 1 / 0\n")
	var out, errOut strings.Builder
	code := run([]string{path}, &out, &errOut)
	if code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "Division by zero") {
		t.Fatalf("stderr = %q, want to contain %q", errOut.String(), "Division by zero")
	}
}

func TestRunDumpTokens(t *testing.T) {
	path := writeScript(t, "print(1)\n")
	var out, errOut strings.Builder
	code := run([]string{"-dump-tokens", path}, &out, &errOut)
	if code != 0 {
		t.Fatalf("run() = %d, want 0 (stderr: %s)", code, errOut.String())
	}
	if !strings.Contains(out.String(), "kind: KW_PRINT") {
		t.Fatalf("stdout = %q, want to contain token dump", out.String())
	}
}

func TestRunDumpAST(t *testing.T) {
	path := writeScript(t, "print(1)\n")
	var out, errOut strings.Builder
	code := run([]string{"-dump-ast", path}, &out, &errOut)
	if code != 0 {
		t.Fatalf("run() = %d, want 0 (stderr: %s)", code, errOut.String())
	}
	if !strings.Contains(out.String(), "kind: Print") {
		t.Fatalf("stdout = %q, want to contain AST dump", out.String())
	}
}

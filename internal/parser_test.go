package internal

import (
	"strings"
	"testing"
)

func parseRepr(t *testing.T, source string) string {
	t.Helper()
	state := newInterpreterState(source)
	lex := newLexer(strings.NewReader(source), state)
	lex.scan()
	newParser(lex, state).parse()
	if !state.Valid() {
		t.Fatalf("unexpected parse errors for:\n%s\n%v", source, state.errors)
	}
	parts := make([]string, 0, len(state.stmts))
	for _, st := range state.stmts {
		parts = append(parts, astRepr(st))
	}
	return strings.Join(parts, "\n")
}

func parseFails(t *testing.T, source string) {
	t.Helper()
	state := newInterpreterState(source)
	lex := newLexer(strings.NewReader(source), state)
	lex.scan()
	if !state.Valid() {
		return
	}
	newParser(lex, state).parse()
	if state.Valid() {
		t.Errorf("expected parse error for:\n%s", source)
	}
}

func TestParseAssignment(t *testing.T) {
	if got := parseRepr(t, "x = 1 + 2\n"); got != "(set x (+ 1 2))" {
		t.Errorf("got %q", got)
	}
}

func TestParsePrecedence(t *testing.T) {
	cases := []struct{ source, want string }{
		{"x = 1 + 2 * 3\n", "(set x (+ 1 (* 2 3)))"},
		{"x = (1 + 2) * 3\n", "(set x (* (+ 1 2) 3))"},
		{"x = 1 - 2 - 3\n", "(set x (- (- 1 2) 3))"},
		{"x = 8 / 2 / 2\n", "(set x (/ (/ 8 2) 2))"},
		{"x = 1 + 2 < 3 * 4\n", "(set x (< (+ 1 2) (* 3 4)))"},
		{"z = not 1 and 2 or 3\n", "(set z (or (and (not 1) 2) 3))"},
		{"z = 1 == 2 and 3 != 4\n", "(set z (and (== 1 2) (!= 3 4)))"},
	}
	for _, c := range cases {
		if got := parseRepr(t, c.source); got != c.want {
			t.Errorf("%q: got %q, want %q", c.source, got, c.want)
		}
	}
}

func TestParseLiterals(t *testing.T) {
	got := parseRepr(t, "print 1, \"s\", True, False, None\n")
	if got != "(print 1 \"s\" True False None)" {
		t.Errorf("got %q", got)
	}
}

func TestParseClassAndInstantiation(t *testing.T) {
	source := "class A:\n" +
		"  def f(x, y):\n" +
		"    return x + y\n" +
		"a = A()\n" +
		"print a.f(1, 2)\n"
	got := parseRepr(t, source)
	want := "(class A (def f (x, y) (scope (return (+ x y)))))\n" +
		"(set a (new A))\n" +
		"(print (call a f 1 2))"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestParseInheritance(t *testing.T) {
	source := "class B:\n" +
		"  def f():\n" +
		"    return 1\n" +
		"class C(B):\n" +
		"  def g():\n" +
		"    return self.f()\n"
	got := parseRepr(t, source)
	if !strings.Contains(got, "(class C (parent B)") {
		t.Errorf("parent missing from repr:\n%s", got)
	}
	if !strings.Contains(got, "(call self f)") {
		t.Errorf("self call missing from repr:\n%s", got)
	}
}

func TestParseFieldAssignment(t *testing.T) {
	cases := []struct{ source, want string }{
		{"a.b = 1\n", "(setfield a b 1)"},
		{"a.b.c = 2\n", "(setfield a.b c 2)"},
		{"x = a.b.c\n", "(set x a.b.c)"},
	}
	for _, c := range cases {
		if got := parseRepr(t, c.source); got != c.want {
			t.Errorf("%q: got %q, want %q", c.source, got, c.want)
		}
	}
}

func TestParseIfElse(t *testing.T) {
	source := "if x < 2:\n" +
		"  print 1\n" +
		"else:\n" +
		"  print 2\n"
	got := parseRepr(t, source)
	want := "(if (< x 2) (then (scope (print 1))) (else (scope (print 2))))"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseStringify(t *testing.T) {
	if got := parseRepr(t, "x = str(1 + 2)\n"); got != "(set x (str (+ 1 2)))" {
		t.Errorf("got %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	// missing indented block
	parseFails(t, "if 1:\nprint 2\n")
	// missing colon
	parseFails(t, "if 1\n  print 2\n")
	// dangling assignment
	parseFails(t, "x =\n")
	// assignment to a call
	parseFails(t, "class A:\n  def f():\n    return 1\na = A()\na.f() = 2\n")
	// unknown parent class
	parseFails(t, "class C(Missing):\n  def f():\n    return 1\n")
	// instantiating an unknown class
	parseFails(t, "x = Nope()\n")
	// class body must hold method definitions
	parseFails(t, "class A:\n  x = 1\n")
}

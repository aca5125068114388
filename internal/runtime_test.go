package internal

import (
	"bytes"
	"regexp"
	"testing"
)

func expectRuntimeError(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			if _, isRuntime := r.(runtimeError); !isRuntime {
				t.Errorf("expected runtimeError, got %v", r)
			}
			return
		}
		t.Errorf("expected a runtime error, got none")
	}()
	fn()
}

func TestTruthiness(t *testing.T) {
	ctx := &context{out: &bytes.Buffer{}}
	cases := []struct {
		value holder
		want  bool
	}{
		{emptyHolder(), false},
		{own(pyriteNumber(0)), false},
		{own(pyriteNumber(1)), true},
		{own(pyriteNumber(-3)), true},
		{own(pyriteString("")), false},
		{own(pyriteString("x")), true},
		{own(pyriteBool(true)), true},
		{own(pyriteBool(false)), false},
		{own(&pyriteClass{name: "A"}), false},
		{own(newObject(&pyriteClass{name: "A"})), false},
	}
	for i, c := range cases {
		if got := isTrue(c.value); got != c.want {
			var buf bytes.Buffer
			printValue(c.value, &buf, ctx)
			t.Errorf("case %d (%s): isTrue = %v, want %v", i, buf.String(), got, c.want)
		}
	}
}

func TestEqualPrimitives(t *testing.T) {
	ctx := &context{out: &bytes.Buffer{}}
	values := []holder{
		emptyHolder(),
		own(pyriteNumber(0)),
		own(pyriteNumber(42)),
		own(pyriteString("")),
		own(pyriteString("abc")),
		own(pyriteBool(true)),
		own(pyriteBool(false)),
	}
	// reflexivity
	for _, v := range values {
		if !equal(v, v, ctx) {
			t.Errorf("equal(x, x) must hold for %v", v)
		}
	}
	// symmetry within a variant
	pairs := [][2]holder{
		{own(pyriteNumber(1)), own(pyriteNumber(2))},
		{own(pyriteString("a")), own(pyriteString("b"))},
		{own(pyriteBool(true)), own(pyriteBool(false))},
	}
	for _, p := range pairs {
		if equal(p[0], p[1], ctx) != equal(p[1], p[0], ctx) {
			t.Errorf("equal must be symmetric for %v", p)
		}
	}
	if equal(own(pyriteNumber(1)), own(pyriteNumber(2)), ctx) {
		t.Errorf("1 == 2 must be false")
	}
}

func TestEqualTypeMismatchIsFatal(t *testing.T) {
	ctx := &context{out: &bytes.Buffer{}}
	expectRuntimeError(t, func() {
		equal(own(pyriteNumber(1)), own(pyriteString("1")), ctx)
	})
	expectRuntimeError(t, func() {
		equal(emptyHolder(), own(pyriteNumber(1)), ctx)
	})
	expectRuntimeError(t, func() {
		less(own(pyriteBool(true)), own(pyriteNumber(1)), ctx)
	})
}

func TestDerivedRelations(t *testing.T) {
	ctx := &context{out: &bytes.Buffer{}}
	pairs := [][2]holder{
		{own(pyriteNumber(1)), own(pyriteNumber(2))},
		{own(pyriteNumber(2)), own(pyriteNumber(2))},
		{own(pyriteString("a")), own(pyriteString("b"))},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		if greater(a, b, ctx) != less(b, a, ctx) {
			t.Errorf("greater(a,b) must equal less(b,a)")
		}
		if notEqual(a, b, ctx) == equal(a, b, ctx) {
			t.Errorf("notEqual must negate equal")
		}
		if lessOrEqual(a, b, ctx) != !greater(a, b, ctx) {
			t.Errorf("lessOrEqual must negate greater")
		}
		if greaterOrEqual(a, b, ctx) != !less(a, b, ctx) {
			t.Errorf("greaterOrEqual must negate less")
		}
	}
}

func returning(value holder) stmt {
	return &methodBody{body: &returnStmt{value: &literal{value: value}}}
}

func TestMethodResolutionWalksParents(t *testing.T) {
	base := &pyriteClass{
		name: "Base",
		methods: []*method{
			{name: "f", body: returning(own(pyriteNumber(1)))},
			{name: "g", params: []string{"a"}, body: returning(own(pyriteNumber(2)))},
		},
	}
	derived := &pyriteClass{
		name:   "Derived",
		parent: base,
		methods: []*method{
			{name: "f", body: returning(own(pyriteNumber(3)))},
		},
	}

	if m := derived.findMethod("f"); m == nil || m != derived.methods[0] {
		t.Errorf("override must win over parent")
	}
	if m := derived.findMethod("g"); m == nil || m != base.methods[1] {
		t.Errorf("missing methods must resolve in the parent")
	}
	if derived.findMethod("h") != nil {
		t.Errorf("absent method must resolve to nil")
	}

	obj := newObject(derived)
	if !obj.hasMethod("g", 1) || obj.hasMethod("g", 0) {
		t.Errorf("hasMethod must check the formal-parameter count")
	}
}

func TestCallBindsSelfAndParams(t *testing.T) {
	ctx := &context{out: &bytes.Buffer{}}
	echo := &pyriteClass{
		name: "Echo",
		methods: []*method{
			{
				name:   "echo",
				params: []string{"a"},
				body:   &methodBody{body: &returnStmt{value: &variableValue{ids: []string{"a"}}}},
			},
			{
				name: "field",
				body: &methodBody{body: &returnStmt{value: &variableValue{ids: []string{"self", "x"}}}},
			},
		},
	}
	obj := newObject(echo)
	obj.fields.define("x", own(pyriteNumber(9)))

	got := obj.call("echo", []holder{own(pyriteNumber(5))}, ctx)
	if n, ok := got.obj.(pyriteNumber); !ok || n != 5 {
		t.Errorf("parameter binding: got %v", got)
	}

	got = obj.call("field", nil, ctx)
	if n, ok := got.obj.(pyriteNumber); !ok || n != 9 {
		t.Errorf("self binding: got %v", got)
	}

	expectRuntimeError(t, func() {
		obj.call("echo", nil, ctx)
	})
	expectRuntimeError(t, func() {
		obj.call("missing", nil, ctx)
	})
}

func TestPrintValue(t *testing.T) {
	ctx := &context{out: &bytes.Buffer{}}
	cases := []struct {
		value holder
		want  string
	}{
		{emptyHolder(), "None"},
		{own(pyriteNumber(0)), "0"},
		{own(pyriteNumber(-42)), "-42"},
		{own(pyriteString("plain text")), "plain text"},
		{own(pyriteBool(true)), "True"},
		{own(pyriteBool(false)), "False"},
		{own(&pyriteClass{name: "Shape"}), "Class Shape"},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		printValue(c.value, &buf, ctx)
		if buf.String() != c.want {
			t.Errorf("printValue: got %q, want %q", buf.String(), c.want)
		}
	}
}

func TestInstancePrintIdentity(t *testing.T) {
	ctx := &context{out: &bytes.Buffer{}}
	obj := newObject(&pyriteClass{name: "A"})
	var buf bytes.Buffer
	printValue(own(obj), &buf, ctx)
	if !regexp.MustCompile(`^0x[0-9a-f]+$`).MatchString(buf.String()) {
		t.Errorf("instance without __str__ must print its identity, got %q", buf.String())
	}

	var second bytes.Buffer
	printValue(own(obj), &second, ctx)
	if buf.String() != second.String() {
		t.Errorf("identity must be stable across prints")
	}
}

func TestEmptyHolderDerefPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("mustObject on an empty holder must panic")
		}
	}()
	emptyHolder().mustObject()
}

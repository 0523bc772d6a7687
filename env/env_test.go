package env_test

import (
	"testing"

	"lispy.dev/lispy/env"
	"lispy.dev/lispy/value"
)

func TestGetUnbound(t *testing.T) {
	t.Parallel()

	e := env.New(nil)
	got := e.Get("x")
	if got.Kind != value.Error {
		t.Fatalf("Get of unbound symbol = %v, want Error", got)
	}
	if want := "Unbound symbol 'x'"; got.Str != want {
		t.Fatalf("message = %q, want %q", got.Str, want)
	}
}

func TestGetWalksParentChain(t *testing.T) {
	t.Parallel()

	root := env.New(nil)
	root.Def("x", value.NewNumber(100))

	child := env.New(root)
	got := child.Get("x")
	if got.Kind != value.Number || got.Num != 100 {
		t.Fatalf("Get(x) from child = %v, want 100", got)
	}
}

func TestPutIsLocalOnly(t *testing.T) {
	t.Parallel()

	root := env.New(nil)
	root.Def("x", value.NewNumber(1))

	child := env.New(root)
	child.Put("x", value.NewNumber(99))

	if got := child.Get("x"); got.Num != 99 {
		t.Fatalf("child sees %v, want 99", got)
	}
	if got := root.Get("x"); got.Num != 1 {
		t.Fatalf("root sees %v, want unaffected 1", got)
	}
}

func TestDefReachesRoot(t *testing.T) {
	t.Parallel()

	root := env.New(nil)
	mid := env.New(root)
	leaf := env.New(mid)

	leaf.Def("g", value.NewNumber(7))

	if got := root.Get("g"); got.Num != 7 {
		t.Fatalf("root sees %v, want 7", got)
	}
	if got := mid.Get("g"); got.Num != 7 {
		t.Fatalf("mid sees %v, want 7", got)
	}
}

func TestGetReturnsIndependentCopy(t *testing.T) {
	t.Parallel()

	e := env.New(nil)
	list := value.NewQExpr()
	value.Add(list, value.NewNumber(1))
	e.Put("xs", list)

	got := e.Get("xs")
	value.Add(got, value.NewNumber(2))

	again := e.Get("xs")
	if len(again.Cells) != 1 {
		t.Fatalf("mutating a Get() result leaked into the environment: %v", again.Cells)
	}
}

func TestCopyPreservesParentSharesNotBindings(t *testing.T) {
	t.Parallel()

	parent := env.New(nil)
	e := env.New(parent)
	e.Put("x", value.NewNumber(1))

	cp := e.Copy()
	if cp.Parent() != parent {
		t.Fatal("Copy must share the parent pointer")
	}

	cp.Put("x", value.NewNumber(2))
	if got := e.Get("x"); got.Num != 1 {
		t.Fatalf("mutating the copy's bindings leaked back: %v", got)
	}
}

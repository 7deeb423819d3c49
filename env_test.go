package scheme

import "testing"

func Test_Env_Extend_Then_Find(t *testing.T) {
	f := Extend("x", IntV(1), nil)
	v, ok := f.Find("x")
	if !ok {
		t.Fatalf("x not found")
	}
	wantInt(t, v, 1)
	if _, ok := f.Find("y"); ok {
		t.Fatalf("found unbound y")
	}
}

func Test_Env_Find_On_Empty_Chain(t *testing.T) {
	var f *Frame
	if _, ok := f.Find("x"); ok {
		t.Fatalf("found binding in empty chain")
	}
}

func Test_Env_Inner_Binding_Shadows_Outer(t *testing.T) {
	outer := Extend("x", IntV(1), nil)
	inner := Extend("x", IntV(2), outer)
	v, _ := inner.Find("x")
	wantInt(t, v, 2)
	v, _ = outer.Find("x")
	wantInt(t, v, 1)
}

func Test_Env_Outer_Bindings_Visible_Through_Inner(t *testing.T) {
	outer := Extend("x", IntV(1), nil)
	inner := Extend("y", IntV(2), outer)
	v, ok := inner.Find("x")
	if !ok {
		t.Fatalf("x not visible through inner frame")
	}
	wantInt(t, v, 1)
}

func Test_Env_Modify_Mutates_Nearest_Binding(t *testing.T) {
	outer := Extend("x", IntV(1), nil)
	inner := Extend("x", IntV(2), outer)
	if !inner.Modify("x", IntV(99)) {
		t.Fatalf("Modify failed")
	}
	v, _ := inner.Find("x")
	wantInt(t, v, 99)
	// the outer binding is untouched
	v, _ = outer.Find("x")
	wantInt(t, v, 1)
}

func Test_Env_Modify_Is_Visible_To_Aliases(t *testing.T) {
	shared := Extend("x", IntV(1), nil)
	a := Extend("a", IntV(0), shared)
	b := Extend("b", IntV(0), shared)
	if !a.Modify("x", IntV(7)) {
		t.Fatalf("Modify failed")
	}
	v, _ := b.Find("x")
	wantInt(t, v, 7)
}

func Test_Env_Modify_Unbound_Reports_False(t *testing.T) {
	f := Extend("x", IntV(1), nil)
	if f.Modify("y", IntV(2)) {
		t.Fatalf("Modify succeeded on unbound name")
	}
	var empty *Frame
	if empty.Modify("x", IntV(1)) {
		t.Fatalf("Modify succeeded on empty chain")
	}
}

func Test_Env_Extend_Does_Not_Mutate_Parent(t *testing.T) {
	parent := Extend("x", IntV(1), nil)
	_ = Extend("y", IntV(2), parent)
	if _, ok := parent.Find("y"); ok {
		t.Fatalf("extension leaked into parent chain")
	}
}

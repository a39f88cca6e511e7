package rop

import "testing"

func TestOption_Some(t *testing.T) {
	t.Parallel()
	o := Some("hint")
	v, ok := o.Get()
	if !ok || v != "hint" || !o.IsSome() || o.IsNone() {
		t.Fatalf("expected Some(hint), got (%q, %v)", v, ok)
	}
	if o.OrElse("fallback") != "hint" {
		t.Fatalf("OrElse must return the held value")
	}
}

func TestOption_None(t *testing.T) {
	t.Parallel()
	o := None[int]()
	if _, ok := o.Get(); ok || o.IsSome() || !o.IsNone() {
		t.Fatalf("expected None")
	}
	if o.OrElse(9) != 9 {
		t.Fatalf("expected fallback 9, got %d", o.OrElse(9))
	}

	var zero Option[int]
	if zero.IsSome() {
		t.Fatalf("zero Option must be None")
	}
}

func TestOption_FromPtr(t *testing.T) {
	t.Parallel()
	if FromPtr[string](nil).IsSome() {
		t.Fatalf("nil pointer must give None")
	}
	s := ""
	o := FromPtr(&s)
	if v, ok := o.Get(); !ok || v != "" {
		t.Fatalf("expected Some(\"\"), got (%q, %v)", v, ok)
	}
}

package maybe_test

import (
	"testing"

	. "github.com/npillmayer/uistyle/maybe"
)

func TestMaybeGet(t *testing.T) {
	x := Just[int32](7)
	if v, ok := x.Get(); !ok || v != 7 {
		t.Errorf("expected Just(7), is %d/%v", v, ok)
	}
	if x.IsNothing() {
		t.Error("expected Just(7) not to be Nothing")
	}
	if !Nothing[int32]().IsNothing() {
		t.Error("expected Nothing to be Nothing")
	}
}

func TestMaybeEqual(t *testing.T) {
	if !Equal(Just(3), Just(3)) {
		t.Error("expected Just(3) == Just(3)")
	}
	if Equal(Just(3), Just(4)) {
		t.Error("expected Just(3) != Just(4)")
	}
	if !Equal(Nothing[int](), nil) {
		t.Error("expected nil to count as Nothing")
	}
	if Equal(Just(0), Nothing[int]()) {
		t.Error("expected Just(0) != Nothing")
	}
}

func TestMaybeOfAndDefault(t *testing.T) {
	if v := Of(5, false).WithDefault(100); v != 100 {
		t.Errorf("expected Nothing to default to 100, is %d", v)
	}
	if v := Of(5, true).WithDefault(0); v != 5 {
		t.Errorf("expected Just(5) to return 5, is %d", v)
	}
	if _, ok := Nothing[string]().Get(); ok {
		t.Error("expected Get on Nothing to fail")
	}
}

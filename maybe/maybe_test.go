package maybe_test

import (
	"strconv"
	"testing"

	. "github.com/npillmayer/collect/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
	if !y.IsNothing() {
		t.Error("expected Nothing to report IsNothing, doesn't")
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if xx := Just(7).WithDefault(100); xx != 7 {
		t.Logf("x = %d", xx)
		t.Error("expected Just(7) to have value 7, isn't")
	}
	if yy := Nothing[int]().WithDefault(100); yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestMaybeMap(t *testing.T) {
	xx := Just(7).Map(func(n int) int {
		return n * 2
	})
	if v, ok := xx.Get(); !ok || v != 14 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}
	s := Map(strconv.Itoa, Just(10))
	if v, _ := s.Get(); v != "10" {
		t.Errorf("expected Map(Itoa, Just 10) to return \"10\", is %q", v)
	}
	yy := Nothing[int]().Map(func(n int) int {
		return n * 2
	})
	if !yy.IsNothing() {
		t.Error("expected Nothing.Map(…) to stay Nothing, didn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	if gt := AndThen(gt0, Just(7)); gt.IsNothing() {
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if gt := AndThen(gt0, Just(-7)); !gt.IsNothing() {
		t.Error("expected Just(-7) |> andThen(gt0) to be Nothing, isn't")
	}
}

func TestMaybeEqual(t *testing.T) {
	eq := func(a, b int) bool { return a == b }
	if !Equal(Just(3), Just(3), eq) {
		t.Error("expected Just 3 to equal Just 3")
	}
	if Equal(Just(3), Just(4), eq) {
		t.Error("expected Just 3 to differ from Just 4")
	}
	if Equal(Nothing[int](), Nothing[int](), eq) {
		t.Error("expected Nothing never to equal Nothing")
	}
	if Equal(Just(0), Nothing[int](), eq) {
		t.Error("expected Just 0 not to equal Nothing")
	}
}

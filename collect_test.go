package collect_test

import (
	"fmt"
	"testing"

	"github.com/npillmayer/collect"
)

func TestComposition(t *testing.T) {
	g := func(n int) float32 {
		return float32(n) + 0.5
	}
	f := func(x float32) string {
		return fmt.Sprintf("%.3f", x)
	}
	h := collect.Compose(g, f)
	h7 := h(7)
	if h7 != "7.500" {
		t.Logf("composition h(7) = %q", h(7))
		t.Error("expected h(7) to return string 7.500")
	}
}

func TestPredicates(t *testing.T) {
	even := collect.Predicate[int](func(n int) bool { return n%2 == 0 })
	positive := collect.Predicate[int](func(n int) bool { return n > 0 })
	odd := collect.Not(even)
	if !odd(3) || odd(4) {
		t.Error("expected Not(even) to hold for 3 and not for 4")
	}
	both := collect.And(even, positive)
	if !both(2) || both(-2) || both(3) {
		t.Error("expected And(even, positive) to hold for 2 only")
	}
}

package failfast

import (
	"errors"
	"testing"
)

func expectPanic(t *testing.T, want bool, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if want && r == nil {
			t.Error("expected panic, got none")
		}
		if !want && r != nil {
			t.Errorf("unexpected panic: %v", r)
		}
	}()
	fn()
}

func TestErr(t *testing.T) {
	expectPanic(t, false, func() { Err(nil) })
	expectPanic(t, true, func() { Err(errors.New("boom")) })
}

func TestIf(t *testing.T) {
	expectPanic(t, false, func() { If(true, "fine") })
	expectPanic(t, true, func() { If(false, "not fine: %d", 42) })
}

func TestNotNil(t *testing.T) {
	expectPanic(t, true, func() { NotNil(nil, "value") })

	// Typed nils must be caught too.
	var p *int
	expectPanic(t, true, func() { NotNil(p, "pointer") })
	var fn func()
	expectPanic(t, true, func() { NotNil(fn, "func") })
	var m map[string]int
	expectPanic(t, true, func() { NotNil(m, "map") })

	expectPanic(t, false, func() { NotNil(42, "int") })
	expectPanic(t, false, func() { NotNil(new(int), "pointer") })
	expectPanic(t, false, func() { NotNil(func() {}, "func") })
}

// Package failfast provides invariant checks that panic on programmer error.
//
// These are for wiring mistakes (nil option arguments, impossible states),
// not for caller-visible faults — those are returned as errors.
package failfast

import (
	"fmt"
	"reflect"
	"runtime/debug"
)

// Err panics if err is non-nil, attaching a stack trace.
func Err(err error) {
	if err != nil {
		panic(fmt.Errorf("fail-fast: %w\n%s", err, debug.Stack()))
	}
}

// If panics with a formatted message if condition is false.
func If(condition bool, message string, args ...any) {
	if !condition {
		panic(fmt.Errorf("fail-fast: "+message, args...))
	}
}

// NotNil panics if v is nil. It catches typed nil pointers and nil
// functions as well as untyped nil, so it works on handler funcs.
func NotNil(v any, name string) {
	if v == nil {
		panic(fmt.Errorf("fail-fast: %s is nil", name))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface:
		if rv.IsNil() {
			panic(fmt.Errorf("fail-fast: %s is nil", name))
		}
	}
}

package jsenv

import (
	"errors"

	"github.com/dop251/goja"

	"github.com/warpdl/warpstore/internal/native"
)

// ErrNotCallable is returned when a storage object lacks a method.
var ErrNotCallable = errors.New("jsenv: storage method is not callable")

// throw raises a JS exception of the given name from a native function.
func throw(runtime *goja.Runtime, name, msg string) {
	e, err := runtime.New(runtime.Get("Error"), runtime.ToValue(msg))
	if err != nil {
		panic(runtime.NewGoError(errors.New(msg)))
	}
	_ = e.Set("name", name)
	panic(e)
}

// throwErr raises err, naming quota failures like a browser does.
func throwErr(runtime *goja.Runtime, err error) {
	name := "Error"
	if errors.Is(err, native.ErrQuotaExceeded) {
		name = "QuotaExceededError"
	}
	throw(runtime, name, err.Error())
}

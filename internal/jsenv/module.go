package jsenv

import (
	"github.com/dop251/goja"

	"github.com/warpdl/warpstore/pkg/webstorage"
)

// ModuleName is the name scripts pass to require to get the selector.
const ModuleName = "warpstore"

// loadModule fills the exports of require('warpstore'):
//
//	supports(name) -> bool, true only for an exact mechanism name
//	cookie(), localStorage(), sessionStorage(), select(name) -> storage
//
// A storage object has setItem(key, value, opts), getItem, removeItem(key,
// opts), key, hasOwnProperty, clear, a length getter and a backend
// property naming the mechanism that serves it.
func (r *Runtime) loadModule(runtime *goja.Runtime, module *goja.Object) {
	exports := module.Get("exports").(*goja.Object)
	_ = exports.Set("supports", func(call goja.FunctionCall) goja.Value {
		return runtime.ToValue(r.sel.Supports(webstorage.Mechanism(call.Argument(0).String())))
	})
	_ = exports.Set("cookie", func(goja.FunctionCall) goja.Value {
		return r.storageObject(r.sel.Cookie())
	})
	_ = exports.Set("localStorage", func(goja.FunctionCall) goja.Value {
		return r.storageObject(r.sel.LocalStorage())
	})
	_ = exports.Set("sessionStorage", func(goja.FunctionCall) goja.Value {
		return r.storageObject(r.sel.SessionStorage())
	})
	_ = exports.Set("select", func(call goja.FunctionCall) goja.Value {
		m, err := webstorage.ParseMechanism(call.Argument(0).String())
		if err != nil {
			throwErr(runtime, err)
		}
		return r.storageObject(r.sel.Select(m))
	})
}

func (r *Runtime) storageObject(st webstorage.Storage) *goja.Object {
	obj := r.NewObject()
	r.bindItems(obj, st, goja.Undefined())
	_ = obj.Set("backend", string(webstorage.BackendOf(st)))
	_ = obj.Set("setItem", func(call goja.FunctionCall) goja.Value {
		err := st.SetItem(call.Argument(0).String(), call.Argument(1).String(), r.cookieOptions(call.Argument(2))...)
		if err != nil {
			throwErr(r.Runtime, err)
		}
		return goja.Undefined()
	})
	_ = obj.Set("removeItem", func(call goja.FunctionCall) goja.Value {
		if err := st.RemoveItem(call.Argument(0).String(), r.cookieOptions(call.Argument(1))...); err != nil {
			throwErr(r.Runtime, err)
		}
		return goja.Undefined()
	})
	_ = obj.Set("hasOwnProperty", func(call goja.FunctionCall) goja.Value {
		return r.ToValue(st.HasOwnProperty(call.Argument(0).String()))
	})
	return obj
}

// cookieOptions reads {path, domain, secure, expires, maxAge} from v.
// expires may be a date string or a Date.
func (r *Runtime) cookieOptions(v goja.Value) []webstorage.Option {
	if !present(v) {
		return nil
	}
	obj := v.ToObject(r.Runtime)
	var opts []webstorage.Option
	if p := obj.Get("path"); present(p) {
		opts = append(opts, webstorage.WithPath(p.String()))
	}
	if d := obj.Get("domain"); present(d) {
		opts = append(opts, webstorage.WithDomain(d.String()))
	}
	if s := obj.Get("secure"); present(s) {
		opts = append(opts, webstorage.WithSecure(s.ToBoolean()))
	}
	if e := obj.Get("expires"); present(e) {
		opts = append(opts, webstorage.WithExpires(e.Export()))
	}
	if m := obj.Get("maxAge"); present(m) {
		opts = append(opts, webstorage.WithMaxAge(int(m.ToInteger())))
	}
	return opts
}

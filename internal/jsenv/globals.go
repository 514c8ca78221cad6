package jsenv

import (
	"github.com/dop251/goja"

	"github.com/warpdl/warpstore/pkg/webstorage"
)

// items is the read side shared by native storage handles and selected
// storages.
type items interface {
	GetItem(key string) (string, bool)
	Key(index int) (string, bool)
	Length() int
	Clear() error
}

func (r *Runtime) installGlobals(opts Options) error {
	global := r.GlobalObject()
	if err := r.Set("window", global); err != nil {
		return err
	}

	navigator := r.NewObject()
	if err := navigator.Set("cookieEnabled", opts.Document != nil && !opts.CookiesDisabled); err != nil {
		return err
	}
	if err := r.Set("navigator", navigator); err != nil {
		return err
	}

	document := r.NewObject()
	getCookie := func(goja.FunctionCall) goja.Value {
		if opts.Document == nil {
			return r.ToValue("")
		}
		return r.ToValue(opts.Document.Cookie())
	}
	setCookie := func(call goja.FunctionCall) goja.Value {
		if opts.Document != nil {
			opts.Document.SetCookie(call.Argument(0).String())
		}
		return goja.Undefined()
	}
	if err := document.DefineAccessorProperty("cookie", r.ToValue(getCookie), r.ToValue(setCookie), goja.FLAG_TRUE, goja.FLAG_TRUE); err != nil {
		return err
	}
	if err := r.Set("document", document); err != nil {
		return err
	}

	if err := r.defineStorage(global, "localStorage", opts.Local, opts.BlockLocal); err != nil {
		return err
	}
	return r.defineStorage(global, "sessionStorage", opts.Session, opts.BlockSession)
}

// defineStorage installs name on the global object as a getter returning
// the storage object, null when st is nil, or throwing when blocked.
func (r *Runtime) defineStorage(global *goja.Object, name string, st webstorage.NativeStorage, blocked bool) error {
	var value goja.Value = goja.Null()
	if st != nil {
		value = r.nativeObject(st)
	}
	getter := func(goja.FunctionCall) goja.Value {
		if blocked {
			throw(r.Runtime, "SecurityError", "The operation is insecure: access to "+name+" is denied")
		}
		return value
	}
	return global.DefineAccessorProperty(name, r.ToValue(getter), nil, goja.FLAG_TRUE, goja.FLAG_TRUE)
}

// nativeObject exposes st with the browser Storage methods.
func (r *Runtime) nativeObject(st webstorage.NativeStorage) *goja.Object {
	obj := r.NewObject()
	r.bindItems(obj, st, goja.Null())
	_ = obj.Set("setItem", func(call goja.FunctionCall) goja.Value {
		if err := st.SetItem(call.Argument(0).String(), call.Argument(1).String()); err != nil {
			throwErr(r.Runtime, err)
		}
		return goja.Undefined()
	})
	_ = obj.Set("removeItem", func(call goja.FunctionCall) goja.Value {
		if err := st.RemoveItem(call.Argument(0).String()); err != nil {
			throwErr(r.Runtime, err)
		}
		return goja.Undefined()
	})
	return obj
}

// bindItems installs getItem, key, clear and a length getter on obj. key
// returns noKey for indexes outside the storage.
func (r *Runtime) bindItems(obj *goja.Object, st items, noKey goja.Value) {
	_ = obj.Set("getItem", func(call goja.FunctionCall) goja.Value {
		v, ok := st.GetItem(call.Argument(0).String())
		if !ok {
			return goja.Null()
		}
		return r.ToValue(v)
	})
	_ = obj.Set("key", func(call goja.FunctionCall) goja.Value {
		k, ok := st.Key(int(call.Argument(0).ToInteger()))
		if !ok {
			return noKey
		}
		return r.ToValue(k)
	})
	_ = obj.Set("clear", func(goja.FunctionCall) goja.Value {
		if err := st.Clear(); err != nil {
			throwErr(r.Runtime, err)
		}
		return goja.Undefined()
	})
	length := func(goja.FunctionCall) goja.Value {
		return r.ToValue(st.Length())
	}
	_ = obj.DefineAccessorProperty("length", r.ToValue(length), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
}

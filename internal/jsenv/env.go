package jsenv

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/warpdl/warpstore/pkg/webstorage"
)

// The Runtime is a webstorage.Environment. Probes read the page globals
// through the VM, so scripts that replace or wrap them are honoured and a
// throwing getter is reported as an error.
var _ webstorage.Environment = (*Runtime)(nil)

// CookieEnabled reads navigator.cookieEnabled.
func (r *Runtime) CookieEnabled() (bool, error) {
	v, err := r.lookup("navigator", "cookieEnabled")
	if err != nil {
		return false, err
	}
	return v.ToBoolean(), nil
}

// Cookies returns document.cookie as RawCookies, or nil when the page has
// no document object.
func (r *Runtime) Cookies() webstorage.RawCookies {
	v, err := r.lookup("document")
	if err != nil || !present(v) {
		return nil
	}
	return &scriptCookies{r: r}
}

// LocalStorage returns window.localStorage.
func (r *Runtime) LocalStorage() (webstorage.NativeStorage, error) {
	return r.storage("localStorage")
}

// SessionStorage returns window.sessionStorage.
func (r *Runtime) SessionStorage() (webstorage.NativeStorage, error) {
	return r.storage("sessionStorage")
}

func (r *Runtime) storage(name string) (webstorage.NativeStorage, error) {
	v, err := r.lookup("window", name)
	if err != nil {
		return nil, err
	}
	if !present(v) {
		return nil, nil
	}
	return &scriptStorage{r: r, obj: v.ToObject(r.Runtime)}, nil
}

// lookup walks path from the global object. A missing link yields
// undefined; an exception thrown on the way is returned.
func (r *Runtime) lookup(path ...string) (goja.Value, error) {
	var v goja.Value = r.GlobalObject()
	if ex := r.Try(func() {
		for _, name := range path {
			if !present(v) {
				v = goja.Undefined()
				return
			}
			v = v.ToObject(r.Runtime).Get(name)
		}
	}); ex != nil {
		return goja.Undefined(), ex
	}
	if v == nil {
		v = goja.Undefined()
	}
	return v, nil
}

func present(v goja.Value) bool {
	return v != nil && !goja.IsUndefined(v) && !goja.IsNull(v)
}

// scriptCookies reads and writes document.cookie inside the VM.
type scriptCookies struct {
	r *Runtime
}

func (c *scriptCookies) Cookie() string {
	v, err := c.r.lookup("document", "cookie")
	if err != nil {
		c.r.l.Warning("jsenv: read document.cookie: %v", err)
		return ""
	}
	if !present(v) {
		return ""
	}
	return v.String()
}

func (c *scriptCookies) SetCookie(line string) {
	doc, err := c.r.lookup("document")
	if err != nil || !present(doc) {
		c.r.l.Warning("jsenv: document unavailable for cookie write")
		return
	}
	if ex := c.r.Try(func() {
		_ = doc.ToObject(c.r.Runtime).Set("cookie", line)
	}); ex != nil {
		c.r.l.Warning("jsenv: write document.cookie: %v", ex)
	}
}

// scriptStorage calls the methods of a Storage object inside the VM.
type scriptStorage struct {
	r   *Runtime
	obj *goja.Object
}

func (s *scriptStorage) call(method string, args ...interface{}) (goja.Value, error) {
	var (
		fn goja.Callable
		ok bool
	)
	if ex := s.r.Try(func() {
		fn, ok = goja.AssertFunction(s.obj.Get(method))
	}); ex != nil {
		return nil, ex
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotCallable, method)
	}
	values := make([]goja.Value, len(args))
	for i, a := range args {
		values[i] = s.r.ToValue(a)
	}
	return fn(s.obj, values...)
}

func (s *scriptStorage) SetItem(key, value string) error {
	_, err := s.call("setItem", key, value)
	return err
}

func (s *scriptStorage) GetItem(key string) (string, bool) {
	v, err := s.call("getItem", key)
	if err != nil {
		s.r.l.Warning("jsenv: getItem: %v", err)
		return "", false
	}
	if !present(v) {
		return "", false
	}
	return v.String(), true
}

func (s *scriptStorage) RemoveItem(key string) error {
	_, err := s.call("removeItem", key)
	return err
}

func (s *scriptStorage) Key(index int) (string, bool) {
	v, err := s.call("key", index)
	if err != nil {
		s.r.l.Warning("jsenv: key: %v", err)
		return "", false
	}
	if !present(v) {
		return "", false
	}
	return v.String(), true
}

func (s *scriptStorage) Length() int {
	var n int64
	if ex := s.r.Try(func() {
		if v := s.obj.Get("length"); present(v) {
			n = v.ToInteger()
		}
	}); ex != nil {
		s.r.l.Warning("jsenv: length: %v", ex)
		return 0
	}
	return int(n)
}

func (s *scriptStorage) Clear() error {
	_, err := s.call("clear")
	return err
}

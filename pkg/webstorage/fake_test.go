package webstorage

import (
	"errors"
	"testing"

	"github.com/warpdl/warpstore/pkg/document"
)

// fakeNative is an in-memory NativeStorage that keeps insertion order.
type fakeNative struct {
	keys   []string
	values map[string]string
}

func newFakeNative() *fakeNative {
	return &fakeNative{values: make(map[string]string)}
}

func (f *fakeNative) SetItem(key, value string) error {
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
	return nil
}

func (f *fakeNative) GetItem(key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *fakeNative) RemoveItem(key string) error {
	if _, ok := f.values[key]; !ok {
		return nil
	}
	delete(f.values, key)
	for i, k := range f.keys {
		if k == key {
			f.keys = append(f.keys[:i], f.keys[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeNative) Key(index int) (string, bool) {
	if index < 0 || index >= len(f.keys) {
		return "", false
	}
	return f.keys[index], true
}

func (f *fakeNative) Length() int { return len(f.keys) }

func (f *fakeNative) Clear() error {
	f.keys = nil
	f.values = make(map[string]string)
	return nil
}

// rawString is a RawCookies that returns a fixed string and records writes.
type rawString struct {
	value  string
	writes []string
}

func (r *rawString) Cookie() string         { return r.value }
func (r *rawString) SetCookie(line string) { r.writes = append(r.writes, line) }

// probeEnv lets tests make individual probes fail or panic.
type probeEnv struct {
	StaticEnv
	cookieErr  error
	localErr   error
	panicLocal bool
}

func (e probeEnv) CookieEnabled() (bool, error) {
	if e.cookieErr != nil {
		return false, e.cookieErr
	}
	return e.StaticEnv.CookieEnabled()
}

func (e probeEnv) LocalStorage() (NativeStorage, error) {
	if e.panicLocal {
		panic("SecurityError: access denied")
	}
	if e.localErr != nil {
		return nil, e.localErr
	}
	return e.StaticEnv.LocalStorage()
}

var errBlocked = errors.New("storage blocked")

func newDocument(t *testing.T) *document.Document {
	t.Helper()
	d, err := document.New("https://localhost/")
	if err != nil {
		t.Fatalf("document.New: %v", err)
	}
	return d
}

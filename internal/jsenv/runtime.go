// Package jsenv runs scripts against an emulated browser page: a
// document.cookie accessor, navigator.cookieEnabled and the
// window.localStorage / window.sessionStorage objects, plus a native
// "warpstore" module exposing the storage selector.
//
// A Runtime is not safe for concurrent use.
package jsenv

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/console"
	requirePkg "github.com/dop251/goja_nodejs/require"
	"github.com/spf13/afero"

	"github.com/warpdl/warpstore/pkg/logger"
	"github.com/warpdl/warpstore/pkg/webstorage"
)

// Options describes the page a Runtime emulates.
type Options struct {
	// Document backs document.cookie. Nil leaves the page without cookies.
	Document webstorage.RawCookies
	// CookiesDisabled sets navigator.cookieEnabled to false.
	CookiesDisabled bool
	// Local and Session back window.localStorage and
	// window.sessionStorage. Nil makes the property null.
	Local   webstorage.NativeStorage
	Session webstorage.NativeStorage
	// BlockLocal and BlockSession make the property getter throw a
	// SecurityError, as privacy-restricted browsers do.
	BlockLocal   bool
	BlockSession bool
	// Fs is used by RunFile and require. Defaults to the OS filesystem.
	Fs afero.Fs
	// Stdout and Stderr receive console output. Default to os.Stdout and
	// os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	Logger logger.Logger
}

type Runtime struct {
	*requirePkg.RequireModule
	*goja.Runtime
	fs  afero.Fs
	l   logger.Logger
	sel *webstorage.Selector
}

// New builds a Runtime with the page globals installed.
func New(opts Options) (*Runtime, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	r := &Runtime{
		Runtime: goja.New(),
		fs:      opts.Fs,
		l:       logger.OrNop(opts.Logger),
	}
	registry := requirePkg.NewRegistry(requirePkg.WithLoader(r.loadSource))
	registry.RegisterNativeModule(console.ModuleName, console.RequireWithPrinter(&printer{
		out: opts.Stdout,
		err: opts.Stderr,
	}))
	registry.RegisterNativeModule(ModuleName, r.loadModule)
	r.RequireModule = registry.Enable(r.Runtime)
	console.Enable(r.Runtime)

	if err := r.installGlobals(opts); err != nil {
		return nil, err
	}
	r.sel = webstorage.NewSelector(r, r.l)
	return r, nil
}

// Selector returns the selector probing this page.
func (r *Runtime) Selector() *webstorage.Selector {
	return r.sel
}

// Run evaluates src and returns the completion value.
func (r *Runtime) Run(src string) (goja.Value, error) {
	return r.RunString(src)
}

// RunFile evaluates the script at path.
func (r *Runtime) RunFile(path string) (goja.Value, error) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, fmt.Errorf("jsenv: read script: %w", err)
	}
	return r.RunScript(path, string(data))
}

// loadSource feeds require() from the runtime's filesystem.
func (r *Runtime) loadSource(path string) ([]byte, error) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, requirePkg.ModuleFileDoesNotExistError
		}
		return nil, err
	}
	return data, nil
}

type printer struct {
	out io.Writer
	err io.Writer
}

func (p *printer) Log(s string)   { fmt.Fprintln(p.out, s) }
func (p *printer) Warn(s string)  { fmt.Fprintln(p.err, s) }
func (p *printer) Error(s string) { fmt.Fprintln(p.err, s) }

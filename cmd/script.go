package cmd

import (
	"errors"
	"os"

	"github.com/dop251/goja"
	"github.com/urfave/cli"

	"github.com/warpdl/warpstore/cmd/common"
	"github.com/warpdl/warpstore/internal/jsenv"
)

func run(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return common.PrintErrWithCmdHelp(ctx, errors.New("no script provided"))
	}
	s, err := openSession()
	if err != nil {
		common.PrintRuntimeErr(ctx, "run", "open_session", err)
		return nil
	}
	defer s.Close()
	rt, err := s.runtime()
	if err != nil {
		common.PrintRuntimeErr(ctx, "run", "new_runtime", err)
		return nil
	}
	if _, err := rt.RunFile(path); err != nil {
		var ex *goja.Exception
		if errors.As(err, &ex) {
			err = errors.New(ex.String())
		}
		common.PrintRuntimeErr(ctx, "run", "script", err)
	}
	return nil
}

// runtime builds a script page over the session's handles.
func (s *session) runtime() (*jsenv.Runtime, error) {
	opts := jsenv.Options{
		Document:        s.doc,
		CookiesDisabled: s.cfg.DisableCookies,
		Fs:              fileSystem,
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
		Logger:          s.log,
	}
	if s.local != nil {
		opts.Local = s.local
	}
	if s.sess != nil {
		opts.Session = s.sess
	}
	return jsenv.New(opts)
}

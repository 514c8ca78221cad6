package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/urfave/cli"

	"github.com/warpdl/warpstore/cmd/common"
	"github.com/warpdl/warpstore/pkg/webstorage"
)

var (
	cookiePath   string
	cookieDomain string
	insecure     bool
	expires      string
	maxAge       int

	setFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "path",
			Usage:       "cookie path (default: /)",
			Destination: &cookiePath,
		},
		cli.StringFlag{
			Name:        "domain",
			Usage:       "cookie domain (default: host only)",
			Destination: &cookieDomain,
		},
		cli.BoolFlag{
			Name:        "insecure",
			Usage:       "write the cookie without the secure attribute",
			Destination: &insecure,
		},
		cli.StringFlag{
			Name:        "expires, e",
			Usage:       "cookie expiry as a duration (1h), an RFC 3339 time or an HTTP date",
			Destination: &expires,
		},
		cli.IntFlag{
			Name:        "max-age",
			Usage:       "cookie lifetime in seconds",
			Destination: &maxAge,
		},
	}

	rmFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "path",
			Usage:       "path the cookie was written with (default: /)",
			Destination: &cookiePath,
		},
		cli.StringFlag{
			Name:        "domain",
			Usage:       "domain the cookie was written with",
			Destination: &cookieDomain,
		},
	}
)

var now = time.Now

// withStorage opens a session, hands the selected backend to fn and
// closes the session. Failures are printed as runtime errors of cmd.
func withStorage(ctx *cli.Context, cmd string, fn func(*session, webstorage.Storage) error) error {
	s, err := openSession()
	if err != nil {
		common.PrintRuntimeErr(ctx, cmd, "open_session", err)
		return nil
	}
	defer s.Close()
	st, err := s.storage()
	if err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}
	return fn(s, st)
}

func set(ctx *cli.Context) error {
	if ctx.NArg() < 2 {
		return common.PrintErrWithCmdHelp(ctx, errors.New("key and value are required"))
	}
	k, v := ctx.Args().Get(0), ctx.Args().Get(1)
	opts, err := cookieOptions(ctx)
	if err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}
	return withStorage(ctx, "set", func(_ *session, st webstorage.Storage) error {
		if err := st.SetItem(k, v, opts...); err != nil {
			common.PrintRuntimeErr(ctx, "set", "set_item", err)
		}
		return nil
	})
}

// cookieOptions turns the flags given on the command line into write
// options. Flags left unset keep the store defaults.
func cookieOptions(ctx *cli.Context) ([]webstorage.Option, error) {
	var opts []webstorage.Option
	if ctx.IsSet("path") {
		opts = append(opts, webstorage.WithPath(cookiePath))
	}
	if ctx.IsSet("domain") {
		opts = append(opts, webstorage.WithDomain(cookieDomain))
	}
	if insecure {
		opts = append(opts, webstorage.WithSecure(false))
	}
	if expires != "" {
		exp, err := parseExpiry(expires)
		if err != nil {
			return nil, err
		}
		opts = append(opts, webstorage.WithExpires(exp))
	}
	if maxAge != 0 {
		opts = append(opts, webstorage.WithMaxAge(maxAge))
	}
	return opts, nil
}

// parseExpiry accepts a duration from now, an RFC 3339 timestamp or a
// preformatted date string, which is used verbatim.
func parseExpiry(s string) (any, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return now().Add(d), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if _, err := time.Parse(time.RFC1123, s); err == nil {
		return s, nil
	}
	return nil, fmt.Errorf("invalid expiry %q", s)
}

func get(ctx *cli.Context) error {
	k := ctx.Args().First()
	if k == "" {
		return common.PrintErrWithCmdHelp(ctx, errors.New("no key provided"))
	}
	return withStorage(ctx, "get", func(_ *session, st webstorage.Storage) error {
		v, ok := st.GetItem(k)
		if !ok {
			common.PrintRuntimeErr(ctx, "get", "get_item", fmt.Errorf("%w: %q", webstorage.ErrKeyNotFound, k))
			return nil
		}
		fmt.Println(v)
		return nil
	})
}

func remove(ctx *cli.Context) error {
	k := ctx.Args().First()
	if k == "" {
		return common.PrintErrWithCmdHelp(ctx, errors.New("no key provided"))
	}
	var opts []webstorage.Option
	if ctx.IsSet("path") {
		opts = append(opts, webstorage.WithPath(cookiePath))
	}
	if ctx.IsSet("domain") {
		opts = append(opts, webstorage.WithDomain(cookieDomain))
	}
	return withStorage(ctx, "remove", func(_ *session, st webstorage.Storage) error {
		if err := st.RemoveItem(k, opts...); err != nil {
			common.PrintRuntimeErr(ctx, "remove", "remove_item", err)
		}
		return nil
	})
}

func key(ctx *cli.Context) error {
	i, err := strconv.Atoi(ctx.Args().First())
	if err != nil {
		return common.PrintErrWithCmdHelp(ctx, fmt.Errorf("invalid index %q", ctx.Args().First()))
	}
	return withStorage(ctx, "key", func(_ *session, st webstorage.Storage) error {
		k, ok := st.Key(i)
		if !ok {
			common.PrintRuntimeErr(ctx, "key", "key", fmt.Errorf("index %d out of range", i))
			return nil
		}
		fmt.Println(k)
		return nil
	})
}

func length(ctx *cli.Context) error {
	return withStorage(ctx, "length", func(_ *session, st webstorage.Storage) error {
		fmt.Println(st.Length())
		return nil
	})
}

func has(ctx *cli.Context) error {
	k := ctx.Args().First()
	if k == "" {
		return common.PrintErrWithCmdHelp(ctx, errors.New("no key provided"))
	}
	return withStorage(ctx, "has", func(_ *session, st webstorage.Storage) error {
		fmt.Println(st.HasOwnProperty(k))
		return nil
	})
}

func keys(ctx *cli.Context) error {
	return withStorage(ctx, "keys", func(_ *session, st webstorage.Storage) error {
		for i := 0; ; i++ {
			k, ok := st.Key(i)
			if !ok {
				return nil
			}
			fmt.Println(k)
		}
	})
}

func clearStore(ctx *cli.Context) error {
	return withStorage(ctx, "clear", func(_ *session, st webstorage.Storage) error {
		if err := st.Clear(); err != nil {
			common.PrintRuntimeErr(ctx, "clear", "clear", err)
		}
		return nil
	})
}

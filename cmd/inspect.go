package cmd

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/urfave/cli"

	"github.com/warpdl/warpstore/cmd/common"
	"github.com/warpdl/warpstore/internal/cookies"
	"github.com/warpdl/warpstore/pkg/webstorage"
)

var mechanisms = []webstorage.Mechanism{
	webstorage.MechanismCookie,
	webstorage.MechanismLocal,
	webstorage.MechanismSession,
}

func supports(ctx *cli.Context) error {
	s, err := openSession()
	if err != nil {
		common.PrintRuntimeErr(ctx, "supports", "open_session", err)
		return nil
	}
	defer s.Close()
	if name := ctx.Args().First(); name != "" {
		m, err := webstorage.ParseMechanism(name)
		if err != nil {
			return common.PrintErrWithCmdHelp(ctx, err)
		}
		fmt.Println(s.sel.Supports(m))
		return nil
	}
	fmt.Printf("|%s|%s|\n", common.Beaut("Mechanism", 16), common.Beaut("Supported", 11))
	fmt.Printf("|%s|%s|\n", common.Beaut("----------------", 16), common.Beaut("-----------", 11))
	for _, m := range mechanisms {
		fmt.Printf("|%s|%s|\n", common.Beaut(string(m), 16), common.Beaut(fmt.Sprint(s.sel.Supports(m)), 11))
	}
	return nil
}

func backend(ctx *cli.Context) error {
	return withStorage(ctx, "backend", func(_ *session, st webstorage.Storage) error {
		fmt.Println(webstorage.BackendOf(st))
		return nil
	})
}

func raw(ctx *cli.Context) error {
	s, err := openSession()
	if err != nil {
		common.PrintRuntimeErr(ctx, "raw", "open_session", err)
		return nil
	}
	defer s.Close()
	fmt.Println(s.doc.Cookie())
	return nil
}

func compact(ctx *cli.Context) error {
	s, err := openSession()
	if err != nil {
		common.PrintRuntimeErr(ctx, "compact", "open_session", err)
		return nil
	}
	defer s.Close()
	if err := s.doc.Compact(); err != nil {
		common.PrintRuntimeErr(ctx, "compact", "compact", err)
		return nil
	}
	fmt.Println("Compacted cookie journal")
	return nil
}

func importCookies(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return common.PrintErrWithCmdHelp(ctx, errors.New("no cookie store provided"))
	}
	s, err := openSession()
	if err != nil {
		common.PrintRuntimeErr(ctx, "import", "open_session", err)
		return nil
	}
	defer s.Close()
	u, err := url.Parse(s.doc.URL())
	if err != nil {
		common.PrintRuntimeErr(ctx, "import", "parse_url", err)
		return nil
	}
	res, err := cookies.Import(s.doc, u.Hostname(), path, s.log)
	if err != nil {
		common.PrintRuntimeErr(ctx, "import", "import", err)
		return nil
	}
	fmt.Printf("Imported %d cookies from %s (%d httpOnly, %d expired skipped)\n",
		res.Imported, res.Source.Format, res.HTTPOnly, res.Expired)
	return nil
}

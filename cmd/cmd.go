package cmd

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli"

	cmdCommon "github.com/warpdl/warpstore/cmd/common"
	"github.com/warpdl/warpstore/common"
)

type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

var (
	backendName    string
	pageURL        string
	dataDir        string
	disableCookies bool
	disableLocal   bool
	disableSession bool
	debug          bool

	globalFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "backend, b",
			Usage:       "storage backend to request: cookie, localStorage or sessionStorage (default: localStorage)",
			EnvVar:      common.BackendEnv,
			Destination: &backendName,
		},
		cli.StringFlag{
			Name:        "url",
			Usage:       "page url cookies are scoped to (default: https://localhost/)",
			EnvVar:      common.URLEnv,
			Destination: &pageURL,
		},
		cli.StringFlag{
			Name:        "data-dir",
			Usage:       "directory holding the cookie journal and local storage",
			EnvVar:      common.DataDirEnv,
			Destination: &dataDir,
		},
		cli.BoolFlag{
			Name:        "disable-cookies",
			Usage:       "behave as a browser with cookies disabled",
			EnvVar:      common.DisableCookiesEnv,
			Destination: &disableCookies,
		},
		cli.BoolFlag{
			Name:        "disable-local",
			Usage:       "behave as a browser without localStorage",
			EnvVar:      common.DisableLocalEnv,
			Destination: &disableLocal,
		},
		cli.BoolFlag{
			Name:        "disable-session",
			Usage:       "behave as a browser without sessionStorage",
			EnvVar:      common.DisableSessionEnv,
			Destination: &disableSession,
		},
		cli.BoolFlag{
			Name:        "debug, d",
			Usage:       "log backend selection to stderr",
			EnvVar:      common.DebugEnv,
			Destination: &debug,
		},
	}
)

func Execute(args []string, bArgs BuildArgs) error {
	app := cli.App{
		Name:                  "warpstore",
		HelpName:              "warpstore",
		Usage:                 "A uniform key-value store over cookies and web storage.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "warpstore [global options] <command> [arguments...]",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		OnUsageError:          cmdCommon.UsageErrorCallback,
		Flags:                 globalFlags,
		Commands: []cli.Command{
			{
				Name:               "set",
				Aliases:            []string{"s"},
				Usage:              "store a value under a key",
				UsageText:          "set <key> <value> [flags]",
				Description:        SetDescription,
				OnUsageError:       cmdCommon.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             set,
				Flags:              setFlags,
			},
			{
				Name:               "get",
				Aliases:            []string{"g"},
				Usage:              "print the value of a key",
				UsageText:          "get <key>",
				Description:        GetDescription,
				OnUsageError:       cmdCommon.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             get,
			},
			{
				Name:               "remove",
				Aliases:            []string{"rm"},
				Usage:              "delete a key",
				UsageText:          "remove <key> [flags]",
				Description:        RemoveDescription,
				OnUsageError:       cmdCommon.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             remove,
				Flags:              rmFlags,
			},
			{
				Name:               "key",
				Usage:              "print the key at an index",
				UsageText:          "key <index>",
				Description:        KeyDescription,
				OnUsageError:       cmdCommon.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             key,
			},
			{
				Name:               "length",
				Aliases:            []string{"len"},
				Usage:              "print the number of entries",
				UsageText:          " ",
				Description:        LengthDescription,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             length,
			},
			{
				Name:               "has",
				Usage:              "report whether a key is present",
				UsageText:          "has <key>",
				Description:        HasDescription,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             has,
			},
			{
				Name:               "keys",
				Aliases:            []string{"ls"},
				Usage:              "list every key",
				UsageText:          " ",
				Description:        KeysDescription,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             keys,
			},
			{
				Name:               "clear",
				Usage:              "remove every entry",
				UsageText:          " ",
				Description:        ClearDescription,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             clearStore,
			},
			{
				Name:               "supports",
				Usage:              "report whether a mechanism is usable",
				UsageText:          "supports [mechanism]",
				Description:        SupportsDescription,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             supports,
			},
			{
				Name:               "backend",
				Usage:              "print the backend the fallback chain picked",
				UsageText:          " ",
				Description:        BackendDescription,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             backend,
			},
			{
				Name:               "raw",
				Usage:              "print the raw cookie string",
				UsageText:          " ",
				Description:        RawDescription,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             raw,
			},
			{
				Name:               "compact",
				Usage:              "drop dead cookies from the journal",
				UsageText:          " ",
				Description:        CompactDescription,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             compact,
			},
			{
				Name:               "import",
				Usage:              "seed the page with cookies from a browser",
				UsageText:          "import <cookie-store>",
				Description:        ImportDescription,
				OnUsageError:       cmdCommon.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             importCookies,
			},
			{
				Name:               "run",
				Usage:              "run a script against the emulated page",
				UsageText:          "run <script.js>",
				Description:        RunDescription,
				OnUsageError:       cmdCommon.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             run,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  cmdCommon.Help,
			},
			{
				Name:               "version",
				Aliases:            []string{"v"},
				Usage:              "prints installed version of warpstore",
				UsageText:          " ",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             cmdCommon.GetVersion,
			},
		},
		Action:      cmdCommon.Help,
		HideHelp:    true,
		HideVersion: true,
	}
	cmdCommon.VersionCmdStr = fmt.Sprintf("%s %s (%s_%s)\nBuild: %s=%s\n",
		app.Name,
		app.Version,
		runtime.GOOS,
		runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	return app.Run(args)
}

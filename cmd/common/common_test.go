package common

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/urfave/cli"
)

// stdout runs f and returns what it printed.
func stdout(t *testing.T, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	f()
	w.Close()
	os.Stdout = orig
	var buf bytes.Buffer
	io.Copy(&buf, r)
	r.Close()
	return buf.String()
}

func testContext(command string, args ...string) *cli.Context {
	app := cli.NewApp()
	app.Name = "warpstore"
	app.HelpName = "warpstore"
	app.Version = "test"
	set := flag.NewFlagSet(command, flag.ContinueOnError)
	_ = set.Parse(args)
	ctx := cli.NewContext(app, set, nil)
	ctx.Command = cli.Command{Name: command}
	return ctx
}

// stubHelp replaces the help printers and records which one ran.
func stubHelp(t *testing.T, cmdErr error) *[]string {
	t.Helper()
	var calls []string
	origApp, origCmd := showAppHelpAndExit, showCommandHelp
	showAppHelpAndExit = func(_ *cli.Context, code int) {
		calls = append(calls, "app")
	}
	showCommandHelp = func(_ *cli.Context, name string) error {
		calls = append(calls, "cmd:"+name)
		return cmdErr
	}
	t.Cleanup(func() {
		showAppHelpAndExit, showCommandHelp = origApp, origCmd
	})
	return &calls
}

func TestBeaut(t *testing.T) {
	tests := []struct {
		s    string
		n    int
		want string
	}{
		{"hi", 4, " hi "},
		{"hi", 5, " hi  "},
		{"cookie", 6, "cookie"},
		{"cookie", 3, "cookie"},
		{"", 2, "  "},
	}
	for _, tt := range tests {
		if got := Beaut(tt.s, tt.n); got != tt.want {
			t.Errorf("Beaut(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
		}
	}
}

func TestPrintRuntimeErr(t *testing.T) {
	out := stdout(t, func() {
		PrintRuntimeErr(testContext("get"), "get", "get_item", errors.New("boom"))
	})
	if out != "warpstore: get[get_item]: boom\n" {
		t.Errorf("unexpected output: %q", out)
	}
	if out := stdout(t, func() { PrintRuntimeErr(nil, "get", "get_item", nil) }); out != "" {
		t.Errorf("nil error should print nothing, got %q", out)
	}
	out = stdout(t, func() { PrintRuntimeErr(nil, "raw", "open_session", errors.New("x")) })
	if !strings.HasSuffix(out, ": raw[open_session]: x\n") {
		t.Errorf("unexpected output without context: %q", out)
	}
}

func TestPrintErrWithCmdHelp(t *testing.T) {
	calls := stubHelp(t, nil)
	out := stdout(t, func() {
		if err := PrintErrWithCmdHelp(testContext("set"), errors.New("key and value are required")); err != nil {
			t.Errorf("PrintErrWithCmdHelp: %v", err)
		}
	})
	if !strings.HasPrefix(out, "warpstore: key and value are required\n") {
		t.Errorf("unexpected output: %q", out)
	}
	if len(*calls) != 1 || (*calls)[0] != "cmd:set" {
		t.Errorf("expected command help, got %v", *calls)
	}

	// A failing help printer is reported, not returned.
	stubHelp(t, errors.New("no help"))
	out = stdout(t, func() {
		if err := PrintErrWithCmdHelp(testContext("set"), errors.New("oops")); err != nil {
			t.Errorf("PrintErrWithCmdHelp: %v", err)
		}
	})
	if !strings.Contains(out, "no help") {
		t.Errorf("help error not printed: %q", out)
	}
}

func TestPrintErrWithHelp(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		calls []string
		out   string
	}{
		{"plain", errors.New("oops"), []string{"app"}, "warpstore: oops"},
		{"help requested", errors.New("flag: help requested"), []string{"app"}, "warpstore test"},
		{"version flag", errors.New("flag provided but not defined: -version"), nil, "v9"},
		{"nil", nil, nil, ""},
	}
	old := VersionCmdStr
	VersionCmdStr = "v9"
	defer func() { VersionCmdStr = old }()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := stubHelp(t, nil)
			out := stdout(t, func() {
				if err := PrintErrWithHelp(testContext(""), tt.err); err != nil {
					t.Errorf("PrintErrWithHelp: %v", err)
				}
			})
			if len(*calls) != len(tt.calls) {
				t.Errorf("help calls = %v, want %v", *calls, tt.calls)
			}
			if !strings.Contains(out, tt.out) {
				t.Errorf("output %q does not contain %q", out, tt.out)
			}
		})
	}
}

func TestUsageErrorCallback(t *testing.T) {
	calls := stubHelp(t, nil)
	stdout(t, func() {
		UsageErrorCallback(testContext("get"), errors.New("bad flag"), false)
		UsageErrorCallback(testContext(""), errors.New("bad flag"), false)
	})
	if strings.Join(*calls, ",") != "cmd:get,app" {
		t.Errorf("unexpected help calls: %v", *calls)
	}
}

func TestHelp(t *testing.T) {
	calls := stubHelp(t, nil)
	out := stdout(t, func() {
		if err := Help(testContext("help")); err != nil {
			t.Errorf("Help: %v", err)
		}
		if err := Help(testContext("help", "get")); err != nil {
			t.Errorf("Help get: %v", err)
		}
	})
	if strings.Join(*calls, ",") != "app,cmd:get" {
		t.Errorf("unexpected help calls: %v", *calls)
	}
	if !strings.Contains(out, "warpstore test") {
		t.Errorf("app help should print the version line, got %q", out)
	}

	stubHelp(t, errors.New("no such command"))
	if err := Help(testContext("help", "bogus")); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestGetVersion(t *testing.T) {
	old := VersionCmdStr
	VersionCmdStr = "warpstore v1.2.3"
	defer func() { VersionCmdStr = old }()
	if out := stdout(t, func() { GetVersion(testContext("version")) }); out != "warpstore v1.2.3\n" {
		t.Errorf("unexpected version output: %q", out)
	}
}

package cmd

import (
	"bytes"
	"flag"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/urfave/cli"
)

// captureOutput runs f with os.Stdout and os.Stderr redirected and
// returns what was written to each.
func captureOutput(f func()) (stdout, stderr string) {
	origOut, origErr := os.Stdout, os.Stderr
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout, os.Stderr = wOut, wErr

	var bufOut, bufErr bytes.Buffer
	done := make(chan struct{}, 2)
	go func() { io.Copy(&bufOut, rOut); done <- struct{}{} }()
	go func() { io.Copy(&bufErr, rErr); done <- struct{}{} }()

	defer func() {
		os.Stdout, os.Stderr = origOut, origErr
	}()
	f()
	wOut.Close()
	wErr.Close()
	<-done
	<-done
	rOut.Close()
	rErr.Close()
	return bufOut.String(), bufErr.String()
}

func assertContains(t *testing.T, output, expected string) {
	t.Helper()
	if !strings.Contains(output, expected) {
		t.Errorf("expected output to contain %q, got:\n%s", expected, output)
	}
}

func assertNotContains(t *testing.T, output, unexpected string) {
	t.Helper()
	if strings.Contains(output, unexpected) {
		t.Errorf("expected output not to contain %q, got:\n%s", unexpected, output)
	}
}

func assertContainsAll(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, exp := range expected {
		assertContains(t, output, exp)
	}
}

// assertErrorFormat checks for a runtime error printed as
// "warpstore: <cmd>[<action>]:".
func assertErrorFormat(t *testing.T, output, cmd, action string) {
	t.Helper()
	assertContains(t, output, "warpstore: "+cmd+"["+action+"]:")
}

func newContext(app *cli.App, args []string, name string) *cli.Context {
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	_ = set.Parse(args)
	ctx := cli.NewContext(app, set, nil)
	ctx.Command = cli.Command{Name: name}
	return ctx
}

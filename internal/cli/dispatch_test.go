package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tido/internal/cli"
	"tido/internal/commands"
	"tido/internal/config"
	"tido/internal/exitcode"
	"tido/internal/service"
	"tido/internal/session"
	"tido/internal/testutil"
)

// runDispatcher runs the default registry against a fake backend, with the
// session rooted in a throwaway config dir.
func runDispatcher(t *testing.T, svc service.Service, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	factory := func(ctx context.Context, cfg *config.Config, sess *session.Store) (service.Service, error) {
		return svc, nil
	}
	d := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Flag parsing stops at the first positional arg, so --config goes
	// right after the command name.
	full := []string{args[0], "--config", t.TempDir()}
	full = append(full, args[1:]...)

	var outBuf, errBuf bytes.Buffer
	code = d.Run(context.Background(), full, strings.NewReader(""), &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	_, stderr, code := runDispatcher(t, nil, "frobnicate")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unknown command: frobnicate\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	factory := func(ctx context.Context, cfg *config.Config, sess *session.Store) (service.Service, error) {
		return testutil.NewFakeService(), nil
	}
	d := cli.NewDispatcher(commands.DefaultRegistry, factory)

	var outBuf, errBuf bytes.Buffer
	code := d.Run(context.Background(), []string{"--quiet", "list"}, strings.NewReader(""), &outBuf, &errBuf)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if errBuf.String() != "error: unknown command: --quiet\n" {
		t.Errorf("unexpected stderr: %q", errBuf.String())
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	_, stderr, code := runDispatcher(t, testutil.NewFakeService(), "list", "--bogus")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(stderr, "unknown flag: -bogus") {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestDispatcher_Version(t *testing.T) {
	stdout, _, code := runDispatcher(t, nil, "version")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "tido 0.1.0\n" {
		t.Errorf("unexpected stdout: %q", stdout)
	}
}

func TestDispatcher_ListByAlias(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(service.Task{ID: "1", Title: "Buy milk", Description: "2%", Date: "2025-07-11"})

	stdout, stderr, code := runDispatcher(t, svc, "ls", "--date", "2025-07-11")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "   1  [ ] Buy milk") {
		t.Errorf("unexpected stdout: %q", stdout)
	}
}

func TestDispatcher_NoArgsListsToday(t *testing.T) {
	svc := testutil.NewFakeService()

	factory := func(ctx context.Context, cfg *config.Config, sess *session.Store) (service.Service, error) {
		return svc, nil
	}
	d := cli.NewDispatcher(commands.DefaultRegistry, factory)

	var outBuf, errBuf bytes.Buffer
	code := d.Run(context.Background(), nil, strings.NewReader(""), &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if svc.Calls("ListTasks") != 1 {
		t.Errorf("expected one list call, got %d", svc.Calls("ListTasks"))
	}
}

func TestDispatcher_QuietSuppressesChrome(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.NextID = "7"

	stdout, _, code := runDispatcher(t, svc, "add", "--quiet", "--desc", "2%", "Buy", "milk")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout with --quiet, got %q", stdout)
	}
	if len(svc.AllTasks()) != 1 {
		t.Error("task should still be created")
	}
}

func TestDispatcher_FactoryFailure(t *testing.T) {
	factory := func(ctx context.Context, cfg *config.Config, sess *session.Store) (service.Service, error) {
		return nil, context.DeadlineExceeded
	}
	d := cli.NewDispatcher(commands.DefaultRegistry, factory)

	var outBuf, errBuf bytes.Buffer
	code := d.Run(context.Background(), []string{"list", "--config", t.TempDir()}, strings.NewReader(""), &outBuf, &errBuf)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if !strings.Contains(errBuf.String(), "backend error") {
		t.Errorf("unexpected stderr: %q", errBuf.String())
	}
}

func TestDispatcher_LocalCommandSkipsFactory(t *testing.T) {
	called := false
	factory := func(ctx context.Context, cfg *config.Config, sess *session.Store) (service.Service, error) {
		called = true
		return nil, nil
	}
	d := cli.NewDispatcher(commands.DefaultRegistry, factory)

	var outBuf, errBuf bytes.Buffer
	code := d.Run(context.Background(), []string{"whoami", "--config", t.TempDir()}, strings.NewReader(""), &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if called {
		t.Error("whoami must not build the backend client")
	}
}

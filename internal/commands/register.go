package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"

	"tido/internal/api"
	"tido/internal/config"
	"tido/internal/exitcode"
	"tido/internal/service"
	"tido/internal/session"
)

func init() {
	Register(&RegisterCmd{})
}

// RegisterCmd implements the register command. Registration does not log
// the user in.
type RegisterCmd struct {
	username string
	password string
	confirm  string
}

// SetCredentials sets the fields (for testing).
func (c *RegisterCmd) SetCredentials(username, password, confirm string) {
	c.username = username
	c.password = password
	c.confirm = confirm
}

func (c *RegisterCmd) Name() string       { return "register" }
func (c *RegisterCmd) Aliases() []string  { return nil }
func (c *RegisterCmd) Synopsis() string   { return "Create a new account" }
func (c *RegisterCmd) Usage() string      { return "tido register [--user <name>] [--password <pw>] [--confirm <pw>]" }
func (c *RegisterCmd) NeedsService() bool { return true }

func (c *RegisterCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.username, "user", "", "")
	fs.StringVar(&c.username, "u", "", "")
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.password, "p", "", "")
	fs.StringVar(&c.confirm, "confirm", "", "")
}

func (c *RegisterCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	sc := bufio.NewScanner(in)
	username := c.username
	if username == "" {
		username = promptLine(sc, errOut, "username")
	}
	password := c.password
	if password == "" {
		password = promptLine(sc, errOut, "password")
	}
	confirmPw := c.confirm
	if confirmPw == "" {
		confirmPw = promptLine(sc, errOut, "confirm password")
	}

	if username == "" || password == "" || confirmPw == "" {
		fmt.Fprintln(errOut, "error: all fields are required")
		return exitcode.UserError
	}
	if password != confirmPw {
		fmt.Fprintln(errOut, "error: passwords do not match")
		return exitcode.UserError
	}

	if err := sess.Register(ctx, svc, username, password); err != nil {
		if api.IsNetwork(err) {
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			return exitcode.BackendError
		}
		fmt.Fprintf(errOut, "error: registration failed: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "registered (run: tido login)")
	}
	return exitcode.Success
}

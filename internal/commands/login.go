package commands

import (
	"bufio"
	"context"
	"errors"
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
	Register(&LoginCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct {
	username string
	password string
}

// SetCredentials sets the credentials (for testing).
func (c *LoginCmd) SetCredentials(username, password string) {
	c.username = username
	c.password = password
}

func (c *LoginCmd) Name() string       { return "login" }
func (c *LoginCmd) Aliases() []string  { return nil }
func (c *LoginCmd) Synopsis() string   { return "Authenticate and store a session" }
func (c *LoginCmd) Usage() string      { return "tido login [--user <name>] [--password <pw>]" }
func (c *LoginCmd) NeedsService() bool { return true }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.username, "user", "", "")
	fs.StringVar(&c.username, "u", "", "")
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.password, "p", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	// Explicit credentials start a fresh login even while logged in.
	if sess.IsAuthenticated() && c.username == "" && c.password == "" {
		if !cfg.Quiet {
			fmt.Fprintf(out, "already logged in as %s (run: tido logout to switch)\n", sess.Current().Username)
		}
		return exitcode.Success
	}

	sc := bufio.NewScanner(in)
	username := c.username
	if username == "" {
		username = promptLine(sc, errOut, "username")
	}
	password := c.password
	if password == "" {
		password = promptLine(sc, errOut, "password")
	}

	if username == "" || password == "" {
		fmt.Fprintln(errOut, "error: username and password are required")
		return exitcode.UserError
	}

	if _, err := sess.Login(ctx, svc, username, password); err != nil {
		switch {
		case errors.Is(err, session.ErrMalformedToken):
			fmt.Fprintln(errOut, "error: invalid token received from server")
			return exitcode.AuthError
		case api.IsNetwork(err):
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			return exitcode.BackendError
		default:
			// Server rejection; its message names the reason.
			fmt.Fprintf(errOut, "error: login failed: %v\n", err)
			return exitcode.AuthError
		}
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "logged in as %s\n", username)
	}
	return exitcode.Success
}

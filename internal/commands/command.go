// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"tido/internal/config"
	"tido/internal/service"
	"tido/internal/session"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsService returns true if the command talks to the remote API.
	// Commands like help, version, logout, whoami return false.
	// There is no auth pre-flight: a command may run without a token and
	// let the server reject it.
	NeedsService() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg and sess are always provided; svc is nil if NeedsService()
	// returns false. in is the interactive input for prompts. args
	// contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int
}

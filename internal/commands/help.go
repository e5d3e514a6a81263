package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tido/internal/config"
	"tido/internal/exitcode"
	"tido/internal/service"
	"tido/internal/session"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "tido help" }
func (c *HelpCmd) NeedsService() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  tido                                               List today's tasks
  tido list [common flags] [--date <yyyy-MM-dd> | --all]
  tido add [common flags] [--date <yyyy-MM-dd>] --desc <text> <title...>
  tido done [common flags] [--date <yyyy-MM-dd> | --all] <n>
  tido toggle [common flags] [--date <yyyy-MM-dd> | --all] <n>
  tido rm [common flags] [--date <yyyy-MM-dd> | --all] [--force] <n>
  tido login [common flags] [--user <name>] [--password <pw>]
  tido register [common flags] [--user <name>] [--password <pw>] [--confirm <pw>]
  tido logout [common flags] [--force]
  tido whoami [common flags]
  tido help
  tido version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`

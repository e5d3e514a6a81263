package commands

import (
	"bufio"
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
	Register(&RmCmd{})
}

// RmCmd implements the rm command. Deletion is irreversible, so it asks
// first unless --force is given, and the local entry is dropped only after
// the server confirms.
type RmCmd struct {
	date  string
	all   bool
	force bool
}

// SetFilter sets the filter flags (for testing).
func (c *RmCmd) SetFilter(date string, all bool) {
	c.date = date
	c.all = all
}

// SetForce sets the force flag (for testing).
func (c *RmCmd) SetForce(force bool) {
	c.force = force
}

func (c *RmCmd) Name() string       { return "rm" }
func (c *RmCmd) Aliases() []string  { return []string{"delete"} }
func (c *RmCmd) Synopsis() string   { return "Delete a task" }
func (c *RmCmd) Usage() string      { return "tido rm [--date <yyyy-MM-dd> | --all] [--force] <n>" }
func (c *RmCmd) NeedsService() bool { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.date, "date", "", "")
	fs.StringVar(&c.date, "d", "", "")
	fs.BoolVar(&c.all, "all", false, "")
	fs.BoolVar(&c.force, "force", false, "")
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	num, err := parseTaskNumber(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	date, err := resolveDate(c.date, c.all)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	store, err := loadFiltered(ctx, svc, date)
	if err != nil {
		return reportAPIError(errOut, err)
	}

	task, err := taskByNumber(store, num)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if !c.force {
		prompt := fmt.Sprintf("delete %q?", task.Title)
		if !confirm(bufio.NewScanner(in), errOut, prompt) {
			if !cfg.Quiet {
				fmt.Fprintln(out, "cancelled")
			}
			return exitcode.Success
		}
	}

	if err := store.Remove(ctx, task.ID); err != nil {
		return reportAPIError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

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
	Register(&DoneCmd{})
}

// DoneCmd toggles a task's completion flag. `done` on a completed task
// reopens it, hence the toggle alias.
type DoneCmd struct {
	date string
	all  bool
}

// SetFilter sets the filter flags (for testing).
func (c *DoneCmd) SetFilter(date string, all bool) {
	c.date = date
	c.all = all
}

func (c *DoneCmd) Name() string       { return "done" }
func (c *DoneCmd) Aliases() []string  { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string   { return "Toggle a task's completion" }
func (c *DoneCmd) Usage() string      { return "tido done [--date <yyyy-MM-dd> | --all] <n>" }
func (c *DoneCmd) NeedsService() bool { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.date, "date", "", "")
	fs.StringVar(&c.date, "d", "", "")
	fs.BoolVar(&c.all, "all", false, "")
}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
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

	if err := store.ToggleComplete(ctx, task.ID); err != nil {
		return reportAPIError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

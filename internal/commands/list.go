package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tido/internal/config"
	"tido/internal/exitcode"
	"tido/internal/output"
	"tido/internal/service"
	"tido/internal/session"
	"tido/internal/tasks"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command. Without flags it shows today's
// tasks; --date picks another day and --all drops the filter.
type ListCmd struct {
	date string
	all  bool
}

// SetFilter sets the filter flags (for testing).
func (c *ListCmd) SetFilter(date string, all bool) {
	c.date = date
	c.all = all
}

func (c *ListCmd) Name() string       { return "list" }
func (c *ListCmd) Aliases() []string  { return []string{"ls"} }
func (c *ListCmd) Synopsis() string   { return "List tasks for a date" }
func (c *ListCmd) Usage() string      { return "tido list [--date <yyyy-MM-dd> | --all]" }
func (c *ListCmd) NeedsService() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.date, "date", "", "")
	fs.StringVar(&c.date, "d", "", "")
	fs.BoolVar(&c.all, "all", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	date, err := resolveDate(c.date, c.all)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	store := tasks.NewStore(svc)
	if err := store.SetDateFilter(ctx, date); err != nil {
		return reportAPIError(errOut, err)
	}

	p := output.NewPrinter(out)
	p.DateHeader(store.Date())

	items := store.Tasks()
	if len(items) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	for i, task := range items {
		p.Task(i+1, task)
	}
	return exitcode.Success
}

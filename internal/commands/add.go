package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tido/internal/config"
	"tido/internal/exitcode"
	"tido/internal/service"
	"tido/internal/session"
	"tido/internal/tasks"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	date string
	desc string
}

// SetDraft sets the flag fields (for testing).
func (c *AddCmd) SetDraft(date, desc string) {
	c.date = date
	c.desc = desc
}

func (c *AddCmd) Name() string       { return "add" }
func (c *AddCmd) Aliases() []string  { return []string{"create"} }
func (c *AddCmd) Synopsis() string   { return "Create a task" }
func (c *AddCmd) Usage() string      { return "tido add [--date <yyyy-MM-dd>] --desc <text> <title...>" }
func (c *AddCmd) NeedsService() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.date, "date", "", "")
	fs.StringVar(&c.date, "d", "", "")
	fs.StringVar(&c.desc, "desc", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	date, err := resolveDate(c.date, false)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	title := strings.Join(args, " ")

	store := tasks.NewStore(svc)
	created, err := store.Create(ctx, service.TaskDraft{
		Title:       title,
		Description: c.desc,
		Date:        date,
	})
	if err != nil {
		if tasks.IsValidation(err) {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		return reportAPIError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "ok %s\n", created.ID)
	}
	return exitcode.Success
}

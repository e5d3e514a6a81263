// Command tido is a CLI client for a remote to-do list service.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tido/internal/api"
	"tido/internal/cli"
	"tido/internal/commands"
	"tido/internal/config"
	"tido/internal/service"
	"tido/internal/session"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	factory := func(ctx context.Context, cfg *config.Config, sess *session.Store) (service.Service, error) {
		client := api.New(cfg.APIBaseURL, sess.TokenSource())
		if cfg.Debug {
			client.SetDebug(os.Stderr)
		}
		return client, nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(code)
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrymomot/remindkit/pkg/reminders"
)

type command func(ctx context.Context, a *app, args []string) error

var commands = map[string]command{
	"signup":      cmdSignup,
	"login":       cmdLogin,
	"logout":      cmdLogout,
	"whoami":      cmdWhoami,
	"reminders":   cmdReminders,
	"dismiss":     cmdDismiss,
	"dismiss-all": cmdDismissAll,
	"serve":       cmdServe,
}

var errNotLoggedIn = errors.New("not logged in")

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func cmdSignup(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("signup")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	name := fs.String("name", "", "display name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := a.client.Signup(ctx, *email, *password, *name)
	if err != nil {
		return err
	}
	a.auth.Login(ctx)

	fmt.Fprintf(a.stdout, "Signed up as %s\n", resp.User.Email)
	return nil
}

func cmdLogin(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := a.client.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	a.auth.Login(ctx)

	fmt.Fprintf(a.stdout, "Logged in as %s\n", resp.User.Email)
	return nil
}

func cmdLogout(ctx context.Context, a *app, _ []string) error {
	a.auth.Logout()
	fmt.Fprintln(a.stdout, "Logged out")
	return nil
}

func cmdWhoami(ctx context.Context, a *app, _ []string) error {
	a.auth.Mount(ctx)
	select {
	case <-a.auth.Ready():
	case <-ctx.Done():
		return ctx.Err()
	}

	s := a.auth.Snapshot()
	if !s.IsAuthenticated() {
		return errNotLoggedIn
	}

	if s.User.Name != "" {
		fmt.Fprintf(a.stdout, "%s <%s>\n", s.User.Name, s.User.Email)
	} else {
		fmt.Fprintln(a.stdout, s.User.Email)
	}
	return nil
}

func cmdReminders(ctx context.Context, a *app, _ []string) error {
	tasks, err := a.tasks.Reminders(ctx)
	if err != nil {
		return err
	}

	b := a.banner(nil, nil)
	v := b.View(tasks, b.Now())
	if v.Empty() {
		fmt.Fprintln(a.stdout, "No reminders")
		return nil
	}

	fmt.Fprintln(a.stdout, v.Heading)
	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	for _, item := range v.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", item.ID, item.Title, item.Deadline.Text)
	}
	return tw.Flush()
}

func cmdDismiss(ctx context.Context, a *app, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: remindctl dismiss <task-id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid task id %q", args[0])
	}

	b := a.banner(func(id int64) {
		fmt.Fprintf(a.stdout, "Dismissed reminder %d\n", id)
	}, nil)
	return b.Dismiss(ctx, id)
}

func cmdDismissAll(ctx context.Context, a *app, _ []string) error {
	tasks, err := a.tasks.Reminders(ctx)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Fprintln(a.stdout, "No reminders")
		return nil
	}

	b := a.banner(nil, func() {
		fmt.Fprintf(a.stdout, "Dismissed %d reminders\n", len(tasks))
	})
	return b.DismissAll(ctx, tasks)
}

func (a *app) banner(onDismiss func(int64), onDismissAll func(), opts ...reminders.Option) *reminders.Banner {
	base := []reminders.Option{
		reminders.WithLogger(a.log),
		reminders.WithMetrics(a.metrics),
	}
	return reminders.NewBanner(a.tasks, onDismiss, onDismissAll, append(base, opts...)...)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/remindkit/pkg/logger"
	"github.com/dmitrymomot/remindkit/pkg/reminders"
	"github.com/dmitrymomot/remindkit/pkg/requestid"
)

const shutdownTimeout = 5 * time.Second

// cmdServe serves the reminder banner for the logged-in user along with
// /metrics, /healthz and POST /logout until ctx is cancelled. The list is
// reloaded from the API every -refresh interval.
func cmdServe(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("serve")
	addr := fs.String("addr", a.cfg.HTTPAddr, "listen address")
	refresh := fs.Duration("refresh", time.Minute, "reminder reload interval, 0 disables")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a.auth.Mount(ctx)
	select {
	case <-a.auth.Ready():
	case <-ctx.Done():
		return ctx.Err()
	}
	if !a.auth.Snapshot().IsAuthenticated() {
		return errNotLoggedIn
	}

	tasks, err := a.tasks.Reminders(ctx)
	if err != nil {
		return err
	}
	list := reminders.NewList(tasks)
	b := a.banner(list.Remove, list.Clear)

	go a.watchAuth(ctx, list)
	go a.refreshReminders(ctx, list, *refresh)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
	r.Post("/logout", func(w http.ResponseWriter, r *http.Request) {
		a.auth.Logout()
		http.Redirect(w, r, "/", http.StatusSeeOther)
	})
	r.Mount("/", b.Router(list))

	srv := &http.Server{
		Addr:              *addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	a.log.InfoContext(ctx, "serving reminder banner", slog.String("addr", *addr), slog.Int("reminders", list.Len()))
	fmt.Fprintf(a.stdout, "Serving %d reminders on %s\n", list.Len(), *addr)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	a.log.Info("server stopped")
	return nil
}

// watchAuth empties the banner once the session ends.
func (a *app) watchAuth(ctx context.Context, list *reminders.List) {
	sub := a.auth.Subscribe(ctx)
	defer sub.Close()

	for msg := range sub.Receive(ctx) {
		if !msg.Data.Loading && !msg.Data.IsAuthenticated() {
			a.log.InfoContext(ctx, "session ended, clearing reminders", logger.Event("logout"))
			list.Clear()
		}
	}
}

// refreshReminders reloads the list from the API every interval while the
// session is alive.
func (a *app) refreshReminders(ctx context.Context, list *reminders.List, every time.Duration) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if !a.auth.Snapshot().IsAuthenticated() {
			continue
		}

		tasks, err := a.tasks.Reminders(ctx)
		if err != nil {
			if ctx.Err() == nil {
				a.log.WarnContext(ctx, "reload reminders", logger.Error(err))
			}
			continue
		}
		list.Replace(tasks)
	}
}

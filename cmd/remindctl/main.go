// Command remindctl is a terminal client for the task reminder API.
//
//	remindctl signup -email ann@example.com -password ... [-name Ann]
//	remindctl login -email ann@example.com -password ...
//	remindctl whoami
//	remindctl logout
//	remindctl reminders
//	remindctl dismiss <task-id>
//	remindctl dismiss-all
//	remindctl serve [-addr :8080] [-refresh 1m]
//
// Configuration comes from the environment (and a .env file): API_URL,
// AUTH_HTTP_TIMEOUT, TOKEN_STORE, TOKEN_STORE_DIR, REDIS_URL, APP_ENV.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/remindkit/pkg/authclient"
	"github.com/dmitrymomot/remindkit/pkg/authstate"
	"github.com/dmitrymomot/remindkit/pkg/config"
	"github.com/dmitrymomot/remindkit/pkg/logger"
	"github.com/dmitrymomot/remindkit/pkg/metrics"
	"github.com/dmitrymomot/remindkit/pkg/reminders"
	"github.com/dmitrymomot/remindkit/pkg/requestid"
	"github.com/dmitrymomot/remindkit/pkg/tokenstore"
)

const serviceName = "remindctl"

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:""`
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
}

// app holds the wired dependencies shared by every command.
type app struct {
	cfg      appConfig
	log      *slog.Logger
	stdout   io.Writer
	registry *prometheus.Registry
	metrics  *metrics.Collector
	client   *authclient.Client
	auth     *authstate.Provider
	tasks    *reminders.TasksAPI
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	a, err := setup(ctx, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "remindctl: %v\n", err)
		return 1
	}
	defer a.close()

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "remindctl: unknown command %q\n", args[0])
		usage(stderr)
		return 2
	}

	if err := cmd(ctx, a, args[1:]); err != nil {
		var authErr *authclient.AuthError
		if errors.As(err, &authErr) {
			fmt.Fprintln(stderr, authErr.Message)
			a.log.DebugContext(ctx, "command rejected", slog.String("command", args[0]), slog.String("detail", authErr.String()))
			return 1
		}
		a.log.ErrorContext(ctx, "command failed", slog.String("command", args[0]), logger.Error(err))
		fmt.Fprintf(stderr, "remindctl: %v\n", err)
		return 1
	}
	return 0
}

func setup(ctx context.Context, stdout, stderr io.Writer) (*app, error) {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithOutput(stderr),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
		}
		logOpts = append(logOpts, logger.WithLevel(level))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	var authCfg authclient.Config
	if err := config.Load(&authCfg); err != nil {
		return nil, err
	}
	var storeCfg tokenstore.Config
	if err := config.Load(&storeCfg); err != nil {
		return nil, err
	}

	store, err := tokenstore.Open(ctx, storeCfg)
	if err != nil {
		return nil, fmt.Errorf("open token store: %w", err)
	}
	if !tokenstore.IsAvailable(store) {
		log.WarnContext(ctx, "durable token storage unavailable, session will not persist")
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	client := authclient.NewFromConfig(authCfg, store,
		authclient.WithLogger(log),
		authclient.WithMetrics(collector),
	)

	return &app{
		cfg:      cfg,
		log:      log,
		stdout:   stdout,
		registry: registry,
		metrics:  collector,
		client:   client,
		auth:     authstate.New(client, authstate.WithLogger(log)),
		tasks: reminders.NewTasksAPI(client.BaseURL(), client.TokenSource(),
			reminders.WithAPILogger(log),
		),
	}, nil
}

func (a *app) close() {
	_ = a.auth.Close()
	if err := a.client.Close(); err != nil {
		a.log.Warn("close token store", logger.Error(err))
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: remindctl <command> [flags]")
	fmt.Fprintln(w, "commands: signup, login, logout, whoami, reminders, dismiss, dismiss-all, serve")
}

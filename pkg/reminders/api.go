package reminders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/dmitrymomot/remindkit/pkg/logger"
	"github.com/dmitrymomot/remindkit/pkg/requestid"
)

// API paths on the remote server.
const (
	PathReminders   = "/api/tasks/reminders"
	pathAcknowledge = "/api/tasks/%d/acknowledge-reminder"
)

// TasksAPI is the HTTP client for the reminder endpoints. Requests carry
// the session token from the token source as a bearer header.
type TasksAPI struct {
	baseURL string
	base    *http.Client
	client  *http.Client
	logger  *slog.Logger
}

// NewTasksAPI creates a client for baseURL authenticated by ts. A nil ts
// sends unauthenticated requests.
// Pass authclient.Client.TokenSource() to reuse the live session.
func NewTasksAPI(baseURL string, ts oauth2.TokenSource, opts ...APIOption) *TasksAPI {
	a := &TasksAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		base:    http.DefaultClient,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With(logger.Component("tasks_api"))
	var transport http.RoundTripper = &requestid.Transport{Base: a.base.Transport}
	if ts != nil {
		transport = &oauth2.Transport{Source: ts, Base: transport}
	}
	a.client = &http.Client{Transport: transport, Timeout: a.base.Timeout}
	return a
}

// AcknowledgeReminder marks the reminder of taskID as seen.
func (a *TasksAPI) AcknowledgeReminder(ctx context.Context, taskID int64) error {
	path := fmt.Sprintf(pathAcknowledge, taskID)

	resp, err := a.do(ctx, http.MethodPost, path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		a.logger.LogAttrs(ctx, slog.LevelDebug, "acknowledge rejected",
			logger.TaskID(taskID),
			logger.Endpoint(path),
			logger.StatusCode(resp.StatusCode),
		)
		return fmt.Errorf("%w: task %d: status %d", ErrAcknowledge, taskID, resp.StatusCode)
	}
	return nil
}

// Reminders fetches the tasks with pending reminders.
func (a *TasksAPI) Reminders(ctx context.Context) ([]Task, error) {
	resp, err := a.do(ctx, http.MethodGet, PathReminders)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}

	var tasks []Task
	if err := json.NewDecoder(resp.Body).Decode(&tasks); err != nil {
		return nil, errors.Join(ErrInvalidResponse, err)
	}
	return tasks, nil
}

func (a *TasksAPI) do(ctx context.Context, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, nil)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := a.client.Do(req)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	a.logger.LogAttrs(ctx, slog.LevelDebug, "tasks api call",
		logger.Endpoint(path),
		logger.StatusCode(resp.StatusCode),
		logger.Duration(time.Since(start)),
	)
	return resp, nil
}

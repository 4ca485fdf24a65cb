package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/dmitrymomot/remindkit/pkg/logger"
	"github.com/dmitrymomot/remindkit/pkg/metrics"
	"github.com/dmitrymomot/remindkit/pkg/requestid"
	"github.com/dmitrymomot/remindkit/pkg/tokenstore"
)

// API paths on the remote server.
const (
	PathSignup = "/api/auth/signup"
	PathLogin  = "/api/auth/login"
	PathMe     = "/api/auth/me"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// Client holds the session token and talks to the remote auth API.
// Create one per application with New and release it with Close.
type Client struct {
	mu    sync.RWMutex
	token string

	store      tokenstore.Store
	storageKey string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    metrics.Recorder
	now        func() time.Time
}

// New creates a client backed by store and restores a previously persisted
// token. A nil store behaves like tokenstore.Unavailable: the client starts
// tokenless and keeps the token in memory only.
func New(store tokenstore.Store, opts ...Option) *Client {
	cfg := DefaultConfig()
	c := &Client{
		store:      store,
		storageKey: cfg.StorageKey,
		baseURL:    cfg.APIURL,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     slog.Default(),
		metrics:    metrics.Nop{},
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.store == nil {
		c.store = tokenstore.Unavailable()
	}
	c.logger = c.logger.With(logger.Component("authclient"))

	c.restore(context.Background())

	return c
}

// NewFromConfig creates a client from cfg. Options are applied after cfg.
func NewFromConfig(cfg Config, store tokenstore.Store, opts ...Option) *Client {
	return New(store, append([]Option{WithConfig(cfg)}, opts...)...)
}

// Signup registers a new account and starts a session for it.
// Credential problems are returned as *AuthError.
func (c *Client) Signup(ctx context.Context, email, password, name string) (*AuthResponse, error) {
	req := signupRequest{Email: email, Password: password, Name: name}
	if err := validateRequest("signup", req); err != nil {
		c.metrics.RecordAuth(metrics.OpSignup, metrics.OutcomeRejected)
		return nil, err
	}
	return c.authenticate(ctx, metrics.OpSignup, PathSignup, req, msgSignupFailed)
}

// Login starts a session for an existing account.
// Credential problems are returned as *AuthError.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	req := loginRequest{Email: email, Password: password}
	if err := validateRequest("login", req); err != nil {
		c.metrics.RecordAuth(metrics.OpLogin, metrics.OutcomeRejected)
		return nil, err
	}
	return c.authenticate(ctx, metrics.OpLogin, PathLogin, req, msgLoginFailed)
}

// GetSession returns the current user, or nil when there is no session.
// It never fails: an invalid, expired or unverifiable token ends the
// session and the failure is only logged.
func (c *Client) GetSession(ctx context.Context) *User {
	token := c.Token()
	if token == "" {
		return nil
	}

	ctx, requestID := requestid.Ensure(ctx)

	if tokenExpired(token, c.now()) {
		c.logger.LogAttrs(ctx, slog.LevelInfo, "session token expired locally",
			logger.Endpoint(PathMe),
		)
		c.metrics.RecordAuth(metrics.OpSessionCheck, metrics.OutcomeFailure)
		c.logoutIfCurrent(token)
		return nil
	}

	user, status, err := c.fetchUser(ctx, token, requestID)
	if err != nil && ctx.Err() != nil {
		// Caller gave up; the server never judged the token.
		c.logger.LogAttrs(ctx, slog.LevelDebug, "session check abandoned",
			logger.Endpoint(PathMe),
			logger.Error(ctx.Err()),
		)
		return nil
	}
	if err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "session check failed, logging out",
			logger.Endpoint(PathMe),
			logger.StatusCode(status),
			logger.Error(err),
		)
		c.metrics.RecordAuth(metrics.OpSessionCheck, metrics.OutcomeFailure)
		c.logoutIfCurrent(token)
		return nil
	}

	c.metrics.RecordAuth(metrics.OpSessionCheck, metrics.OutcomeSuccess)
	return user
}

// Logout drops the token from memory and durable storage. It is idempotent
// and storage errors are only logged.
func (c *Client) Logout() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()

	c.forget()
	c.metrics.RecordAuth(metrics.OpLogout, metrics.OutcomeSuccess)
}

// Token returns the current session token, or "" when there is none.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// TokenSource exposes the live session token as an oauth2.TokenSource so
// other API clients can authenticate with it.
func (c *Client) TokenSource() oauth2.TokenSource {
	return clientTokenSource{c: c}
}

// BaseURL returns the remote API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases the durable store. The in-memory token is kept.
func (c *Client) Close() error {
	return c.store.Close()
}

func (c *Client) authenticate(ctx context.Context, op, path string, body any, fallback string) (*AuthResponse, error) {
	ctx, requestID := requestid.Ensure(ctx)

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestid.Header, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordAuth(op, metrics.OutcomeFailure)
		return nil, errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		authErr := &AuthError{
			Op:         op,
			Message:    detailMessage(resp.Body, fallback),
			StatusCode: resp.StatusCode,
		}
		c.logger.LogAttrs(ctx, slog.LevelInfo, "authentication rejected",
			logger.Event(op),
			logger.Endpoint(path),
			logger.StatusCode(resp.StatusCode),
		)
		c.metrics.RecordAuth(op, metrics.OutcomeFailure)
		return nil, authErr
	}

	var out AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.metrics.RecordAuth(op, metrics.OutcomeFailure)
		return nil, errors.Join(ErrInvalidResponse, err)
	}

	c.mu.Lock()
	c.token = out.Token
	c.mu.Unlock()
	c.persist(ctx, out.Token)

	c.logger.LogAttrs(ctx, slog.LevelDebug, "session started",
		logger.Event(op),
		logger.UserID(out.User.ID),
	)
	c.metrics.RecordAuth(op, metrics.OutcomeSuccess)

	return &out, nil
}

func (c *Client) fetchUser(ctx context.Context, token, requestID string) (*User, int, error) {
	hc := oauth2.NewClient(
		context.WithValue(ctx, oauth2.HTTPClient, c.httpClient),
		oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+PathMe, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set(requestid.Header, requestID)

	resp, err := hc.Do(req)
	if err != nil {
		return nil, 0, errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return nil, resp.StatusCode, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, resp.StatusCode, errors.Join(ErrInvalidResponse, err)
	}
	return &user, resp.StatusCode, nil
}

// logoutIfCurrent ends the session only if token is still the active one,
// so a failed check cannot wipe a token installed by a concurrent login.
func (c *Client) logoutIfCurrent(token string) {
	c.mu.Lock()
	if c.token != token {
		c.mu.Unlock()
		return
	}
	c.token = ""
	c.mu.Unlock()

	c.forget()
	c.metrics.RecordAuth(metrics.OpLogout, metrics.OutcomeSuccess)
}

func (c *Client) restore(ctx context.Context) {
	token, err := c.store.Get(ctx, c.storageKey)
	switch {
	case err == nil:
		c.token = token
	case errors.Is(err, tokenstore.ErrNotFound), errors.Is(err, tokenstore.ErrUnavailable):
	default:
		c.logger.LogAttrs(ctx, slog.LevelWarn, "failed to restore session token", logger.Error(err))
	}
}

func (c *Client) persist(ctx context.Context, token string) {
	err := c.store.Set(ctx, c.storageKey, token)
	if err != nil && !errors.Is(err, tokenstore.ErrUnavailable) {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "failed to persist session token", logger.Error(err))
	}
}

func (c *Client) forget() {
	ctx := context.Background()
	err := c.store.Delete(ctx, c.storageKey)
	if err != nil && !errors.Is(err, tokenstore.ErrUnavailable) {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "failed to remove session token", logger.Error(err))
	}
}

type clientTokenSource struct {
	c *Client
}

func (s clientTokenSource) Token() (*oauth2.Token, error) {
	token := s.c.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}, nil
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

// detailMessage extracts the server's string detail, or returns fallback.
func detailMessage(body io.Reader, fallback string) string {
	var er errorResponse
	if err := json.NewDecoder(io.LimitReader(body, maxErrorBody)).Decode(&er); err != nil {
		return fallback
	}
	if s, ok := er.Detail.(string); ok && s != "" {
		return s
	}
	return fallback
}

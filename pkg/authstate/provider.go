package authstate

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/remindkit/pkg/authclient"
	"github.com/dmitrymomot/remindkit/pkg/broadcast"
	"github.com/dmitrymomot/remindkit/pkg/logger"
)

// SessionSource resolves the current user. *authclient.Client satisfies it.
type SessionSource interface {
	GetSession(ctx context.Context) *authclient.User
	Logout()
}

// Provider caches the result of session checks and publishes every change
// to its subscribers.
type Provider struct {
	sessions SessionSource
	subject  *broadcast.Subject[Snapshot]
	logger   *slog.Logger

	mountOnce sync.Once
	ready     chan struct{}
	wg        sync.WaitGroup

	// gen is bumped by Logout so a check started before it cannot
	// publish a stale signed-in snapshot afterwards.
	mu  sync.Mutex
	gen uint64
}

// Option configures a Provider.
type Option func(*Provider)

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Provider) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a provider in the initial loading state.
func New(sessions SessionSource, opts ...Option) *Provider {
	p := &Provider{
		sessions: sessions,
		subject:  broadcast.NewSubject(initialSnapshot()),
		logger:   slog.Default(),
		ready:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(logger.Component("authstate"))
	return p
}

// Mount starts the initial session check in the background. Only the first
// call has an effect. Ready is closed when that check completes.
func (p *Provider) Mount(ctx context.Context) {
	p.mountOnce.Do(func() {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			defer close(p.ready)
			p.check(ctx)
		}()
	})
}

// Ready returns a channel closed once the mount check has finished.
func (p *Provider) Ready() <-chan struct{} {
	return p.ready
}

// RefreshUser re-runs the session check and publishes the result.
func (p *Provider) RefreshUser(ctx context.Context) {
	p.check(ctx)
}

// Login refreshes the state after credentials were submitted through the
// session client. It does not submit anything itself.
func (p *Provider) Login(ctx context.Context) {
	p.RefreshUser(ctx)
}

// Logout ends the session and publishes the signed-out state.
func (p *Provider) Logout() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.gen++
	p.sessions.Logout()
	p.publish(context.Background(), signedOut())
}

// Snapshot returns the current state.
func (p *Provider) Snapshot() Snapshot {
	return p.subject.Current()
}

// Subscribe returns a subscriber that receives the current snapshot first
// and then every change.
func (p *Provider) Subscribe(ctx context.Context) broadcast.Subscriber[Snapshot] {
	return p.subject.Subscribe(ctx)
}

// Close closes all subscribers and waits for a running mount check.
func (p *Provider) Close() error {
	err := p.subject.Close()
	p.wg.Wait()
	return err
}

func (p *Provider) check(ctx context.Context) {
	p.mu.Lock()
	gen := p.gen
	p.mu.Unlock()

	user := p.sessions.GetSession(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.gen {
		p.logger.DebugContext(ctx, "discarding session check superseded by logout")
		return
	}

	if user == nil {
		p.publish(ctx, signedOut())
		return
	}
	p.publish(ctx, signedIn(user))
}

func (p *Provider) publish(ctx context.Context, s Snapshot) {
	if err := p.subject.Publish(s); err != nil {
		return
	}

	attrs := []slog.Attr{logger.Event(string(s.Status))}
	if s.User != nil {
		attrs = append(attrs, logger.UserID(s.User.ID))
	}
	p.logger.LogAttrs(ctx, slog.LevelDebug, "auth state changed", attrs...)
}

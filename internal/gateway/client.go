package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"blog-backend/internal/domain"
)

// ClientOptions tunes the session-aware auth client.
type ClientOptions struct {
	// RefreshInterval is how often the background loop checks the session.
	// Zero disables automatic refresh.
	RefreshInterval time.Duration
	// RefreshMargin refreshes tokens this long before they expire.
	RefreshMargin time.Duration
	// OperationTimeout bounds calls made by the background loop.
	OperationTimeout time.Duration
	Logger           *slog.Logger
	// Observe is called for every emitted event.
	Observe func(AuthEvent)
}

func (o ClientOptions) withDefaults() ClientOptions {
	if o.RefreshMargin == 0 {
		o.RefreshMargin = time.Minute
	}
	if o.OperationTimeout == 0 {
		o.OperationTimeout = 10 * time.Second
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

type notification struct {
	target  int // 0 broadcasts
	event   AuthEvent
	session *domain.Session
}

// Client implements Auth over a Provider and a SessionPersistence. Events
// are delivered in order from a single goroutine, never from the caller's.
type Client struct {
	provider Provider
	persist  SessionPersistence
	opts     ClientOptions

	mu        sync.Mutex
	listeners map[int]AuthListener
	nextID    int
	queue     []notification

	refreshMu sync.Mutex

	wake      chan struct{}
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewClient creates a client and starts its event loop.
func NewClient(provider Provider, persist SessionPersistence, opts ClientOptions) *Client {
	c := &Client{
		provider:  provider,
		persist:   persist,
		opts:      opts.withDefaults(),
		listeners: make(map[int]AuthListener),
		wake:      make(chan struct{}, 1),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	go c.loop()
	return c
}

// NewConnector returns a Connector creating Clients over provider.
func NewConnector(provider Provider, opts ClientOptions) Connector {
	return connectorFunc(func(p SessionPersistence) Auth {
		return NewClient(provider, p, opts)
	})
}

type connectorFunc func(SessionPersistence) Auth

func (f connectorFunc) Connect(p SessionPersistence) Auth { return f(p) }

func (c *Client) loop() {
	defer close(c.done)

	var tick <-chan time.Time
	if c.opts.RefreshInterval > 0 {
		ticker := time.NewTicker(c.opts.RefreshInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-c.stop:
			return
		case <-c.wake:
			c.dispatch()
		case <-tick:
			c.autoRefresh()
		}
	}
}

func (c *Client) dispatch() {
	for {
		c.mu.Lock()
		if len(c.queue) == 0 {
			c.mu.Unlock()
			return
		}
		n := c.queue[0]
		c.queue = c.queue[1:]
		var targets []AuthListener
		if n.target != 0 {
			if fn, ok := c.listeners[n.target]; ok {
				targets = append(targets, fn)
			}
		} else {
			ids := make([]int, 0, len(c.listeners))
			for id := range c.listeners {
				ids = append(ids, id)
			}
			slices.Sort(ids)
			for _, id := range ids {
				targets = append(targets, c.listeners[id])
			}
		}
		c.mu.Unlock()

		for _, fn := range targets {
			fn(n.event, n.session)
		}
	}
}

func (c *Client) enqueue(n notification) {
	c.mu.Lock()
	c.queue = append(c.queue, n)
	c.mu.Unlock()

	if n.target == 0 && c.opts.Observe != nil {
		c.opts.Observe(n.event)
	}

	select {
	case c.wake <- struct{}{}:
	default:
	}
}

func (c *Client) emit(event AuthEvent, session *domain.Session) {
	c.enqueue(notification{event: event, session: session})
}

func (c *Client) autoRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), c.opts.OperationTimeout)
	defer cancel()

	session, err := c.persist.Load(ctx)
	if err != nil || session == nil {
		return
	}
	if !session.Expired(time.Now(), c.opts.RefreshMargin) {
		return
	}
	if _, err := c.refresh(ctx, session); err != nil {
		c.opts.Logger.Warn("automatic token refresh failed", slog.String("error", err.Error()))
	}
}

// refresh exchanges the refresh token. A rejected refresh token signs the
// session out.
func (c *Client) refresh(ctx context.Context, stale *domain.Session) (*domain.Session, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	// Another caller may have refreshed while we waited.
	current, err := c.persist.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if current == nil {
		return nil, nil
	}
	if current.AccessToken != stale.AccessToken && !current.Expired(time.Now(), c.opts.RefreshMargin) {
		return current, nil
	}

	fresh, err := c.provider.RefreshGrant(ctx, current.RefreshToken)
	if err != nil {
		if IsClientError(err) {
			if clearErr := c.persist.Clear(ctx); clearErr != nil {
				c.opts.Logger.Error("failed to clear rejected session", slog.String("error", clearErr.Error()))
			}
			c.emit(EventSignedOut, nil)
		}
		return nil, err
	}
	if err := c.persist.Save(ctx, fresh); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	c.emit(EventTokenRefreshed, fresh)
	return fresh, nil
}

func (c *Client) GetSession(ctx context.Context) (*domain.Session, error) {
	session, err := c.persist.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil || !session.Expired(time.Now(), 0) {
		return session, nil
	}
	return c.refresh(ctx, session)
}

func (c *Client) GetUser(ctx context.Context) (*domain.User, error) {
	session, err := c.GetSession(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionMissing
	}
	return c.provider.User(ctx, session.AccessToken)
}

func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	session, err := c.provider.PasswordGrant(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := c.persist.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	c.emit(EventSignedIn, session)
	return session, nil
}

func (c *Client) SignUp(ctx context.Context, email, password string, data map[string]any) (*domain.User, *domain.Session, error) {
	user, session, err := c.provider.SignUp(ctx, email, password, data)
	if err != nil {
		return nil, nil, err
	}
	if session != nil {
		if err := c.persist.Save(ctx, session); err != nil {
			return nil, nil, fmt.Errorf("save session: %w", err)
		}
		c.emit(EventSignedIn, session)
	}
	return user, session, nil
}

func (c *Client) SignOut(ctx context.Context) error {
	session, loadErr := c.persist.Load(ctx)

	var remoteErr error
	if session != nil {
		remoteErr = c.provider.Logout(ctx, session.AccessToken)
		// Already revoked or expired tokens count as signed out.
		if s := StatusOf(remoteErr); s == 401 || s == 403 || s == 404 {
			remoteErr = nil
		}
	}

	clearErr := c.persist.Clear(ctx)
	c.emit(EventSignedOut, nil)

	return errors.Join(remoteErr, loadErr, clearErr)
}

func (c *Client) UpdateUser(ctx context.Context, attrs domain.UserAttributes) (*domain.User, error) {
	session, err := c.GetSession(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionMissing
	}

	user, err := c.provider.UpdateUser(ctx, session.AccessToken, attrs)
	if err != nil {
		return nil, err
	}

	updated := *session
	updated.User = user
	if err := c.persist.Save(ctx, &updated); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	c.emit(EventUserUpdated, &updated)
	return user, nil
}

func (c *Client) OnAuthStateChange(fn AuthListener) func() {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.listeners[id] = fn
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), c.opts.OperationTimeout)
	session, err := c.persist.Load(ctx)
	cancel()
	if err != nil {
		c.opts.Logger.Warn("failed to load initial session", slog.String("error", err.Error()))
		session = nil
	}
	c.enqueue(notification{target: id, event: EventInitialSession, session: session})

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// Close stops the event loop. Pending notifications are dropped.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		close(c.stop)
	})
	<-c.done
	return nil
}

// Package memory is an in-process gateway backend: a bcrypt credential
// store issuing opaque tokens and a blob store kept in memory. It serves
// local development and tests.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blog-backend/internal/domain"
	"blog-backend/internal/gateway"
)

// Options configures a Gateway.
type Options struct {
	// AccessTTL is the lifetime of issued access tokens. Default: one hour.
	AccessTTL time.Duration
	// BaseURL prefixes public object URLs.
	BaseURL string
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
	// OnSignUp runs after an identity is created, e.g. to provision a profile.
	// An error undoes the sign-up.
	OnSignUp func(ctx context.Context, user *domain.User) error
}

type account struct {
	user         domain.User
	passwordHash []byte
}

type token struct {
	userID    string
	expiresAt time.Time
}

// Object is a stored blob.
type Object struct {
	Data        []byte
	ContentType string
}

// Gateway implements gateway.Provider and gateway.ObjectStore in memory.
type Gateway struct {
	opts Options
	now  func() time.Time

	mu       sync.RWMutex
	byEmail  map[string]*account
	byID     map[string]*account
	access   map[string]token
	refresh  map[string]string // refresh token -> user id
	objects  map[string]map[string]Object
	failNext map[string]error
}

var (
	_ gateway.Provider    = (*Gateway)(nil)
	_ gateway.ObjectStore = (*Gateway)(nil)
)

// New creates an empty gateway.
func New(opts Options) *Gateway {
	if opts.AccessTTL <= 0 {
		opts.AccessTTL = time.Hour
	}
	if opts.BaseURL == "" {
		opts.BaseURL = "http://localhost/storage"
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	return &Gateway{
		opts:     opts,
		now:      time.Now,
		byEmail:  make(map[string]*account),
		byID:     make(map[string]*account),
		access:   make(map[string]token),
		refresh:  make(map[string]string),
		objects:  make(map[string]map[string]Object),
		failNext: make(map[string]error),
	}
}

func errInvalidCredentials() error {
	return &gateway.Error{Status: http.StatusBadRequest, Code: "invalid_credentials", Message: "Invalid login credentials"}
}

func errBadJWT() error {
	return &gateway.Error{Status: http.StatusUnauthorized, Code: "bad_jwt", Message: "invalid JWT: token is expired or unknown"}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// issue creates a session for acc. Callers hold the write lock.
func (g *Gateway) issue(acc *account) *domain.Session {
	now := g.now()
	at := uuid.NewString()
	rt := uuid.NewString()
	g.access[at] = token{userID: acc.user.ID, expiresAt: now.Add(g.opts.AccessTTL)}
	g.refresh[rt] = acc.user.ID

	u := acc.user
	return &domain.Session{
		AccessToken:  at,
		RefreshToken: rt,
		TokenType:    "bearer",
		ExpiresAt:    now.Add(g.opts.AccessTTL),
		User:         &u,
	}
}

func (g *Gateway) PasswordGrant(ctx context.Context, email, password string) (*domain.Session, error) {
	g.mu.RLock()
	acc, ok := g.byEmail[normalizeEmail(email)]
	g.mu.RUnlock()
	if !ok {
		return nil, errInvalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)); err != nil {
		return nil, errInvalidCredentials()
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return g.issue(acc), nil
}

func (g *Gateway) RefreshGrant(ctx context.Context, refreshToken string) (*domain.Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	userID, ok := g.refresh[refreshToken]
	if !ok {
		return nil, &gateway.Error{Status: http.StatusBadRequest, Code: "refresh_token_not_found", Message: "Invalid Refresh Token: Refresh Token Not Found"}
	}
	delete(g.refresh, refreshToken)

	acc, ok := g.byID[userID]
	if !ok {
		return nil, &gateway.Error{Status: http.StatusBadRequest, Code: "user_not_found", Message: "User not found"}
	}
	return g.issue(acc), nil
}

func (g *Gateway) SignUp(ctx context.Context, email, password string, data map[string]any) (*domain.User, *domain.Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, nil, &gateway.Error{Status: http.StatusBadRequest, Code: "validation_failed", Message: "Signup requires a valid email and password"}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), g.opts.BcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	meta := make(map[string]any, len(data))
	for k, v := range data {
		meta[k] = v
	}
	acc := &account{
		user: domain.User{
			ID:           uuid.NewString(),
			Email:        email,
			UserMetadata: meta,
			CreatedAt:    g.now().UTC(),
		},
		passwordHash: hash,
	}

	g.mu.Lock()
	if _, exists := g.byEmail[email]; exists {
		g.mu.Unlock()
		return nil, nil, &gateway.Error{Status: http.StatusUnprocessableEntity, Code: "user_already_exists", Message: "User already registered"}
	}
	g.byEmail[email] = acc
	g.byID[acc.user.ID] = acc
	g.mu.Unlock()

	if g.opts.OnSignUp != nil {
		u := acc.user
		if err := g.opts.OnSignUp(ctx, &u); err != nil {
			g.mu.Lock()
			delete(g.byEmail, email)
			delete(g.byID, acc.user.ID)
			g.mu.Unlock()
			return nil, nil, &gateway.Error{Status: http.StatusInternalServerError, Code: "unexpected_failure", Message: "Database error saving new user: " + err.Error()}
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	session := g.issue(acc)
	return session.User, session, nil
}

// userFor resolves a live access token. Callers hold a lock.
func (g *Gateway) userFor(accessToken string) (*account, error) {
	tok, ok := g.access[accessToken]
	if !ok || !g.now().Before(tok.expiresAt) {
		return nil, errBadJWT()
	}
	acc, ok := g.byID[tok.userID]
	if !ok {
		return nil, errBadJWT()
	}
	return acc, nil
}

// Logout revokes every token of the user owning accessToken.
func (g *Gateway) Logout(ctx context.Context, accessToken string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	acc, err := g.userFor(accessToken)
	if err != nil {
		return err
	}
	for t, tok := range g.access {
		if tok.userID == acc.user.ID {
			delete(g.access, t)
		}
	}
	for t, id := range g.refresh {
		if id == acc.user.ID {
			delete(g.refresh, t)
		}
	}
	return nil
}

func (g *Gateway) User(ctx context.Context, accessToken string) (*domain.User, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	acc, err := g.userFor(accessToken)
	if err != nil {
		return nil, err
	}
	u := acc.user
	return &u, nil
}

func (g *Gateway) UpdateUser(ctx context.Context, accessToken string, attrs domain.UserAttributes) (*domain.User, error) {
	var hash []byte
	if attrs.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(attrs.Password), g.opts.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hash = h
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	acc, err := g.userFor(accessToken)
	if err != nil {
		return nil, err
	}
	if hash != nil {
		acc.passwordHash = hash
	}
	if len(attrs.Data) > 0 {
		meta := make(map[string]any, len(acc.user.UserMetadata)+len(attrs.Data))
		for k, v := range acc.user.UserMetadata {
			meta[k] = v
		}
		for k, v := range attrs.Data {
			meta[k] = v
		}
		acc.user.UserMetadata = meta
	}
	u := acc.user
	return &u, nil
}

// FailNextUpload makes the next upload to bucket/path return err.
func (g *Gateway) FailNextUpload(bucket, path string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failNext[bucket+"/"+path] = err
}

func (g *Gateway) Upload(ctx context.Context, bucket, path string, body io.Reader, size int64, contentType string) error {
	if _, ok := gateway.ActorFromContext(ctx); !ok {
		return &gateway.Error{Status: http.StatusForbidden, Code: "unauthorized", Message: "new row violates row-level security policy"}
	}

	g.mu.Lock()
	if err, ok := g.failNext[bucket+"/"+path]; ok {
		delete(g.failNext, bucket+"/"+path)
		g.mu.Unlock()
		return err
	}
	g.mu.Unlock()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return fmt.Errorf("read upload: %w", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	objs, ok := g.objects[bucket]
	if !ok {
		objs = make(map[string]Object)
		g.objects[bucket] = objs
	}
	if _, exists := objs[path]; exists {
		return &gateway.Error{Status: http.StatusConflict, Code: "Duplicate", Message: "The resource already exists"}
	}
	objs[path] = Object{Data: buf.Bytes(), ContentType: contentType}
	return nil
}

func (g *Gateway) Remove(ctx context.Context, bucket string, paths ...string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, p := range paths {
		delete(g.objects[bucket], p)
	}
	return nil
}

// Object returns a stored blob.
func (g *Gateway) Object(bucket, path string) (Object, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	o, ok := g.objects[bucket][path]
	return o, ok
}

// ObjectCount reports how many blobs bucket holds.
func (g *Gateway) ObjectCount(bucket string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.objects[bucket])
}

func (g *Gateway) publicPrefix(bucket string) string {
	return g.opts.BaseURL + "/object/public/" + url.PathEscape(bucket) + "/"
}

func (g *Gateway) PublicURL(bucket, path string) string {
	return g.publicPrefix(bucket) + path
}

func (g *Gateway) ObjectPath(bucket, publicURL string) (string, bool) {
	rest, ok := strings.CutPrefix(publicURL, g.publicPrefix(bucket))
	if !ok || rest == "" {
		return "", false
	}
	return rest, true
}

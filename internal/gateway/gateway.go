// Package gateway defines the contracts of the hosted backend the blog
// relies on for authentication and blob storage, and a session-aware auth
// client shared by every backend driver.
package gateway

import (
	"context"
	"io"

	"blog-backend/internal/domain"
)

// Storage buckets.
const (
	BucketPosts   = "posts"
	BucketAvatars = "avatars"
)

// AuthEvent names an auth state transition.
type AuthEvent string

const (
	EventInitialSession AuthEvent = "INITIAL_SESSION"
	EventSignedIn       AuthEvent = "SIGNED_IN"
	EventSignedOut      AuthEvent = "SIGNED_OUT"
	EventTokenRefreshed AuthEvent = "TOKEN_REFRESHED"
	EventUserUpdated    AuthEvent = "USER_UPDATED"
)

// AuthListener receives auth state changes. session is nil after sign-out.
type AuthListener func(event AuthEvent, session *domain.Session)

// Auth is a gateway auth client bound to one browser session.
type Auth interface {
	// GetSession returns the persisted session, refreshing it when the access
	// token has expired. A nil session with a nil error means signed out.
	GetSession(ctx context.Context) (*domain.Session, error)
	// GetUser reads the current user from the gateway.
	GetUser(ctx context.Context) (*domain.User, error)
	SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error)
	// SignUp registers an identity. The returned session is nil when the
	// gateway requires confirmation before sign-in.
	SignUp(ctx context.Context, email, password string, data map[string]any) (*domain.User, *domain.Session, error)
	// SignOut revokes the session remotely and always clears it locally.
	SignOut(ctx context.Context) error
	UpdateUser(ctx context.Context, attrs domain.UserAttributes) (*domain.User, error)
	// OnAuthStateChange subscribes fn; fn first receives INITIAL_SESSION.
	OnAuthStateChange(fn AuthListener) (unsubscribe func())
	Close() error
}

// Provider is the raw token API of a gateway backend.
type Provider interface {
	PasswordGrant(ctx context.Context, email, password string) (*domain.Session, error)
	RefreshGrant(ctx context.Context, refreshToken string) (*domain.Session, error)
	SignUp(ctx context.Context, email, password string, data map[string]any) (*domain.User, *domain.Session, error)
	Logout(ctx context.Context, accessToken string) error
	User(ctx context.Context, accessToken string) (*domain.User, error)
	UpdateUser(ctx context.Context, accessToken string, attrs domain.UserAttributes) (*domain.User, error)
}

// ObjectStore stores blobs in named buckets.
type ObjectStore interface {
	Upload(ctx context.Context, bucket, path string, body io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, bucket string, paths ...string) error
	PublicURL(bucket, path string) string
	// ObjectPath is the inverse of PublicURL. It reports false for URLs
	// that do not belong to bucket.
	ObjectPath(bucket, publicURL string) (string, bool)
}

// SessionPersistence stores the session of one browser.
type SessionPersistence interface {
	// Load returns nil, nil when nothing is stored.
	Load(ctx context.Context) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	Clear(ctx context.Context) error
}

// Connector binds auth clients to session persistence.
type Connector interface {
	Connect(persistence SessionPersistence) Auth
}

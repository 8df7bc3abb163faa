package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/auth"
	"blog-backend/internal/logger"
	"blog-backend/internal/session"
)

// SessionKey is the gin context key of the request's browser session.
const SessionKey = "browser_session"

// ErrSessionUnavailable is returned by OpenStore when no Store can be
// created for the request.
var ErrSessionUnavailable = errors.New("session unavailable")

// CookieOptions configures the session cookie.
type CookieOptions struct {
	Name   string
	Secure bool
}

// browserSession is the per-request view of a browser session. id and store
// stay empty for a visitor without a valid cookie.
type browserSession struct {
	codec    *auth.CookieCodec
	registry *session.Registry
	opts     CookieOptions

	id    string
	store *session.Store
}

// Session resolves the browser session from its sealed cookie and exposes
// the session's Store to later handlers. Visitors without a valid cookie
// get no Store and no cookie until OpenStore is called for them.
func Session(codec *auth.CookieCodec, registry *session.Registry, opts CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		bs := &browserSession{codec: codec, registry: registry, opts: opts}

		if value, err := c.Cookie(opts.Name); err == nil && value != "" {
			id, err := codec.Open(value)
			if err != nil {
				logger.DebugContext(c.Request.Context(), "Discarding session cookie", slog.String("error", err.Error()))
			} else {
				store := registry.Get(id)
				if store == nil {
					c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "server is shutting down"})
					return
				}
				bs.id, bs.store = id, store
			}
		}

		c.Set(SessionKey, bs)
		c.Next()
	}
}

func sessionFromContext(c *gin.Context) *browserSession {
	if v, ok := c.Get(SessionKey); ok {
		if bs, ok := v.(*browserSession); ok {
			return bs
		}
	}
	return nil
}

// StoreFromContext returns the Store of the request's session, or nil for
// a visitor without one.
func StoreFromContext(c *gin.Context) *session.Store {
	if bs := sessionFromContext(c); bs != nil {
		return bs.store
	}
	return nil
}

// OpenStore returns the Store of the request's session, starting a new
// session and issuing its cookie when there is none. created reports
// whether the session was started by this call.
func OpenStore(c *gin.Context) (store *session.Store, created bool, err error) {
	bs := sessionFromContext(c)
	if bs == nil {
		return nil, false, ErrSessionUnavailable
	}
	if bs.store != nil {
		return bs.store, false, nil
	}

	id, err := auth.NewSessionID()
	if err != nil {
		logger.ErrorContext(c.Request.Context(), "Failed to create session id", slog.String("error", err.Error()))
		return nil, false, ErrSessionUnavailable
	}
	store = bs.registry.Get(id)
	if store == nil {
		return nil, false, ErrSessionUnavailable
	}

	bs.id, bs.store = id, store
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(bs.opts.Name, bs.codec.Seal(id), int(bs.codec.TTL().Seconds()), "/", "", bs.opts.Secure, true)
	return store, true, nil
}

// EndSession closes the request's Store and expires its cookie.
func EndSession(c *gin.Context) {
	bs := sessionFromContext(c)
	if bs == nil || bs.store == nil {
		return
	}
	bs.registry.Drop(bs.id)
	bs.id, bs.store = "", nil
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(bs.opts.Name, "", -1, "/", "", bs.opts.Secure, true)
}

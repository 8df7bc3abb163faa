package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domain"
	"blog-backend/internal/logger"
	"blog-backend/internal/middleware"
	"blog-backend/internal/ratelimit"
	"blog-backend/internal/session"
)

// AuthHandler serves sign-in, sign-up and account management for the
// browser session resolved by middleware.Session.
type AuthHandler struct {
	limiter *ratelimit.KeyedRateLimiter
}

// NewAuthHandler creates a new AuthHandler. Sign-in and sign-up attempts
// are throttled per client IP by limiter.
func NewAuthHandler(limiter *ratelimit.KeyedRateLimiter) *AuthHandler {
	return &AuthHandler{limiter: limiter}
}

// SignInRequest is the body of POST /api/v1/auth/signin. Identifier is an
// email or a username.
type SignInRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// SignUpRequest is the body of POST /api/v1/auth/signup.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

// PasswordRequest is the body of PUT /api/v1/auth/password.
type PasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password"`
}

// SessionResponse describes the browser's auth state.
type SessionResponse struct {
	SignedIn  bool         `json:"signed_in"`
	User      *domain.User `json:"user,omitempty"`
	ExpiresAt *time.Time   `json:"expires_at,omitempty"`
}

func toSessionResponse(st session.State) SessionResponse {
	resp := SessionResponse{SignedIn: st.User != nil, User: st.User}
	if st.Session != nil {
		exp := st.Session.ExpiresAt
		resp.ExpiresAt = &exp
	}
	return resp
}

// open returns the browser's Store, starting a session when the visitor has
// none, or answers 500.
func (h *AuthHandler) open(c *gin.Context) (*session.Store, bool) {
	s, created, err := middleware.OpenStore(c)
	if err != nil {
		logger.ErrorContext(c.Request.Context(), "Failed to open session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "session unavailable", Code: string(domain.CodeInternal)})
		return nil, false
	}
	return s, created
}

// signedIn returns the Store of a signed-in visitor or answers 401.
func (h *AuthHandler) signedIn(c *gin.Context) *session.Store {
	s := middleware.StoreFromContext(c)
	if s == nil {
		respondError(c, domain.ErrNotAuthenticated)
	}
	return s
}

// discard ends a session started by the current request that did not end
// up signed in.
func discard(c *gin.Context, s *session.Store, created bool) {
	if created && s.User() == nil {
		middleware.EndSession(c)
	}
}

func (h *AuthHandler) allow(c *gin.Context) bool {
	if h.limiter == nil || h.limiter.Allow(c.ClientIP()) {
		return true
	}
	logger.WarnContext(c.Request.Context(), "Auth attempt throttled", slog.String("client_ip", c.ClientIP()))
	respondError(c, domain.ErrRateLimited)
	return false
}

// SignIn handles POST /api/v1/auth/signin.
func (h *AuthHandler) SignIn(c *gin.Context) {
	if !h.allow(c) {
		return
	}
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "identifier and password are required")
		return
	}
	s, created := h.open(c)
	if s == nil {
		return
	}

	sess, err := s.SignIn(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		discard(c, s, created)
		respondError(c, err)
		return
	}
	if sess.User != nil {
		logger.WithUserID(sess.User.ID).InfoContext(c.Request.Context(), "User signed in")
	}
	c.JSON(http.StatusOK, toSessionResponse(s.Snapshot()))
}

// SignUp handles POST /api/v1/auth/signup.
func (h *AuthHandler) SignUp(c *gin.Context) {
	if !h.allow(c) {
		return
	}
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	s, created := h.open(c)
	if s == nil {
		return
	}

	if _, err := s.SignUp(c.Request.Context(), req.Email, req.Password, req.Username); err != nil {
		discard(c, s, created)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSessionResponse(s.Snapshot()))
}

// SignOut handles POST /api/v1/auth/signout. The session is cleared and its
// cookie expired even when the gateway call fails.
func (h *AuthHandler) SignOut(c *gin.Context) {
	s := middleware.StoreFromContext(c)
	if s == nil {
		c.Status(http.StatusNoContent)
		return
	}
	err := s.SignOut(c.Request.Context())
	middleware.EndSession(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Session handles GET /api/v1/auth/session.
func (h *AuthHandler) Session(c *gin.Context) {
	var st session.State
	if s := middleware.StoreFromContext(c); s != nil {
		st = s.Snapshot()
	}
	c.JSON(http.StatusOK, toSessionResponse(st))
}

// UpdatePassword handles PUT /api/v1/auth/password.
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req PasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "current_password is required")
		return
	}
	s := h.signedIn(c)
	if s == nil {
		return
	}
	if err := s.UpdatePassword(c.Request.Context(), req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateProfile handles PATCH /api/v1/auth/profile.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req domain.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if req.IsEmpty() {
		badRequest(c, "nothing to update")
		return
	}
	s := h.signedIn(c)
	if s == nil {
		return
	}

	p, err := s.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UploadAvatar handles POST /api/v1/auth/avatar (multipart field avatar).
func (h *AuthHandler) UploadAvatar(c *gin.Context) {
	upload, closer, err := readUpload(c, "avatar")
	if err != nil {
		respondError(c, err)
		return
	}
	defer closer.Close()
	s := h.signedIn(c)
	if s == nil {
		return
	}

	url, err := s.UploadAvatar(c.Request.Context(), upload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}

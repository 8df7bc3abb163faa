// Package session holds the authentication state of each browser session.
//
// A Store is a single-writer actor: one goroutine owns the state and applies
// every change, whether it comes from a direct call (sign-in, sign-out) or
// from the gateway's auth-change notifications, in arrival order. Gateway
// calls run in the caller's goroutine; only their results pass through the
// actor.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"blog-backend/internal/domain"
	"blog-backend/internal/gateway"
	"blog-backend/internal/logger"
	"blog-backend/internal/metrics"
	"blog-backend/internal/repository"
	"blog-backend/internal/textutil"
	"blog-backend/internal/validator"
)

// Sign-in result labels.
const (
	signInSuccess     = "success"
	signInInvalid     = "invalid_credentials"
	signInGatewayFail = "error"
)

// State is a snapshot of one browser session.
type State struct {
	User    *domain.User
	Session *domain.Session
	Loading bool
}

// Actor returns the acting user of the snapshot.
func (s State) Actor() (gateway.Actor, bool) {
	if s.User == nil || s.Session == nil {
		return gateway.Actor{}, false
	}
	return gateway.Actor{UserID: s.User.ID, AccessToken: s.Session.AccessToken}, true
}

// Deps are the collaborators shared by every Store.
type Deps struct {
	Profiles  repository.ProfileRepository
	Objects   gateway.ObjectStore
	Validator *validator.Validator
}

type state struct {
	user    *domain.User
	session *domain.Session
	loading bool
}

func (st *state) set(session *domain.Session) {
	st.session = session
	if session != nil {
		st.user = session.User
	} else {
		st.user = nil
	}
}

// Store is the auth state of one browser session.
type Store struct {
	auth gateway.Auth
	deps Deps
	now  func() time.Time

	ops  chan func(*state)
	done chan struct{}
	wg   sync.WaitGroup

	initGroup   singleflight.Group
	initialized atomic.Bool
	unsubscribe func()
	subMu       sync.Mutex

	closeOnce sync.Once
}

// NewStore creates a Store over auth and starts its actor. The Store owns
// auth and closes it on Close.
func NewStore(auth gateway.Auth, deps Deps) *Store {
	if deps.Validator == nil {
		deps.Validator = validator.NewValidator()
	}
	s := &Store{
		auth: auth,
		deps: deps,
		now:  time.Now,
		ops:  make(chan func(*state)),
		done: make(chan struct{}),
	}
	s.wg.Add(1)
	go s.run()
	return s
}

func (s *Store) run() {
	defer s.wg.Done()
	st := state{loading: true}
	for {
		select {
		case op := <-s.ops:
			op(&st)
		case <-s.done:
			return
		}
	}
}

// do runs fn on the actor and waits for it. It reports false once the
// Store is closed.
func (s *Store) do(fn func(*state)) bool {
	applied := make(chan struct{})
	select {
	case s.ops <- func(st *state) { fn(st); close(applied) }:
	case <-s.done:
		return false
	}
	select {
	case <-applied:
		return true
	case <-s.done:
		return false
	}
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	out := State{}
	s.do(func(st *state) {
		out = State{User: st.user, Session: st.session, Loading: st.loading}
	})
	return out
}

// User returns the signed-in user, or nil.
func (s *Store) User() *domain.User {
	return s.Snapshot().User
}

// Loading reports whether Initialize has not completed yet.
func (s *Store) Loading() bool {
	return s.Snapshot().Loading
}

// Initialized reports whether Initialize has succeeded.
func (s *Store) Initialized() bool {
	return s.initialized.Load()
}

// Initialize loads the persisted session and subscribes to auth changes.
// Concurrent callers share one run; later calls return immediately once a
// run has succeeded, and retry after a failed one. Loading is cleared
// whether or not loading the session succeeded. The load is not cancelled
// with ctx, since other callers may be waiting on it.
func (s *Store) Initialize(ctx context.Context) error {
	if s.initialized.Load() {
		return nil
	}
	ctx = context.WithoutCancel(ctx)
	_, err, _ := s.initGroup.Do("init", func() (any, error) {
		if s.initialized.Load() {
			return nil, nil
		}
		defer s.do(func(st *state) { st.loading = false })

		session, err := s.auth.GetSession(ctx)
		if err != nil {
			logger.ErrorContext(ctx, "Auth initialization error", slog.String("error", err.Error()))
			return nil, err
		}
		s.do(func(st *state) { st.set(session) })

		s.subMu.Lock()
		if s.unsubscribe == nil {
			s.unsubscribe = s.auth.OnAuthStateChange(s.onAuthChange)
		}
		s.subMu.Unlock()
		s.initialized.Store(true)
		return nil, nil
	})
	return err
}

// onAuthChange applies gateway notifications. The initial event is skipped
// since Initialize already loaded that session, and applying it late could
// undo a sign-in made in between.
func (s *Store) onAuthChange(event gateway.AuthEvent, session *domain.Session) {
	if event == gateway.EventInitialSession {
		return
	}
	s.do(func(st *state) { st.set(session) })
}

// SignIn authenticates with an email or a username. Unknown usernames and
// wrong passwords fail with the same ErrInvalidCredentials.
func (s *Store) SignIn(ctx context.Context, identifier, password string) (*domain.Session, error) {
	email := strings.TrimSpace(identifier)
	if !strings.Contains(email, "@") {
		resolved, found, err := s.deps.Profiles.EmailByUsername(ctx, email)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to look up username", slog.String("error", err.Error()))
			metrics.ObserveSignIn(signInInvalid)
			return nil, domain.ErrInvalidCredentials
		}
		if !found {
			metrics.ObserveSignIn(signInInvalid)
			return nil, domain.ErrInvalidCredentials
		}
		email = resolved
	}

	session, err := s.auth.SignInWithPassword(ctx, email, password)
	if err != nil {
		if gateway.IsClientError(err) {
			metrics.ObserveSignIn(signInInvalid)
			return nil, domain.ErrInvalidCredentials
		}
		metrics.ObserveSignIn(signInGatewayFail)
		return nil, err
	}

	s.do(func(st *state) { st.set(session) })
	metrics.ObserveSignIn(signInSuccess)
	return session, nil
}

// SignUp registers a new identity and signs it in. The profile itself is
// provisioned by the backend from the username in the user metadata.
func (s *Store) SignUp(ctx context.Context, email, password, username string) (*domain.User, error) {
	in := &validator.SignUp{Email: strings.TrimSpace(email), Password: password, Username: strings.TrimSpace(username)}
	if err := s.deps.Validator.ValidateSignUp(in); err != nil {
		return nil, validator.AsDomainError(err)
	}

	taken, err := s.deps.Profiles.UsernameExists(ctx, in.Username, "")
	if err != nil {
		logger.WarnContext(ctx, "Username check failed", slog.String("error", err.Error()))
	} else if taken {
		return nil, domain.ErrUsernameTaken
	}

	user, _, err := s.auth.SignUp(ctx, in.Email, password, map[string]any{"username": in.Username})
	if err != nil {
		return nil, err
	}
	if user == nil {
		// No user yet: the gateway holds the account until the email is confirmed.
		return nil, nil
	}

	if _, err := s.SignIn(ctx, in.Email, password); err != nil {
		logger.ErrorContext(ctx, "Automatic sign-in after sign-up failed", slog.String("error", err.Error()))
		return user, domain.ErrAutoSignInFailed.WithCause(err)
	}
	return user, nil
}

// SignOut ends the session. Local state is cleared even when the gateway
// call fails; that failure is still returned.
func (s *Store) SignOut(ctx context.Context) error {
	err := s.auth.SignOut(ctx)
	s.do(func(st *state) { st.set(nil) })
	if err != nil {
		logger.ErrorContext(ctx, "Sign out failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// UpdatePassword changes the password after verifying the current one.
func (s *Store) UpdatePassword(ctx context.Context, current, next string) error {
	user, err := s.auth.GetUser(ctx)
	if err != nil {
		if gateway.IsClientError(err) {
			return domain.ErrNotAuthenticated
		}
		return err
	}
	if user == nil {
		return domain.ErrNotAuthenticated
	}

	if err := s.deps.Validator.ValidatePassword(next); err != nil {
		return validator.AsDomainError(err)
	}

	if _, err := s.auth.SignInWithPassword(ctx, user.Email, current); err != nil {
		if gateway.IsClientError(err) {
			return domain.ErrIncorrectPassword
		}
		return err
	}

	if _, err := s.auth.UpdateUser(ctx, domain.UserAttributes{Password: next}); err != nil {
		return err
	}
	return nil
}

// UpdateProfile changes the signed-in user's profile.
func (s *Store) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.Profile, error) {
	user := s.User()
	if user == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if err := s.deps.Validator.ValidateProfileUpdate(&update); err != nil {
		return nil, validator.AsDomainError(err)
	}
	if update.Username != nil {
		taken, err := s.deps.Profiles.UsernameExists(ctx, *update.Username, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrUsernameTaken
		}
	}
	return s.deps.Profiles.Update(ctx, user.ID, update)
}

// UploadAvatar stores an avatar image under the user's folder, points the
// profile at it and refreshes the cached user.
func (s *Store) UploadAvatar(ctx context.Context, file domain.Upload) (string, error) {
	snap := s.Snapshot()
	actor, ok := snap.Actor()
	if !ok {
		return "", domain.ErrNotAuthenticated
	}

	if file.Body == nil {
		return "", domain.Validationf("file %q is empty", file.Name)
	}
	if file.Size > 0 && !textutil.CheckFileSize(file.Size, textutil.MaxAvatarMB) {
		return "", domain.ErrFileTooLarge.WithDetails(map[string]any{"file": file.Name, "max_mb": textutil.MaxAvatarMB})
	}
	contentType, body, err := textutil.SniffContentType(file.Body)
	if err != nil {
		return "", err
	}
	if !textutil.IsImageType(contentType) {
		return "", domain.ErrInvalidFileType.WithDetails(map[string]any{"file": file.Name})
	}

	objectPath := fmt.Sprintf("%s/%d.%s", actor.UserID, s.now().UnixMilli(), textutil.FileExt(file.Name))
	uploadCtx := gateway.WithActor(ctx, actor)
	if err := s.deps.Objects.Upload(uploadCtx, gateway.BucketAvatars, objectPath, body, file.Size, contentType); err != nil {
		metrics.ObserveUpload(gateway.BucketAvatars, metrics.ResultError, 0)
		return "", err
	}
	metrics.ObserveUpload(gateway.BucketAvatars, metrics.ResultSuccess, file.Size)

	avatarURL := s.deps.Objects.PublicURL(gateway.BucketAvatars, objectPath)
	if _, err := s.UpdateProfile(ctx, domain.ProfileUpdate{AvatarURL: &avatarURL}); err != nil {
		if rmErr := s.deps.Objects.Remove(context.WithoutCancel(uploadCtx), gateway.BucketAvatars, objectPath); rmErr != nil {
			logger.WarnContext(ctx, "Failed to remove orphaned avatar",
				slog.String("path", objectPath),
				slog.String("error", rmErr.Error()))
		}
		return "", err
	}

	s.RefreshUser(ctx)
	return avatarURL, nil
}

// RefreshUser re-reads the user from the gateway. Failures are logged and
// leave the state unchanged.
func (s *Store) RefreshUser(ctx context.Context) {
	if s.User() == nil {
		return
	}
	user, err := s.auth.GetUser(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to refresh user", slog.String("error", err.Error()))
		return
	}
	s.do(func(st *state) {
		st.user = user
		if st.session != nil {
			updated := *st.session
			updated.User = user
			st.session = &updated
		}
	})
}

// Close stops the actor and the gateway client. It is safe to call more
// than once.
func (s *Store) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.subMu.Lock()
		if s.unsubscribe != nil {
			s.unsubscribe()
		}
		s.subMu.Unlock()
		close(s.done)
		s.wg.Wait()
		err = s.auth.Close()
	})
	return err
}

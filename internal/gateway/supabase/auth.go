package supabase

import (
	"context"
	"net/http"
	"time"

	"blog-backend/internal/domain"
)

type userResponse struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
	CreatedAt    time.Time      `json:"created_at"`
}

func (u *userResponse) toDomain() *domain.User {
	if u == nil || u.ID == "" {
		return nil
	}
	return &domain.User{
		ID:           u.ID,
		Email:        u.Email,
		UserMetadata: u.UserMetadata,
		CreatedAt:    u.CreatedAt,
	}
}

type tokenResponse struct {
	AccessToken  string        `json:"access_token"`
	TokenType    string        `json:"token_type"`
	ExpiresIn    int64         `json:"expires_in"`
	ExpiresAt    int64         `json:"expires_at"`
	RefreshToken string        `json:"refresh_token"`
	User         *userResponse `json:"user"`
}

func (t *tokenResponse) toDomain() *domain.Session {
	if t.AccessToken == "" {
		return nil
	}
	expiresAt := time.Unix(t.ExpiresAt, 0)
	if t.ExpiresAt == 0 {
		expiresAt = time.Now().Add(time.Duration(t.ExpiresIn) * time.Second)
	}
	return &domain.Session{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    t.TokenType,
		ExpiresAt:    expiresAt,
		User:         t.User.toDomain(),
	}
}

// signUpResponse is a session when the project auto-confirms e-mail and a
// bare user otherwise.
type signUpResponse struct {
	tokenResponse
	userResponse
}

func (c *Client) grant(ctx context.Context, grantType string, payload any) (*domain.Session, error) {
	body, err := jsonBody(payload)
	if err != nil {
		return nil, err
	}
	var out tokenResponse
	err = c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/auth/v1/token?grant_type=" + grantType,
		body:        body,
		contentType: "application/json",
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

func (c *Client) PasswordGrant(ctx context.Context, email, password string) (*domain.Session, error) {
	return c.grant(ctx, "password", map[string]string{"email": email, "password": password})
}

func (c *Client) RefreshGrant(ctx context.Context, refreshToken string) (*domain.Session, error) {
	return c.grant(ctx, "refresh_token", map[string]string{"refresh_token": refreshToken})
}

func (c *Client) SignUp(ctx context.Context, email, password string, data map[string]any) (*domain.User, *domain.Session, error) {
	body, err := jsonBody(map[string]any{"email": email, "password": password, "data": data})
	if err != nil {
		return nil, nil, err
	}
	var out signUpResponse
	err = c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/auth/v1/signup",
		body:        body,
		contentType: "application/json",
	}, &out)
	if err != nil {
		return nil, nil, err
	}

	session := out.tokenResponse.toDomain()
	if session != nil {
		return session.User, session, nil
	}
	return out.userResponse.toDomain(), nil, nil
}

func (c *Client) Logout(ctx context.Context, accessToken string) error {
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/v1/logout",
		token:  accessToken,
	}, nil)
}

func (c *Client) User(ctx context.Context, accessToken string) (*domain.User, error) {
	var out userResponse
	if err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/auth/v1/user",
		token:  accessToken,
	}, &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

func (c *Client) UpdateUser(ctx context.Context, accessToken string, attrs domain.UserAttributes) (*domain.User, error) {
	body, err := jsonBody(attrs)
	if err != nil {
		return nil, err
	}
	var out userResponse
	if err := c.do(ctx, request{
		method:      http.MethodPut,
		path:        "/auth/v1/user",
		token:       accessToken,
		body:        body,
		contentType: "application/json",
	}, &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

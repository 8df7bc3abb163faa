package supabase

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"blog-backend/internal/gateway"
)

func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}

// Upload stores body at bucket/path. The acting user's token from ctx is
// used so the bucket's row level policies apply to them.
func (c *Client) Upload(ctx context.Context, bucket, path string, body io.Reader, size int64, contentType string) error {
	var token string
	if actor, ok := gateway.ActorFromContext(ctx); ok {
		token = actor.AccessToken
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if size > 0 {
		body = io.LimitReader(body, size)
	}
	return c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/storage/v1/object/" + url.PathEscape(bucket) + "/" + escapePath(path),
		token:       token,
		body:        body,
		contentType: contentType,
		header: map[string]string{
			"Cache-Control": "max-age=3600",
			"x-upsert":      "false",
		},
	}, nil)
}

// Remove deletes objects from bucket.
func (c *Client) Remove(ctx context.Context, bucket string, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	var token string
	if actor, ok := gateway.ActorFromContext(ctx); ok {
		token = actor.AccessToken
	}
	body, err := jsonBody(map[string][]string{"prefixes": paths})
	if err != nil {
		return err
	}
	return c.do(ctx, request{
		method:      http.MethodDelete,
		path:        "/storage/v1/object/" + url.PathEscape(bucket),
		token:       token,
		body:        body,
		contentType: "application/json",
	}, nil)
}

func (c *Client) publicPrefix(bucket string) string {
	return c.baseURL + "/storage/v1/object/public/" + url.PathEscape(bucket) + "/"
}

// PublicURL returns the public address of an object.
func (c *Client) PublicURL(bucket, path string) string {
	return c.publicPrefix(bucket) + escapePath(path)
}

// ObjectPath recovers the object path from a URL built by PublicURL.
func (c *Client) ObjectPath(bucket, publicURL string) (string, bool) {
	rest, ok := strings.CutPrefix(publicURL, c.publicPrefix(bucket))
	if !ok || rest == "" {
		return "", false
	}
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}
	p, err := url.PathUnescape(rest)
	if err != nil {
		return "", false
	}
	return p, true
}

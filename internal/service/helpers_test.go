package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"

	"blog-backend/internal/domain"
	"blog-backend/internal/gateway"
	"blog-backend/internal/gateway/memory"
)

const testUserID = "5f0c7a3e-8d2b-4b8e-9a43-0e6d1c2b7f10"

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

func actorCtx() context.Context {
	return gateway.WithActor(context.Background(), gateway.Actor{UserID: testUserID, AccessToken: "token"})
}

func pngUpload(name string) *domain.Upload {
	return &domain.Upload{Name: name, ContentType: "image/png", Size: int64(len(pngHeader)), Body: bytes.NewReader(pngHeader)}
}

func textUpload(name string) *domain.Upload {
	body := []byte("just some notes")
	return &domain.Upload{Name: name, ContentType: "image/png", Size: int64(len(body)), Body: bytes.NewReader(body)}
}

func newMemoryStore() *memory.Gateway {
	return memory.New(memory.Options{BaseURL: "http://storage.test"})
}

// flakyStore fails the upload numbered failAt (1-based) and, optionally,
// every Remove.
type flakyStore struct {
	gateway.ObjectStore

	mu      sync.Mutex
	uploads int
	failAt  int
	failRm  bool
	removed []string
}

var errTransport = errors.New("connection reset by peer")

func (f *flakyStore) Upload(ctx context.Context, bucket, path string, body io.Reader, size int64, contentType string) error {
	f.mu.Lock()
	f.uploads++
	n := f.uploads
	f.mu.Unlock()
	if n == f.failAt {
		return errTransport
	}
	return f.ObjectStore.Upload(ctx, bucket, path, body, size, contentType)
}

func (f *flakyStore) Remove(ctx context.Context, bucket string, paths ...string) error {
	f.mu.Lock()
	f.removed = append(f.removed, paths...)
	fail := f.failRm
	f.mu.Unlock()
	if fail {
		return &gateway.Error{Status: 500, Message: "storage unavailable"}
	}
	return f.ObjectStore.Remove(ctx, bucket, paths...)
}

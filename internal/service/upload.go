package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"blog-backend/internal/domain"
	"blog-backend/internal/gateway"
	"blog-backend/internal/logger"
	"blog-backend/internal/metrics"
	"blog-backend/internal/textutil"
)

// PartialUploadError reports blobs left in the object store by a failed
// upload batch when rollback is disabled.
type PartialUploadError struct {
	Bucket string
	Paths  []string
	Err    error
}

func (e *PartialUploadError) Error() string {
	return fmt.Sprintf("upload failed after %d file(s) were stored in %s: %v", len(e.Paths), e.Bucket, e.Err)
}

func (e *PartialUploadError) Unwrap() error {
	return e.Err
}

// preparedFile is an upload that passed validation. body replays the bytes
// consumed while sniffing.
type preparedFile struct {
	name        string
	contentType string
	size        int64
	body        io.Reader
}

// prepareImage checks that f is an image no larger than maxMB without any
// network call.
func prepareImage(f domain.Upload, maxMB int) (preparedFile, error) {
	if f.Body == nil {
		return preparedFile{}, domain.Validationf("file %q is empty", f.Name)
	}
	if f.Size > 0 && !textutil.CheckFileSize(f.Size, maxMB) {
		return preparedFile{}, domain.ErrFileTooLarge.WithDetails(map[string]any{
			"file":   f.Name,
			"max_mb": maxMB,
		})
	}
	if f.ContentType != "" && !textutil.IsImageType(f.ContentType) {
		return preparedFile{}, domain.ErrInvalidFileType.WithDetails(map[string]any{"file": f.Name})
	}

	sniffed, body, err := textutil.SniffContentType(f.Body)
	if err != nil {
		return preparedFile{}, err
	}
	if !textutil.IsImageType(sniffed) {
		return preparedFile{}, domain.ErrInvalidFileType.WithDetails(map[string]any{"file": f.Name})
	}

	return preparedFile{name: f.Name, contentType: sniffed, size: f.Size, body: body}, nil
}

// uploadBatch uploads files one after another into a single bucket and
// remembers what it stored so a failed mutation can clean up.
type uploadBatch struct {
	store    gateway.ObjectStore
	bucket   string
	rollback bool
	stored   []string
}

func newUploadBatch(store gateway.ObjectStore, bucket string, rollback bool) *uploadBatch {
	return &uploadBatch{store: store, bucket: bucket, rollback: rollback}
}

// put uploads f under dir with a unique name and returns its public URL.
func (b *uploadBatch) put(ctx context.Context, dir string, f preparedFile) (string, error) {
	objectPath := path.Join(dir, textutil.GenerateUniqueFileName(f.name))
	return b.putAt(ctx, objectPath, f)
}

// putAt uploads f at an exact object path and returns its public URL.
func (b *uploadBatch) putAt(ctx context.Context, objectPath string, f preparedFile) (string, error) {
	if err := b.store.Upload(ctx, b.bucket, objectPath, f.body, f.size, f.contentType); err != nil {
		metrics.ObserveUpload(b.bucket, metrics.ResultError, 0)
		logger.ErrorContext(ctx, "Upload failed",
			slog.String("bucket", b.bucket),
			slog.String("path", objectPath),
			slog.String("error", err.Error()))
		return "", err
	}
	metrics.ObserveUpload(b.bucket, metrics.ResultSuccess, f.size)
	b.stored = append(b.stored, objectPath)
	return b.store.PublicURL(b.bucket, objectPath), nil
}

// fail settles the batch after err. With rollback on, the stored blobs are
// removed and err is returned; otherwise err is wrapped in a
// PartialUploadError listing them.
func (b *uploadBatch) fail(ctx context.Context, err error) error {
	if len(b.stored) == 0 {
		return err
	}
	if !b.rollback {
		return &PartialUploadError{Bucket: b.bucket, Paths: append([]string(nil), b.stored...), Err: err}
	}

	// Cleanup must run even when the request context is already done.
	cleanupCtx := context.WithoutCancel(ctx)
	if rmErr := b.store.Remove(cleanupCtx, b.bucket, b.stored...); rmErr != nil {
		metrics.ObserveUploadRollback(b.bucket, metrics.ResultError)
		logger.ErrorContext(ctx, "Failed to roll back uploads",
			slog.String("bucket", b.bucket),
			slog.String("paths", strings.Join(b.stored, ",")),
			slog.String("error", rmErr.Error()))
		return errors.Join(err, &PartialUploadError{Bucket: b.bucket, Paths: b.stored, Err: rmErr})
	}
	metrics.ObserveUploadRollback(b.bucket, metrics.ResultSuccess)
	b.stored = nil
	return err
}

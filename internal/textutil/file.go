package textutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Upload size ceilings in megabytes.
const (
	MaxCoverMB      = 5
	MaxAttachmentMB = 8
	MaxAvatarMB     = 5
)

const (
	fileNameAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	sniffLen         = 3072
)

var imageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

// IsImageType reports whether a MIME type is one of the accepted image types.
func IsImageType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	_, ok := imageTypes[strings.ToLower(mediaType)]
	return ok
}

// CheckFileSize reports whether size fits under maxMB megabytes.
func CheckFileSize(size int64, maxMB int) bool {
	return size <= int64(maxMB)*1024*1024
}

// FileExt returns the lowercased extension of name without the dot, or
// "bin" when there is none.
func FileExt(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
	if ext == "" {
		return "bin"
	}
	return ext
}

// GenerateUniqueFileName builds a storage name from a millisecond timestamp
// and a random suffix, keeping only the original extension.
// "My Photo.PNG" -> "1709620000000-k3j9x2.png".
func GenerateUniqueFileName(originalName string) string {
	suffix, err := gonanoid.Generate(fileNameAlphabet, 6)
	if err != nil {
		suffix = fmt.Sprintf("%06d", time.Now().Nanosecond()%1000000)
	}
	return fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), suffix, FileExt(originalName))
}

// SniffContentType detects the MIME type of r from its leading bytes. The
// returned reader replays the full content.
func SniffContentType(r io.Reader) (string, io.Reader, error) {
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", nil, fmt.Errorf("read file header: %w", err)
	}
	buf = buf[:n]
	return mimetype.Detect(buf).String(), io.MultiReader(bytes.NewReader(buf), r), nil
}

package domain

import "io"

// Upload is a file submitted alongside a mutation.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

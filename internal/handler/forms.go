package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-backend/internal/domain"
)

// parseID reads a uuid path parameter.
func parseID(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		badRequest(c, name+" must be a valid UUID")
		return "", false
	}
	return id, true
}

func parseTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(TimeFormat, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateFormat, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parsePostFilter reads the listing query: tag, q, from, to, sort, status.
// The end of a date-only "to" bound is the end of that day.
func parsePostFilter(c *gin.Context) (domain.PostFilter, error) {
	f := domain.PostFilter{
		TagSlug: c.Query("tag"),
		Keyword: c.Query("q"),
		Sort:    domain.ParseSortOrder(c.Query("sort")),
		Status:  c.DefaultQuery("status", domain.StatusPublished),
	}
	if !domain.IsValidStatus(f.Status) {
		return f, domain.Validationf("status must be one of %s", strings.Join(domain.ValidStatuses, ", "))
	}

	from, err := parseTime(c.Query("from"))
	if err != nil {
		return f, domain.Validation("from must be a date (YYYY-MM-DD) or an RFC3339 time")
	}
	to, err := parseTime(c.Query("to"))
	if err != nil {
		return f, domain.Validation("to must be a date (YYYY-MM-DD) or an RFC3339 time")
	}
	if to != nil && len(c.Query("to")) == len(dateFormat) {
		end := to.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}
	f.StartDate, f.EndDate = from, to
	return f, nil
}

// formFiles holds the files opened from one multipart request.
type formFiles []multipart.File

func (ff formFiles) Close() {
	for _, f := range ff {
		_ = f.Close()
	}
}

func openUpload(h *multipart.FileHeader, opened *formFiles) (domain.Upload, error) {
	f, err := h.Open()
	if err != nil {
		return domain.Upload{}, err
	}
	*opened = append(*opened, f)
	return domain.Upload{
		Name:        h.Filename,
		ContentType: h.Header.Get("Content-Type"),
		Size:        h.Size,
		Body:        f,
	}, nil
}

// parsePostInput reads a multipart post form. The caller closes the
// returned files once the mutation is done.
//
// tags is repeated; when the field is absent Tags stays nil, and a single
// empty value clears the tag set. Stored files are kept when cover_url and
// existing_attachments are absent; an empty cover_url drops the cover and
// existing_attachments lists the stored attachments to keep.
func parsePostInput(c *gin.Context) (*domain.PostInput, formFiles, error) {
	if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, nil, domain.Validationf("invalid form: %v", err)
	}

	in := &domain.PostInput{
		Title:       strings.TrimSpace(c.PostForm("title")),
		Slug:        strings.TrimSpace(c.PostForm("slug")),
		Excerpt:     c.PostForm("excerpt"),
		Content:     c.PostForm("content"),
		Status:      c.PostForm("status"),
		PublishedTZ: c.PostForm("published_tz"),
	}

	if v := c.PostForm("show_attachments"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, nil, domain.Validation("show_attachments must be a boolean")
		}
		in.ShowAttachments = b
	}
	publishedAt, err := parseTime(c.PostForm("published_at"))
	if err != nil {
		return nil, nil, domain.Validation("published_at must be an RFC3339 time")
	}
	in.PublishedAt = publishedAt

	if tags, ok := c.GetPostFormArray("tags"); ok {
		in.Tags = make([]string, 0, len(tags))
		for _, t := range tags {
			if t = strings.TrimSpace(t); t != "" {
				in.Tags = append(in.Tags, t)
			}
		}
	}
	if cover, ok := c.GetPostForm("cover_url"); ok {
		cover = strings.TrimSpace(cover)
		in.CoverURL = &cover
	}
	if existing, ok := c.GetPostFormArray("existing_attachments"); ok {
		in.Attachments = make([]string, 0, len(existing))
		for _, a := range existing {
			if a = strings.TrimSpace(a); a != "" {
				in.Attachments = append(in.Attachments, a)
			}
		}
	}

	if c.Request.MultipartForm == nil {
		return in, nil, nil
	}

	var opened formFiles
	if hs := c.Request.MultipartForm.File["cover"]; len(hs) > 0 {
		u, err := openUpload(hs[0], &opened)
		if err != nil {
			opened.Close()
			return nil, nil, err
		}
		in.Cover = &u
	}
	for _, key := range []string{"attachments[]", "attachments"} {
		for _, h := range c.Request.MultipartForm.File[key] {
			u, err := openUpload(h, &opened)
			if err != nil {
				opened.Close()
				return nil, nil, err
			}
			in.AttachmentFiles = append(in.AttachmentFiles, u)
		}
	}
	return in, opened, nil
}

// readUpload opens the single file field name.
func readUpload(c *gin.Context, name string) (domain.Upload, io.Closer, error) {
	h, err := c.FormFile(name)
	if err != nil {
		return domain.Upload{}, nil, domain.Validationf("%s file is required", name)
	}
	var opened formFiles
	u, err := openUpload(h, &opened)
	if err != nil {
		return domain.Upload{}, nil, err
	}
	return u, opened[0], nil
}

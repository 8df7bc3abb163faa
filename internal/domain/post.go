package domain

import "time"

// Post statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Post represents a blog post.
type Post struct {
	ID              string     `json:"id"`
	Slug            string     `json:"slug"`
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	Excerpt         string     `json:"excerpt"`
	Status          string     `json:"status"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	PublishedTZ     string     `json:"published_tz,omitempty"`
	ShowAttachments bool       `json:"show_attachments"`
	CoverURL        *string    `json:"cover_url,omitempty"`
	Attachments     []string   `json:"attachments"`
	ReadingMinutes  int        `json:"reading_minutes"`
	Tags            []string   `json:"tags"`
	AuthorID        string     `json:"author_id"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Author   *Author   `json:"author,omitempty"`
	TagLinks []TagLink `json:"-"`
	TagsInfo []Tag     `json:"tags_info"`
}

// VisibleTo reports whether userID may read the post. Posts that are not
// published are visible only to their author; userID is empty for visitors.
func (p *Post) VisibleTo(userID string) bool {
	return p.Status == StatusPublished || (userID != "" && userID == p.AuthorID)
}

// ValidStatuses contains all valid post statuses.
var ValidStatuses = []string{StatusDraft, StatusPublished, StatusArchived}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// SortOrder selects the ordering of a post listing.
type SortOrder string

const (
	SortPublishedDesc SortOrder = "published_at_desc"
	SortPublishedAsc  SortOrder = "published_at_asc"
	SortCreatedDesc   SortOrder = "created_at_desc"
)

// ParseSortOrder maps a client value to a SortOrder. Unknown values fall
// back to SortPublishedDesc.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(s) {
	case SortPublishedAsc:
		return SortPublishedAsc
	case SortCreatedDesc:
		return SortCreatedDesc
	default:
		return SortPublishedDesc
	}
}

// PostFilter describes a post listing. Zero values mean "no filter".
type PostFilter struct {
	TagSlug   string
	Keyword   string
	StartDate *time.Time
	EndDate   *time.Time
	Sort      SortOrder
	Status    string
	AuthorID  string
}

// PostInput carries the writable fields of a post together with the files
// to upload alongside it.
type PostInput struct {
	Title           string
	Slug            string
	Excerpt         string
	Content         string
	Status          string
	PublishedAt     *time.Time
	PublishedTZ     string
	ShowAttachments bool

	// CoverURL and Attachments select which stored files an update keeps.
	// Nil keeps everything stored; an empty CoverURL drops the cover and a
	// non-nil Attachments keeps only the listed stored URLs.
	CoverURL    *string
	Attachments []string

	// Tags replaces the tag set when non-nil. An empty, non-nil slice clears it.
	Tags []string

	Cover           *Upload
	AttachmentFiles []Upload
}

package domain

import "time"

// Comment statuses. A comment starts pending (or approved when moderation
// is off) and a moderator moves it to approved or rejected.
const (
	CommentPending  = "pending"
	CommentApproved = "approved"
	CommentRejected = "rejected"
)

// Comment represents a comment on a post.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Author    *Author   `json:"author,omitempty"`
}

// CanTransition reports whether a comment may move from one status to another.
func CanTransition(from, to string) bool {
	switch from {
	case CommentPending:
		return to == CommentApproved || to == CommentRejected
	case CommentApproved:
		return to == CommentRejected
	case CommentRejected:
		return to == CommentApproved
	}
	return false
}

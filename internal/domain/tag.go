package domain

// Tag is a label attached to posts.
type Tag struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TagLink is one row of the post/tag join with its tag embedded when the
// tag could be resolved.
type TagLink struct {
	PostID string `json:"post_id"`
	TagID  string `json:"tag_id"`
	Tag    *Tag   `json:"tag,omitempty"`
}

// ResolveTags projects join rows onto their tags, keeping association order
// and dropping entries whose tag is missing or incomplete.
func ResolveTags(links []TagLink) []Tag {
	tags := make([]Tag, 0, len(links))
	for _, link := range links {
		if link.Tag == nil || link.Tag.ID == "" || link.Tag.Name == "" {
			continue
		}
		tags = append(tags, *link.Tag)
	}
	return tags
}

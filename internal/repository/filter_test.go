package repository

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestFilter_Where(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		build    func(f *filter)
		start    int
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "empty",
			build:    func(f *filter) {},
			start:    1,
			wantSQL:  "",
			wantArgs: nil,
		},
		{
			name:     "status only",
			build:    func(f *filter) { f.Eq("p.status", "published") },
			start:    1,
			wantSQL:  "WHERE p.status = $1",
			wantArgs: []any{"published"},
		},
		{
			name: "keyword across columns",
			build: func(f *filter) {
				f.Eq("p.status", "published").ILikeAny("go", "p.title", "p.content")
			},
			start:    1,
			wantSQL:  "WHERE p.status = $1 AND (p.title ILIKE $2 OR p.content ILIKE $3)",
			wantArgs: []any{"published", "%go%", "%go%"},
		},
		{
			name: "tag and date range numbered from offset",
			build: func(f *filter) {
				f.Contains("p.tags", "uuid", "t1").Gte("p.published_at", from).Lte("p.published_at", from)
			},
			start:    3,
			wantSQL:  "WHERE p.tags @> ARRAY[$3::uuid] AND p.published_at >= $4 AND p.published_at <= $5",
			wantArgs: []any{"t1", from, from},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &filter{}
			tt.build(f)
			gotSQL, gotArgs := f.Where(tt.start)
			if diff := cmp.Diff(tt.wantSQL, gotSQL); diff != "" {
				t.Errorf("sql mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantArgs, gotArgs); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEscapeLike(t *testing.T) {
	tests := map[string]string{
		"plain":    "plain",
		"100%":     `100\%`,
		"snake_ok": `snake\_ok`,
		`a\b`:      `a\\b`,
	}
	for in, want := range tests {
		if got := escapeLike(in); got != want {
			t.Errorf("escapeLike(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFilter_ILikeAnyNoColumns(t *testing.T) {
	f := &filter{}
	f.ILikeAny("x")
	if sql, _ := f.Where(1); sql != "" {
		t.Errorf("Where() = %q, want empty", sql)
	}
}

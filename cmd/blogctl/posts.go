package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"blog-backend/internal/config"
	"blog-backend/internal/domain"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/internal/repository"
	"blog-backend/internal/service"
	"blog-backend/internal/validator"
)

var postsFlags struct {
	status string
	tag    string
	query  string
	sort   string
	author string
}

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Inspect posts",
}

var postsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts with the same filters as the listing API",
	Args:  cobra.NoArgs,
	RunE:  runPostsList,
}

func init() {
	f := postsListCmd.Flags()
	f.StringVar(&postsFlags.status, "status", domain.StatusPublished, "Post status ("+strings.Join(domain.ValidStatuses, ", ")+")")
	f.StringVar(&postsFlags.tag, "tag", "", "Tag slug")
	f.StringVarP(&postsFlags.query, "query", "q", "", "Keyword matched against title and content")
	f.StringVar(&postsFlags.sort, "sort", string(domain.SortPublishedDesc), "Sort order")
	f.StringVar(&postsFlags.author, "author", "", "Author id")
	postsCmd.AddCommand(postsListCmd)
}

func runPostsList(cmd *cobra.Command, args []string) error {
	if !domain.IsValidStatus(postsFlags.status) {
		return fmt.Errorf("--status must be one of %s", strings.Join(domain.ValidStatuses, ", "))
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx := cmd.Context()
	pool, err := database.NewPostgres(ctx, database.PoolConfig{URL: cfg.DatabaseURL(), MaxConns: 2})
	if err != nil {
		return err
	}
	defer pool.Close()

	// Listings never touch object storage.
	posts := service.NewPostService(
		repository.NewPostgresPostRepository(pool),
		repository.NewPostgresTagRepository(pool),
		nil,
		validator.NewValidator(),
		service.PostOptions{TagPolicy: service.TagPolicy(cfg.TagFilterPolicy)},
	)
	list, err := posts.ListPosts(ctx, domain.PostFilter{
		TagSlug:  postsFlags.tag,
		Keyword:  postsFlags.query,
		Sort:     domain.ParseSortOrder(postsFlags.sort),
		Status:   postsFlags.status,
		AuthorID: postsFlags.author,
	})
	if err != nil {
		return err
	}
	return printPosts(cmd, list)
}

func printPosts(cmd *cobra.Command, posts []domain.Post) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PUBLISHED\tSTATUS\tSLUG\tTAGS\tTITLE")
	for _, p := range posts {
		published := "-"
		if p.PublishedAt != nil {
			published = p.PublishedAt.Format(time.DateOnly)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", published, p.Status, p.Slug, strings.Join(p.Tags, ","), p.Title)
	}
	return w.Flush()
}

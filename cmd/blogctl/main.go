// Command blogctl is the operator CLI of the blog backend: schema
// migrations, post listings straight from the database and slug previews.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"blog-backend/internal/config"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/internal/logger"
	"blog-backend/internal/textutil"
)

var (
	migrationsDir string
	logLevel      string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:           "blogctl",
	Short:         "Operate the blog backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Configure(logLevel)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or revert database migrations",
	Long: `Apply or revert every migration in the migrations directory.

Connection settings come from the same DB_* environment variables the
server reads.`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd, database.Up)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert all migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd, database.Down)
	},
}

var slugCmd = &cobra.Command{
	Use:   "slug <text>",
	Short: "Print the slug a post title would get",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]
		for _, a := range args[1:] {
			title += " " + a
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), textutil.SlugifyTransliterated(title))
		return err
	},
}

func runMigrate(cmd *cobra.Command, d database.Direction) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := database.Migrate(cfg.DatabaseURL(), migrationsDir, d); err != nil {
		return err
	}
	name := "up"
	if d == database.Down {
		name = "down"
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "migrations %s: done\n", name)
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	migrateCmd.PersistentFlags().StringVar(&migrationsDir, "dir", "migrations", "Migrations directory")

	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(postsCmd)
	rootCmd.AddCommand(slugCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

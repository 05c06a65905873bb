// Copyright (c) 2026 YaMDB. All rights reserved.

// Command dbload imports fixture data from CSV files into the database.
//
// It expects the conventional fixture set in the directory given by -dir:
//
//	category.csv    id,name,slug
//	genre.csv       id,name,slug
//	users.csv       id,username,email,role,bio,first_name,last_name
//	titles.csv      id,name,year,category
//	genre_title.csv id,title_id,genre_id
//	review.csv      id,title_id,text,author,score,pub_date
//	comments.csv    id,review_id,text,author,pub_date
//
// Files are loaded in dependency order so foreign keys resolve; primary keys
// from the CSVs are preserved and the serial sequences are bumped afterwards.
// Missing files are skipped with a warning, which keeps partial fixture sets
// usable.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/yamdb/yamdb/internal/platform/database/schema"
	"github.com/yamdb/yamdb/internal/platform/migration"
	pgstore "github.com/yamdb/yamdb/internal/platform/postgres"
	"github.com/yamdb/yamdb/internal/platform/sec"
)

func main() {
	dir := flag.String("dir", "./data/fixtures", "directory containing the fixture CSV files")
	skipMigrate := flag.Bool("skip-migrate", false, "do not run migrations before loading")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", "yamdb-dbload"))

	cfg, err := loadConfig()
	must(log, err, "load configuration")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	if !*skipMigrate {
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")
	}

	loader := &fixtureLoader{db: pool, dir: *dir, log: log}

	// Classifiers and users first, then titles, then the social graph.
	steps := []struct {
		file string
		load func(context.Context, *csv.Reader) (int, error)
	}{
		{"category.csv", loader.categories},
		{"genre.csv", loader.genres},
		{"users.csv", loader.users},
		{"titles.csv", loader.titles},
		{"genre_title.csv", loader.titleGenres},
		{"review.csv", loader.reviews},
		{"comments.csv", loader.comments},
	}

	for _, step := range steps {
		count, err := loader.loadFile(ctx, step.file, step.load)
		must(log, err, "load "+step.file)
		log.Info("fixture_loaded", slog.String("file", step.file), slog.Int("rows", count))
	}

	must(log, loader.resetSequences(ctx), "reset sequences")

	log.Info("import_complete")
}

// loaderConfig is the narrow slice of environment the loader needs.
// Requiring the full API configuration here would force JWT keys and Redis
// onto a one-shot import job.
type loaderConfig struct {
	DatabaseURL   string `env:"DATABASE_URL,required"`
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`
}

func loadConfig() (*loaderConfig, error) {
	_ = godotenv.Load()

	cfg := &loaderConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("dbload: failed to parse environment variables: %w", err)
	}
	return cfg, nil
}

// must logs a structured fatal error and terminates the process if err is non-nil.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("load failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}

// # Loader

type fixtureLoader struct {
	db  *pgxpool.Pool
	dir string
	log *slog.Logger
}

// loadFile opens a fixture file and feeds it to the given loader.
// A missing file is not an error.
func (loader *fixtureLoader) loadFile(ctx context.Context, name string, load func(context.Context, *csv.Reader) (int, error)) (int, error) {
	file, err := os.Open(filepath.Join(loader.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			loader.log.Warn("fixture_missing", slog.String("file", name))
			return 0, nil
		}
		return 0, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	return load(ctx, reader)
}

// record wraps a CSV row with header-based field access.
type record struct {
	header map[string]int
	row    []string
}

func (r record) get(field string) string {
	index, ok := r.header[field]
	if !ok || index >= len(r.row) {
		return ""
	}
	return r.row[index]
}

// forEach reads the header line, then invokes fn per data row.
func forEach(reader *csv.Reader, fn func(record) error) (int, error) {
	head, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	header := make(map[string]int, len(head))
	for index, name := range head {
		header[name] = index
	}

	count := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("row %d: %w", count+1, err)
		}
		if err := fn(record{header: header, row: row}); err != nil {
			return count, fmt.Errorf("row %d: %w", count+1, err)
		}
		count++
	}
}

// # Per-file loaders

func (loader *fixtureLoader) categories(ctx context.Context, reader *csv.Reader) (int, error) {
	c := schema.ContentCategory
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		c.Table, c.ID, c.Name, c.Slug)

	return forEach(reader, func(row record) error {
		_, err := loader.db.Exec(ctx, query, row.get("id"), row.get("name"), row.get("slug"))
		return err
	})
}

func (loader *fixtureLoader) genres(ctx context.Context, reader *csv.Reader) (int, error) {
	g := schema.ContentGenre
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		g.Table, g.ID, g.Name, g.Slug)

	return forEach(reader, func(row record) error {
		_, err := loader.db.Exec(ctx, query, row.get("id"), row.get("name"), row.get("slug"))
		return err
	})
}

func (loader *fixtureLoader) users(ctx context.Context, reader *csv.Reader) (int, error) {
	u := schema.UserAccount
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)`,
		u.Table, u.ID, u.Username, u.Email, u.Role, u.Bio, u.FirstName, u.LastName, u.IsConfirmed)

	return forEach(reader, func(row record) error {
		role := row.get("role")
		if role == "" || !sec.UserRole(role).Valid() {
			role = string(sec.RoleUser)
		}
		_, err := loader.db.Exec(ctx, query,
			row.get("id"), row.get("username"), row.get("email"), role,
			row.get("bio"), row.get("first_name"), row.get("last_name"),
		)
		return err
	})
}

func (loader *fixtureLoader) titles(ctx context.Context, reader *csv.Reader) (int, error) {
	t := schema.ContentTitle
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)`,
		t.Table, t.ID, t.Name, t.Year, t.CategoryID)

	return forEach(reader, func(row record) error {
		_, err := loader.db.Exec(ctx, query,
			row.get("id"), row.get("name"), row.get("year"), nullable(row.get("category")))
		return err
	})
}

func (loader *fixtureLoader) titleGenres(ctx context.Context, reader *csv.Reader) (int, error) {
	tg := schema.ContentTitleGenre
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		tg.Table, tg.ID, tg.TitleID, tg.GenreID)

	return forEach(reader, func(row record) error {
		_, err := loader.db.Exec(ctx, query,
			row.get("id"), row.get("title_id"), row.get("genre_id"))
		return err
	})
}

func (loader *fixtureLoader) reviews(ctx context.Context, reader *csv.Reader) (int, error) {
	r := schema.SocialReview
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		r.Table, r.ID, r.TitleID, r.AuthorID, r.Text, r.Score, r.PubDate)

	return forEach(reader, func(row record) error {
		published, err := parsePubDate(row.get("pub_date"))
		if err != nil {
			return err
		}
		_, err = loader.db.Exec(ctx, query,
			row.get("id"), row.get("title_id"), row.get("author"),
			row.get("text"), row.get("score"), published)
		return err
	})
}

func (loader *fixtureLoader) comments(ctx context.Context, reader *csv.Reader) (int, error) {
	c := schema.SocialComment
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)`,
		c.Table, c.ID, c.ReviewID, c.AuthorID, c.Text, c.PubDate)

	return forEach(reader, func(row record) error {
		published, err := parsePubDate(row.get("pub_date"))
		if err != nil {
			return err
		}
		_, err = loader.db.Exec(ctx, query,
			row.get("id"), row.get("review_id"), row.get("author"),
			row.get("text"), published)
		return err
	})
}

// resetSequences bumps each serial sequence past the imported primary keys so
// subsequent API inserts do not collide with fixture rows.
func (loader *fixtureLoader) resetSequences(ctx context.Context) error {
	tables := []string{
		schema.UserAccount.Table,
		schema.ContentCategory.Table,
		schema.ContentGenre.Table,
		schema.ContentTitle.Table,
		schema.ContentTitleGenre.Table,
		schema.SocialReview.Table,
		schema.SocialComment.Table,
	}

	for _, table := range tables {
		query := fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE(MAX(id), 1)) FROM %s`,
			table, table)
		if _, err := loader.db.Exec(ctx, query); err != nil {
			return fmt.Errorf("reset sequence for %s: %w", table, err)
		}
	}
	return nil
}

// # Field helpers

// nullable converts an empty CSV field to SQL NULL.
func nullable(value string) any {
	if value == "" {
		return nil
	}
	return value
}

// parsePubDate accepts the RFC3339 timestamps used by the fixture set.
func parsePubDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC(), nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse pub_date %q: %w", value, err)
	}
	return parsed, nil
}

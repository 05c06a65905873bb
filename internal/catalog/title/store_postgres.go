// Copyright (c) 2026 YaMDB. All rights reserved.

package title

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yamdb/yamdb/internal/catalog/category"
	"github.com/yamdb/yamdb/internal/catalog/genre"
	"github.com/yamdb/yamdb/internal/platform/database/schema"
	"github.com/yamdb/yamdb/internal/platform/dberr"
	"github.com/yamdb/yamdb/pkg/pagination"
)

// PostgresRepository implements Repository using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres-backed title Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// buildFilter translates a Filter into a WHERE clause and its arguments.
func buildFilter(filter Filter) (string, []any) {
	t := schema.ContentTitle
	c := schema.ContentCategory
	g := schema.ContentGenre
	tg := schema.ContentTitleGenre

	conditions := []string{}
	args := []any{}

	if filter.CategorySlug != "" {
		args = append(args, filter.CategorySlug)
		conditions = append(conditions, fmt.Sprintf("c.%s = $%d", c.Slug, len(args)))
	}
	if len(filter.GenreSlugs) > 0 {
		args = append(args, filter.GenreSlugs)
		conditions = append(conditions, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM %s tg JOIN %s g ON g.%s = tg.%s WHERE tg.%s = t.%s AND g.%s = ANY($%d))`,
			tg.Table, g.Table, g.ID, tg.GenreID, tg.TitleID, t.ID, g.Slug, len(args)))
	}
	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		conditions = append(conditions, fmt.Sprintf("t.%s ILIKE $%d", t.Name, len(args)))
	}
	if filter.Year != 0 {
		args = append(args, filter.Year)
		conditions = append(conditions, fmt.Sprintf("t.%s = $%d", t.Year, len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// selectClause is the shared SELECT for hydrated title rows: the title
// itself, its nullable category, and the review score average.
func selectClause() string {
	t := schema.ContentTitle
	c := schema.ContentCategory
	r := schema.SocialReview

	return fmt.Sprintf(`
		SELECT t.%s, t.%s, t.%s, t.%s, t.%s, t.%s,
		       c.%s, c.%s,
		       ratings.rating
		FROM %s t
		LEFT JOIN %s c ON t.%s = c.%s
		LEFT JOIN (
			SELECT %s, ROUND(AVG(%s)::numeric, 2)::float8 AS rating
			FROM %s GROUP BY %s
		) ratings ON ratings.%s = t.%s`,
		t.ID, t.Name, t.Year, t.Description, t.CategoryID, t.CreatedAt,
		c.Name, c.Slug,
		t.Table,
		c.Table, t.CategoryID, c.ID,
		r.TitleID, r.Score,
		r.Table, r.TitleID,
		r.TitleID, t.ID,
	)
}

// scanTitle hydrates a Title from a selectClause row.
func scanTitle(row interface{ Scan(...any) error }) (*Title, error) {
	title := &Title{Genres: make([]genre.Genre, 0)}
	var categoryName, categorySlug *string

	err := row.Scan(
		&title.ID, &title.Name, &title.Year, &title.Description, &title.CategoryID, &title.CreatedAt,
		&categoryName, &categorySlug,
		&title.Rating,
	)
	if err != nil {
		return nil, err
	}

	if title.CategoryID != nil && categoryName != nil && categorySlug != nil {
		title.Category = &category.Category{
			ID:   *title.CategoryID,
			Name: *categoryName,
			Slug: *categorySlug,
		}
	}

	return title, nil
}

func (repository *PostgresRepository) List(context context.Context, params pagination.Params, filter Filter) ([]*Title, int, error) {
	t := schema.ContentTitle
	c := schema.ContentCategory

	where, args := buildFilter(filter)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s t LEFT JOIN %s c ON t.%s = c.%s %s`,
		t.Table, c.Table, t.CategoryID, c.ID, where)
	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_titles")
	}

	query := fmt.Sprintf(`%s %s ORDER BY t.%s ASC, t.%s ASC LIMIT $%d OFFSET $%d`,
		selectClause(), where, t.Name, t.ID, len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_titles")
	}
	defer rows.Close()

	titles := make([]*Title, 0)
	for rows.Next() {
		title, err := scanTitle(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_title")
		}
		titles = append(titles, title)
	}
	rows.Close()

	if err := repository.attachGenres(context, titles); err != nil {
		return nil, 0, err
	}

	return titles, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Title, error) {
	query := fmt.Sprintf(`%s WHERE t.%s = $1`, selectClause(), schema.ContentTitle.ID)

	title, err := scanTitle(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_title_by_id")
	}

	if err := repository.attachGenres(context, []*Title{title}); err != nil {
		return nil, err
	}

	return title, nil
}

// attachGenres bulk-loads the genres of the given titles in one query.
func (repository *PostgresRepository) attachGenres(context context.Context, titles []*Title) error {
	if len(titles) == 0 {
		return nil
	}

	tg := schema.ContentTitleGenre
	g := schema.ContentGenre

	byID := make(map[int64]*Title, len(titles))
	ids := make([]int64, 0, len(titles))
	for _, title := range titles {
		byID[title.ID] = title
		ids = append(ids, title.ID)
	}

	query := fmt.Sprintf(`
		SELECT tg.%s, g.%s, g.%s, g.%s
		FROM %s tg
		JOIN %s g ON g.%s = tg.%s
		WHERE tg.%s = ANY($1)
		ORDER BY g.%s ASC`,
		tg.TitleID, g.ID, g.Name, g.Slug,
		tg.Table,
		g.Table, g.ID, tg.GenreID,
		tg.TitleID,
		g.Name,
	)

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return dberr.Wrap(err, "list_title_genres")
	}
	defer rows.Close()

	for rows.Next() {
		var titleID int64
		item := genre.Genre{}
		if err := rows.Scan(&titleID, &item.ID, &item.Name, &item.Slug); err != nil {
			return dberr.Wrap(err, "scan_title_genre")
		}
		if title, ok := byID[titleID]; ok {
			title.Genres = append(title.Genres, item)
		}
	}

	return nil
}

func (repository *PostgresRepository) Create(context context.Context, title *Title, genreIDs []int64) error {
	t := schema.ContentTitle

	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_title")
	}
	defer func() { _ = tx.Rollback(context) }()

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s`,
		t.Table, t.Name, t.Year, t.Description, t.CategoryID,
		t.ID, t.CreatedAt,
	)
	err = tx.QueryRow(context, query,
		title.Name, title.Year, title.Description, title.CategoryID,
	).Scan(&title.ID, &title.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_title")
	}

	if err := insertGenreLinks(context, tx, title.ID, genreIDs); err != nil {
		return err
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_create_title")
	}
	return nil
}

func (repository *PostgresRepository) Update(context context.Context, title *Title, genreIDs []int64, replaceGenres bool) error {
	t := schema.ContentTitle
	tg := schema.ContentTitleGenre

	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_update_title")
	}
	defer func() { _ = tx.Rollback(context) }()

	query := fmt.Sprintf(`
		UPDATE %s SET %s = $1, %s = $2, %s = $3, %s = $4 WHERE %s = $5`,
		t.Table, t.Name, t.Year, t.Description, t.CategoryID, t.ID,
	)
	tag, err := tx.Exec(context, query,
		title.Name, title.Year, title.Description, title.CategoryID, title.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "update_title")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	if replaceGenres {
		deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, tg.Table, tg.TitleID)
		if _, err := tx.Exec(context, deleteQuery, title.ID); err != nil {
			return dberr.Wrap(err, "clear_title_genres")
		}
		if err := insertGenreLinks(context, tx, title.ID, genreIDs); err != nil {
			return err
		}
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_update_title")
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	t := schema.ContentTitle
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_title")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// insertGenreLinks creates the join rows for a title inside the transaction.
func insertGenreLinks(context context.Context, tx pgx.Tx, titleID int64, genreIDs []int64) error {
	tg := schema.ContentTitleGenre
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		tg.Table, tg.TitleID, tg.GenreID)

	for _, genreID := range genreIDs {
		if _, err := tx.Exec(context, query, titleID, genreID); err != nil {
			return dberr.Wrap(err, "link_title_genre")
		}
	}
	return nil
}

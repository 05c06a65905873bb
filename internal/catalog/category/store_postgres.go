// Copyright (c) 2026 YaMDB. All rights reserved.

package category

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yamdb/yamdb/internal/platform/database/schema"
	"github.com/yamdb/yamdb/internal/platform/dberr"
	"github.com/yamdb/yamdb/pkg/pagination"
)

// PostgresRepository implements Repository using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres-backed category Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context, params pagination.Params, search string) ([]*Category, int, error) {
	t := schema.ContentCategory

	where := ""
	args := []any{}
	if search != "" {
		where = fmt.Sprintf("WHERE %s ILIKE $1", t.Name)
		args = append(args, "%"+search+"%")
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, t.Table, where)
	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_categories")
	}

	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s %s ORDER BY %s ASC LIMIT $%d OFFSET $%d`,
		t.ID, t.Name, t.Slug, t.CreatedAt, t.Table, where, t.Name, len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	categories := make([]*Category, 0)
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, c)
	}

	return categories, total, nil
}

func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Category, error) {
	t := schema.ContentCategory
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		t.ID, t.Name, t.Slug, t.CreatedAt, t.Table, t.Slug)

	c := &Category{}
	err := repository.db.QueryRow(context, query, slug).Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "find_category_by_slug")
	}
	return c, nil
}

func (repository *PostgresRepository) Create(context context.Context, category *Category) error {
	t := schema.ContentCategory
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) RETURNING %s, %s`,
		t.Table, t.Name, t.Slug, t.ID, t.CreatedAt)

	err := repository.db.QueryRow(context, query, category.Name, category.Slug).
		Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_category")
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, slug string) error {
	t := schema.ContentCategory
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.Slug)

	tag, err := repository.db.Exec(context, query, slug)
	if err != nil {
		return dberr.Wrap(err, "delete_category")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

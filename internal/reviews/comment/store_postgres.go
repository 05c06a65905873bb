// Copyright (c) 2026 YaMDB. All rights reserved.

package comment

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

// NewPostgresRepository creates a new Postgres-backed comment Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// commentSelect joins the review (for title scoping) and the author account.
func commentSelect() string {
	c := schema.SocialComment
	r := schema.SocialReview
	u := schema.UserAccount

	return fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s, u.%s, c.%s, c.%s
		FROM %s c
		JOIN %s r ON r.%s = c.%s
		JOIN %s u ON u.%s = c.%s`,
		c.ID, c.ReviewID, c.AuthorID, u.Username, c.Text, c.PubDate,
		c.Table,
		r.Table, r.ID, c.ReviewID,
		u.Table, u.ID, c.AuthorID,
	)
}

func scanComment(row interface{ Scan(...any) error }) (*Comment, error) {
	comment := &Comment{}
	err := row.Scan(
		&comment.ID, &comment.ReviewID, &comment.AuthorID, &comment.Author,
		&comment.Text, &comment.PubDate,
	)
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (repository *PostgresRepository) ReviewExists(context context.Context, titleID, reviewID int64) (bool, error) {
	r := schema.SocialReview
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)`,
		r.Table, r.ID, r.TitleID)

	var exists bool
	if err := repository.db.QueryRow(context, query, reviewID, titleID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "check_review_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) ListByReview(context context.Context, titleID, reviewID int64, params pagination.Params) ([]*Comment, int, error) {
	c := schema.SocialComment
	r := schema.SocialReview

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*) FROM %s c
		JOIN %s r ON r.%s = c.%s
		WHERE c.%s = $1 AND r.%s = $2`,
		c.Table, r.Table, r.ID, c.ReviewID, c.ReviewID, r.TitleID)
	var total int
	if err := repository.db.QueryRow(context, countQuery, reviewID, titleID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_comments")
	}

	query := fmt.Sprintf(`%s WHERE c.%s = $1 AND r.%s = $2 ORDER BY c.%s DESC, c.%s DESC LIMIT $3 OFFSET $4`,
		commentSelect(), c.ReviewID, r.TitleID, c.PubDate, c.ID)

	rows, err := repository.db.Query(context, query, reviewID, titleID, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_comments")
	}
	defer rows.Close()

	comments := make([]*Comment, 0)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_comment")
		}
		comments = append(comments, comment)
	}

	return comments, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, titleID, reviewID, commentID int64) (*Comment, error) {
	c := schema.SocialComment
	r := schema.SocialReview
	query := fmt.Sprintf(`%s WHERE c.%s = $1 AND c.%s = $2 AND r.%s = $3`,
		commentSelect(), c.ID, c.ReviewID, r.TitleID)

	comment, err := scanComment(repository.db.QueryRow(context, query, commentID, reviewID, titleID))
	if err != nil {
		return nil, dberr.Wrap(err, "find_comment_by_id")
	}
	return comment, nil
}

func (repository *PostgresRepository) Create(context context.Context, comment *Comment) error {
	c := schema.SocialComment
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s`,
		c.Table, c.ReviewID, c.AuthorID, c.Text,
		c.ID, c.PubDate,
	)

	err := repository.db.QueryRow(context, query,
		comment.ReviewID, comment.AuthorID, comment.Text,
	).Scan(&comment.ID, &comment.PubDate)
	if err != nil {
		return dberr.Wrap(err, "create_comment")
	}
	return nil
}

func (repository *PostgresRepository) Update(context context.Context, comment *Comment) error {
	c := schema.SocialComment
	query := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE %s = $2`, c.Table, c.Text, c.ID)

	tag, err := repository.db.Exec(context, query, comment.Text, comment.ID)
	if err != nil {
		return dberr.Wrap(err, "update_comment")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, commentID int64) error {
	c := schema.SocialComment
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, c.Table, c.ID)

	tag, err := repository.db.Exec(context, query, commentID)
	if err != nil {
		return dberr.Wrap(err, "delete_comment")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

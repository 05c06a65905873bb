// Copyright (c) 2026 YaMDB. All rights reserved.

package review

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

// NewPostgresRepository creates a new Postgres-backed review Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// reviewSelect joins the author account so responses can show the username.
func reviewSelect() string {
	r := schema.SocialReview
	u := schema.UserAccount

	return fmt.Sprintf(`
		SELECT r.%s, r.%s, r.%s, u.%s, r.%s, r.%s, r.%s
		FROM %s r
		JOIN %s u ON u.%s = r.%s`,
		r.ID, r.TitleID, r.AuthorID, u.Username, r.Text, r.Score, r.PubDate,
		r.Table,
		u.Table, u.ID, r.AuthorID,
	)
}

func scanReview(row interface{ Scan(...any) error }) (*Review, error) {
	review := &Review{}
	err := row.Scan(
		&review.ID, &review.TitleID, &review.AuthorID, &review.Author,
		&review.Text, &review.Score, &review.PubDate,
	)
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (repository *PostgresRepository) TitleExists(context context.Context, titleID int64) (bool, error) {
	t := schema.ContentTitle
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, t.Table, t.ID)

	var exists bool
	if err := repository.db.QueryRow(context, query, titleID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "check_title_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) ListByTitle(context context.Context, titleID int64, params pagination.Params) ([]*Review, int, error) {
	r := schema.SocialReview

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, r.Table, r.TitleID)
	var total int
	if err := repository.db.QueryRow(context, countQuery, titleID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_reviews")
	}

	query := fmt.Sprintf(`%s WHERE r.%s = $1 ORDER BY r.%s DESC, r.%s DESC LIMIT $2 OFFSET $3`,
		reviewSelect(), r.TitleID, r.PubDate, r.ID)

	rows, err := repository.db.Query(context, query, titleID, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_reviews")
	}
	defer rows.Close()

	reviews := make([]*Review, 0)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_review")
		}
		reviews = append(reviews, review)
	}

	return reviews, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, titleID, reviewID int64) (*Review, error) {
	r := schema.SocialReview
	query := fmt.Sprintf(`%s WHERE r.%s = $1 AND r.%s = $2`, reviewSelect(), r.TitleID, r.ID)

	review, err := scanReview(repository.db.QueryRow(context, query, titleID, reviewID))
	if err != nil {
		return nil, dberr.Wrap(err, "find_review_by_id")
	}
	return review, nil
}

func (repository *PostgresRepository) FindByAuthor(context context.Context, titleID, authorID int64) (*Review, error) {
	r := schema.SocialReview
	query := fmt.Sprintf(`%s WHERE r.%s = $1 AND r.%s = $2`, reviewSelect(), r.TitleID, r.AuthorID)

	review, err := scanReview(repository.db.QueryRow(context, query, titleID, authorID))
	if err != nil {
		return nil, dberr.Wrap(err, "find_review_by_author")
	}
	return review, nil
}

func (repository *PostgresRepository) Create(context context.Context, review *Review) error {
	r := schema.SocialReview
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s`,
		r.Table, r.TitleID, r.AuthorID, r.Text, r.Score,
		r.ID, r.PubDate,
	)

	err := repository.db.QueryRow(context, query,
		review.TitleID, review.AuthorID, review.Text, review.Score,
	).Scan(&review.ID, &review.PubDate)
	if err != nil {
		// The unique (titleid, authorid) constraint backs the
		// one-review-per-title rule; surface it untranslated so the
		// service can attach a domain message.
		if dberr.IsUniqueViolation(err) {
			return err
		}
		return dberr.Wrap(err, "create_review")
	}
	return nil
}

func (repository *PostgresRepository) Update(context context.Context, review *Review) error {
	r := schema.SocialReview
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = $2 WHERE %s = $3`,
		r.Table, r.Text, r.Score, r.ID)

	tag, err := repository.db.Exec(context, query, review.Text, review.Score, review.ID)
	if err != nil {
		return dberr.Wrap(err, "update_review")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, reviewID int64) error {
	r := schema.SocialReview
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, r.Table, r.ID)

	tag, err := repository.db.Exec(context, query, reviewID)
	if err != nil {
		return dberr.Wrap(err, "delete_review")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

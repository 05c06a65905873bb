// Copyright (c) 2026 YaMDB. All rights reserved.

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yamdb/yamdb/internal/platform/database/schema"
	"github.com/yamdb/yamdb/internal/platform/dberr"
)

// PostgresUserRepository implements UserRepository using pgx.
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

// NewPostgresUserRepository creates a new Postgres-backed UserRepository.
func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// userColumns is the canonical SELECT column list for scanUser.
func userColumns() string {
	t := schema.UserAccount
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Username, t.Email, t.FirstName, t.LastName,
		t.Bio, t.Role, t.IsSuperuser, t.IsConfirmed, t.CreatedAt)
}

// scanUser hydrates a User from a row produced by userColumns.
func scanUser(row interface{ Scan(...any) error }) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.FirstName, &user.LastName,
		&user.Bio, &user.Role, &user.IsSuperuser, &user.IsConfirmed, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (repository *PostgresUserRepository) FindByID(context context.Context, id int64) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		userColumns(), schema.UserAccount.Table, schema.UserAccount.ID)

	user, err := scanUser(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_id")
	}
	return user, nil
}

func (repository *PostgresUserRepository) FindByUsername(context context.Context, username string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		userColumns(), schema.UserAccount.Table, schema.UserAccount.Username)

	user, err := scanUser(repository.db.QueryRow(context, query, username))
	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_username")
	}
	return user, nil
}

func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		userColumns(), schema.UserAccount.Table, schema.UserAccount.Email)

	user, err := scanUser(repository.db.QueryRow(context, query, email))
	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_email")
	}
	return user, nil
}

func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	t := schema.UserAccount
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s, %s`,
		t.Table, t.Username, t.Email, t.FirstName, t.LastName,
		t.Bio, t.Role, t.IsSuperuser, t.IsConfirmed,
		t.ID, t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		user.Username, user.Email, user.FirstName, user.LastName,
		user.Bio, user.Role, user.IsSuperuser, user.IsConfirmed,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_user")
	}
	return nil
}

func (repository *PostgresUserRepository) MarkConfirmed(context context.Context, id int64) error {
	t := schema.UserAccount
	query := fmt.Sprintf(`UPDATE %s SET %s = true WHERE %s = $1`,
		t.Table, t.IsConfirmed, t.ID)

	if _, err := repository.db.Exec(context, query, id); err != nil {
		return dberr.Wrap(err, "mark_user_confirmed")
	}
	return nil
}

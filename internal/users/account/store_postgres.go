// Copyright (c) 2026 YaMDB. All rights reserved.

package account

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yamdb/yamdb/internal/platform/database/schema"
	"github.com/yamdb/yamdb/internal/platform/dberr"
	"github.com/yamdb/yamdb/internal/users/auth"
	"github.com/yamdb/yamdb/pkg/pagination"
)

// PostgresRepository implements Repository using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres-backed account Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func accountColumns(alias string) string {
	t := schema.UserAccount
	return fmt.Sprintf("%[1]s%s, %[1]s%s, %[1]s%s, %[1]s%s, %[1]s%s, %[1]s%s, %[1]s%s, %[1]s%s, %[1]s%s, %[1]s%s",
		alias,
		t.ID, t.Username, t.Email, t.FirstName, t.LastName,
		t.Bio, t.Role, t.IsSuperuser, t.IsConfirmed, t.CreatedAt)
}

func scanAccount(row interface{ Scan(...any) error }) (*auth.User, error) {
	user := &auth.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.FirstName, &user.LastName,
		&user.Bio, &user.Role, &user.IsSuperuser, &user.IsConfirmed, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (repository *PostgresRepository) List(context context.Context, params pagination.Params, search string) ([]*auth.User, int, error) {
	t := schema.UserAccount

	where := ""
	args := []any{}
	if search != "" {
		where = fmt.Sprintf("WHERE %s ILIKE $1", t.Username)
		args = append(args, "%"+search+"%")
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, t.Table, where)
	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_accounts")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s ASC LIMIT $%d OFFSET $%d`,
		accountColumns(""), t.Table, where, t.Username, len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_accounts")
	}
	defer rows.Close()

	users := make([]*auth.User, 0)
	for rows.Next() {
		user, err := scanAccount(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_account")
		}
		users = append(users, user)
	}

	return users, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*auth.User, error) {
	t := schema.UserAccount
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		accountColumns(""), t.Table, t.ID)

	user, err := scanAccount(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_account_by_id")
	}
	return user, nil
}

func (repository *PostgresRepository) FindByUsername(context context.Context, username string) (*auth.User, error) {
	t := schema.UserAccount
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		accountColumns(""), t.Table, t.Username)

	user, err := scanAccount(repository.db.QueryRow(context, query, username))
	if err != nil {
		return nil, dberr.Wrap(err, "find_account_by_username")
	}
	return user, nil
}

func (repository *PostgresRepository) Create(context context.Context, user *auth.User) error {
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
		return dberr.Wrap(err, "create_account")
	}
	return nil
}

func (repository *PostgresRepository) Update(context context.Context, user *auth.User) error {
	t := schema.UserAccount
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $6`,
		t.Table, t.Email, t.FirstName, t.LastName, t.Bio, t.Role, t.ID,
	)

	tag, err := repository.db.Exec(context, query,
		user.Email, user.FirstName, user.LastName, user.Bio, user.Role, user.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "update_account")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, username string) error {
	t := schema.UserAccount
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.Username)

	tag, err := repository.db.Exec(context, query, username)
	if err != nil {
		return dberr.Wrap(err, "delete_account")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

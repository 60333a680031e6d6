package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-appointments/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-appointments/internal/shared/errors"
)

// коды ошибок PostgreSQL, которые мапятся в доменные
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// UsersRepository реализует доступ к таблице users (PostgreSQL).
type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create сохраняет пользователя и возвращает его id.
//
// Уникальность username проверяет только ограничение UNIQUE в базе,
// предварительного SELECT нет: при гонке двух регистраций одна из них
// получит ErrAlreadyExists.
func (r *UsersRepository) Create(ctx context.Context, username, passwordHash string) (int64, error) {
	var id int64

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (username, password)
		 VALUES ($1,$2)
		 RETURNING id`,
		username, passwordHash,
	).Scan(&id)

	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return 0, serr.ErrAlreadyExists
		}
		return 0, serr.Internal("create user", err)
	}

	return id, nil
}

func (r *UsersRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM users WHERE id=$1`,
		id,
	).Scan(&u.ID, &u.Username, &u.PasswordHash)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, serr.ErrUserNotFound
		}
		return models.User{}, serr.Internal("get user", err)
	}

	return u, nil
}

func (r *UsersRepository) GetByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM users WHERE username=$1`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, serr.ErrUserNotFound
		}
		return models.User{}, serr.Internal("get user by username", err)
	}

	return u, nil
}

// List возвращает всех пользователей по возрастанию id.
// Пустая таблица даёт пустой срез, а не nil.
func (r *UsersRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, username, password FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, serr.Internal("list users", err)
	}
	defer rows.Close()

	out := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash); err != nil {
			return nil, serr.Internal("scan user", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.Internal("list users", err)
	}

	return out, nil
}

// Delete удаляет пользователя. Его встречи удаляет каскад внешнего ключа.
func (r *UsersRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return serr.Internal("delete user", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return serr.Internal("delete user", err)
	}
	if n == 0 {
		return serr.ErrUserNotFound
	}

	return nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/IvanChernomyrdin/go-appointments/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-appointments/internal/shared/errors"
)

// AppointmentsRepository реализует доступ к таблице appointments.
// Отвечает только за хранение, username -> id резолвит сервис.
type AppointmentsRepository struct {
	db *sql.DB
}

func NewAppointmentsRepository(db *sql.DB) *AppointmentsRepository {
	return &AppointmentsRepository{db: db}
}

const appointmentColumns = `id, title, company, date, time, user_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointment(s rowScanner) (models.Appointment, error) {
	var a models.Appointment
	err := s.Scan(&a.ID, &a.Title, &a.Company, &a.Date, &a.Time, &a.UserID)
	return a, err
}

// Create сохраняет встречу и возвращает её id.
//
// Ошибки:
//   - ErrUserNotFound — владелец удалён между поиском и вставкой (нарушение FK)
//   - ErrInternal — ошибка базы данных
func (r *AppointmentsRepository) Create(ctx context.Context, a models.Appointment) (int64, error) {
	var id int64

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO appointments (title, company, date, time, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		a.Title,
		a.Company,
		a.Date,
		a.Time,
		a.UserID,
	).Scan(&id)

	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return 0, serr.ErrUserNotFound
		}
		return 0, serr.Internal("create appointment", err)
	}

	return id, nil
}

func (r *AppointmentsRepository) GetByID(ctx context.Context, id int64) (models.Appointment, error) {
	a, err := scanAppointment(r.db.QueryRowContext(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE id=$1`,
		id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Appointment{}, serr.ErrAppointmentNotFound
		}
		return models.Appointment{}, serr.Internal("get appointment", err)
	}

	return a, nil
}

// List возвращает все встречи по возрастанию id.
func (r *AppointmentsRepository) List(ctx context.Context) ([]models.Appointment, error) {
	return r.query(ctx, "list appointments",
		`SELECT `+appointmentColumns+` FROM appointments ORDER BY id`,
	)
}

// ListByUserID возвращает встречи одного пользователя.
// Существование пользователя не проверяется, это делает сервис.
func (r *AppointmentsRepository) ListByUserID(ctx context.Context, userID int64) ([]models.Appointment, error) {
	return r.query(ctx, "list appointments by user",
		`SELECT `+appointmentColumns+` FROM appointments WHERE user_id=$1 ORDER BY id`,
		userID,
	)
}

func (r *AppointmentsRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id=$1`, id)
	if err != nil {
		return serr.Internal("delete appointment", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return serr.Internal("delete appointment", err)
	}
	if n == 0 {
		return serr.ErrAppointmentNotFound
	}

	return nil
}

func (r *AppointmentsRepository) query(ctx context.Context, op, q string, args ...any) ([]models.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, serr.Internal(op, err)
	}
	defer rows.Close()

	out := make([]models.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, serr.Internal(op, err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.Internal(op, err)
	}

	return out, nil
}

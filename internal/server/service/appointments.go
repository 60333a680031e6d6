package service

import (
	"context"
	"time"

	"github.com/IvanChernomyrdin/go-appointments/internal/server/models"
	svcmodels "github.com/IvanChernomyrdin/go-appointments/internal/server/service/models"
	serr "github.com/IvanChernomyrdin/go-appointments/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-appointments/internal/shared/utils"
)

// AppointmentsService реализует бизнес-логику встреч.
// Сервис:
//   - валидирует входные данные;
//   - резолвит username владельца в id;
//   - не знает о HTTP и БД напрямую.
type AppointmentsService struct {
	users UsersRepo
	repo  AppointmentsRepo
}

func NewAppointmentsService(users UsersRepo, repo AppointmentsRepo) *AppointmentsService {
	return &AppointmentsService{
		users: users,
		repo:  repo,
	}
}

// Add создаёт встречу для пользователя с указанным username.
//
// Валидации:
//   - title, company, date, time, username не пустые;
//   - date в формате YYYY-MM-DD. time хранится как есть.
//
// Ошибки:
//   - ErrInvalidInput — невалидные данные;
//   - ErrUserNotFound — такого username нет, вставка не выполняется;
//   - ErrInternal — ошибка хранилища.
func (s *AppointmentsService) Add(ctx context.Context, in svcmodels.NewAppointment) (int64, error) {
	utils.Trimmed(&in.Title, &in.Company, &in.Date, &in.Time, &in.Username)
	if in.Title == "" || in.Company == "" || in.Date == "" || in.Time == "" || in.Username == "" {
		return 0, serr.ErrInvalidInput
	}

	date, err := time.Parse(models.DateLayout, in.Date)
	if err != nil {
		return 0, serr.ErrInvalidInput
	}

	owner, err := s.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return 0, err
	}

	return s.repo.Create(ctx, models.Appointment{
		Title:   in.Title,
		Company: in.Company,
		Date:    date,
		Time:    in.Time,
		UserID:  owner.ID,
	})
}

func (s *AppointmentsService) List(ctx context.Context) ([]models.Appointment, error) {
	return s.repo.List(ctx)
}

// ListByUsername возвращает встречи пользователя.
// Неизвестный username даёт ErrUserNotFound, а не пустой список.
func (s *AppointmentsService) ListByUsername(ctx context.Context, username string) ([]models.Appointment, error) {
	utils.Trimmed(&username)
	if username == "" {
		return nil, serr.ErrInvalidInput
	}

	owner, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	return s.repo.ListByUserID(ctx, owner.ID)
}

func (s *AppointmentsService) Get(ctx context.Context, id int64) (models.Appointment, error) {
	if id <= 0 {
		return models.Appointment{}, serr.ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *AppointmentsService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return serr.ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

// Package service содержит бизнес-логику сервиса записи на встречи.
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/IvanChernomyrdin/go-appointments/internal/server/config"
	"github.com/IvanChernomyrdin/go-appointments/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-appointments/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users        UsersRepo
	Appointments AppointmentsRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Users        *UsersService
	Appointments *AppointmentsService
}

// NewServices собирает все сервисы приложения.
// cfg нужен UsersService (алгоритм и параметры хэширования пароля).
func NewServices(repos Repositories, cfg *config.Config) (*Services, error) {
	a := cfg.Password.Argon2
	hasher, err := crypto.NewHasher(cfg.Password.Hasher, cfg.Password.Bcrypt.Cost, crypto.Argon2Params{
		Time:      a.Time,
		MemoryKiB: a.MemoryKiB,
		Threads:   a.Threads,
		KeyLen:    a.KeyLen,
		SaltLen:   a.SaltLen,
	})
	if err != nil {
		return nil, err
	}

	return &Services{
		Users:        NewUsersService(repos.Users, hasher),
		Appointments: NewAppointmentsService(repos.Users, repos.Appointments),
	}, nil
}

// UsersRepo — репозиторий пользователей.
type UsersRepo interface {
	Create(ctx context.Context, username, passwordHash string) (int64, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id int64) error
}

// AppointmentsRepo — репозиторий встреч.
type AppointmentsRepo interface {
	Create(ctx context.Context, a models.Appointment) (int64, error)
	GetByID(ctx context.Context, id int64) (models.Appointment, error)
	List(ctx context.Context) ([]models.Appointment, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

package service

import (
	"context"
	"errors"
	"sync"
	"unicode/utf8"

	"github.com/IvanChernomyrdin/go-appointments/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-appointments/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-appointments/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-appointments/internal/shared/utils"
)

// MaxUsernameLen — ограничение колонки users.username.
const MaxUsernameLen = 20

// dummyPassword хэшируется один раз и используется для сравнения,
// когда пользователя нет, чтобы время ответа было таким же.
const dummyPassword = "dummy-password-for-unknown-users"

// UsersService реализует регистрацию, просмотр и проверку пароля пользователей.
//
// Сервис не выдаёт ни токенов, ни сессий: проверка пароля отвечает
// только "подошёл" или "не подошёл".
type UsersService struct {
	users  UsersRepo
	hasher crypto.Hasher

	dummyOnce sync.Once
	dummyHash string
}

func NewUsersService(users UsersRepo, hasher crypto.Hasher) *UsersService {
	return &UsersService{
		users:  users,
		hasher: hasher,
	}
}

func validUsername(username string) bool {
	n := utf8.RuneCountInString(username)
	return n > 0 && n <= MaxUsernameLen
}

// Register регистрирует нового пользователя.
//
// Валидация:
//   - username обязателен, от 1 до 20 символов после обрезки пробелов
//   - пароль обязателен
//
// Ошибки:
//   - ErrInvalidInput / ErrPasswordTooLong при некорректных данных
//   - ErrAlreadyExists если username занят
func (s *UsersService) Register(ctx context.Context, username, password string) (int64, error) {
	utils.Trimmed(&username)
	if !validUsername(username) || password == "" {
		return 0, serr.ErrInvalidInput
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, serr.ErrInvalidInput) {
			return 0, err
		}
		return 0, serr.Internal("hash password", err)
	}

	return s.users.Create(ctx, username, hash)
}

// Verify сравнивает пароль с сохранённым хэшем.
//
// Несуществующий пользователь, неверный пароль и пустые поля дают одну и ту же
// ошибку ErrNotVerified. Хэш сравнивается в любом случае.
func (s *UsersService) Verify(ctx context.Context, username, password string) error {
	utils.Trimmed(&username)
	if username == "" || password == "" {
		s.burnCompare(password)
		return serr.ErrNotVerified
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			s.burnCompare(password)
			return serr.ErrNotVerified
		}
		return err
	}

	ok, err := s.hasher.Verify(password, u.PasswordHash)
	if err != nil {
		return serr.Internal("verify password", err)
	}
	if !ok {
		return serr.ErrNotVerified
	}

	return nil
}

// burnCompare тратит на проверку столько же, сколько настоящее сравнение.
func (s *UsersService) burnCompare(password string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash(dummyPassword)
	})
	if s.dummyHash == "" {
		return
	}
	_, _ = s.hasher.Verify(password, s.dummyHash)
}

func (s *UsersService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *UsersService) Get(ctx context.Context, id int64) (models.User, error) {
	if id <= 0 {
		return models.User{}, serr.ErrInvalidInput
	}
	return s.users.GetByID(ctx, id)
}

// Delete удаляет пользователя вместе с его встречами.
func (s *UsersService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return serr.ErrInvalidInput
	}
	return s.users.Delete(ctx, id)
}

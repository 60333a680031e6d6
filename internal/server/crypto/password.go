// Хэширование паролей
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"

	serr "github.com/IvanChernomyrdin/go-appointments/internal/shared/errors"
)

// MaxBcryptPasswordLen — bcrypt молча обрезает всё, что длиннее 72 байт.
const MaxBcryptPasswordLen = 72

// Hasher — хэширование и проверка пароля.
//
// Verify возвращает (false, nil) при несовпадении пароля и ошибку только
// если сам хэш битый.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}

// NewHasher выбирает реализацию по имени из конфига: bcrypt|argon2id.
func NewHasher(kind string, bcryptCost int, p Argon2Params) (Hasher, error) {
	switch strings.ToLower(kind) {
	case "", "bcrypt":
		return BcryptHasher{Cost: bcryptCost}, nil
	case "argon2id":
		return Argon2Hasher{Params: p}, nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", kind)
	}
}

// BcryptHasher — хэшер по умолчанию. Cost фиксируется конфигом.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}
	if len(password) > MaxBcryptPasswordLen {
		return "", serr.ErrPasswordTooLong
	}

	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

func (h BcryptHasher) Verify(password, encoded string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	case errors.Is(err, bcrypt.ErrPasswordTooLong):
		// слишком длинный пароль никогда не совпадёт с сохранённым
		return false, nil
	default:
		return false, fmt.Errorf("bcrypt: %w", err)
	}
}

type Argon2Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
	KeyLen    uint32
	SaltLen   uint32
}

// Argon2Hasher — argon2id, хэш хранится строкой формата:
// argon2id$v=19$m=65536,t=3,p=2$<salt_b64>$<hash_b64>
type Argon2Hasher struct {
	Params Argon2Params
}

func (h Argon2Hasher) Hash(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("empty password")
	}

	p := h.Params
	salt := make([]byte, p.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, p.Time, p.MemoryKiB, p.Threads, p.KeyLen)

	return fmt.Sprintf(
		"argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.MemoryKiB, p.Time, p.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

func (h Argon2Hasher) Verify(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[0] != "argon2id" {
		return false, errors.New("invalid hash format")
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[2], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, errors.New("invalid params format")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return false, errors.New("invalid salt")
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, errors.New("invalid hash")
	}

	got := argon2.IDKey([]byte(password), salt, iterations, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

package tests

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	crypt "github.com/IvanChernomyrdin/go-appointments/internal/server/crypto"
	serr "github.com/IvanChernomyrdin/go-appointments/internal/shared/errors"
)

func defaultParams() crypt.Argon2Params {
	return crypt.Argon2Params{
		Time:      1,
		MemoryKiB: 32 * 1024,
		Threads:   1,
		KeyLen:    32,
		SaltLen:   16,
	}
}

func hashers() map[string]crypt.Hasher {
	return map[string]crypt.Hasher{
		"bcrypt":   crypt.BcryptHasher{Cost: bcrypt.MinCost},
		"argon2id": crypt.Argon2Hasher{Params: defaultParams()},
	}
}

// Хэширование и успешная проверка
func TestHashAndVerify_OK(t *testing.T) {
	for name, h := range hashers() {
		t.Run(name, func(t *testing.T) {
			hash, err := h.Hash("super-secret-password")
			require.NoError(t, err)

			ok, err := h.Verify("super-secret-password", hash)
			require.NoError(t, err)
			require.True(t, ok, "expected password to be valid")
		})
	}
}

// Неверный пароль: false без ошибки
func TestVerify_InvalidPassword(t *testing.T) {
	for name, h := range hashers() {
		t.Run(name, func(t *testing.T) {
			hash, err := h.Hash("correct-password")
			require.NoError(t, err)

			ok, err := h.Verify("wrong-password", hash)
			require.NoError(t, err)
			require.False(t, ok, "expected password to be invalid")
		})
	}
}

// Пустой пароль
func TestHash_EmptyPassword(t *testing.T) {
	for name, h := range hashers() {
		t.Run(name, func(t *testing.T) {
			if _, err := h.Hash(""); err == nil {
				t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
			}
		})
	}
}

// Битый формат хэша
func TestVerify_InvalidFormat(t *testing.T) {
	for name, h := range hashers() {
		t.Run(name, func(t *testing.T) {
			_, err := h.Verify("password", "not-a-valid-hash")
			require.Error(t, err)
		})
	}
}

// Соль разная, значит и хэши разные
func TestHash_DifferentSalt(t *testing.T) {
	for name, h := range hashers() {
		t.Run(name, func(t *testing.T) {
			h1, err := h.Hash("same-password")
			require.NoError(t, err)
			h2, err := h.Hash("same-password")
			require.NoError(t, err)

			require.NotEqual(t, h1, h2, "expected different hashes for same password")
		})
	}
}

func TestBcrypt_UsesConfiguredCost(t *testing.T) {
	hash, err := crypt.BcryptHasher{Cost: 5}.Hash("password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, 5, cost)
}

func TestBcrypt_PasswordTooLong(t *testing.T) {
	_, err := crypt.BcryptHasher{Cost: bcrypt.MinCost}.Hash(strings.Repeat("a", crypt.MaxBcryptPasswordLen+1))
	require.Error(t, err)
	require.True(t, errors.Is(err, serr.ErrPasswordTooLong))
	require.True(t, errors.Is(err, serr.ErrInvalidInput))
}

// Хэш хранится не в открытом виде
func TestBcrypt_HashIsNotPlaintext(t *testing.T) {
	hash, err := crypt.BcryptHasher{Cost: bcrypt.MinCost}.Hash("pw1")
	require.NoError(t, err)
	require.NotEqual(t, "pw1", hash)
	require.True(t, strings.HasPrefix(hash, "$2a$"))
}

func TestNewHasher(t *testing.T) {
	h, err := crypt.NewHasher("bcrypt", 4, crypt.Argon2Params{})
	require.NoError(t, err)
	require.IsType(t, crypt.BcryptHasher{}, h)

	h, err = crypt.NewHasher("ARGON2ID", 0, defaultParams())
	require.NoError(t, err)
	require.IsType(t, crypt.Argon2Hasher{}, h)

	_, err = crypt.NewHasher("md5", 0, crypt.Argon2Params{})
	require.Error(t, err)
}

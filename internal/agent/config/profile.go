// Package config содержит функции для работы с локальным профилем CLI-клиента.
//
// Профиль хранит адрес сервера и имя пользователя, подтверждённое командой
// verify, и размещается в домашней директории пользователя:
//
//	~/.appointments/profile.json
package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Profile — сохранённые настройки CLI-клиента.
//
// Пароль в профиль не пишется никогда.
type Profile struct {
	ServerURL string `json:"server_url,omitempty"`
	Username  string `json:"username,omitempty"`
}

// DefaultPath возвращает путь к профилю: <home>/.appointments/profile.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".appointments", "profile.json"), nil
}

// Load загружает профиль из файла.
//
// Если файла нет, возвращает пустой профиль без ошибки.
// Некорректный JSON считается ошибкой.
func Load(path string) (*Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Profile{}, nil
		}
		return nil, err
	}
	var p Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Save сохраняет профиль в JSON.
//
// Директория создаётся с правами 0700, файл пишется с правами 0600.
func Save(path string, p *Profile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

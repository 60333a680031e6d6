// Package config отвечает за:
// - чтение server.yaml
// - подстановку переменных окружения вида ${DATABASE_DSN}
// - проставление дефолтов
// - валидацию (чтобы сервер не стартовал с дырявыми настройками)
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Config — корневая структура всего конфига сервера.
type Config struct {
	Env        string           `yaml:"env"` // dev|stage|prod
	Server     ServerConfig     `yaml:"server"`
	TLS        TLSConfig        `yaml:"tls"`
	DB         DBConfig         `yaml:"db"`
	Migrations MigrationsConfig `yaml:"migrations"`
	Password   PasswordConfig   `yaml:"password"`
	Security   SecurityConfig   `yaml:"security"`
	Log        LogConfig        `yaml:"log"`
	API        APIConfig        `yaml:"api"`
}

// ServerConfig — настройки HTTP-сервера.
type ServerConfig struct {
	Host              string        `yaml:"host"`
	Port              int           `yaml:"port"`
	TrustProxy        bool          `yaml:"trust_proxy"` // доверять ли заголовкам X-Forwarded-*
	ReadTimeout       time.Duration `yaml:"read_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	WriteTimeout      time.Duration `yaml:"write_timeout"`
	IdleTimeout       time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"` // время на graceful shutdown
	MaxHeaderBytes    int           `yaml:"max_header_bytes"` // лимит размера заголовков
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`   // лимит размера тела запроса
}

// TLSConfig — настройки HTTPS. Для этого сервиса TLS необязателен.
type TLSConfig struct {
	Enabled    bool   `yaml:"enabled"`
	CertFile   string `yaml:"cert_file"`
	KeyFile    string `yaml:"key_file"`
	MinVersion string `yaml:"min_version"` // "1.2"|"1.3" (1.0/1.1 запрещаем т.к. устарели)
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	DSN             string        `yaml:"dsn"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
}

// MigrationsConfig — настройки миграций БД.
type MigrationsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // например file://migrations/postgres
}

// PasswordConfig — настройки хэширования паролей пользователей.
type PasswordConfig struct {
	Hasher string       `yaml:"hasher"` // bcrypt|argon2id
	Argon2 Argon2Config `yaml:"argon2"`
	Bcrypt BcryptConfig `yaml:"bcrypt"`
}

// Argon2Config — параметры argon2id.
type Argon2Config struct {
	Time      uint32 `yaml:"time"`
	MemoryKiB uint32 `yaml:"memory_kib"`
	Threads   uint8  `yaml:"threads"`
	KeyLen    uint32 `yaml:"key_len"`
	SaltLen   uint32 `yaml:"salt_len"`
}

// BcryptConfig — параметры bcrypt.
type BcryptConfig struct {
	Cost int `yaml:"cost"`
}

// SecurityConfig — ограничения/защита.
type SecurityConfig struct {
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig — rate limit по IP на регистрацию и проверку пароля.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled"`
	RPS     float64 `yaml:"rps"`
	Burst   int     `yaml:"burst"`
	// через сколько забываем неактивного клиента
	IdleTTL time.Duration `yaml:"idle_ttl"`
}

// LogConfig — настройки логирования (zap).
type LogConfig struct {
	Level      string            `yaml:"level"`  // debug|info|warn|error
	Format     string            `yaml:"format"` // json|console
	File       string            `yaml:"file"`
	Stdout     bool              `yaml:"stdout"`
	MaxSizeMB  int               `yaml:"max_size_mb"`
	MaxBackups int               `yaml:"max_backups"`
	MaxAgeDays int               `yaml:"max_age_days"`
	Compress   bool              `yaml:"compress"`
	Sampling   LogSamplingConfig `yaml:"sampling"`
}

type LogSamplingConfig struct {
	Enabled    bool `yaml:"enabled"`
	Initial    int  `yaml:"initial"`
	Thereafter int  `yaml:"thereafter"`
}

// APIConfig — поведение HTTP API.
type APIConfig struct {
	// отдавать ли хэш пароля в /user/get. По умолчанию выключено.
	ExposePasswordHash bool `yaml:"expose_password_hash"`
	// регистрировать ли DELETE /user/delete/{id}
	AllowUserDelete bool `yaml:"allow_user_delete"`
}

// Load читает YAML, подставляет переменные окружения вида ${VAR},
// затем парсит в структуру, проставляет дефолты и валидирует.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать конфиг: %w", err)
	}

	// Подставляем переменные окружения в текст YAML:
	// dsn: "${DATABASE_DSN}" -> dsn: "postgres://..."
	raw = []byte(ExpandEnvStrict(string(raw)))

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("не удалось распарсить yaml: %w", err)
	}

	ApplyDefaults(&cfg)
	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var envPlaceholder = regexp.MustCompile(`\$\{([A-Z0-9_]+)\}`)

// ExpandEnvStrict заменяет ${VAR} на значение из окружения.
// Если переменная не задана — оставляем ${VAR} как есть,
// а потом Validate() упадёт с понятной ошибкой.
func ExpandEnvStrict(s string) string {
	return envPlaceholder.ReplaceAllStringFunc(s, func(m string) string {
		sub := envPlaceholder.FindStringSubmatch(m)
		if len(sub) != 2 {
			return m
		}
		if val, ok := os.LookupEnv(sub[1]); ok {
			return val
		}
		return m
	})
}

// ApplyDefaults — дефолтные значения, если в yaml поле не задано.
func ApplyDefaults(cfg *Config) {
	if cfg.Env == "" {
		cfg.Env = "dev"
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ReadHeaderTimeout == 0 {
		cfg.Server.ReadHeaderTimeout = 5 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Server.MaxBodyBytes == 0 {
		cfg.Server.MaxBodyBytes = 1 << 20
	}
	if cfg.DB.MaxOpenConns == 0 {
		cfg.DB.MaxOpenConns = 20
	}
	if cfg.DB.MaxIdleConns == 0 {
		cfg.DB.MaxIdleConns = 5
	}
	if cfg.Migrations.Path == "" {
		cfg.Migrations.Path = "file://migrations/postgres"
	}
	if cfg.Password.Hasher == "" {
		cfg.Password.Hasher = "bcrypt"
	}
	if cfg.Password.Bcrypt.Cost == 0 {
		cfg.Password.Bcrypt.Cost = bcrypt.DefaultCost
	}
	if cfg.Security.RateLimit.IdleTTL == 0 {
		cfg.Security.RateLimit.IdleTTL = 3 * time.Minute
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
}

// Validate проверяет, что конфиг заполнен корректно и безопасно.
// Если что-то не так — возвращаем ошибку и сервер НЕ стартует.
func (c *Config) Validate() error {
	// Базовая проверка сервера
	if c.Server.Host == "" {
		return errors.New("server.host обязателен")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port некорректен: %d", c.Server.Port)
	}
	if c.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("server.max_body_bytes не может быть отрицательным: %d", c.Server.MaxBodyBytes)
	}

	// TLS/HTTPS
	if c.TLS.Enabled {
		if c.TLS.CertFile == "" || c.TLS.KeyFile == "" {
			return errors.New("tls.cert_file и tls.key_file обязательны при tls.enabled=true")
		}
		if c.TLS.MinVersion == "" {
			c.TLS.MinVersion = "1.2"
		}
		// TLS 1.0/1.1 считаются небезопасными — запрещаем
		if c.TLS.MinVersion != "1.2" && c.TLS.MinVersion != "1.3" {
			return fmt.Errorf("tls.min_version=%s не поддерживается; используй 1.2 или 1.3", c.TLS.MinVersion)
		}
	}

	// База данных
	dsn := strings.TrimSpace(c.DB.DSN)
	if dsn == "" {
		return errors.New("db.dsn обязателен")
	}
	// Если ${DATABASE_DSN} не подставился — значит переменная окружения не задана
	if strings.Contains(dsn, "${") {
		return fmt.Errorf("db.dsn содержит неподставленную переменную: %q (нужно задать переменную окружения)", dsn)
	}
	if c.DB.MaxIdleConns > c.DB.MaxOpenConns {
		return fmt.Errorf("db.max_idle_conns (%d) больше db.max_open_conns (%d)", c.DB.MaxIdleConns, c.DB.MaxOpenConns)
	}

	if c.Migrations.Enabled && !strings.HasPrefix(c.Migrations.Path, "file://") {
		return fmt.Errorf("migrations.path должен начинаться с file:// (сейчас %q)", c.Migrations.Path)
	}

	// Rate limit
	if c.Security.RateLimit.Enabled {
		if c.Security.RateLimit.RPS <= 0 {
			return errors.New("security.rate_limit.rps должен быть > 0 при включённом rate_limit")
		}
		if c.Security.RateLimit.Burst <= 0 {
			return errors.New("security.rate_limit.burst должен быть > 0 при включённом rate_limit")
		}
	}

	// Хэширование паролей
	switch strings.ToLower(c.Password.Hasher) {
	case "argon2id":
		if c.Password.Argon2.Time == 0 || c.Password.Argon2.MemoryKiB == 0 || c.Password.Argon2.Threads == 0 {
			return errors.New("password.argon2 должен быть настроен для argon2id")
		}
		if c.Password.Argon2.KeyLen == 0 || c.Password.Argon2.SaltLen == 0 {
			return errors.New("password.argon2.key_len и salt_len должны быть > 0")
		}
	case "bcrypt":
		if c.Password.Bcrypt.Cost < bcrypt.MinCost || c.Password.Bcrypt.Cost > bcrypt.MaxCost {
			return fmt.Errorf("password.bcrypt.cost должен быть в диапазоне %d..%d (сейчас %d)",
				bcrypt.MinCost, bcrypt.MaxCost, c.Password.Bcrypt.Cost)
		}
	default:
		return fmt.Errorf("password.hasher должен быть bcrypt|argon2id (сейчас %q)", c.Password.Hasher)
	}

	// Логи
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("log.format должен быть json|console (сейчас %q)", c.Log.Format)
	}

	return nil
}

// ApplyEnvOverrides — даёт возможность переопределять некоторые настройки
// через переменные окружения без ${...} в yaml.
// Например SERVER_PORT=9090 переопределит server.port.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		c.DB.DSN = v
	}
}

// Addr возвращает адрес для http.Server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Package config содержит инициализацию подключения к базе данных сервера.
//
// Пакет выполняет:
//   - открытие соединения с PostgreSQL (через драйвер pgx);
//   - настройку пула соединений;
//   - проверку доступности базы (Ping);
//   - запуск миграций (golang-migrate) при старте сервера.
//
// Глобального подключения нет: OpenDB возвращает *sql.DB, которым владеет main
// и который передаётся в репозитории явно.
package config

import (
	"context"
	"database/sql"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"

	"github.com/IvanChernomyrdin/go-appointments/internal/shared/logger"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v4/stdlib"
)

// OpenDB открывает пул соединений к базе данных по DSN и проверяет его доступность.
//
// Параметры пула (max_open_conns, max_idle_conns, conn_max_lifetime,
// conn_max_idle_time) берутся из cfg. Нулевые значения оставляют
// поведение database/sql по умолчанию.
func OpenDB(ctx context.Context, cfg DBConfig, log *logger.HTTPLogger) (*sql.DB, error) {
	customLog := log.Sugar()

	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		customLog.Errorf("error to connect db: %v", err)
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err = db.PingContext(ctx); err != nil {
		customLog.Errorf("error check db connection: %v", err)
		db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate применяет миграции из каталога sourceURL (например file://migrations/postgres).
//
// Если миграции уже применены, ошибка migrate.ErrNoChange не считается ошибкой.
func Migrate(db *sql.DB, sourceURL string, log *logger.HTTPLogger) error {
	customLog := log.Sugar()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		customLog.Errorf("error creating migration driver: %v", err)
		return err
	}

	// создаём миграции с выбранным драйвером
	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		customLog.Errorf("error creating migrations: %v", err)
		return err
	}

	// запускаем миграции
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		customLog.Errorf("error applying migrations: %v", err)
		return err
	}

	customLog.Info("migrations applied successfully")
	return nil
}

// @title           Appointments API
// @version         1.0
// @description     Appointment booking backend.
// @description     Registers users, verifies passwords and stores appointments per user.

// @contact.name   Ivan Chernomyrdin
// @contact.url    https://github.com/IvanChernomyrdin

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @schemes http https
//
// Package main содержит точку входа сервера записи на встречи.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP(S)-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации сервера из файла ./configs/server.yaml;
//   - подключение к базе данных и применение миграций;
//   - создание репозиториев, сервисов, middleware и HTTP-обработчиков;
//   - запуск HTTP или HTTPS (tls.enabled) сервера с заданными таймаутами;
//   - обработку системных сигналов завершения (SIGINT, SIGTERM, SIGQUIT);
//   - корректное (graceful) завершение работы сервера с таймаутом.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/go-appointments/internal/server/api"
	"github.com/IvanChernomyrdin/go-appointments/internal/server/config"
	"github.com/IvanChernomyrdin/go-appointments/internal/server/middleware"
	h "github.com/IvanChernomyrdin/go-appointments/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-appointments/internal/server/repository"
	"github.com/IvanChernomyrdin/go-appointments/internal/server/service"
	"github.com/IvanChernomyrdin/go-appointments/internal/shared/logger"
)

func main() {
	// до чтения конфига пишем в логгер по умолчанию
	sugar := logger.NewHTTPLogger().Logger.Sugar()

	if err := godotenv.Load(); err != nil {
		sugar.Warnf("no .env file loaded, error: %v", err)
	}

	cfg, err := config.Load("./configs/server.yaml")
	if err != nil {
		sugar.Fatal(err)
	}

	httpLogger := logger.New(logOptions(cfg.Log))
	defer httpLogger.Sync()
	sugar = httpLogger.Logger.Sugar()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	// подключаем базу данных
	db, err := config.OpenDB(ctx, cfg.DB, httpLogger)
	if err != nil {
		sugar.Fatal(err)
	}
	// делаем отложенное закрытие бд
	defer db.Close()

	if cfg.Migrations.Enabled {
		if err := config.Migrate(db, cfg.Migrations.Path, httpLogger); err != nil {
			sugar.Fatal(err)
		}
	}

	// создаём репы и складываем в репозиторий
	repos := service.Repositories{
		Users:        repository.NewUsersRepository(db),
		Appointments: repository.NewAppointmentsRepository(db),
	}
	// создаём сервис
	svc, err := service.NewServices(repos, cfg)
	if err != nil {
		sugar.Fatal(err)
	}
	// создаём хандлер
	handler := api.NewHandler(svc, httpLogger, cfg.API)

	opts := h.Options{
		TrustProxy:   cfg.Server.TrustProxy,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	}
	if rl := cfg.Security.RateLimit; rl.Enabled {
		opts.Limiter = middleware.NewRateLimiter(rl.RPS, rl.Burst, rl.IdleTTL)
	}
	// создаём роутер
	router := h.NewRouter(handler, opts)

	//создаём сервер
	addr := cfg.Addr()
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}
	if cfg.TLS.Enabled {
		server.TLSConfig = &tls.Config{MinVersion: tlsVersion(cfg.TLS.MinVersion)}
	}

	g, ctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		var err error
		if cfg.TLS.Enabled {
			sugar.Infof("server started on https://%s", addr)
			err = server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			sugar.Infof("server started on http://%s", addr)
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// чистка неактивных клиентов rate limiter
	if opts.Limiter != nil {
		g.Go(func() error {
			return opts.Limiter.Cleanup(ctx)
		})
	}

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		// ctx уже отменён, поэтому таймаут считаем от Background
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	// ожидание и единная обработка ошибок
	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}

func logOptions(c config.LogConfig) logger.Options {
	opts := logger.Options{
		Level:      c.Level,
		Format:     c.Format,
		File:       c.File,
		Stdout:     c.Stdout,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
		Compress:   c.Compress,
	}
	if c.Sampling.Enabled {
		opts.Sampling = &logger.SamplingOptions{
			Initial:    c.Sampling.Initial,
			Thereafter: c.Sampling.Thereafter,
		}
	}
	return opts
}

func tlsVersion(v string) uint16 {
	if v == "1.3" {
		return tls.VersionTLS13
	}
	return tls.VersionTLS12
}
